package db

import (
	"fmt"

	"weldwatch/config"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the store selected by config. The embedded sqlite file is the
// default; mysql matches deployments where several stations share one server.
func Connect(cfg config.DB) (*gorm.DB, error) {
	gcfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}
	switch cfg.Driver {
	case "", "sqlite":
		return gorm.Open(sqlite.Open(cfg.Path), gcfg)
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.User, cfg.Pass, cfg.Host, cfg.Port, cfg.Name)
		return gorm.Open(mysql.Open(dsn), gcfg)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}
}
