package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Driver string // "sqlite" or "mysql"
	Path   string // sqlite file
	Host   string
	Port   int
	User   string
	Pass   string
	Name   string
}

// Excel describes the fixed cell region the test equipment writes its result
// table into.
type Excel struct {
	SheetName        string
	StartCell        string
	NumCols          int
	BlankRowsToCheck int
}

type Image struct {
	TargetWidth int
	Concurrency int
}

type Config struct {
	HTTP          HTTP
	DB            DB
	Excel         Excel
	Image         Image
	TempDir       string
	ScanInterval  time.Duration
	SweepInterval time.Duration
}

func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Defaults
	v.SetDefault("http.host", "127.0.0.1")
	v.SetDefault("http.port", 9600)
	v.SetDefault("db.driver", "sqlite")
	v.SetDefault("db.path", "weldwatch.db")
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "root")
	v.SetDefault("db.pass", "")
	v.SetDefault("db.name", "weldwatch")
	v.SetDefault("excel.sheet_name", "Sheet2")
	v.SetDefault("excel.start_cell", "D678")
	v.SetDefault("excel.num_cols", 5)
	v.SetDefault("excel.blank_rows_to_check", 4)
	v.SetDefault("image.target_width", 300)
	v.SetDefault("image.concurrency", 2)
	v.SetDefault("temp_dir", "temp")
	v.SetDefault("scan_interval", "1s")
	v.SetDefault("sweep_interval", "5m")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("http.host"), Port: v.GetInt("http.port")},
		DB: DB{
			Driver: v.GetString("db.driver"),
			Path:   v.GetString("db.path"),
			Host:   v.GetString("db.host"),
			Port:   v.GetInt("db.port"),
			User:   v.GetString("db.user"),
			Pass:   v.GetString("db.pass"),
			Name:   v.GetString("db.name"),
		},
		Excel: Excel{
			SheetName:        v.GetString("excel.sheet_name"),
			StartCell:        v.GetString("excel.start_cell"),
			NumCols:          v.GetInt("excel.num_cols"),
			BlankRowsToCheck: v.GetInt("excel.blank_rows_to_check"),
		},
		Image: Image{
			TargetWidth: v.GetInt("image.target_width"),
			Concurrency: v.GetInt("image.concurrency"),
		},
		TempDir:       v.GetString("temp_dir"),
		ScanInterval:  v.GetDuration("scan_interval"),
		SweepInterval: v.GetDuration("sweep_interval"),
	}
	if cfg.Excel.NumCols <= 2 {
		return nil, fmt.Errorf("excel.num_cols must be at least 3, got %d", cfg.Excel.NumCols)
	}
	if cfg.Image.Concurrency <= 0 {
		cfg.Image.Concurrency = 2
	}
	return cfg, nil
}
