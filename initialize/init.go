package initialize

import (
	"fmt"
	"net/http"

	"weldwatch/app/controllers"
	"weldwatch/app/db"
	"weldwatch/app/excel"
	"weldwatch/app/models"
	"weldwatch/app/notify"
	"weldwatch/app/repo"
	"weldwatch/app/services"
	"weldwatch/config"
	"weldwatch/global"
	"weldwatch/router"
	"weldwatch/scheduler"

	"gorm.io/gorm"
)

type App struct {
	Cfg      *config.Config
	DB       *gorm.DB
	Router   http.Handler
	Sched    *scheduler.Scheduler
	Notifier *notify.Notifier
	Scanner  *services.ScanService
	Importer *services.ImportService
	Data     *services.DataService
	Settings *services.SettingService
}

const (
	taskRecordScan = "record-scan"
	taskTempSweep  = "temp-sweep"
)

func Build(configPath string) (*App, error) {
	// Load config
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	global.Config = cfg

	// Connect DB
	gdb, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}
	global.Mdb = gdb

	// Migrate
	if err := gdb.AutoMigrate(&models.Record{}, &models.DataEntry{}, &models.Image{}, &models.Setting{}); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	// Repositories
	recordRepo := repo.NewRecordRepository(gdb)
	entryRepo := repo.NewEntryRepository(gdb)
	imageRepo := repo.NewImageRepository(gdb)
	settingRepo := repo.NewSettingRepository(gdb)

	// Services
	notifier := notify.NewNotifier()
	imageSvc := services.NewImageService(imageRepo, entryRepo, notifier, cfg.Image.TargetWidth, cfg.Image.Concurrency)
	importSvc := services.NewImportService(recordRepo, entryRepo, imageSvc, excel.ReadParams{
		SheetName:        cfg.Excel.SheetName,
		StartCell:        cfg.Excel.StartCell,
		NumCols:          cfg.Excel.NumCols,
		BlankRowsToCheck: cfg.Excel.BlankRowsToCheck,
	})
	dataSvc := services.NewDataService(recordRepo, entryRepo, cfg.TempDir)
	settingSvc := services.NewSettingService(settingRepo, notifier)
	scanner := services.NewScanService(recordRepo, settingRepo, importSvc, notifier)
	janitor := services.NewTempJanitor(cfg.TempDir)

	// Discard imports a previous run left unfinished before scanning resumes.
	if err := importSvc.Reconcile(); err != nil {
		return nil, fmt.Errorf("reconcile: %w", err)
	}
	scanner.LoadWatchDir()

	// Background tasks
	sched := scheduler.New()
	sched.Add(taskRecordScan, cfg.ScanInterval, scanner.Scan)
	sched.Add(taskTempSweep, cfg.SweepInterval, janitor.Sweep)

	// Controllers and router
	recordCtrl := controllers.NewRecordController(dataSvc)
	imageCtrl := controllers.NewImageController(imageSvc)
	settingCtrl := controllers.NewSettingController(settingSvc)
	eventsCtrl := controllers.NewEventsController(notifier)
	h := router.New(router.Table(recordCtrl, imageCtrl, settingCtrl, eventsCtrl))

	return &App{
		Cfg:      cfg,
		DB:       gdb,
		Router:   h,
		Sched:    sched,
		Notifier: notifier,
		Scanner:  scanner,
		Importer: importSvc,
		Data:     dataSvc,
		Settings: settingSvc,
	}, nil
}

// Start launches the background tasks and the filesystem wake-up watcher.
// The returned stop function halts both.
func (a *App) Start() func() {
	a.Sched.Start()
	closeWatch := a.Scanner.Watch(func() { a.Sched.Wake(taskRecordScan) })
	return func() {
		if closeWatch != nil {
			closeWatch()
		}
		a.Sched.Stop()
	}
}
