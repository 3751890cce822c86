package services

import (
	"os"
	"path/filepath"
	"testing"

	"weldwatch/app/excel"
	"weldwatch/app/models"
	"weldwatch/app/notify"
	"weldwatch/app/repo"

	"github.com/xuri/excelize/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := gdb.AutoMigrate(&models.Record{}, &models.DataEntry{}, &models.Image{}, &models.Setting{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return gdb
}

type fixture struct {
	db       *gorm.DB
	records  *repo.RecordRepository
	entries  *repo.EntryRepository
	images   *repo.ImageRepository
	settings *repo.SettingRepository
	notifier *notify.Notifier
	imageSvc *ImageService
	importer *ImportService
}

func testParams() excel.ReadParams {
	return excel.ReadParams{SheetName: "Sheet2", StartCell: "A1", NumCols: 5, BlankRowsToCheck: 4}
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gdb := newTestDB(t)
	f := &fixture{
		db:       gdb,
		records:  repo.NewRecordRepository(gdb),
		entries:  repo.NewEntryRepository(gdb),
		images:   repo.NewImageRepository(gdb),
		settings: repo.NewSettingRepository(gdb),
		notifier: notify.NewNotifier(),
	}
	f.imageSvc = NewImageService(f.images, f.entries, f.notifier, 300, 2)
	// Tests exercise persistence, not pixel math.
	f.imageSvc.decode = func(data []byte, _ int) ([]byte, error) { return data, nil }
	f.importer = NewImportService(f.records, f.entries, f.imageSvc, testParams())
	return f
}

// writeResultFile creates <dir>/<name>.xlsx with the given data rows on
// Sheet2 starting at A1, plus a sibling image directory holding imageNames.
func writeResultFile(t *testing.T, dir, name string, rows [][]string, imageNames []string) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	if _, err := f.NewSheet("Sheet2"); err != nil {
		t.Fatalf("new sheet: %v", err)
	}
	for r, row := range rows {
		for c, v := range row {
			if v == "" {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellValue("Sheet2", cell, v); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	if err := f.SaveAs(filepath.Join(dir, name+".xlsx")); err != nil {
		t.Fatalf("save: %v", err)
	}

	imageDir := filepath.Join(dir, name)
	if err := os.MkdirAll(imageDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	for _, img := range imageNames {
		if err := os.WriteFile(filepath.Join(imageDir, img), []byte("bitmap"), 0o644); err != nil {
			t.Fatalf("write image: %v", err)
		}
	}
}

func countRows(t *testing.T, gdb *gorm.DB, model interface{}) int64 {
	t.Helper()
	var n int64
	if err := gdb.Model(model).Count(&n).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	return n
}
