package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"weldwatch/app/controllers"
	"weldwatch/app/models"
	"weldwatch/app/notify"
	"weldwatch/app/repo"
	"weldwatch/app/services"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestHandler(t *testing.T) (http.Handler, *gorm.DB) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := gdb.AutoMigrate(&models.Record{}, &models.DataEntry{}, &models.Image{}, &models.Setting{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	records := repo.NewRecordRepository(gdb)
	entries := repo.NewEntryRepository(gdb)
	images := repo.NewImageRepository(gdb)
	settings := repo.NewSettingRepository(gdb)
	notifier := notify.NewNotifier()

	data := services.NewDataService(records, entries, t.TempDir())
	imageSvc := services.NewImageService(images, entries, notifier, 300, 2)
	settingSvc := services.NewSettingService(settings, notifier)

	rec := controllers.NewRecordController(data)
	img := controllers.NewImageController(imageSvc)
	set := controllers.NewSettingController(settingSvc)
	ev := controllers.NewEventsController(notifier)
	return New(Table(rec, img, set, ev)), gdb
}

func TestListRecordsEndpoint(t *testing.T) {
	h, gdb := newTestHandler(t)
	gdb.Create(&models.Record{FileName: "M1_1.xlsx", Model: "M1", PartID: "1", FinishImport: true})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/records?model=M1", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rr.Code, rr.Body.String())
	}
	var recs []models.Record
	if err := json.Unmarshal(rr.Body.Bytes(), &recs); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(recs) != 1 || recs[0].FileName != "M1_1.xlsx" {
		t.Fatalf("records = %+v", recs)
	}
}

func TestSettingRoundTrip(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/setting", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("get before save: status = %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	body := strings.NewReader(`{"recordDir":"/data/records"}`)
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPut, "/setting", body))
	if rr.Code != http.StatusOK {
		t.Fatalf("save: status = %d, body %s", rr.Code, rr.Body.String())
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/setting", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("get: status = %d", rr.Code)
	}
	var s models.Setting
	if err := json.Unmarshal(rr.Body.Bytes(), &s); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if s.RecordDir != "/data/records" {
		t.Fatalf("setting = %+v", s)
	}
}

func TestGetImageAbsent(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/image?recordId=r&robot=C1&position=P1", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
}

func TestMethodNotAllowed(t *testing.T) {
	h, _ := newTestHandler(t)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/records", nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rr.Code)
	}
}

func TestOperationTableCoversContract(t *testing.T) {
	ops := Table(nil, nil, nil, nil)
	want := []string{
		"list-records", "open-record-file", "list-entries", "get-point-rate",
		"get-image", "save-image-to-path", "get-setting", "save-setting", "events",
	}
	names := make(map[string]bool, len(ops))
	for _, op := range ops {
		names[op.Name] = true
	}
	for _, w := range want {
		if !names[w] {
			t.Fatalf("operation %s missing from table", w)
		}
	}
}
