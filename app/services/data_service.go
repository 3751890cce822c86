package services

import (
	"fmt"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"weldwatch/app/apperr"
	"weldwatch/app/models"
	"weldwatch/app/repo"
)

// DataService answers the collaborator's read queries over committed records.
type DataService struct {
	records *repo.RecordRepository
	entries *repo.EntryRepository
	tempDir string
}

func NewDataService(records *repo.RecordRepository, entries *repo.EntryRepository, tempDir string) *DataService {
	return &DataService{records: records, entries: entries, tempDir: tempDir}
}

func (s *DataService) ListRecords(f repo.RecordFilter) ([]models.Record, error) {
	return s.records.List(f)
}

func (s *DataService) ListEntries(recordID string) ([]models.DataEntry, error) {
	return s.entries.ListByRecord(recordID)
}

// PointRate computes per-point failure percentages across all records of the
// model created inside [start, end]. Groups appear in first-seen entry order.
func (s *DataService) PointRate(model string, start, end time.Time) ([]models.PointRate, error) {
	recs, err := s.records.List(repo.RecordFilter{Model: model, From: &start, To: &end})
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(recs))
	for _, rec := range recs {
		ids = append(ids, rec.ID)
	}
	entries, err := s.entries.ListByRecords(ids)
	if err != nil {
		return nil, err
	}

	type counts struct {
		rate                       models.PointRate
		vision, deep, overall, all int
	}
	grouped := make(map[string]*counts)
	var order []string
	for _, e := range entries {
		key := e.RobotName + "-" + e.Position + "-" + e.WeldingPoint
		c, ok := grouped[key]
		if !ok {
			c = &counts{rate: models.PointRate{
				ID:           e.ID,
				RobotName:    e.RobotName,
				Position:     e.Position,
				WeldingPoint: e.WeldingPoint,
			}}
			grouped[key] = c
			order = append(order, key)
		}
		c.all++
		if e.VisionProResult == models.ResultNG {
			c.vision++
		}
		if e.DeepLearningResult == models.ResultNG {
			c.deep++
		}
		if e.OverallResult == models.ResultNG {
			c.overall++
		}
	}

	out := make([]models.PointRate, 0, len(order))
	for _, key := range order {
		c := grouped[key]
		c.rate.VisionProFailRate = percent(c.vision, c.all)
		c.rate.DeepLearningFailRate = percent(c.deep, c.all)
		c.rate.OverallFailRate = percent(c.overall, c.all)
		out = append(out, c.rate)
	}
	return out, nil
}

func percent(part, total int) int {
	return int(math.Round(float64(part) / float64(total) * 100))
}

// OpenRecordFile writes the record's original spreadsheet into the scratch
// directory and opens it with the host OS. The scratch copy is transient; the
// janitor purges it.
func (s *DataService) OpenRecordFile(recordID string) error {
	rec, err := s.records.Get(recordID)
	if err != nil {
		return apperr.NotFound("record %s", recordID)
	}
	if err := os.MkdirAll(s.tempDir, 0o755); err != nil {
		return apperr.IO("create temp dir", err)
	}
	path := filepath.Join(s.tempDir, rec.ID+resultExt)
	if err := os.WriteFile(path, rec.FileData, 0o644); err != nil {
		return apperr.IO("write temp spreadsheet", err)
	}
	return openWithOS(path)
}

func openWithOS(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	case "darwin":
		cmd = exec.Command("open", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return nil
}
