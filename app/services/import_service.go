package services

import (
	"fmt"
	"path/filepath"
	"strings"

	"weldwatch/app/excel"
	"weldwatch/app/models"
	"weldwatch/app/repo"
	"weldwatch/global"

	"golang.org/x/sync/errgroup"
)

// ImportService turns one result file into a Record with its entries and
// images. Entry persistence and image import run concurrently; the record is
// finalized only after both branches succeed, and a failure in either tears
// the record down again so the next scan can retry from scratch.
type ImportService struct {
	records *repo.RecordRepository
	entries *repo.EntryRepository
	images  *ImageService
	params  excel.ReadParams
}

func NewImportService(records *repo.RecordRepository, entries *repo.EntryRepository, images *ImageService, params excel.ReadParams) *ImportService {
	return &ImportService{
		records: records,
		entries: entries,
		images:  images,
		params:  params,
	}
}

// ImportFile imports one file from the watch directory. Idempotent per
// filename: an existing record is reused rather than duplicated.
func (s *ImportService) ImportFile(fileName, watchDir string) error {
	info, err := excel.ParseFileName(fileName)
	if err != nil {
		return err
	}

	rows, raw, err := excel.Extract(filepath.Join(watchDir, fileName), s.params)
	if err != nil {
		return err
	}
	merged := excel.MergeRows(rows)

	rec, err := s.records.FindByFileName(fileName)
	if err != nil {
		return fmt.Errorf("lookup record %s: %w", fileName, err)
	}
	if rec == nil {
		rec = &models.Record{
			FileName: fileName,
			Model:    info.Model,
			PartID:   info.PartID,
			FileData: raw,
		}
		if err := s.records.Create(rec); err != nil {
			return fmt.Errorf("create record %s: %w", fileName, err)
		}
	}

	imageDir := filepath.Join(watchDir, strings.TrimSuffix(fileName, filepath.Ext(fileName)))

	var g errgroup.Group
	g.Go(func() error {
		if err := s.saveEntries(rec.ID, merged); err != nil {
			return err
		}
		return s.records.MarkEntriesDone(rec.ID)
	})
	g.Go(func() error {
		if err := s.images.ImportImages(rec.ID, imageDir); err != nil {
			return err
		}
		return s.records.MarkImagesDone(rec.ID)
	})
	if err := g.Wait(); err != nil {
		s.compensate(rec.ID)
		return fmt.Errorf("import %s: %w", fileName, err)
	}

	return s.records.Finalize(rec.ID)
}

// saveEntries maps merged rows to DataEntry and writes them in one
// transaction. A file yielding no rows fails the import: a finished record
// must carry entries.
func (s *ImportService) saveEntries(recordID string, rows [][]string) error {
	if len(rows) == 0 {
		return fmt.Errorf("no data rows extracted for record %s", recordID)
	}
	entries := make([]models.DataEntry, 0, len(rows))
	for _, row := range rows {
		e := models.DataEntry{
			RecordID:           recordID,
			RobotName:          cellAt(row, 0),
			Position:           cellAt(row, 1),
			WeldingPoint:       cellAt(row, 2),
			DeepLearningResult: cellAt(row, 3),
			VisionProResult:    cellAt(row, 4),
		}
		e.OverallResult = models.OverallResult(e.DeepLearningResult, e.VisionProResult)
		entries = append(entries, e)
	}
	return s.entries.CreateAll(entries)
}

// compensate deletes the record and its entries after a failed import.
// Best-effort only; images written before the failure stay behind until the
// next reconciliation pass finds them.
func (s *ImportService) compensate(recordID string) {
	if err := s.entries.DeleteByRecord(recordID); err != nil {
		global.Logger.Error().Err(err).Str("record", recordID).Msg("compensation: delete entries failed")
	}
	if err := s.records.Delete(recordID); err != nil {
		global.Logger.Error().Err(err).Str("record", recordID).Msg("compensation: delete record failed")
	}
}

// Reconcile discards every record the saga left short of finalized, along
// with its entries and images. Runs once at startup, before the scanner
// starts, so a crash mid-import can't leave a half-written record that races
// the retry on the next tick.
func (s *ImportService) Reconcile() error {
	stuck, err := s.records.ListUnfinished()
	if err != nil {
		return fmt.Errorf("list unfinished records: %w", err)
	}
	for _, rec := range stuck {
		global.Logger.Info().Str("record", rec.ID).Str("file", rec.FileName).Msg("discarding unfinished import")
		if err := s.entries.DeleteByRecord(rec.ID); err != nil {
			return fmt.Errorf("reconcile entries for %s: %w", rec.ID, err)
		}
		if err := s.images.DeleteByRecord(rec.ID); err != nil {
			return fmt.Errorf("reconcile images for %s: %w", rec.ID, err)
		}
		if err := s.records.Delete(rec.ID); err != nil {
			return fmt.Errorf("reconcile record %s: %w", rec.ID, err)
		}
	}
	return nil
}

func cellAt(row []string, i int) string {
	if i < len(row) {
		return row[i]
	}
	return ""
}
