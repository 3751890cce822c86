package services

import (
	"math"
	"os"
	"path/filepath"
	"sync/atomic"

	"weldwatch/app/apperr"
	"weldwatch/app/excel"
	"weldwatch/app/imaging"
	"weldwatch/app/models"
	"weldwatch/app/notify"
	"weldwatch/app/repo"

	"golang.org/x/sync/errgroup"
)

// ImageService imports the weld-point stills that accompany a result file.
type ImageService struct {
	images      *repo.ImageRepository
	entries     *repo.EntryRepository
	notifier    *notify.Notifier
	targetWidth int
	concurrency int

	// decode is swappable so tests can observe the concurrency bound with a
	// slow stand-in.
	decode func(data []byte, targetWidth int) ([]byte, error)
}

func NewImageService(images *repo.ImageRepository, entries *repo.EntryRepository, notifier *notify.Notifier, targetWidth, concurrency int) *ImageService {
	return &ImageService{
		images:      images,
		entries:     entries,
		notifier:    notifier,
		targetWidth: targetWidth,
		concurrency: concurrency,
		decode:      imaging.DecodeAndScale,
	}
}

// ImportImages persists every image in imageDir against the record, skipping
// triples that already have one. At most `concurrency` images are decoded at
// once; each completion publishes a progress percentage.
func (s *ImageService) ImportImages(recordID, imageDir string) error {
	dirEntries, err := os.ReadDir(imageDir)
	if err != nil {
		return apperr.IO("read image dir "+imageDir, err)
	}
	var names []string
	for _, e := range dirEntries {
		if !e.IsDir() {
			names = append(names, e.Name())
		}
	}
	total := len(names)
	if total == 0 {
		return nil
	}

	var done atomic.Int64
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for _, name := range names {
		name := name
		g.Go(func() error {
			if err := s.importOne(recordID, imageDir, name); err != nil {
				return err
			}
			completed := done.Add(1)
			s.notifier.Progress(int(math.Round(float64(completed) / float64(total) * 100)))
			return nil
		})
	}
	return g.Wait()
}

func (s *ImageService) importOne(recordID, imageDir, name string) error {
	info, err := excel.ParseImageName(name)
	if err != nil {
		return err
	}
	exists, err := s.images.Exists(recordID, info.RobotName, info.Position)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	data, err := os.ReadFile(filepath.Join(imageDir, name))
	if err != nil {
		return apperr.IO("read image "+name, err)
	}
	payload, err := s.decode(data, s.targetWidth)
	if err != nil {
		return err
	}
	return s.images.Create(&models.Image{
		RecordID:  recordID,
		RobotName: info.RobotName,
		Position:  info.Position,
		Payload:   payload,
	})
}

// GetOne returns the image for a (record, robot, position) triple, nil when
// absent.
func (s *ImageService) GetOne(recordID, robotName, position string) (*models.Image, error) {
	return s.images.FindOne(recordID, robotName, position)
}

// DeleteByRecord removes every image belonging to a record.
func (s *ImageService) DeleteByRecord(recordID string) error {
	return s.images.DeleteByRecord(recordID)
}

// SaveToPath writes the image backing a data entry to a destination the user
// picked. The entry names the (record, robot, position) triple; the stored
// still for that triple is what gets written.
func (s *ImageService) SaveToPath(entryID, dest string) error {
	entry, err := s.entries.Get(entryID)
	if err != nil {
		return apperr.NotFound("entry %s", entryID)
	}
	img, err := s.images.FindOne(entry.RecordID, entry.RobotName, entry.Position)
	if err != nil {
		return err
	}
	if img == nil {
		return apperr.NotFound("image for entry %s", entryID)
	}
	if err := os.WriteFile(dest, img.Payload, 0o644); err != nil {
		return apperr.IO("write image to "+dest, err)
	}
	return nil
}
