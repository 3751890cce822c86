package repo

import (
	"errors"
	"time"

	"weldwatch/app/models"

	"gorm.io/gorm"
)

// summaryColumns keeps the spreadsheet blob out of list responses.
var summaryColumns = []string{"id", "created_at", "file_name", "model", "part_id", "finish_import"}

type RecordRepository struct{ db *gorm.DB }

func NewRecordRepository(db *gorm.DB) *RecordRepository { return &RecordRepository{db: db} }

// RecordFilter narrows List. Zero values mean "no constraint".
type RecordFilter struct {
	Model  string
	PartID string
	From   *time.Time
	To     *time.Time
}

func (r *RecordRepository) Create(rec *models.Record) error {
	return r.db.Create(rec).Error
}

func (r *RecordRepository) Get(id string) (*models.Record, error) {
	var rec models.Record
	if err := r.db.First(&rec, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// FindByFileName returns (nil, nil) when no record carries the name.
func (r *RecordRepository) FindByFileName(fileName string) (*models.Record, error) {
	var rec models.Record
	err := r.db.Select(summaryColumns).Where("file_name = ?", fileName).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// HasFinished reports whether a fully imported record exists for the name.
func (r *RecordRepository) HasFinished(fileName string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Record{}).
		Where("file_name = ? AND finish_import = ?", fileName, true).
		Count(&count).Error
	return count > 0, err
}

func (r *RecordRepository) List(f RecordFilter) ([]models.Record, error) {
	q := r.db.Select(summaryColumns).Model(&models.Record{})
	if f.Model != "" {
		q = q.Where("model = ?", f.Model)
	}
	if f.PartID != "" {
		q = q.Where("part_id = ?", f.PartID)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at <= ?", *f.To)
	}
	var recs []models.Record
	if err := q.Find(&recs).Error; err != nil {
		return nil, err
	}
	return recs, nil
}

func (r *RecordRepository) MarkEntriesDone(id string) error {
	return r.db.Model(&models.Record{}).Where("id = ?", id).
		Update("entries_done", true).Error
}

func (r *RecordRepository) MarkImagesDone(id string) error {
	return r.db.Model(&models.Record{}).Where("id = ?", id).
		Update("images_done", true).Error
}

func (r *RecordRepository) Finalize(id string) error {
	return r.db.Model(&models.Record{}).Where("id = ?", id).
		Update("finish_import", true).Error
}

// ListUnfinished returns records the saga left short of finalized.
func (r *RecordRepository) ListUnfinished() ([]models.Record, error) {
	var recs []models.Record
	err := r.db.Select(summaryColumns).
		Where("finish_import = ?", false).
		Find(&recs).Error
	return recs, err
}

func (r *RecordRepository) Delete(id string) error {
	return r.db.Delete(&models.Record{}, "id = ?", id).Error
}
