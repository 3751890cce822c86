package repo

import (
	"weldwatch/app/models"

	"gorm.io/gorm"
)

type EntryRepository struct{ db *gorm.DB }

func NewEntryRepository(db *gorm.DB) *EntryRepository { return &EntryRepository{db: db} }

// CreateAll persists the batch in one transaction: all rows or none.
func (r *EntryRepository) CreateAll(entries []models.DataEntry) error {
	if len(entries) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&entries).Error
	})
}

func (r *EntryRepository) Get(id string) (*models.DataEntry, error) {
	var e models.DataEntry
	if err := r.db.First(&e, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *EntryRepository) ListByRecord(recordID string) ([]models.DataEntry, error) {
	var entries []models.DataEntry
	err := r.db.Where("record_id = ?", recordID).Find(&entries).Error
	return entries, err
}

func (r *EntryRepository) ListByRecords(recordIDs []string) ([]models.DataEntry, error) {
	if len(recordIDs) == 0 {
		return nil, nil
	}
	var entries []models.DataEntry
	err := r.db.Where("record_id IN ?", recordIDs).Find(&entries).Error
	return entries, err
}

func (r *EntryRepository) DeleteByRecord(recordID string) error {
	return r.db.Delete(&models.DataEntry{}, "record_id = ?", recordID).Error
}
