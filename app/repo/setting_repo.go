package repo

import (
	"errors"

	"weldwatch/app/models"

	"gorm.io/gorm"
)

type SettingRepository struct{ db *gorm.DB }

func NewSettingRepository(db *gorm.DB) *SettingRepository { return &SettingRepository{db: db} }

// First returns the singleton row, or (nil, nil) before first save.
func (r *SettingRepository) First() (*models.Setting, error) {
	var s models.Setting
	err := r.db.First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingRepository) Save(s *models.Setting) error {
	return r.db.Save(s).Error
}
