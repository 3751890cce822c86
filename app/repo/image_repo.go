package repo

import (
	"errors"

	"weldwatch/app/models"

	"gorm.io/gorm"
)

type ImageRepository struct{ db *gorm.DB }

func NewImageRepository(db *gorm.DB) *ImageRepository { return &ImageRepository{db: db} }

func (r *ImageRepository) Create(img *models.Image) error {
	return r.db.Create(img).Error
}

func (r *ImageRepository) Exists(recordID, robotName, position string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Image{}).
		Where("record_id = ? AND robot_name = ? AND position = ?", recordID, robotName, position).
		Count(&count).Error
	return count > 0, err
}

// FindOne returns (nil, nil) when no image matches the triple.
func (r *ImageRepository) FindOne(recordID, robotName, position string) (*models.Image, error) {
	var img models.Image
	err := r.db.Where("record_id = ? AND robot_name = ? AND position = ?", recordID, robotName, position).
		First(&img).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &img, nil
}

func (r *ImageRepository) DeleteByRecord(recordID string) error {
	return r.db.Delete(&models.Image{}, "record_id = ?", recordID).Error
}
