package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Image is the rescaled still evidencing one weld point. At most one image
// exists per (record, robot, position).
type Image struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	RecordID  string `gorm:"size:36;index;uniqueIndex:idx_record_robot_position" json:"recordId"`
	RobotName string `gorm:"size:64;uniqueIndex:idx_record_robot_position" json:"robotName"`
	Position  string `gorm:"size:64;uniqueIndex:idx_record_robot_position" json:"position"`
	Payload   []byte `gorm:"type:blob" json:"payload"`
}

func (i *Image) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
