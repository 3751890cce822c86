package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Inspection result values for every channel.
const (
	ResultOK = "OK"
	ResultNG = "NG"
)

// DataEntry is one measured welding point inside a Record. The key
// (RobotName, Position, WeldingPoint) is unique within a record after merging.
type DataEntry struct {
	ID                 string `gorm:"primaryKey;size:36" json:"id"`
	RecordID           string `gorm:"size:36;index;not null" json:"recordId"`
	RobotName          string `gorm:"size:64" json:"robotName"`
	Position           string `gorm:"size:64" json:"position"`
	WeldingPoint       string `gorm:"size:64" json:"weldingPoint"`
	DeepLearningResult string `gorm:"size:8" json:"deepLearningResult"`
	VisionProResult    string `gorm:"size:8" json:"visionProResult"`
	OverallResult      string `gorm:"size:8" json:"overallResult"`
}

func (e *DataEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	return nil
}

// OverallResult derives the aggregate channel: NG wins over OK.
func OverallResult(deepLearning, visionPro string) string {
	if deepLearning == ResultNG || visionPro == ResultNG {
		return ResultNG
	}
	return ResultOK
}
