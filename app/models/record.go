package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Record is one imported result file. FileName is the natural key: the watch
// directory never holds two files with the same name.
type Record struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
	FileName  string    `gorm:"uniqueIndex;size:255;not null" json:"fileName"`
	Model     string    `gorm:"size:64;index" json:"model"`
	PartID    string    `gorm:"size:64;index" json:"partId"`
	FileData  []byte    `gorm:"type:blob" json:"-"`

	// Import saga phases. EntriesDone and ImagesDone are set independently by
	// the two import branches; FinishImport is set only once both are true.
	// A record stuck short of FinishImport is discarded by the startup
	// reconciliation pass.
	EntriesDone  bool `json:"-"`
	ImagesDone   bool `json:"-"`
	FinishImport bool `json:"finishImport"`
}

func (r *Record) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
