package models

// Setting is the singleton configuration row. RecordDir is the watch
// directory; a change takes effect after the process restarts.
type Setting struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	RecordDir string `gorm:"size:1024" json:"recordDir"`
}
