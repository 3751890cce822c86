package services

import (
	"os"
	"path/filepath"

	"weldwatch/global"
)

// TempJanitor purges the scratch directory used for ephemeral exports.
type TempJanitor struct {
	dir string
}

func NewTempJanitor(dir string) *TempJanitor { return &TempJanitor{dir: dir} }

// Sweep unlinks everything in the scratch directory. Per-file failures are
// logged and skipped; a listing failure skips the whole tick.
func (j *TempJanitor) Sweep() {
	dirEntries, err := os.ReadDir(j.dir)
	if err != nil {
		if !os.IsNotExist(err) {
			global.Logger.Error().Err(err).Str("dir", j.dir).Msg("list temp directory")
		}
		return
	}
	for _, e := range dirEntries {
		path := filepath.Join(j.dir, e.Name())
		if err := os.RemoveAll(path); err != nil {
			global.Logger.Error().Err(err).Str("path", path).Msg("remove temp file")
		}
	}
}
