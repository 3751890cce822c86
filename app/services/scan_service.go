package services

import (
	"os"
	"strings"
	"sync/atomic"

	"weldwatch/app/notify"
	"weldwatch/app/repo"
	"weldwatch/global"

	"github.com/fsnotify/fsnotify"
)

const resultExt = ".xlsx"

// ScanService polls the watch directory for result files that have not been
// fully imported yet and drives the importer for each. A scan that fires
// while another is running is a no-op; one bad file never stops the loop.
type ScanService struct {
	records  *repo.RecordRepository
	settings *repo.SettingRepository
	importer *ImportService
	notifier *notify.Notifier

	watchDir string
	scanning atomic.Bool
}

func NewScanService(records *repo.RecordRepository, settings *repo.SettingRepository, importer *ImportService, notifier *notify.Notifier) *ScanService {
	return &ScanService{
		records:  records,
		settings: settings,
		importer: importer,
		notifier: notifier,
	}
}

// LoadWatchDir reads the configured watch directory once at startup. A later
// setting change takes effect on restart only.
func (s *ScanService) LoadWatchDir() {
	setting, err := s.settings.First()
	if err != nil {
		global.Logger.Error().Err(err).Msg("load watch directory setting")
		return
	}
	if setting == nil || setting.RecordDir == "" {
		s.notifier.Error("Record directory not set! Please set record directory in settings!")
		return
	}
	s.watchDir = setting.RecordDir
}

// Scan is one poll of the watch directory.
func (s *ScanService) Scan() {
	if !s.scanning.CompareAndSwap(false, true) {
		return
	}
	defer s.scanning.Store(false)

	if s.watchDir == "" {
		return
	}
	dirEntries, err := os.ReadDir(s.watchDir)
	if err != nil {
		global.Logger.Error().Err(err).Str("dir", s.watchDir).Msg("read watch directory")
		return
	}
	for _, e := range dirEntries {
		name := e.Name()
		if e.IsDir() || !strings.HasSuffix(name, resultExt) {
			continue
		}
		finished, err := s.records.HasFinished(name)
		if err != nil {
			global.Logger.Error().Err(err).Str("file", name).Msg("check record state")
			continue
		}
		if finished {
			continue
		}
		s.notifier.ImportStarted(strings.TrimSuffix(name, resultExt))
		if err := s.importer.ImportFile(name, s.watchDir); err != nil {
			global.Logger.Error().Err(err).Str("file", name).Msg("import failed")
			continue
		}
		global.Logger.Info().Str("file", name).Msg("import finished")
	}
}

// Watch attaches a filesystem watcher to the watch directory and calls wake
// whenever a result file appears or changes. The 1s poll stays authoritative;
// the watcher only shortens the latency between drop and import. Returns a
// closer, or nil when watching is unavailable (polling still covers).
func (s *ScanService) Watch(wake func()) func() {
	if s.watchDir == "" {
		return nil
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		global.Logger.Warn().Err(err).Msg("fs watcher unavailable, relying on polling")
		return nil
	}
	if err := watcher.Add(s.watchDir); err != nil {
		global.Logger.Warn().Err(err).Str("dir", s.watchDir).Msg("cannot watch directory, relying on polling")
		_ = watcher.Close()
		return nil
	}
	go func() {
		for {
			select {
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				if evt.Op&(fsnotify.Create|fsnotify.Write) != 0 && strings.HasSuffix(evt.Name, resultExt) {
					wake()
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				global.Logger.Warn().Err(err).Msg("fs watcher error")
			}
		}
	}()
	return func() { _ = watcher.Close() }
}
