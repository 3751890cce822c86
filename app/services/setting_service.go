package services

import (
	"weldwatch/app/models"
	"weldwatch/app/notify"
	"weldwatch/app/repo"
)

type SettingService struct {
	settings *repo.SettingRepository
	notifier *notify.Notifier
}

func NewSettingService(settings *repo.SettingRepository, notifier *notify.Notifier) *SettingService {
	return &SettingService{settings: settings, notifier: notifier}
}

// Get returns the singleton setting row, nil before the first save.
func (s *SettingService) Get() (*models.Setting, error) {
	return s.settings.First()
}

// Save creates or updates the watch directory. The running scanner keeps its
// startup value; the collaborator restarts the process to apply the change.
func (s *SettingService) Save(recordDir string) (*models.Setting, error) {
	setting, err := s.settings.First()
	if err != nil {
		return nil, err
	}
	if setting == nil {
		setting = &models.Setting{}
	}
	setting.RecordDir = recordDir
	if err := s.settings.Save(setting); err != nil {
		return nil, err
	}
	s.notifier.Info("record directory updated successfully! Please restart the application to apply changes!")
	return setting, nil
}
