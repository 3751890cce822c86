package controllers

import (
	"encoding/json"
	"net/http"

	"weldwatch/app/services"
)

type SettingController struct {
	Settings *services.SettingService
}

func NewSettingController(settings *services.SettingService) *SettingController {
	return &SettingController{Settings: settings}
}

func (c *SettingController) Get(w http.ResponseWriter, r *http.Request) {
	setting, err := c.Settings.Get()
	if err != nil {
		writeError(w, err)
		return
	}
	if setting == nil {
		writeJSONError(w, http.StatusNotFound, "setting not configured")
		return
	}
	writeJSON(w, http.StatusOK, setting)
}

type saveSettingRequest struct {
	RecordDir string `json:"recordDir"`
}

func (c *SettingController) Save(w http.ResponseWriter, r *http.Request) {
	var req saveSettingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.RecordDir == "" {
		writeJSONError(w, http.StatusBadRequest, "recordDir required")
		return
	}
	setting, err := c.Settings.Save(req.RecordDir)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, setting)
}
