package controllers

import (
	"net/http"
	"time"

	"weldwatch/app/repo"
	"weldwatch/app/services"
)

type RecordController struct {
	Data *services.DataService
}

func NewRecordController(data *services.DataService) *RecordController {
	return &RecordController{Data: data}
}

// List handles GET /records?from&to&model&partId.
func (c *RecordController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := repo.RecordFilter{Model: q.Get("model"), PartID: q.Get("partId")}
	if v := q.Get("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid from timestamp")
			return
		}
		f.From = &t
	}
	if v := q.Get("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, "invalid to timestamp")
			return
		}
		f.To = &t
	}
	recs, err := c.Data.ListRecords(f)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, recs)
}

// Entries handles GET /entries?recordId.
func (c *RecordController) Entries(w http.ResponseWriter, r *http.Request) {
	recordID := r.URL.Query().Get("recordId")
	if recordID == "" {
		writeJSONError(w, http.StatusBadRequest, "recordId required")
		return
	}
	entries, err := c.Data.ListEntries(recordID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

// Open handles POST /records/open?id: reopens the stored spreadsheet via the
// host OS.
func (c *RecordController) Open(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" {
		writeJSONError(w, http.StatusBadRequest, "id required")
		return
	}
	if err := c.Data.OpenRecordFile(id); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// PointRate handles GET /point-rate?model&start&end.
func (c *RecordController) PointRate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	model := q.Get("model")
	start, err := time.Parse(time.RFC3339, q.Get("start"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid start timestamp")
		return
	}
	end, err := time.Parse(time.RFC3339, q.Get("end"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid end timestamp")
		return
	}
	rates, err := c.Data.PointRate(model, start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rates)
}
