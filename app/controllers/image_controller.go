package controllers

import (
	"encoding/json"
	"net/http"

	"weldwatch/app/services"
)

type ImageController struct {
	Images *services.ImageService
}

func NewImageController(images *services.ImageService) *ImageController {
	return &ImageController{Images: images}
}

// Get handles GET /image?recordId&robot&position, answering the PNG payload
// or 404.
func (c *ImageController) Get(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	recordID, robot, position := q.Get("recordId"), q.Get("robot"), q.Get("position")
	if recordID == "" || robot == "" || position == "" {
		writeJSONError(w, http.StatusBadRequest, "recordId, robot and position required")
		return
	}
	img, err := c.Images.GetOne(recordID, robot, position)
	if err != nil {
		writeError(w, err)
		return
	}
	if img == nil {
		writeJSONError(w, http.StatusNotFound, "image not found")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img.Payload)
}

// saveImageRequest names the data entry whose image should be exported; the
// collaborator holds entry ids from list-entries, never image ids.
type saveImageRequest struct {
	ID   string `json:"id"`
	Path string `json:"path"`
}

// Save handles POST /images/save: writes the image backing a data entry to a
// destination the user already picked in the collaborator's dialog.
func (c *ImageController) Save(w http.ResponseWriter, r *http.Request) {
	var req saveImageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.ID == "" || req.Path == "" {
		writeJSONError(w, http.StatusBadRequest, "id and path required")
		return
	}
	if err := c.Images.SaveToPath(req.ID, req.Path); err != nil {
		writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
