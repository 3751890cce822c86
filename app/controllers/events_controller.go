package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"weldwatch/app/notify"
)

type EventsController struct {
	Notifier *notify.Notifier
}

func NewEventsController(notifier *notify.Notifier) *EventsController {
	return &EventsController{Notifier: notifier}
}

// Stream handles GET /events: the fire-and-forget notification channel,
// served as server-sent events.
func (c *EventsController) Stream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeJSONError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	id, ch := c.Notifier.Subscribe()
	defer c.Notifier.Unsubscribe(id)

	for {
		select {
		case <-r.Context().Done():
			return
		case evt, ok := <-ch:
			if !ok {
				return
			}
			payload, err := json.Marshal(evt)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: %s\ndata: %s\n\n", evt.Name, payload)
			flusher.Flush()
		}
	}
}
