package router

import (
	"net/http"

	"weldwatch/app/controllers"
	"weldwatch/app/middleware"
)

// Op binds one logical operation name to its HTTP surface. The table is the
// whole contract: no interception or reflection sits between name and
// handler.
type Op struct {
	Name    string
	Method  string
	Path    string
	Handler http.HandlerFunc
}

func Table(rec *controllers.RecordController, img *controllers.ImageController, set *controllers.SettingController, ev *controllers.EventsController) []Op {
	return []Op{
		{Name: "list-records", Method: http.MethodGet, Path: "/records", Handler: rec.List},
		{Name: "open-record-file", Method: http.MethodPost, Path: "/records/open", Handler: rec.Open},
		{Name: "list-entries", Method: http.MethodGet, Path: "/entries", Handler: rec.Entries},
		{Name: "get-point-rate", Method: http.MethodGet, Path: "/point-rate", Handler: rec.PointRate},
		{Name: "get-image", Method: http.MethodGet, Path: "/image", Handler: img.Get},
		{Name: "save-image-to-path", Method: http.MethodPost, Path: "/images/save", Handler: img.Save},
		{Name: "get-setting", Method: http.MethodGet, Path: "/setting", Handler: set.Get},
		{Name: "save-setting", Method: http.MethodPut, Path: "/setting", Handler: set.Save},
		{Name: "events", Method: http.MethodGet, Path: "/events", Handler: ev.Stream},
	}
}

func New(ops []Op) http.Handler {
	mux := http.NewServeMux()
	byPath := make(map[string][]Op)
	for _, op := range ops {
		byPath[op.Path] = append(byPath[op.Path], op)
	}
	for path, pathOps := range byPath {
		pathOps := pathOps
		mux.HandleFunc(path, func(w http.ResponseWriter, r *http.Request) {
			for _, op := range pathOps {
				if r.Method == op.Method {
					op.Handler(w, r)
					return
				}
			}
			w.WriteHeader(http.StatusMethodNotAllowed)
		})
	}
	return middleware.Logging(mux)
}
