package server

import (
	"encoding/json"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	cerrors "github.com/samplecafe/cafe/internal/errors"
)

// renderFailed answers 500 for a page that could not be rendered.
func (s *Server) renderFailed(w http.ResponseWriter, r *http.Request, err error) {
	ce := cerrors.FromError(err, "C500")
	s.logger.Error("render failed",
		"path", r.URL.Path,
		"request_id", chimw.GetReqID(r.Context()),
		"error", ce.FormatCompact(),
		"cause", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// storeFailed answers 500 for a content store error.
func (s *Server) storeFailed(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error("content store failed",
		"path", r.URL.Path,
		"request_id", chimw.GetReqID(r.Context()),
		"error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(v)
}

// writeJSONError writes {"error": message}.
func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
