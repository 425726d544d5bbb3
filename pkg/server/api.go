package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/samplecafe/cafe/internal/content"
	"github.com/samplecafe/cafe/internal/routes"
)

func (s *Server) apiContent(w http.ResponseWriter, r *http.Request) {
	sec, err := s.content.Section(chi.URLParam(r, "section"))
	if errors.Is(err, content.ErrNotFound) {
		writeJSONError(w, http.StatusNotFound, "not found")
		return
	}
	if err != nil {
		s.storeFailed(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, sec)
}

func (s *Server) apiFeatures(w http.ResponseWriter, r *http.Request) {
	features, err := s.content.Features()
	if err != nil {
		s.storeFailed(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(features))
}

// apiGallery honours ?limit=N for positive N; anything else returns every
// image.
func (s *Server) apiGallery(w http.ResponseWriter, r *http.Request) {
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 0 {
		limit = 0
	}
	images, err := s.content.Gallery(limit)
	if err != nil {
		s.storeFailed(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(images))
}

func (s *Server) apiAnnouncements(w http.ResponseWriter, r *http.Request) {
	items, err := s.content.Announcements()
	if err != nil {
		s.storeFailed(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, nonNil(items))
}

func (s *Server) apiNavigation(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]routes.Link{"links": routes.NavLinks})
}

// nonNil makes empty lists encode as [] rather than null.
func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
