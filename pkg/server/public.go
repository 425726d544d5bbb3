package server

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/samplecafe/cafe/internal/pages"
	"github.com/samplecafe/cafe/internal/routes"
	"github.com/samplecafe/cafe/pkg/dom"
	"github.com/samplecafe/cafe/pkg/live"
	"github.com/samplecafe/cafe/pkg/middleware"
	"github.com/samplecafe/cafe/pkg/render"
	"github.com/samplecafe/cafe/pkg/vdom"
)

// errContentUnavailable is what visitors see when the store fails.
var errContentUnavailable = errors.New("コンテンツを読み込めませんでした。時間をおいて再度お試しください。")

// site builds the App element for path. A store failure is logged and
// rendered as the error section.
func (s *Server) site(path string, onTitle func(string)) pages.Site {
	snap, err := s.content.Snapshot()
	if err != nil {
		s.logger.Error("load snapshot", "path", path, "error", err)
		err = errContentUnavailable
	}
	return pages.Site{
		Path:     path,
		Snapshot: snap,
		Err:      err,
		OnTitle:  onTitle,
		Year:     s.now().Year(),
	}
}

// servePage renders a public page.
func (s *Server) servePage(w http.ResponseWriter, r *http.Request) {
	path, changed, err := routes.Canonicalize(r.URL.Path)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	if changed {
		target := path
		if r.URL.RawQuery != "" {
			target += "?" + r.URL.RawQuery
		}
		http.Redirect(w, r, target, http.StatusMovedPermanently)
		return
	}

	status := http.StatusOK
	if _, ok := routes.Lookup(path); !ok {
		status = http.StatusNotFound
	}

	title := routes.Title(path)
	site := s.site(path, func(t string) { title = t })
	s.renderPage(w, r, status, site.Element(), func(body *dom.Node) render.Page {
		return pages.Document(title, body)
	})
}

// liveHandler mounts public pages for live sessions. The page path comes
// from the path query parameter.
func (s *Server) liveHandler(logger *slog.Logger) *live.Handler {
	mount := func(r *http.Request, setTitle func(string)) (*vdom.VNode, error) {
		path, _, err := routes.Canonicalize(r.URL.Query().Get("path"))
		if err != nil {
			return nil, fmt.Errorf("live: %w", err)
		}
		if routes.RequiresAuth(path) || path == routes.AdminLogin {
			return nil, fmt.Errorf("live: %s is not a public page", path)
		}
		return s.site(path, setTitle).Element(), nil
	}
	config := live.DefaultConfig()
	config.Observers = append([]render.Observer{s.metrics.Observer()}, s.observers...)
	config.RequestObservers = func(r *http.Request) []render.Observer {
		return []render.Observer{middleware.RenderSpans(r.Context(), s.tracer)}
	}
	return live.NewHandler(mount, config, logger, s.metrics)
}
