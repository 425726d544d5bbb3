package server

import (
	"bytes"
	"net/http"

	"github.com/samplecafe/cafe/pkg/dom"
	"github.com/samplecafe/cafe/pkg/middleware"
	"github.com/samplecafe/cafe/pkg/render"
	"github.com/samplecafe/cafe/pkg/vdom"
)

// document wraps a rendered container; see pages.Document.
type document func(body *dom.Node) render.Page

// observer returns the render observers for cycles run on behalf of r.
func (s *Server) observer(r *http.Request) render.Observer {
	return render.Observers(append([]render.Observer{
		s.metrics.Observer(),
		middleware.RenderSpans(r.Context(), s.tracer),
	}, s.observers...)...)
}

// renderPage renders top in a fresh root and writes the document doc
// builds around it. The root is unmounted once the response is buffered.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, top *vdom.VNode, doc document) {
	container := dom.MustElement("div")
	root := render.CreateRoot(container,
		render.WithLogger(s.logger),
		render.WithObserver(s.observer(r)),
		render.WithErrorHandler(func(err error) {
			s.logger.Warn("re-render failed", "path", r.URL.Path, "error", err)
		}),
	)
	defer root.Unmount()

	if err := root.Render(top); err != nil {
		s.renderFailed(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := render.WritePage(&buf, doc(container)); err != nil {
		s.renderFailed(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	buf.WriteTo(w)
}
