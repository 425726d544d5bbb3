package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel/trace"

	"github.com/samplecafe/cafe/internal/content"
	"github.com/samplecafe/cafe/pkg/live"
	"github.com/samplecafe/cafe/pkg/middleware"
	"github.com/samplecafe/cafe/pkg/render"
	"github.com/samplecafe/cafe/pkg/session"
	"github.com/samplecafe/cafe/pkg/upload"
)

// Deps are the services a Server is wired to. Content and Sessions are
// required.
type Deps struct {
	Content  *content.Store
	Sessions *session.Manager

	// Uploads keeps gallery images. Nil disables uploads.
	Uploads upload.Store

	// Metrics may be nil. Gatherer backs the metrics endpoint and defaults
	// to prometheus.DefaultGatherer.
	Metrics  *middleware.Metrics
	Gatherer prometheus.Gatherer

	// TracerProvider defaults to the global provider.
	TracerProvider trace.TracerProvider

	Logger *slog.Logger

	// RenderObservers see every render cycle next to the metrics and
	// tracing observers, for page requests and live sessions alike.
	RenderObservers []render.Observer

	// Now replaces time.Now for the footer year.
	Now func() time.Time
}

// Server serves the site.
type Server struct {
	config   Config
	content  *content.Store
	sessions *session.Manager
	uploads  upload.Store
	metrics  *middleware.Metrics
	gatherer prometheus.Gatherer
	tracer   trace.TracerProvider
	logger   *slog.Logger
	now      func() time.Time

	observers []render.Observer

	router     chi.Router
	httpServer *http.Server
}

// New creates a Server and builds its routes.
func New(config Config, deps Deps) *Server {
	config.applyDefaults()

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	gatherer := deps.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	s := &Server{
		config:   config,
		content:  deps.Content,
		sessions: deps.Sessions,
		uploads:  deps.Uploads,
		metrics:  deps.Metrics,
		gatherer: gatherer,
		tracer:   deps.TracerProvider,
		logger:   logger.With("component", "server"),
		now:      now,

		observers: deps.RenderObservers,
	}
	s.router = s.routes(logger)
	return s
}

// Handler returns the root handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes(logger *slog.Logger) chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLogger(logger))
	r.Use(chimw.Recoverer)
	r.Use(s.metrics.Handler)
	r.Use(middleware.Tracing(
		middleware.WithTracerProvider(s.tracer),
		middleware.WithRequestFilter(func(r *http.Request) bool {
			return !strings.HasPrefix(r.URL.Path, "/static/")
		}),
	))

	r.Route("/api", func(r chi.Router) {
		r.Get("/content/{section}", s.apiContent)
		r.Get("/features", s.apiFeatures)
		r.Get("/gallery", s.apiGallery)
		r.Get("/announcements", s.apiAnnouncements)
		r.Get("/navigation", s.apiNavigation)
		r.NotFound(func(w http.ResponseWriter, r *http.Request) {
			writeJSONError(w, http.StatusNotFound, "not found")
		})
	})

	r.Route("/admin", s.adminRoutes)

	r.Get(live.ClientScriptPath, live.ClientScript().ServeHTTP)
	if s.config.UploadDir != "" {
		prefix := strings.TrimSuffix(s.config.UploadURL, "/")
		r.Handle(prefix+"/*", http.StripPrefix(prefix+"/", files(s.config.UploadDir)))
	}
	if s.config.StaticDir != "" {
		r.Handle("/static/*", http.StripPrefix("/static/", files(s.config.StaticDir)))
	}
	if s.config.Live {
		r.Get("/live", s.liveHandler(logger).ServeHTTP)
	}
	if s.config.MetricsPath != "" {
		r.Handle(s.config.MetricsPath, promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{}))
	}

	r.Get("/*", s.servePage)
	return r
}

// files serves dir without directory listings.
func files(dir string) http.Handler {
	fs := http.FileServer(http.Dir(dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "" || strings.HasSuffix(r.URL.Path, "/") {
			http.NotFound(w, r)
			return
		}
		fs.ServeHTTP(w, r)
	})
}

// Run serves on config.Addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		ReadTimeout:       s.config.ReadTimeout,
		WriteTimeout:      s.config.WriteTimeout,
		IdleTimeout:       s.config.IdleTimeout,
		BaseContext:       func(net.Listener) context.Context { return context.WithoutCancel(ctx) },
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String())
		errCh <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown stops accepting connections and waits for in-flight requests,
// up to config.ShutdownTimeout.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}
	s.logger.Info("server shutdown complete")
	return nil
}
