package live

import (
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gorilla/websocket"

	"github.com/samplecafe/cafe/pkg/middleware"
	"github.com/samplecafe/cafe/pkg/render"
	"github.com/samplecafe/cafe/pkg/vdom"
)

// MountFunc builds the element a session renders for r. setTitle may be
// handed to the page so title changes reach the client.
type MountFunc func(r *http.Request, setTitle func(string)) (*vdom.VNode, error)

// Config configures a Handler.
type Config struct {
	// ReadTimeout closes connections that send neither events nor pongs.
	// Default: 60 seconds.
	ReadTimeout time.Duration

	// WriteTimeout bounds each write. Default: 10 seconds.
	WriteTimeout time.Duration

	// PingInterval must be shorter than ReadTimeout. Default: 25 seconds.
	PingInterval time.Duration

	// MaxMessageBytes caps client messages. Default: 64 KiB.
	MaxMessageBytes int64

	// CheckOrigin validates the request origin. Default: SameOriginCheck.
	CheckOrigin func(r *http.Request) bool

	// Observers are added to every session root.
	Observers []render.Observer

	// RequestObservers build per-connection observers, for example spans
	// tied to the upgrade request's context.
	RequestObservers func(r *http.Request) []render.Observer
}

// DefaultConfig returns the default timeouts and limits.
func DefaultConfig() Config {
	return Config{
		ReadTimeout:     60 * time.Second,
		WriteTimeout:    10 * time.Second,
		PingInterval:    25 * time.Second,
		MaxMessageBytes: 64 << 10,
		CheckOrigin:     SameOriginCheck,
	}
}

// SameOriginCheck accepts requests without an Origin header and those whose
// Origin host matches the request host.
func SameOriginCheck(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" {
		return true
	}
	u, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return r.Host != "" && u.Host == r.Host
}

// Handler upgrades requests to live sessions.
type Handler struct {
	mount    MountFunc
	config   Config
	upgrader websocket.Upgrader
	logger   *slog.Logger
	metrics  *middleware.Metrics
}

// NewHandler creates a Handler. Zero config fields take their defaults;
// metrics may be nil.
func NewHandler(mount MountFunc, config Config, logger *slog.Logger, metrics *middleware.Metrics) *Handler {
	d := DefaultConfig()
	if config.ReadTimeout <= 0 {
		config.ReadTimeout = d.ReadTimeout
	}
	if config.WriteTimeout <= 0 {
		config.WriteTimeout = d.WriteTimeout
	}
	if config.PingInterval <= 0 {
		config.PingInterval = d.PingInterval
	}
	if config.PingInterval >= config.ReadTimeout {
		config.PingInterval = config.ReadTimeout * 2 / 5
	}
	if config.MaxMessageBytes <= 0 {
		config.MaxMessageBytes = d.MaxMessageBytes
	}
	if config.CheckOrigin == nil {
		config.CheckOrigin = d.CheckOrigin
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		mount:  mount,
		config: config,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 16384,
			CheckOrigin:     config.CheckOrigin,
		},
		logger:  logger.With("component", "live"),
		metrics: metrics,
	}
}

// ServeHTTP upgrades the connection and serves the session until the
// client goes away.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already written an error response.
		h.logger.Debug("upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	h.metrics.LiveSessionOpened()
	defer h.metrics.LiveSessionClosed()

	observers := append([]render.Observer(nil), h.config.Observers...)
	if h.config.RequestObservers != nil {
		observers = append(observers, h.config.RequestObservers(r)...)
	}

	s := newSession(conn, h.config, h.logger.With("path", r.URL.Query().Get("path")), h.metrics, observers)
	s.serve(r, h.mount)
}
