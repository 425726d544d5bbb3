package server

import (
	"time"

	"github.com/samplecafe/cafe/internal/config"
)

// Config holds HTTP server settings.
type Config struct {
	// Addr is the host:port to listen on.
	Addr string

	// ReadHeaderTimeout bounds reading request headers. Default: 5 seconds.
	ReadHeaderTimeout time.Duration

	// ReadTimeout bounds reading a whole request, uploads included.
	// Default: 60 seconds.
	ReadTimeout time.Duration

	// WriteTimeout bounds writing a response. Live sessions set their own
	// deadlines after the upgrade. Default: 30 seconds.
	WriteTimeout time.Duration

	// IdleTimeout closes idle keep-alive connections. Default: 2 minutes.
	IdleTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown. Default: 15 seconds.
	ShutdownTimeout time.Duration

	// StaticDir is served under /static/. Empty disables it.
	StaticDir string

	// UploadDir is served under UploadURL when uploads are kept on disk.
	UploadDir string
	UploadURL string

	// MaxUploadBytes limits gallery uploads. Default: 16 MiB.
	MaxUploadBytes int64

	// ThumbWidth is the width of gallery thumbnails; 0 disables them.
	ThumbWidth int

	// Live mounts the websocket endpoint at /live.
	Live bool

	// MetricsPath serves Prometheus metrics. Empty disables it.
	MetricsPath string
}

// DefaultConfig returns a Config with default timeouts.
func DefaultConfig() Config {
	return Config{
		Addr:              config.DefaultAddr,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       60 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
		ShutdownTimeout:   15 * time.Second,
		UploadURL:         config.DefaultUploadURL,
		MaxUploadBytes:    config.DefaultMaxUploadBytes,
	}
}

// FromConfig derives a Config from cafe.yaml settings.
func FromConfig(c *config.Config) Config {
	out := DefaultConfig()
	out.Addr = c.Server.Addr
	out.StaticDir = c.Site.StaticDir
	if c.Uploads.Backend == "disk" {
		out.UploadDir = c.Uploads.Dir
	}
	if c.Uploads.URL != "" {
		out.UploadURL = c.Uploads.URL
	}
	if c.Uploads.MaxBytes > 0 {
		out.MaxUploadBytes = c.Uploads.MaxBytes
	}
	out.ThumbWidth = c.Uploads.ThumbWidth
	out.Live = c.Server.Live
	if c.Metrics.Enabled {
		out.MetricsPath = c.Metrics.Path
	}
	return out
}

func (c *Config) applyDefaults() {
	d := DefaultConfig()
	if c.Addr == "" {
		c.Addr = d.Addr
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = d.ReadHeaderTimeout
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = d.ReadTimeout
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = d.WriteTimeout
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = d.IdleTimeout
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = d.ShutdownTimeout
	}
	if c.UploadURL == "" {
		c.UploadURL = d.UploadURL
	}
	if c.MaxUploadBytes <= 0 {
		c.MaxUploadBytes = d.MaxUploadBytes
	}
}
