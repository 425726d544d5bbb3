package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/samplecafe/cafe/internal/config"
	"github.com/samplecafe/cafe/internal/content"
	"github.com/samplecafe/cafe/pkg/middleware"
	"github.com/samplecafe/cafe/pkg/render"
	"github.com/samplecafe/cafe/pkg/server"
	"github.com/samplecafe/cafe/pkg/session"
	"github.com/samplecafe/cafe/pkg/upload"
)

// sessionPruneInterval is how often expired sessions are removed from the
// bolt session store.
const sessionPruneInterval = 10 * time.Minute

func serveCmd(opts *globalOptions) *cobra.Command {
	var (
		addr   string
		noLive bool
		noSeed bool
		secure bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		Long: `Run the web server.

On start the content store is created if needed, filled with the default
copy when empty, and the admin account from cafe.yaml is created if no
account exists yet.

Examples:
  cafe serve
  cafe serve --addr=:9000
  CAFE_SECRET=... cafe serve --config=/etc/cafe/cafe.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			if noLive {
				cfg.Server.Live = false
			}
			if noSeed {
				cfg.Data.Seed = false
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, cfg, secure)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides server.addr)")
	cmd.Flags().BoolVar(&noLive, "no-live", false, "Disable the live websocket endpoint")
	cmd.Flags().BoolVar(&noSeed, "no-seed", false, "Do not seed an empty content store")
	cmd.Flags().BoolVar(&secure, "secure-cookies", false, "Mark session cookies HTTPS-only")

	return cmd
}

func runServe(ctx context.Context, cfg *config.Config, secure bool) error {
	logger := newLogger(cfg.Log, os.Stderr)
	slog.SetDefault(logger)

	printBanner()
	info("Listening on %s", cfg.Server.Addr)
	info("Content store: %s", cfg.Data.Path)

	store, err := content.Open(cfg.Data.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	if cfg.Data.Seed {
		if err := store.Seed(false); err != nil {
			return err
		}
	}
	created, err := store.EnsureAdmin(cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		return err
	}
	if created {
		warn("Created admin account %q; change its password with `cafe passwd %s`", cfg.Admin.Username, cfg.Admin.Username)
	}

	sessionStore, err := newSessionStore(ctx, cfg, store, logger)
	if err != nil {
		return err
	}
	defer sessionStore.Close()

	var secret []byte
	if cfg.Server.Secret != "" {
		secret = []byte(cfg.Server.Secret)
	}
	sessions := session.NewManager(sessionStore, session.Config{
		Secret: secret,
		TTL:    cfg.Server.TTL(),
		Secure: secure,
	}, logger)

	uploads, err := newUploadStore(cfg)
	if err != nil {
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	deps := server.Deps{
		Content:  store,
		Sessions: sessions,
		Uploads:  uploads,
		Metrics:  middleware.NewMetrics(middleware.WithRegistry(registry)),
		Gatherer: registry,
		Logger:   logger,
	}
	if logger.Enabled(ctx, slog.LevelDebug) {
		deps.RenderObservers = []render.Observer{render.LogObserver(logger.With("component", "render"))}
	}

	srv := server.New(server.FromConfig(cfg), deps)
	success("Ready")
	return srv.Run(ctx)
}

// newSessionStore returns the store named by server.sessions. The bolt
// store shares the content database and is pruned until ctx ends.
func newSessionStore(ctx context.Context, cfg *config.Config, store *content.Store, logger *slog.Logger) (session.Store, error) {
	if cfg.Server.Sessions != "bolt" {
		return session.NewMemoryStore(), nil
	}
	bs, err := session.NewBoltStore(store.DB())
	if err != nil {
		return nil, err
	}
	go func() {
		ticker := time.NewTicker(sessionPruneInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				n, err := bs.Prune()
				if err != nil {
					logger.Warn("prune sessions", "error", err)
				} else if n > 0 {
					logger.Debug("pruned sessions", "count", n)
				}
			case <-ctx.Done():
				return
			}
		}
	}()
	return bs, nil
}

// newUploadStore returns the gallery store named by uploads.backend.
func newUploadStore(cfg *config.Config) (upload.Store, error) {
	u := cfg.Uploads
	if u.Backend == "s3" {
		client := upload.NewS3Client(upload.ClientOptions{
			Region:    u.S3.Region,
			Endpoint:  u.S3.Endpoint,
			AccessKey: u.S3.AccessKey,
			SecretKey: u.S3.SecretKey,
			PathStyle: u.S3.PathStyle,
		})
		return upload.NewS3Store(client, upload.S3Config{
			Bucket:    u.S3.Bucket,
			Region:    u.S3.Region,
			Prefix:    u.S3.Prefix,
			PublicURL: u.S3.PublicURL,
			MaxSize:   u.MaxBytes,
		}), nil
	}
	return upload.NewDiskStore(u.Dir, u.URL, u.MaxBytes)
}
