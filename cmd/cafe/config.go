package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/samplecafe/cafe/internal/config"
	"github.com/samplecafe/cafe/internal/content"
	"github.com/samplecafe/cafe/internal/errors"
)

type globalOptions struct {
	configPath string
	dataPath   string
	noColor    bool
}

// load reads cafe.yaml (defaults when it is missing), applies CAFE_*
// overrides and flags, and validates the result.
func (o *globalOptions) load() (*config.Config, error) {
	if o.noColor {
		errors.DisableColors()
	}
	cfg, err := config.LoadOptional(o.configPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.Getenv)
	if o.dataPath != "" {
		cfg.Data.Path = o.dataPath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// openStore loads the config and opens the content store it names.
func (o *globalOptions) openStore() (*config.Config, *content.Store, error) {
	cfg, err := o.load()
	if err != nil {
		return nil, nil, err
	}
	store, err := content.Open(cfg.Data.Path)
	if err != nil {
		return nil, nil, err
	}
	return cfg, store, nil
}

// newLogger builds the process logger from log.level and log.format.
func newLogger(c config.LogConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	switch strings.ToLower(c.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var h slog.Handler
	if strings.ToLower(c.Format) == "json" {
		h = slog.NewJSONHandler(w, opts)
	} else {
		h = slog.NewTextHandler(w, opts)
	}
	return slog.New(h)
}
