package config

import (
	"net"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/samplecafe/cafe/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "cafe.yaml"

	// DefaultAddr is the default listen address.
	DefaultAddr = ":8080"

	// DefaultDataPath is the default bbolt database file.
	DefaultDataPath = "data/cafe.db"

	// DefaultUploadDir is the default directory for disk uploads.
	DefaultUploadDir = "data/uploads"

	// DefaultUploadURL is the URL prefix uploads are served under.
	DefaultUploadURL = "/static/uploads"

	// DefaultMaxUploadBytes is the request size limit for gallery uploads.
	DefaultMaxUploadBytes = 16 << 20

	// MinSecretLength is the shortest accepted session secret.
	MinSecretLength = 16
)

// Config represents the complete cafe.yaml configuration.
type Config struct {
	Site    SiteConfig    `yaml:"site"`
	Server  ServerConfig  `yaml:"server"`
	Data    DataConfig    `yaml:"data"`
	Uploads UploadsConfig `yaml:"uploads"`
	Admin   AdminConfig   `yaml:"admin"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// SiteConfig holds presentation settings.
type SiteConfig struct {
	Name string `yaml:"name,omitempty"`
	Lang string `yaml:"lang,omitempty"`

	// StaticDir holds the stylesheet and images referenced by seeded content.
	StaticDir string `yaml:"static_dir,omitempty"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	// Addr is the host:port to listen on.
	Addr string `yaml:"addr,omitempty"`

	// Secret signs admin session cookies. A random one is generated at
	// startup when empty, which logs admins out on every restart.
	Secret string `yaml:"secret,omitempty"`

	// SessionTTL is how long an admin session stays valid (e.g. "12h").
	SessionTTL string `yaml:"session_ttl,omitempty"`

	// Sessions selects where admin sessions live: "memory" (default) or
	// "bolt", which keeps them in the content database across restarts.
	Sessions string `yaml:"sessions,omitempty"`

	// Live enables the websocket endpoint used for interactive pages.
	Live bool `yaml:"live"`
}

// TTL returns SessionTTL as a duration, or 12h when it does not parse.
func (s ServerConfig) TTL() time.Duration {
	if d, err := time.ParseDuration(s.SessionTTL); err == nil && d > 0 {
		return d
	}
	return 12 * time.Hour
}

// DataConfig points at the content store.
type DataConfig struct {
	Path string `yaml:"path,omitempty"`

	// Seed fills an empty store with the default café copy on startup.
	Seed bool `yaml:"seed"`
}

// UploadsConfig selects where gallery images are kept.
type UploadsConfig struct {
	// Backend is "disk" or "s3".
	Backend string `yaml:"backend,omitempty"`

	Dir      string `yaml:"dir,omitempty"`
	URL      string `yaml:"url,omitempty"`
	MaxBytes int64  `yaml:"max_bytes,omitempty"`

	// ThumbWidth is the width of generated thumbnails; 0 disables them.
	ThumbWidth int `yaml:"thumb_width,omitempty"`

	S3 S3Config `yaml:"s3,omitempty"`
}

// S3Config contains S3 bucket settings.
type S3Config struct {
	Bucket    string `yaml:"bucket,omitempty"`
	Region    string `yaml:"region,omitempty"`
	Endpoint  string `yaml:"endpoint,omitempty"`
	Prefix    string `yaml:"prefix,omitempty"`
	PublicURL string `yaml:"public_url,omitempty"`
	AccessKey string `yaml:"access_key,omitempty"`
	SecretKey string `yaml:"secret_key,omitempty"`
	PathStyle bool   `yaml:"path_style,omitempty"`
}

// AdminConfig holds the account created on first start.
type AdminConfig struct {
	Username string `yaml:"username,omitempty"`
	Password string `yaml:"password,omitempty"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	Level  string `yaml:"level,omitempty"`
	Format string `yaml:"format,omitempty"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path,omitempty"`
}

// New creates a new Config with default values.
func New() *Config {
	return &Config{
		Site: SiteConfig{
			Name:      "Sample Cafe",
			Lang:      "ja",
			StaticDir: "static",
		},
		Server: ServerConfig{
			Addr:       DefaultAddr,
			SessionTTL: "12h",
			Sessions:   "memory",
			Live:       true,
		},
		Data: DataConfig{
			Path: DefaultDataPath,
			Seed: true,
		},
		Uploads: UploadsConfig{
			Backend:    "disk",
			Dir:        DefaultUploadDir,
			URL:        DefaultUploadURL,
			MaxBytes:   DefaultMaxUploadBytes,
			ThumbWidth: 480,
		},
		Admin: AdminConfig{
			Username: "admin",
			Password: "admin1234",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: true,
			Path:    "/metrics",
		},
	}
}

// Load reads configuration from the specified directory.
// It looks for cafe.yaml in the directory.
func Load(dir string) (*Config, error) {
	return LoadFile(filepath.Join(dir, ConfigFileName))
}

// LoadOptional is like LoadFile but returns the defaults when the file
// does not exist.
func LoadOptional(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return New(), nil
	}
	return LoadFile(path)
}

var yamlLine = regexp.MustCompile(`line (\d+):`)

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("C100").
				WithDetail("No cafe.yaml found in " + filepath.Dir(path)).
				WithSuggestion("Create cafe.yaml or run without --config to use the defaults")
		}
		return nil, errors.New("C100").Wrap(err)
	}

	cfg := New()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		ce := errors.New("C100").
			WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
			WithSuggestion("Check that the file is valid YAML")
		if m := yamlLine.FindStringSubmatch(err.Error()); m != nil {
			line, _ := strconv.Atoi(m[1])
			ce.WithLocation(path, line, 0)
		}
		return nil, ce
	}

	cfg.configPath = path
	cfg.applyDefaults()

	return cfg, nil
}

// SaveTo writes the configuration to the specified path.
func (c *Config) SaveTo(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.New("C100").Wrap(err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return errors.New("C100").Wrap(err)
	}
	c.configPath = path
	return nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

// applyDefaults fills in values a partial file left empty.
func (c *Config) applyDefaults() {
	d := New()
	if c.Server.Addr == "" {
		c.Server.Addr = d.Server.Addr
	}
	if c.Server.SessionTTL == "" {
		c.Server.SessionTTL = d.Server.SessionTTL
	}
	if c.Server.Sessions == "" {
		c.Server.Sessions = d.Server.Sessions
	}
	if c.Data.Path == "" {
		c.Data.Path = d.Data.Path
	}
	if c.Uploads.Backend == "" {
		c.Uploads.Backend = d.Uploads.Backend
	}
	if c.Uploads.Dir == "" {
		c.Uploads.Dir = d.Uploads.Dir
	}
	if c.Uploads.URL == "" {
		c.Uploads.URL = d.Uploads.URL
	}
	if c.Uploads.MaxBytes == 0 {
		c.Uploads.MaxBytes = d.Uploads.MaxBytes
	}
	if c.Log.Level == "" {
		c.Log.Level = d.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = d.Log.Format
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = d.Metrics.Path
	}
	if c.Site.Lang == "" {
		c.Site.Lang = d.Site.Lang
	}
	if c.Site.StaticDir == "" {
		c.Site.StaticDir = d.Site.StaticDir
	}
}

// ApplyEnv overrides fields from CAFE_* environment variables. getenv is
// usually os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) {
	set := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	set(&c.Server.Addr, "CAFE_ADDR")
	set(&c.Server.Secret, "CAFE_SECRET")
	set(&c.Data.Path, "CAFE_DATA")
	set(&c.Uploads.Backend, "CAFE_UPLOADS_BACKEND")
	set(&c.Uploads.Dir, "CAFE_UPLOADS_DIR")
	set(&c.Uploads.S3.Bucket, "CAFE_S3_BUCKET")
	set(&c.Uploads.S3.Region, "CAFE_S3_REGION")
	set(&c.Uploads.S3.Endpoint, "CAFE_S3_ENDPOINT")
	set(&c.Uploads.S3.PublicURL, "CAFE_S3_PUBLIC_URL")
	set(&c.Uploads.S3.AccessKey, "CAFE_S3_ACCESS_KEY")
	set(&c.Uploads.S3.SecretKey, "CAFE_S3_SECRET_KEY")
	set(&c.Log.Level, "CAFE_LOG_LEVEL")
	set(&c.Log.Format, "CAFE_LOG_FORMAT")
	if v := getenv("CAFE_S3_PATH_STYLE"); v != "" {
		c.Uploads.S3.PathStyle, _ = strconv.ParseBool(v)
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if _, port, err := net.SplitHostPort(c.Server.Addr); err != nil {
		return c.locate(errors.New("C101").Wrap(err), "addr")
	} else if n, err := strconv.Atoi(port); err != nil || n < 0 || n > 65535 {
		return c.locate(errors.New("C101").WithDetail("Port must be between 0 and 65535"), "addr")
	}

	if c.Server.Secret != "" && len(c.Server.Secret) < MinSecretLength {
		return c.locate(errors.New("C102"), "secret")
	}

	if ttl, err := time.ParseDuration(c.Server.SessionTTL); err != nil || ttl <= 0 {
		return c.locate(errors.New("C106").
			WithSuggestion("Got "+strconv.Quote(c.Server.SessionTTL)), "session_ttl")
	}
	switch c.Server.Sessions {
	case "memory", "bolt":
	default:
		return c.locate(errors.New("C107"), "sessions")
	}

	switch c.Uploads.Backend {
	case "disk":
	case "s3":
		if c.Uploads.S3.Bucket == "" || c.Uploads.S3.Region == "" {
			return c.locate(errors.New("C103"), "s3")
		}
	default:
		return c.locate(errors.New("C104").
			WithSuggestion("Got "+strconv.Quote(c.Uploads.Backend)), "backend")
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return c.locate(errors.New("C105"), "level")
	}
	return nil
}

// locate points err at the first line of the loaded file that sets key.
func (c *Config) locate(err *errors.CafeError, key string) *errors.CafeError {
	if c.configPath == "" {
		return err
	}
	data, rerr := os.ReadFile(c.configPath)
	if rerr != nil {
		return err
	}
	for i, line := range strings.Split(string(data), "\n") {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, key+":") {
			return err.WithLocation(c.configPath, i+1, len(line)-len(trimmed)+1)
		}
	}
	return err
}
