package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/samplecafe/cafe/internal/errors"
)

func TestNew(t *testing.T) {
	cfg := New()

	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, DefaultAddr)
	}
	if cfg.Data.Path != DefaultDataPath {
		t.Errorf("Data.Path = %q, want %q", cfg.Data.Path, DefaultDataPath)
	}
	if cfg.Uploads.Backend != "disk" {
		t.Errorf("Uploads.Backend = %q, want disk", cfg.Uploads.Backend)
	}
	if cfg.Uploads.MaxBytes != 16<<20 {
		t.Errorf("Uploads.MaxBytes = %d, want 16 MiB", cfg.Uploads.MaxBytes)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, ConfigFileName)
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeConfig(t, `
server:
  addr: "127.0.0.1:9000"
uploads:
  backend: s3
  s3:
    bucket: gallery
    region: ap-northeast-1
    path_style: true
log:
  format: json
`)

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := New()
	want.Server.Addr = "127.0.0.1:9000"
	want.Uploads.Backend = "s3"
	want.Uploads.S3 = S3Config{Bucket: "gallery", Region: "ap-northeast-1", PathStyle: true}
	want.Log.Format = "json"

	if diff := cmp.Diff(want, cfg, cmpopts.IgnoreUnexported(Config{})); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
	if cfg.Path() != filepath.Join(dir, ConfigFileName) {
		t.Errorf("Path() = %q", cfg.Path())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate: %v", err)
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(t.TempDir())
	var ce *errors.CafeError
	if !stderrors.As(err, &ce) || ce.Code != "C100" {
		t.Fatalf("Load of empty dir = %v, want C100", err)
	}

	cfg, err := LoadOptional(filepath.Join(t.TempDir(), ConfigFileName))
	if err != nil {
		t.Fatalf("LoadOptional: %v", err)
	}
	if cfg.Server.Addr != DefaultAddr {
		t.Errorf("LoadOptional did not return defaults: %+v", cfg.Server)
	}
}

func TestLoadSyntaxErrorHasLocation(t *testing.T) {
	dir := writeConfig(t, "server:\n  addr: [\n")

	_, err := Load(dir)
	var ce *errors.CafeError
	if !stderrors.As(err, &ce) {
		t.Fatalf("err = %v, want *CafeError", err)
	}
	if ce.Code != "C100" {
		t.Errorf("Code = %q, want C100", ce.Code)
	}
	if ce.Location == nil {
		t.Fatal("Location not set")
	}
	if !strings.HasSuffix(ce.Location.File, ConfigFileName) {
		t.Errorf("Location.File = %q", ce.Location.File)
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"CAFE_ADDR":          ":9999",
		"CAFE_SECRET":        "0123456789abcdef0123",
		"CAFE_DATA":          "/var/lib/cafe.db",
		"CAFE_S3_BUCKET":     "b",
		"CAFE_S3_PATH_STYLE": "true",
	}
	cfg := New()
	cfg.ApplyEnv(func(k string) string { return env[k] })

	if cfg.Server.Addr != ":9999" {
		t.Errorf("Addr = %q", cfg.Server.Addr)
	}
	if cfg.Server.Secret != env["CAFE_SECRET"] {
		t.Errorf("Secret = %q", cfg.Server.Secret)
	}
	if cfg.Data.Path != "/var/lib/cafe.db" {
		t.Errorf("Data.Path = %q", cfg.Data.Path)
	}
	if cfg.Uploads.S3.Bucket != "b" || !cfg.Uploads.S3.PathStyle {
		t.Errorf("S3 = %+v", cfg.Uploads.S3)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("unset variable changed Log.Level to %q", cfg.Log.Level)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		code   string
	}{
		{"defaults", func(*Config) {}, ""},
		{"bad addr", func(c *Config) { c.Server.Addr = "8080" }, "C101"},
		{"bad port", func(c *Config) { c.Server.Addr = ":99999" }, "C101"},
		{"short secret", func(c *Config) { c.Server.Secret = "short" }, "C102"},
		{"long secret", func(c *Config) { c.Server.Secret = strings.Repeat("x", 32) }, ""},
		{"bad ttl", func(c *Config) { c.Server.SessionTTL = "soon" }, "C106"},
		{"negative ttl", func(c *Config) { c.Server.SessionTTL = "-1h" }, "C106"},
		{"bolt sessions", func(c *Config) { c.Server.Sessions = "bolt" }, ""},
		{"redis sessions", func(c *Config) { c.Server.Sessions = "redis" }, "C107"},
		{"s3 without bucket", func(c *Config) {
			c.Uploads.Backend = "s3"
			c.Uploads.S3.Region = "us-east-1"
		}, "C103"},
		{"unknown backend", func(c *Config) { c.Uploads.Backend = "ftp" }, "C104"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "C105"},
		{"upper level", func(c *Config) { c.Log.Level = "DEBUG" }, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := New()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.code == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			var ce *errors.CafeError
			if !stderrors.As(err, &ce) || ce.Code != tt.code {
				t.Fatalf("Validate() = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestValidateLocatesKey(t *testing.T) {
	dir := writeConfig(t, "site:\n  name: x\nuploads:\n  backend: ftp\n")
	cfg, err := Load(dir)
	if err != nil {
		t.Fatal(err)
	}
	err = cfg.Validate()
	var ce *errors.CafeError
	if !stderrors.As(err, &ce) || ce.Code != "C104" {
		t.Fatalf("Validate() = %v, want C104", err)
	}
	if ce.Location == nil || ce.Location.Line != 4 || ce.Location.Column != 3 {
		t.Errorf("Location = %+v, want line 4 column 3", ce.Location)
	}
}

func TestSaveTo(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	cfg := New()
	cfg.Site.Name = "Kissa"
	if err := cfg.SaveTo(path); err != nil {
		t.Fatal(err)
	}
	got, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Site.Name != "Kissa" {
		t.Errorf("Site.Name = %q after round trip", got.Site.Name)
	}
}

func TestServerTTL(t *testing.T) {
	if got := (ServerConfig{SessionTTL: "30m"}).TTL(); got != 30*time.Minute {
		t.Errorf("TTL = %v, want 30m", got)
	}
	if got := (ServerConfig{SessionTTL: "bogus"}).TTL(); got != 12*time.Hour {
		t.Errorf("TTL fallback = %v, want 12h", got)
	}
}
