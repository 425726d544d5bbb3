package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/samplecafe/cafe/internal/content"
)

// run executes the root command with a config that does not exist and a
// data path inside dir.
func run(t *testing.T, dir, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{
		"--config", filepath.Join(dir, "missing.yaml"),
		"--data", filepath.Join(dir, "cafe.db"),
		"--no-color",
	}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestVersionShort(t *testing.T) {
	out, err := run(t, t.TempDir(), "", "version", "--short")
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out); got != version {
		t.Errorf("version --short = %q, want %q", got, version)
	}
}

func TestSeedAndRender(t *testing.T) {
	dir := t.TempDir()
	if _, err := run(t, dir, "", "seed"); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, dir, "", "render", "/access")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>アクセス | Sample Cafe</title>",
		`<div id="root">`,
		"/static/live.js",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("render output missing %q", want)
		}
	}

	file := filepath.Join(dir, "home.html")
	if _, err := run(t, dir, "", "render", "/", "--out", file); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<title>Sample Cafe | 公式サイト</title>") {
		t.Errorf("home page title missing from %s", file)
	}
}

func TestRenderRejectsUnknownAndAdminPages(t *testing.T) {
	dir := t.TempDir()
	for _, path := range []string{"/missing", "/admin", "/admin/login"} {
		if _, err := run(t, dir, "", "render", path); err == nil {
			t.Errorf("render %s succeeded, want error", path)
		}
	}
}

func TestPasswd(t *testing.T) {
	dir := t.TempDir()
	if _, err := run(t, dir, "s3cret-pass\n", "passwd", "manager"); err != nil {
		t.Fatal(err)
	}
	if _, err := run(t, dir, "", "passwd", "manager"); err == nil {
		t.Error("passwd with empty stdin succeeded")
	}
	if _, err := run(t, dir, "", "passwd", "manager", "--password", "x"); err == nil {
		t.Error("passwd with a short password succeeded")
	}

	store, err := content.Open(filepath.Join(dir, "cafe.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()
	if _, err := store.Authenticate("manager", "s3cret-pass"); err != nil {
		t.Errorf("Authenticate after passwd: %v", err)
	}
}

func TestReadPassword(t *testing.T) {
	got, err := readPassword(strings.NewReader("pa ss\r\nignored\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got != "pa ss" {
		t.Errorf("readPassword = %q, want %q", got, "pa ss")
	}
}
