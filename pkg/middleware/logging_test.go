package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	h := chimw.RequestID(RequestLogger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/boom" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("hello"))
	})))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/gallery", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/boom", nil))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("log lines = %d:\n%s", len(lines), buf.String())
	}
	for _, want := range []string{"level=INFO", "component=http", "method=GET", "path=/gallery", "status=200", "bytes=5", "request_id="} {
		if !strings.Contains(lines[0], want) {
			t.Errorf("first line missing %q: %s", want, lines[0])
		}
	}
	if !strings.Contains(lines[1], "level=WARN") || !strings.Contains(lines[1], "status=500") {
		t.Errorf("second line: %s", lines[1])
	}
}
