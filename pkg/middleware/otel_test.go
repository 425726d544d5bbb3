package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/embedded"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/samplecafe/cafe/pkg/render"
)

type recordedSpan struct {
	noop.Span
	name   string
	parent trace.Span
	attrs  map[attribute.Key]attribute.Value
	status codes.Code
	errs   []error
	ended  bool
}

func (s *recordedSpan) SetName(name string) { s.name = name }

func (s *recordedSpan) SetAttributes(kv ...attribute.KeyValue) {
	for _, a := range kv {
		s.attrs[a.Key] = a.Value
	}
}

func (s *recordedSpan) SetStatus(code codes.Code, _ string) { s.status = code }

func (s *recordedSpan) RecordError(err error, _ ...trace.EventOption) { s.errs = append(s.errs, err) }

func (s *recordedSpan) End(...trace.SpanEndOption) { s.ended = true }

type recordingTracer struct {
	embedded.Tracer
	mu    sync.Mutex
	spans []*recordedSpan
}

func (t *recordingTracer) Start(ctx context.Context, name string, opts ...trace.SpanStartOption) (context.Context, trace.Span) {
	cfg := trace.NewSpanStartConfig(opts...)
	s := &recordedSpan{name: name, parent: trace.SpanFromContext(ctx), attrs: map[attribute.Key]attribute.Value{}}
	s.SetAttributes(cfg.Attributes()...)
	t.mu.Lock()
	t.spans = append(t.spans, s)
	t.mu.Unlock()
	return trace.ContextWithSpan(ctx, s), s
}

type recordingProvider struct {
	embedded.TracerProvider
	tracer *recordingTracer
}

func (p *recordingProvider) Tracer(string, ...trace.TracerOption) trace.Tracer { return p.tracer }

func newRecordingProvider() *recordingProvider {
	return &recordingProvider{tracer: &recordingTracer{}}
}

func TestTracing(t *testing.T) {
	tp := newRecordingProvider()
	var inner trace.Span

	r := chi.NewRouter()
	r.Use(Tracing(WithTracerProvider(tp)))
	r.Get("/api/content/{section}", func(w http.ResponseWriter, r *http.Request) {
		inner = trace.SpanFromContext(r.Context())
	})
	r.Get("/fail", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/content/top", nil))
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))

	spans := tp.tracer.spans
	if len(spans) != 2 {
		t.Fatalf("spans = %d, want 2", len(spans))
	}
	ok := spans[0]
	if ok.name != "HTTP GET /api/content/{section}" || !ok.ended {
		t.Errorf("span = %q ended=%v", ok.name, ok.ended)
	}
	if inner != trace.Span(ok) {
		t.Error("handler did not see the request span")
	}
	if got := ok.attrs["http.status_code"].AsInt64(); got != 200 {
		t.Errorf("status attr = %d", got)
	}
	if ok.attrs["http.target"].AsString() != "/api/content/top" {
		t.Errorf("target attr = %v", ok.attrs["http.target"])
	}
	if spans[1].status != codes.Error {
		t.Errorf("5xx span status = %v", spans[1].status)
	}
}

func TestTracingFilter(t *testing.T) {
	tp := newRecordingProvider()
	h := Tracing(WithTracerProvider(tp), WithRequestFilter(func(r *http.Request) bool {
		return r.URL.Path != "/metrics"
	}))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if len(tp.tracer.spans) != 0 {
		t.Errorf("filtered request traced: %d spans", len(tp.tracer.spans))
	}
}

func TestRenderSpans(t *testing.T) {
	tp := newRecordingProvider()
	parentCtx, parent := tp.tracer.Start(context.Background(), "request")

	obs := RenderSpans(parentCtx, tp)
	obs.BeginCycle(0)(render.CycleInfo{Nodes: 12, Effects: 2})
	obs.BeginCycle(1)(render.CycleInfo{Err: errors.New("loop")})

	spans := tp.tracer.spans[1:]
	if len(spans) != 2 {
		t.Fatalf("render spans = %d", len(spans))
	}
	for _, s := range spans {
		if s.name != "render.cycle" || !s.ended || s.parent != parent {
			t.Errorf("span %q ended=%v parent ok=%v", s.name, s.ended, s.parent == parent)
		}
	}
	if spans[0].attrs["render.nodes"].AsInt64() != 12 || spans[1].attrs["render.nested"].AsInt64() != 1 {
		t.Errorf("attrs = %v / %v", spans[0].attrs, spans[1].attrs)
	}
	if spans[1].status != codes.Error || len(spans[1].errs) != 1 {
		t.Errorf("failed cycle span status = %v errs = %v", spans[1].status, spans[1].errs)
	}
}
