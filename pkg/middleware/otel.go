package middleware

import (
	"context"
	"fmt"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"

	"github.com/samplecafe/cafe/pkg/render"
)

// Default tracer name.
const defaultTracerName = "github.com/samplecafe/cafe"

// OTelConfig configures Tracing.
type OTelConfig struct {
	// TracerName is the instrumentation name (default: the module path).
	TracerName string

	// Provider supplies the tracer. Default: otel.GetTracerProvider().
	Provider trace.TracerProvider

	// Filter determines which requests to trace. If nil, all are.
	Filter func(r *http.Request) bool
}

// OTelOption configures Tracing.
type OTelOption func(*OTelConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) OTelOption {
	return func(c *OTelConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) OTelOption {
	return func(c *OTelConfig) {
		c.Provider = tp
	}
}

// WithRequestFilter skips tracing for requests where filter returns false.
func WithRequestFilter(filter func(r *http.Request) bool) OTelOption {
	return func(c *OTelConfig) {
		c.Filter = filter
	}
}

func tracerFrom(config OTelConfig) trace.Tracer {
	tp := config.Provider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	name := config.TracerName
	if name == "" {
		name = defaultTracerName
	}
	return tp.Tracer(name)
}

// Tracing wraps each request in a server span named after its method and
// chi route pattern. 5xx responses mark the span as failed.
func Tracing(opts ...OTelOption) func(http.Handler) http.Handler {
	var config OTelConfig
	for _, opt := range opts {
		opt(&config)
	}
	tracer := tracerFrom(config)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if config.Filter != nil && !config.Filter(r) {
				next.ServeHTTP(w, r)
				return
			}

			ctx := otel.GetTextMapPropagator().Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tracer.Start(ctx, "HTTP "+r.Method,
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.method", r.Method),
					attribute.String("http.target", r.URL.Path),
				),
			)
			defer span.End()

			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			route := routePattern(r)
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			span.SetName(fmt.Sprintf("HTTP %s %s", r.Method, route))
			span.SetAttributes(
				attribute.String("http.route", route),
				attribute.Int("http.status_code", status),
			)
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, http.StatusText(status))
			}
		})
	}
}

// RenderSpans returns a render observer that records each cycle as a
// child span of ctx. A nil tp means the global provider.
func RenderSpans(ctx context.Context, tp trace.TracerProvider) render.Observer {
	tracer := tracerFrom(OTelConfig{Provider: tp})
	return render.ObserverFunc(func(nested int) func(render.CycleInfo) {
		_, span := tracer.Start(ctx, "render.cycle",
			trace.WithAttributes(attribute.Int("render.nested", nested)),
		)
		return func(info render.CycleInfo) {
			span.SetAttributes(
				attribute.Int("render.nodes", info.Nodes),
				attribute.Int("render.effects", info.Effects),
			)
			if info.Err != nil {
				span.RecordError(info.Err)
				span.SetStatus(codes.Error, info.Err.Error())
			}
			span.End()
		}
	})
}
