// Package middleware provides the HTTP and render instrumentation for the
// cafe server.
//
// # Prometheus Metrics
//
// Metrics owns every collector, registered on a caller-supplied registry:
//
//	m := middleware.NewMetrics(middleware.WithRegistry(reg))
//	r.Use(m.Handler)
//	root := render.CreateRoot(container, render.WithObserver(m.Observer()))
//
// Collected series (namespace "cafe"):
//   - cafe_http_requests_total{method,route,status}
//   - cafe_http_request_duration_seconds{method,route}
//   - cafe_http_requests_in_flight
//   - cafe_render_cycles_total{result}
//   - cafe_render_cycle_duration_seconds
//   - cafe_render_nodes
//   - cafe_live_sessions
//   - cafe_live_events_total{type}
//   - cafe_uploads_total{result}
//
// Routes are labelled with chi's route pattern, so "/admin/content/{section}"
// is one series however many sections exist. A nil *Metrics is valid and
// records nothing.
//
// # OpenTelemetry
//
// Tracing starts a server span per request using the global tracer provider
// unless one is given, and extracts incoming trace context with the global
// propagator. RenderSpans turns render cycles into child spans of a request:
//
//	r.Use(middleware.Tracing())
//	render.WithObserver(middleware.RenderSpans(req.Context(), nil))
//
// # Logging
//
// RequestLogger logs one slog line per request with status, size and
// duration.
package middleware
