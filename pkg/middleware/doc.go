// Package middleware provides net/http middleware for the preview server.
//
// This package includes:
//   - OpenTelemetry tracing of HTTP requests
//   - Structured request logging with log/slog
//
// Both are plain func(http.Handler) http.Handler values and plug into any
// chi router:
//
//	r := chi.NewRouter()
//	r.Use(chimw.RequestID)
//	r.Use(middleware.Logger(logger))
//	r.Use(middleware.OpenTelemetry(
//	    middleware.WithFilter(func(r *http.Request) bool {
//	        return r.URL.Path != "/healthz"
//	    }),
//	))
//
// The tracer uses the global OpenTelemetry tracer provider unless one is
// set with WithTracerProvider.
package middleware
