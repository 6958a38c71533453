// Package metrics records Prometheus metrics and OpenTelemetry spans for
// document renders.
//
// Metrics collected:
//   - html5el_renders_total: Counter of renders by source and status
//   - html5el_render_duration_seconds: Histogram of render duration by source
//   - html5el_render_bytes: Histogram of rendered output size
//
// Spans use the global OpenTelemetry tracer provider unless one is given
// with WithTracerProvider.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const defaultTracerName = "html5el"

// Config configures a Recorder.
type Config struct {
	// Namespace is the metrics namespace (default: "html5el").
	Namespace string

	// Buckets are the histogram buckets for render duration.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registerer is where the metrics are registered.
	// Default: prometheus.DefaultRegisterer
	Registerer prometheus.Registerer

	// Gatherer serves the /metrics endpoint.
	// Default: prometheus.DefaultGatherer
	Gatherer prometheus.Gatherer

	// TracerProvider creates the render tracer.
	// Default: otel.GetTracerProvider()
	TracerProvider trace.TracerProvider
}

// Option configures a Recorder.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithBuckets sets the duration histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry registers the metrics with reg and serves them from it.
func WithRegistry(reg *prometheus.Registry) Option {
	return func(c *Config) {
		c.Registerer = reg
		c.Gatherer = reg
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Config) {
		c.TracerProvider = tp
	}
}

func defaultConfig() Config {
	return Config{
		Namespace:  "html5el",
		Buckets:    prometheus.DefBuckets,
		Registerer: prometheus.DefaultRegisterer,
		Gatherer:   prometheus.DefaultGatherer,
	}
}

// Result describes a finished render.
type Result struct {
	Bytes int
	Nodes int
}

// Recorder observes renders. A nil *Recorder is valid and records nothing.
type Recorder struct {
	rendersTotal   *prometheus.CounterVec
	renderDuration *prometheus.HistogramVec
	renderBytes    prometheus.Histogram
	gatherer       prometheus.Gatherer
	tracer         trace.Tracer
}

// New creates a Recorder and registers its metrics. Registering twice
// with the same Registerer panics.
func New(opts ...Option) *Recorder {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	if config.TracerProvider == nil {
		config.TracerProvider = otel.GetTracerProvider()
	}

	factory := promauto.With(config.Registerer)

	return &Recorder{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "renders_total",
			Help:      "Total number of document renders",
		}, []string{"source", "status"}),

		renderDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "render_duration_seconds",
			Help:      "Document load and render duration in seconds",
			Buckets:   config.Buckets,
		}, []string{"source"}),

		renderBytes: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: config.Namespace,
			Name:      "render_bytes",
			Help:      "Size of rendered documents in bytes",
			Buckets:   prometheus.ExponentialBuckets(256, 4, 8), // 256B to 4MB
		}),

		gatherer: config.Gatherer,
		tracer:   config.TracerProvider.Tracer(defaultTracerName),
	}
}

// Observe runs fn inside a render span and records its outcome under
// source. The error of fn is returned unchanged.
func (r *Recorder) Observe(ctx context.Context, source string, fn func(ctx context.Context) (Result, error)) error {
	if r == nil {
		_, err := fn(ctx)
		return err
	}

	ctx, span := r.tracer.Start(ctx, "html5el.render",
		trace.WithAttributes(attribute.String("html5el.source", source)),
	)
	defer span.End()

	start := time.Now()
	res, err := fn(ctx)
	r.renderDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())

	if err != nil {
		r.rendersTotal.WithLabelValues(source, "error").Inc()
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	r.rendersTotal.WithLabelValues(source, "success").Inc()
	r.renderBytes.Observe(float64(res.Bytes))
	span.SetAttributes(
		attribute.Int("html5el.nodes", res.Nodes),
		attribute.Int("html5el.bytes", res.Bytes),
	)
	span.SetStatus(codes.Ok, "")
	return nil
}

// Handler serves the gathered metrics in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	if r == nil {
		return promhttp.Handler()
	}
	return promhttp.HandlerFor(r.gatherer, promhttp.HandlerOpts{})
}
