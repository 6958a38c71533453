package server

import (
	"log/slog"
	"time"

	"github.com/vango-dev/html5el/pkg/element"
	"github.com/vango-dev/html5el/pkg/metrics"
)

// Config holds the preview server configuration.
type Config struct {
	// Address is the TCP address to listen on.
	// Default: "localhost:3030".
	Address string

	// Dir is the directory of document descriptions.
	// Default: ".".
	Dir string

	// Defaults are the element options applied to every built element.
	Defaults []element.Option

	// Watch enables live reload: documents are polled, pages carry the
	// reload script and /_html5el/reload accepts websocket clients.
	Watch bool

	// Metrics records renders and serves /metrics. Nil disables both.
	Metrics *metrics.Recorder

	// Logger is the server logger.
	// Default: slog.Default().
	Logger *slog.Logger

	// ReadHeaderTimeout is the maximum time to read request headers.
	// Default: 10 seconds.
	ReadHeaderTimeout time.Duration

	// ShutdownTimeout is the maximum time for graceful shutdown.
	// Default: 5 seconds.
	ShutdownTimeout time.Duration

	// PollInterval is the watcher poll interval.
	// Default: 250 milliseconds.
	PollInterval time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Address:           "localhost:3030",
		Dir:               ".",
		ReadHeaderTimeout: 10 * time.Second,
		ShutdownTimeout:   5 * time.Second,
		PollInterval:      250 * time.Millisecond,
	}
}

// withDefaults returns a copy of c with zero fields set to defaults.
func (c *Config) withDefaults() *Config {
	out := DefaultConfig()
	if c == nil {
		out.Logger = slog.Default()
		return out
	}

	cfg := *c
	if cfg.Address == "" {
		cfg.Address = out.Address
	}
	if cfg.Dir == "" {
		cfg.Dir = out.Dir
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.ReadHeaderTimeout == 0 {
		cfg.ReadHeaderTimeout = out.ReadHeaderTimeout
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = out.ShutdownTimeout
	}
	if cfg.PollInterval == 0 {
		cfg.PollInterval = out.PollInterval
	}
	return &cfg
}
