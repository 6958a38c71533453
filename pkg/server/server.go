package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/vango-dev/html5el/internal/dev"
	"github.com/vango-dev/html5el/pkg/document"
	"github.com/vango-dev/html5el/pkg/middleware"
)

// Server renders document descriptions over HTTP.
type Server struct {
	config  *Config
	logger  *slog.Logger
	router  chi.Router
	reload  *dev.ReloadServer
	watcher *dev.Watcher

	mu         sync.Mutex
	httpServer *http.Server
	addr       net.Addr
}

// New creates a server. A nil config uses DefaultConfig.
func New(config *Config) *Server {
	config = config.withDefaults()

	s := &Server{
		config: config,
		logger: config.Logger.With("component", "server"),
	}

	if config.Watch {
		s.reload = dev.NewReloadServer(s.logger)
		s.watcher = dev.NewWatcher(dev.WatcherConfig{
			Paths:    []string{config.Dir},
			Interval: config.PollInterval,
		})
		s.watcher.OnChange(s.HandleChange)
	}

	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logger(s.logger))
	r.Use(middleware.OpenTelemetry(
		middleware.WithFilter(func(r *http.Request) bool {
			return r.URL.Path != dev.ReloadPath && r.URL.Path != "/healthz"
		}),
	))

	r.Get("/", s.handleIndex)
	r.Get("/docs/*", s.handleDocument)
	r.Get("/kinds", s.handleKinds)
	r.Get("/kinds/{kind}", s.handleKind)
	r.Get("/healthz", s.handleHealth)

	if s.config.Metrics != nil {
		r.Handle("/metrics", s.config.Metrics.Handler())
	}
	if s.reload != nil {
		r.Handle(dev.ReloadPath, s.reload)
	}
	return r
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Reload returns the reload server, nil unless watching.
func (s *Server) Reload() *dev.ReloadServer {
	return s.reload
}

// Addr returns the listening address once Start is serving.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Start listens on the configured address and serves until ctx is
// cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.config.Address)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: s.config.ReadHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	s.mu.Lock()
	s.httpServer = httpServer
	s.addr = ln.Addr()
	s.mu.Unlock()

	watchCtx, stopWatch := context.WithCancel(ctx)
	defer stopWatch()
	if s.watcher != nil {
		go s.watcher.Start(watchCtx)
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "address", ln.Addr().String(), "dir", s.config.Dir, "watch", s.config.Watch)
		errCh <- httpServer.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil

	case <-ctx.Done():
		s.logger.Info("shutting down...")
		return s.Shutdown(context.Background())
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	if s.watcher != nil {
		s.watcher.Stop()
	}
	if s.reload != nil {
		s.reload.Close()
	}

	s.mu.Lock()
	httpServer := s.httpServer
	s.mu.Unlock()

	if httpServer != nil {
		if err := httpServer.Shutdown(ctx); err != nil {
			s.logger.Error("shutdown error", "error", err)
			return err
		}
	}

	s.logger.Info("server shutdown complete")
	return nil
}

// HandleChange reacts to a watcher change: a broken document shows an
// error overlay, anything else reloads the connected pages.
func (s *Server) HandleChange(c dev.Change) {
	if s.reload == nil {
		return
	}
	s.logger.Debug("file changed", "path", c.Path, "type", c.Type.String())

	if c.Type == dev.ChangeDocument {
		if _, err := document.Load(c.Path, document.Options{Defaults: s.config.Defaults}); err != nil {
			s.logger.Warn("document failed", "path", c.Path, "error", err)
			s.reload.NotifyError(c.Path, err.Error())
			return
		}
		s.reload.ClearError()
	}
	s.reload.NotifyReload(c.Path)
}
