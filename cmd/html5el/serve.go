package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/html5el/pkg/metrics"
	"github.com/vango-dev/html5el/pkg/server"
)

func serveCmd(a *app) *cobra.Command {
	var (
		port      int
		host      string
		dir       string
		watch     bool
		noMetrics bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Preview documents in the browser",
		Long: `Serve every document description under a directory as HTML.

  /               index of documents
  /docs/<path>    rendered document
  /kinds          element kinds as JSON
  /metrics        Prometheus metrics

With --watch, pages reload when their description changes and
rendering errors are shown in an overlay.

Examples:
  html5el serve
  html5el serve --dir site --watch
  html5el serve --port 8080 --host 0.0.0.0`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg
			if cmd.Flags().Changed("port") {
				cfg.Serve.Port = port
			}
			if cmd.Flags().Changed("host") {
				cfg.Serve.Host = host
			}
			if cmd.Flags().Changed("dir") {
				cfg.Serve.Dir = dir
			}
			if watch {
				cfg.Serve.Watch = true
			}
			if noMetrics {
				cfg.Serve.Metrics = false
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			var recorder *metrics.Recorder
			if cfg.Serve.Metrics {
				recorder = metrics.New()
			}

			srv := server.New(&server.Config{
				Address:  cfg.ServeAddress(),
				Dir:      cfg.Serve.Dir,
				Defaults: cfg.ElementOptions(),
				Watch:    cfg.Serve.Watch,
				Metrics:  recorder,
				Logger:   a.logger,
			})

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			success(out, "Serving %s at %s", cfg.Serve.Dir, cfg.ServeURL())
			if cfg.Serve.Watch {
				info(out, "Live reload enabled")
			}
			info(out, "Press Ctrl+C to stop")

			return srv.Start(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 0, "Port to listen on (default 3030)")
	cmd.Flags().StringVarP(&host, "host", "H", "", "Host to bind to (default localhost)")
	cmd.Flags().StringVar(&dir, "dir", "", "Directory of document descriptions (default .)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Reload pages when descriptions change")
	cmd.Flags().BoolVar(&noMetrics, "no-metrics", false, "Disable /metrics")

	return cmd
}
