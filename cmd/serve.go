package cmd

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/fuzzyrank/fuzzyrank/internal/api"
	"github.com/fuzzyrank/fuzzyrank/internal/contract"
	"github.com/fuzzyrank/fuzzyrank/internal/events"
	"github.com/spf13/cobra"
)

// serveCmd runs the HTTP API.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve rankings over HTTP.",
	Long: `Start an HTTP server that ranks decision problems.

Endpoints:
  POST /api/v1/rank    - rank the problem in the body (YAML or JSON); ?strict=true, ?steps=true
  POST /api/v1/resize  - resize a problem to new counts
  GET  /api/v1/scale   - list the linguistic scale
  GET  /health         - liveness check
  GET  /metrics        - Prometheus metrics

When --nats-url is set, every completed ranking is published on
fuzzyrank.ranking.<run-id>.completed.

Examples:
  fuzzyrank serve --listen :8080
  FUZZYRANK_NATS_URL=nats://localhost:4222 fuzzyrank serve`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	RunE: func(_ *cobra.Command, _ []string) error {
		logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))
		slog.SetDefault(logger)

		ctx, stop := signal.NotifyContext(rootCtx, syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		// Events are optional
		var pub contract.Publisher = events.NopPublisher{}
		if cfg.NATSURL != "" {
			p, err := events.NewNATSPublisher(cfg.NATSURL, logger)
			if err != nil {
				logger.Warn("failed to connect to NATS, running without events", "error", err)
			} else {
				pub = p
				logger.Info("connected to NATS", "url", cfg.NATSURL)
			}
		}
		defer pub.Close()

		router := api.NewRouter(cfg, cacheManager, pub, api.NewMetrics(), logger)
		return api.NewServer(cfg.ListenAddr, router, logger).ListenAndServe(ctx)
	},
}
