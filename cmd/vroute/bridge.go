package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vango-dev/vroute/internal/demo"
	"github.com/vango-dev/vroute/internal/server"
)

func bridgeCmd(g *globals) *cobra.Command {
	var (
		addr    string
		metrics bool
	)

	cmd := &cobra.Command{
		Use:   "bridge",
		Short: "Serve the demo application over a websocket history bridge",
		Long: `Serve the demo application. Every page is rendered on the server; a
remote page connected to the bridge path drives navigation with pop frames
and receives render frames with the new HTML.

Endpoints:
  GET <bridge.path>?path=/x   websocket history bridge
  GET /routes[?path=/x]       route table, or its resolution for a path
  GET /metrics                Prometheus metrics (when enabled)
  GET /healthz                liveness
  GET /*                      server-rendered page

Examples:
  vroute bridge
  vroute bridge --addr :9000 --metrics`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := g.cfg
			if addr != "" {
				cfg.Bridge.Addr = addr
			}
			if metrics {
				cfg.Metrics.Enabled = true
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			srv := server.New(cfg, demo.App, demo.Table(), server.WithLogger(g.logger))
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (default from config)")
	cmd.Flags().BoolVar(&metrics, "metrics", false, "Serve Prometheus metrics at /metrics")

	return cmd
}
