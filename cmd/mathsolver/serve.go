package main

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/rhuss/mathsolver/pkg/config"
	"github.com/rhuss/mathsolver/pkg/debug"
	"github.com/rhuss/mathsolver/pkg/engine"
	"github.com/rhuss/mathsolver/pkg/observability"
	"github.com/rhuss/mathsolver/pkg/provider/registry"
	transporthttp "github.com/rhuss/mathsolver/pkg/transport/http"
	transportmcp "github.com/rhuss/mathsolver/pkg/transport/mcp"
)

var port int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP service",
	Long: `Run the HTTP service.

Endpoints:
  POST /api/solve   solve {"question": "..."}
  GET  /test        reachability check
  GET  /healthz     liveness check
  GET  /metrics     Prometheus metrics (observability.metrics.enabled)
  /mcp              MCP solve_math tool (mcp.enabled)

The server shuts down gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVar(&port, "port", 0, "listen port (overrides server.port)")
}

func runServe(cmd *cobra.Command, args []string) error {
	if port > 0 {
		cfg.Server.Port = port
	}
	debug.Init(nil, cfg.Observability.Debug, cfg.Observability.LogLevel)

	chain, err := registry.Build(cfg.Providers)
	if err != nil {
		return exitWithCode(ExitConfig, fmt.Errorf("building providers: %w", err))
	}
	defer closeProviders(chain)

	if cfg.Observability.Tracing.Enabled {
		shutdown := observability.InitTracing(slog.Default(), version)
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				slog.Warn("tracing shutdown failed", "error", err)
			}
		}()
	}

	eng := engine.New(chain)

	srv := transporthttp.NewServer(eng, serverOptions(cfg, eng)...)

	slog.Info("mathsolver starting",
		"version", version,
		"port", cfg.Server.Port,
		"providers", strings.Join(registry.Names(chain), ","),
		"metrics", cfg.Observability.Metrics.Enabled,
		"tracing", cfg.Observability.Tracing.Enabled,
		"mcp", cfg.MCP.Enabled,
	)
	return srv.ListenAndServe()
}

// serverOptions translates the loaded config into server options and
// mounts the optional metrics and MCP endpoints.
func serverOptions(cfg *config.Config, eng *engine.Engine) []transporthttp.ServerOption {
	opts := []transporthttp.ServerOption{
		transporthttp.WithAddr(":" + strconv.Itoa(cfg.Server.Port)),
		transporthttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout),
		transporthttp.WithShutdownTimeout(cfg.Server.ShutdownTimeout),
		transporthttp.WithMaxBodySize(cfg.Server.MaxBodySize),
		transporthttp.WithCORSOrigins(cfg.Server.CORSOrigins),
	}
	if cfg.Observability.Metrics.Enabled {
		opts = append(opts, transporthttp.WithHandler("GET "+cfg.Observability.Metrics.Path, promhttp.Handler()))
	}
	if cfg.MCP.Enabled {
		opts = append(opts, transporthttp.WithHandler(cfg.MCP.Path, transportmcp.Handler(transportmcp.NewServer(eng, version))))
	}
	return opts
}
