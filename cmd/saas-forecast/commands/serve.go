package commands

import (
	"os/signal"
	"syscall"

	"saas-forecast/internal/forecast"
	"saas-forecast/internal/mcp"
	"saas-forecast/internal/report"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the forecaster as MCP tools over stdio",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		svc := forecast.NewService(forecast.Options{
			Brand:   cfg.Brand,
			Workers: cfg.Workers,
			Bins:    cfg.HistogramBins,
		})
		exporter := report.NewExporter(cfg.Brand, cfg.EnableMermaidCharts)

		server := mcp.NewServer(cfg, svc, exporter, Version)
		return server.Serve(ctx)
	},
}
