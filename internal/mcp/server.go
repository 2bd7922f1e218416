// Package mcp exposes the forecaster as Model Context Protocol tools over stdio.
package mcp

import (
	"context"

	"saas-forecast/internal/config"
	"saas-forecast/internal/forecast"
	"saas-forecast/internal/report"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

// ServerName identifies the server during the MCP handshake.
const ServerName = "saas-forecast"

// Server holds the state for the MCP server.
type Server struct {
	cfg       *config.AppConfig
	forecasts *forecast.Service
	exporter  *report.Exporter
	server    *mcp.Server
}

// NewServer creates a new MCP server with every tool registered.
func NewServer(cfg *config.AppConfig, forecasts *forecast.Service, exporter *report.Exporter, version string) *Server {
	s := &Server{
		cfg:       cfg,
		forecasts: forecasts,
		exporter:  exporter,
		server:    mcp.NewServer(&mcp.Implementation{Name: ServerName, Version: version}, nil),
	}

	mcp.AddTool(s.server, RunForecastTool(), s.handleRunForecast)
	mcp.AddTool(s.server, ListScenariosTool(), s.handleListScenarios)
	mcp.AddTool(s.server, ParameterRangesTool(), s.handleParameterRanges)

	return s
}

// Serve runs the protocol over stdin/stdout until ctx is cancelled or the client disconnects.
func (s *Server) Serve(ctx context.Context) error {
	log.Info().Msg("MCP Server starting Stdio loop")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// Connect serves a single session over t.
func (s *Server) Connect(ctx context.Context, t mcp.Transport) (*mcp.ServerSession, error) {
	return s.server.Connect(ctx, t, nil)
}
