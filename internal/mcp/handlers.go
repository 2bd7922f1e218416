package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"saas-forecast/internal/forecast"
	"saas-forecast/internal/model"
	"saas-forecast/internal/scenario"
	"saas-forecast/internal/visuals"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

func (s *Server) handleRunForecast(ctx context.Context, _ *mcp.CallToolRequest, in RunForecastInput) (*mcp.CallToolResult, RunForecastOutput, error) {
	params, err := in.parameters()
	if err != nil {
		return nil, RunForecastOutput{}, err
	}

	seed := in.Seed
	if seed == nil {
		seed = s.cfg.Seed
	}

	result, err := s.forecasts.Run(ctx, forecast.Request{Parameters: params, Seed: seed})
	if err != nil {
		return nil, RunForecastOutput{}, err
	}

	out := RunForecastOutput{
		RunID:      result.RunID,
		Seed:       result.Seed,
		Parameters: result.Parameters,
		Summary:    result.Summary,
		P10Ending:  result.Stochastic.Low.Last(),
		P90Ending:  result.Stochastic.High.Last(),
		Warnings:   result.Warnings,
	}

	if in.IncludeSeries {
		out.Series = &SeriesOutput{Baseline: result.Baseline, Stochastic: result.Stochastic}
	}

	if s.cfg.EnableMermaidCharts {
		out.Charts = []string{
			visuals.GenerateRevenueChart(result),
			visuals.GenerateCumulativeChart(result),
		}
	}

	if in.Export {
		dir := filepath.Join(s.cfg.ReportDir, result.RunID)
		bundle, err := s.exporter.Export(ctx, result, dir)
		if err != nil {
			return nil, RunForecastOutput{}, fmt.Errorf("exporting report: %w", err)
		}
		out.Bundle = &bundle
		log.Info().Str("runId", result.RunID).Str("archive", bundle.Archive).Msg("Report exported")
	}

	return nil, out, nil
}

func (s *Server) handleListScenarios(_ context.Context, _ *mcp.CallToolRequest, _ ListScenariosInput) (*mcp.CallToolResult, ListScenariosOutput, error) {
	return nil, ListScenariosOutput{Scenarios: scenario.All()}, nil
}

func (s *Server) handleParameterRanges(_ context.Context, _ *mcp.CallToolRequest, _ ParameterRangesInput) (*mcp.CallToolResult, ParameterRangesOutput, error) {
	schema, err := model.ParameterSchema()
	if err != nil {
		return nil, ParameterRangesOutput{}, err
	}

	// Round-trip so the output schema sees a plain JSON object.
	data, err := json.Marshal(schema)
	if err != nil {
		return nil, ParameterRangesOutput{}, fmt.Errorf("encoding schema: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, ParameterRangesOutput{}, fmt.Errorf("decoding schema: %w", err)
	}

	return nil, ParameterRangesOutput{Ranges: model.Ranges, Schema: doc}, nil
}
