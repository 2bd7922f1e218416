// Package forecast runs the deterministic and stochastic models for one request
// and assembles the result handed to renderers and exporters.
package forecast

import (
	"context"
	"fmt"
	"time"

	"saas-forecast/internal/model"
	"saas-forecast/internal/simulation"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// Options tune a Service. Zero values select the engine defaults.
type Options struct {
	Brand   string
	Workers int
	Bins    int
}

// Service produces forecasts.
type Service struct {
	opts Options
	now  func() time.Time
}

// NewService creates a forecast service.
func NewService(opts Options) *Service {
	return &Service{opts: opts, now: time.Now}
}

// Request is a single forecast invocation. A nil Seed draws one from the clock.
type Request struct {
	Parameters model.ForecastParameters
	Seed       *uint64
}

// Run validates the parameters, runs both models and derives the insight.
func (s *Service) Run(ctx context.Context, req Request) (*model.ForecastResult, error) {
	params, err := model.Validate(req.Parameters)
	if err != nil {
		return nil, err
	}

	runID := uuid.NewString()
	logger := log.With().Str("runId", runID).Logger()

	warnings := model.CheckRanges(params)
	for _, w := range warnings {
		logger.Warn().Msg(w)
	}

	opts := []simulation.Option{
		simulation.WithWorkers(s.opts.Workers),
		simulation.WithHistogramBins(s.opts.Bins),
	}
	if req.Seed != nil {
		opts = append(opts, simulation.WithSeed(*req.Seed))
	}
	engine := simulation.NewEngine(params, opts...)

	logger.Debug().
		Int("months", params.Months).
		Int("simulations", params.SimulationCount).
		Uint64("seed", engine.Seed()).
		Msg("Running forecast")

	started := s.now()

	var baseline model.Baseline
	var ensemble model.AggregateStats

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		baseline = simulation.ProjectBaseline(params)
		return nil
	})
	g.Go(func() error {
		var err error
		ensemble, err = engine.Run(gctx)
		if err != nil {
			return fmt.Errorf("stochastic simulation: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	brand := s.opts.Brand
	insight := simulation.Analyze(baseline.Cumulative.Last(), ensemble.CumulativeMean.Last(), brand)

	if ensemble.Ending.Collapsed > 0 {
		warnings = append(warnings, fmt.Sprintf("%d of %d trials ended with zero revenue", ensemble.Ending.Collapsed, params.SimulationCount))
	}

	result := &model.ForecastResult{
		RunID:       runID,
		Seed:        engine.Seed(),
		Parameters:  params,
		Baseline:    baseline,
		Stochastic:  ensemble,
		UpliftPct:   insight.UpliftPct,
		Insight:     insight.Text,
		Summary:     model.NewSummary(params, baseline, insight.UpliftPct, insight.Text),
		Warnings:    warnings,
		GeneratedAt: s.now(),
	}

	logger.Info().
		Float64("startingMrr", result.Summary.StartingMRR).
		Float64("endingMrr", result.Summary.EndingMRR).
		Float64("upliftPct", result.UpliftPct).
		Dur("elapsed", result.GeneratedAt.Sub(started)).
		Msg("Forecast complete")

	return result, nil
}
