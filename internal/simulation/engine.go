package simulation

import (
	"context"
	"math"
	"math/rand/v2"
	"runtime"
	"slices"
	"time"

	"saas-forecast/internal/model"
	"saas-forecast/internal/stats"

	"golang.org/x/sync/errgroup"
)

// MaxShock bounds the uniform demand shock drawn for each trial-month.
const MaxShock = 0.1

// Percentiles reported for the uncertainty band.
const (
	LowPercentile  = 10.0
	HighPercentile = 90.0
)

// ShockSource yields successive demand shocks for a single trial.
type ShockSource interface {
	Shock() float64
}

// uniformShocks draws from Uniform(-MaxShock, MaxShock).
type uniformShocks struct {
	rng *rand.Rand
}

func (u uniformShocks) Shock() float64 {
	return u.rng.Float64()*2*MaxShock - MaxShock
}

// Engine performs the Monte-Carlo simulation.
type Engine struct {
	params  model.ForecastParameters
	seed    uint64
	workers int
	shocks  func(trial int) ShockSource
	bins    int
}

// Option configures an Engine.
type Option func(*Engine)

// WithSeed fixes the run seed. Two engines with the same seed and parameters produce identical stats.
func WithSeed(seed uint64) Option {
	return func(e *Engine) { e.seed = seed }
}

// WithWorkers bounds the number of trials simulated concurrently.
func WithWorkers(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.workers = n
		}
	}
}

// WithShockSource replaces the seeded uniform shocks. The factory is called once per trial.
func WithShockSource(factory func(trial int) ShockSource) Option {
	return func(e *Engine) { e.shocks = factory }
}

// WithHistogramBins sets the bucket count of the ending-MRR distribution.
func WithHistogramBins(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.bins = n
		}
	}
}

// NewEngine creates an engine for already validated parameters.
func NewEngine(p model.ForecastParameters, opts ...Option) *Engine {
	e := &Engine{
		params:  p,
		seed:    uint64(time.Now().UnixNano()),
		workers: runtime.GOMAXPROCS(0),
		bins:    DefaultHistogramBins,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.shocks == nil {
		seed := e.seed
		e.shocks = func(trial int) ShockSource {
			// Each trial owns its stream, so results do not depend on scheduling.
			return uniformShocks{rng: rand.New(rand.NewPCG(seed, uint64(trial)))}
		}
	}
	return e
}

// Seed returns the seed the engine draws its trial streams from.
func (e *Engine) Seed() uint64 {
	return e.seed
}

// Run simulates every trial and reduces the ensemble to per-month stats.
func (e *Engine) Run(ctx context.Context) (model.AggregateStats, error) {
	trials := e.params.SimulationCount
	rows := make([][]float64, trials)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for i := 0; i < trials; i++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rows[i] = e.simulateTrial(i)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return model.AggregateStats{}, err
	}
	if err := ctx.Err(); err != nil {
		return model.AggregateStats{}, err
	}

	agg := reduce(rows, e.params.Months)
	agg.Ending = NewHistogram(column(rows, e.params.Months-1, nil), e.bins).Distribution()
	return agg, nil
}

// simulateTrial returns one trial row: revenue per month after that month's shocked step.
func (e *Engine) simulateTrial(trial int) []float64 {
	p := e.params
	src := e.shocks(trial)

	rpc := p.RevenuePerClient()
	growth := p.GrowthRatePct / 100
	churn := p.ChurnRatePct / 100

	row := make([]float64, p.Months)
	clients := p.StartClients
	for t := range row {
		adjusted := growth + src.Shock()*p.ShockSensitivity
		clients = math.Max(clients*(1+adjusted-churn), 0)
		row[t] = clients * rpc
	}
	return row
}

func reduce(rows [][]float64, months int) model.AggregateStats {
	agg := model.AggregateStats{
		Mean:   make(model.MonthlySeries, months),
		Low:    make(model.MonthlySeries, months),
		Median: make(model.MonthlySeries, months),
		High:   make(model.MonthlySeries, months),
	}

	scratch := make([]float64, len(rows))
	for t := 0; t < months; t++ {
		col := column(rows, t, scratch)
		mean := stats.Mean(col)
		slices.Sort(col)

		agg.Mean[t] = mean
		agg.Median[t] = stats.PercentileSorted(col, 50)
		// Skewed columns and rounding of constant columns can put the mean outside
		// the interpolated band; the band is widened to contain it.
		agg.Low[t] = math.Min(stats.PercentileSorted(col, LowPercentile), mean)
		agg.High[t] = math.Max(stats.PercentileSorted(col, HighPercentile), mean)
	}

	agg.CumulativeMean = stats.CumulativeSum(agg.Mean)
	return agg
}

// column copies month t of every trial into dst, allocating when dst is nil.
func column(rows [][]float64, t int, dst []float64) []float64 {
	if dst == nil {
		dst = make([]float64, len(rows))
	}
	for i, row := range rows {
		dst[i] = row[t]
	}
	return dst
}
