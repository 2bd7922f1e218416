package simulation

import (
	"context"
	"errors"
	"math"
	"reflect"
	"testing"

	"saas-forecast/internal/model"
)

func testParams() model.ForecastParameters {
	return model.ForecastParameters{
		StartClients:       5,
		Months:             12,
		SubscriptionPrice:  500,
		MerchantsPerClient: 20,
		UpsellPerMerchant:  15,
		GrowthRatePct:      15,
		ChurnRatePct:       6,
		ShockSensitivity:   0.03,
		SimulationCount:    500,
	}
}

type constantShock float64

func (c constantShock) Shock() float64 { return float64(c) }

func TestEngine_PercentileOrdering(t *testing.T) {
	p := testParams()
	p.ShockSensitivity = 0.1

	agg, err := NewEngine(p, WithSeed(42)).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	for m := 0; m < p.Months; m++ {
		if agg.Low[m] > agg.Mean[m] || agg.Mean[m] > agg.High[m] {
			t.Errorf("Month %d: expected low <= mean <= high, got %f / %f / %f", m+1, agg.Low[m], agg.Mean[m], agg.High[m])
		}
		if agg.Low[m] > agg.Median[m] || agg.Median[m] > agg.High[m] {
			t.Errorf("Month %d: expected median inside band, got %f", m+1, agg.Median[m])
		}
	}
}

func TestEngine_PercentileOrdering_ConstantColumns(t *testing.T) {
	p := testParams()
	p.ShockSensitivity = 0
	p.SimulationCount = 3

	agg, err := NewEngine(p, WithSeed(1)).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	for m := 0; m < p.Months; m++ {
		if agg.Low[m] > agg.Mean[m] || agg.Mean[m] > agg.High[m] {
			t.Errorf("Month %d: ordering broken for constant column: %v / %v / %v", m+1, agg.Low[m], agg.Mean[m], agg.High[m])
		}
	}
}

func TestEngine_SeriesLength(t *testing.T) {
	for _, months := range []int{1, 3, 12, 24} {
		p := testParams()
		p.Months = months
		p.SimulationCount = 10

		agg, err := NewEngine(p, WithSeed(3)).Run(context.Background())
		if err != nil {
			t.Fatalf("Run failed: %v", err)
		}
		for name, s := range map[string]model.MonthlySeries{
			"mean": agg.Mean, "low": agg.Low, "median": agg.Median, "high": agg.High, "cumulative": agg.CumulativeMean,
		} {
			if len(s) != months {
				t.Errorf("months=%d: expected %s length %d, got %d", months, name, months, len(s))
			}
		}
	}
}

func TestEngine_Reproducible(t *testing.T) {
	p := testParams()

	a, err := NewEngine(p, WithSeed(7)).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	b, err := NewEngine(p, WithSeed(7)).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Errorf("Expected identical stats for identical seeds")
	}

	c, err := NewEngine(p, WithSeed(8)).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if reflect.DeepEqual(a.Mean, c.Mean) {
		t.Errorf("Expected different seeds to produce different means")
	}
}

func TestEngine_WorkerCountIndependent(t *testing.T) {
	p := testParams()

	serial, err := NewEngine(p, WithSeed(99), WithWorkers(1)).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	parallel, err := NewEngine(p, WithSeed(99), WithWorkers(16)).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if !reflect.DeepEqual(serial, parallel) {
		t.Errorf("Expected results to be independent of worker count")
	}
}

func TestEngine_ClampsNegativeClients(t *testing.T) {
	p := testParams()
	p.ChurnRatePct = 300
	p.SimulationCount = 50

	e := NewEngine(p, WithSeed(5))
	row := e.simulateTrial(0)
	for m, v := range row {
		if v != 0 {
			t.Errorf("Month %d: expected clamped revenue 0, got %f", m+1, v)
		}
	}

	agg, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	for m := 0; m < p.Months; m++ {
		if agg.Mean[m] != 0 || agg.Low[m] != 0 || agg.High[m] != 0 {
			t.Errorf("Month %d: expected all-zero stats, got %f / %f / %f", m+1, agg.Low[m], agg.Mean[m], agg.High[m])
		}
	}
	if agg.Ending.Collapsed != p.SimulationCount {
		t.Errorf("Expected %d collapsed trials, got %d", p.SimulationCount, agg.Ending.Collapsed)
	}
}

func TestEngine_MonotonicWithoutShocks(t *testing.T) {
	p := testParams()
	p.GrowthRatePct = 10
	p.ChurnRatePct = 2
	p.ShockSensitivity = 0
	p.SimulationCount = 20

	e := NewEngine(p, WithSeed(11))
	row := e.simulateTrial(0)
	for m := 1; m < len(row); m++ {
		if row[m] <= row[m-1] {
			t.Errorf("Trial revenue not strictly increasing at month %d: %f <= %f", m+1, row[m], row[m-1])
		}
	}

	agg, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	for m := 1; m < p.Months; m++ {
		if agg.Mean[m] <= agg.Mean[m-1] {
			t.Errorf("Mean not strictly increasing at month %d", m+1)
		}
	}
}

func TestEngine_InjectedShocks(t *testing.T) {
	p := testParams()
	p.ShockSensitivity = 1
	p.SimulationCount = 4

	e := NewEngine(p, WithShockSource(func(int) ShockSource { return constantShock(MaxShock) }))
	agg, err := e.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	clients := p.StartClients
	for m := 0; m < p.Months; m++ {
		clients *= 1 + 0.15 + MaxShock - 0.06
		want := clients * p.RevenuePerClient()
		if math.Abs(agg.Mean[m]-want) > 1e-6*want {
			t.Errorf("Month %d: expected %f, got %f", m+1, want, agg.Mean[m])
		}
	}
}

func TestEngine_CumulativeMeanIsRunningSum(t *testing.T) {
	p := testParams()

	agg, err := NewEngine(p, WithSeed(21)).Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	running := 0.0
	for m := range agg.Mean {
		running += agg.Mean[m]
		if agg.CumulativeMean[m] != running {
			t.Errorf("Month %d: expected cumulative %f, got %f", m+1, running, agg.CumulativeMean[m])
		}
	}
}

func TestEngine_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewEngine(testParams(), WithSeed(1)).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestUniformShocks_Range(t *testing.T) {
	e := NewEngine(testParams(), WithSeed(13))
	src := e.shocks(0)
	for i := 0; i < 10000; i++ {
		s := src.Shock()
		if s < -MaxShock || s >= MaxShock {
			t.Fatalf("Shock %f outside [-%f, %f)", s, MaxShock, MaxShock)
		}
	}
}
