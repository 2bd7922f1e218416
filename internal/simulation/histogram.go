package simulation

import (
	"math"

	"saas-forecast/internal/model"
)

// DefaultHistogramBins is the bucket count used when none is configured.
const DefaultHistogramBins = 20

// Histogram tracks how trial outcomes are distributed across equal-width buckets.
type Histogram struct {
	Counts    []int
	Edges     []float64
	Collapsed int // outcomes that reached zero
}

// NewHistogram buckets values into bins equal-width buckets spanning [min, max].
func NewHistogram(values []float64, bins int) *Histogram {
	if len(values) == 0 || bins <= 0 {
		return &Histogram{Counts: []int{}, Edges: []float64{}}
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	// A degenerate ensemble (e.g. zero sensitivity) collapses into one bucket.
	if hi == lo {
		bins = 1
	}
	width := (hi - lo) / float64(bins)

	edges := make([]float64, bins+1)
	for i := range edges {
		edges[i] = lo + float64(i)*width
	}
	edges[bins] = hi

	counts := make([]int, bins)
	for _, v := range values {
		idx := bins - 1
		if width > 0 {
			idx = int((v - lo) / width)
			if idx >= bins {
				idx = bins - 1
			}
		}
		counts[idx]++
	}

	collapsed := 0
	for _, v := range values {
		if v == 0 {
			collapsed++
		}
	}

	return &Histogram{
		Counts:    counts,
		Edges:     edges,
		Collapsed: collapsed,
	}
}

// Distribution converts the histogram into the result model.
func (h *Histogram) Distribution() model.Distribution {
	return model.Distribution{
		Edges:     h.Edges,
		Counts:    h.Counts,
		Collapsed: h.Collapsed,
	}
}
