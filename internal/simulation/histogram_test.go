package simulation

import "testing"

func TestNewHistogram(t *testing.T) {
	values := []float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 10}
	h := NewHistogram(values, 5)

	if len(h.Counts) != 5 || len(h.Edges) != 6 {
		t.Fatalf("Expected 5 buckets and 6 edges, got %d and %d", len(h.Counts), len(h.Edges))
	}

	total := 0
	for _, c := range h.Counts {
		total += c
	}
	if total != len(values) {
		t.Errorf("Expected %d samples bucketed, got %d", len(values), total)
	}
	if h.Counts[4] != 2 { // 8 and the max value 10
		t.Errorf("Expected the max value in the last bucket, got %v", h.Counts)
	}
	if h.Collapsed != 1 {
		t.Errorf("Expected 1 collapsed outcome, got %d", h.Collapsed)
	}
}

func TestNewHistogram_Degenerate(t *testing.T) {
	h := NewHistogram([]float64{3, 3, 3}, 10)
	if len(h.Counts) != 1 || h.Counts[0] != 3 {
		t.Errorf("Expected a single bucket holding 3 values, got %v", h.Counts)
	}

	empty := NewHistogram(nil, 10)
	if len(empty.Counts) != 0 {
		t.Errorf("Expected no buckets for empty input, got %v", empty.Counts)
	}
}
