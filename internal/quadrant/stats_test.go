package quadrant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMean(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"empty", nil, 0},
		{"single", []float64{5}, 5},
		{"uniform", []float64{10, 10, 10}, 10},
		{"mixed", []float64{1, 10, 1}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, mean(tt.values), 1e-9)
		})
	}
}

func TestStddev(t *testing.T) {
	tests := []struct {
		name       string
		values     []float64
		convention StdConvention
		expected   float64
	}{
		{"empty", nil, SampleStd, 0},
		{"single observation sample", []float64{7}, SampleStd, 0},
		{"single observation population", []float64{7}, PopulationStd, 0},
		{"no variability", []float64{10, 10, 10}, SampleStd, 0},
		{"sample convention", []float64{10, 0, 20}, SampleStd, 10},
		{"population convention", []float64{10, 0, 20}, PopulationStd, 8.16496580927726},
		{"spec entity D", []float64{1, 10, 1}, SampleStd, 5.196152422706632},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, stddev(tt.values, tt.convention), 1e-9)
		})
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
	}{
		{"empty", nil, 0},
		{"single", []float64{3}, 3},
		{"odd length", []float64{9, 1, 5}, 5},
		{"even length averages middle pair", []float64{10, 10, 1, 4}, 7},
		{"even with duplicates", []float64{0, 10, 0, 5.2}, 2.6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, median(tt.values), 1e-9)
		})
	}
}

func TestMedianDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	median(values)
	assert.Equal(t, []float64{3, 1, 2}, values)
}
