package quadrant

import (
	"math"
	"sort"
)

// mean returns the arithmetic mean of values. Zero for an empty slice.
func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// stddev returns the standard deviation of values under the given convention.
// A single observation has no variability under the sample convention, so it
// yields 0 rather than NaN.
func stddev(values []float64, convention StdConvention) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	denom := float64(n)
	if convention == SampleStd {
		if n < 2 {
			return 0
		}
		denom = float64(n - 1)
	}

	m := mean(values)
	sumSquared := 0.0
	for _, v := range values {
		sumSquared += (v - m) * (v - m)
	}
	return math.Sqrt(sumSquared / denom)
}

// median returns the median of values, averaging the two middle values for
// even-length input. The input slice is not modified.
func median(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := n / 2
	if n%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
