package analytics

import (
	"fmt"
	"math"
	"sort"

	"darahcli/internal/dataset"
)

// ColumnStats holds the standard describe() output for one numeric column
type ColumnStats struct {
	Column string  `json:"column"`
	Count  int     `json:"count"`
	Mean   float64 `json:"mean"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// Describe computes descriptive statistics for every numeric column of the
// dataset. Quartiles use linear interpolation between closest ranks; the
// standard deviation is the sample convention (n-1).
func Describe(observations []dataset.Observation) ([]ColumnStats, error) {
	if len(observations) == 0 {
		return nil, fmt.Errorf("no observations to describe")
	}

	columns := NumericColumns()
	stats := make([]ColumnStats, 0, len(columns))

	for _, col := range columns {
		values := columnValues(observations, col)
		stats = append(stats, describeColumn(col, values))
	}

	return stats, nil
}

func describeColumn(name string, values []float64) ColumnStats {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	m := meanOf(values)

	std := 0.0
	if n > 1 {
		sumSquared := 0.0
		for _, v := range values {
			sumSquared += (v - m) * (v - m)
		}
		std = math.Sqrt(sumSquared / float64(n-1))
	}

	return ColumnStats{
		Column: name,
		Count:  n,
		Mean:   m,
		Std:    std,
		Min:    sorted[0],
		Q1:     quantile(sorted, 0.25),
		Median: quantile(sorted, 0.5),
		Q3:     quantile(sorted, 0.75),
		Max:    sorted[n-1],
	}
}

// quantile returns the q-th quantile of sorted values using linear
// interpolation between closest ranks.
func quantile(sorted []float64, q float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}

	pos := q * float64(n-1)
	lower := int(math.Floor(pos))
	upper := int(math.Ceil(pos))
	if lower == upper {
		return sorted[lower]
	}
	frac := pos - float64(lower)
	return sorted[lower]*(1-frac) + sorted[upper]*frac
}

func meanOf(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}
