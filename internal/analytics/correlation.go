package analytics

import (
	"fmt"
	"math"

	"darahcli/internal/dataset"
)

// CorrelationMatrix holds pairwise Pearson correlations for the dataset's
// numeric columns. Values[i][j] is the correlation of Columns[i] with
// Columns[j]; the matrix is symmetric with a unit diagonal.
type CorrelationMatrix struct {
	Columns []string    `json:"columns"`
	Values  [][]float64 `json:"values"`
}

// Correlate computes the Pearson correlation matrix across all numeric
// columns. A zero-variance column correlates 0 with everything except itself.
func Correlate(observations []dataset.Observation) (*CorrelationMatrix, error) {
	if len(observations) < 2 {
		return nil, fmt.Errorf("need at least 2 observations for correlation, got %d", len(observations))
	}

	columns := NumericColumns()
	series := make([][]float64, len(columns))
	for i, col := range columns {
		series[i] = columnValues(observations, col)
	}

	values := make([][]float64, len(columns))
	for i := range columns {
		values[i] = make([]float64, len(columns))
		for j := range columns {
			switch {
			case i == j:
				values[i][j] = 1
			case j < i:
				values[i][j] = values[j][i]
			default:
				values[i][j] = pearson(series[i], series[j])
			}
		}
	}

	return &CorrelationMatrix{Columns: columns, Values: values}, nil
}

// pearson returns the Pearson correlation coefficient of two equal-length
// series, or 0 when either series has no variance.
func pearson(x, y []float64) float64 {
	n := len(x)
	if n == 0 || n != len(y) {
		return 0
	}

	mx := meanOf(x)
	my := meanOf(y)

	var cov, varX, varY float64
	for i := 0; i < n; i++ {
		dx := x[i] - mx
		dy := y[i] - my
		cov += dx * dy
		varX += dx * dx
		varY += dy * dy
	}

	if varX == 0 || varY == 0 {
		return 0
	}

	r := cov / math.Sqrt(varX*varY)
	// Guard against floating point drift outside [-1, 1]
	switch {
	case r > 1:
		return 1
	case r < -1:
		return -1
	default:
		return r
	}
}
