package quadrant

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioResult(t *testing.T) *Result {
	t.Helper()

	classifier := NewClassifier(DefaultPolicy(), testLogger())
	input := observations("A", 10, 10, 10)
	input = append(input, observations("B", 10, 0, 20)...)
	input = append(input, observations("C", 1, 1, 1)...)
	input = append(input, observations("D", 1, 10, 1)...)

	result, err := classifier.Run(context.Background(), input)
	require.NoError(t, err)
	return result
}

func TestGenerateInsights(t *testing.T) {
	insights := GenerateInsights(scenarioResult(t))

	assert.Equal(t, 4, insights.TotalEntities)
	require.Len(t, insights.Groups, 4)

	byQuadrant := make(map[Quadrant]GroupSummary)
	for _, g := range insights.Groups {
		byQuadrant[g.Quadrant] = g
	}

	assert.Equal(t, []string{"B"}, byQuadrant[HighVolumeHighVar].Entities)
	assert.Equal(t, []string{"A"}, byQuadrant[HighVolumeLowVar].Entities)
	assert.Equal(t, []string{"D"}, byQuadrant[LowVolumeHighVar].Entities)
	assert.Equal(t, []string{"C"}, byQuadrant[LowVolumeLowVar].Entities)

	// group counts partition the population
	total := 0
	for _, g := range insights.Groups {
		total += g.Count
		assert.NotEmpty(t, g.Recommendation)
	}
	assert.Equal(t, insights.TotalEntities, total)
}

func TestSaveToCSV(t *testing.T) {
	result := scenarioResult(t)
	path := filepath.Join(t.TempDir(), "quadrants.csv")

	require.NoError(t, SaveToCSV(result, path))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 5) // header + 4 entities

	assert.Equal(t, []string{"Entity", "Quadrant", "Mean_Count", "Std_Count", "Observations"}, records[0])

	quadrants := make(map[string]string)
	for _, row := range records[1:] {
		quadrants[row[0]] = row[1]
		assert.Equal(t, "3", row[4])
	}
	assert.Equal(t, "HIGH_VOLUME_LOW_VAR", quadrants["A"])
	assert.Equal(t, "HIGH_VOLUME_HIGH_VAR", quadrants["B"])
}

func TestSaveToCSVRejectsEmpty(t *testing.T) {
	err := SaveToCSV(&Result{}, filepath.Join(t.TempDir(), "out.csv"))
	require.Error(t, err)
}

func TestSaveSummaryReport(t *testing.T) {
	insights := GenerateInsights(scenarioResult(t))
	path := filepath.Join(t.TempDir(), "summary.txt")

	require.NoError(t, SaveSummaryReport(insights, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	report := string(data)

	assert.Contains(t, report, "QUADRANT OVERVIEW")
	assert.Contains(t, report, "HIGH_VOLUME_LOW_VAR")
	assert.Contains(t, report, "Reliable anchor")
	for _, entity := range []string{"A", "B", "C", "D"} {
		assert.True(t, strings.Contains(report, "- "+entity), "entity %s missing from report", entity)
	}
}
