package quadrant

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"
)

// SaveToCSV writes the classification result as a scatter-ready table:
// one row per entity with its quadrant label, mean and standard deviation.
// Rows are sorted by quadrant then entity for consistent output.
func SaveToCSV(result *Result, outputPath string) error {
	if result == nil || len(result.Assignments) == 0 {
		return fmt.Errorf("no assignments to save")
	}

	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("create CSV file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{
		"Entity",
		"Quadrant",
		"Mean_Count",
		"Std_Count",
		"Observations",
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write CSV header: %w", err)
	}

	obsByEntity := make(map[string]int, len(result.Summaries))
	for _, s := range result.Summaries {
		obsByEntity[s.Entity] = s.Observations
	}

	rows := make([]Assignment, len(result.Assignments))
	copy(rows, result.Assignments)
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Quadrant != rows[j].Quadrant {
			return rows[i].Quadrant < rows[j].Quadrant
		}
		return rows[i].Entity < rows[j].Entity
	})

	for _, a := range rows {
		record := []string{
			a.Entity,
			a.Quadrant.String(),
			formatFloat(a.MeanCount, 4),
			formatFloat(a.StdCount, 4),
			strconv.Itoa(obsByEntity[a.Entity]),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write CSV record for %s: %w", a.Entity, err)
		}
	}

	return writer.Error()
}

// SaveSummaryReport writes a human-readable text report: thresholds, one line
// per quadrant group, then entity lists with recommendations.
func SaveSummaryReport(insights Insights, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	var sb strings.Builder

	sb.WriteString("BLOOD DONATION QUADRANT ANALYSIS\n")
	sb.WriteString(fmt.Sprintf("Generated: %s\n", insights.GeneratedAt.Format(time.RFC3339)))
	sb.WriteString(fmt.Sprintf("Entities analyzed: %d\n", insights.TotalEntities))
	sb.WriteString(fmt.Sprintf("Mean threshold (median of entity means): %.4f\n", insights.Thresholds.MeanThreshold))
	sb.WriteString(fmt.Sprintf("Std threshold (median of entity stds):   %.4f\n", insights.Thresholds.StdThreshold))
	sb.WriteString("\n")

	sb.WriteString("QUADRANT OVERVIEW\n")
	for _, g := range insights.Groups {
		sb.WriteString(FormatGroupLine(g))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")

	for _, g := range insights.Groups {
		sb.WriteString(fmt.Sprintf("=== %s (%d entities) ===\n", g.Quadrant.String(), g.Count))
		sb.WriteString(fmt.Sprintf("Recommendation: %s\n", g.Recommendation))
		for _, entity := range g.Entities {
			sb.WriteString(fmt.Sprintf("  - %s\n", entity))
		}
		sb.WriteString("\n")
	}

	if err := os.WriteFile(outputPath, []byte(sb.String()), 0644); err != nil {
		return fmt.Errorf("write summary report: %w", err)
	}

	return nil
}

// formatFloat formats a float with the given decimal precision
func formatFloat(value float64, precision int) string {
	return strconv.FormatFloat(value, 'f', precision, 64)
}
