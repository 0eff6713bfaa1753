package analytics

import (
	"sort"
	"time"

	"darahcli/internal/dataset"
)

// PeriodTotal is the total donation count for one calendar period
type PeriodTotal struct {
	Period string `json:"period"`
	Total  int    `json:"total"`
}

// EntityTotal is the total donation count for one entity
type EntityTotal struct {
	Entity string `json:"entity"`
	Total  int    `json:"total"`
}

// DailyTotals sums daily donations across all entities per date,
// sorted chronologically.
func DailyTotals(observations []dataset.Observation) []PeriodTotal {
	return periodTotals(observations, func(d time.Time) string {
		return d.Format("2006-01-02")
	})
}

// MonthlyTotals sums donations per calendar month ("2006-01"),
// sorted chronologically.
func MonthlyTotals(observations []dataset.Observation) []PeriodTotal {
	return periodTotals(observations, func(d time.Time) string {
		return d.Format("2006-01")
	})
}

// YearlyTotals sums donations per year, sorted chronologically
func YearlyTotals(observations []dataset.Observation) []PeriodTotal {
	return periodTotals(observations, func(d time.Time) string {
		return d.Format("2006")
	})
}

func periodTotals(observations []dataset.Observation, keyFn func(time.Time) string) []PeriodTotal {
	totals := make(map[string]int)
	for _, o := range observations {
		totals[keyFn(o.Date)] += o.Daily
	}

	result := make([]PeriodTotal, 0, len(totals))
	for period, total := range totals {
		result = append(result, PeriodTotal{Period: period, Total: total})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Period < result[j].Period
	})
	return result
}

// TopEntities ranks entities by total donations, descending, limited to n.
// Ties break alphabetically so output is deterministic.
func TopEntities(observations []dataset.Observation, n int) []EntityTotal {
	totals := make(map[string]int)
	for _, o := range observations {
		totals[o.Entity] += o.Daily
	}

	result := make([]EntityTotal, 0, len(totals))
	for entity, total := range totals {
		result = append(result, EntityTotal{Entity: entity, Total: total})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Total != result[j].Total {
			return result[i].Total > result[j].Total
		}
		return result[i].Entity < result[j].Entity
	})

	if n > 0 && len(result) > n {
		result = result[:n]
	}
	return result
}
