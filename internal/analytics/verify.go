package analytics

import (
	"fmt"
	"sort"

	"darahcli/internal/dataset"
)

// DailyMismatch records one date where the facility and state files disagree
type DailyMismatch struct {
	Date          string `json:"date"`
	FacilityTotal int    `json:"facility_total"`
	StateTotal    int    `json:"state_total"`
	Difference    int    `json:"difference"`
}

// VerificationReport reconciles facility daily totals against the state file.
// A clean dataset has zero mismatched days: the sum of a date's facility
// rows should equal the state file's reported total for that date.
type VerificationReport struct {
	DaysCompared    int             `json:"days_compared"`
	MismatchedDays  int             `json:"mismatched_days"`
	FacilityOnly    int             `json:"facility_only_days"`
	StateOnly       int             `json:"state_only_days"`
	MinDifference   int             `json:"min_difference"`
	MaxDifference   int             `json:"max_difference"`
	MeanDifference  float64         `json:"mean_difference"`
	SampleMismatches []DailyMismatch `json:"sample_mismatches"`
}

// maxSampleMismatches bounds the examples carried in the report
const maxSampleMismatches = 10

// VerifyDailyTotals compares summed facility daily totals against state
// totals per date. Dates present in only one dataset are counted separately
// and excluded from the difference statistics.
func VerifyDailyTotals(facility, state []dataset.Observation) (*VerificationReport, error) {
	if len(facility) == 0 || len(state) == 0 {
		return nil, fmt.Errorf("both datasets are required for verification")
	}

	facilityTotals := make(map[string]int)
	for _, o := range facility {
		facilityTotals[o.Date.Format("2006-01-02")] += o.Daily
	}
	stateTotals := make(map[string]int)
	for _, o := range state {
		stateTotals[o.Date.Format("2006-01-02")] += o.Daily
	}

	report := &VerificationReport{}

	var shared []string
	for date := range facilityTotals {
		if _, ok := stateTotals[date]; ok {
			shared = append(shared, date)
		} else {
			report.FacilityOnly++
		}
	}
	for date := range stateTotals {
		if _, ok := facilityTotals[date]; !ok {
			report.StateOnly++
		}
	}
	sort.Strings(shared)

	report.DaysCompared = len(shared)

	sumDiff := 0
	for i, date := range shared {
		diff := facilityTotals[date] - stateTotals[date]
		sumDiff += diff

		if i == 0 || diff < report.MinDifference {
			report.MinDifference = diff
		}
		if i == 0 || diff > report.MaxDifference {
			report.MaxDifference = diff
		}

		if diff != 0 {
			report.MismatchedDays++
			if len(report.SampleMismatches) < maxSampleMismatches {
				report.SampleMismatches = append(report.SampleMismatches, DailyMismatch{
					Date:          date,
					FacilityTotal: facilityTotals[date],
					StateTotal:    stateTotals[date],
					Difference:    diff,
				})
			}
		}
	}

	if report.DaysCompared > 0 {
		report.MeanDifference = float64(sumDiff) / float64(report.DaysCompared)
	}

	return report, nil
}
