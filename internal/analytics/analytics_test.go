package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"darahcli/internal/dataset"
)

func day(d int) time.Time {
	return time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)
}

func TestDescribe(t *testing.T) {
	observations := []dataset.Observation{
		{Entity: "A", Date: day(1), Daily: 10, BloodA: 4},
		{Entity: "A", Date: day(2), Daily: 0, BloodA: 0},
		{Entity: "B", Date: day(1), Daily: 20, BloodA: 8},
	}

	stats, err := Describe(observations)
	require.NoError(t, err)
	require.Len(t, stats, len(NumericColumns()))

	byColumn := make(map[string]ColumnStats)
	for _, s := range stats {
		byColumn[s.Column] = s
	}

	daily := byColumn[ColDaily]
	assert.Equal(t, 3, daily.Count)
	assert.InDelta(t, 10.0, daily.Mean, 1e-9)
	assert.InDelta(t, 10.0, daily.Std, 1e-9) // sample std of [10,0,20]
	assert.InDelta(t, 0.0, daily.Min, 1e-9)
	assert.InDelta(t, 10.0, daily.Median, 1e-9)
	assert.InDelta(t, 20.0, daily.Max, 1e-9)
	assert.InDelta(t, 5.0, daily.Q1, 1e-9)
	assert.InDelta(t, 15.0, daily.Q3, 1e-9)

	// untouched columns degenerate to all-zero stats
	assert.InDelta(t, 0.0, byColumn[ColTypeOther].Mean, 1e-9)
	assert.InDelta(t, 0.0, byColumn[ColTypeOther].Std, 1e-9)
}

func TestDescribeEmpty(t *testing.T) {
	_, err := Describe(nil)
	require.Error(t, err)
}

func TestPeriodTotals(t *testing.T) {
	observations := []dataset.Observation{
		{Entity: "A", Date: time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), Daily: 5},
		{Entity: "A", Date: day(1), Daily: 10},
		{Entity: "B", Date: day(1), Daily: 7},
		{Entity: "A", Date: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Daily: 3},
	}

	t.Run("daily sums across entities", func(t *testing.T) {
		totals := DailyTotals(observations)
		require.Len(t, totals, 3)
		assert.Equal(t, PeriodTotal{Period: "2023-12-31", Total: 5}, totals[0])
		assert.Equal(t, PeriodTotal{Period: "2024-01-01", Total: 17}, totals[1])
		assert.Equal(t, PeriodTotal{Period: "2024-02-01", Total: 3}, totals[2])
	})

	t.Run("monthly", func(t *testing.T) {
		totals := MonthlyTotals(observations)
		require.Len(t, totals, 3)
		assert.Equal(t, PeriodTotal{Period: "2024-01", Total: 17}, totals[1])
	})

	t.Run("yearly", func(t *testing.T) {
		totals := YearlyTotals(observations)
		require.Len(t, totals, 2)
		assert.Equal(t, PeriodTotal{Period: "2023", Total: 5}, totals[0])
		assert.Equal(t, PeriodTotal{Period: "2024", Total: 20}, totals[1])
	})
}

func TestTopEntities(t *testing.T) {
	observations := []dataset.Observation{
		{Entity: "Small", Date: day(1), Daily: 1},
		{Entity: "Big", Date: day(1), Daily: 50},
		{Entity: "Big", Date: day(2), Daily: 50},
		{Entity: "Mid", Date: day(1), Daily: 30},
		{Entity: "AlsoMid", Date: day(1), Daily: 30},
	}

	top := TopEntities(observations, 3)
	require.Len(t, top, 3)
	assert.Equal(t, EntityTotal{Entity: "Big", Total: 100}, top[0])
	// equal totals break alphabetically
	assert.Equal(t, "AlsoMid", top[1].Entity)
	assert.Equal(t, "Mid", top[2].Entity)
}

func TestCategoryTotals(t *testing.T) {
	observations := []dataset.Observation{
		{
			Entity: "A", Date: day(1), Daily: 20,
			BloodA: 5, BloodB: 3, BloodO: 10, BloodAB: 2,
			TypeWholeBlood: 15, TypeApheresisPlatelet: 3, TypeApheresisPlasma: 1, TypeOther: 1,
			SocialCivilian: 12, SocialStudent: 6, SocialPoliceArmy: 2,
			DonationsNew: 4, DonationsRegular: 14, DonationsIrregular: 2,
		},
		{
			Entity: "B", Date: day(1), Daily: 10,
			BloodA: 2, BloodB: 2, BloodO: 5, BloodAB: 1,
			TypeWholeBlood: 10,
			SocialCivilian: 10,
			DonationsNew:   10,
		},
	}

	breakdowns := CategoryTotals(observations)
	require.Len(t, breakdowns, 4)

	byDim := make(map[string]CategoryBreakdown)
	for _, b := range breakdowns {
		byDim[b.Dimension] = b
	}

	assert.Equal(t, 7, byDim[DimBloodType].Totals["A"])
	assert.Equal(t, 15, byDim[DimBloodType].Totals["O"])
	assert.Equal(t, 25, byDim[DimDonationType].Totals["Whole Blood"])
	assert.Equal(t, 22, byDim[DimSocialGroup].Totals["Civilian"])
	assert.Equal(t, 14, byDim[DimDonorType].Totals["New"])

	for _, b := range breakdowns {
		assert.Len(t, b.Order, len(b.Totals))
	}
}

func TestCorrelate(t *testing.T) {
	observations := []dataset.Observation{
		{Entity: "A", Date: day(1), Daily: 10, BloodA: 5, BloodB: 1},
		{Entity: "A", Date: day(2), Daily: 20, BloodA: 10, BloodB: 1},
		{Entity: "A", Date: day(3), Daily: 30, BloodA: 15, BloodB: 1},
	}

	matrix, err := Correlate(observations)
	require.NoError(t, err)
	require.Len(t, matrix.Columns, len(NumericColumns()))

	idx := make(map[string]int)
	for i, col := range matrix.Columns {
		idx[col] = i
	}

	t.Run("unit diagonal", func(t *testing.T) {
		for i := range matrix.Columns {
			assert.InDelta(t, 1.0, matrix.Values[i][i], 1e-9)
		}
	})

	t.Run("symmetric", func(t *testing.T) {
		for i := range matrix.Columns {
			for j := range matrix.Columns {
				assert.InDelta(t, matrix.Values[i][j], matrix.Values[j][i], 1e-9)
			}
		}
	})

	t.Run("perfectly correlated columns", func(t *testing.T) {
		assert.InDelta(t, 1.0, matrix.Values[idx[ColDaily]][idx[ColBloodA]], 1e-9)
	})

	t.Run("zero variance column correlates zero", func(t *testing.T) {
		assert.InDelta(t, 0.0, matrix.Values[idx[ColDaily]][idx[ColBloodB]], 1e-9)
	})
}

func TestCorrelateTooFewObservations(t *testing.T) {
	_, err := Correlate([]dataset.Observation{{Entity: "A", Date: day(1), Daily: 1}})
	require.Error(t, err)
}

func TestVerifyDailyTotals(t *testing.T) {
	facility := []dataset.Observation{
		{Entity: "H1", Date: day(1), Daily: 10},
		{Entity: "H2", Date: day(1), Daily: 5},
		{Entity: "H1", Date: day(2), Daily: 8},
		{Entity: "H1", Date: day(3), Daily: 2},
	}
	state := []dataset.Observation{
		{Entity: "S1", Date: day(1), Daily: 15}, // matches
		{Entity: "S1", Date: day(2), Daily: 9},  // mismatch of -1
		{Entity: "S1", Date: day(4), Daily: 4},  // state-only date
	}

	report, err := VerifyDailyTotals(facility, state)
	require.NoError(t, err)

	assert.Equal(t, 2, report.DaysCompared)
	assert.Equal(t, 1, report.MismatchedDays)
	assert.Equal(t, 1, report.FacilityOnly)
	assert.Equal(t, 1, report.StateOnly)
	assert.Equal(t, -1, report.MinDifference)
	assert.Equal(t, 0, report.MaxDifference)
	assert.InDelta(t, -0.5, report.MeanDifference, 1e-9)

	require.Len(t, report.SampleMismatches, 1)
	assert.Equal(t, "2024-01-02", report.SampleMismatches[0].Date)
	assert.Equal(t, -1, report.SampleMismatches[0].Difference)
}

func TestVerifyDailyTotalsRequiresBoth(t *testing.T) {
	_, err := VerifyDailyTotals(nil, []dataset.Observation{{Entity: "S", Date: day(1), Daily: 1}})
	require.Error(t, err)
}
