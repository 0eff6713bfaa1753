package quadrant

import (
	"fmt"
	"sort"
	"time"
)

// GroupSummary aggregates one quadrant's members for reporting
type GroupSummary struct {
	Quadrant       Quadrant
	Entities       []string
	Count          int
	MeanOfMeans    float64
	MeanOfStds     float64
	Recommendation string
}

// Insights contains the analyzed classification output in report-ready form
type Insights struct {
	GeneratedAt   time.Time
	TotalEntities int
	Thresholds    Thresholds
	Groups        []GroupSummary
}

// GenerateInsights turns a classification result into per-quadrant summaries
// with operational recommendations.
func GenerateInsights(result *Result) Insights {
	insights := Insights{
		GeneratedAt:   result.GeneratedAt,
		TotalEntities: len(result.Assignments),
		Thresholds:    result.Thresholds,
	}

	for _, q := range Quadrants {
		members := result.Groups[q]

		group := GroupSummary{
			Quadrant:       q,
			Count:          len(members),
			Recommendation: recommendationFor(q),
		}

		var sumMean, sumStd float64
		for _, a := range members {
			group.Entities = append(group.Entities, a.Entity)
			sumMean += a.MeanCount
			sumStd += a.StdCount
		}
		if len(members) > 0 {
			group.MeanOfMeans = sumMean / float64(len(members))
			group.MeanOfStds = sumStd / float64(len(members))
		}
		sort.Strings(group.Entities)

		insights.Groups = append(insights.Groups, group)
	}

	return insights
}

// recommendationFor returns the operational reading of a quadrant
func recommendationFor(q Quadrant) string {
	switch q {
	case HighVolumeHighVar:
		return "High volume but unstable supply; investigate drivers of variability and add stabilization campaigns"
	case HighVolumeLowVar:
		return "Reliable anchor of the supply; maintain current donor programs and use as baseline capacity"
	case LowVolumeHighVar:
		return "Small and erratic contribution; donations likely event-driven, consider scheduled drives"
	case LowVolumeLowVar:
		return "Small but steady contribution; growth campaigns can scale this base predictably"
	default:
		return "Unclassified"
	}
}

// FormatGroupLine renders one quadrant group as a single summary line
func FormatGroupLine(g GroupSummary) string {
	return fmt.Sprintf("%-22s entities=%-3d avg_mean=%8.2f avg_std=%8.2f",
		g.Quadrant.String(), g.Count, g.MeanOfMeans, g.MeanOfStds)
}
