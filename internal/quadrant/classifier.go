package quadrant

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"
)

// Classifier partitions donation entities into four volume/variability
// quadrants. It is a one-shot, stateless batch computation: each call
// operates on its own immutable snapshot of observations.
type Classifier struct {
	policy Policy
	logger *slog.Logger
}

// NewClassifier creates a classifier with the given policy
func NewClassifier(policy Policy, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{
		policy: policy,
		logger: logger,
	}
}

// Policy returns the statistical conventions the classifier runs under
func (c *Classifier) Policy() Policy {
	return c.policy
}

// Summarize groups observations by entity and computes per-entity mean and
// standard deviation of the daily counts. Output is sorted by entity name, so
// the result does not depend on the arrival order of observations.
func (c *Classifier) Summarize(ctx context.Context, observations []Observation) ([]EntitySummary, error) {
	if err := validateObservations(observations); err != nil {
		c.logger.ErrorContext(ctx, "input validation failed", "error", err)
		return nil, fmt.Errorf("validate observations: %w", err)
	}

	grouped := make(map[string][]float64)
	for _, o := range observations {
		grouped[o.Entity] = append(grouped[o.Entity], float64(o.Daily))
	}

	summaries := make([]EntitySummary, 0, len(grouped))
	for entity, counts := range grouped {
		summaries = append(summaries, EntitySummary{
			Entity:       entity,
			MeanCount:    mean(counts),
			StdCount:     stddev(counts, c.policy.StdConvention),
			Observations: len(counts),
		})
	}

	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Entity < summaries[j].Entity
	})

	c.logger.InfoContext(ctx, "summarized observations",
		slog.Int("observations", len(observations)),
		slog.Int("entities", len(summaries)),
		slog.String("std_convention", c.policy.StdConvention.String()),
	)

	return summaries, nil
}

// Threshold computes the population cut points: the median of all entity
// means and the median of all entity standard deviations. Pure function of
// the input multiset.
func (c *Classifier) Threshold(summaries []EntitySummary) (Thresholds, error) {
	if len(summaries) == 0 {
		return Thresholds{}, &ValidationError{
			Field:   "summaries",
			Message: "no entity summaries provided",
		}
	}

	means := make([]float64, len(summaries))
	stds := make([]float64, len(summaries))
	for i, s := range summaries {
		means[i] = s.MeanCount
		stds[i] = s.StdCount
	}

	return Thresholds{
		MeanThreshold: median(means),
		StdThreshold:  median(stds),
	}, nil
}

// Classify assigns every summarized entity to exactly one quadrant. The
// thresholds may come from the same summaries or from an external baseline,
// e.g. to place a new facility against historical cut points.
func (c *Classifier) Classify(summaries []EntitySummary, thresholds Thresholds) ([]Assignment, error) {
	if len(summaries) == 0 {
		return nil, &ValidationError{
			Field:   "summaries",
			Message: "no entity summaries provided",
		}
	}

	assignments := make([]Assignment, 0, len(summaries))
	for _, s := range summaries {
		if !s.IsValid() {
			return nil, &ValidationError{
				Field:   "summaries",
				Message: fmt.Sprintf("invalid summary for entity %q", s.Entity),
				Value:   s,
			}
		}

		highVolume := c.atLeast(s.MeanCount, thresholds.MeanThreshold)
		highVar := c.atLeast(s.StdCount, thresholds.StdThreshold)

		assignments = append(assignments, Assignment{
			Entity:    s.Entity,
			Quadrant:  quadrantFor(highVolume, highVar),
			MeanCount: s.MeanCount,
			StdCount:  s.StdCount,
		})
	}

	sort.Slice(assignments, func(i, j int) bool {
		return assignments[i].Entity < assignments[j].Entity
	})

	return assignments, nil
}

// Run executes the full pass: Summarize, Threshold, Classify, then groups
// assignments by quadrant.
func (c *Classifier) Run(ctx context.Context, observations []Observation) (*Result, error) {
	start := time.Now()

	summaries, err := c.Summarize(ctx, observations)
	if err != nil {
		return nil, err
	}

	thresholds, err := c.Threshold(summaries)
	if err != nil {
		return nil, fmt.Errorf("compute thresholds: %w", err)
	}

	assignments, err := c.Classify(summaries, thresholds)
	if err != nil {
		return nil, fmt.Errorf("classify entities: %w", err)
	}

	groups := make(map[Quadrant][]Assignment)
	for _, a := range assignments {
		groups[a.Quadrant] = append(groups[a.Quadrant], a)
	}

	c.logger.InfoContext(ctx, "quadrant classification completed",
		slog.Int("entities", len(assignments)),
		slog.Float64("mean_threshold", thresholds.MeanThreshold),
		slog.Float64("std_threshold", thresholds.StdThreshold),
		slog.Duration("duration", time.Since(start)),
	)

	return &Result{
		GeneratedAt: time.Now(),
		Summaries:   summaries,
		Thresholds:  thresholds,
		Assignments: assignments,
		Groups:      groups,
	}, nil
}

// atLeast applies the configured tie-break: with TieBreakHigh a value exactly
// on the threshold counts as HIGH.
func (c *Classifier) atLeast(value, threshold float64) bool {
	if c.policy.TieBreakHigh {
		return value >= threshold
	}
	return value > threshold
}

func quadrantFor(highVolume, highVar bool) Quadrant {
	switch {
	case highVolume && highVar:
		return HighVolumeHighVar
	case highVolume:
		return HighVolumeLowVar
	case highVar:
		return LowVolumeHighVar
	default:
		return LowVolumeLowVar
	}
}

// validateObservations rejects malformed input before any computation
func validateObservations(observations []Observation) error {
	if len(observations) == 0 {
		return &ValidationError{
			Field:   "observations",
			Message: "no observations provided",
		}
	}

	for i, o := range observations {
		if o.Entity == "" {
			return &ValidationError{
				Field:   "entity",
				Message: fmt.Sprintf("observation %d has no entity identifier", i),
			}
		}
		if o.Daily < 0 {
			return &ValidationError{
				Field:   "daily",
				Message: fmt.Sprintf("observation %d for entity %q has negative count", i, o.Entity),
				Value:   o.Daily,
			}
		}
	}

	return nil
}
