// Package quadrant classifies blood donation entities (hospitals or states)
// into four volume/variability groups.
//
// Each entity's daily donation counts are reduced to a mean and a standard
// deviation, the population medians of those two statistics become the cut
// points, and every entity lands in exactly one quadrant:
//
//   - HIGH_VOLUME_HIGH_VAR: large but unstable supply
//   - HIGH_VOLUME_LOW_VAR:  reliable anchors
//   - LOW_VOLUME_HIGH_VAR:  small and erratic
//   - LOW_VOLUME_LOW_VAR:   small but steady
//
// Two conventions are policy, not hardcoded: the standard deviation
// denominator (sample by default, so a single-observation entity reports
// zero variability instead of NaN) and the tie-break at the threshold
// (>= classifies as HIGH by default). See Policy.
//
// The computation is pure and total: given valid input every entity receives
// exactly one label, there is no hidden state, and shuffling the input does
// not change the output.
//
// # Usage
//
//	classifier := quadrant.NewClassifier(quadrant.DefaultPolicy(), slog.Default())
//	result, err := classifier.Run(ctx, observations)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := quadrant.SaveToCSV(result, "reports/quadrants.csv"); err != nil {
//	    log.Fatal(err)
//	}
package quadrant
