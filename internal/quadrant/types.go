package quadrant

import (
	"time"

	"darahcli/internal/dataset"
)

// Quadrant labels an entity by donation volume (mean) and variability (std)
// relative to the population medians.
type Quadrant int

const (
	// HighVolumeHighVar identifies large but unstable donation sources
	HighVolumeHighVar Quadrant = iota
	// HighVolumeLowVar identifies large, reliable donation sources
	HighVolumeLowVar
	// LowVolumeHighVar identifies small, erratic donation sources
	LowVolumeHighVar
	// LowVolumeLowVar identifies small but steady donation sources
	LowVolumeLowVar
)

// Quadrants lists all four labels in presentation order
var Quadrants = []Quadrant{
	HighVolumeHighVar,
	HighVolumeLowVar,
	LowVolumeHighVar,
	LowVolumeLowVar,
}

// String returns the string representation of the quadrant
func (q Quadrant) String() string {
	switch q {
	case HighVolumeHighVar:
		return "HIGH_VOLUME_HIGH_VAR"
	case HighVolumeLowVar:
		return "HIGH_VOLUME_LOW_VAR"
	case LowVolumeHighVar:
		return "LOW_VOLUME_HIGH_VAR"
	case LowVolumeLowVar:
		return "LOW_VOLUME_LOW_VAR"
	default:
		return "unknown"
	}
}

// EntitySummary holds per-entity donation statistics derived from the
// observation set. Immutable once computed; recomputed on every run.
type EntitySummary struct {
	Entity       string  `json:"entity"`
	MeanCount    float64 `json:"mean_count"`
	StdCount     float64 `json:"std_count"`
	Observations int     `json:"n_observations"`
}

// IsValid checks if the summary carries usable statistics
func (es EntitySummary) IsValid() bool {
	return es.Entity != "" && es.Observations > 0 && es.StdCount >= 0
}

// Thresholds are the population cut points shared by all entities in one run.
// Both are medians over the EntitySummary population; the median of an
// even-length sequence is the average of the two middle values.
type Thresholds struct {
	MeanThreshold float64 `json:"mean_threshold"`
	StdThreshold  float64 `json:"std_threshold"`
}

// Assignment places one entity in exactly one quadrant. It is a pure function
// of the entity's summary statistics and the population thresholds.
type Assignment struct {
	Entity    string   `json:"entity"`
	Quadrant  Quadrant `json:"quadrant"`
	MeanCount float64  `json:"mean_count"`
	StdCount  float64  `json:"std_count"`
}

// StdConvention selects the standard deviation denominator
type StdConvention int

const (
	// SampleStd divides by n-1. The daily series of each entity is treated
	// as a sample, so this is the default.
	SampleStd StdConvention = iota
	// PopulationStd divides by n
	PopulationStd
)

// String returns the string representation of the convention
func (c StdConvention) String() string {
	switch c {
	case SampleStd:
		return "sample"
	case PopulationStd:
		return "population"
	default:
		return "unknown"
	}
}

// Policy fixes the statistical conventions for one classification run.
// Entities sitting exactly on a threshold land on the HIGH side when
// TieBreakHigh is set, which is the documented default.
type Policy struct {
	StdConvention StdConvention `json:"std_convention"`
	TieBreakHigh  bool          `json:"tie_break_high"`
}

// DefaultPolicy returns the documented defaults: sample standard deviation
// and ties classified as HIGH.
func DefaultPolicy() Policy {
	return Policy{
		StdConvention: SampleStd,
		TieBreakHigh:  true,
	}
}

// Result is the complete output of one classification run
type Result struct {
	GeneratedAt time.Time               `json:"generated_at"`
	Summaries   []EntitySummary         `json:"summaries"`
	Thresholds  Thresholds              `json:"thresholds"`
	Assignments []Assignment            `json:"assignments"`
	Groups      map[Quadrant][]Assignment `json:"groups"`
}

// ValidationError reports malformed input rejected before computation begins
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Error implements the error interface
func (ve *ValidationError) Error() string {
	return ve.Message
}

// Observation aliases the dataset observation type so callers of the
// classifier do not need to import both packages.
type Observation = dataset.Observation
