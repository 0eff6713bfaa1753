package dataset

import (
	"sort"
	"time"
)

// Kind identifies which of the two source datasets an observation belongs to
type Kind int

const (
	// KindFacility is the hospital-level dataset
	KindFacility Kind = iota
	// KindState is the state-level dataset
	KindState
)

// String returns the string representation of the dataset kind
func (k Kind) String() string {
	switch k {
	case KindFacility:
		return "facility"
	case KindState:
		return "state"
	default:
		return "unknown"
	}
}

// Observation represents a single day's donation activity for one entity
// (a hospital in the facility dataset, a state in the state dataset).
// Daily is the total donation count; the remaining counters break the day
// down by blood type, donation type, social group and donor type.
type Observation struct {
	Entity string    `json:"entity"`
	Date   time.Time `json:"date"`
	Daily  int       `json:"daily"`

	// Blood type breakdown
	BloodA  int `json:"blood_a"`
	BloodB  int `json:"blood_b"`
	BloodO  int `json:"blood_o"`
	BloodAB int `json:"blood_ab"`

	// Donation type breakdown
	TypeWholeBlood        int `json:"type_wholeblood"`
	TypeApheresisPlatelet int `json:"type_apheresis_platelet"`
	TypeApheresisPlasma   int `json:"type_apheresis_plasma"`
	TypeOther             int `json:"type_other"`

	// Social group breakdown
	SocialCivilian   int `json:"social_civilian"`
	SocialStudent    int `json:"social_student"`
	SocialPoliceArmy int `json:"social_policearmy"`

	// Donor type breakdown
	DonationsNew       int `json:"donations_new"`
	DonationsRegular   int `json:"donations_regular"`
	DonationsIrregular int `json:"donations_irregular"`
}

// IsValid checks if the observation carries usable data
func (o Observation) IsValid() bool {
	return o.Entity != "" && !o.Date.IsZero() && o.Daily >= 0 &&
		o.BloodA >= 0 && o.BloodB >= 0 && o.BloodO >= 0 && o.BloodAB >= 0 &&
		o.TypeWholeBlood >= 0 && o.TypeApheresisPlatelet >= 0 &&
		o.TypeApheresisPlasma >= 0 && o.TypeOther >= 0 &&
		o.SocialCivilian >= 0 && o.SocialStudent >= 0 && o.SocialPoliceArmy >= 0 &&
		o.DonationsNew >= 0 && o.DonationsRegular >= 0 && o.DonationsIrregular >= 0
}

// Dataset is an immutable snapshot of one loaded CSV file
type Dataset struct {
	Kind         Kind
	Source       string
	Observations []Observation
}

// Entities returns the distinct entity names in the dataset, sorted
func (d *Dataset) Entities() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, o := range d.Observations {
		if _, ok := seen[o.Entity]; !ok {
			seen[o.Entity] = struct{}{}
			names = append(names, o.Entity)
		}
	}
	sort.Strings(names)
	return names
}

// DateRange returns the earliest and latest observation dates.
// Zero times are returned for an empty dataset.
func (d *Dataset) DateRange() (first, last time.Time) {
	for _, o := range d.Observations {
		if first.IsZero() || o.Date.Before(first) {
			first = o.Date
		}
		if last.IsZero() || o.Date.After(last) {
			last = o.Date
		}
	}
	return first, last
}
