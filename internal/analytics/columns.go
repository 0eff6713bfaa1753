package analytics

import (
	"darahcli/internal/dataset"
)

// Column names for the numeric fields of an Observation, matching the
// source CSV headers.
const (
	ColDaily                 = "daily"
	ColBloodA                = "blood_a"
	ColBloodB                = "blood_b"
	ColBloodO                = "blood_o"
	ColBloodAB               = "blood_ab"
	ColTypeWholeBlood        = "type_wholeblood"
	ColTypeApheresisPlatelet = "type_apheresis_platelet"
	ColTypeApheresisPlasma   = "type_apheresis_plasma"
	ColTypeOther             = "type_other"
	ColSocialCivilian        = "social_civilian"
	ColSocialStudent         = "social_student"
	ColSocialPoliceArmy      = "social_policearmy"
	ColDonationsNew          = "donations_new"
	ColDonationsRegular      = "donations_regular"
	ColDonationsIrregular    = "donations_irregular"
)

// NumericColumns lists every numeric column in stable presentation order
func NumericColumns() []string {
	return []string{
		ColDaily,
		ColBloodA, ColBloodB, ColBloodO, ColBloodAB,
		ColTypeWholeBlood, ColTypeApheresisPlatelet, ColTypeApheresisPlasma, ColTypeOther,
		ColSocialCivilian, ColSocialStudent, ColSocialPoliceArmy,
		ColDonationsNew, ColDonationsRegular, ColDonationsIrregular,
	}
}

// columnValue extracts a single numeric field from an observation by name
func columnValue(o dataset.Observation, column string) float64 {
	switch column {
	case ColDaily:
		return float64(o.Daily)
	case ColBloodA:
		return float64(o.BloodA)
	case ColBloodB:
		return float64(o.BloodB)
	case ColBloodO:
		return float64(o.BloodO)
	case ColBloodAB:
		return float64(o.BloodAB)
	case ColTypeWholeBlood:
		return float64(o.TypeWholeBlood)
	case ColTypeApheresisPlatelet:
		return float64(o.TypeApheresisPlatelet)
	case ColTypeApheresisPlasma:
		return float64(o.TypeApheresisPlasma)
	case ColTypeOther:
		return float64(o.TypeOther)
	case ColSocialCivilian:
		return float64(o.SocialCivilian)
	case ColSocialStudent:
		return float64(o.SocialStudent)
	case ColSocialPoliceArmy:
		return float64(o.SocialPoliceArmy)
	case ColDonationsNew:
		return float64(o.DonationsNew)
	case ColDonationsRegular:
		return float64(o.DonationsRegular)
	case ColDonationsIrregular:
		return float64(o.DonationsIrregular)
	default:
		return 0
	}
}

func columnValues(observations []dataset.Observation, column string) []float64 {
	values := make([]float64, len(observations))
	for i, o := range observations {
		values[i] = columnValue(o, column)
	}
	return values
}
