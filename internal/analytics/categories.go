package analytics

import (
	"darahcli/internal/dataset"
)

// CategoryBreakdown holds the summed counts for one categorical dimension
type CategoryBreakdown struct {
	Dimension string         `json:"dimension"`
	Totals    map[string]int `json:"totals"`
	Order     []string       `json:"order"`
}

// Categorical dimension names
const (
	DimBloodType    = "blood_type"
	DimDonationType = "donation_type"
	DimSocialGroup  = "social_group"
	DimDonorType    = "donor_type"
)

// CategoryTotals sums every categorical dimension over the dataset:
// blood types, donation types, social groups and donor types.
func CategoryTotals(observations []dataset.Observation) []CategoryBreakdown {
	blood := CategoryBreakdown{
		Dimension: DimBloodType,
		Totals:    map[string]int{"A": 0, "B": 0, "O": 0, "AB": 0},
		Order:     []string{"A", "B", "O", "AB"},
	}
	donation := CategoryBreakdown{
		Dimension: DimDonationType,
		Totals: map[string]int{
			"Whole Blood": 0, "Apheresis Platelet": 0, "Apheresis Plasma": 0, "Other": 0,
		},
		Order: []string{"Whole Blood", "Apheresis Platelet", "Apheresis Plasma", "Other"},
	}
	social := CategoryBreakdown{
		Dimension: DimSocialGroup,
		Totals:    map[string]int{"Civilian": 0, "Student": 0, "Police/Army": 0},
		Order:     []string{"Civilian", "Student", "Police/Army"},
	}
	donor := CategoryBreakdown{
		Dimension: DimDonorType,
		Totals:    map[string]int{"New": 0, "Regular": 0, "Irregular": 0},
		Order:     []string{"New", "Regular", "Irregular"},
	}

	for _, o := range observations {
		blood.Totals["A"] += o.BloodA
		blood.Totals["B"] += o.BloodB
		blood.Totals["O"] += o.BloodO
		blood.Totals["AB"] += o.BloodAB

		donation.Totals["Whole Blood"] += o.TypeWholeBlood
		donation.Totals["Apheresis Platelet"] += o.TypeApheresisPlatelet
		donation.Totals["Apheresis Plasma"] += o.TypeApheresisPlasma
		donation.Totals["Other"] += o.TypeOther

		social.Totals["Civilian"] += o.SocialCivilian
		social.Totals["Student"] += o.SocialStudent
		social.Totals["Police/Army"] += o.SocialPoliceArmy

		donor.Totals["New"] += o.DonationsNew
		donor.Totals["Regular"] += o.DonationsRegular
		donor.Totals["Irregular"] += o.DonationsIrregular
	}

	return []CategoryBreakdown{blood, donation, social, donor}
}
