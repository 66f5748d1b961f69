// ABOUTME: Basal metabolic rate via Mifflin-St Jeor with activity tiers.
// ABOUTME: Tiers are derived from the rounded BMR and rounded independently.
package engine

import "github.com/harperreed/medcalc/internal/models"

// Activity multipliers applied to BMR.
const (
	SedentaryFactor = 1.2
	ModerateFactor  = 1.55
	ActiveFactor    = 1.9
)

// CaloriesInput holds the Mifflin-St Jeor inputs.
type CaloriesInput struct {
	WeightKg float64
	HeightCm float64
	AgeYears float64
	Sex      models.Sex
}

// CaloriesResult is the rounded BMR plus daily needs per activity tier.
type CaloriesResult struct {
	Input     CaloriesInput
	BMR       int
	Sedentary int
	Moderate  int
	Active    int
}

// Calories computes BMR in kcal/day. It returns false for non-positive
// inputs or an unknown sex.
func Calories(in CaloriesInput) (CaloriesResult, bool) {
	if !positive(in.WeightKg, in.HeightCm, in.AgeYears) {
		return CaloriesResult{}, false
	}

	base := 10*in.WeightKg + 6.25*in.HeightCm - 5*in.AgeYears
	switch in.Sex {
	case models.SexMale:
		base += 5
	case models.SexFemale:
		base -= 161
	default:
		return CaloriesResult{}, false
	}

	bmr := roundHalfUp(base)
	return CaloriesResult{
		Input:     in,
		BMR:       int(bmr),
		Sedentary: int(roundHalfUp(bmr * SedentaryFactor)),
		Moderate:  int(roundHalfUp(bmr * ModerateFactor)),
		Active:    int(roundHalfUp(bmr * ActiveFactor)),
	}, true
}

func (r CaloriesResult) Kind() models.MetricKind { return models.KindCalories }
func (r CaloriesResult) Primary() models.Value   { return models.NumberValue(float64(r.BMR)) }

func (r CaloriesResult) Detail() models.Detail {
	return models.CaloriesDetail{
		Sex:       r.Input.Sex,
		AgeYears:  r.Input.AgeYears,
		WeightKg:  r.Input.WeightKg,
		HeightCm:  r.Input.HeightCm,
		Sedentary: r.Sedentary,
		Moderate:  r.Moderate,
		Active:    r.Active,
	}
}
