// ABOUTME: Blood-glucose classification for fasting and post-meal samples.
// ABOUTME: Thresholds in mmol/L differ by measurement context.
package engine

import "github.com/harperreed/medcalc/internal/models"

// SugarCategory is a glucose class.
type SugarCategory string

const (
	SugarNormal SugarCategory = "Normal"
	Prediabetes SugarCategory = "Prediabetes"
	Diabetes    SugarCategory = "Diabetes"
)

// SugarInput is a glucose reading and when it was taken.
type SugarInput struct {
	GlucoseMmolL float64
	Context      models.MealContext
}

// SugarResult is a reading and its category.
type SugarResult struct {
	Input    SugarInput
	Category SugarCategory
}

type sugarThresholds struct{ normal, prediabetes float64 }

var sugarTable = map[models.MealContext]sugarThresholds{
	models.Fasting:  {normal: 5.6, prediabetes: 7.0},
	models.PostMeal: {normal: 7.8, prediabetes: 11.1},
}

// Sugar classifies a glucose reading. It returns false for a
// non-positive reading or an unknown context.
func Sugar(in SugarInput) (SugarResult, bool) {
	th, ok := sugarTable[in.Context]
	if !ok || !positive(in.GlucoseMmolL) {
		return SugarResult{}, false
	}
	cat := Diabetes
	switch {
	case in.GlucoseMmolL < th.normal:
		cat = SugarNormal
	case in.GlucoseMmolL < th.prediabetes:
		cat = Prediabetes
	}
	return SugarResult{Input: in, Category: cat}, true
}

func (r SugarResult) Kind() models.MetricKind { return models.KindBloodSugar }
func (r SugarResult) Primary() models.Value   { return models.NumberValue(r.Input.GlucoseMmolL) }

func (r SugarResult) Detail() models.Detail {
	return models.SugarDetail{Context: r.Input.Context, Category: string(r.Category)}
}
