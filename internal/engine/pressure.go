// ABOUTME: Blood-pressure classification by ordered threshold rules.
// ABOUTME: First matching rule wins; rules 3 and 4 are OR conditions.
package engine

import (
	"github.com/harperreed/medcalc/internal/models"
)

// PressureCategory is a blood-pressure class.
type PressureCategory string

const (
	PressureNormal     PressureCategory = "Normal"
	PressureElevated   PressureCategory = "Elevated"
	HypertensionStage1 PressureCategory = "Hypertension Stage 1"
	HypertensionStage2 PressureCategory = "Hypertension Stage 2"
	HypertensiveCrisis PressureCategory = "Hypertensive Crisis"
)

// PressureInput is one systolic/diastolic reading in mmHg.
type PressureInput struct {
	Systolic  float64
	Diastolic float64
}

// PressureResult is a reading and its category.
type PressureResult struct {
	Input    PressureInput
	Category PressureCategory
}

// Pressure classifies a reading. It returns false unless both values are
// strictly positive.
func Pressure(in PressureInput) (PressureResult, bool) {
	if !positive(in.Systolic, in.Diastolic) {
		return PressureResult{}, false
	}
	return PressureResult{Input: in, Category: ClassifyPressure(in.Systolic, in.Diastolic)}, true
}

// ClassifyPressure applies the rules in order. A high diastolic with a
// systolic under 140 still lands in Stage 1 because rule 3 is an OR.
func ClassifyPressure(sys, dia float64) PressureCategory {
	switch {
	case sys < 120 && dia < 80:
		return PressureNormal
	case sys < 130 && dia < 80:
		return PressureElevated
	case sys < 140 || dia < 90:
		return HypertensionStage1
	case sys < 180 || dia < 120:
		return HypertensionStage2
	default:
		return HypertensiveCrisis
	}
}

// Reading formats the reading as "sys/dia".
func (in PressureInput) Reading() string {
	return models.FormatNumber(in.Systolic) + "/" + models.FormatNumber(in.Diastolic)
}

func (r PressureResult) Kind() models.MetricKind { return models.KindBloodPressure }
func (r PressureResult) Primary() models.Value   { return models.TextValue(r.Input.Reading()) }

func (r PressureResult) Detail() models.Detail {
	return models.PressureDetail{
		Systolic:  r.Input.Systolic,
		Diastolic: r.Input.Diastolic,
		Category:  string(r.Category),
	}
}
