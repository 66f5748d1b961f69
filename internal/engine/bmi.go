// ABOUTME: Body-mass index calculator with WHO weight categories.
// ABOUTME: BMI is rounded half-up to one decimal before classification.
package engine

import "github.com/harperreed/medcalc/internal/models"

// BMICategory is a weight class derived from BMI.
type BMICategory string

const (
	Underweight  BMICategory = "Underweight"
	NormalWeight BMICategory = "Normal"
	Overweight   BMICategory = "Overweight"
	Obese        BMICategory = "Obese"
)

// BMIInput holds height and weight.
type BMIInput struct {
	HeightCm float64
	WeightKg float64
}

// BMIResult is a rounded BMI and its category.
type BMIResult struct {
	Input    BMIInput
	BMI      float64
	Category BMICategory
}

// BMI computes weight / (height in metres)^2. It returns false if either
// input is not strictly positive.
func BMI(in BMIInput) (BMIResult, bool) {
	if !positive(in.HeightCm, in.WeightKg) {
		return BMIResult{}, false
	}
	h := in.HeightCm / 100
	bmi := roundTo1(in.WeightKg / (h * h))
	return BMIResult{Input: in, BMI: bmi, Category: ClassifyBMI(bmi)}, true
}

// ClassifyBMI maps a BMI to its category. Lower bounds are inclusive.
func ClassifyBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25:
		return NormalWeight
	case bmi < 30:
		return Overweight
	default:
		return Obese
	}
}

func (r BMIResult) Kind() models.MetricKind { return models.KindBMI }
func (r BMIResult) Primary() models.Value   { return models.NumberValue(r.BMI) }

func (r BMIResult) Detail() models.Detail {
	return models.BMIDetail{
		HeightCm: r.Input.HeightCm,
		WeightKg: r.Input.WeightKg,
		Category: string(r.Category),
	}
}
