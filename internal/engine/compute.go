// ABOUTME: Kind-parameterized entry point over raw string inputs.
// ABOUTME: Calculator forwards each successful result to an OnSave hook once.
package engine

import (
	"fmt"
	"strings"

	"github.com/harperreed/medcalc/internal/models"
)

// Result is a successful computation that can be saved to history.
type Result interface {
	models.Outcome
}

// Inputs are raw form values keyed by field name.
type Inputs map[string]string

// Input field names accepted by Compute.
const (
	FieldHeight    = "height"
	FieldWeight    = "weight"
	FieldAge       = "age"
	FieldSex       = "sex"
	FieldSystolic  = "systolic"
	FieldDiastolic = "diastolic"
	FieldGlucose   = "glucose"
	FieldContext   = "context"
	FieldTotal     = "total"
	FieldLDL       = "ldl"
	FieldHDL       = "hdl"
)

// KindFields lists required and optional fields per kind.
var KindFields = map[models.MetricKind][]string{
	models.KindBMI:           {FieldHeight, FieldWeight},
	models.KindCalories:      {FieldWeight, FieldHeight, FieldAge, FieldSex},
	models.KindBloodPressure: {FieldSystolic, FieldDiastolic},
	models.KindBloodSugar:    {FieldGlucose, FieldContext},
	models.KindCholesterol:   {FieldTotal, FieldLDL, FieldHDL},
}

// ParseNumber parses a form value the way a lenient numeric field does:
// the leading numeric prefix counts, anything else is invalid.
func ParseNumber(s string) (float64, bool) {
	return models.ParseLeadingFloat(s)
}

// ParseSex accepts male/female and their initials. Empty means male.
func ParseSex(s string) (models.Sex, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "male", "m":
		return models.SexMale, true
	case "female", "f":
		return models.SexFemale, true
	}
	return "", false
}

// ParseMealContext accepts fasting and post_meal (or after_meal).
// Empty means fasting.
func ParseMealContext(s string) (models.MealContext, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "fasting":
		return models.Fasting, true
	case "post_meal", "post-meal", "after_meal":
		return models.PostMeal, true
	}
	return "", false
}

// number returns the parsed field or NaN when missing or unparseable,
// which every calculator rejects.
func (in Inputs) number(field string) float64 {
	f, ok := ParseNumber(in[field])
	if !ok {
		return nan
	}
	return f
}

// optional returns the parsed field or 0 when absent.
func (in Inputs) optional(field string) float64 {
	f, ok := ParseNumber(in[field])
	if !ok {
		return 0
	}
	return f
}

// Compute runs the calculator for kind over raw inputs. It returns false
// when any required input is missing, non-numeric or non-positive.
func Compute(kind models.MetricKind, in Inputs) (Result, bool) {
	switch kind {
	case models.KindBMI:
		return wrap(BMI(BMIInput{HeightCm: in.number(FieldHeight), WeightKg: in.number(FieldWeight)}))
	case models.KindCalories:
		sex, ok := ParseSex(in[FieldSex])
		if !ok {
			return nil, false
		}
		return wrap(Calories(CaloriesInput{
			WeightKg: in.number(FieldWeight),
			HeightCm: in.number(FieldHeight),
			AgeYears: in.number(FieldAge),
			Sex:      sex,
		}))
	case models.KindBloodPressure:
		return wrap(Pressure(PressureInput{Systolic: in.number(FieldSystolic), Diastolic: in.number(FieldDiastolic)}))
	case models.KindBloodSugar:
		ctx, ok := ParseMealContext(in[FieldContext])
		if !ok {
			return nil, false
		}
		return wrap(Sugar(SugarInput{GlucoseMmolL: in.number(FieldGlucose), Context: ctx}))
	case models.KindCholesterol:
		return wrap(Cholesterol(CholesterolInput{
			TotalMmolL: in.number(FieldTotal),
			LDLMmolL:   in.optional(FieldLDL),
			HDLMmolL:   in.optional(FieldHDL),
		}))
	}
	return nil, false
}

func wrap(r Result, ok bool) (Result, bool) {
	if !ok {
		return nil, false
	}
	return r, true
}

// Calculator runs computations and hands each successful result to
// OnSave exactly once. Invalid inputs never reach OnSave.
type Calculator struct {
	OnSave func(Result) error
}

// Run computes kind over in. ok is false when inputs were invalid; err
// is only set when OnSave fails.
func (c *Calculator) Run(kind models.MetricKind, in Inputs) (res Result, ok bool, err error) {
	res, ok = Compute(kind, in)
	if !ok {
		return nil, false, nil
	}
	if c.OnSave != nil {
		if err := c.OnSave(res); err != nil {
			return res, true, fmt.Errorf("save %s result: %w", kind, err)
		}
	}
	return res, true, nil
}
