// ABOUTME: Kind-specific supporting data attached to history records.
// ABOUTME: One struct per MetricKind behind the Detail interface.
package models

import (
	"encoding/json"
	"fmt"
)

// Detail is the supporting data of a record: the inputs used and the
// classification produced. Each MetricKind has exactly one Detail type.
type Detail interface {
	Kind() MetricKind
	// Summary is the narrative classification shown next to the value.
	Summary() string
}

// Sex selects the Mifflin-St Jeor constant.
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

// MealContext selects blood-glucose thresholds.
type MealContext string

const (
	Fasting  MealContext = "fasting"
	PostMeal MealContext = "post_meal"
)

// BMIDetail records the inputs of a BMI computation.
type BMIDetail struct {
	HeightCm float64 `json:"height" yaml:"height"`
	WeightKg float64 `json:"weight" yaml:"weight"`
	Category string  `json:"result" yaml:"result"`
}

func (BMIDetail) Kind() MetricKind  { return KindBMI }
func (d BMIDetail) Summary() string { return d.Category }

// CaloriesDetail records BMR inputs and derived activity tiers.
type CaloriesDetail struct {
	Sex       Sex     `json:"gender" yaml:"gender"`
	AgeYears  float64 `json:"age" yaml:"age"`
	WeightKg  float64 `json:"weight" yaml:"weight"`
	HeightCm  float64 `json:"height" yaml:"height"`
	Sedentary int     `json:"sedentary" yaml:"sedentary"`
	Moderate  int     `json:"moderate" yaml:"moderate"`
	Active    int     `json:"active" yaml:"active"`
}

func (CaloriesDetail) Kind() MetricKind { return KindCalories }

func (d CaloriesDetail) Summary() string {
	return fmt.Sprintf("sedentary %d, moderate %d, active %d kcal", d.Sedentary, d.Moderate, d.Active)
}

// PressureDetail records a blood-pressure reading and its category.
type PressureDetail struct {
	Systolic  float64 `json:"systolic" yaml:"systolic"`
	Diastolic float64 `json:"diastolic" yaml:"diastolic"`
	Category  string  `json:"result" yaml:"result"`
}

func (PressureDetail) Kind() MetricKind  { return KindBloodPressure }
func (d PressureDetail) Summary() string { return d.Category }

// SugarDetail records the measurement context and glucose category.
type SugarDetail struct {
	Context  MealContext `json:"mealTime" yaml:"meal_time"`
	Category string      `json:"result" yaml:"result"`
}

func (SugarDetail) Kind() MetricKind  { return KindBloodSugar }
func (d SugarDetail) Summary() string { return d.Category }

// CholesterolDetail records the optional lipid fractions and the
// combined narrative. Zero LDL/HDL means the fraction was not given.
type CholesterolDetail struct {
	LDL       float64 `json:"ldl,omitempty" yaml:"ldl,omitempty"`
	HDL       float64 `json:"hdl,omitempty" yaml:"hdl,omitempty"`
	Narrative string  `json:"result" yaml:"result"`
}

func (CholesterolDetail) Kind() MetricKind  { return KindCholesterol }
func (d CholesterolDetail) Summary() string { return d.Narrative }

// decodeDetail parses additionalData for the given kind.
func decodeDetail(kind MetricKind, raw json.RawMessage) (Detail, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	var (
		d   Detail
		err error
	)
	switch kind {
	case KindBMI:
		var v BMIDetail
		err = json.Unmarshal(raw, &v)
		d = v
	case KindCalories:
		var v CaloriesDetail
		err = json.Unmarshal(raw, &v)
		d = v
	case KindBloodPressure:
		var v PressureDetail
		err = json.Unmarshal(raw, &v)
		d = v
	case KindBloodSugar:
		var v SugarDetail
		err = json.Unmarshal(raw, &v)
		d = v
	case KindCholesterol:
		var v CholesterolDetail
		err = json.Unmarshal(raw, &v)
		d = v
	default:
		return nil, fmt.Errorf("unknown metric kind: %q", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s detail: %w", kind, err)
	}
	return d, nil
}
