// ABOUTME: MetricKind enum for calculator results kept in history.
// ABOUTME: Defines wire names, display labels, and units per kind.
package models

// MetricKind identifies which calculator produced a history record.
type MetricKind string

const (
	KindBMI           MetricKind = "bmi"
	KindCalories      MetricKind = "calories"
	KindBloodPressure MetricKind = "pressure"
	KindBloodSugar    MetricKind = "sugar"
	KindCholesterol   MetricKind = "cholesterol"
)

// AllMetricKinds returns every kind that can appear in history.
var AllMetricKinds = []MetricKind{
	KindBMI, KindCalories, KindBloodPressure, KindBloodSugar, KindCholesterol,
}

// KindLabels maps kinds to human-readable names.
var KindLabels = map[MetricKind]string{
	KindBMI:           "BMI",
	KindCalories:      "Calories",
	KindBloodPressure: "Blood pressure",
	KindBloodSugar:    "Blood sugar",
	KindCholesterol:   "Cholesterol",
}

// KindUnits maps kinds to the unit of their primary value.
var KindUnits = map[MetricKind]string{
	KindBMI:           "",
	KindCalories:      "kcal",
	KindBloodPressure: "mmHg",
	KindBloodSugar:    "mmol/L",
	KindCholesterol:   "mmol/L",
}

// IsValidMetricKind checks if a string names a known kind.
func IsValidMetricKind(s string) bool {
	for _, k := range AllMetricKinds {
		if string(k) == s {
			return true
		}
	}
	return false
}

// Label returns the display name, falling back to the raw kind.
func (k MetricKind) Label() string {
	if l, ok := KindLabels[k]; ok {
		return l
	}
	return string(k)
}

// Unit returns the unit of the kind's primary value.
func (k MetricKind) Unit() string {
	return KindUnits[k]
}

// TextValued reports whether the kind stores its primary value as text.
func (k MetricKind) TextValued() bool {
	return k == KindBloodPressure
}
