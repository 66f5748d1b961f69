// ABOUTME: Rounding and input validation helpers shared by calculators.
// ABOUTME: Half-up rounding and strictly-positive finite checks.
package engine

import "math"

var nan = math.NaN()

// roundHalfUp rounds to the nearest integer, ties toward +Inf.
func roundHalfUp(x float64) float64 {
	return math.Floor(x + 0.5)
}

// roundTo1 rounds half-up to one decimal place.
func roundTo1(x float64) float64 {
	return math.Floor(x*10+0.5) / 10
}

// positive reports whether every value is finite and > 0.
func positive(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
			return false
		}
	}
	return true
}
