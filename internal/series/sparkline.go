// ABOUTME: Unicode sparkline rendering of a chart series.
// ABOUTME: Used by the terminal chart command.
package series

import "strings"

// sparkline block characters from lowest to highest
var sparkBlocks = []rune{
	'\u2581', // ▁
	'\u2582', // ▂
	'\u2583', // ▃
	'\u2584', // ▄
	'\u2585', // ▅
	'\u2586', // ▆
	'\u2587', // ▇
	'\u2588', // █
}

// Sparkline renders points as one block character each, scaled between
// the series minimum and maximum. A flat series renders at the lowest
// block.
func Sparkline(points []Point) string {
	if len(points) == 0 {
		return ""
	}

	lo, hi := points[0].Value, points[0].Value
	for _, p := range points {
		lo = min(lo, p.Value)
		hi = max(hi, p.Value)
	}

	var b strings.Builder
	rng := hi - lo
	for _, p := range points {
		idx := 0
		if rng > 0 {
			idx = int((p.Value - lo) / rng * float64(len(sparkBlocks)-1))
		}
		idx = max(0, min(idx, len(sparkBlocks)-1))
		b.WriteRune(sparkBlocks[idx])
	}

	return b.String()
}
