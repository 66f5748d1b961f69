// ABOUTME: Tests for sparkline and HTML chart rendering.
// ABOUTME: Checks scaling edge cases and that the chart page carries the data.
package series

import (
	"bytes"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/harperreed/medcalc/internal/models"
)

func TestSparkline(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   string
	}{
		{"empty", nil, ""},
		{"single", []float64{5}, "▁"},
		{"flat", []float64{3, 3, 3}, "▁▁▁"},
		{"rising", []float64{0, 7}, "▁█"},
		{"full range", []float64{0, 1, 2, 3, 4, 5, 6, 7}, "▁▂▃▄▅▆▇█"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := make([]Point, len(tt.values))
			for i, v := range tt.values {
				points[i] = Point{Value: v}
			}
			got := Sparkline(points)
			if got != tt.want {
				t.Errorf("Sparkline(%v) = %q, want %q", tt.values, got, tt.want)
			}
			if utf8.RuneCountInString(got) != len(tt.values) {
				t.Errorf("rune count = %d, want %d", utf8.RuneCountInString(got), len(tt.values))
			}
		})
	}
}

func TestRenderHTML(t *testing.T) {
	points := []Point{
		{Label: "01.03", Value: 22.1},
		{Label: "02.03", Value: 22.4},
	}

	var buf bytes.Buffer
	if err := RenderHTML(&buf, models.KindBMI, points); err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}

	html := buf.String()
	for _, want := range []string{"<html", "echarts", "BMI", "01.03", "22.4"} {
		if !strings.Contains(html, want) {
			t.Errorf("expected %q in chart HTML", want)
		}
	}
}

func TestRenderHTMLEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHTML(&buf, models.KindCholesterol, nil); err != nil {
		t.Fatalf("RenderHTML failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("expected a page even with no points")
	}
}
