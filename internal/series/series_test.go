// ABOUTME: Tests for chart series extraction.
// ABOUTME: Covers windowing, ordering, lenient coercion, and locale labels.
package series

import (
	"testing"
	"time"

	"github.com/harperreed/medcalc/internal/models"
)

// memSource is a newest-first slice of records.
type memSource []models.Record

func (m memSource) All() []models.Record { return m }

// newestFirst builds a source from records given oldest to newest.
func newestFirst(records ...*models.Record) memSource {
	out := make(memSource, len(records))
	for i, r := range records {
		out[len(records)-1-i] = *r
	}
	return out
}

var day0 = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func rec(kind models.MetricKind, v models.Value, day int) *models.Record {
	return models.NewRecord(kind, v, nil).WithTimestamp(day0.AddDate(0, 0, day))
}

func values(points []Point) []float64 {
	out := make([]float64, len(points))
	for i, p := range points {
		out[i] = p.Value
	}
	return out
}

func equalFloats(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestSeriesOldestFirst(t *testing.T) {
	src := newestFirst(
		rec(models.KindBMI, models.NumberValue(22.0), 0),
		rec(models.KindBMI, models.NumberValue(23.5), 1),
		rec(models.KindBMI, models.NumberValue(24.0), 2),
	)
	e := NewExtractor(src, WithLocation(time.UTC))

	got := e.Series(models.KindBMI, DefaultWindow)
	if want := []float64{22.0, 23.5, 24.0}; !equalFloats(values(got), want) {
		t.Errorf("Series = %v, want %v", values(got), want)
	}
	if got[0].Label != "01.03" || got[2].Label != "03.03" {
		t.Errorf("labels = %q, %q", got[0].Label, got[2].Label)
	}
}

func TestSeriesWindowKeepsMostRecent(t *testing.T) {
	var records []*models.Record
	for i := 0; i < 15; i++ {
		records = append(records, rec(models.KindCalories, models.NumberValue(float64(2000+i)), i))
	}
	e := NewExtractor(newestFirst(records...))

	got := e.Series(models.KindCalories, 10)
	if len(got) != 10 {
		t.Fatalf("len = %d, want 10", len(got))
	}
	if got[0].Value != 2005 || got[9].Value != 2014 {
		t.Errorf("window = %v, want 2005..2014", values(got))
	}

	if n := len(e.Series(models.KindCalories, 0)); n != DefaultWindow {
		t.Errorf("window 0 len = %d, want %d", n, DefaultWindow)
	}
	if n := len(e.Series(models.KindCalories, 3)); n != 3 {
		t.Errorf("window 3 len = %d, want 3", n)
	}
}

func TestSeriesFiltersByKind(t *testing.T) {
	src := newestFirst(
		rec(models.KindBMI, models.NumberValue(22), 0),
		rec(models.KindBloodSugar, models.NumberValue(5.2), 1),
		rec(models.KindBMI, models.NumberValue(23), 2),
		rec(models.KindCholesterol, models.NumberValue(4.8), 3),
	)
	e := NewExtractor(src)

	if got := values(e.Series(models.KindBMI, 10)); !equalFloats(got, []float64{22, 23}) {
		t.Errorf("bmi = %v", got)
	}
	if got := values(e.Series(models.KindBloodSugar, 10)); !equalFloats(got, []float64{5.2}) {
		t.Errorf("sugar = %v", got)
	}
	if got := e.Series(models.KindCalories, 10); len(got) != 0 {
		t.Errorf("calories = %v, want empty", got)
	}
}

func TestSeriesLenientValues(t *testing.T) {
	src := newestFirst(
		rec(models.KindBloodPressure, models.TextValue("120/80"), 0),
		rec(models.KindBloodPressure, models.TextValue("garbage"), 1),
	)
	e := NewExtractor(src)

	got := values(e.Series(models.KindBloodPressure, 10))
	if !equalFloats(got, []float64{120, 0}) {
		t.Errorf("pressure = %v, want [120 0]", got)
	}
}

func TestSeriesRecomputedEachCall(t *testing.T) {
	src := newestFirst(rec(models.KindBMI, models.NumberValue(22), 0))
	e := NewExtractor(src)

	first := e.Series(models.KindBMI, 10)
	first[0].Value = 99

	if got := e.Series(models.KindBMI, 10); got[0].Value != 22 {
		t.Errorf("second call = %v, want fresh 22", got[0].Value)
	}
}

func TestAllCoversChartKinds(t *testing.T) {
	src := newestFirst(rec(models.KindBMI, models.NumberValue(22), 0))
	charts := NewExtractor(src).All(DefaultWindow)

	if len(charts) != len(ChartKinds) {
		t.Fatalf("len = %d, want %d", len(charts), len(ChartKinds))
	}
	for i, c := range charts {
		if c.Kind != ChartKinds[i] {
			t.Errorf("charts[%d].Kind = %s, want %s", i, c.Kind, ChartKinds[i])
		}
	}
	if len(charts[0].Points) != 1 || len(charts[1].Points) != 0 {
		t.Errorf("unexpected points: %+v", charts)
	}
}

func TestDayMonthLayout(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"ru-RU", "02.01"},
		{"ru", "02.01"},
		{"", "02.01"},
		{"not a tag!", "02.01"},
		{"en-US", "01/02"},
		{"en-GB", "02/01"},
		{"de-DE", "02.01."},
		{"fr-FR", "02/01"},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			if got := DayMonthLayout(tt.locale); got != tt.want {
				t.Errorf("DayMonthLayout(%q) = %q, want %q", tt.locale, got, tt.want)
			}
		})
	}
}

func TestLabelLocaleAndLocation(t *testing.T) {
	src := newestFirst(rec(models.KindBMI, models.NumberValue(22), 0))

	us := NewExtractor(src, WithLocale("en-US"), WithLocation(time.UTC))
	if got := us.Series(models.KindBMI, 1)[0].Label; got != "03/01" {
		t.Errorf("en-US label = %q, want 03/01", got)
	}

	// 12:00 UTC is already the next day in UTC+14.
	kiribati := time.FixedZone("LINT", 14*3600)
	e := NewExtractor(src, WithLocation(kiribati))
	if got := e.Series(models.KindBMI, 1)[0].Label; got != "02.03" {
		t.Errorf("UTC+14 label = %q, want 02.03", got)
	}
}
