// ABOUTME: Projects the history log into per-kind chart series.
// ABOUTME: Series are oldest-first, bounded to a recent window, and recomputed on every call.
package series

import (
	"time"

	"github.com/harperreed/medcalc/internal/models"
	"golang.org/x/text/language"
)

// DefaultWindow is the number of most recent records charted per kind.
const DefaultWindow = 10

// ChartKinds are the kinds offered as charts, in display order.
var ChartKinds = []models.MetricKind{
	models.KindBMI,
	models.KindCalories,
	models.KindBloodSugar,
	models.KindCholesterol,
}

// Point is one chart sample.
type Point struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// Chart is the series of one kind.
type Chart struct {
	Kind   models.MetricKind `json:"kind"`
	Points []Point           `json:"points"`
}

// Source is the read side of the history log, newest first.
type Source interface {
	All() []models.Record
}

// Extractor builds chart series from a Source.
type Extractor struct {
	src    Source
	layout string
	loc    *time.Location
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLocale sets the BCP 47 locale used for day/month labels.
func WithLocale(locale string) Option {
	return func(e *Extractor) {
		e.layout = DayMonthLayout(locale)
	}
}

// WithLocation sets the time zone labels are rendered in.
func WithLocation(loc *time.Location) Option {
	return func(e *Extractor) {
		if loc != nil {
			e.loc = loc
		}
	}
}

// NewExtractor creates an Extractor over src with Russian labels in the
// local time zone.
func NewExtractor(src Source, opts ...Option) *Extractor {
	e := &Extractor{
		src:    src,
		layout: layouts[0],
		loc:    time.Local,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Series returns up to window records of kind, oldest first. Values are
// coerced to numbers; text such as "120/80" yields its leading number
// and anything unparseable yields 0. A window of 0 or less means
// DefaultWindow.
func (e *Extractor) Series(kind models.MetricKind, window int) []Point {
	if window <= 0 {
		window = DefaultWindow
	}

	recent := make([]models.Record, 0, window)
	for _, r := range e.src.All() {
		if r.Kind != kind {
			continue
		}
		recent = append(recent, r)
		if len(recent) == window {
			break
		}
	}

	points := make([]Point, len(recent))
	for i, r := range recent {
		points[len(recent)-1-i] = Point{
			Label: e.Label(r.Timestamp),
			Value: r.Value.Float(),
		}
	}
	return points
}

// All returns the series of every chart kind, including empty ones.
func (e *Extractor) All(window int) []Chart {
	charts := make([]Chart, 0, len(ChartKinds))
	for _, k := range ChartKinds {
		charts = append(charts, Chart{Kind: k, Points: e.Series(k, window)})
	}
	return charts
}

// Label renders t as a day/month label.
func (e *Extractor) Label(t time.Time) string {
	return t.In(e.loc).Format(e.layout)
}

var (
	supported = []language.Tag{
		language.Russian,
		language.AmericanEnglish,
		language.BritishEnglish,
		language.German,
		language.French,
	}
	layouts = []string{
		"02.01",
		"01/02",
		"02/01",
		"02.01.",
		"02/01",
	}
	matcher = language.NewMatcher(supported)
)

// DayMonthLayout returns the time layout for a short day/month label in
// locale. Unknown or empty locales get the Russian layout.
func DayMonthLayout(locale string) string {
	tag, err := language.Parse(locale)
	if err != nil {
		return layouts[0]
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return layouts[0]
	}
	return layouts[idx]
}
