// ABOUTME: Renders a chart series as a standalone ECharts HTML page.
// ABOUTME: One smoothed line per kind with min/max points and an average line.
package series

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/harperreed/medcalc/internal/models"
)

// RenderHTML writes an HTML line chart of points to w.
func RenderHTML(w io.Writer, kind models.MetricKind, points []Point) error {
	xAxis := make([]string, 0, len(points))
	yData := make([]opts.LineData, 0, len(points))
	for _, p := range points {
		xAxis = append(xAxis, p.Label)
		yData = append(yData, opts.LineData{Value: p.Value})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "medcalc: " + kind.Label(),
		}),
		charts.WithTitleOpts(opts.Title{
			Title: kind.Label(),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show: opts.Bool(true),
		}),
		charts.WithLegendOpts(opts.Legend{
			Show: opts.Bool(false),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  kind.Unit(),
			Scale: opts.Bool(true),
		}),
	)

	line.SetXAxis(xAxis).
		AddSeries(kind.Label(), yData).
		SetSeriesOptions(
			charts.WithLineChartOpts(opts.LineChart{
				Smooth:     opts.Bool(true),
				ShowSymbol: opts.Bool(true),
			}),
			charts.WithMarkPointNameTypeItemOpts(
				opts.MarkPointNameTypeItem{Name: "Max", Type: "max"},
				opts.MarkPointNameTypeItem{Name: "Min", Type: "min"},
			),
			charts.WithMarkLineNameTypeItemOpts(
				opts.MarkLineNameTypeItem{Name: "Average", Type: "average"},
			),
		)

	if err := line.Render(w); err != nil {
		return fmt.Errorf("render %s chart: %w", kind, err)
	}
	return nil
}
