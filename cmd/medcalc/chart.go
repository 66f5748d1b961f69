// ABOUTME: CLI command for charting recent results per kind.
// ABOUTME: Renders terminal sparklines, JSON series, or an ECharts HTML page.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/harperreed/medcalc/internal/models"
	"github.com/harperreed/medcalc/internal/series"
	"github.com/spf13/cobra"
)

var (
	chartWindow int
	chartHTML   string
	chartJSON   bool
)

var chartCmd = &cobra.Command{
	Use:   "chart [kind]",
	Short: "Chart recent results",
	Long: `Chart the most recent results of a kind, oldest first.

Without a kind, prints a sparkline for BMI, calories, blood sugar and
cholesterol. With a kind, prints each point and its sparkline.

Labels are day/month in the configured locale (config set locale en-US).

EXAMPLES:

  medcalc chart                          # Sparklines for every chart
  medcalc chart bmi                      # Last 10 BMI results
  medcalc chart sugar -w 30              # Last 30 glucose readings
  medcalc chart bmi --json               # Points as JSON
  medcalc chart bmi --html bmi.html      # Interactive chart page`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		window := chartWindow
		if window <= 0 {
			window = cfg.GetChartWindow()
		}
		ex := series.NewExtractor(history, series.WithLocale(cfg.GetLocale()))

		if len(args) == 0 {
			if chartHTML != "" {
				return fmt.Errorf("--html needs a kind")
			}
			charts := ex.All(window)
			if chartJSON {
				return writeJSON(out, charts)
			}
			for _, c := range charts {
				line := series.Sparkline(c.Points)
				if line == "" {
					line = faint.Sprint("no data")
				}
				fmt.Fprintf(out, "%s %s\n", padRight(c.Kind.Label(), 14), line)
			}
			return nil
		}

		kind := args[0]
		if !models.IsValidMetricKind(kind) {
			return fmt.Errorf("unknown kind: %s\nValid kinds: %s", kind, kindList())
		}
		mk := models.MetricKind(kind)
		points := ex.Series(mk, window)

		if chartHTML != "" {
			f, err := os.Create(chartHTML)
			if err != nil {
				return fmt.Errorf("failed to create file: %w", err)
			}
			defer f.Close()
			if err := series.RenderHTML(f, mk, points); err != nil {
				return err
			}
			green.Fprintf(out, "✓ Chart written to %s\n", chartHTML)
			return nil
		}

		if chartJSON {
			return writeJSON(out, points)
		}

		if len(points) == 0 {
			fmt.Fprintf(out, "No %s results yet.\n", mk.Label())
			return nil
		}
		bold.Fprintf(out, "%s %s\n", mk.Label(), series.Sparkline(points))
		for _, p := range points {
			fmt.Fprintf(out, "  %s %s\n", faint.Sprint(padRight(p.Label, 6)), models.FormatNumber(p.Value))
		}
		return nil
	},
}

func writeJSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func init() {
	chartCmd.Flags().IntVarP(&chartWindow, "window", "w", 0, "number of recent results (default from config, 10)")
	chartCmd.Flags().StringVar(&chartHTML, "html", "", "write an HTML chart to this file")
	chartCmd.Flags().BoolVar(&chartJSON, "json", false, "print points as JSON")
	rootCmd.AddCommand(chartCmd)
}
