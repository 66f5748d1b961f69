// ABOUTME: CLI commands for exporting and importing the history log.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/harperreed/medcalc/internal/models"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportKind   string
	exportSince  string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export the history log",
	Long: `Export the history log in various formats.

FORMATS:

  json       Full JSON export (suitable for backup/restore)
  yaml       YAML export grouped by kind (human-readable)
  markdown   Markdown tables per kind (for documentation/sharing)

OPTIONS:

  --output, -o   Write to file instead of stdout
  --kind, -t     Filter by kind (markdown only)
  --since        Only include results since this date (markdown only)

EXAMPLES:

  medcalc export json                        # Export all data as JSON
  medcalc export json -o backup.json         # Save to file
  medcalc export yaml                        # Export as YAML
  medcalc export markdown --kind bmi         # Export BMI as Markdown
  medcalc export markdown --since 2025-01-01 # Results from 2025 onward`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "yaml", "markdown"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		var data []byte
		var err error

		switch format {
		case "json":
			data, err = history.ExportJSON()
		case "yaml":
			data, err = history.ExportYAML()
		case "markdown", "md":
			var kind *models.MetricKind
			if exportKind != "" {
				if !models.IsValidMetricKind(exportKind) {
					return fmt.Errorf("unknown kind: %s", exportKind)
				}
				k := models.MetricKind(exportKind)
				kind = &k
			}
			var since *time.Time
			if exportSince != "" {
				t, err := parseTime(exportSince)
				if err != nil {
					return fmt.Errorf("invalid date format: %s (use YYYY-MM-DD)", exportSince)
				}
				since = &t
			}
			data = []byte(history.ExportMarkdown(kind, since))
		default:
			return fmt.Errorf("unknown format: %s (use json, yaml, or markdown)", format)
		}

		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		out := cmd.OutOrStdout()
		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			green.Fprintf(out, "✓ Exported to %s\n", exportOutput)
		} else {
			fmt.Fprintln(out, string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import calculations from a JSON export",
	Long: `Import calculations from a JSON file written by 'medcalc export json'.

Records already present (same ID) are skipped. Imported records keep their
original timestamps and order; the log still holds at most 100 entries.

EXAMPLES:

  medcalc import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		filename := args[0]

		data, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		n, err := history.ImportJSON(data)
		if err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		green.Fprintf(cmd.OutOrStdout(), "✓ Imported %d calculations from %s\n", n, filename)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file (default: stdout)")
	exportCmd.Flags().StringVarP(&exportKind, "kind", "t", "", "filter by kind (markdown only)")
	exportCmd.Flags().StringVar(&exportSince, "since", "", "only include data since date (YYYY-MM-DD)")

	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
