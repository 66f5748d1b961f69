// ABOUTME: CLI commands for listing and clearing the history log.
// ABOUTME: Supports filtering by kind and since-date, and limiting results.
package main

import (
	"fmt"
	"time"

	"github.com/harperreed/medcalc/internal/models"
	"github.com/spf13/cobra"
)

var (
	historyKind  string
	historyLimit int
	historySince string
	clearYes     bool
)

var historyCmd = &cobra.Command{
	Use:     "history",
	Aliases: []string{"list", "ls", "h"},
	Short:   "List saved calculations",
	Long: `List saved calculations, newest first.

OUTPUT FORMAT:

  Each line shows: ID  TIMESTAMP  KIND  VALUE  UNIT  (RESULT)

FILTERING:

  Use --kind to filter by kind:
    bmi, calories, pressure, sugar, cholesterol

EXAMPLES:

  medcalc history                     # Show last 20 calculations
  medcalc history --kind bmi          # Show only BMI results
  medcalc history -n 100              # Show the whole log
  medcalc history --since 2025-01-01  # Results from 2025 onward`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if historyKind != "" && !models.IsValidMetricKind(historyKind) {
			return fmt.Errorf("unknown kind: %s\nValid kinds: %s", historyKind, kindList())
		}
		var since time.Time
		if historySince != "" {
			t, err := parseTime(historySince)
			if err != nil {
				return fmt.Errorf("invalid --since: %s", historySince)
			}
			since = t
		}

		out := cmd.OutOrStdout()
		shown := 0
		for _, r := range history.All() {
			if historyKind != "" && string(r.Kind) != historyKind {
				continue
			}
			if r.Timestamp.Before(since) {
				continue
			}
			printRecord(out, r)
			shown++
			if historyLimit > 0 && shown == historyLimit {
				break
			}
		}

		if shown == 0 {
			fmt.Fprintln(out, "No calculations found.")
			return nil
		}
		fmt.Fprintln(out, faint.Sprintf("%d of %d stored (capacity %d)", shown, history.Len(), history.Capacity()))
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete every saved calculation",
	Long: `Delete every saved calculation. This cannot be undone.

EXAMPLES:

  medcalc history clear       # Asks for confirmation
  medcalc history clear -y    # No prompt`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		n := history.Len()
		if n == 0 {
			fmt.Fprintln(out, "History is already empty.")
			return nil
		}

		prompt := fmt.Sprintf("Delete %d calculations? [y/N] ", n)
		if !clearYes && !confirm(cmd.InOrStdin(), out, prompt, "y", "yes") {
			fmt.Fprintln(out, "Canceled.")
			return nil
		}

		if err := history.Clear(); err != nil {
			return fmt.Errorf("failed to clear history: %w", err)
		}
		yellow.Fprintf(out, "✓ Cleared %d calculations\n", n)
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVarP(&historyKind, "kind", "t", "", "filter by kind")
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "max number of results (0 for all)")
	historyCmd.Flags().StringVar(&historySince, "since", "", "only include results since date (YYYY-MM-DD)")
	historyClearCmd.Flags().BoolVarP(&clearYes, "yes", "y", false, "skip confirmation prompt")

	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
