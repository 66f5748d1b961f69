// ABOUTME: CLI command for pediatric dose lookup.
// ABOUTME: Results are printed only; dosage is never saved to history.
package main

import (
	"fmt"
	"strings"

	"github.com/harperreed/medcalc/internal/engine"
	"github.com/spf13/cobra"
)

var dosageCmd = &cobra.Command{
	Use:   "dosage <weight-kg> <drug>",
	Short: "Look up a pediatric single dose",
	Long: `Look up a single dose by body weight from the reference table.

DRUGS:

  paracetamol   10 mg/kg (10-15 mg/kg every 4-6 hours)
  ibuprofen     7 mg/kg  (5-10 mg/kg every 6-8 hours)
  amoxicillin   25 mg/kg (20-40 mg/kg per day)

Names are case-insensitive; Russian names and common aliases work too.
Dosage results are not saved to history.

EXAMPLES:

  medcalc dosage 15 paracetamol     # 150 mg
  medcalc dosage 20 Ибупрофен       # 140 mg`,
	Args:        cobra.MinimumNArgs(2),
	Annotations: map[string]string{skipStorage: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		drug := strings.Join(args[1:], " ")

		weight, ok := engine.ParseNumber(args[0])
		if !ok {
			return fmt.Errorf("invalid weight: %s", args[0])
		}

		res, ok := engine.Dosage(engine.DosageInput{WeightKg: weight, Drug: drug})
		if !ok {
			return fmt.Errorf("no result: weight must be positive and a drug must be given")
		}

		if !res.Found {
			yellow.Fprintln(out, res.String())
			fmt.Fprintf(out, "  Known: %s\n", strings.Join(engine.DrugNames(), ", "))
			return nil
		}

		green.Fprintf(out, "✓ %s %d mg\n", res.Drug, res.DoseMg)
		fmt.Fprintf(out, "  %s\n", res.Guidance)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dosageCmd)
}
