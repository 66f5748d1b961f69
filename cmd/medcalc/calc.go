// ABOUTME: CLI commands for the health calculators.
// ABOUTME: Each successful result is printed and saved to history exactly once.
package main

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/harperreed/medcalc/internal/engine"
	"github.com/harperreed/medcalc/internal/models"
	"github.com/spf13/cobra"
)

var (
	caloriesSex  string
	sugarContext string
	cholLDL      string
	cholHDL      string
)

var bmiCmd = &cobra.Command{
	Use:   "bmi <height-cm> <weight-kg>",
	Short: "Compute body-mass index",
	Long: `Compute body-mass index as weight / (height in meters)^2, rounded to one decimal.

CATEGORIES:

  Underweight   below 18.5
  Normal        18.5 to 24.9
  Overweight    25 to 29.9
  Obese         30 and above

EXAMPLES:

  medcalc bmi 175 70     # 22.9 (Normal)
  medcalc bmi 180 95     # 29.3 (Overweight)`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCalc(cmd, models.KindBMI, engine.Inputs{
			engine.FieldHeight: args[0],
			engine.FieldWeight: args[1],
		})
	},
}

var caloriesCmd = &cobra.Command{
	Use:     "calories <weight-kg> <height-cm> <age>",
	Aliases: []string{"bmr"},
	Short:   "Compute basal metabolic rate and daily calorie needs",
	Long: `Compute basal metabolic rate with the Mifflin-St Jeor equation and the
daily calorie needs for three activity levels.

  sedentary   BMR x 1.2
  moderate    BMR x 1.55
  active      BMR x 1.9

EXAMPLES:

  medcalc calories 70 175 30               # male (default)
  medcalc calories 60 165 28 --sex female`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCalc(cmd, models.KindCalories, engine.Inputs{
			engine.FieldWeight: args[0],
			engine.FieldHeight: args[1],
			engine.FieldAge:    args[2],
			engine.FieldSex:    caloriesSex,
		})
	},
}

var pressureCmd = &cobra.Command{
	Use:     "pressure <systolic> <diastolic>",
	Aliases: []string{"bp"},
	Short:   "Classify a blood-pressure reading",
	Long: `Classify a blood-pressure reading in mmHg.

CATEGORIES (first match wins):

  Normal                 systolic < 120 and diastolic < 80
  Elevated               systolic < 130 and diastolic < 80
  Hypertension Stage 1   systolic < 140 or diastolic < 90
  Hypertension Stage 2   systolic < 180 or diastolic < 120
  Hypertensive Crisis    otherwise

EXAMPLES:

  medcalc pressure 118 76
  medcalc bp 135 85`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCalc(cmd, models.KindBloodPressure, engine.Inputs{
			engine.FieldSystolic:  args[0],
			engine.FieldDiastolic: args[1],
		})
	},
}

var sugarCmd = &cobra.Command{
	Use:     "sugar <glucose-mmol>",
	Aliases: []string{"glucose"},
	Short:   "Classify a blood-glucose reading",
	Long: `Classify a blood-glucose reading in mmol/L.

THRESHOLDS:

  fasting     Normal < 5.6, Prediabetes < 7.0, otherwise Diabetes
  post_meal   Normal < 7.8, Prediabetes < 11.1, otherwise Diabetes

EXAMPLES:

  medcalc sugar 5.2
  medcalc sugar 9.4 --context post_meal`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCalc(cmd, models.KindBloodSugar, engine.Inputs{
			engine.FieldGlucose: args[0],
			engine.FieldContext: sugarContext,
		})
	},
}

var cholesterolCmd = &cobra.Command{
	Use:     "cholesterol <total-mmol>",
	Aliases: []string{"chol"},
	Short:   "Classify a lipid panel",
	Long: `Classify total cholesterol, and LDL/HDL when given, in mmol/L.

  total   Optimal < 5.2, Borderline-high < 6.2, otherwise High
  LDL     Normal < 2.6, Borderline < 3.4, otherwise High
  HDL     Excellent >= 1.6, Normal >= 1.0, otherwise Low

EXAMPLES:

  medcalc cholesterol 4.8
  medcalc cholesterol 5.5 --ldl 3.0 --hdl 1.2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCalc(cmd, models.KindCholesterol, engine.Inputs{
			engine.FieldTotal: args[0],
			engine.FieldLDL:   cholLDL,
			engine.FieldHDL:   cholHDL,
		})
	},
}

var calcCmd = &cobra.Command{
	Use:   "calc <kind> <field=value>...",
	Short: "Run any calculator with named fields",
	Long: `Run a calculator by kind with field=value pairs.

FIELDS:

  bmi           height, weight
  calories      weight, height, age, sex
  pressure      systolic, diastolic
  sugar         glucose, context
  cholesterol   total, ldl, hdl

EXAMPLES:

  medcalc calc bmi height=175 weight=70
  medcalc calc sugar glucose=9.4 context=post_meal`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind := args[0]
		if !models.IsValidMetricKind(kind) {
			return fmt.Errorf("unknown kind: %s\nValid kinds: %s", kind, kindList())
		}

		in := engine.Inputs{}
		for _, pair := range args[1:] {
			field, value, ok := strings.Cut(pair, "=")
			if !ok {
				return fmt.Errorf("expected field=value, got %q", pair)
			}
			in[strings.ToLower(strings.TrimSpace(field))] = value
		}
		return runCalc(cmd, models.MetricKind(kind), in)
	},
}

// runCalc computes kind, saves the result through the calculator's
// OnSave hook, and prints it.
func runCalc(cmd *cobra.Command, kind models.MetricKind, in engine.Inputs) error {
	var saved *models.Record
	calc := &engine.Calculator{OnSave: func(res engine.Result) error {
		r, err := history.Save(res)
		saved = r
		return err
	}}

	res, ok, err := calc.Run(kind, in)
	if !ok {
		return fmt.Errorf("no result: %s needs positive numbers for %s",
			kind, strings.Join(engine.KindFields[kind], ", "))
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	green.Fprintf(out, "✓ %s %s\n", kind.Label(), withUnit(res.Primary(), kind.Unit()))
	printDetail(out, res.Detail())
	fmt.Fprintf(out, "  %s\n", faint.Sprint(saved.ID.String()[:8]))
	return nil
}

func printDetail(w io.Writer, d models.Detail) {
	switch d := d.(type) {
	case models.CaloriesDetail:
		fmt.Fprintf(w, "  sedentary %d kcal\n  moderate  %d kcal\n  active    %d kcal\n",
			d.Sedentary, d.Moderate, d.Active)
	case nil:
	default:
		fmt.Fprintf(w, "  %s\n", d.Summary())
	}
}

func kindList() string {
	kinds := make([]string, 0, len(models.AllMetricKinds))
	for _, k := range models.AllMetricKinds {
		kinds = append(kinds, string(k))
	}
	sort.Strings(kinds)
	return strings.Join(kinds, ", ")
}

func init() {
	caloriesCmd.Flags().StringVar(&caloriesSex, "sex", "male", "male or female")
	sugarCmd.Flags().StringVar(&sugarContext, "context", "fasting", "fasting or post_meal")
	cholesterolCmd.Flags().StringVar(&cholLDL, "ldl", "", "LDL cholesterol (mmol/L)")
	cholesterolCmd.Flags().StringVar(&cholHDL, "hdl", "", "HDL cholesterol (mmol/L)")

	rootCmd.AddCommand(bmiCmd, caloriesCmd, pressureCmd, sugarCmd, cholesterolCmd, calcCmd)
}
