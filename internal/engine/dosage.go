// ABOUTME: Pediatric single-dose lookup by body weight.
// ABOUTME: Case-insensitive drug table; unknown drugs soft-fail with a message.
package engine

import (
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// DrugNotFound is the text shown for a drug missing from the table.
const DrugNotFound = "Drug not found in reference table"

// Drug is one entry of the dosage table.
type Drug struct {
	Name     string
	MgPerKg  float64
	Guidance string
	Aliases  []string
}

// Drugs is the fixed reference table.
var Drugs = []Drug{
	{
		Name:     "paracetamol",
		MgPerKg:  10,
		Guidance: "10-15 mg/kg every 4-6 hours",
		Aliases:  []string{"парацетамол", "acetaminophen"},
	},
	{
		Name:     "ibuprofen",
		MgPerKg:  7,
		Guidance: "5-10 mg/kg every 6-8 hours",
		Aliases:  []string{"ибупрофен"},
	},
	{
		Name:     "amoxicillin",
		MgPerKg:  25,
		Guidance: "20-40 mg/kg per day",
		Aliases:  []string{"амоксициллин", "amoxicilline"},
	},
}

var drugIndex = buildDrugIndex()

func buildDrugIndex() map[string]*Drug {
	idx := make(map[string]*Drug)
	for i := range Drugs {
		d := &Drugs[i]
		idx[foldName(d.Name)] = d
		for _, a := range d.Aliases {
			idx[foldName(a)] = d
		}
	}
	return idx
}

// foldName normalizes a drug name for caseless comparison.
func foldName(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// DosageInput is a patient weight and a drug name as typed.
type DosageInput struct {
	WeightKg float64
	Drug     string
}

// DosageResult is a computed dose, or Found=false for an unknown drug.
// Dosage results are never written to history.
type DosageResult struct {
	Found    bool
	Drug     string
	DoseMg   int
	Guidance string
}

// Dosage looks up the drug and scales by weight. It returns false only
// for invalid input (non-positive weight or empty name); an unknown drug
// is a valid result with Found=false.
func Dosage(in DosageInput) (DosageResult, bool) {
	if !positive(in.WeightKg) || strings.TrimSpace(in.Drug) == "" {
		return DosageResult{}, false
	}
	d, ok := drugIndex[foldName(in.Drug)]
	if !ok {
		return DosageResult{Drug: in.Drug}, true
	}
	return DosageResult{
		Found:    true,
		Drug:     d.Name,
		DoseMg:   int(roundHalfUp(in.WeightKg * d.MgPerKg)),
		Guidance: d.Guidance,
	}, true
}

// String renders the result for display, e.g. "150 mg (10-15 mg/kg every
// 4-6 hours)".
func (r DosageResult) String() string {
	if !r.Found {
		return DrugNotFound
	}
	return fmt.Sprintf("%d mg (%s)", r.DoseMg, r.Guidance)
}

// DrugNames lists every accepted name, sorted.
func DrugNames() []string {
	names := make([]string, 0, len(drugIndex))
	for _, d := range Drugs {
		names = append(names, d.Name)
		names = append(names, d.Aliases...)
	}
	sort.Strings(names)
	return names
}
