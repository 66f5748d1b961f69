// ABOUTME: Lipid-panel classification with optional LDL and HDL clauses.
// ABOUTME: Clauses are joined into one narrative with ", ".
package engine

import (
	"strings"

	"github.com/harperreed/medcalc/internal/models"
)

// NarrativeSeparator joins the total, LDL and HDL clauses.
const NarrativeSeparator = ", "

// CholesterolInput is a lipid panel in mmol/L. LDL and HDL are optional;
// zero or negative means not measured.
type CholesterolInput struct {
	TotalMmolL float64
	LDLMmolL   float64
	HDLMmolL   float64
}

// CholesterolResult holds each clause and the combined narrative.
type CholesterolResult struct {
	Input     CholesterolInput
	Total     string
	LDL       string
	HDL       string
	Narrative string
}

// Cholesterol classifies a panel. It returns false unless total is
// strictly positive.
func Cholesterol(in CholesterolInput) (CholesterolResult, bool) {
	if !positive(in.TotalMmolL) {
		return CholesterolResult{}, false
	}

	res := CholesterolResult{Input: in}
	switch {
	case in.TotalMmolL < 5.2:
		res.Total = "Optimal"
	case in.TotalMmolL < 6.2:
		res.Total = "Borderline-high"
	default:
		res.Total = "High"
	}
	clauses := []string{res.Total}

	if positive(in.LDLMmolL) {
		switch {
		case in.LDLMmolL < 2.6:
			res.LDL = "LDL Normal"
		case in.LDLMmolL < 3.4:
			res.LDL = "LDL Borderline"
		default:
			res.LDL = "LDL High"
		}
		clauses = append(clauses, res.LDL)
	}

	if positive(in.HDLMmolL) {
		switch {
		case in.HDLMmolL >= 1.6:
			res.HDL = "HDL Excellent"
		case in.HDLMmolL >= 1.0:
			res.HDL = "HDL Normal"
		default:
			res.HDL = "HDL Low"
		}
		clauses = append(clauses, res.HDL)
	}

	res.Narrative = strings.Join(clauses, NarrativeSeparator)
	return res, true
}

func (r CholesterolResult) Kind() models.MetricKind { return models.KindCholesterol }
func (r CholesterolResult) Primary() models.Value   { return models.NumberValue(r.Input.TotalMmolL) }

func (r CholesterolResult) Detail() models.Detail {
	d := models.CholesterolDetail{Narrative: r.Narrative}
	if r.LDL != "" {
		d.LDL = r.Input.LDLMmolL
	}
	if r.HDL != "" {
		d.HDL = r.Input.HDLMmolL
	}
	return d
}
