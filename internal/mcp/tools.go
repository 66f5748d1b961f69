// ABOUTME: MCP tool implementations for the medcalc calculators.
// ABOUTME: Calculators save to history; history and series tools read it back.
package mcp

import (
	"context"
	"fmt"

	"github.com/harperreed/medcalc/internal/engine"
	"github.com/harperreed/medcalc/internal/models"
	"github.com/harperreed/medcalc/internal/series"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// calculate_bmi
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "calculate_bmi",
		Description: "Compute body-mass index from height and weight and save it to history",
	}, s.handleBMI)

	// calculate_calories
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "calculate_calories",
		Description: "Compute basal metabolic rate (Mifflin-St Jeor) and daily calorie needs and save them to history",
	}, s.handleCalories)

	// classify_pressure
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "classify_pressure",
		Description: "Classify a blood-pressure reading and save it to history",
	}, s.handlePressure)

	// classify_sugar
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "classify_sugar",
		Description: "Classify a blood-glucose reading (mmol/L) and save it to history",
	}, s.handleSugar)

	// classify_cholesterol
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "classify_cholesterol",
		Description: "Classify a lipid panel (mmol/L) and save it to history",
	}, s.handleCholesterol)

	// calculate_dosage
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "calculate_dosage",
		Description: "Look up a pediatric single dose by body weight (not saved to history)",
	}, s.handleDosage)

	// list_history
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_history",
		Description: "List saved calculations, newest first, optionally filtered by kind",
	}, s.handleListHistory)

	// clear_history
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "clear_history",
		Description: "Delete every saved calculation",
	}, s.handleClearHistory)

	// get_series
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_series",
		Description: "Get the recent chart series of one kind, oldest first",
	}, s.handleGetSeries)
}

// Tool input/output types

type bmiInput struct {
	HeightCm float64 `json:"height_cm" jsonschema:"Height in centimeters"`
	WeightKg float64 `json:"weight_kg" jsonschema:"Weight in kilograms"`
}

type caloriesInput struct {
	WeightKg float64 `json:"weight_kg" jsonschema:"Weight in kilograms"`
	HeightCm float64 `json:"height_cm" jsonschema:"Height in centimeters"`
	Age      float64 `json:"age" jsonschema:"Age in years"`
	Sex      string  `json:"sex,omitempty" jsonschema:"male or female, defaults to male"`
}

type pressureInput struct {
	Systolic  float64 `json:"systolic" jsonschema:"Systolic pressure in mmHg"`
	Diastolic float64 `json:"diastolic" jsonschema:"Diastolic pressure in mmHg"`
}

type sugarInput struct {
	Glucose float64 `json:"glucose" jsonschema:"Blood glucose in mmol/L"`
	Context string  `json:"context,omitempty" jsonschema:"fasting or post_meal, defaults to fasting"`
}

type cholesterolInput struct {
	Total float64 `json:"total" jsonschema:"Total cholesterol in mmol/L"`
	LDL   float64 `json:"ldl,omitempty" jsonschema:"LDL cholesterol in mmol/L"`
	HDL   float64 `json:"hdl,omitempty" jsonschema:"HDL cholesterol in mmol/L"`
}

type calcOutput struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Value   string `json:"value"`
	Unit    string `json:"unit,omitempty"`
	Result  string `json:"result"`
	Message string `json:"message"`
}

type dosageInput struct {
	WeightKg float64 `json:"weight_kg" jsonschema:"Child weight in kilograms"`
	Drug     string  `json:"drug" jsonschema:"Drug name (paracetamol, ibuprofen, amoxicillin or an alias)"`
}

type dosageOutput struct {
	Found    bool   `json:"found"`
	Drug     string `json:"drug"`
	DoseMg   int    `json:"dose_mg,omitempty"`
	Guidance string `json:"guidance,omitempty"`
	Message  string `json:"message"`
}

type listHistoryInput struct {
	Kind  string `json:"kind,omitempty" jsonschema:"Filter by kind (bmi, calories, pressure, sugar, cholesterol)"`
	Limit int    `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type historyEntry struct {
	ID     string `json:"id"`
	Date   string `json:"date"`
	Kind   string `json:"kind"`
	Value  string `json:"value"`
	Unit   string `json:"unit,omitempty"`
	Result string `json:"result,omitempty"`
}

type historyOutput struct {
	Count    int            `json:"count"`
	Capacity int            `json:"capacity"`
	Records  []historyEntry `json:"records"`
	Message  string         `json:"message,omitempty"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type getSeriesInput struct {
	Kind   string `json:"kind" jsonschema:"Kind to chart (bmi, calories, pressure, sugar, cholesterol)"`
	Window int    `json:"window,omitempty" jsonschema:"Number of recent records (default 10)"`
}

type seriesOutput struct {
	Kind      string         `json:"kind"`
	Label     string         `json:"label"`
	Unit      string         `json:"unit,omitempty"`
	Points    []series.Point `json:"points"`
	Sparkline string         `json:"sparkline"`
}

// Tool handlers

func (s *Server) handleBMI(ctx context.Context, req *mcp.CallToolRequest, input bmiInput) (*mcp.CallToolResult, calcOutput, error) {
	return s.run(models.KindBMI, engine.Inputs{
		engine.FieldHeight: models.FormatNumber(input.HeightCm),
		engine.FieldWeight: models.FormatNumber(input.WeightKg),
	})
}

func (s *Server) handleCalories(ctx context.Context, req *mcp.CallToolRequest, input caloriesInput) (*mcp.CallToolResult, calcOutput, error) {
	return s.run(models.KindCalories, engine.Inputs{
		engine.FieldWeight: models.FormatNumber(input.WeightKg),
		engine.FieldHeight: models.FormatNumber(input.HeightCm),
		engine.FieldAge:    models.FormatNumber(input.Age),
		engine.FieldSex:    input.Sex,
	})
}

func (s *Server) handlePressure(ctx context.Context, req *mcp.CallToolRequest, input pressureInput) (*mcp.CallToolResult, calcOutput, error) {
	return s.run(models.KindBloodPressure, engine.Inputs{
		engine.FieldSystolic:  models.FormatNumber(input.Systolic),
		engine.FieldDiastolic: models.FormatNumber(input.Diastolic),
	})
}

func (s *Server) handleSugar(ctx context.Context, req *mcp.CallToolRequest, input sugarInput) (*mcp.CallToolResult, calcOutput, error) {
	return s.run(models.KindBloodSugar, engine.Inputs{
		engine.FieldGlucose: models.FormatNumber(input.Glucose),
		engine.FieldContext: input.Context,
	})
}

func (s *Server) handleCholesterol(ctx context.Context, req *mcp.CallToolRequest, input cholesterolInput) (*mcp.CallToolResult, calcOutput, error) {
	in := engine.Inputs{engine.FieldTotal: models.FormatNumber(input.Total)}
	if input.LDL > 0 {
		in[engine.FieldLDL] = models.FormatNumber(input.LDL)
	}
	if input.HDL > 0 {
		in[engine.FieldHDL] = models.FormatNumber(input.HDL)
	}
	return s.run(models.KindCholesterol, in)
}

// run computes kind, saves the result, and reports the saved record.
func (s *Server) run(kind models.MetricKind, in engine.Inputs) (*mcp.CallToolResult, calcOutput, error) {
	res, ok := engine.Compute(kind, in)
	if !ok {
		return nil, calcOutput{}, fmt.Errorf("invalid input for %s: all values must be positive numbers", kind)
	}
	r, err := s.history.Save(res)
	if err != nil {
		return nil, calcOutput{}, fmt.Errorf("failed to save %s: %w", kind, err)
	}
	s.logger.Debug("saved result", "kind", r.Kind, "id", r.ID)

	out := calcOutput{
		ID:     r.ID.String()[:8],
		Kind:   string(kind),
		Value:  r.Value.String(),
		Unit:   kind.Unit(),
		Result: r.Summary(),
	}
	out.Message = fmt.Sprintf("%s: %s", kind.Label(), withUnit(out.Value, out.Unit))
	if out.Result != "" {
		out.Message += " (" + out.Result + ")"
	}
	return nil, out, nil
}

func (s *Server) handleDosage(ctx context.Context, req *mcp.CallToolRequest, input dosageInput) (*mcp.CallToolResult, dosageOutput, error) {
	res, ok := engine.Dosage(engine.DosageInput{WeightKg: input.WeightKg, Drug: input.Drug})
	if !ok {
		return nil, dosageOutput{}, fmt.Errorf("invalid input: weight must be positive and drug must be given")
	}
	return nil, dosageOutput{
		Found:    res.Found,
		Drug:     res.Drug,
		DoseMg:   res.DoseMg,
		Guidance: res.Guidance,
		Message:  res.String(),
	}, nil
}

func (s *Server) handleListHistory(ctx context.Context, req *mcp.CallToolRequest, input listHistoryInput) (*mcp.CallToolResult, historyOutput, error) {
	if input.Kind != "" && !models.IsValidMetricKind(input.Kind) {
		return nil, historyOutput{}, fmt.Errorf("unknown kind: %s", input.Kind)
	}
	if input.Limit <= 0 {
		input.Limit = 20
	}

	out := historyOutput{Capacity: s.history.Capacity(), Records: []historyEntry{}}
	for _, r := range s.history.All() {
		if input.Kind != "" && string(r.Kind) != input.Kind {
			continue
		}
		out.Records = append(out.Records, toEntry(r))
		if len(out.Records) == input.Limit {
			break
		}
	}
	out.Count = len(out.Records)
	if out.Count == 0 {
		out.Message = "No calculations found."
	}
	return nil, out, nil
}

func (s *Server) handleClearHistory(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, simpleOutput, error) {
	n := s.history.Len()
	if err := s.history.Clear(); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to clear history: %w", err)
	}
	s.logger.Info("history cleared", "records", n)
	return nil, simpleOutput{Message: fmt.Sprintf("Cleared %d calculations", n)}, nil
}

func (s *Server) handleGetSeries(ctx context.Context, req *mcp.CallToolRequest, input getSeriesInput) (*mcp.CallToolResult, seriesOutput, error) {
	if !models.IsValidMetricKind(input.Kind) {
		return nil, seriesOutput{}, fmt.Errorf("unknown kind: %s", input.Kind)
	}
	if input.Window <= 0 {
		input.Window = s.window
	}

	kind := models.MetricKind(input.Kind)
	points := s.extractor.Series(kind, input.Window)
	return nil, seriesOutput{
		Kind:      input.Kind,
		Label:     kind.Label(),
		Unit:      kind.Unit(),
		Points:    points,
		Sparkline: series.Sparkline(points),
	}, nil
}

func toEntry(r models.Record) historyEntry {
	return historyEntry{
		ID:     r.ID.String()[:8],
		Date:   r.Timestamp.Format("2006-01-02 15:04"),
		Kind:   string(r.Kind),
		Value:  r.Value.String(),
		Unit:   r.Kind.Unit(),
		Result: r.Summary(),
	}
}

func withUnit(value, unit string) string {
	if unit == "" {
		return value
	}
	return value + " " + unit
}
