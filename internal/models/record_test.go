// ABOUTME: Tests for Record construction and JSON persistence layout.
// ABOUTME: Validates round-trips for every kind and rejection of bad data.
package models

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"
)

func TestNewRecord(t *testing.T) {
	r := NewRecord(KindBMI, NumberValue(22.9), BMIDetail{HeightCm: 175, WeightKg: 70, Category: "Normal"})

	if r.ID.String() == "" {
		t.Error("expected UUID to be set")
	}
	if r.ID.Version() != 7 {
		t.Errorf("ID version = %d, want 7", r.ID.Version())
	}
	if r.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
	if r.Timestamp.Location() != time.UTC {
		t.Errorf("Timestamp location = %v, want UTC", r.Timestamp.Location())
	}
	if r.Summary() != "Normal" {
		t.Errorf("Summary() = %q, want Normal", r.Summary())
	}
}

func TestRecordJSONFieldNames(t *testing.T) {
	r := NewRecord(KindBloodPressure, TextValue("125/78"),
		PressureDetail{Systolic: 125, Diastolic: 78, Category: "Elevated"})

	data, err := json.Marshal(r)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}
	for _, key := range []string{"id", "date", "type", "value", "additionalData"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("missing key %q in %s", key, data)
		}
	}
	if raw["type"] != "pressure" {
		t.Errorf("type = %v, want pressure", raw["type"])
	}
	add := raw["additionalData"].(map[string]any)
	if add["result"] != "Elevated" {
		t.Errorf("additionalData.result = %v, want Elevated", add["result"])
	}
}

func TestRecordRoundTrip(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 589793238, time.UTC)
	records := []*Record{
		NewRecord(KindBMI, NumberValue(24.2), BMIDetail{HeightCm: 180, WeightKg: 78.5, Category: "Normal"}),
		NewRecord(KindCalories, NumberValue(1649), CaloriesDetail{Sex: SexMale, AgeYears: 30, WeightKg: 70, HeightCm: 175, Sedentary: 1979, Moderate: 2556, Active: 3133}),
		NewRecord(KindBloodPressure, TextValue("125/121"), PressureDetail{Systolic: 125, Diastolic: 121, Category: "Hypertension Stage 1"}),
		NewRecord(KindBloodSugar, NumberValue(6.1), SugarDetail{Context: Fasting, Category: "Prediabetes"}),
		NewRecord(KindCholesterol, NumberValue(5.5), CholesterolDetail{LDL: 3.0, Narrative: "Borderline-high, LDL Borderline"}),
	}

	for _, r := range records {
		r.WithTimestamp(ts)
		t.Run(string(r.Kind), func(t *testing.T) {
			data, err := json.Marshal(r)
			if err != nil {
				t.Fatalf("marshal: %v", err)
			}
			var got Record
			if err := json.Unmarshal(data, &got); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if got.ID != r.ID {
				t.Errorf("ID = %s, want %s", got.ID, r.ID)
			}
			if !got.Timestamp.Equal(r.Timestamp) {
				t.Errorf("Timestamp = %v, want %v", got.Timestamp, r.Timestamp)
			}
			if got.Kind != r.Kind {
				t.Errorf("Kind = %s, want %s", got.Kind, r.Kind)
			}
			if !got.Value.Equal(r.Value) {
				t.Errorf("Value = %v, want %v", got.Value, r.Value)
			}
			if !reflect.DeepEqual(got.Detail, r.Detail) {
				t.Errorf("Detail = %#v, want %#v", got.Detail, r.Detail)
			}
		})
	}
}

func TestRecordUnmarshalRejects(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		errSubstr string
	}{
		{
			name:      "unknown kind",
			input:     `{"id":"0190a000-0000-7000-8000-000000000000","date":"2025-01-01T00:00:00Z","type":"weight","value":80}`,
			errSubstr: "unknown metric kind",
		},
		{
			name:      "numeric pressure",
			input:     `{"id":"0190a000-0000-7000-8000-000000000000","date":"2025-01-01T00:00:00Z","type":"pressure","value":120}`,
			errSubstr: "value shape",
		},
		{
			name:      "text bmi",
			input:     `{"id":"0190a000-0000-7000-8000-000000000000","date":"2025-01-01T00:00:00Z","type":"bmi","value":"22"}`,
			errSubstr: "value shape",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var r Record
			err := json.Unmarshal([]byte(tt.input), &r)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.errSubstr) {
				t.Errorf("error %q should contain %q", err.Error(), tt.errSubstr)
			}
		})
	}
}

func TestRecordWithoutDetail(t *testing.T) {
	input := `{"id":"0190a000-0000-7000-8000-000000000000","date":"2025-01-01T00:00:00Z","type":"sugar","value":5.1}`
	var r Record
	if err := json.Unmarshal([]byte(input), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if r.Detail != nil {
		t.Errorf("Detail = %#v, want nil", r.Detail)
	}
	if r.Summary() != "" {
		t.Errorf("Summary() = %q, want empty", r.Summary())
	}
}
