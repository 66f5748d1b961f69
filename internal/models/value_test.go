// ABOUTME: Tests for number-or-text Value and lenient numeric parsing.
// ABOUTME: Covers JSON shape, coercion, and formatting.
package models

import (
	"encoding/json"
	"testing"
)

func TestParseLeadingFloat(t *testing.T) {
	tests := []struct {
		input  string
		want   float64
		wantOK bool
	}{
		{"120/80", 120, true},
		{"22.5", 22.5, true},
		{"  5.6 mmol", 5.6, true},
		{".5", 0.5, true},
		{"-3", -3, true},
		{"1e2x", 100, true},
		{"1e", 1, true},
		{"7.", 7, true},
		{"abc", 0, false},
		{"", 0, false},
		{"/80", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseLeadingFloat(tt.input)
			if ok != tt.wantOK {
				t.Fatalf("ParseLeadingFloat(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseLeadingFloat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestValueFloat(t *testing.T) {
	tests := []struct {
		name string
		v    Value
		want float64
	}{
		{"number", NumberValue(24.1), 24.1},
		{"pressure text", TextValue("135/85"), 135},
		{"decimal pressure", TextValue("120.5/80"), 120.5},
		{"garbage text", TextValue("n/a"), 0},
		{"empty text", TextValue(""), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.v.Float(); got != tt.want {
				t.Errorf("Float() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestValueJSONShape(t *testing.T) {
	data, err := json.Marshal(NumberValue(22.5))
	if err != nil {
		t.Fatalf("marshal number: %v", err)
	}
	if string(data) != "22.5" {
		t.Errorf("number JSON = %s, want 22.5", data)
	}

	data, err = json.Marshal(TextValue("120/80"))
	if err != nil {
		t.Fatalf("marshal text: %v", err)
	}
	if string(data) != `"120/80"` {
		t.Errorf("text JSON = %s, want \"120/80\"", data)
	}

	var v Value
	if err := json.Unmarshal([]byte(`"140/90"`), &v); err != nil {
		t.Fatalf("unmarshal text: %v", err)
	}
	if !v.IsText() || v.Text() != "140/90" {
		t.Errorf("unmarshalled %#v, want text 140/90", v)
	}

	if err := json.Unmarshal([]byte(`true`), &v); err == nil {
		t.Error("expected error unmarshalling bool")
	}
}

func TestValueString(t *testing.T) {
	if got := NumberValue(1650).String(); got != "1650" {
		t.Errorf("String() = %q, want 1650", got)
	}
	if got := NumberValue(23.4).String(); got != "23.4" {
		t.Errorf("String() = %q, want 23.4", got)
	}
}

func TestValueEqual(t *testing.T) {
	if !NumberValue(5).Equal(NumberValue(5)) {
		t.Error("equal numbers should be Equal")
	}
	if NumberValue(120).Equal(TextValue("120")) {
		t.Error("number and text should not be Equal")
	}
}
