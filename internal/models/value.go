// ABOUTME: Value holds a record's headline result as a number or as text.
// ABOUTME: Marshals to a bare JSON number or string and coerces leniently.
package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Value is the primary result of a computation. Blood pressure stores
// "sys/dia" text, every other kind a number.
type Value struct {
	num    float64
	text   string
	isText bool
}

// NumberValue wraps a numeric result.
func NumberValue(v float64) Value {
	return Value{num: v}
}

// TextValue wraps a textual result.
func TextValue(s string) Value {
	return Value{text: s, isText: true}
}

// IsText reports whether the value was stored as text.
func (v Value) IsText() bool {
	return v.isText
}

// Text returns the textual form of the value.
func (v Value) Text() string {
	return v.String()
}

// Float coerces the value to a number. Text is parsed leniently by its
// leading numeric prefix; anything unparseable becomes 0.
func (v Value) Float() float64 {
	if !v.isText {
		return v.num
	}
	f, ok := ParseLeadingFloat(v.text)
	if !ok {
		return 0
	}
	return f
}

// String renders numbers in their shortest exact form ("22.5", "120").
func (v Value) String() string {
	if v.isText {
		return v.text
	}
	return FormatNumber(v.num)
}

// Equal reports whether two values have the same shape and content.
func (v Value) Equal(o Value) bool {
	if v.isText != o.isText {
		return false
	}
	if v.isText {
		return v.text == o.text
	}
	return v.num == o.num
}

// MarshalJSON writes a bare number or string.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.isText {
		return json.Marshal(v.text)
	}
	if math.IsNaN(v.num) || math.IsInf(v.num, 0) {
		return nil, fmt.Errorf("marshal value: non-finite number")
	}
	return json.Marshal(v.num)
}

// UnmarshalJSON accepts a JSON number or string.
func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("unmarshal value: %w", err)
		}
		*v = TextValue(s)
		return nil
	}
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("unmarshal value: %w", err)
	}
	*v = NumberValue(f)
	return nil
}

// FormatNumber formats a float without trailing zeros.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

var leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseLeadingFloat parses the longest numeric prefix of s after leading
// whitespace, so "120/80" yields 120 and "5.6 mmol" yields 5.6.
func ParseLeadingFloat(s string) (float64, bool) {
	s = strings.TrimLeft(s, " \t\r\n")
	m := leadingFloat.FindString(s)
	if m == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		// exponent overflow and similar
		return 0, false
	}
	return f, true
}
