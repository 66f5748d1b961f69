// ABOUTME: Record model: one immutable, timestamped calculator result.
// ABOUTME: Persisted as {id, date, type, value, additionalData}.
package models

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Outcome is what a successful calculation hands to the history log.
type Outcome interface {
	Kind() MetricKind
	Primary() Value
	Detail() Detail
}

// Record is a single persisted computation. Records are never edited
// after creation.
type Record struct {
	ID        uuid.UUID
	Timestamp time.Time
	Kind      MetricKind
	Value     Value
	Detail    Detail
}

// NewRecord creates a Record with a time-ordered UUID and the current
// UTC time.
func NewRecord(kind MetricKind, value Value, detail Detail) *Record {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return &Record{
		ID:        id,
		Timestamp: time.Now().UTC(),
		Kind:      kind,
		Value:     value,
		Detail:    detail,
	}
}

// RecordFromOutcome creates a Record for a calculator outcome.
func RecordFromOutcome(o Outcome) *Record {
	return NewRecord(o.Kind(), o.Primary(), o.Detail())
}

// WithTimestamp sets a custom creation time, normalized to UTC.
func (r *Record) WithTimestamp(t time.Time) *Record {
	r.Timestamp = t.UTC()
	return r
}

// Summary returns the detail narrative, or "" if there is none.
func (r *Record) Summary() string {
	if r.Detail == nil {
		return ""
	}
	return r.Detail.Summary()
}

type recordJSON struct {
	ID             uuid.UUID       `json:"id"`
	Date           time.Time       `json:"date"`
	Type           MetricKind      `json:"type"`
	Value          Value           `json:"value"`
	AdditionalData json.RawMessage `json:"additionalData,omitempty"`
}

// MarshalJSON writes the persisted field layout.
func (r Record) MarshalJSON() ([]byte, error) {
	out := recordJSON{
		ID:    r.ID,
		Date:  r.Timestamp,
		Type:  r.Kind,
		Value: r.Value,
	}
	if r.Detail != nil {
		raw, err := json.Marshal(r.Detail)
		if err != nil {
			return nil, fmt.Errorf("marshal detail: %w", err)
		}
		out.AdditionalData = raw
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the persisted field layout, rejecting unknown
// kinds and values whose shape does not match the kind.
func (r *Record) UnmarshalJSON(data []byte) error {
	var in recordJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if !IsValidMetricKind(string(in.Type)) {
		return fmt.Errorf("unknown metric kind: %q", in.Type)
	}
	if in.Value.IsText() != in.Type.TextValued() {
		return fmt.Errorf("value shape does not match kind %s", in.Type)
	}
	detail, err := decodeDetail(in.Type, in.AdditionalData)
	if err != nil {
		return err
	}
	*r = Record{
		ID:        in.ID,
		Timestamp: in.Date.UTC(),
		Kind:      in.Type,
		Value:     in.Value,
		Detail:    detail,
	}
	return nil
}
