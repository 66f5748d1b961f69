// ABOUTME: History is the capacity-bounded, newest-first computation log.
// ABOUTME: Every mutation is written back to the KV backend before it is visible.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/harperreed/medcalc/internal/models"
)

const (
	// Capacity is the maximum number of records kept.
	Capacity = 100

	// HistoryKey is the KV key holding the serialized log.
	HistoryKey = "healthHistory"
)

// History is an append-only log of computation records, newest first.
// Appending beyond capacity evicts the oldest records. The mutex makes
// load, append and clear a single critical section each, so the MCP
// server can share one History across requests.
type History struct {
	mu       sync.Mutex
	kv       KV
	key      string
	capacity int
	records  []models.Record
	logger   *log.Logger
}

// Option configures a History.
type Option func(*History)

// WithLogger sets the logger used for recovery and eviction messages.
func WithLogger(l *log.Logger) Option {
	return func(h *History) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithCapacity overrides the record limit.
func WithCapacity(n int) Option {
	return func(h *History) {
		if n > 0 {
			h.capacity = n
		}
	}
}

// NewHistory creates an empty History over kv. Call Load to read the
// persisted log.
func NewHistory(kv KV, opts ...Option) *History {
	h := &History{
		kv:       kv,
		key:      HistoryKey,
		capacity: Capacity,
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// OpenHistory creates a History over kv and loads it.
func OpenHistory(kv KV, opts ...Option) *History {
	h := NewHistory(kv, opts...)
	h.Load()
	return h
}

// Load replaces the in-memory log with the persisted one. A missing key,
// an unreadable backend, or unparseable data all yield an empty log.
func (h *History) Load() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.records = nil

	data, err := h.kv.Get(h.key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			h.logger.Warn("history unreadable, starting empty", "key", h.key, "err", err)
		}
		return
	}

	var records []models.Record
	if err := json.Unmarshal(data, &records); err != nil {
		h.logger.Warn("history corrupt, starting empty", "key", h.key, "bytes", len(data), "err", err)
		return
	}

	if len(records) > h.capacity {
		h.logger.Debug("history over capacity, trimming", "count", len(records), "capacity", h.capacity)
		records = records[:h.capacity]
	}
	h.records = records
}

// Append inserts r as the newest record, evicts the oldest records past
// capacity, and persists. On a write error the log is unchanged.
func (h *History) Append(r *models.Record) error {
	if r == nil {
		return fmt.Errorf("append record: nil record")
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	next := make([]models.Record, 0, min(len(h.records)+1, h.capacity))
	next = append(next, *r)
	for _, rec := range h.records {
		if len(next) == h.capacity {
			break
		}
		next = append(next, rec)
	}

	if err := h.persist(next); err != nil {
		return fmt.Errorf("append record: %w", err)
	}
	if evicted := len(h.records) + 1 - len(next); evicted > 0 {
		h.logger.Debug("evicted oldest records", "count", evicted)
	}
	h.records = next
	return nil
}

// Save records a calculator outcome. It is the onSave collaborator of
// the calculators.
func (h *History) Save(o models.Outcome) (*models.Record, error) {
	r := models.RecordFromOutcome(o)
	if err := h.Append(r); err != nil {
		return nil, err
	}
	return r, nil
}

// Clear empties the log and persists the empty state.
func (h *History) Clear() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.persist([]models.Record{}); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	h.records = nil
	return nil
}

// All returns a copy of the log, newest first.
func (h *History) All() []models.Record {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]models.Record, len(h.records))
	copy(out, h.records)
	return out
}

// Len returns the number of records held.
func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.records)
}

// Capacity returns the record limit.
func (h *History) Capacity() int {
	return h.capacity
}

// persist writes records under the history key. Caller holds mu.
func (h *History) persist(records []models.Record) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("marshal history: %w", err)
	}
	if err := h.kv.Set(h.key, data); err != nil {
		return err
	}
	h.logger.Debug("history persisted", "records", len(records), "bytes", len(data))
	return nil
}
