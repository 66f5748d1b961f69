// ABOUTME: Export and import functionality for the history log.
// ABOUTME: Supports JSON, YAML, and Markdown export formats.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/medcalc/internal/models"
	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for the history log.
type ExportData struct {
	Version    string          `json:"version"`
	ExportedAt time.Time       `json:"exported_at"`
	Tool       string          `json:"tool"`
	Records    []models.Record `json:"records"`
}

// GetAllData retrieves all records for export, newest first.
func (h *History) GetAllData() *ExportData {
	return &ExportData{
		Version:    "1.0",
		ExportedAt: time.Now().UTC(),
		Tool:       "medcalc",
		Records:    h.All(),
	}
}

// ExportJSON exports all records as JSON.
func (h *History) ExportJSON() ([]byte, error) {
	return json.MarshalIndent(h.GetAllData(), "", "  ")
}

type yamlRecord struct {
	ID     string `yaml:"id"`
	Date   string `yaml:"date"`
	Value  string `yaml:"value"`
	Unit   string `yaml:"unit,omitempty"`
	Result string `yaml:"result,omitempty"`
}

// ExportYAML exports records grouped by kind as YAML.
func (h *History) ExportYAML() ([]byte, error) {
	data := h.GetAllData()

	yamlData := struct {
		Version    string                  `yaml:"version"`
		ExportedAt string                  `yaml:"exported_at"`
		Tool       string                  `yaml:"tool"`
		Records    map[string][]yamlRecord `yaml:"records"`
	}{
		Version:    data.Version,
		ExportedAt: data.ExportedAt.Format(time.RFC3339),
		Tool:       data.Tool,
		Records:    make(map[string][]yamlRecord),
	}

	for _, r := range data.Records {
		k := string(r.Kind)
		yamlData.Records[k] = append(yamlData.Records[k], yamlRecord{
			ID:     r.ID.String()[:8],
			Date:   r.Timestamp.Format(time.RFC3339),
			Value:  r.Value.String(),
			Unit:   r.Kind.Unit(),
			Result: r.Summary(),
		})
	}

	return yaml.Marshal(yamlData)
}

// ExportMarkdown exports records as one Markdown table per kind, in the
// fixed kind order. kind and since are optional filters.
func (h *History) ExportMarkdown(kind *models.MetricKind, since *time.Time) string {
	grouped := make(map[models.MetricKind][]models.Record)
	for _, r := range h.All() {
		if kind != nil && r.Kind != *kind {
			continue
		}
		if since != nil && r.Timestamp.Before(*since) {
			continue
		}
		grouped[r.Kind] = append(grouped[r.Kind], r)
	}

	var sb strings.Builder
	now := time.Now()

	sb.WriteString(fmt.Sprintf("# Health Calculations - %s\n\n", now.Format("2006-01-02")))
	sb.WriteString(fmt.Sprintf("Generated: %s\n\n", now.Format(time.RFC3339)))

	for _, k := range models.AllMetricKinds {
		records := grouped[k]
		if len(records) == 0 {
			continue
		}
		sb.WriteString(fmt.Sprintf("## %s\n\n", k.Label()))
		sb.WriteString("| Date | Value | Result |\n")
		sb.WriteString("|------|-------|--------|\n")
		for _, r := range records {
			value := r.Value.String()
			if unit := k.Unit(); unit != "" {
				value += " " + unit
			}
			sb.WriteString(fmt.Sprintf("| %s | %s | %s |\n",
				r.Timestamp.Local().Format("2006-01-02 15:04"), value, r.Summary()))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// ImportJSON appends records from a JSON export, oldest first, skipping
// IDs already present. The whole import is persisted in one write.
// It returns the number of records added.
func (h *History) ImportJSON(data []byte) (int, error) {
	var exportData ExportData
	if err := json.Unmarshal(data, &exportData); err != nil {
		return 0, fmt.Errorf("unmarshal JSON: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	seen := make(map[string]bool, len(h.records))
	for _, r := range h.records {
		seen[r.ID.String()] = true
	}

	// Export order is newest first; walk backwards so the newest import
	// ends up on top.
	var added []models.Record
	for i := len(exportData.Records) - 1; i >= 0; i-- {
		r := exportData.Records[i]
		if seen[r.ID.String()] {
			continue
		}
		seen[r.ID.String()] = true
		added = append([]models.Record{r}, added...)
	}
	if len(added) == 0 {
		return 0, nil
	}

	next := append(added, h.records...)
	if len(next) > h.capacity {
		next = next[:h.capacity]
	}
	if err := h.persist(next); err != nil {
		return 0, fmt.Errorf("import records: %w", err)
	}
	h.records = next
	return len(added), nil
}
