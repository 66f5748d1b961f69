// ABOUTME: History migration between storage backends.
// ABOUTME: Copies the serialized log from one KV to another after validating it.

package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/harperreed/medcalc/internal/models"
)

// MigrateSummary holds counts of migrated entities.
type MigrateSummary struct {
	Records int
}

// MigrateHistory copies the history log from src to dst. The source must
// parse; the destination must not already hold a non-empty log.
func MigrateHistory(src, dst KV) (*MigrateSummary, error) {
	data, err := src.Get(HistoryKey)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return &MigrateSummary{}, nil
		}
		return nil, fmt.Errorf("read source history: %w", err)
	}

	var records []models.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse source history: %w", err)
	}

	existing, err := dst.Get(HistoryKey)
	switch {
	case err == nil:
		var dstRecords []models.Record
		if json.Unmarshal(existing, &dstRecords) == nil && len(dstRecords) > 0 {
			return nil, fmt.Errorf("destination already holds %d records", len(dstRecords))
		}
	case !errors.Is(err, ErrNotFound):
		return nil, fmt.Errorf("read destination history: %w", err)
	}

	if err := dst.Set(HistoryKey, data); err != nil {
		return nil, fmt.Errorf("write destination history: %w", err)
	}
	return &MigrateSummary{Records: len(records)}, nil
}

// IsDirNonEmpty checks whether a directory exists and contains any files or subdirectories.
// Returns false if the directory does not exist or is empty.
func IsDirNonEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("read directory %q: %w", path, err)
	}
	return len(entries) > 0, nil
}
