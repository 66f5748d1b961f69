// ABOUTME: Tests for copying the history log between backends.
// ABOUTME: Covers empty sources, corrupt sources, and occupied destinations.
package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestMigrateHistory(t *testing.T) {
	src := seedHistory(t)
	srcKV := src.kv
	dst := setupTestBadger(t)

	summary, err := MigrateHistory(srcKV, dst)
	if err != nil {
		t.Fatalf("MigrateHistory failed: %v", err)
	}
	if summary.Records != 3 {
		t.Errorf("Records = %d, want 3", summary.Records)
	}

	migrated := OpenHistory(dst)
	if migrated.Len() != 3 {
		t.Fatalf("destination Len = %d, want 3", migrated.Len())
	}
	if migrated.All()[0].ID != src.All()[0].ID {
		t.Error("migration should preserve order")
	}
}

func TestMigrateHistoryEmptySource(t *testing.T) {
	summary, err := MigrateHistory(setupTestDB(t), setupTestBadger(t))
	if err != nil {
		t.Fatalf("MigrateHistory failed: %v", err)
	}
	if summary.Records != 0 {
		t.Errorf("Records = %d, want 0", summary.Records)
	}
}

func TestMigrateHistoryCorruptSource(t *testing.T) {
	src := setupTestDB(t)
	if err := src.Set(HistoryKey, []byte("{oops")); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if _, err := MigrateHistory(src, setupTestBadger(t)); err == nil {
		t.Error("Expected error for corrupt source")
	}
}

func TestMigrateHistoryOccupiedDestination(t *testing.T) {
	src := seedHistory(t)
	dst := OpenHistory(setupTestBadger(t))
	if err := dst.Append(bmiRecord(30, time.Now())); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	if _, err := MigrateHistory(src.kv, dst.kv); err == nil {
		t.Fatal("Expected error for non-empty destination")
	}

	// A cleared destination accepts the migration.
	if err := dst.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}
	if _, err := MigrateHistory(src.kv, dst.kv); err != nil {
		t.Fatalf("MigrateHistory into cleared destination failed: %v", err)
	}
}

func TestIsDirNonEmpty(t *testing.T) {
	dir := t.TempDir()

	got, err := IsDirNonEmpty(filepath.Join(dir, "missing"))
	if err != nil || got {
		t.Errorf("missing dir: got %v, %v", got, err)
	}

	got, err = IsDirNonEmpty(dir)
	if err != nil || got {
		t.Errorf("empty dir: got %v, %v", got, err)
	}

	if err := os.WriteFile(filepath.Join(dir, "f"), []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}
	got, err = IsDirNonEmpty(dir)
	if err != nil || !got {
		t.Errorf("non-empty dir: got %v, %v", got, err)
	}
}
