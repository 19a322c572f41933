package db

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenCreatesParentDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "inventory.sqlite3")

	database, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer database.Close()

	if err := EnsureSchema(database); err != nil {
		t.Fatalf("EnsureSchema: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected database file to exist: %v", err)
	}
}

func TestEnsureSchemaIdempotent(t *testing.T) {
	database := NewTestDB(t)

	// Already applied once by NewTestDB; applying again must not fail.
	if err := EnsureSchema(database); err != nil {
		t.Fatalf("second EnsureSchema: %v", err)
	}

	var count int
	err := database.QueryRow(
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table'
		 AND name IN ('rooms', 'categories', 'items', 'sessions')`,
	).Scan(&count)
	if err != nil {
		t.Fatalf("counting tables: %v", err)
	}
	if count != 4 {
		t.Errorf("expected 4 tables, got %d", count)
	}
}
