package sqlite_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/ahautala/repapp/internal/sqlite"
	"github.com/ahautala/repapp/internal/testhelpers"
)

func TestNewDatabase(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))

	db, err := sqlite.NewDatabase(ctx, ":memory:", logger)
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("close database: %v", err)
		}
	})

	// Writes through the read-write pool must be visible to the read-only pool.
	if _, err = db.ReadWrite.ExecContext(ctx,
		"INSERT INTO workout_sessions (id, date, workout_type) VALUES (?, ?, ?)",
		"workout_1", time.Now(), "push"); err != nil {
		t.Fatalf("insert workout session: %v", err)
	}

	var workoutType string
	if err = db.ReadOnly.QueryRowContext(ctx,
		"SELECT workout_type FROM workout_sessions WHERE id = ?", "workout_1").Scan(&workoutType); err != nil {
		t.Fatalf("read workout session: %v", err)
	}
	if workoutType != "push" {
		t.Errorf("workout_type = %q, want %q", workoutType, "push")
	}

	if _, err = db.ReadOnly.ExecContext(ctx, "DELETE FROM workout_sessions"); err == nil {
		t.Error("expected write on read-only pool to fail")
	}
}

func TestSchemaIsIdempotent(t *testing.T) {
	t.Parallel()
	ctx := t.Context()
	logger := testhelpers.NewLogger(testhelpers.NewWriter(t))
	url := filepath.Join(t.TempDir(), "repapp.sqlite3")

	db, err := sqlite.NewDatabase(ctx, url, logger)
	if err != nil {
		t.Fatalf("NewDatabase: %v", err)
	}
	if err = db.Close(); err != nil {
		t.Fatalf("close database: %v", err)
	}

	// Reopening an existing database must not fail on the schema definition.
	db, err = sqlite.NewDatabase(ctx, url, logger)
	if err != nil {
		t.Fatalf("NewDatabase on existing file: %v", err)
	}
	if err = db.Close(); err != nil {
		t.Fatalf("close database: %v", err)
	}
}
