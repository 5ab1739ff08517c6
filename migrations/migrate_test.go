// SPDX-License-Identifier: Apache-2.0

package migrations

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func TestMigrate_CreatesSchema(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer db.Close()

	if err = Migrate(db); err != nil {
		t.Fatalf("Migrate error: %v", err)
	}

	// The audit table must exist and be queryable after migration.
	var count int
	if err = db.QueryRow("SELECT COUNT(*) FROM audit_events").Scan(&count); err != nil {
		t.Fatalf("audit_events table missing after migration: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected empty audit_events, got %d rows", count)
	}
}

func TestMigrate_Idempotent(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	defer db.Close()

	if err = Migrate(db); err != nil {
		t.Fatalf("first Migrate error: %v", err)
	}
	if err = Migrate(db); err != nil {
		t.Fatalf("second Migrate error: %v", err)
	}
}
