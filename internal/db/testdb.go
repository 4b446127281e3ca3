package db

import (
	"testing"

	"github.com/jmoiron/sqlx"
)

// NewTestDB creates a fresh in-memory SQLite database with all migrations
// applied. The pool is capped at one connection so every query sees the
// same in-memory database.
func NewTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}
	database.SetMaxOpenConns(1)

	err = RunMigrations(database.DB, "sqlite")
	if err != nil {
		database.Close()
		t.Fatalf("migrating test database: %v", err)
	}

	t.Cleanup(func() { database.Close() })

	return database
}
