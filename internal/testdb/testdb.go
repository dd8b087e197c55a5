// Package testdb provides a shared test database helper for realistic
// testing against a temporary SQLite database file.
package testdb

import (
	"context"
	"path/filepath"
	"testing"

	"db-console-api/internal/database"

	"github.com/sirupsen/logrus"
)

// Logger returns a logger quiet enough for tests
func Logger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(logrus.WarnLevel)
	return logger
}

// URL returns a DATABASE_URL for a fresh SQLite file in the test's temp dir
func URL(t *testing.T) string {
	t.Helper()
	return "sqlite://" + filepath.Join(t.TempDir(), "console.db")
}

// New creates a SQLite database with all migrations applied.
// The database is automatically closed when the test finishes.
func New(t *testing.T) *database.DB {
	t.Helper()
	return NewAt(t, URL(t))
}

// NewAt migrates the database at url and opens a pool on it
func NewAt(t *testing.T, url string) *database.DB {
	t.Helper()
	logger := Logger()

	migrations, err := database.NewMigrationManager(url, logger)
	if err != nil {
		t.Fatalf("testdb.New: migration manager: %v", err)
	}
	if err := migrations.Migrate(database.Up); err != nil {
		t.Fatalf("testdb.New: migrate: %v", err)
	}

	db, err := database.Open(context.Background(), url, database.PoolConfig{}, logger)
	if err != nil {
		t.Fatalf("testdb.New: open database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// Session opens a session on db that is closed when the test finishes
func Session(t *testing.T, db *database.DB) *database.Session {
	t.Helper()
	session, err := db.BeginSession(context.Background())
	if err != nil {
		t.Fatalf("testdb.Session: %v", err)
	}
	t.Cleanup(func() { _ = session.Close() })
	return session
}
