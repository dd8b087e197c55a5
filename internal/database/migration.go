package database

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/sirupsen/logrus"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationFS embed.FS

// Direction selects which way migrations run
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// MigrationInfo contains the schema version of a database
type MigrationInfo struct {
	Version uint
	Dirty   bool
	Applied bool
}

// MigrationManager applies the embedded schema migrations.
// The request handlers never use it; it serves cmd/migrate and tests.
type MigrationManager struct {
	databaseURL string
	target      Target
	logger      *logrus.Logger
}

// NewMigrationManager creates a migration manager for a DATABASE_URL
func NewMigrationManager(databaseURL string, logger *logrus.Logger) (*MigrationManager, error) {
	if logger == nil {
		logger = logrus.New()
	}

	target, err := ParseURL(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database url: %w", err)
	}
	if target.Dialect.IsSQLite() && target.Path == ":memory:" {
		return nil, fmt.Errorf("cannot migrate an in-memory database from a separate connection")
	}

	return &MigrationManager{
		databaseURL: strings.TrimSpace(databaseURL),
		target:      target,
		logger:      logger,
	}, nil
}

// MigrationURL converts a DATABASE_URL into the URL understood by the migrate drivers
func MigrationURL(databaseURL string) (string, error) {
	databaseURL = strings.TrimSpace(databaseURL)
	target, err := ParseURL(databaseURL)
	if err != nil {
		return "", err
	}

	if target.Dialect.IsSQLite() {
		return "sqlite3://" + target.DSN, nil
	}

	rest := strings.TrimPrefix(strings.TrimPrefix(databaseURL, "postgresql://"), "postgres://")
	return "pgx5://" + rest, nil
}

// Migrate runs all migrations in the given direction
func (m *MigrationManager) Migrate(direction Direction) error {
	m.logger.WithFields(logrus.Fields{
		"direction": direction,
		"dialect":   m.target.Dialect.Name(),
	}).Info("Starting database migrations...")

	mg, err := m.initMigrate()
	if err != nil {
		return fmt.Errorf("failed to initialize migrate: %w", err)
	}
	defer mg.Close()

	switch direction {
	case Up:
		err = mg.Up()
	case Down:
		err = mg.Down()
	default:
		return fmt.Errorf("unknown migration direction %q", direction)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations %s: %w", direction, err)
	}

	version, _, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to get migration version: %w", err)
	}

	m.logger.WithField("version", version).Info("Migrations completed successfully")
	return nil
}

// Steps applies n migrations, rolling back when n is negative
func (m *MigrationManager) Steps(n int) error {
	mg, err := m.initMigrate()
	if err != nil {
		return fmt.Errorf("failed to initialize migrate: %w", err)
	}
	defer mg.Close()

	if err := mg.Steps(n); err != nil {
		return fmt.Errorf("failed to apply %d migration steps: %w", n, err)
	}
	return nil
}

// Status returns the current migration status
func (m *MigrationManager) Status() (*MigrationInfo, error) {
	mg, err := m.initMigrate()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize migrate: %w", err)
	}
	defer mg.Close()

	version, dirty, err := mg.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return &MigrationInfo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get migration version: %w", err)
	}

	return &MigrationInfo{Version: version, Dirty: dirty, Applied: true}, nil
}

// initMigrate builds a migrate instance over the embedded source for the URL's dialect.
// migrate opens its own connection so closing it never touches the request pool.
func (m *MigrationManager) initMigrate() (*migrate.Migrate, error) {
	sub, err := fs.Sub(migrationFS, "migrations/"+m.target.Dialect.Name())
	if err != nil {
		return nil, fmt.Errorf("failed to locate embedded migrations: %w", err)
	}

	source, err := iofs.New(sub, ".")
	if err != nil {
		return nil, fmt.Errorf("failed to open migration source: %w", err)
	}

	dbURL, err := MigrationURL(m.databaseURL)
	if err != nil {
		return nil, err
	}

	mg, err := migrate.NewWithSourceInstance("iofs", source, dbURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create migrate instance: %w", err)
	}

	return mg, nil
}
