package database

import (
	"regexp"
	"strings"
)

// Dialect adapts statement templates written for PostgreSQL to the connected engine
type Dialect struct {
	name       string
	driverName string
	replacer   *strings.Replacer
	numbered   bool
}

var (
	// Postgres uses templates verbatim
	Postgres = Dialect{name: "postgres", driverName: "pgx"}

	// SQLite binds ?NNN parameters, has no ILIKE (LIKE is ASCII case-insensitive)
	// and stores timestamps as text with millisecond precision
	SQLite = Dialect{
		name:       "sqlite",
		driverName: "sqlite3",
		numbered:   true,
		replacer: strings.NewReplacer(
			"ILIKE", "LIKE",
			"CURRENT_TIMESTAMP", "strftime('%Y-%m-%d %H:%M:%f', 'now')",
		),
	}
)

var postgresParam = regexp.MustCompile(`\$(\d+)`)

// Name returns the dialect name
func (d Dialect) Name() string {
	return d.name
}

// DriverName returns the database/sql driver registered for the dialect
func (d Dialect) DriverName() string {
	return d.driverName
}

// IsPostgres returns true for the PostgreSQL dialect
func (d Dialect) IsPostgres() bool {
	return d.name == Postgres.name
}

// IsSQLite returns true for the SQLite dialect
func (d Dialect) IsSQLite() bool {
	return d.name == SQLite.name
}

// Rebind rewrites a PostgreSQL statement template for this dialect
func (d Dialect) Rebind(query string) string {
	if d.numbered {
		query = postgresParam.ReplaceAllString(query, "?$1")
	}
	if d.replacer != nil {
		query = d.replacer.Replace(query)
	}
	return query
}
