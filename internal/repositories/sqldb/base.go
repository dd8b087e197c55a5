package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"db-console-api/internal/database"
	"db-console-api/internal/models"
	"db-console-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// rowScanner is satisfied by *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...interface{}) error
}

// BaseRepository provides the statement plumbing shared by all table repositories
type BaseRepository[T any] struct {
	q       repositories.Querier
	dialect database.Dialect
	table   models.Table
	scan    func(rowScanner) (*T, error)
	logger  *logrus.Logger
}

// NewBaseRepository creates a new base repository
func NewBaseRepository[T any](q repositories.Querier, dialect database.Dialect, table models.Table, scan func(rowScanner) (*T, error), logger *logrus.Logger) *BaseRepository[T] {
	if logger == nil {
		logger = logrus.New()
	}
	return &BaseRepository[T]{
		q:       q,
		dialect: dialect,
		table:   table,
		scan:    scan,
		logger:  logger,
	}
}

// entity returns the entity name used in errors
func (r *BaseRepository[T]) entity() string {
	return r.table.Entity()
}

// logQuery logs a statement with its execution time
func (r *BaseRepository[T]) logQuery(operation string, query string, args []interface{}, duration time.Duration, err error) {
	fields := logrus.Fields{
		"operation": operation,
		"table":     r.table.String(),
		"query":     query,
		"args":      args,
		"duration":  duration,
	}

	if err != nil {
		fields["error"] = err.Error()
		r.logger.WithFields(fields).Error("Query failed")
	} else {
		r.logger.WithFields(fields).Debug("Query executed")
	}
}

// queryOne runs a statement returning at most one row. No row maps to a not-found error.
func (r *BaseRepository[T]) queryOne(ctx context.Context, operation string, id int64, query string, args ...interface{}) (*T, error) {
	query = r.dialect.Rebind(query)

	start := time.Now()
	entity, err := r.scan(r.q.QueryRowContext(ctx, query, args...))
	duration := time.Since(start)

	if errors.Is(err, sql.ErrNoRows) {
		r.logQuery(operation, query, args, duration, nil)
		return nil, repositories.NotFoundError(operation, r.entity(), formatID(id))
	}

	r.logQuery(operation, query, args, duration, err)
	if err != nil {
		return nil, repositories.NewRepositoryError(operation, r.entity(), formatID(id), err)
	}

	return entity, nil
}

// queryMany runs a statement returning any number of rows. The result is never nil.
func (r *BaseRepository[T]) queryMany(ctx context.Context, operation string, query string, args ...interface{}) ([]*T, error) {
	query = r.dialect.Rebind(query)

	start := time.Now()
	rows, err := r.q.QueryContext(ctx, query, args...)
	r.logQuery(operation, query, args, time.Since(start), err)
	if err != nil {
		return nil, repositories.NewRepositoryError(operation, r.entity(), "", err)
	}
	defer rows.Close()

	entities := make([]*T, 0)
	for rows.Next() {
		entity, err := r.scan(rows)
		if err != nil {
			return nil, repositories.NewRepositoryError(operation, r.entity(), "", err)
		}
		entities = append(entities, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, repositories.NewRepositoryError(operation, r.entity(), "", err)
	}

	return entities, nil
}

// deleteByID runs a DELETE ... RETURNING id statement
func (r *BaseRepository[T]) deleteByID(ctx context.Context, query string, id int64) error {
	query = r.dialect.Rebind(query)

	start := time.Now()
	var deleted int64
	err := r.q.QueryRowContext(ctx, query, id).Scan(&deleted)
	duration := time.Since(start)

	if errors.Is(err, sql.ErrNoRows) {
		r.logQuery("delete", query, []interface{}{id}, duration, nil)
		return repositories.NotFoundError("delete", r.entity(), formatID(id))
	}

	r.logQuery("delete", query, []interface{}{id}, duration, err)
	if err != nil {
		return repositories.NewRepositoryError("delete", r.entity(), formatID(id), err)
	}

	return nil
}

// searchArgs returns the search parameters shared by the list statements
func searchArgs(filter repositories.ListFilter) []interface{} {
	return []interface{}{filter.Search, filter.SearchPattern()}
}

func formatID(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}
