package repositories

import (
	"context"
	"database/sql"

	"db-console-api/internal/models"
)

// Querier is the subset of *sql.DB, *sql.Conn and *sql.Tx used by repositories
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// BaseRepository defines common CRUD operations for all repositories.
// Create and Update return the row as stored, including database-assigned columns.
type BaseRepository[T any] interface {
	// Create inserts a new row
	Create(ctx context.Context, entity *T) (*T, error)

	// GetByID retrieves a row by its primary key
	GetByID(ctx context.Context, id int64) (*T, error)

	// Update replaces the editable columns of an existing row and refreshes updated_at
	Update(ctx context.Context, entity *T) (*T, error)

	// Delete deletes a row by its primary key
	Delete(ctx context.Context, id int64) error

	// List retrieves rows matching the filter, newest first
	List(ctx context.Context, filter ListFilter) ([]*T, error)
}

// RecordRepository defines operations on the records table
type RecordRepository interface {
	BaseRepository[models.Record]
}

// MaterialRepository defines operations on the materials table
type MaterialRepository interface {
	BaseRepository[models.Material]
}

// OperationRepository defines operations on the operations table
type OperationRepository interface {
	BaseRepository[models.Operation]
}

// OrderRepository defines operations on the orders table
type OrderRepository interface {
	BaseRepository[models.Order]
}
