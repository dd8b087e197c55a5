package services

import (
	"context"

	"db-console-api/internal/models"
	"db-console-api/internal/repositories"
)

// EntityService defines the per-table business logic behind the dispatchers.
// Every method runs against repositories bound to the caller's session; results
// are returned ready for JSON serialization.
type EntityService interface {
	// Table returns the table the service operates on
	Table() models.Table

	// List returns the rows matching filter, newest first, never nil
	List(ctx context.Context, repos repositories.TransactionalRepositories, filter repositories.ListFilter) (interface{}, error)

	// Get returns one row by ID
	Get(ctx context.Context, repos repositories.TransactionalRepositories, id int64) (interface{}, error)

	// Create decodes, trims, defaults and validates body, then inserts it
	Create(ctx context.Context, repos repositories.TransactionalRepositories, body string) (interface{}, error)

	// Update decodes body and replaces the editable columns of row id
	Update(ctx context.Context, repos repositories.TransactionalRepositories, id int64, body string) (interface{}, error)

	// Delete removes row id
	Delete(ctx context.Context, repos repositories.TransactionalRepositories, id int64) error
}
