package sqldb

import (
	"context"

	"db-console-api/internal/database"
	"db-console-api/internal/models"
	"db-console-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// OperationRepository implements repositories.OperationRepository
type OperationRepository struct {
	*BaseRepository[models.Operation]
}

// NewOperationRepository creates an operation repository bound to q
func NewOperationRepository(q repositories.Querier, dialect database.Dialect, logger *logrus.Logger) *OperationRepository {
	return &OperationRepository{
		BaseRepository: NewBaseRepository[models.Operation](q, dialect, models.TableOperations, scanOperation, logger),
	}
}

func scanOperation(row rowScanner) (*models.Operation, error) {
	operation := &models.Operation{}
	err := row.Scan(
		&operation.ID,
		&operation.Name,
		&operation.Description,
		&operation.Cost,
		&operation.DurationMinutes,
		&operation.CreatedAt,
		&operation.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return operation, nil
}

// Create inserts an operation and returns the stored row
func (r *OperationRepository) Create(ctx context.Context, operation *models.Operation) (*models.Operation, error) {
	return r.queryOne(ctx, "create", 0, insertOperation,
		operation.Name,
		operation.Description,
		operation.Cost,
		operation.DurationMinutes,
	)
}

// GetByID retrieves an operation by ID
func (r *OperationRepository) GetByID(ctx context.Context, id int64) (*models.Operation, error) {
	return r.queryOne(ctx, "get_by_id", id, selectOperationByID, id)
}

// Update replaces the editable columns of an operation
func (r *OperationRepository) Update(ctx context.Context, operation *models.Operation) (*models.Operation, error) {
	return r.queryOne(ctx, "update", operation.ID, updateOperation,
		operation.Name,
		operation.Description,
		operation.Cost,
		operation.DurationMinutes,
		operation.ID,
	)
}

// Delete deletes an operation by ID
func (r *OperationRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, deleteOperation, id)
}

// List retrieves operations matching the search, newest first
func (r *OperationRepository) List(ctx context.Context, filter repositories.ListFilter) ([]*models.Operation, error) {
	return r.queryMany(ctx, "list", listOperations, searchArgs(filter)...)
}
