package sqldb

import (
	"context"

	"db-console-api/internal/database"
	"db-console-api/internal/models"
	"db-console-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// RecordRepository implements repositories.RecordRepository
type RecordRepository struct {
	*BaseRepository[models.Record]
}

// NewRecordRepository creates a record repository bound to q
func NewRecordRepository(q repositories.Querier, dialect database.Dialect, logger *logrus.Logger) *RecordRepository {
	return &RecordRepository{
		BaseRepository: NewBaseRepository[models.Record](q, dialect, models.TableRecords, scanRecord, logger),
	}
}

func scanRecord(row rowScanner) (*models.Record, error) {
	record := &models.Record{}
	err := row.Scan(
		&record.ID,
		&record.Title,
		&record.Description,
		&record.Category,
		&record.Status,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return record, nil
}

// Create inserts a record and returns the stored row
func (r *RecordRepository) Create(ctx context.Context, record *models.Record) (*models.Record, error) {
	return r.queryOne(ctx, "create", 0, insertRecord,
		record.Title,
		record.Description,
		record.Category,
		record.Status,
	)
}

// GetByID retrieves a record by ID
func (r *RecordRepository) GetByID(ctx context.Context, id int64) (*models.Record, error) {
	return r.queryOne(ctx, "get_by_id", id, selectRecordByID, id)
}

// Update replaces the editable columns of a record
func (r *RecordRepository) Update(ctx context.Context, record *models.Record) (*models.Record, error) {
	return r.queryOne(ctx, "update", record.ID, updateRecord,
		record.Title,
		record.Description,
		record.Category,
		record.Status,
		record.ID,
	)
}

// Delete deletes a record by ID
func (r *RecordRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, deleteRecord, id)
}

// List retrieves records matching the search and category filters, newest first
func (r *RecordRepository) List(ctx context.Context, filter repositories.ListFilter) ([]*models.Record, error) {
	args := append(searchArgs(filter), filter.Category)
	return r.queryMany(ctx, "list", listRecords, args...)
}
