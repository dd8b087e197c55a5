package sqldb

import (
	"context"

	"db-console-api/internal/database"
	"db-console-api/internal/models"
	"db-console-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// MaterialRepository implements repositories.MaterialRepository
type MaterialRepository struct {
	*BaseRepository[models.Material]
}

// NewMaterialRepository creates a material repository bound to q
func NewMaterialRepository(q repositories.Querier, dialect database.Dialect, logger *logrus.Logger) *MaterialRepository {
	return &MaterialRepository{
		BaseRepository: NewBaseRepository[models.Material](q, dialect, models.TableMaterials, scanMaterial, logger),
	}
}

func scanMaterial(row rowScanner) (*models.Material, error) {
	material := &models.Material{}
	err := row.Scan(
		&material.ID,
		&material.Name,
		&material.Unit,
		&material.PricePerUnit,
		&material.StockQuantity,
		&material.CreatedAt,
		&material.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return material, nil
}

// Create inserts a material and returns the stored row
func (r *MaterialRepository) Create(ctx context.Context, material *models.Material) (*models.Material, error) {
	return r.queryOne(ctx, "create", 0, insertMaterial,
		material.Name,
		material.Unit,
		material.PricePerUnit,
		material.StockQuantity,
	)
}

// GetByID retrieves a material by ID
func (r *MaterialRepository) GetByID(ctx context.Context, id int64) (*models.Material, error) {
	return r.queryOne(ctx, "get_by_id", id, selectMaterialByID, id)
}

// Update replaces the editable columns of a material
func (r *MaterialRepository) Update(ctx context.Context, material *models.Material) (*models.Material, error) {
	return r.queryOne(ctx, "update", material.ID, updateMaterial,
		material.Name,
		material.Unit,
		material.PricePerUnit,
		material.StockQuantity,
		material.ID,
	)
}

// Delete deletes a material by ID
func (r *MaterialRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, deleteMaterial, id)
}

// List retrieves materials whose name matches the search, newest first
func (r *MaterialRepository) List(ctx context.Context, filter repositories.ListFilter) ([]*models.Material, error) {
	return r.queryMany(ctx, "list", listMaterials, searchArgs(filter)...)
}
