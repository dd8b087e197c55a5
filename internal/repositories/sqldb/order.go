package sqldb

import (
	"context"

	"db-console-api/internal/database"
	"db-console-api/internal/models"
	"db-console-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// OrderRepository implements repositories.OrderRepository
type OrderRepository struct {
	*BaseRepository[models.Order]
}

// NewOrderRepository creates an order repository bound to q
func NewOrderRepository(q repositories.Querier, dialect database.Dialect, logger *logrus.Logger) *OrderRepository {
	return &OrderRepository{
		BaseRepository: NewBaseRepository[models.Order](q, dialect, models.TableOrders, scanOrder, logger),
	}
}

func scanOrder(row rowScanner) (*models.Order, error) {
	order := &models.Order{}
	err := row.Scan(
		&order.ID,
		&order.CustomerName,
		&order.Description,
		&order.Status,
		&order.TotalCost,
		&order.Deadline,
		&order.CreatedAt,
		&order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return order, nil
}

// Create inserts an order and returns the stored row
func (r *OrderRepository) Create(ctx context.Context, order *models.Order) (*models.Order, error) {
	return r.queryOne(ctx, "create", 0, insertOrder,
		order.CustomerName,
		order.Description,
		order.Status,
		order.TotalCost,
		order.Deadline,
	)
}

// GetByID retrieves an order by ID
func (r *OrderRepository) GetByID(ctx context.Context, id int64) (*models.Order, error) {
	return r.queryOne(ctx, "get_by_id", id, selectOrderByID, id)
}

// Update replaces the editable columns of an order
func (r *OrderRepository) Update(ctx context.Context, order *models.Order) (*models.Order, error) {
	return r.queryOne(ctx, "update", order.ID, updateOrder,
		order.CustomerName,
		order.Description,
		order.Status,
		order.TotalCost,
		order.Deadline,
		order.ID,
	)
}

// Delete deletes an order by ID
func (r *OrderRepository) Delete(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, deleteOrder, id)
}

// List retrieves orders matching the search, newest first
func (r *OrderRepository) List(ctx context.Context, filter repositories.ListFilter) ([]*models.Order, error) {
	return r.queryMany(ctx, "list", listOrders, searchArgs(filter)...)
}
