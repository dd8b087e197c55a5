package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"db-console-api/internal/models"
	"db-console-api/internal/repositories"
)

// Order validation messages
const (
	OrderCustomerNameRequired = "Customer name is required"
	OrderInvalidDeadline      = "Deadline must be a date in YYYY-MM-DD format"
)

// OrderRequest is the JSON body accepted by POST and PUT on orders
type OrderRequest struct {
	CustomerName *string `json:"customer_name"`
	Description  *string `json:"description"`
	Status       *string `json:"status"`
	TotalCost    *Number `json:"total_cost"`
	Deadline     *string `json:"deadline"`
}

type orderInput struct {
	CustomerName string `validate:"required"`
	Description  string
	Status       string
	TotalCost    float64
	Deadline     models.Date
}

func (req OrderRequest) input(entity string) (orderInput, error) {
	deadline, err := models.ParseDate(trimmed(req.Deadline))
	if err != nil {
		return orderInput{}, repositories.ValidationError(entity, OrderInvalidDeadline)
	}

	return orderInput{
		CustomerName: trimmed(req.CustomerName),
		Description:  trimmed(req.Description),
		Status:       trimmed(req.Status),
		TotalCost:    req.TotalCost.Float64(),
		Deadline:     deadline,
	}, nil
}

func (in orderInput) order(id int64) *models.Order {
	return &models.Order{
		ID:           id,
		CustomerName: in.CustomerName,
		Description:  in.Description,
		Status:       in.Status,
		TotalCost:    in.TotalCost,
		Deadline:     in.Deadline,
	}
}

// orderService implements EntityService for the orders table
type orderService struct {
	validator *validator.Validate
}

// NewOrderService creates a new order service instance
func NewOrderService() EntityService {
	return &orderService{
		validator: validator.New(),
	}
}

func (s *orderService) Table() models.Table {
	return models.TableOrders
}

func (s *orderService) List(ctx context.Context, repos repositories.TransactionalRepositories, filter repositories.ListFilter) (interface{}, error) {
	orders, err := repos.Orders().List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

func (s *orderService) Get(ctx context.Context, repos repositories.TransactionalRepositories, id int64) (interface{}, error) {
	order, err := repos.Orders().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}
	return order, nil
}

// Create creates a new order. A blank status becomes pending and a blank deadline NULL.
func (s *orderService) Create(ctx context.Context, repos repositories.TransactionalRepositories, body string) (interface{}, error) {
	var req OrderRequest
	if err := decodeBody(s.Table().Entity(), body, &req); err != nil {
		return nil, err
	}

	input, err := req.input(s.Table().Entity())
	if err != nil {
		return nil, err
	}
	if input.Status == "" {
		input.Status = models.DefaultOrderStatus
	}
	if err := s.validator.Struct(input); err != nil {
		return nil, repositories.ValidationError(s.Table().Entity(), OrderCustomerNameRequired)
	}

	order, err := repos.Orders().Create(ctx, input.order(0))
	if err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	return order, nil
}

// Update overwrites every editable column; blank values are allowed
func (s *orderService) Update(ctx context.Context, repos repositories.TransactionalRepositories, id int64, body string) (interface{}, error) {
	var req OrderRequest
	if err := decodeBody(s.Table().Entity(), body, &req); err != nil {
		return nil, err
	}

	input, err := req.input(s.Table().Entity())
	if err != nil {
		return nil, err
	}

	order, err := repos.Orders().Update(ctx, input.order(id))
	if err != nil {
		return nil, fmt.Errorf("failed to update order: %w", err)
	}
	return order, nil
}

func (s *orderService) Delete(ctx context.Context, repos repositories.TransactionalRepositories, id int64) error {
	if err := repos.Orders().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}
