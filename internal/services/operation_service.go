package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"db-console-api/internal/models"
	"db-console-api/internal/repositories"
)

// OperationNameRequired is returned when a new operation lacks a name
const OperationNameRequired = "Name is required"

// OperationRequest is the JSON body accepted by POST and PUT on operations
type OperationRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Cost            *Number  `json:"cost"`
	DurationMinutes *Integer `json:"duration_minutes"`
}

type operationInput struct {
	Name            string `validate:"required"`
	Description     string
	Cost            float64
	DurationMinutes int64
}

func (req OperationRequest) input() operationInput {
	return operationInput{
		Name:            trimmed(req.Name),
		Description:     trimmed(req.Description),
		Cost:            req.Cost.Float64(),
		DurationMinutes: req.DurationMinutes.Int64(),
	}
}

func (in operationInput) operation(id int64) *models.Operation {
	return &models.Operation{
		ID:              id,
		Name:            in.Name,
		Description:     in.Description,
		Cost:            in.Cost,
		DurationMinutes: in.DurationMinutes,
	}
}

// operationService implements EntityService for the operations table
type operationService struct {
	validator *validator.Validate
}

// NewOperationService creates a new operation service instance
func NewOperationService() EntityService {
	return &operationService{
		validator: validator.New(),
	}
}

func (s *operationService) Table() models.Table {
	return models.TableOperations
}

func (s *operationService) List(ctx context.Context, repos repositories.TransactionalRepositories, filter repositories.ListFilter) (interface{}, error) {
	operations, err := repos.Operations().List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list operations: %w", err)
	}
	return operations, nil
}

func (s *operationService) Get(ctx context.Context, repos repositories.TransactionalRepositories, id int64) (interface{}, error) {
	operation, err := repos.Operations().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get operation: %w", err)
	}
	return operation, nil
}

func (s *operationService) Create(ctx context.Context, repos repositories.TransactionalRepositories, body string) (interface{}, error) {
	var req OperationRequest
	if err := decodeBody(s.Table().Entity(), body, &req); err != nil {
		return nil, err
	}

	input := req.input()
	if err := s.validator.Struct(input); err != nil {
		return nil, repositories.ValidationError(s.Table().Entity(), OperationNameRequired)
	}

	operation, err := repos.Operations().Create(ctx, input.operation(0))
	if err != nil {
		return nil, fmt.Errorf("failed to create operation: %w", err)
	}
	return operation, nil
}

// Update overwrites every editable column; blank values are allowed
func (s *operationService) Update(ctx context.Context, repos repositories.TransactionalRepositories, id int64, body string) (interface{}, error) {
	var req OperationRequest
	if err := decodeBody(s.Table().Entity(), body, &req); err != nil {
		return nil, err
	}

	operation, err := repos.Operations().Update(ctx, req.input().operation(id))
	if err != nil {
		return nil, fmt.Errorf("failed to update operation: %w", err)
	}
	return operation, nil
}

func (s *operationService) Delete(ctx context.Context, repos repositories.TransactionalRepositories, id int64) error {
	if err := repos.Operations().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete operation: %w", err)
	}
	return nil
}
