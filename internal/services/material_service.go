package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"db-console-api/internal/models"
	"db-console-api/internal/repositories"
)

// MaterialNameUnitRequired is returned when a new material lacks a name or unit
const MaterialNameUnitRequired = "Name and unit are required"

// MaterialRequest is the JSON body accepted by POST and PUT on materials
type MaterialRequest struct {
	Name          *string `json:"name"`
	Unit          *string `json:"unit"`
	PricePerUnit  *Number `json:"price_per_unit"`
	StockQuantity *Number `json:"stock_quantity"`
}

// materialInput is a trimmed material; the tags apply on create only
type materialInput struct {
	Name          string `validate:"required"`
	Unit          string `validate:"required"`
	PricePerUnit  float64
	StockQuantity float64
}

func (req MaterialRequest) input() materialInput {
	return materialInput{
		Name:          trimmed(req.Name),
		Unit:          trimmed(req.Unit),
		PricePerUnit:  req.PricePerUnit.Float64(),
		StockQuantity: req.StockQuantity.Float64(),
	}
}

func (in materialInput) material(id int64) *models.Material {
	return &models.Material{
		ID:            id,
		Name:          in.Name,
		Unit:          in.Unit,
		PricePerUnit:  in.PricePerUnit,
		StockQuantity: in.StockQuantity,
	}
}

// materialService implements EntityService for the materials table
type materialService struct {
	validator *validator.Validate
}

// NewMaterialService creates a new material service instance
func NewMaterialService() EntityService {
	return &materialService{
		validator: validator.New(),
	}
}

func (s *materialService) Table() models.Table {
	return models.TableMaterials
}

func (s *materialService) List(ctx context.Context, repos repositories.TransactionalRepositories, filter repositories.ListFilter) (interface{}, error) {
	materials, err := repos.Materials().List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}
	return materials, nil
}

func (s *materialService) Get(ctx context.Context, repos repositories.TransactionalRepositories, id int64) (interface{}, error) {
	material, err := repos.Materials().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get material: %w", err)
	}
	return material, nil
}

func (s *materialService) Create(ctx context.Context, repos repositories.TransactionalRepositories, body string) (interface{}, error) {
	var req MaterialRequest
	if err := decodeBody(s.Table().Entity(), body, &req); err != nil {
		return nil, err
	}

	input := req.input()
	if err := s.validator.Struct(input); err != nil {
		return nil, repositories.ValidationError(s.Table().Entity(), MaterialNameUnitRequired)
	}

	material, err := repos.Materials().Create(ctx, input.material(0))
	if err != nil {
		return nil, fmt.Errorf("failed to create material: %w", err)
	}
	return material, nil
}

// Update overwrites every editable column; blank values are allowed
func (s *materialService) Update(ctx context.Context, repos repositories.TransactionalRepositories, id int64, body string) (interface{}, error) {
	var req MaterialRequest
	if err := decodeBody(s.Table().Entity(), body, &req); err != nil {
		return nil, err
	}

	material, err := repos.Materials().Update(ctx, req.input().material(id))
	if err != nil {
		return nil, fmt.Errorf("failed to update material: %w", err)
	}
	return material, nil
}

func (s *materialService) Delete(ctx context.Context, repos repositories.TransactionalRepositories, id int64) error {
	if err := repos.Materials().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete material: %w", err)
	}
	return nil
}
