package services

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"db-console-api/internal/models"
	"db-console-api/internal/repositories"
)

// Record validation messages
const (
	RecordTitleRequired = "Title is required"
)

// RecordRequest is the JSON body accepted by POST and PUT on records.
// Pointers distinguish absent fields from empty ones.
type RecordRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Category    *string `json:"category"`
	Status      *string `json:"status"`
}

// recordInput is a trimmed, defaulted record ready for validation
type recordInput struct {
	Title       string `validate:"required"`
	Description string
	Category    string
	Status      string
}

// recordService implements EntityService for the records table
type recordService struct {
	validator *validator.Validate
}

// NewRecordService creates a new record service instance
func NewRecordService() EntityService {
	return &recordService{
		validator: validator.New(),
	}
}

func (s *recordService) Table() models.Table {
	return models.TableRecords
}

// List retrieves records, optionally filtered by search and category
func (s *recordService) List(ctx context.Context, repos repositories.TransactionalRepositories, filter repositories.ListFilter) (interface{}, error) {
	records, err := repos.Records().List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list records: %w", err)
	}
	return records, nil
}

// Get retrieves a record by ID
func (s *recordService) Get(ctx context.Context, repos repositories.TransactionalRepositories, id int64) (interface{}, error) {
	record, err := repos.Records().GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get record: %w", err)
	}
	return record, nil
}

// Create creates a new record. Status defaults to active when absent.
func (s *recordService) Create(ctx context.Context, repos repositories.TransactionalRepositories, body string) (interface{}, error) {
	var req RecordRequest
	if err := decodeBody(s.Table().Entity(), body, &req); err != nil {
		return nil, err
	}

	input := recordInput{
		Title:       trimmed(req.Title),
		Description: trimmed(req.Description),
		Category:    trimmed(req.Category),
		Status:      trimmedOr(req.Status, models.DefaultRecordStatus),
	}
	if err := s.validate(input); err != nil {
		return nil, err
	}

	record, err := repos.Records().Create(ctx, input.record(0))
	if err != nil {
		return nil, fmt.Errorf("failed to create record: %w", err)
	}
	return record, nil
}

// Update replaces a record. Title is required; other absent fields become empty.
func (s *recordService) Update(ctx context.Context, repos repositories.TransactionalRepositories, id int64, body string) (interface{}, error) {
	var req RecordRequest
	if err := decodeBody(s.Table().Entity(), body, &req); err != nil {
		return nil, err
	}

	input := recordInput{
		Title:       trimmed(req.Title),
		Description: trimmed(req.Description),
		Category:    trimmed(req.Category),
		Status:      trimmed(req.Status),
	}
	if err := s.validate(input); err != nil {
		return nil, err
	}

	record, err := repos.Records().Update(ctx, input.record(id))
	if err != nil {
		return nil, fmt.Errorf("failed to update record: %w", err)
	}
	return record, nil
}

// Delete deletes a record by ID
func (s *recordService) Delete(ctx context.Context, repos repositories.TransactionalRepositories, id int64) error {
	if err := repos.Records().Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}

func (s *recordService) validate(input recordInput) error {
	if err := s.validator.Struct(input); err != nil {
		return repositories.ValidationError(s.Table().Entity(), RecordTitleRequired)
	}
	return nil
}

func (in recordInput) record(id int64) *models.Record {
	return &models.Record{
		ID:          id,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		Status:      in.Status,
	}
}
