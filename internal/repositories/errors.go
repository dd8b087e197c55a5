package repositories

import (
	"errors"
	"fmt"
)

// Common repository errors
var (
	// ErrNotFound is returned when no row matches the key
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidID is returned when an ID is missing or malformed
	ErrInvalidID = errors.New("invalid ID")

	// ErrValidation is returned when a payload fails validation
	ErrValidation = errors.New("validation error")

	// ErrTransaction is returned when a transaction operation fails
	ErrTransaction = errors.New("transaction error")

	// ErrConnection is returned when a connection cannot be acquired
	ErrConnection = errors.New("database connection error")
)

// RepositoryError represents a repository-specific error with additional context.
// Message, when set, is safe to return to API clients.
type RepositoryError struct {
	Op      string // Operation that failed
	Entity  string // Entity type
	ID      string // Entity ID (if applicable)
	Err     error  // Underlying error
	Message string // Human-readable message
}

// Error implements the error interface
func (e *RepositoryError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	if e.ID != "" {
		return fmt.Sprintf("%s %s operation failed for ID %s: %v", e.Entity, e.Op, e.ID, e.Err)
	}

	return fmt.Sprintf("%s %s operation failed: %v", e.Entity, e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// NewRepositoryError creates a new repository error
func NewRepositoryError(op, entity, id string, err error) *RepositoryError {
	return &RepositoryError{
		Op:     op,
		Entity: entity,
		ID:     id,
		Err:    err,
	}
}

// NotFoundError creates a "not found" repository error, e.g. "Record not found"
func NotFoundError(op, entity, id string) *RepositoryError {
	return &RepositoryError{
		Op:      op,
		Entity:  entity,
		ID:      id,
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s not found", entity),
	}
}

// ValidationError creates a "validation" repository error carrying a client-facing message
func ValidationError(entity, message string) *RepositoryError {
	return &RepositoryError{
		Op:      "validate",
		Entity:  entity,
		Err:     ErrValidation,
		Message: message,
	}
}

// InvalidIDError creates an "invalid ID" repository error carrying a client-facing message
func InvalidIDError(entity, id, message string) *RepositoryError {
	return &RepositoryError{
		Op:      "validate",
		Entity:  entity,
		ID:      id,
		Err:     ErrInvalidID,
		Message: message,
	}
}

// TransactionError creates a "transaction" repository error
func TransactionError(op string, err error) *RepositoryError {
	return &RepositoryError{
		Op:      op,
		Entity:  "transaction",
		Err:     fmt.Errorf("%w: %v", ErrTransaction, err),
		Message: fmt.Sprintf("transaction %s failed: %v", op, err),
	}
}

// ConnectionError creates a "connection" repository error
func ConnectionError(err error) *RepositoryError {
	return &RepositoryError{
		Op:      "connect",
		Entity:  "database",
		Err:     fmt.Errorf("%w: %v", ErrConnection, err),
		Message: fmt.Sprintf("database connection failed: %v", err),
	}
}

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation checks if an error is a "validation" error
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsInvalidID checks if an error is an "invalid ID" error
func IsInvalidID(err error) bool {
	return errors.Is(err, ErrInvalidID)
}

// IsTransaction checks if an error is a "transaction" error
func IsTransaction(err error) bool {
	return errors.Is(err, ErrTransaction)
}

// IsConnection checks if an error is a "connection" error
func IsConnection(err error) bool {
	return errors.Is(err, ErrConnection)
}

// ClientMessage returns the client-facing message of a repository error,
// or fallback when err carries none.
func ClientMessage(err error, fallback string) string {
	var repoErr *RepositoryError
	if errors.As(err, &repoErr) && repoErr.Message != "" {
		return repoErr.Message
	}
	return fallback
}
