package repositories

import (
	"context"
)

// Transaction represents the single database transaction of an invocation
type Transaction interface {
	Querier

	// Commit commits the transaction
	Commit() error

	// Rollback rolls back the transaction
	Rollback() error

	// Context returns the transaction context
	Context() context.Context
}

// TransactionalRepositories provides access to all repositories bound to one transaction
type TransactionalRepositories interface {
	// Records returns the record repository
	Records() RecordRepository

	// Materials returns the material repository
	Materials() MaterialRepository

	// Operations returns the operation repository
	Operations() OperationRepository

	// Orders returns the order repository
	Orders() OrderRepository
}
