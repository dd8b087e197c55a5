package sqldb

import (
	"db-console-api/internal/database"
	"db-console-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

// Repositories binds every table repository to one querier, normally a database.Session
type Repositories struct {
	records    *RecordRepository
	materials  *MaterialRepository
	operations *OperationRepository
	orders     *OrderRepository
}

var _ repositories.TransactionalRepositories = (*Repositories)(nil)

// NewRepositories creates the repository set for q
func NewRepositories(q repositories.Querier, dialect database.Dialect, logger *logrus.Logger) *Repositories {
	if logger == nil {
		logger = logrus.New()
	}
	return &Repositories{
		records:    NewRecordRepository(q, dialect, logger),
		materials:  NewMaterialRepository(q, dialect, logger),
		operations: NewOperationRepository(q, dialect, logger),
		orders:     NewOrderRepository(q, dialect, logger),
	}
}

// ForSession creates the repository set bound to an open session
func ForSession(session *database.Session, logger *logrus.Logger) *Repositories {
	return NewRepositories(session, session.Dialect(), logger)
}

// Records returns the record repository
func (r *Repositories) Records() repositories.RecordRepository {
	return r.records
}

// Materials returns the material repository
func (r *Repositories) Materials() repositories.MaterialRepository {
	return r.materials
}

// Operations returns the operation repository
func (r *Repositories) Operations() repositories.OperationRepository {
	return r.operations
}

// Orders returns the order repository
func (r *Repositories) Orders() repositories.OrderRepository {
	return r.orders
}
