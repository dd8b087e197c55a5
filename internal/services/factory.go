package services

import (
	"fmt"

	"db-console-api/internal/models"
)

// ServiceContainer holds all service instances
type ServiceContainer struct {
	RecordService    EntityService
	MaterialService  EntityService
	OperationService EntityService
	OrderService     EntityService
}

// NewServiceContainer creates a new service container with all services
func NewServiceContainer() *ServiceContainer {
	return &ServiceContainer{
		RecordService:    NewRecordService(),
		MaterialService:  NewMaterialService(),
		OperationService: NewOperationService(),
		OrderService:     NewOrderService(),
	}
}

// ForTable returns the service operating on table
func (sc *ServiceContainer) ForTable(table models.Table) (EntityService, error) {
	switch table {
	case models.TableRecords:
		return sc.RecordService, nil
	case models.TableMaterials:
		return sc.MaterialService, nil
	case models.TableOperations:
		return sc.OperationService, nil
	case models.TableOrders:
		return sc.OrderService, nil
	default:
		return nil, fmt.Errorf("no service for table %q", table)
	}
}

// Validate validates that all services are properly initialized
func (sc *ServiceContainer) Validate() error {
	if sc.RecordService == nil {
		return fmt.Errorf("record service is nil")
	}
	if sc.MaterialService == nil {
		return fmt.Errorf("material service is nil")
	}
	if sc.OperationService == nil {
		return fmt.Errorf("operation service is nil")
	}
	if sc.OrderService == nil {
		return fmt.Errorf("order service is nil")
	}

	return nil
}
