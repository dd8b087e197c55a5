package server

import (
	"context"
	"fmt"

	"db-console-api/internal/config"
	"db-console-api/internal/database"
	"db-console-api/internal/handlers"
	"db-console-api/internal/services"

	"github.com/sirupsen/logrus"
)

// Container holds all application dependencies
type Container struct {
	Config   *config.Config
	Logger   *logrus.Logger
	DB       *database.DB
	Services *services.ServiceContainer
	Records  *handlers.Dispatcher
	Catalog  *handlers.Dispatcher
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config) (*Container, error) {
	return NewContainerWithLogger(cfg, config.NewLogger(cfg.Logging))
}

// NewContainerWithLogger creates a container that logs through logger
func NewContainerWithLogger(cfg *config.Config, logger *logrus.Logger) (*Container, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pool := database.PoolConfig{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}

	db, err := database.Open(context.Background(), cfg.Database.URL, pool, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	serviceContainer := services.NewServiceContainer()
	if err := serviceContainer.Validate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create service container: %w", err)
	}

	fields := logrus.Fields{
		"environment": cfg.Environment,
		"stage":       cfg.Stage,
		"dialect":     db.Dialect().Name(),
		"mode":        config.GetDeploymentMode(),
	}
	if sc := config.GetServerlessConfig(); sc.IsLambda {
		fields["function_name"] = sc.FunctionName
		fields["region"] = sc.Region
	}
	logger.WithFields(fields).Info("Container initialized")

	return &Container{
		Config:   cfg,
		Logger:   logger,
		DB:       db,
		Services: serviceContainer,
		Records:  handlers.NewRecordsDispatcher(db, serviceContainer, logger),
		Catalog:  handlers.NewCatalogDispatcher(db, serviceContainer, cfg.Catalog.TableFallback, logger),
	}, nil
}

// HealthCheck reports whether the database is reachable
func (c *Container) HealthCheck(ctx context.Context) error {
	return c.DB.HealthCheck(ctx)
}

// Close cleans up all resources
func (c *Container) Close() error {
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	return nil
}
