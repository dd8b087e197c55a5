package server

import (
	"context"
	"sync"
	"time"

	"db-console-api/internal/config"
)

// ConnectionManager owns the container of a Lambda execution environment.
// The container, and with it the pool, is built on the first invocation and
// reused by every later one.
type ConnectionManager struct {
	container *Container
	lastUsed  time.Time
	mu        sync.RWMutex
	loadCfg   func() (*config.Config, error)
}

var (
	globalConnectionManager *ConnectionManager
	connectionManagerOnce   sync.Once
)

// GetConnectionManager returns the global connection manager instance
func GetConnectionManager() *ConnectionManager {
	connectionManagerOnce.Do(func() {
		globalConnectionManager = NewConnectionManager(config.GetOptimizedConfig)
	})
	return globalConnectionManager
}

// NewConnectionManager creates a manager that loads configuration with loadCfg
func NewConnectionManager(loadCfg func() (*config.Config, error)) *ConnectionManager {
	return &ConnectionManager{loadCfg: loadCfg}
}

// Initialize builds the container from cfg unless one already exists
func (cm *ConnectionManager) Initialize(cfg *config.Config) error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		return nil
	}

	container, err := NewContainer(cfg)
	if err != nil {
		return err
	}

	cm.container = container
	cm.lastUsed = time.Now()
	return nil
}

// GetContainer returns the container, initializing it on first use.
// A failed initialization is retried on the next call.
func (cm *ConnectionManager) GetContainer(ctx context.Context) (*Container, error) {
	cm.mu.RLock()
	if cm.container != nil {
		container := cm.container
		cm.mu.RUnlock()
		cm.UpdateLastUsed()
		return container, nil
	}
	cm.mu.RUnlock()

	cfg, err := cm.loadCfg()
	if err != nil {
		return nil, err
	}
	if err := cm.Initialize(cfg); err != nil {
		return nil, err
	}

	cm.mu.RLock()
	defer cm.mu.RUnlock()
	return cm.container, nil
}

// IsHealthy reports whether a container exists and was used in the last five minutes
func (cm *ConnectionManager) IsHealthy() bool {
	cm.mu.RLock()
	defer cm.mu.RUnlock()

	if cm.container == nil {
		return false
	}
	return time.Since(cm.lastUsed) < 5*time.Minute
}

// Cleanup closes the container's pool
func (cm *ConnectionManager) Cleanup() error {
	cm.mu.Lock()
	defer cm.mu.Unlock()

	if cm.container != nil {
		if err := cm.container.Close(); err != nil {
			return err
		}
		cm.container = nil
	}
	return nil
}

// UpdateLastUsed updates the last used timestamp
func (cm *ConnectionManager) UpdateLastUsed() {
	cm.mu.Lock()
	defer cm.mu.Unlock()
	cm.lastUsed = time.Now()
}
