package container

import (
	"sync"

	"gorm.io/gorm"

	"github.com/Aksaddd/neighborhood-solar-experts/internal/domain/services"
	"github.com/Aksaddd/neighborhood-solar-experts/internal/infrastructure/config"
)

// ServiceContainer wires every service to the shared database handle and
// configuration. Controllers resolve services through it instead of touching
// globals.
type ServiceContainer struct {
	db     *gorm.DB
	config *config.Config

	jwtService      services.InterfaceJWTService
	adminService    services.InterfaceAdminService
	clientService   services.InterfaceClientService
	estimateService services.InterfaceEstimateService

	mu sync.RWMutex
}

// NewServiceContainer creates and initializes the service container
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	if db == nil {
		panic("database handle is nil")
	}
	if cfg == nil {
		panic("configuration is nil")
	}

	container := &ServiceContainer{
		db:     db,
		config: cfg,
	}
	container.initializeServices()
	return container
}

// initializeServices constructs all services
func (c *ServiceContainer) initializeServices() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.jwtService = services.NewJWTService(c.config, c.db)
	c.adminService = services.NewAdminService(c.db, c.config)
	c.clientService = services.NewClientService(c.db, c.config)
	c.estimateService = services.NewEstimateService(c.db, c.config)
}

// GetService returns a service by name
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()

	switch name {
	case "jwt":
		return c.jwtService
	case "admin":
		return c.adminService
	case "client":
		return c.clientService
	case "estimate":
		return c.estimateService
	default:
		return nil
	}
}

// GetDB returns the shared database handle
func (c *ServiceContainer) GetDB() *gorm.DB {
	return c.db
}

// GetConfig returns the application configuration
func (c *ServiceContainer) GetConfig() *config.Config {
	return c.config
}
