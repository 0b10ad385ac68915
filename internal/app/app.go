// Package app provides application initialization and dependency injection.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/acaipro/storefront-service/config"
	"github.com/acaipro/storefront-service/internal/http"
)

// InitializeApp creates and wires all application dependencies.
// This is the main orchestration function that initializes all components.
func InitializeApp(cfg config.Config) *gin.Engine {
	// Initialize logger first (needed by other components)
	InitializeLogger()

	// Initialize catalog and cart session services
	serviceComponents := InitializeServices(cfg.Sessions)

	// Initialize database components (MongoDB repositories and services)
	dbComponents := InitializeDatabase(cfg.Database, cfg.Store)

	// Initialize router components (handlers and configuration)
	routerComponents := InitializeRouter(serviceComponents, dbComponents, cfg)

	return http.NewRouter(
		routerComponents.StoreRoutes,
		routerComponents.AdminRoutes,
		routerComponents.HealthHandler,
		routerComponents.Config,
	)
}
