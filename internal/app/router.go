// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/acaipro/storefront-service/config"
	"github.com/acaipro/storefront-service/internal/http"
	"github.com/acaipro/storefront-service/internal/middleware"
	"github.com/acaipro/storefront-service/internal/repository"
	"github.com/acaipro/storefront-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	StoreRoutes   *http.StoreRoutes
	AdminRoutes   *http.AdminRoutes
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// mongoChecker adapts a MongoDB connection to the health checker interface.
type mongoChecker struct {
	db *repository.MongoDB
}

func (m *mongoChecker) Check() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return m.db.HealthCheck(ctx)
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	var settingsRepo repository.SettingsRepositoryInterface
	var loggingService service.LoggingService
	var ordersRepo repository.OrdersRepositoryInterface
	if dbComponents != nil {
		settingsRepo = dbComponents.SettingsRepo
		loggingService = dbComponents.LoggingService
		ordersRepo = dbComponents.OrdersRepo
	}

	// Orders fall back to an in-memory repository when MongoDB is disabled
	// so the storefront keeps working in local development.
	if ordersRepo == nil {
		ordersRepo = repository.NewMemoryOrdersRepository()
	}

	// Request logs go through the buffered worker pool when a logging
	// service exists; without it RequestLogger only writes to zerolog.
	if loggingService != nil {
		middleware.InitAsyncLogger(loggingService, middleware.DefaultAsyncLoggerConfig())
	}

	settingsService := service.NewSettingsService(settingsRepo, cfg.Store)
	checkoutService := service.NewCheckoutService(services.Sessions, settingsService, ordersRepo)
	orderService := service.NewOrderService(ordersRepo)
	authService := service.NewAdminAuthService(cfg.Auth)

	catalogHandler := http.NewCatalogHandler(services.Catalog)
	cartHandler := http.NewCartHandler(services.Cart, loggingService)
	checkoutHandler := http.NewCheckoutHandler(
		checkoutService,
		orderService,
		settingsService,
		loggingService,
		http.WithSettingsCacheTTL(cfg.Store.SettingsCacheTTL),
	)
	adminHandler := http.NewAdminHandler(authService, orderService, settingsService, loggingService, checkoutHandler)

	healthHandler := http.NewHealthHandler()

	// Register database health checks and circuit breakers for monitoring
	if dbComponents != nil {
		if dbComponents.Mongo != nil {
			healthHandler.AddChecker("mongodb", &mongoChecker{db: dbComponents.Mongo})
		}
		if dbComponents.OrdersCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_orders", dbComponents.OrdersCircuitBreaker)
		}
		if dbComponents.SettingsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_settings", dbComponents.SettingsCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:         cfg.Server.RateLimit,
		RateWindow:        cfg.Server.RateWindow,
		APIKeys:           cfg.Auth.APIKeys,
		EnableIdempotency: true,
		CORSOrigins:       cfg.Server.CORSOrigins,
		SwaggerUser:       cfg.Server.SwaggerUser,
		SwaggerPass:       cfg.Server.SwaggerPass,
		LoggingService:    loggingService,
	}

	return &RouterComponents{
		StoreRoutes:   http.NewStoreRoutes(catalogHandler, cartHandler, checkoutHandler),
		AdminRoutes:   http.NewAdminRoutes(adminHandler, authService),
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
