// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/acaipro/storefront-service/config"
	"github.com/acaipro/storefront-service/internal/circuitbreaker"
	"github.com/acaipro/storefront-service/internal/repository"
	"github.com/acaipro/storefront-service/internal/service"
	"github.com/rs/zerolog/log"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	OrdersRepo             repository.OrdersRepositoryInterface
	SettingsRepo           repository.SettingsRepositoryInterface
	LoggingService         service.LoggingService
	OrdersCircuitBreaker   *circuitbreaker.CircuitBreaker
	SettingsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker     *circuitbreaker.CircuitBreaker
	Mongo                  *repository.MongoDB
}

// InitializeDatabase initializes the MongoDB connection and creates required repositories and services.
// Returns nil if the database is disabled or the connection fails.
func InitializeDatabase(cfg config.DatabaseConfig, store config.StoreConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for logs
	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	ordersCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-orders",
	})

	settingsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-settings",
	})

	logsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-logs",
	})

	// Initialize repositories
	logsRepo := repository.NewLogsRepository(db)
	logsRepoWithCB := repository.NewLogsRepositoryWithCircuitBreaker(logsRepo, logsCB)
	loggingService := service.NewLoggingService(logsRepoWithCB)

	ordersRepo := repository.NewOrdersRepository(db)
	ordersRepoWithCB := repository.NewOrdersRepositoryWithCircuitBreaker(ordersRepo, ordersCB)

	settingsRepo := repository.NewSettingsRepository(db)
	settingsRepoWithCB := repository.NewSettingsRepositoryWithCircuitBreaker(settingsRepo, settingsCB)

	// Initialize default store settings if none exist
	if err := initializeDefaultSettings(settingsRepoWithCB, store); err != nil {
		log.Warn().Err(err).Msg("Failed to initialize default store settings")
	}

	return &DatabaseComponents{
		OrdersRepo:             ordersRepoWithCB,
		SettingsRepo:           settingsRepoWithCB,
		LoggingService:         loggingService,
		OrdersCircuitBreaker:   ordersCB,
		SettingsCircuitBreaker: settingsCB,
		LogsCircuitBreaker:     logsCB,
		Mongo:                  db,
	}
}

// initializeDefaultSettings creates the initial store settings document if none exists.
func initializeDefaultSettings(repo repository.SettingsRepositoryInterface, store config.StoreConfig) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	active, err := repo.GetActive(ctx)
	if err != nil {
		return err
	}

	if active == nil {
		leadMinutes := int(store.DeliveryLeadTime.Minutes())
		_, err := repo.Create(ctx, store.DeliveryFee, leadMinutes, "system")
		if err != nil {
			return err
		}
		log.Info().
			Float64("delivery_fee", store.DeliveryFee).
			Int("delivery_lead_minutes", leadMinutes).
			Msg("Created default store settings")
	}

	return nil
}
