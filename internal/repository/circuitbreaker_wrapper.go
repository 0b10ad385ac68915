// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/acaipro/storefront-service/internal/circuitbreaker"
	"github.com/acaipro/storefront-service/internal/domain/model"
)

// OrdersRepositoryWithCircuitBreaker wraps OrdersRepository with circuit breaker protection.
type OrdersRepositoryWithCircuitBreaker struct {
	repo           *OrdersRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewOrdersRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewOrdersRepositoryWithCircuitBreaker(repo *OrdersRepository, cb *circuitbreaker.CircuitBreaker) *OrdersRepositoryWithCircuitBreaker {
	return &OrdersRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Insert stores a materialized order with circuit breaker protection.
// Insert failures always surface; a lost order must not look submitted.
func (r *OrdersRepositoryWithCircuitBreaker) Insert(ctx context.Context, order *model.Order) error {
	return r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Insert(ctx, order)
	})
}

// FindByID returns an order with circuit breaker protection.
func (r *OrdersRepositoryWithCircuitBreaker) FindByID(ctx context.Context, id string) (*model.Order, error) {
	var result *model.Order
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.FindByID(ctx, id)
		return cbErr
	})
	return result, err
}

// List returns orders with circuit breaker protection.
func (r *OrdersRepositoryWithCircuitBreaker) List(ctx context.Context, opts OrderQueryOptions) ([]model.Order, error) {
	var result []model.Order
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, opts)
		return cbErr
	})
	return result, err
}

// UpdateStatus updates an order status with circuit breaker protection.
func (r *OrdersRepositoryWithCircuitBreaker) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	var result *model.Order
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.UpdateStatus(ctx, id, status)
		return cbErr
	})
	return result, err
}

// Count returns the order count with circuit breaker protection.
func (r *OrdersRepositoryWithCircuitBreaker) Count(ctx context.Context, opts OrderQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// Stats returns order stats with circuit breaker protection.
func (r *OrdersRepositoryWithCircuitBreaker) Stats(ctx context.Context) (*OrderStats, error) {
	var result *OrderStats
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Stats(ctx)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *OrdersRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// SettingsRepositoryWithCircuitBreaker wraps SettingsRepository with circuit breaker protection.
type SettingsRepositoryWithCircuitBreaker struct {
	repo           *SettingsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewSettingsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewSettingsRepositoryWithCircuitBreaker(repo *SettingsRepository, cb *circuitbreaker.CircuitBreaker) *SettingsRepositoryWithCircuitBreaker {
	return &SettingsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetActive returns the active settings with circuit breaker protection.
func (r *SettingsRepositoryWithCircuitBreaker) GetActive(ctx context.Context) (*StoreSettings, error) {
	var result *StoreSettings
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetActive(ctx)
		return cbErr
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - return nil to use configured defaults
		return nil, nil
	}
	return result, err
}

// Create creates a new settings document with circuit breaker protection.
func (r *SettingsRepositoryWithCircuitBreaker) Create(ctx context.Context, deliveryFee float64, leadMinutes int, createdBy string) (*StoreSettings, error) {
	var result *StoreSettings
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, deliveryFee, leadMinutes, createdBy)
		return cbErr
	})
	return result, err
}

// Update updates a settings document with circuit breaker protection.
func (r *SettingsRepositoryWithCircuitBreaker) Update(ctx context.Context, id primitive.ObjectID, deliveryFee float64, leadMinutes int, updatedBy string) (*StoreSettings, error) {
	var result *StoreSettings
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Update(ctx, id, deliveryFee, leadMinutes, updatedBy)
		return cbErr
	})
	return result, err
}

// List returns all settings documents with circuit breaker protection.
func (r *SettingsRepositoryWithCircuitBreaker) List(ctx context.Context, limit int) ([]StoreSettings, error) {
	var result []StoreSettings
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, limit)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *SettingsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// LogsRepositoryWithCircuitBreaker wraps LogsRepository with circuit breaker protection.
type LogsRepositoryWithCircuitBreaker struct {
	repo           *LogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewLogsRepositoryWithCircuitBreaker(repo *LogsRepository, cb *circuitbreaker.CircuitBreaker) *LogsRepositoryWithCircuitBreaker {
	return &LogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single log entry with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *RequestLogDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - silently fail (logging is non-critical)
		return nil
	}
	return err
}

// CreateMany stores multiple log entries with circuit breaker protection.
// If circuit is open, silently fails (logging is non-critical).
func (r *LogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*RequestLogDocument) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		// Circuit is open - silently fail (logging is non-critical)
		return nil
	}
	return err
}

// Query retrieves log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts LogQueryOptions) ([]*RequestLogDocument, error) {
	var result []*RequestLogDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of log entries with circuit breaker protection.
func (r *LogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts LogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *LogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
