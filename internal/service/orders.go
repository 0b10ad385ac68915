package service

import (
	"context"
	"errors"

	"github.com/acaipro/storefront-service/internal/domain/model"
	"github.com/acaipro/storefront-service/internal/logger"
	"github.com/acaipro/storefront-service/internal/repository"
)

var (
	// ErrOrderNotFound is returned when no order exists for the given id.
	ErrOrderNotFound = errors.New("order not found")
	// ErrInvalidStatus is returned for an unknown order status value.
	ErrInvalidStatus = errors.New("invalid order status")
	// ErrInvalidTransition is returned when a status change skips or reverses
	// a lifecycle step.
	ErrInvalidTransition = errors.New("invalid status transition")
)

// OrderService provides order lookup and admin lifecycle operations.
type OrderService interface {
	Get(ctx context.Context, id string) (*model.Order, error)
	List(ctx context.Context, opts repository.OrderQueryOptions) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error)
	Count(ctx context.Context, opts repository.OrderQueryOptions) (int64, error)
	Stats(ctx context.Context) (*repository.OrderStats, error)
}

// OrderServiceImpl implements OrderService.
type OrderServiceImpl struct {
	ordersRepo repository.OrdersRepositoryInterface
}

// NewOrderService creates a new order service.
func NewOrderService(ordersRepo repository.OrdersRepositoryInterface) OrderService {
	return &OrderServiceImpl{
		ordersRepo: ordersRepo,
	}
}

// Get returns a single order by id.
func (s *OrderServiceImpl) Get(ctx context.Context, id string) (*model.Order, error) {
	order, err := s.ordersRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// List returns orders matching the filters, newest first.
func (s *OrderServiceImpl) List(ctx context.Context, opts repository.OrderQueryOptions) ([]model.Order, error) {
	return s.ordersRepo.List(ctx, opts)
}

// UpdateStatus advances an order through its lifecycle. Only the next
// forward step is allowed; anything else fails with ErrInvalidTransition.
func (s *OrderServiceImpl) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) (*model.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	current, err := s.ordersRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrOrderNotFound
	}

	if !current.Status.CanTransitionTo(status) {
		return nil, ErrInvalidTransition
	}

	updated, err := s.ordersRepo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrOrderNotFound
	}

	log := logger.For("orders")
	log.Info().
		Str("order_id", id).
		Str("from", string(current.Status)).
		Str("to", string(status)).
		Msg("Order status updated")

	return updated, nil
}

// Count returns the number of orders matching the filters.
func (s *OrderServiceImpl) Count(ctx context.Context, opts repository.OrderQueryOptions) (int64, error) {
	return s.ordersRepo.Count(ctx, opts)
}

// Stats aggregates order totals for the admin dashboard.
func (s *OrderServiceImpl) Stats(ctx context.Context) (*repository.OrderStats, error) {
	return s.ordersRepo.Stats(ctx)
}
