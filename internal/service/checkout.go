package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/acaipro/storefront-service/internal/domain/model"
	"github.com/acaipro/storefront-service/internal/logger"
	"github.com/acaipro/storefront-service/internal/metrics"
	"github.com/acaipro/storefront-service/internal/repository"
	"github.com/acaipro/storefront-service/internal/service/cache"
)

// ErrEmptyCart is returned when checkout is attempted with an empty cart.
var ErrEmptyCart = errors.New("cart is empty")

// CheckoutService turns a session cart into a persisted order.
type CheckoutService interface {
	Checkout(ctx context.Context, sessionID string, customer model.Customer) (*model.Order, error)
}

// CheckoutServiceImpl implements CheckoutService.
type CheckoutServiceImpl struct {
	sessions   cache.SessionStore
	settings   SettingsService
	ordersRepo repository.OrdersRepositoryInterface
}

// NewCheckoutService creates a new checkout service.
func NewCheckoutService(sessions cache.SessionStore, settings SettingsService, ordersRepo repository.OrdersRepositoryInterface) CheckoutService {
	return &CheckoutServiceImpl{
		sessions:   sessions,
		settings:   settings,
		ordersRepo: ordersRepo,
	}
}

// Checkout snapshots the session cart, prices the order with the effective
// delivery settings, and persists it. The snapshotted lines are removed
// from the cart only after the order is stored; on any failure the cart is
// left untouched so the customer can retry.
func (s *CheckoutServiceImpl) Checkout(ctx context.Context, sessionID string, customer model.Customer) (*model.Order, error) {
	var items []model.CartItem
	var subtotal float64
	s.sessions.With(sessionID, func(cart *model.Cart) {
		items = cart.Snapshot()
		subtotal = cart.Subtotal()
	})

	if len(items) == 0 {
		metrics.RecordOrderSubmission("empty_cart", 0)
		return nil, ErrEmptyCart
	}

	effective, err := s.settings.Effective(ctx)
	if err != nil {
		metrics.RecordOrderSubmission("error", 0)
		return nil, fmt.Errorf("resolve delivery settings: %w", err)
	}

	draft := model.OrderDraft{
		Customer:    customer,
		Items:       items,
		Subtotal:    subtotal,
		DeliveryFee: effective.DeliveryFee,
		Total:       model.RoundPrice(subtotal + effective.DeliveryFee),
	}
	order := draft.Materialize(time.Now(), effective.DeliveryLeadTime)

	if err := s.ordersRepo.Insert(ctx, &order); err != nil {
		metrics.RecordOrderSubmission("error", 0)
		return nil, fmt.Errorf("store order: %w", err)
	}

	// Remove only the snapshotted lines; anything the customer added to
	// the session while the order was being stored stays in the cart.
	s.sessions.With(sessionID, func(cart *model.Cart) {
		for _, item := range items {
			cart.Remove(item.ID)
		}
	})

	metrics.RecordOrderSubmission("success", order.Total)
	log := logger.For("checkout")
	log.Info().
		Str("order_id", order.ID).
		Float64("total", order.Total).
		Int("items", len(order.Items)).
		Msg("Order submitted")

	return &order, nil
}
