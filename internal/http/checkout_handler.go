package http

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/acaipro/storefront-service/internal/domain/dto"
	"github.com/acaipro/storefront-service/internal/i18n"
	"github.com/acaipro/storefront-service/internal/middleware"
	"github.com/acaipro/storefront-service/internal/service"
)

// settingsCache provides thread-safe caching of the effective delivery
// settings so checkout does not hit the settings store on every request.
type settingsCache struct {
	settings  atomic.Value // holds service.EffectiveSettings
	expiresAt atomic.Value // holds time.Time
	mu        sync.Mutex
	ttl       time.Duration
}

// newSettingsCache creates a settings cache with the given TTL.
func newSettingsCache(ttl time.Duration) *settingsCache {
	c := &settingsCache{ttl: ttl}
	c.expiresAt.Store(time.Time{})
	return c
}

// get returns the cached settings if valid, or false when expired/empty.
func (c *settingsCache) get() (service.EffectiveSettings, bool) {
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			if v := c.settings.Load(); v != nil {
				if s, ok := v.(service.EffectiveSettings); ok {
					return s, true
				}
			}
		}
	}
	return service.EffectiveSettings{}, false
}

// set stores the settings in the cache with TTL.
func (c *settingsCache) set(s service.EffectiveSettings) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// Double-check after acquiring lock
	if exp := c.expiresAt.Load(); exp != nil {
		if expiresAt, ok := exp.(time.Time); ok && time.Now().Before(expiresAt) {
			return // Already cached by another goroutine
		}
	}

	c.settings.Store(s)
	c.expiresAt.Store(time.Now().Add(c.ttl))
}

// invalidate clears the cache.
func (c *settingsCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expiresAt.Store(time.Time{})
}

// CheckoutHandler serves order submission and order tracking endpoints.
type CheckoutHandler struct {
	checkoutService service.CheckoutService
	orderService    service.OrderService
	settingsService service.SettingsService
	loggingService  service.LoggingService
	settingsCache   *settingsCache
}

// CheckoutHandlerOption configures a CheckoutHandler.
type CheckoutHandlerOption func(*CheckoutHandler)

// WithSettingsCacheTTL sets the TTL for effective settings caching.
func WithSettingsCacheTTL(ttl time.Duration) CheckoutHandlerOption {
	return func(h *CheckoutHandler) {
		h.settingsCache = newSettingsCache(ttl)
	}
}

// NewCheckoutHandler creates a new CheckoutHandler.
func NewCheckoutHandler(
	checkoutService service.CheckoutService,
	orderService service.OrderService,
	settingsService service.SettingsService,
	loggingService service.LoggingService,
	opts ...CheckoutHandlerOption,
) *CheckoutHandler {
	h := &CheckoutHandler{
		checkoutService: checkoutService,
		orderService:    orderService,
		settingsService: settingsService,
		loggingService:  loggingService,
		settingsCache:   newSettingsCache(30 * time.Second),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// effectiveSettings resolves the delivery settings through the cache.
func (h *CheckoutHandler) effectiveSettings(c *gin.Context) service.EffectiveSettings {
	if s, ok := h.settingsCache.get(); ok {
		return s
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	s, err := h.settingsService.Effective(ctx)
	if err == nil {
		h.settingsCache.set(s)
	}
	return s
}

// InvalidateSettingsCache invalidates the cached delivery settings.
// Call this when the store settings are updated.
func (h *CheckoutHandler) InvalidateSettingsCache() {
	h.settingsCache.invalidate()
}

// GetDeliveryInfo handles GET /api/checkout/delivery requests.
//
// @Summary      Delivery info
// @Description  Returns the current delivery fee and estimated lead time in minutes, as applied to new orders.
// @Tags         Checkout
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Delivery fee and lead time"
// @Router       /api/checkout/delivery [get]
func (h *CheckoutHandler) GetDeliveryInfo(c *gin.Context) {
	builder := NewResponseBuilder(c)
	s := h.effectiveSettings(c)

	builder.SuccessOK(gin.H{
		"delivery_fee":          s.DeliveryFee,
		"delivery_lead_minutes": int(s.DeliveryLeadTime.Minutes()),
	})
}

// Checkout handles POST /api/checkout requests.
//
// @Summary      Submit order
// @Description  Validates the customer data, prices the session cart with the effective delivery fee, and materializes a confirmed order. The cart is cleared only after the order is stored. Supports idempotency via Idempotency-Key header.
// @Tags         Checkout
// @Accept       json
// @Produce      json
// @Param        X-Cart-Session header string false "Cart session id"
// @Param        Idempotency-Key header string false "Idempotency key for request deduplication"
// @Param        request body dto.CheckoutRequest true "Customer and delivery data"
// @Success      201 {object} dto.SuccessResponse "Materialized order"
// @Failure      400 {object} dto.ErrorResponse "Invalid customer data or empty cart"
// @Failure      429 {object} dto.ErrorResponse "Too many requests"
// @Failure      503 {object} dto.ErrorResponse "Order storage unavailable; cart preserved"
// @Router       /api/checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sessionID := resolveSession(c)

	req, err := BuildRequest[dto.CheckoutRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	if err := req.Validate(); err != nil {
		var vErr *dto.ValidationError
		if errors.As(err, &vErr) {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationCustomer, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	order, err := h.checkoutService.Checkout(c.Request.Context(), sessionID, req.ToModel())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyCart):
			builder.Error(http.StatusBadRequest, i18n.ErrKeyEmptyCart, err)
		default:
			builder.Error(http.StatusServiceUnavailable, i18n.ErrKeySubmissionFailed, err)
		}
		return
	}

	if h.loggingService != nil {
		middleware.AuditLog(h.loggingService, c, "checkout", "Order submitted", map[string]interface{}{
			"order_id": order.ID,
			"total":    order.Total,
			"items":    len(order.Items),
		})
	}

	builder.SuccessCreated(order)
}

// GetOrder handles GET /api/orders/:id requests.
//
// @Summary      Track order
// @Description  Returns the order confirmation view: items, totals, status and estimated delivery.
// @Tags         Checkout
// @Produce      json
// @Param        id path string true "Order id"
// @Success      200 {object} dto.SuccessResponse "Order"
// @Failure      404 {object} dto.ErrorResponse "Order not found"
// @Router       /api/orders/{id} [get]
func (h *CheckoutHandler) GetOrder(c *gin.Context) {
	builder := NewResponseBuilder(c)

	order, err := h.orderService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			builder.Error(http.StatusNotFound, i18n.ErrKeyOrderNotFound, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	builder.SuccessOK(order)
}
