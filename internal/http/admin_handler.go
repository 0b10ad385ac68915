package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/acaipro/storefront-service/internal/domain/dto"
	"github.com/acaipro/storefront-service/internal/domain/model"
	"github.com/acaipro/storefront-service/internal/i18n"
	"github.com/acaipro/storefront-service/internal/middleware"
	"github.com/acaipro/storefront-service/internal/repository"
	"github.com/acaipro/storefront-service/internal/service"
)

// AdminHandler serves the admin dashboard endpoints.
type AdminHandler struct {
	authService     service.AdminAuthService
	orderService    service.OrderService
	settingsService service.SettingsService
	loggingService  service.LoggingService
	checkoutHandler *CheckoutHandler
}

// NewAdminHandler creates a new AdminHandler. The checkout handler is
// optional; when set, settings updates invalidate its delivery cache.
func NewAdminHandler(
	authService service.AdminAuthService,
	orderService service.OrderService,
	settingsService service.SettingsService,
	loggingService service.LoggingService,
	checkoutHandler *CheckoutHandler,
) *AdminHandler {
	return &AdminHandler{
		authService:     authService,
		orderService:    orderService,
		settingsService: settingsService,
		loggingService:  loggingService,
		checkoutHandler: checkoutHandler,
	}
}

// Login handles POST /api/admin/login requests.
//
// @Summary      Admin login
// @Description  Verifies the administrative passphrase and issues a session token.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body dto.AdminLoginRequest true "Admin credentials"
// @Success      200 {object} dto.SuccessResponse{data=dto.AdminLoginResponse} "Session token"
// @Failure      400 {object} dto.ErrorResponse "Invalid request body"
// @Failure      401 {object} dto.ErrorResponse "Invalid credentials"
// @Router       /api/admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.AdminLoginRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	token, expiresIn, err := h.authService.Login(c.Request.Context(), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthNotConfigured) {
			builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, err)
		} else {
			builder.Error(http.StatusUnauthorized, i18n.ErrKeyInvalidCredentials, err)
		}
		return
	}

	builder.SuccessOK(dto.AdminLoginResponse{
		Token:     token,
		ExpiresIn: expiresIn,
	})
}

// Logout handles POST /api/admin/logout requests.
//
// @Summary      Admin logout
// @Description  Revokes the presented session token until its natural expiry.
// @Tags         Admin
// @Produce      json
// @Param        Authorization header string true "Bearer token"
// @Success      200 {object} dto.SuccessResponse "Logged out"
// @Failure      401 {object} dto.ErrorResponse "Invalid token"
// @Security     BearerAuth
// @Router       /api/admin/logout [post]
func (h *AdminHandler) Logout(c *gin.Context) {
	builder := NewResponseBuilder(c)

	authHeader := c.GetHeader("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" || token == authHeader {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyTokenRequired, nil)
		return
	}

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		builder.Error(http.StatusUnauthorized, i18n.ErrKeyInvalidToken, err)
		return
	}

	builder.SuccessOK(gin.H{"message": "logged out"})
}

// buildOrderQuery parses list filters from query parameters.
func buildOrderQuery(c *gin.Context) repository.OrderQueryOptions {
	opts := repository.OrderQueryOptions{
		Status: model.OrderStatus(c.Query("status")),
		Limit:  50,
	}

	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 && limit <= 200 {
		opts.Limit = limit
	}
	if skip, err := strconv.Atoi(c.Query("skip")); err == nil && skip > 0 {
		opts.Skip = skip
	}
	if start, err := time.Parse(time.RFC3339, c.Query("start_time")); err == nil {
		opts.StartTime = &start
	}
	if end, err := time.Parse(time.RFC3339, c.Query("end_time")); err == nil {
		opts.EndTime = &end
	}

	return opts
}

// ListOrders handles GET /api/admin/orders requests.
//
// @Summary      List orders
// @Description  Returns orders newest first, filterable by status and time range.
// @Tags         Admin
// @Produce      json
// @Param        status query string false "Order status filter"
// @Param        limit query int false "Max results (default 50, max 200)"
// @Param        skip query int false "Results to skip"
// @Param        start_time query string false "RFC3339 lower bound on creation time"
// @Param        end_time query string false "RFC3339 upper bound on creation time"
// @Success      200 {object} dto.SuccessResponse "Orders"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized"
// @Security     BearerApiKeyAuth
// @Router       /api/admin/orders [get]
func (h *AdminHandler) ListOrders(c *gin.Context) {
	builder := NewResponseBuilder(c)
	opts := buildOrderQuery(c)

	orders, err := h.orderService.List(c.Request.Context(), opts)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	count, err := h.orderService.Count(c.Request.Context(), opts)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(gin.H{
		"orders": orders,
		"total":  count,
		"limit":  opts.Limit,
		"skip":   opts.Skip,
	})
}

// GetOrder handles GET /api/admin/orders/:id requests.
//
// @Summary      Get order
// @Tags         Admin
// @Produce      json
// @Param        id path string true "Order id"
// @Success      200 {object} dto.SuccessResponse "Order"
// @Failure      404 {object} dto.ErrorResponse "Order not found"
// @Security     BearerAuth
// @Router       /api/admin/orders/{id} [get]
func (h *AdminHandler) GetOrder(c *gin.Context) {
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

// UpdateOrderStatus handles PATCH /api/admin/orders/:id/status requests.
//
// @Summary      Advance order status
// @Description  Moves an order one step forward in its lifecycle (pending → confirmed → preparing → delivery → completed). Skipping or reversing steps is rejected.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        id path string true "Order id"
// @Param        request body dto.UpdateOrderStatusRequest true "Target status"
// @Success      200 {object} dto.SuccessResponse "Updated order"
// @Failure      400 {object} dto.ErrorResponse "Invalid status"
// @Failure      404 {object} dto.ErrorResponse "Order not found"
// @Failure      409 {object} dto.ErrorResponse "Disallowed transition"
// @Security     BearerAuth
// @Router       /api/admin/orders/{id}/status [patch]
func (h *AdminHandler) UpdateOrderStatus(c *gin.Context) {
	builder := NewResponseBuilder(c)
	orderID := c.Param("id")

	req, err := BuildRequestAndValidate[dto.UpdateOrderStatusRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	order, err := h.orderService.UpdateStatus(c.Request.Context(), orderID, model.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOrderNotFound):
			builder.Error(http.StatusNotFound, i18n.ErrKeyOrderNotFound, err)
		case errors.Is(err, service.ErrInvalidStatus):
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		case errors.Is(err, service.ErrInvalidTransition):
			builder.Error(http.StatusConflict, i18n.ErrKeyInvalidStatusTransition, err)
		default:
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	if h.loggingService != nil {
		middleware.AuditLog(h.loggingService, c, "order_status_update", "Order status updated", map[string]interface{}{
			"order_id": orderID,
			"status":   req.Status,
		})
	}

	builder.SuccessOK(order)
}

// GetStats handles GET /api/admin/stats requests.
//
// @Summary      Order statistics
// @Description  Returns order counts by lifecycle status and total revenue for the dashboard.
// @Tags         Admin
// @Produce      json
// @Success      200 {object} dto.SuccessResponse{data=dto.OrderStatsResponse} "Aggregates"
// @Security     BearerAuth
// @Router       /api/admin/stats [get]
func (h *AdminHandler) GetStats(c *gin.Context) {
	builder := NewResponseBuilder(c)

	stats, err := h.orderService.Stats(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(dto.OrderStatsResponse{
		TotalOrders:  stats.TotalOrders,
		TotalRevenue: stats.TotalRevenue,
		ByStatus:     stats.ByStatus,
	})
}

// GetSettings handles GET /api/admin/settings requests.
//
// @Summary      Active store settings
// @Tags         Admin
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Active settings, or defaults when none stored"
// @Security     BearerAuth
// @Router       /api/admin/settings [get]
func (h *AdminHandler) GetSettings(c *gin.Context) {
	builder := NewResponseBuilder(c)

	active, err := h.settingsService.GetActive(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrRepositoryNotConfigured) {
			// No settings store; report the effective defaults
			effective, effErr := h.settingsService.Effective(c.Request.Context())
			if effErr != nil {
				builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, effErr)
				return
			}
			builder.SuccessOK(gin.H{
				"delivery_fee":          effective.DeliveryFee,
				"delivery_lead_minutes": int(effective.DeliveryLeadTime.Minutes()),
				"source":                "defaults",
			})
			return
		}
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}
	if active == nil {
		builder.Error(http.StatusNotFound, i18n.ErrKeyNotFound, nil)
		return
	}

	builder.SuccessOK(active)
}

// UpdateSettings handles PUT /api/admin/settings requests.
//
// @Summary      Update store settings
// @Description  Creates a new active settings version with the given delivery fee and lead time. The previous version is kept in history.
// @Tags         Admin
// @Accept       json
// @Produce      json
// @Param        request body dto.UpdateSettingsRequest true "New settings"
// @Success      200 {object} dto.SuccessResponse "New active settings"
// @Failure      400 {object} dto.ErrorResponse "Invalid values"
// @Failure      503 {object} dto.ErrorResponse "Settings store unavailable"
// @Security     BearerAuth
// @Router       /api/admin/settings [put]
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.UpdateSettingsRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	updatedBy := req.UpdatedBy
	if updatedBy == "" {
		updatedBy = middleware.GetAdminSubject(c)
	}

	var settings *repository.StoreSettings
	active, err := h.settingsService.GetActive(c.Request.Context())
	switch {
	case err == nil && active != nil:
		settings, err = h.settingsService.Update(c.Request.Context(), active.ID, req.DeliveryFee, req.DeliveryLeadMinutes, updatedBy)
	case err == nil || errors.Is(err, service.ErrRepositoryNotConfigured):
		settings, err = h.settingsService.Create(c.Request.Context(), req.DeliveryFee, req.DeliveryLeadMinutes, updatedBy)
	}
	if err != nil {
		if errors.Is(err, service.ErrRepositoryNotConfigured) {
			builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	if h.checkoutHandler != nil {
		h.checkoutHandler.InvalidateSettingsCache()
	}

	if h.loggingService != nil {
		middleware.AuditLog(h.loggingService, c, "settings_update", "Store settings updated", map[string]interface{}{
			"delivery_fee":          req.DeliveryFee,
			"delivery_lead_minutes": req.DeliveryLeadMinutes,
		})
	}

	builder.SuccessOK(settings)
}

// ListSettingsHistory handles GET /api/admin/settings/history requests.
//
// @Summary      Settings history
// @Tags         Admin
// @Produce      json
// @Param        limit query int false "Max results (default 10)"
// @Success      200 {object} dto.SuccessResponse "Settings versions, newest first"
// @Security     BearerAuth
// @Router       /api/admin/settings/history [get]
func (h *AdminHandler) ListSettingsHistory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	limit := 10
	if l, err := strconv.Atoi(c.Query("limit")); err == nil && l > 0 && l <= 100 {
		limit = l
	}

	history, err := h.settingsService.List(c.Request.Context(), limit)
	if err != nil {
		if errors.Is(err, service.ErrRepositoryNotConfigured) {
			builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	builder.SuccessOK(history)
}

// ListLogs handles GET /api/admin/logs requests.
//
// @Summary      Activity log
// @Description  Returns persisted request and audit logs for the dashboard activity view.
// @Tags         Admin
// @Produce      json
// @Param        request_id query string false "Request id filter"
// @Param        level query string false "Log level filter"
// @Param        actor query string false "Actor filter"
// @Param        limit query int false "Max results (default 50, max 500)"
// @Success      200 {object} dto.SuccessResponse "Log entries"
// @Security     BearerAuth
// @Router       /api/admin/logs [get]
func (h *AdminHandler) ListLogs(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if h.loggingService == nil {
		builder.Error(http.StatusServiceUnavailable, i18n.ErrKeyInternalError, nil)
		return
	}

	query := model.RequestLogQuery{
		RequestID: c.Query("request_id"),
		Level:     c.Query("level"),
		Actor:     c.Query("actor"),
		Limit:     50,
	}
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 && limit <= 500 {
		query.Limit = limit
	}
	if skip, err := strconv.Atoi(c.Query("skip")); err == nil && skip > 0 {
		query.Skip = skip
	}
	if start, err := time.Parse(time.RFC3339, c.Query("start_time")); err == nil {
		query.StartTime = &start
	}
	if end, err := time.Parse(time.RFC3339, c.Query("end_time")); err == nil {
		query.EndTime = &end
	}

	logs, err := h.loggingService.QueryLogs(c.Request.Context(), query)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	count, err := h.loggingService.CountLogs(c.Request.Context(), query)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(gin.H{
		"logs":  logs,
		"total": count,
		"limit": query.Limit,
		"skip":  query.Skip,
	})
}
