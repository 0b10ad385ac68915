package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/acaipro/storefront-service/internal/domain/dto"
	"github.com/acaipro/storefront-service/internal/i18n"
	"github.com/acaipro/storefront-service/internal/middleware"
	"github.com/acaipro/storefront-service/internal/service"
)

// SessionHeader carries the cart session id. When a request arrives without
// one, a fresh id is minted and echoed back so the client can persist it.
const SessionHeader = "X-Cart-Session"

// CartHandler serves the session cart endpoints.
type CartHandler struct {
	cartService    service.CartService
	loggingService service.LoggingService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(cartService service.CartService, loggingService service.LoggingService) *CartHandler {
	return &CartHandler{
		cartService:    cartService,
		loggingService: loggingService,
	}
}

// resolveSession returns the request's cart session id, minting one when
// the header is absent. The id is always echoed on the response.
func resolveSession(c *gin.Context) string {
	sessionID := c.GetHeader(SessionHeader)
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	c.Header(SessionHeader, sessionID)
	return sessionID
}

// cartResponse builds the wire representation of a cart view.
func cartResponse(sessionID string, view service.CartView) dto.CartResponse {
	return dto.CartResponse{
		SessionID:  sessionID,
		Items:      view.Items,
		Subtotal:   view.Subtotal,
		TotalItems: view.TotalItems,
	}
}

// catalogErrorKey maps cart service errors to translation keys.
func catalogErrorKey(err error) (string, bool) {
	switch {
	case errors.Is(err, service.ErrUnknownBase),
		errors.Is(err, service.ErrUnknownSize),
		errors.Is(err, service.ErrUnknownTopping),
		errors.Is(err, service.ErrUnknownDrink):
		return i18n.ErrKeyValidationCartItem, true
	}
	return "", false
}

// GetCart handles GET /api/cart requests.
//
// @Summary      Get cart
// @Description  Returns the session's cart. A new or expired session yields an empty cart.
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-Session header string false "Cart session id"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Cart contents"
// @Router       /api/cart [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sessionID := resolveSession(c)

	view, err := h.cartService.Get(c.Request.Context(), sessionID)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(cartResponse(sessionID, view))
}

// AddAcaiItem handles POST /api/cart/items/acai requests.
//
// @Summary      Add configured açaí
// @Description  Adds a configured açaí (base + cup size + toppings) to the session cart. The composition is priced and frozen at add time.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Cart-Session header string false "Cart session id"
// @Param        request body dto.AddAcaiItemRequest true "Açaí composition"
// @Success      201 {object} dto.SuccessResponse{data=dto.AddItemResponse} "Item added"
// @Failure      400 {object} dto.ErrorResponse "Invalid composition"
// @Failure      429 {object} dto.ErrorResponse "Too many requests"
// @Router       /api/cart/items/acai [post]
func (h *CartHandler) AddAcaiItem(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sessionID := resolveSession(c)

	req, err := BuildRequestAndValidate[dto.AddAcaiItemRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	itemID, view, err := h.cartService.AddAcai(c.Request.Context(), sessionID, req.BaseID, req.SizeID, req.ToppingIDs)
	if err != nil {
		if key, ok := catalogErrorKey(err); ok {
			builder.Error(http.StatusBadRequest, key, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	builder.SuccessCreated(dto.AddItemResponse{
		ItemID: itemID,
		Cart:   cartResponse(sessionID, view),
	})
}

// AddDrinkItem handles POST /api/cart/items/drinks requests.
//
// @Summary      Add drink
// @Description  Adds a drink to the session cart. Quantities below one are coerced to one.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Cart-Session header string false "Cart session id"
// @Param        request body dto.AddDrinkItemRequest true "Drink and quantity"
// @Success      201 {object} dto.SuccessResponse{data=dto.AddItemResponse} "Item added"
// @Failure      400 {object} dto.ErrorResponse "Unknown drink"
// @Router       /api/cart/items/drinks [post]
func (h *CartHandler) AddDrinkItem(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sessionID := resolveSession(c)

	req, err := BuildRequestAndValidate[dto.AddDrinkItemRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	itemID, view, err := h.cartService.AddDrink(c.Request.Context(), sessionID, req.DrinkID, req.Quantity)
	if err != nil {
		if key, ok := catalogErrorKey(err); ok {
			builder.Error(http.StatusBadRequest, key, err)
		} else {
			builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		}
		return
	}

	builder.SuccessCreated(dto.AddItemResponse{
		ItemID: itemID,
		Cart:   cartResponse(sessionID, view),
	})
}

// UpdateItemQuantity handles PATCH /api/cart/items/:id requests.
//
// @Summary      Update item quantity
// @Description  Sets the quantity of a cart line. Zero or negative removes the line; an unknown id is a no-op.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        X-Cart-Session header string false "Cart session id"
// @Param        id path string true "Cart item id"
// @Param        request body dto.UpdateQuantityRequest true "New quantity"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Updated cart"
// @Failure      400 {object} dto.ErrorResponse "Invalid request body"
// @Router       /api/cart/items/{id} [patch]
func (h *CartHandler) UpdateItemQuantity(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sessionID := resolveSession(c)

	req, err := BuildRequest[dto.UpdateQuantityRequest](c)
	if err != nil {
		builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		return
	}

	view, err := h.cartService.SetQuantity(c.Request.Context(), sessionID, c.Param("id"), req.Quantity)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(cartResponse(sessionID, view))
}

// RemoveItem handles DELETE /api/cart/items/:id requests.
//
// @Summary      Remove cart item
// @Description  Removes a line from the session cart. An unknown id is a no-op.
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-Session header string false "Cart session id"
// @Param        id path string true "Cart item id"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Updated cart"
// @Router       /api/cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sessionID := resolveSession(c)

	view, err := h.cartService.Remove(c.Request.Context(), sessionID, c.Param("id"))
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	builder.SuccessOK(cartResponse(sessionID, view))
}

// ClearCart handles DELETE /api/cart requests.
//
// @Summary      Clear cart
// @Description  Empties the session cart, keeping the session alive.
// @Tags         Cart
// @Produce      json
// @Param        X-Cart-Session header string false "Cart session id"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Empty cart"
// @Router       /api/cart [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	builder := NewResponseBuilder(c)
	sessionID := resolveSession(c)

	view, err := h.cartService.Clear(c.Request.Context(), sessionID)
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyInternalError, err)
		return
	}

	if h.loggingService != nil {
		middleware.AuditLog(h.loggingService, c, "cart_clear", "Cart cleared", map[string]interface{}{
			"session_id": sessionID,
		})
	}

	builder.SuccessOK(cartResponse(sessionID, view))
}
