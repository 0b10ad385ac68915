package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/acaipro/storefront-service/internal/domain/model"
	"github.com/acaipro/storefront-service/internal/i18n"
	"github.com/acaipro/storefront-service/internal/service"
)

// CatalogHandler serves the storefront menu endpoints.
type CatalogHandler struct {
	catalogService service.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(catalogService service.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

// GetMenu handles GET /api/catalog requests.
//
// @Summary      Full menu
// @Description  Returns the complete storefront menu: açaí bases, cup sizes, toppings and drinks in one payload.
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Complete menu"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/catalog [get]
func (h *CatalogHandler) GetMenu(c *gin.Context) {
	builder := NewResponseBuilder(c)

	menu, err := h.catalogService.Menu(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyCatalogUnavailable, err)
		return
	}

	builder.SuccessOK(menu)
}

// GetBases handles GET /api/catalog/bases requests.
//
// @Summary      List açaí bases
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Açaí bases"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/catalog/bases [get]
func (h *CatalogHandler) GetBases(c *gin.Context) {
	builder := NewResponseBuilder(c)

	bases, err := h.catalogService.Bases(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyCatalogUnavailable, err)
		return
	}

	builder.SuccessOK(bases)
}

// GetSizes handles GET /api/catalog/sizes requests.
//
// @Summary      List cup sizes
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Cup sizes"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/catalog/sizes [get]
func (h *CatalogHandler) GetSizes(c *gin.Context) {
	builder := NewResponseBuilder(c)

	sizes, err := h.catalogService.Sizes(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyCatalogUnavailable, err)
		return
	}

	builder.SuccessOK(sizes)
}

// GetToppings handles GET /api/catalog/toppings requests.
//
// @Summary      List toppings
// @Description  Returns all toppings, optionally filtered by category (fruits, nuts, sweets, extras).
// @Tags         Catalog
// @Produce      json
// @Param        category query string false "Topping category filter"
// @Success      200 {object} dto.SuccessResponse "Toppings"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/catalog/toppings [get]
func (h *CatalogHandler) GetToppings(c *gin.Context) {
	builder := NewResponseBuilder(c)

	toppings, err := h.catalogService.Toppings(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyCatalogUnavailable, err)
		return
	}

	if category := c.Query("category"); category != "" {
		filtered := make([]model.Topping, 0, len(toppings))
		for _, t := range toppings {
			if string(t.Category) == category {
				filtered = append(filtered, t)
			}
		}
		toppings = filtered
	}

	builder.SuccessOK(toppings)
}

// GetDrinks handles GET /api/catalog/drinks requests.
//
// @Summary      List drinks
// @Description  Returns all drinks, optionally filtered by category (juices, sodas, waters, hot).
// @Tags         Catalog
// @Produce      json
// @Param        category query string false "Drink category filter"
// @Success      200 {object} dto.SuccessResponse "Drinks"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/catalog/drinks [get]
func (h *CatalogHandler) GetDrinks(c *gin.Context) {
	builder := NewResponseBuilder(c)

	drinks, err := h.catalogService.Drinks(c.Request.Context())
	if err != nil {
		builder.Error(http.StatusInternalServerError, i18n.ErrKeyCatalogUnavailable, err)
		return
	}

	if category := c.Query("category"); category != "" {
		filtered := make([]model.Drink, 0, len(drinks))
		for _, d := range drinks {
			if string(d.Category) == category {
				filtered = append(filtered, d)
			}
		}
		drinks = filtered
	}

	builder.SuccessOK(drinks)
}
