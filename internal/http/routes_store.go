package http

import (
	"github.com/gin-gonic/gin"
)

// StoreRoutes registers the public storefront routes: catalog browsing,
// session carts, checkout and order tracking.
type StoreRoutes struct {
	catalogHandler  *CatalogHandler
	cartHandler     *CartHandler
	checkoutHandler *CheckoutHandler
}

// NewStoreRoutes creates a new StoreRoutes instance.
func NewStoreRoutes(catalogHandler *CatalogHandler, cartHandler *CartHandler, checkoutHandler *CheckoutHandler) *StoreRoutes {
	return &StoreRoutes{
		catalogHandler:  catalogHandler,
		cartHandler:     cartHandler,
		checkoutHandler: checkoutHandler,
	}
}

// RegisterPublicRoutes registers the storefront routes.
func (r *StoreRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	catalog := rg.Group("/catalog")
	catalog.GET("", r.catalogHandler.GetMenu)
	catalog.GET("/bases", r.catalogHandler.GetBases)
	catalog.GET("/sizes", r.catalogHandler.GetSizes)
	catalog.GET("/toppings", r.catalogHandler.GetToppings)
	catalog.GET("/drinks", r.catalogHandler.GetDrinks)

	cart := rg.Group("/cart")
	cart.GET("", r.cartHandler.GetCart)
	cart.DELETE("", r.cartHandler.ClearCart)
	cart.POST("/items/acai", r.cartHandler.AddAcaiItem)
	cart.POST("/items/drinks", r.cartHandler.AddDrinkItem)
	cart.PATCH("/items/:id", r.cartHandler.UpdateItemQuantity)
	cart.DELETE("/items/:id", r.cartHandler.RemoveItem)

	rg.GET("/checkout/delivery", r.checkoutHandler.GetDeliveryInfo)
	rg.POST("/checkout", r.checkoutHandler.Checkout)
	rg.GET("/orders/:id", r.checkoutHandler.GetOrder)
}
