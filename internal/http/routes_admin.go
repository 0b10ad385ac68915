package http

import (
	"github.com/gin-gonic/gin"

	"github.com/acaipro/storefront-service/internal/middleware"
	"github.com/acaipro/storefront-service/internal/service"
)

// AdminRoutes registers the admin dashboard routes. Login is public; every
// other route sits behind JWT auth.
type AdminRoutes struct {
	handler     *AdminHandler
	authService service.AdminAuthService
}

// NewAdminRoutes creates a new AdminRoutes instance.
func NewAdminRoutes(handler *AdminHandler, authService service.AdminAuthService) *AdminRoutes {
	return &AdminRoutes{
		handler:     handler,
		authService: authService,
	}
}

// Register registers admin routes under the given API group.
func (r *AdminRoutes) Register(api *gin.RouterGroup) {
	admin := api.Group("/admin")

	admin.POST("/login", r.handler.Login)

	protected := admin.Group("")
	protected.Use(middleware.AdminAuth(r.authService))

	protected.POST("/logout", r.handler.Logout)
	protected.GET("/orders", r.handler.ListOrders)
	protected.GET("/orders/:id", r.handler.GetOrder)
	protected.PATCH("/orders/:id/status", r.handler.UpdateOrderStatus)
	protected.GET("/stats", r.handler.GetStats)
	protected.GET("/settings", r.handler.GetSettings)
	protected.PUT("/settings", r.handler.UpdateSettings)
	protected.GET("/settings/history", r.handler.ListSettingsHistory)
	protected.GET("/logs", r.handler.ListLogs)
}
