package routes

import (
	adminController "github.com/chikankari-studio/storefront-api/controllers/admin"
	orderControllers "github.com/chikankari-studio/storefront-api/controllers/order"
	productcontroller "github.com/chikankari-studio/storefront-api/controllers/product"
	"github.com/chikankari-studio/storefront-api/middleware"
	"github.com/chikankari-studio/storefront-api/store"
	"github.com/gin-gonic/gin"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Every request passes
// the admin re-check, not just the first page load.
func SetupAdminRoutes(r *gin.Engine, sel *store.Selector) {
	db := sel.Remote().DB()

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateToken, middleware.RequireAdmin(sel))
	{
		// ─────────── Dashboard & Users ───────────
		adminGroup.GET("/dashboard", adminController.GetDashboardStats(db))
		adminGroup.GET("/users", adminController.GetAllUsers(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.GET("", productcontroller.GetAllProductsAdmin(db))
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Order Management ───────────
		orderAdmin := adminGroup.Group("/orders")
		{
			orderAdmin.GET("", orderControllers.GetAllOrders(sel))
			orderAdmin.PUT("/:id/status", orderControllers.UpdateOrderStatus(sel))
			orderAdmin.GET("/export-excel", adminController.ExportOrdersToExcel(db))
			orderAdmin.GET("/ws", orderControllers.OrderWebSocketHandler)
		}
	}
}
