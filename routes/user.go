package routes

import (
	cartControllers "github.com/chikankari-studio/storefront-api/controllers/cart"
	orderControllers "github.com/chikankari-studio/storefront-api/controllers/order"
	userControllers "github.com/chikankari-studio/storefront-api/controllers/user"
	"github.com/chikankari-studio/storefront-api/middleware"
	"github.com/chikankari-studio/storefront-api/store"
	"github.com/gin-gonic/gin"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, sel *store.Selector) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── Profile ────────────────
		userGroup.GET("/profile", userControllers.GetProfile(sel))
		userGroup.PUT("/profile", userControllers.UpdateProfile(sel))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("", cartControllers.GetUserCart(sel))
			cartGroup.POST("", cartControllers.AddCartItem(sel))
			cartGroup.PUT("/:id", cartControllers.UpdateCartQuantity(sel))
			cartGroup.DELETE("/:id", cartControllers.RemoveCartItem(sel))
			cartGroup.DELETE("", cartControllers.ClearUserCart(sel))
		}

		// ──────────────── Checkout & Orders ────────────────
		userGroup.POST("/checkout", orderControllers.Checkout(sel))
		userGroup.GET("/orders", orderControllers.GetUserOrders(sel))
		userGroup.GET("/orders/:id", orderControllers.GetUserOrder(sel))
	}
}
