package routes

import (
	"github.com/chikankari-studio/storefront-api/auth"
	"github.com/chikankari-studio/storefront-api/middleware"
	"github.com/chikankari-studio/storefront-api/store"
	"github.com/gin-gonic/gin"
)

// SetupAuthRoutes registers all "/auth/*" endpoints.
func SetupAuthRoutes(r *gin.Engine, sel *store.Selector) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/send-otp", auth.SendOTP(sel))
		authGroup.POST("/verify-otp", auth.VerifyOTP(sel))
		authGroup.POST("/profile", auth.CreateProfile(sel)) // signup-token guarded inside

		authGroup.GET("/session", middleware.ValidateToken, auth.Session(sel))
		authGroup.POST("/signout", middleware.ValidateToken, auth.SignOut(sel))
	}
}
