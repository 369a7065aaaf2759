package routes

import (
	"github.com/chikankari-studio/storefront-api/store"
	"github.com/gin-gonic/gin"
)

// SetupRoutes is the single entry-point that wires up the catalog, auth,
// user, and admin route groups.
func SetupRoutes(r *gin.Engine, sel *store.Selector) {
	// 1️⃣ Public storefront browsing (no middleware)
	SetupCatalogRoutes(r, sel)

	// 2️⃣ Auth routes (OTP flow, session)
	SetupAuthRoutes(r, sel)

	// 3️⃣ User routes (JWT-protected)
	SetupUserRoutes(r, sel)

	// 4️⃣ Admin routes (JWT + per-request admin re-check)
	SetupAdminRoutes(r, sel)
}
