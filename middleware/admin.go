package middleware

import (
	"net/http"

	"github.com/chikankari-studio/storefront-api/models"
	"github.com/chikankari-studio/storefront-api/store"
	"github.com/gin-gonic/gin"
)

// RequireAdmin re-checks the admin flag on every request rather than trusting
// anything baked into the token. Runs after ValidateToken.
func RequireAdmin(sel *store.Selector) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			c.Abort()
			return
		}

		var profile *models.UserProfile
		if store.IsDemoUser(userID) {
			p, err := sel.Demo().Profile()
			if err != nil || p == nil {
				c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
				c.Abort()
				return
			}
			profile = p
		} else {
			var p models.UserProfile
			if err := sel.Remote().DB().First(&p, "id = ?", userID).Error; err != nil {
				c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
				c.Abort()
				return
			}
			profile = &p
		}

		if !profile.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}
