package middleware

import (
	"net/http"

	"github.com/chikankari-studio/storefront-api/auth"
	"github.com/gin-gonic/gin"
)

// ValidateToken guards user routes. It accepts only full session tokens and
// puts user_id and phone into the gin context.
func ValidateToken(c *gin.Context) {
	tokenString := c.GetHeader("Authorization")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header is missing"})
		c.Abort()
		return
	}

	claims, err := auth.ParseToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		c.Abort()
		return
	}
	if claims["role"] != auth.RoleSession {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
		c.Abort()
		return
	}

	c.Set("user_id", claims["user_id"])
	c.Set("phone", claims["phone"])
	c.Next()
}
