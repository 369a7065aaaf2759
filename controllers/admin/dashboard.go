package adminController

import (
	"log"
	"net/http"

	"github.com/chikankari-studio/storefront-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetDashboardStats handles GET /admin/dashboard: product and order counts,
// orders still in "placed", and total revenue.
func GetDashboardStats(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var totalProducts, totalOrders, placedOrders int64
		var totalRevenue float64

		if err := db.Model(&models.Product{}).Count(&totalProducts).Error; err != nil {
			log.Println("❌ Failed to count products:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}
		if err := db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
			log.Println("❌ Failed to count orders:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}
		if err := db.Model(&models.Order{}).
			Where("status = ?", models.OrderStatusPlaced).
			Count(&placedOrders).Error; err != nil {
			log.Println("❌ Failed to count placed orders:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}
		if err := db.Model(&models.Order{}).
			Select("COALESCE(SUM(total_amount), 0)").
			Scan(&totalRevenue).Error; err != nil {
			log.Println("❌ Failed to sum revenue:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"total_products": totalProducts,
			"total_orders":   totalOrders,
			"placed_orders":  placedOrders,
			"total_revenue":  totalRevenue,
		})
	}
}

// GetAllUsers handles GET /admin/users.
func GetAllUsers(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var users []models.UserProfile
		if err := db.
			Select("id", "phone_number", "full_name", "email", "is_admin", "created_at").
			Order("created_at DESC").
			Find(&users).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, users)
	}
}
