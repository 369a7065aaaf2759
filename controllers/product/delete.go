package productcontroller

import (
	"net/http"

	"github.com/chikankari-studio/storefront-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// DeleteProduct handles DELETE /admin/products/:id. Existing order lines keep
// their snapshots, so removing the source row is safe.
func DeleteProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		result := db.Where("id = ?", id).Delete(&models.Product{})
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
	}
}
