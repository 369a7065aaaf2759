package productcontroller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/chikankari-studio/storefront-api/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GetProducts lists the storefront catalog.
//
// Query params: category (slug), search, min_price, max_price, in_stock,
// sort ∈ {newest, price_asc, price_desc, name_asc}. Only available products
// are returned; every filter change is a fresh full query.
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Product{}).Where("is_available = ?", true)

		// category filter resolves the slug to an id first
		if slug := c.Query("category"); slug != "" {
			var category models.Category
			if err := db.Where("slug = ?", slug).First(&category).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					c.JSON(http.StatusOK, []models.Product{})
					return
				}
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve category"})
				return
			}
			query = query.Where("category_id = ?", category.ID)
		}

		if search := c.Query("search"); search != "" {
			query = query.Where("name ILIKE ?", "%"+search+"%")
		}

		if minPriceStr := c.Query("min_price"); minPriceStr != "" {
			mp, err := strconv.ParseFloat(minPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
			query = query.Where("price >= ?", mp)
		}
		if maxPriceStr := c.Query("max_price"); maxPriceStr != "" {
			mp, err := strconv.ParseFloat(maxPriceStr, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
			query = query.Where("price <= ?", mp)
		}

		if c.Query("in_stock") == "true" {
			query = query.Where("stock_quantity > ?", 0)
		}

		switch c.DefaultQuery("sort", "newest") {
		case "price_asc":
			query = query.Order("price ASC")
		case "price_desc":
			query = query.Order("price DESC")
		case "name_asc":
			query = query.Order("name ASC")
		case "newest":
			query = query.Order("created_at DESC")
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid sort key"})
			return
		}

		var products []models.Product
		if err := query.Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}

// GetAllProductsAdmin lists every product, available or not, newest first.
func GetAllProductsAdmin(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var products []models.Product
		if err := db.Order("created_at DESC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products)
	}
}
