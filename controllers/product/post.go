package productcontroller

import (
	"net/http"
	"strings"

	"github.com/chikankari-studio/storefront-api/models"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProductInput struct {
	Name          string              `json:"name" binding:"required"`
	Description   string              `json:"description"`
	CategoryID    string              `json:"category_id" binding:"required"`
	Price         float64             `json:"price" binding:"required,gt=0"`
	DiscountPrice *float64            `json:"discount_price"`
	Images        []string            `json:"images"`
	Sizes         []models.SizeOption `json:"sizes"`
	IsAvailable   *bool               `json:"is_available"`
	SKU           string              `json:"sku" binding:"required"`
	FabricDetails string              `json:"fabric_details"`
}

// validate applies the form rules: a discount must undercut the base price,
// size stocks cannot go negative, blank image slots are dropped.
func (in *ProductInput) validate() (string, bool) {
	if in.DiscountPrice != nil && *in.DiscountPrice >= in.Price {
		return "discount_price must be less than price", false
	}
	for _, s := range in.Sizes {
		if s.Stock < 0 {
			return "size stock cannot be negative", false
		}
		if strings.TrimSpace(s.Size) == "" {
			return "size label cannot be empty", false
		}
	}
	return "", true
}

func (in *ProductInput) apply(p *models.Product) {
	p.Name = in.Name
	p.Description = in.Description
	p.CategoryID = in.CategoryID
	p.Price = in.Price
	p.DiscountPrice = in.DiscountPrice
	p.Sizes = in.Sizes
	p.SKU = in.SKU
	p.FabricDetails = in.FabricDetails

	p.Images = p.Images[:0]
	for _, img := range in.Images {
		if strings.TrimSpace(img) != "" {
			p.Images = append(p.Images, img)
		}
	}

	// aggregate stock is always the sum of size stocks
	p.StockQuantity = p.TotalSizeStock()

	if in.IsAvailable != nil {
		p.IsAvailable = *in.IsAvailable
	}
}

// CreateProduct handles POST /admin/products.
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if msg, ok := input.validate(); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": msg})
			return
		}

		product := models.Product{
			ID:          uuid.NewString(),
			IsAvailable: true,
		}
		input.apply(&product)

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		c.JSON(http.StatusCreated, product)
	}
}
