package cartControllers

import (
	"errors"
	"net/http"

	"github.com/chikankari-studio/storefront-api/models"
	"github.com/chikankari-studio/storefront-api/store"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AddCartItemInput struct {
	ProductID string `json:"product_id" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

type UpdateQuantityInput struct {
	Quantity int `json:"quantity"`
}

// CartResponse is what the cart page renders: the lines plus the order-level
// math.
type CartResponse struct {
	Items  []models.CartItem `json:"items"`
	Totals models.CartTotals `json:"totals"`
}

func respondCart(c *gin.Context, items []models.CartItem) {
	c.JSON(http.StatusOK, CartResponse{Items: items, Totals: models.ComputeTotals(items)})
}

// GET /user/cart
func GetUserCart(sel *store.Selector) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		items, err := sel.ForUser(userID).GetCart(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		respondCart(c, items)
	}
}

// POST /user/cart
//
// An existing product+size line is incremented, never duplicated.
func AddCartItem(sel *store.Selector) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var input AddCartItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		// the catalog lives in the remote store for both branches
		var product models.Product
		if err := sel.Remote().DB().First(&product, "id = ?", input.ProductID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Product does not exist"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to validate product"})
			}
			return
		}
		if !product.IsAvailable {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Product is not available"})
			return
		}
		if !hasSize(&product, input.Size) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown size for this product"})
			return
		}

		item, err := sel.ForUser(userID).AddCartItem(userID, &product, input.Size, input.Quantity)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add item to cart"})
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

func hasSize(p *models.Product, size string) bool {
	for _, s := range p.Sizes {
		if s.Size == size {
			return true
		}
	}
	return false
}

// PUT /user/cart/:id
//
// Quantity has a floor of 1: a decrement below it is a no-op, the cart comes
// back unchanged.
func UpdateCartQuantity(sel *store.Selector) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		itemID := c.Param("id")

		var input UpdateQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		s := sel.ForUser(userID)
		if input.Quantity >= 1 {
			if err := s.UpdateCartQuantity(userID, itemID, input.Quantity); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
				} else {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart item"})
				}
				return
			}
		}

		items, err := s.GetCart(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		respondCart(c, items)
	}
}

// DELETE /user/cart/:id
func RemoveCartItem(sel *store.Selector) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		itemID := c.Param("id")

		if err := sel.ForUser(userID).RemoveCartItem(userID, itemID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete item"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart item deleted"})
	}
}

// DELETE /user/cart
func ClearUserCart(sel *store.Selector) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		if err := sel.ForUser(userID).ClearCart(userID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
	}
}
