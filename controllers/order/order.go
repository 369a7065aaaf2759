package orderControllers

import (
	"errors"
	"net/http"

	"github.com/chikankari-studio/storefront-api/models"
	"github.com/chikankari-studio/storefront-api/store"
	"github.com/gin-gonic/gin"
)

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// GET /user/orders
func GetUserOrders(sel *store.Selector) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		orders, err := sel.ForUser(userID).GetOrders(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// GET /user/orders/:id — the order-confirmation view.
func GetUserOrder(sel *store.Selector) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		orderID := c.Param("id")

		order, err := sel.ForUser(userID).GetOrder(userID, orderID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
			}
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

// GET /admin/orders — all orders newest first, optional ?status= filter.
func GetAllOrders(sel *store.Selector) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := sel.Remote().DB().Model(&models.Order{}).
			Preload("Items").
			Order("created_at DESC")

		if statusFilter := c.Query("status"); statusFilter != "" {
			status, ok := models.ParseOrderStatus(statusFilter)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
				return
			}
			query = query.Where("status = ?", status)
		}

		var orders []models.Order
		if err := query.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, orders)
	}
}

// PUT /admin/orders/:id/status
//
// Any of the five states can be set from any other; there is no transition
// table. A failed update leaves the stored status untouched.
func UpdateOrderStatus(sel *store.Selector) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("id")

		var req UpdateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		status, ok := models.ParseOrderStatus(req.Status)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid order status"})
			return
		}

		// demo-placed orders live in the file branch, try remote first
		err := sel.Remote().UpdateOrderStatus(orderID, status)
		if errors.Is(err, store.ErrNotFound) {
			err = sel.Demo().UpdateOrderStatus(orderID, status)
		}
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update order status"})
			}
			return
		}

		broadcastStatusChange(orderID, status)
		c.JSON(http.StatusOK, gin.H{"message": "Order status updated successfully"})
	}
}
