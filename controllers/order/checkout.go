package orderControllers

import (
	"crypto/rand"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/chikankari-studio/storefront-api/models"
	"github.com/chikankari-studio/storefront-api/store"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CheckoutRequest struct {
	FullName      string `json:"full_name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	AddressLine1  string `json:"address_line1" binding:"required"`
	AddressLine2  string `json:"address_line2"`
	City          string `json:"city" binding:"required"`
	State         string `json:"state" binding:"required"`
	Pincode       string `json:"pincode" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
	Notes         string `json:"notes"`
}

const orderNumberPrefix = "CHK"

// GenerateOrderNumber builds a human-readable reference: prefix, the low six
// digits of the millisecond clock, and four random base36 characters. Display
// uniqueness is best effort; the row id is the real key.
func GenerateOrderNumber() string {
	const charset = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	ts := fmt.Sprintf("%d", time.Now().UnixMilli())
	if len(ts) > 6 {
		ts = ts[len(ts)-6:]
	}
	suffix := make([]byte, 4)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			suffix[i] = '0'
			continue
		}
		suffix[i] = charset[n.Int64()]
	}
	return orderNumberPrefix + ts + string(suffix)
}

// BuildOrder turns the current cart lines into an order record with one
// snapshot line per cart line.
func BuildOrder(userID string, req CheckoutRequest, items []models.CartItem) *models.Order {
	totals := models.ComputeTotals(items)
	now := time.Now()

	order := &models.Order{
		ID:            uuid.NewString(),
		UserID:        userID,
		OrderNumber:   GenerateOrderNumber(),
		Status:        models.OrderStatusPlaced,
		TotalAmount:   totals.Total,
		PaymentMethod: models.PaymentMethod(req.PaymentMethod),
		PaymentStatus: models.PaymentStatusPending,
		ShippingAddress: models.Address{
			FullName:     req.FullName,
			Phone:        req.Phone,
			AddressLine1: req.AddressLine1,
			AddressLine2: req.AddressLine2,
			City:         req.City,
			State:        req.State,
			Pincode:      req.Pincode,
		},
		PhoneNumber: req.Phone,
		Notes:       req.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	for i := range items {
		order.Items = append(order.Items, models.OrderItem{
			ID:           uuid.NewString(),
			OrderID:      order.ID,
			ProductID:    items[i].ProductID,
			ProductName:  items[i].ProductName,
			ProductImage: items[i].ProductImage,
			Size:         items[i].SelectedSize,
			Quantity:     items[i].Quantity,
			Price:        items[i].UnitPrice(),
			CreatedAt:    now,
		})
	}
	return order
}

// Checkout handles POST /user/checkout.
//
// Only cash on delivery is accepted today; the online gateway is listed but
// disabled. The order write, its lines and the cart clear go through the
// store as one unit.
func Checkout(sel *store.Selector) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")

		var req CheckoutRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		switch models.PaymentMethod(req.PaymentMethod) {
		case models.PaymentMethodCOD:
			// accepted
		case models.PaymentMethodPaytm:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Online payment is currently unavailable, please use cash on delivery"})
			return
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid payment method"})
			return
		}

		s := sel.ForUser(userID)
		items, err := s.GetCart(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if len(items) == 0 {
			c.JSON(http.StatusConflict, gin.H{"error": "Cart is empty", "redirect": "/cart"})
			return
		}

		order := BuildOrder(userID, req, items)
		if err := s.PlaceOrder(order); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to place order"})
			return
		}

		broadcastNewOrder(order)
		c.JSON(http.StatusCreated, gin.H{
			"message":      "Order placed successfully",
			"order_id":     order.ID,
			"order_number": order.OrderNumber,
			"order":        order,
		})
	}
}
