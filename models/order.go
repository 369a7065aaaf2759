package models

import "time"

type OrderStatus string
type PaymentStatus string
type PaymentMethod string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusPacked    OrderStatus = "packed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"

	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"

	PaymentMethodCOD   PaymentMethod = "cod"
	PaymentMethodPaytm PaymentMethod = "paytm" // listed but not accepted for submission
)

type Order struct {
	ID              string        `gorm:"primaryKey" json:"id"`
	UserID          string        `gorm:"index;not null" json:"user_id"`
	OrderNumber     string        `gorm:"index" json:"order_number"`
	Status          OrderStatus   `gorm:"type:VARCHAR(20);default:'placed'" json:"status"`
	TotalAmount     float64       `json:"total_amount"`
	PaymentMethod   PaymentMethod `gorm:"type:VARCHAR(20)" json:"payment_method"`
	PaymentStatus   PaymentStatus `gorm:"type:VARCHAR(20);default:'pending'" json:"payment_status"`
	PaymentID       string        `json:"payment_id,omitempty"`
	ShippingAddress Address       `gorm:"serializer:json" json:"shipping_address"`
	PhoneNumber     string        `json:"phone_number"`
	Notes           string        `json:"notes"`
	Items           []OrderItem   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

// OrderItem keeps the purchased snapshot; it never changes even if the
// source product is later edited or deleted.
type OrderItem struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	OrderID      string    `gorm:"index" json:"order_id"`
	ProductID    string    `json:"product_id"`
	ProductName  string    `json:"product_name"`
	ProductImage string    `json:"product_image"`
	Size         string    `json:"size"`
	Quantity     int       `json:"quantity"`
	Price        float64   `json:"price"`
	CreatedAt    time.Time `json:"created_at"`
}

// ParseOrderStatus maps a request string onto the status enum.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	switch OrderStatus(s) {
	case OrderStatusPlaced, OrderStatusPacked, OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return OrderStatus(s), true
	default:
		return "", false
	}
}

// ParsePaymentStatus maps a request string onto the payment status enum.
func ParsePaymentStatus(s string) (PaymentStatus, bool) {
	switch PaymentStatus(s) {
	case PaymentStatusPending, PaymentStatusCompleted, PaymentStatusFailed:
		return PaymentStatus(s), true
	default:
		return "", false
	}
}
