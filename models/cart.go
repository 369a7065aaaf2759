package models

import "time"

// CartItem is one product+size line owned by a user. The Product* fields are
// a denormalized display snapshot: the demo branch serves them as captured at
// add time, the remote branch refreshes them from the live product on read.
type CartItem struct {
	ID           string `gorm:"primaryKey" json:"id"`
	UserID       string `gorm:"index;not null" json:"user_id"`
	ProductID    string `gorm:"index;not null" json:"product_id"`
	SelectedSize string `json:"selected_size"`
	Quantity     int    `json:"quantity"`

	ProductName          string    `json:"product_name"`
	ProductImage         string    `json:"product_image"`
	ProductPrice         float64   `json:"product_price"`
	ProductDiscountPrice *float64  `json:"product_discount_price"`
	ProductStock         int       `json:"product_stock"`
	CreatedAt            time.Time `json:"created_at"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// UnitPrice applies the discount rule to the snapshotted prices.
func (ci *CartItem) UnitPrice() float64 {
	if ci.ProductDiscountPrice != nil && *ci.ProductDiscountPrice > 0 && *ci.ProductDiscountPrice < ci.ProductPrice {
		return *ci.ProductDiscountPrice
	}
	return ci.ProductPrice
}

// Snapshot copies the display fields from a product row onto the line.
func (ci *CartItem) Snapshot(p *Product) {
	ci.ProductName = p.Name
	ci.ProductImage = p.PrimaryImage()
	ci.ProductPrice = p.Price
	ci.ProductDiscountPrice = p.DiscountPrice
	ci.ProductStock = p.StockQuantity
}
