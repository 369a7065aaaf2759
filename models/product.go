package models

import "time"

// SizeOption is one entry of a product's size list. StockQuantity on the
// product is kept as the sum of all size stocks.
type SizeOption struct {
	Size  string `json:"size"`
	Stock int    `json:"stock"`
}

type Product struct {
	ID            string       `gorm:"primaryKey" json:"id"`
	Name          string       `gorm:"not null" json:"name"`
	Description   string       `json:"description"`
	CategoryID    string       `gorm:"index" json:"category_id"`
	Price         float64      `gorm:"not null" json:"price"`
	DiscountPrice *float64     `json:"discount_price"`
	Images        []string     `gorm:"serializer:json" json:"images"`
	Sizes         []SizeOption `gorm:"serializer:json" json:"sizes"`
	StockQuantity int          `json:"stock_quantity"`
	IsAvailable   bool         `gorm:"default:true" json:"is_available"`
	SKU           string       `gorm:"uniqueIndex;not null" json:"sku"`
	FabricDetails string       `json:"fabric_details"`
	CreatedAt     time.Time    `json:"created_at"`
	UpdatedAt     time.Time    `json:"updated_at"`
}

// EffectivePrice is the price a buyer pays: the discount price when one is
// set and strictly below the base price, otherwise the base price.
func (p *Product) EffectivePrice() float64 {
	if p.DiscountPrice != nil && *p.DiscountPrice > 0 && *p.DiscountPrice < p.Price {
		return *p.DiscountPrice
	}
	return p.Price
}

// PrimaryImage returns the first image reference, or "" for an imageless row.
func (p *Product) PrimaryImage() string {
	if len(p.Images) > 0 {
		return p.Images[0]
	}
	return ""
}

// TotalSizeStock sums the per-size stock counts.
func (p *Product) TotalSizeStock() int {
	total := 0
	for _, s := range p.Sizes {
		total += s.Stock
	}
	return total
}
