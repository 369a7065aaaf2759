package models

// Free shipping kicks in at the subtotal threshold; below it a flat fee
// applies.
const (
	FreeShippingThreshold = 999.0
	FlatShippingFee       = 50.0
)

// Subtotal sums unit price times quantity across all cart lines.
func Subtotal(items []CartItem) float64 {
	var total float64
	for i := range items {
		total += items[i].UnitPrice() * float64(items[i].Quantity)
	}
	return total
}

// ShippingCost is 0 at or above the free-shipping threshold, else the flat fee.
func ShippingCost(subtotal float64) float64 {
	if subtotal >= FreeShippingThreshold {
		return 0
	}
	return FlatShippingFee
}

// CartTotals bundles the order-level math the cart and checkout views show.
type CartTotals struct {
	Subtotal float64 `json:"subtotal"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

func ComputeTotals(items []CartItem) CartTotals {
	sub := Subtotal(items)
	ship := ShippingCost(sub)
	return CartTotals{Subtotal: sub, Shipping: ship, Total: sub + ship}
}
