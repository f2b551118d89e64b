package cart

import "github.com/shopglow/storefront-backend/internal/product"

// CartItem is one (user, product) line joined with its product details.
// Quantity is always >= 1; a stored line never holds zero.
type CartItem struct {
	ItemID   int             `json:"itemId"`
	Quantity int             `json:"quantity"`
	Product  product.Product `json:"product"`
}

// Subtotal sums quantity * current product price across the lines.
func Subtotal(items []CartItem) float64 {
	var sum float64
	for _, it := range items {
		sum += float64(it.Quantity) * it.Product.Price
	}
	return sum
}
