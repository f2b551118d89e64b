package order

import "math"

// Checkout pricing policy. Shipping is free above the threshold; tax applies
// to the subtotal only. Cart and checkout totals both include tax.
const (
	FreeShippingThreshold = 50.0
	FlatShippingRate      = 9.99
	TaxRate               = 0.08
)

// PriceOrder computes shipping, tax and grand total for a cart subtotal.
// Each figure is rounded to cents.
func PriceOrder(subtotal float64) (shipping, tax, total float64) {
	if subtotal > FreeShippingThreshold {
		shipping = 0
	} else {
		shipping = FlatShippingRate
	}
	tax = roundCents(subtotal * TaxRate)
	total = roundCents(subtotal + shipping + tax)
	return shipping, tax, total
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}
