package product

// Product represents a catalog product and maps to the `products` table.
// Timestamps are stored and served as RFC3339 strings.
type Product struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Brand       *string `json:"brand,omitempty"`
	Stock       int     `json:"stock"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	Rating      float64 `json:"rating"`
	ReviewCount int     `json:"reviewCount"`
	Popularity  int     `json:"popularityScore"`
	CreatedAt   string  `json:"createdAt,omitempty"`
}

// InStock reports whether the product can currently be added to a cart.
func (p Product) InStock() bool { return p.Stock > 0 }
