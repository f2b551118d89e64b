package order

// Order statuses. Orders are created pending; there is no payment processor,
// so completion/cancellation happen through the admin surface.
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Order represents a purchase made by a user. Totals are snapshotted at
// checkout and never recomputed from current product prices.
type Order struct {
	OrderID     int         `json:"orderId"`
	OrderNumber string      `json:"orderNumber"`
	UserID      int         `json:"userId"`
	Subtotal    float64     `json:"subtotal"`
	Shipping    float64     `json:"shipping"`
	Tax         float64     `json:"tax"`
	Total       float64     `json:"total"`
	Status      string      `json:"status"`
	CreatedAt   string      `json:"createdAt"`
	Items       []OrderItem `json:"items,omitempty"`
}

// OrderItem is one cart line frozen into the order, with the product price
// at purchase time.
type OrderItem struct {
	ItemID      int     `json:"itemId"`
	OrderID     int     `json:"orderId"`
	ProductID   int     `json:"productId"`
	ProductName string  `json:"productName,omitempty"`
	Quantity    int     `json:"quantity"`
	Price       float64 `json:"price"`
}
