package order

import (
	"time"

	"github.com/google/uuid"

	"github.com/shopglow/storefront-backend/internal/cart"
)

// Service provides business logic for checkout and order history.
type Service struct {
	repo Repository
}

func NewService(r Repository) *Service {
	return &Service{repo: r}
}

// Checkout freezes the given cart lines into an order: it snapshots current
// product prices, applies the pricing policy and hands the whole write set to
// the repository, which commits order + items + cart clear atomically.
func (s *Service) Checkout(userID int, lines []cart.CartItem) (Order, error) {
	if userID <= 0 {
		return Order{}, ErrNotFound
	}
	if len(lines) == 0 {
		return Order{}, ErrEmptyCart
	}

	subtotal := cart.Subtotal(lines)
	shipping, tax, total := PriceOrder(subtotal)

	ord := Order{
		OrderNumber: uuid.NewString(),
		UserID:      userID,
		Subtotal:    subtotal,
		Shipping:    shipping,
		Tax:         tax,
		Total:       total,
		Status:      StatusPending,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
	}

	items := make([]OrderItem, 0, len(lines))
	for _, line := range lines {
		items = append(items, OrderItem{
			ProductID: line.Product.ID,
			Quantity:  line.Quantity,
			Price:     line.Product.Price,
		})
	}

	return s.repo.CreateOrder(ord, items)
}

func (s *Service) ListByUser(userID int) ([]Order, error) {
	if userID <= 0 {
		return nil, ErrNotFound
	}
	return s.repo.ListByUser(userID)
}

func (s *Service) GetByID(orderID, userID int) (Order, error) {
	if orderID <= 0 || userID <= 0 {
		return Order{}, ErrNotFound
	}
	return s.repo.GetByID(orderID, userID)
}
