package order

import (
	"errors"
	"sync"
)

var (
	ErrNotFound  = errors.New("order not found")
	ErrEmptyCart = errors.New("cart is empty")
)

// Repository defines persistence operations for orders.
type Repository interface {
	// CreateOrder persists the order and its items and clears the user's
	// cart lines as one unit: either all three happen or none do.
	CreateOrder(ord Order, items []OrderItem) (Order, error)
	ListByUser(userID int) ([]Order, error)
	// GetByID is scoped to the owning user so one customer cannot read
	// another's order.
	GetByID(orderID, userID int) (Order, error)
}

// InMemoryRepository is used for tests and local scenarios.
type InMemoryRepository struct {
	mu       sync.RWMutex
	orders   []Order
	nextID   int
	nextItem int

	// CartLines mirrors the cart rows the transactional create would clear;
	// tests seed and inspect it.
	CartLines map[int]int // userID -> line count
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1, nextItem: 1, CartLines: map[int]int{}}
}

func (r *InMemoryRepository) CreateOrder(ord Order, items []OrderItem) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ord.OrderID = r.nextID
	r.nextID++
	ord.Items = make([]OrderItem, 0, len(items))
	for _, it := range items {
		it.ItemID = r.nextItem
		r.nextItem++
		it.OrderID = ord.OrderID
		ord.Items = append(ord.Items, it)
	}
	r.orders = append(r.orders, ord)
	r.CartLines[ord.UserID] = 0
	return ord, nil
}

func (r *InMemoryRepository) ListByUser(userID int) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, 0)
	for _, o := range r.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) GetByID(orderID, userID int) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.OrderID == orderID && o.UserID == userID {
			return o, nil
		}
	}
	return Order{}, ErrNotFound
}
