package cart

import (
	"errors"
	"sort"
	"sync"

	"github.com/shopglow/storefront-backend/internal/product"
)

var (
	ErrNotFound        = errors.New("cart item not found")
	ErrUnknownProduct  = errors.New("unknown product")
	ErrInvalidQuantity = errors.New("quantity must be positive")
)

// Repository provides access to cart lines. At most one line exists per
// (user, product) pair; increments happen atomically in the store.
type Repository interface {
	GetCart(userID int) ([]CartItem, error)
	// AddItem adds delta to the user's line for the product, creating the
	// line when missing and removing it if the result drops below 1.
	AddItem(userID, productID, delta int, updatedAt string) error
	// SetQuantity overwrites the line's quantity. Callers translate
	// quantities below 1 into RemoveItem before reaching the repository.
	SetQuantity(userID, productID, qty int, updatedAt string) error
	RemoveItem(userID, productID int) error
	ClearCart(userID int) error
}

// InMemoryRepository is used for tests and local scenarios. Product details
// come from a seeded product list.
type InMemoryRepository struct {
	mu       sync.RWMutex
	products map[int]product.Product
	lines    map[int]map[int]int // userID -> productID -> quantity
	nextItem int
	itemIDs  map[int]map[int]int // userID -> productID -> itemID
}

func NewInMemoryRepository(seed []product.Product) *InMemoryRepository {
	r := &InMemoryRepository{
		products: make(map[int]product.Product, len(seed)),
		lines:    make(map[int]map[int]int),
		itemIDs:  make(map[int]map[int]int),
		nextItem: 1,
	}
	for _, p := range seed {
		r.products[p.ID] = p
	}
	return r
}

func (r *InMemoryRepository) GetCart(userID int) ([]CartItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]CartItem, 0, len(r.lines[userID]))
	for pid, qty := range r.lines[userID] {
		out = append(out, CartItem{
			ItemID:   r.itemIDs[userID][pid],
			Quantity: qty,
			Product:  r.products[pid],
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ItemID < out[j].ItemID })
	return out, nil
}

func (r *InMemoryRepository) AddItem(userID, productID, delta int, updatedAt string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[productID]; !ok {
		return ErrUnknownProduct
	}
	if r.lines[userID] == nil {
		r.lines[userID] = make(map[int]int)
		r.itemIDs[userID] = make(map[int]int)
	}
	if _, ok := r.itemIDs[userID][productID]; !ok {
		r.itemIDs[userID][productID] = r.nextItem
		r.nextItem++
	}
	r.lines[userID][productID] += delta
	if r.lines[userID][productID] < 1 {
		delete(r.lines[userID], productID)
		delete(r.itemIDs[userID], productID)
	}
	return nil
}

func (r *InMemoryRepository) SetQuantity(userID, productID, qty int, updatedAt string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lines[userID][productID]; !ok {
		return ErrNotFound
	}
	r.lines[userID][productID] = qty
	return nil
}

func (r *InMemoryRepository) RemoveItem(userID, productID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.lines[userID][productID]; !ok {
		return ErrNotFound
	}
	delete(r.lines[userID], productID)
	delete(r.itemIDs[userID], productID)
	return nil
}

func (r *InMemoryRepository) ClearCart(userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.lines, userID)
	delete(r.itemIDs, userID)
	return nil
}
