package address

import (
	"errors"
	"sync"
)

var ErrNotFound = errors.New("address not found")

type Repository interface {
	ListByUser(userID int) ([]Address, error)
	Create(addr Address) (Address, error)
	Update(addr Address) (Address, error)
	Delete(addressID, userID int) error
	// SetDefault marks the address as the user's default and clears the
	// flag on every other address of that user.
	SetDefault(addressID, userID int, updatedAt string) error
}

// InMemoryRepository is used for tests.
type InMemoryRepository struct {
	mu        sync.RWMutex
	addresses []Address
	nextID    int
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{nextID: 1}
}

func (r *InMemoryRepository) ListByUser(userID int) ([]Address, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Address, 0)
	for _, addr := range r.addresses {
		if addr.UserID == userID {
			out = append(out, addr)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) Create(addr Address) (Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	addr.AddressID = r.nextID
	r.nextID++
	if addr.IsDefault {
		r.clearDefaultLocked(addr.UserID)
	}
	r.addresses = append(r.addresses, addr)
	return addr, nil
}

func (r *InMemoryRepository) Update(addr Address) (Address, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.addresses {
		if r.addresses[i].AddressID == addr.AddressID && r.addresses[i].UserID == addr.UserID {
			addr.IsDefault = r.addresses[i].IsDefault
			addr.CreatedAt = r.addresses[i].CreatedAt
			r.addresses[i] = addr
			return addr, nil
		}
	}
	return Address{}, ErrNotFound
}

func (r *InMemoryRepository) Delete(addressID, userID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.addresses {
		if r.addresses[i].AddressID == addressID && r.addresses[i].UserID == userID {
			r.addresses = append(r.addresses[:i], r.addresses[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *InMemoryRepository) SetDefault(addressID, userID int, updatedAt string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := -1
	for i := range r.addresses {
		if r.addresses[i].AddressID == addressID && r.addresses[i].UserID == userID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return ErrNotFound
	}

	r.clearDefaultLocked(userID)
	r.addresses[idx].IsDefault = true
	r.addresses[idx].UpdatedAt = updatedAt
	return nil
}

func (r *InMemoryRepository) clearDefaultLocked(userID int) {
	for i := range r.addresses {
		if r.addresses[i].UserID == userID {
			r.addresses[i].IsDefault = false
		}
	}
}
