package cart

import "time"

// Service orchestrates cart operations. The one business rule lives here:
// setting a quantity below 1 is equivalent to removing the line.
type Service struct {
	repo Repository
}

// ServiceInterface lets other packages (checkout) depend on the cart without
// the concrete type.
type ServiceInterface interface {
	GetCart(userID int) ([]CartItem, error)
	ClearCart(userID int) error
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetCart(userID int) ([]CartItem, error) {
	if userID <= 0 {
		return nil, ErrNotFound
	}
	return s.repo.GetCart(userID)
}

// AddItem adds delta to the user's line for the product (creating it when
// missing). A zero delta just returns the current cart.
func (s *Service) AddItem(userID, productID, delta int) ([]CartItem, error) {
	if userID <= 0 || productID <= 0 {
		return nil, ErrNotFound
	}
	if delta == 0 {
		return s.repo.GetCart(userID)
	}
	if err := s.repo.AddItem(userID, productID, delta, now()); err != nil {
		return nil, err
	}
	return s.repo.GetCart(userID)
}

// SetQuantity overwrites the line's quantity; below 1 removes the line.
func (s *Service) SetQuantity(userID, productID, qty int) ([]CartItem, error) {
	if userID <= 0 || productID <= 0 {
		return nil, ErrNotFound
	}
	if qty < 1 {
		if err := s.repo.RemoveItem(userID, productID); err != nil {
			return nil, err
		}
	} else if err := s.repo.SetQuantity(userID, productID, qty, now()); err != nil {
		return nil, err
	}
	return s.repo.GetCart(userID)
}

func (s *Service) RemoveItem(userID, productID int) ([]CartItem, error) {
	if userID <= 0 || productID <= 0 {
		return nil, ErrNotFound
	}
	if err := s.repo.RemoveItem(userID, productID); err != nil {
		return nil, err
	}
	return s.repo.GetCart(userID)
}

func (s *Service) ClearCart(userID int) error {
	if userID <= 0 {
		return ErrNotFound
	}
	return s.repo.ClearCart(userID)
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
