package address

import (
	"errors"
	"time"
)

var ErrMissingFields = errors.New("streetAddress, city and country are required")

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListByUser(userID int) ([]Address, error) {
	return s.repo.ListByUser(userID)
}

func (s *Service) Create(addr Address) (Address, error) {
	if addr.StreetAddress == "" || addr.City == "" || addr.Country == "" {
		return Address{}, ErrMissingFields
	}
	addr.CreatedAt = now()
	addr.UpdatedAt = addr.CreatedAt
	return s.repo.Create(addr)
}

func (s *Service) Update(addr Address) (Address, error) {
	if addr.AddressID <= 0 {
		return Address{}, ErrNotFound
	}
	if addr.StreetAddress == "" || addr.City == "" || addr.Country == "" {
		return Address{}, ErrMissingFields
	}
	addr.UpdatedAt = now()
	return s.repo.Update(addr)
}

func (s *Service) Delete(addressID, userID int) error {
	if addressID <= 0 {
		return ErrNotFound
	}
	return s.repo.Delete(addressID, userID)
}

func (s *Service) SetDefault(addressID, userID int) error {
	if addressID <= 0 {
		return ErrNotFound
	}
	return s.repo.SetDefault(addressID, userID, now())
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
