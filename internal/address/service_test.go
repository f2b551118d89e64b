package address

import "testing"

func seedAddress(t *testing.T, s *Service, userID int, title string, def bool) Address {
	t.Helper()
	addr, err := s.Create(Address{
		UserID:        userID,
		Title:         title,
		StreetAddress: "1 Main St",
		City:          "Springfield",
		State:         "IL",
		PostalCode:    "62701",
		Country:       "US",
		IsDefault:     def,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	return addr
}

func TestSetDefault_ClearsPreviousDefault(t *testing.T) {
	s := NewService(NewInMemoryRepository())

	first := seedAddress(t, s, 7, "Home", true)
	second := seedAddress(t, s, 7, "Work", false)

	if err := s.SetDefault(second.AddressID, 7); err != nil {
		t.Fatalf("set default failed: %v", err)
	}

	addrs, err := s.ListByUser(7)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}

	defaults := 0
	for _, addr := range addrs {
		if addr.IsDefault {
			defaults++
			if addr.AddressID != second.AddressID {
				t.Fatalf("wrong default address %d", addr.AddressID)
			}
		}
	}
	if defaults != 1 {
		t.Fatalf("expected exactly one default address, got %d", defaults)
	}
	_ = first
}

func TestCreateDefault_DemotesExistingDefault(t *testing.T) {
	s := NewService(NewInMemoryRepository())

	seedAddress(t, s, 7, "Home", true)
	second := seedAddress(t, s, 7, "Cabin", true)

	addrs, _ := s.ListByUser(7)
	for _, addr := range addrs {
		if addr.IsDefault && addr.AddressID != second.AddressID {
			t.Fatalf("expected old default cleared, address %d still default", addr.AddressID)
		}
	}
}

func TestCreate_RequiresCoreFields(t *testing.T) {
	s := NewService(NewInMemoryRepository())

	if _, err := s.Create(Address{UserID: 7, City: "Springfield", Country: "US"}); err != ErrMissingFields {
		t.Fatalf("expected ErrMissingFields, got %v", err)
	}
}

func TestAddressOperations_ScopedToOwner(t *testing.T) {
	s := NewService(NewInMemoryRepository())

	addr := seedAddress(t, s, 7, "Home", false)

	if err := s.Delete(addr.AddressID, 8); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for foreign user delete, got %v", err)
	}
	if err := s.SetDefault(addr.AddressID, 8); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for foreign user default, got %v", err)
	}
	if _, err := s.Update(Address{AddressID: addr.AddressID, UserID: 8, StreetAddress: "2 Oak", City: "X", Country: "US"}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound for foreign user update, got %v", err)
	}

	addrs, _ := s.ListByUser(7)
	if len(addrs) != 1 {
		t.Fatalf("owner's address should survive foreign mutations, got %d", len(addrs))
	}
}
