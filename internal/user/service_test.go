package user

import (
	"testing"
)

func TestRegister_HashesPasswordAndDefaultsRole(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil))

	created, err := s.Register(User{Email: "a@example.com", Password: "hunter22", FullName: "Ada"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if created.Password == "hunter22" {
		t.Fatalf("password stored in plain text")
	}
	if created.Role != RoleCustomer {
		t.Fatalf("expected customer role, got %q", created.Role)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil))

	if _, err := s.Register(User{Email: "a@example.com", Password: "pw"}); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := s.Register(User{Email: "a@example.com", Password: "pw2"}); err != ErrEmailExists {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil))
	if _, err := s.Register(User{Email: "a@example.com", Password: "hunter22"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := s.Authenticate("a@example.com", "hunter22"); err != nil {
		t.Fatalf("expected successful auth, got %v", err)
	}
	if _, err := s.Authenticate("a@example.com", "wrong"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := s.Authenticate("nobody@example.com", "hunter22"); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestUpdateProfile_LeavesCredentialsAlone(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil))
	created, err := s.Register(User{Email: "a@example.com", Password: "hunter22"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	avatar := "/avatars/1.png"
	updated, err := s.UpdateProfile(created.ID, "Ada Lovelace", "555-0100", &avatar, "2024-06-01T00:00:00Z")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.FullName != "Ada Lovelace" || updated.Phone != "555-0100" {
		t.Fatalf("profile fields not updated: %+v", updated)
	}
	if updated.Email != "a@example.com" || updated.Password != created.Password {
		t.Fatalf("credentials must not change on profile update")
	}
}

func TestSetRole(t *testing.T) {
	s := NewService(NewInMemoryRepository(nil))
	created, err := s.Register(User{Email: "a@example.com", Password: "pw"})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	updated, err := s.SetRole(created.ID, RoleAdmin)
	if err != nil {
		t.Fatalf("set role failed: %v", err)
	}
	if updated.Role != RoleAdmin {
		t.Fatalf("expected admin role, got %q", updated.Role)
	}

	if _, err := s.SetRole(created.ID, "superuser"); err == nil {
		t.Fatalf("expected error for unknown role")
	}
}
