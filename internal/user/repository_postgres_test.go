package user

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPostgresGetByEmail_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`SELECT .+ FROM profiles WHERE email = \$1`).
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "password", "full_name", "phone", "role", "avatar_url", "created_at", "updated_at"}))

	if _, err := repo.GetByEmail("nobody@example.com"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresCreate_DefaultsRole(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	repo := NewPostgresRepository(db)

	mock.ExpectQuery(`INSERT INTO profiles .+RETURNING id`).
		WithArgs("jane@example.com", "hashed", "Jane Doe", "", RoleCustomer, nil, "2026-01-01T00:00:00Z", "2026-01-01T00:00:00Z").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	created, err := repo.Create(User{
		Email:     "jane@example.com",
		Password:  "hashed",
		FullName:  "Jane Doe",
		CreatedAt: "2026-01-01T00:00:00Z",
		UpdatedAt: "2026-01-01T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID != 5 {
		t.Fatalf("expected id 5, got %d", created.ID)
	}
	if created.Role != RoleCustomer {
		t.Fatalf("expected default role %q, got %q", RoleCustomer, created.Role)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPostgresUpdate_MissingUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	defer db.Close()

	repo := NewPostgresRepository(db)

	mock.ExpectExec(`UPDATE profiles`).
		WithArgs("jane@example.com", "hashed", "Jane Doe", "", RoleCustomer, nil, "2026-01-01T00:00:00Z", 99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err = repo.Update(99, User{
		Email:     "jane@example.com",
		Password:  "hashed",
		FullName:  "Jane Doe",
		Role:      RoleCustomer,
		UpdatedAt: "2026-01-01T00:00:00Z",
	})
	if err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
