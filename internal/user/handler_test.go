package user

import (
	"encoding/json"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v2"
)

func newAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	os.Setenv("JWT_SECRET", "test-secret")

	h := NewHandler(NewService(NewInMemoryRepository(nil)))
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	app.Use(jwtware.New(jwtware.Config{SigningKey: []byte("test-secret")}))
	h.RegisterProtectedRoutes(app)
	h.RegisterAdminRoutes(app.Group("", RequireAdmin))
	return app
}

func signUpAndIn(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	req := httptest.NewRequest("POST", "/api/v1/sign-up", strings.NewReader(`{"email":"`+email+`","password":"hunter22","fullName":"Ada"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("sign-up failed: %v", err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201 got %d", res.StatusCode)
	}

	req2 := httptest.NewRequest("POST", "/api/v1/sign-in", strings.NewReader(`{"email":"`+email+`","password":"hunter22"}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, err := app.Test(req2)
	if err != nil {
		t.Fatalf("sign-in failed: %v", err)
	}
	if res2.StatusCode != 200 {
		t.Fatalf("expected 200 got %d", res2.StatusCode)
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(res2.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Token == "" {
		t.Fatalf("expected token in login response")
	}
	return body.Token
}

func TestSignUpSignInAndProfile(t *testing.T) {
	app := newAuthApp(t)
	token := signUpAndIn(t, app, "ada@example.com")

	// without a token the profile route is unauthorized
	req := httptest.NewRequest("GET", "/api/v1/profile", nil)
	res, _ := app.Test(req)
	if res.StatusCode == 200 {
		t.Fatalf("expected profile to require auth")
	}

	req2 := httptest.NewRequest("GET", "/api/v1/profile", nil)
	req2.Header.Set("Authorization", "Bearer "+token)
	res2, err := app.Test(req2)
	if err != nil {
		t.Fatalf("profile request failed: %v", err)
	}
	if res2.StatusCode != 200 {
		t.Fatalf("expected 200 got %d", res2.StatusCode)
	}

	var profile User
	if err := json.NewDecoder(res2.Body).Decode(&profile); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if profile.Email != "ada@example.com" {
		t.Fatalf("unexpected profile: %+v", profile)
	}
	if profile.Password != "" {
		t.Fatalf("password must be sanitized from responses")
	}
}

func TestSignIn_WrongPassword(t *testing.T) {
	app := newAuthApp(t)
	signUpAndIn(t, app, "ada@example.com")

	req := httptest.NewRequest("POST", "/api/v1/sign-in", strings.NewReader(`{"email":"ada@example.com","password":"nope"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", res.StatusCode)
	}
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	app := newAuthApp(t)
	signUpAndIn(t, app, "ada@example.com")

	req := httptest.NewRequest("POST", "/api/v1/sign-up", strings.NewReader(`{"email":"ada@example.com","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusConflict {
		t.Fatalf("expected 409 got %d", res.StatusCode)
	}
}

func TestAdminRoutes_RequireAdminRole(t *testing.T) {
	app := newAuthApp(t)
	token := signUpAndIn(t, app, "ada@example.com") // plain customer

	req := httptest.NewRequest("GET", "/api/v1/admin/users", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusForbidden {
		t.Fatalf("expected 403 for non-admin, got %d", res.StatusCode)
	}
}

func TestResetPassword_GenericResponse(t *testing.T) {
	app := newAuthApp(t)

	req := httptest.NewRequest("POST", "/api/v1/reset-password", strings.NewReader(`{"email":"ghost@example.com"}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200 regardless of account existence, got %d", res.StatusCode)
	}
}
