package banner

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
)

type stubRepository struct {
	items []Banner
}

func (r *stubRepository) List(limit int) ([]Banner, error) {
	if limit < len(r.items) {
		return r.items[:limit], nil
	}
	return r.items, nil
}

func newTestApp(repo Repository) *fiber.App {
	app := fiber.New()
	NewHandler(NewService(repo)).RegisterPublicRoutes(app)
	return app
}

func TestListBanners_LimitQueryParam(t *testing.T) {
	img := "https://cdn.example.com/sale.png"
	repo := &stubRepository{items: []Banner{
		{BannerID: 1, ImageURL: &img},
		{BannerID: 2},
		{BannerID: 3},
	}}
	app := newTestApp(repo)

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/banners?limit=2", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)

	var got []Banner
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 banners, got %d", len(got))
	}
	if got[0].ImageURL == nil || *got[0].ImageURL != img {
		t.Fatalf("unexpected first banner: %+v", got[0])
	}
}

func TestListBanners_EmptyTableReturnsEmptyArray(t *testing.T) {
	app := newTestApp(&stubRepository{})

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/banners", nil))
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "[]" {
		t.Fatalf("expected empty JSON array, got %s", body)
	}
}
