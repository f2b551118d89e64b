package product

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func newTestApp(seed []Product) *fiber.App {
	h := NewHandler(NewService(NewInMemoryRepository(seed)))
	app := fiber.New()
	h.RegisterPublicRoutes(app)
	h.RegisterAdminRoutes(app)
	return app
}

func TestQueryProducts_FiltersAndPaginates(t *testing.T) {
	app := newTestApp(sampleCatalog())

	req := httptest.NewRequest("GET", "/api/v1/products?category=Accessories&sort=price-low", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}

	var result Result
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.TotalCount != 2 {
		t.Fatalf("expected 2 accessories, got %d", result.TotalCount)
	}
	if result.Items[0].Name != "Wool Beanie" {
		t.Fatalf("expected cheapest accessory first, got %q", result.Items[0].Name)
	}
}

func TestQueryProducts_RejectsInvertedPriceRange(t *testing.T) {
	app := newTestApp(sampleCatalog())

	req := httptest.NewRequest("GET", "/api/v1/products?minPrice=100&maxPrice=10", nil)
	res, _ := app.Test(req)
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 for inverted range, got %d", res.StatusCode)
	}
}

func TestQueryProducts_SearchParam(t *testing.T) {
	app := newTestApp(sampleCatalog())

	req := httptest.NewRequest("GET", "/api/v1/products?search=jacket", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), "Denim Jacket") {
		t.Fatalf("expected jacket in response, got %s", body)
	}
	if strings.Contains(string(body), "Wool Beanie") {
		t.Fatalf("unrelated product leaked into search results: %s", body)
	}
}

func TestGetFacets(t *testing.T) {
	app := newTestApp(sampleCatalog())

	req := httptest.NewRequest("GET", "/api/v1/products/facets", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	var f Facets
	if err := json.NewDecoder(res.Body).Decode(&f); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(f.Categories) != 4 || len(f.Brands) != 2 {
		t.Fatalf("unexpected facets: %+v", f)
	}
	if f.PriceMin != 15.00 || f.PriceMax != 120.00 {
		t.Fatalf("unexpected price bounds: %+v", f)
	}
}

func TestGetFeatured_OrdersByPopularity(t *testing.T) {
	app := newTestApp(sampleCatalog())

	req := httptest.NewRequest("GET", "/api/v1/products/featured?limit=2", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}

	var items []Product
	if err := json.NewDecoder(res.Body).Decode(&items); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 featured products, got %d", len(items))
	}
	if items[0].ID != 2 || items[1].ID != 4 {
		t.Fatalf("unexpected featured order: %d, %d", items[0].ID, items[1].ID)
	}
}

func TestGetSuggestions(t *testing.T) {
	app := newTestApp(sampleCatalog())

	req := httptest.NewRequest("GET", "/api/v1/products/suggestions?q=wo", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	body, _ := io.ReadAll(res.Body)
	if !strings.Contains(string(body), "Wool Beanie") {
		t.Fatalf("expected beanie suggestion, got %s", body)
	}

	// no query term yields an empty list, not an error
	req2 := httptest.NewRequest("GET", "/api/v1/products/suggestions", nil)
	res2, _ := app.Test(req2)
	body2, _ := io.ReadAll(res2.Body)
	if strings.TrimSpace(string(body2)) != "[]" {
		t.Fatalf("expected empty suggestions, got %s", body2)
	}
}

func TestGetProduct(t *testing.T) {
	app := newTestApp(sampleCatalog())

	req := httptest.NewRequest("GET", "/api/v1/product/3", nil)
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != 200 {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}

	req2 := httptest.NewRequest("GET", "/api/v1/product/999", nil)
	res2, _ := app.Test(req2)
	if res2.StatusCode != fiber.StatusNotFound {
		t.Fatalf("expected 404 got %d", res2.StatusCode)
	}
}

func TestCreateProduct_Validation(t *testing.T) {
	app := newTestApp(nil)

	req := httptest.NewRequest("POST", "/api/v1/products", strings.NewReader(`{"name":"","price":-5,"category":""}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("expected 400 got %d", res.StatusCode)
	}
	body, _ := io.ReadAll(res.Body)
	for _, field := range []string{"name", "price", "category"} {
		if !strings.Contains(string(body), field) {
			t.Fatalf("expected validation error for %q, got %s", field, body)
		}
	}
}

func TestCreateAndUpdateProduct(t *testing.T) {
	app := newTestApp(nil)

	req := httptest.NewRequest("POST", "/api/v1/products", strings.NewReader(`{"name":"Scarf","price":19.99,"category":"Accessories","stock":3}`))
	req.Header.Set("Content-Type", "application/json")
	res, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	if res.StatusCode != fiber.StatusCreated {
		t.Fatalf("expected 201 got %d", res.StatusCode)
	}

	var created Product
	if err := json.NewDecoder(res.Body).Decode(&created); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if created.ID == 0 || created.CreatedAt == "" {
		t.Fatalf("expected assigned id and timestamp, got %+v", created)
	}

	req2 := httptest.NewRequest("PUT", "/api/v1/product/1", strings.NewReader(`{"name":"Silk Scarf","price":29.99,"category":"Accessories","stock":3}`))
	req2.Header.Set("Content-Type", "application/json")
	res2, _ := app.Test(req2)
	if res2.StatusCode != 200 {
		t.Fatalf("expected 200 got %d", res2.StatusCode)
	}
	body, _ := io.ReadAll(res2.Body)
	if !strings.Contains(string(body), "Silk Scarf") {
		t.Fatalf("update not reflected: %s", body)
	}
}
