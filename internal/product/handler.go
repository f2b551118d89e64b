package product

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/products", h.queryProducts)
	app.Get("/api/v1/products/facets", h.getFacets)
	app.Get("/api/v1/products/featured", h.getFeatured)
	app.Get("/api/v1/products/suggestions", h.getSuggestions)
	app.Get("/api/v1/product/:id<[0-9]+>", h.getProduct)
}

// RegisterAdminRoutes accepts a Router so callers can mount the routes on a
// group wrapped with an admin check.
func (h *Handler) RegisterAdminRoutes(r fiber.Router) {
	r.Post("/api/v1/products", h.createProduct)
	r.Put("/api/v1/product/:id<[0-9]+>", h.updateProduct)
	r.Delete("/api/v1/product/:id<[0-9]+>", h.deleteProduct)
}

// queryProducts serves the product listing page. Filters arrive as query
// parameters: search, category, brand, minPrice, maxPrice, rating, inStock,
// sort and page. Missing price bounds default to the catalog-wide range so an
// unfiltered request returns the whole catalog, reordered only by sort.
func (h *Handler) queryProducts(c *fiber.Ctx) error {
	facets := h.service.Facets()
	filters := DefaultFilters(facets)

	if cat := c.Query("category"); cat != "" {
		filters.Categories = []string{cat}
	}
	if brand := c.Query("brand"); brand != "" {
		filters.Brands = []string{brand}
	}
	if v := c.Query("minPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filters.PriceRange[0] = f
		}
	}
	if v := c.Query("maxPrice"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			filters.PriceRange[1] = f
		}
	}
	if filters.PriceRange[0] > filters.PriceRange[1] {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "minPrice must not exceed maxPrice"})
	}
	if v := c.Query("rating"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			filters.Rating = f
		}
	}
	if c.Query("inStock") == "true" {
		filters.InStock = true
	}

	page := 1
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			page = n
		}
	}

	result := h.service.Query(Query{
		Search:   c.Query("search"),
		Filters:  filters,
		Sort:     ParseSortKey(c.Query("sort")),
		Page:     page,
		PageSize: DefaultPageSize,
	})
	return c.JSON(result)
}

func (h *Handler) getFacets(c *fiber.Ctx) error {
	return c.JSON(h.service.Facets())
}

func (h *Handler) getFeatured(c *fiber.Ctx) error {
	limit := 8
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	return c.JSON(h.service.Featured(limit))
}

func (h *Handler) getSuggestions(c *fiber.Ctx) error {
	term := c.Query("q")
	if term == "" {
		return c.JSON([]Product{})
	}
	limit := 5
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	suggestions, err := h.service.Suggest(term, limit)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "Failed to load suggestions"})
	}
	return c.JSON(suggestions)
}

func (h *Handler) getProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}

	p, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	return c.JSON(p)
}

func validateProductPayload(p *Product) map[string]string {
	errs := map[string]string{}
	if p.Name == "" {
		errs["name"] = "name is required"
	}
	if p.Price < 0 {
		errs["price"] = "price must be >= 0"
	}
	if p.Category == "" {
		errs["category"] = "category is required"
	}
	if p.Stock < 0 {
		errs["stock"] = "stock must be >= 0"
	}
	if p.Rating < 0 || p.Rating > 5 {
		errs["rating"] = "rating must be between 0 and 5"
	}
	return errs
}

func (h *Handler) createProduct(c *fiber.Ctx) error {
	p := new(Product)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if ves := validateProductPayload(p); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	if p.CreatedAt == "" {
		p.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	created, err := h.service.Create(*p)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	p := new(Product)
	if err := c.BodyParser(p); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if ves := validateProductPayload(p); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	updated, err := h.service.Update(id, *p)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	return c.JSON(updated)
}

func (h *Handler) deleteProduct(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	if err := h.service.Delete(id); err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Product not found")
	}
	return c.SendString("Product deleted")
}
