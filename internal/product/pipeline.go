package product

import (
	"math"
	"sort"
	"strings"
)

// DefaultPageSize matches the storefront's product grid (12 cards per page).
const DefaultPageSize = 12

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortName       SortKey = "name"
	SortPriceLow   SortKey = "price-low"
	SortPriceHigh  SortKey = "price-high"
	SortRating     SortKey = "rating"
	SortNewest     SortKey = "newest"
	SortPopularity SortKey = "popularity"
)

// ParseSortKey maps a query-string value onto a SortKey, defaulting to name.
func ParseSortKey(s string) SortKey {
	switch SortKey(s) {
	case SortPriceLow, SortPriceHigh, SortRating, SortNewest, SortPopularity:
		return SortKey(s)
	default:
		return SortName
	}
}

// FilterState holds the storefront filter panel selections. Empty category or
// brand sets mean "all"; rating 0 means no rating filter.
type FilterState struct {
	Categories []string   `json:"categories"`
	Brands     []string   `json:"brands"`
	PriceRange [2]float64 `json:"priceRange"`
	Rating     float64    `json:"rating"`
	InStock    bool       `json:"inStock"`
}

// DefaultFilters returns the cleared filter state for the given facets: full
// price range, no category/brand/rating/stock restrictions.
func DefaultFilters(f Facets) FilterState {
	return FilterState{
		Categories: []string{},
		Brands:     []string{},
		PriceRange: [2]float64{f.PriceMin, f.PriceMax},
	}
}

func (f FilterState) matches(p Product) bool {
	if len(f.Categories) > 0 && !contains(f.Categories, p.Category) {
		return false
	}
	if len(f.Brands) > 0 {
		if p.Brand == nil || !contains(f.Brands, *p.Brand) {
			return false
		}
	}
	if p.Price < f.PriceRange[0] || p.Price > f.PriceRange[1] {
		return false
	}
	if f.Rating > 0 && p.Rating < f.Rating {
		return false
	}
	if f.InStock && p.Stock <= 0 {
		return false
	}
	return true
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}

// Query is one catalog page request: free-text search, filters, sort and page.
type Query struct {
	Search   string
	Filters  FilterState
	Sort     SortKey
	Page     int
	PageSize int
}

// Result is the visible page plus the counts the pagination UI needs.
type Result struct {
	Items      []Product `json:"items"`
	TotalCount int       `json:"totalCount"`
	TotalPages int       `json:"totalPages"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
}

// Run executes the catalog query pipeline: search, filter, stable sort, then
// paginate. It is pure — identical inputs produce identical output including
// element order. A page past the end yields an empty page, not an error;
// clamping page requests is the caller's job.
func Run(products []Product, q Query) Result {
	if q.PageSize <= 0 {
		q.PageSize = DefaultPageSize
	}
	if q.Page <= 0 {
		q.Page = 1
	}

	filtered := make([]Product, 0, len(products))
	term := strings.ToLower(strings.TrimSpace(q.Search))
	for _, p := range products {
		if term != "" && !matchesSearch(p, term) {
			continue
		}
		if !q.Filters.matches(p) {
			continue
		}
		filtered = append(filtered, p)
	}

	sortProducts(filtered, q.Sort)

	total := len(filtered)
	pages := int(math.Ceil(float64(total) / float64(q.PageSize)))

	start := (q.Page - 1) * q.PageSize
	end := start + q.PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Result{
		Items:      filtered[start:end],
		TotalCount: total,
		TotalPages: pages,
		Page:       q.Page,
		PageSize:   q.PageSize,
	}
}

// matchesSearch checks the term as a case-insensitive substring across name,
// description, category and brand (logical OR).
func matchesSearch(p Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Category), term) {
		return true
	}
	if p.Brand != nil && strings.Contains(strings.ToLower(*p.Brand), term) {
		return true
	}
	return false
}

// sortProducts stable-sorts in place so repeated renders are deterministic:
// ties preserve the original relative order.
func sortProducts(products []Product, key SortKey) {
	sort.SliceStable(products, func(i, j int) bool {
		a, b := products[i], products[j]
		switch key {
		case SortPriceLow:
			return a.Price < b.Price
		case SortPriceHigh:
			return a.Price > b.Price
		case SortRating:
			return a.Rating > b.Rating
		case SortPopularity:
			return a.Popularity > b.Popularity
		case SortNewest:
			// RFC3339 strings compare chronologically
			return a.CreatedAt > b.CreatedAt
		default:
			return a.Name < b.Name
		}
	})
}
