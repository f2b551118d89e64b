package product

import "sort"

// Facets are the selectable filter options derived from the full catalog:
// distinct categories, distinct non-empty brands and the global price bounds.
// They seed the filter panel once per catalog load, not per filter change.
type Facets struct {
	Categories []string `json:"categories"`
	Brands     []string `json:"brands"`
	PriceMin   float64  `json:"priceMin"`
	PriceMax   float64  `json:"priceMax"`
}

// DeriveFacets computes the facets in a single pass over the product list.
func DeriveFacets(products []Product) Facets {
	f := Facets{Categories: []string{}, Brands: []string{}}
	if len(products) == 0 {
		return f
	}

	catSeen := map[string]bool{}
	brandSeen := map[string]bool{}
	f.PriceMin = products[0].Price
	f.PriceMax = products[0].Price

	for _, p := range products {
		if p.Category != "" && !catSeen[p.Category] {
			catSeen[p.Category] = true
			f.Categories = append(f.Categories, p.Category)
		}
		if p.Brand != nil && *p.Brand != "" && !brandSeen[*p.Brand] {
			brandSeen[*p.Brand] = true
			f.Brands = append(f.Brands, *p.Brand)
		}
		if p.Price < f.PriceMin {
			f.PriceMin = p.Price
		}
		if p.Price > f.PriceMax {
			f.PriceMax = p.Price
		}
	}

	sort.Strings(f.Categories)
	sort.Strings(f.Brands)
	return f
}
