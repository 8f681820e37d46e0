package catalog

import (
	"math"
	"slices"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

const DefaultRelatedLimit = 4

type SortOption string

const (
	SortNewest       SortOption = "newest"
	SortPriceLowHigh SortOption = "price-low-high"
	SortPriceHighLow SortOption = "price-high-low"
	SortNameAZ       SortOption = "name-a-z"
	SortNameZA       SortOption = "name-z-a"
)

// Query mirrors the shop page controls. Zero values mean "no filter";
// Category "all" is treated the same as empty.
type Query struct {
	Search    string
	Category  string
	MaxPrice  *decimal.Decimal
	Materials []string
	Sort      SortOption
}

func FindByID(products []Product, id string) (Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// ByCategory matches the category case-insensitively.
func ByCategory(products []Product, category string) []Product {
	out := []Product{}
	for _, p := range products {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out
}

// Search returns products whose name, category or description contains q.
func Search(products []Product, q string) []Product {
	term := strings.ToLower(q)
	out := []Product{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Category), term) ||
			strings.Contains(strings.ToLower(p.Description), term) {
			out = append(out, p)
		}
	}
	return out
}

// Related returns up to limit products sharing the category of id, in
// catalog order. Unknown ids yield an empty list.
func Related(products []Product, id string, limit int) []Product {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}
	out := []Product{}
	current, ok := FindByID(products, id)
	if !ok {
		return out
	}
	for _, p := range products {
		if len(out) == limit {
			break
		}
		if p.ID != id && p.Category == current.Category {
			out = append(out, p)
		}
	}
	return out
}

func Featured(products []Product) []Product {
	out := []Product{}
	for _, p := range products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Filter applies search, category, price cap and material filters, then sorts.
func Filter(products []Product, q Query) []Product {
	result := products
	if q.Search != "" {
		result = Search(result, q.Search)
	}
	out := make([]Product, 0, len(result))
	for _, p := range result {
		if q.Category != "" && !strings.EqualFold(q.Category, "all") && !strings.EqualFold(p.Category, q.Category) {
			continue
		}
		if q.MaxPrice != nil && p.Price.GreaterThan(*q.MaxPrice) {
			continue
		}
		if len(q.Materials) > 0 && !hasAnyMaterial(p, q.Materials) {
			continue
		}
		out = append(out, p)
	}
	sortProducts(out, q.Sort)
	return out
}

func hasAnyMaterial(p Product, want []string) bool {
	for _, m := range p.Materials {
		if slices.Contains(want, m) {
			return true
		}
	}
	return false
}

func sortProducts(ps []Product, opt SortOption) {
	switch opt {
	case SortPriceLowHigh:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price.LessThan(ps[j].Price) })
	case SortPriceHighLow:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price.GreaterThan(ps[j].Price) })
	case SortNameAZ:
		sort.SliceStable(ps, func(i, j int) bool { return strings.ToLower(ps[i].Name) < strings.ToLower(ps[j].Name) })
	case SortNameZA:
		sort.SliceStable(ps, func(i, j int) bool { return strings.ToLower(ps[i].Name) > strings.ToLower(ps[j].Name) })
	default:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].CreatedAt.After(ps[j].CreatedAt) })
	}
}

// Facets describes the filter controls available for a product list.
type Facets struct {
	Categories     []string        `json:"categories"`
	Materials      []string        `json:"materials"`
	MaxPrice       decimal.Decimal `json:"maxPrice"`
	CategoryCounts map[string]int  `json:"categoryCounts"`
}

func FacetsOf(products []Product) Facets {
	f := Facets{
		Categories:     []string{},
		Materials:      []string{},
		MaxPrice:       decimal.Zero,
		CategoryCounts: map[string]int{},
	}
	for _, p := range products {
		if _, seen := f.CategoryCounts[p.Category]; !seen {
			f.Categories = append(f.Categories, p.Category)
		}
		f.CategoryCounts[p.Category]++
		for _, m := range p.Materials {
			if m != "" && !slices.Contains(f.Materials, m) {
				f.Materials = append(f.Materials, m)
			}
		}
		if p.Price.GreaterThan(f.MaxPrice) {
			f.MaxPrice = p.Price
		}
	}
	f.MaxPrice = decimal.NewFromFloat(math.Ceil(f.MaxPrice.InexactFloat64()))
	return f
}
