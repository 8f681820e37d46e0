package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	// prices go over the wire as numbers, not quoted strings
	decimal.MarshalJSONWithoutQuotes = true
}

type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory,omitempty"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Details     []string        `json:"details,omitempty"`
	Images      []string        `json:"images"`
	Featured    bool            `json:"featured,omitempty"`
	InStock     bool            `json:"inStock"`
	Materials   []string        `json:"materials,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// clone returns a deep copy so callers cannot alias repository slices.
func (p Product) clone() Product {
	p.Details = append([]string(nil), p.Details...)
	p.Images = append([]string(nil), p.Images...)
	p.Materials = append([]string(nil), p.Materials...)
	return p
}
