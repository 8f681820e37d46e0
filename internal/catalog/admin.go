package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// NewProduct is the admin "add product" form.
type NewProduct struct {
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Subcategory string          `json:"subcategory"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Details     []string        `json:"details"`
	Images      []string        `json:"images"`
	Featured    bool            `json:"featured"`
	InStock     bool            `json:"inStock"`
	Materials   []string        `json:"materials"`
}

// Admin manages the admin console's working copy of the catalog. Its
// mutations never reach the storefront repository.
type Admin struct {
	repo Repository
	now  func() time.Time
}

func NewAdmin(workingCopy Repository) *Admin {
	return &Admin{repo: workingCopy, now: time.Now}
}

func (a *Admin) List(ctx context.Context) ([]Product, error) {
	return a.repo.List(ctx)
}

func (a *Admin) Add(ctx context.Context, in NewProduct) (Product, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Category) == "" {
		return Product{}, fmt.Errorf("%w: name and category are required", ErrInvalidProduct)
	}
	if in.Price.IsNegative() {
		return Product{}, fmt.Errorf("%w: price must not be negative", ErrInvalidProduct)
	}
	if len(in.Images) == 0 {
		return Product{}, fmt.Errorf("%w: at least one image is required", ErrInvalidProduct)
	}
	p := Product{
		ID:          uuid.NewString(),
		Name:        strings.TrimSpace(in.Name),
		Category:    strings.TrimSpace(in.Category),
		Subcategory: in.Subcategory,
		Price:       in.Price,
		Description: in.Description,
		Details:     in.Details,
		Images:      in.Images,
		Featured:    in.Featured,
		InStock:     in.InStock,
		Materials:   cleanMaterials(in.Materials),
		CreatedAt:   a.now().UTC(),
	}
	if err := a.repo.Add(ctx, p); err != nil {
		return Product{}, err
	}
	return p, nil
}

func (a *Admin) Remove(ctx context.Context, id string) error {
	return a.repo.Remove(ctx, id)
}

// ToggleStock flips InStock and returns the updated product.
func (a *Admin) ToggleStock(ctx context.Context, id string) (Product, error) {
	p, err := a.repo.Get(ctx, id)
	if err != nil {
		return Product{}, err
	}
	return a.repo.SetInStock(ctx, id, !p.InStock)
}

func cleanMaterials(in []string) []string {
	out := make([]string, 0, len(in))
	for _, m := range in {
		if t := strings.TrimSpace(m); t != "" {
			out = append(out, t)
		}
	}
	return out
}
