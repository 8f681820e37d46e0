package catalog

import (
	"context"
	"errors"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrProductExists   = errors.New("product already exists")
	ErrInvalidProduct  = errors.New("invalid product")
)

// Repository is the catalog persistence port. List returns products in
// catalog order.
type Repository interface {
	List(ctx context.Context) ([]Product, error)
	Get(ctx context.Context, id string) (Product, error)
	Add(ctx context.Context, p Product) error
	Remove(ctx context.Context, id string) error
	SetInStock(ctx context.Context, id string, inStock bool) (Product, error)
}
