package catalog

import (
	"context"
	"errors"
)

// Catalog answers storefront queries against a Repository.
type Catalog struct {
	repo Repository
}

func New(repo Repository) *Catalog {
	return &Catalog{repo: repo}
}

func (c *Catalog) All(ctx context.Context) ([]Product, error) {
	return c.repo.List(ctx)
}

func (c *Catalog) GetByID(ctx context.Context, id string) (Product, bool, error) {
	p, err := c.repo.Get(ctx, id)
	if errors.Is(err, ErrProductNotFound) {
		return Product{}, false, nil
	}
	if err != nil {
		return Product{}, false, err
	}
	return p, true, nil
}

func (c *Catalog) ByCategory(ctx context.Context, category string) ([]Product, error) {
	ps, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return ByCategory(ps, category), nil
}

func (c *Catalog) Search(ctx context.Context, q string) ([]Product, error) {
	ps, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Search(ps, q), nil
}

func (c *Catalog) Related(ctx context.Context, id string, limit int) ([]Product, error) {
	ps, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Related(ps, id, limit), nil
}

func (c *Catalog) Featured(ctx context.Context) ([]Product, error) {
	ps, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Featured(ps), nil
}

func (c *Catalog) Browse(ctx context.Context, q Query) ([]Product, error) {
	ps, err := c.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(ps, q), nil
}

func (c *Catalog) Facets(ctx context.Context) (Facets, error) {
	ps, err := c.repo.List(ctx)
	if err != nil {
		return Facets{}, err
	}
	return FacetsOf(ps), nil
}
