package catalog

import (
	"context"
	"sync"
)

// MemoryRepository keeps the catalog in a slice, preserving insertion order.
type MemoryRepository struct {
	mu       sync.RWMutex
	products []Product
}

func NewMemoryRepository(products []Product) *MemoryRepository {
	r := &MemoryRepository{products: make([]Product, 0, len(products))}
	for _, p := range products {
		r.products = append(r.products, p.clone())
	}
	return r
}

// Clone returns an independent working copy of the repository.
func (r *MemoryRepository) Clone() *MemoryRepository {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return NewMemoryRepository(r.products)
}

func (r *MemoryRepository) List(_ context.Context) ([]Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, p.clone())
	}
	return out, nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		return r.products[i].clone(), nil
	}
	return Product{}, ErrProductNotFound
}

func (r *MemoryRepository) Add(_ context.Context, p Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexOf(p.ID) >= 0 {
		return ErrProductExists
	}
	r.products = append(r.products, p.clone())
	return nil
}

func (r *MemoryRepository) Remove(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return ErrProductNotFound
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	return nil
}

func (r *MemoryRepository) SetInStock(_ context.Context, id string, inStock bool) (Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return Product{}, ErrProductNotFound
	}
	r.products[i].InStock = inStock
	return r.products[i].clone(), nil
}

func (r *MemoryRepository) indexOf(id string) int {
	for i := range r.products {
		if r.products[i].ID == id {
			return i
		}
	}
	return -1
}
