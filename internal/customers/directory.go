package customers

import (
	"context"
	"errors"
	"sort"
	"sync"

	"github.com/ariefcatur/larana-store/internal/orders"
)

const DefaultRecentLimit = 5

var ErrCustomerNotFound = errors.New("customer not found")

// Directory is the in-memory customer list. Checkout registers each new
// customer without deduplicating by email.
type Directory struct {
	mu        sync.RWMutex
	customers []orders.Customer
}

func NewDirectory(seed []orders.Customer) *Directory {
	return &Directory{customers: append([]orders.Customer(nil), seed...)}
}

func (d *Directory) Register(_ context.Context, c orders.Customer) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.customers = append(d.customers, c)
	return nil
}

func (d *Directory) List(_ context.Context) ([]orders.Customer, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]orders.Customer{}, d.customers...), nil
}

// GetByID returns the first customer registered under id.
func (d *Directory) GetByID(_ context.Context, id string) (orders.Customer, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, c := range d.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return orders.Customer{}, ErrCustomerNotFound
}

// Recent returns up to limit customers, newest first.
func (d *Directory) Recent(ctx context.Context, limit int) ([]orders.Customer, error) {
	if limit <= 0 {
		limit = DefaultRecentLimit
	}
	all, _ := d.List(ctx)
	sort.SliceStable(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}
