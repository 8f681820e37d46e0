package orders

import (
	"context"
	"sync"
)

type MemoryRepository struct {
	mu     sync.RWMutex
	orders []Order
	index  map[string]int
}

func NewMemoryRepository(seed []Order) *MemoryRepository {
	r := &MemoryRepository{index: map[string]int{}}
	for _, o := range seed {
		r.index[o.ID] = len(r.orders)
		r.orders = append(r.orders, o.clone())
	}
	return r
}

func (r *MemoryRepository) Append(_ context.Context, o Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.index[o.ID]; ok {
		return ErrOrderExists
	}
	r.index[o.ID] = len(r.orders)
	r.orders = append(r.orders, o.clone())
	return nil
}

func (r *MemoryRepository) Get(_ context.Context, id string) (Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[id]
	if !ok {
		return Order{}, ErrOrderNotFound
	}
	return r.orders[i].clone(), nil
}

func (r *MemoryRepository) List(_ context.Context) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, o.clone())
	}
	return out, nil
}

func (r *MemoryRepository) SetStatus(_ context.Context, id string, s Status, guard StatusGuard) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[id]
	if !ok {
		return Order{}, ErrOrderNotFound
	}
	if guard != nil {
		if err := guard(r.orders[i].clone()); err != nil {
			return Order{}, err
		}
	}
	r.orders[i].Status = s
	return r.orders[i].clone(), nil
}

func (r *MemoryRepository) SetPaymentStatus(_ context.Context, id string, s PaymentStatus) (Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i, ok := r.index[id]
	if !ok {
		return Order{}, ErrOrderNotFound
	}
	r.orders[i].PaymentStatus = s
	return r.orders[i].clone(), nil
}
