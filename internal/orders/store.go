package orders

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Store is the order store used by checkout and the admin console.
type Store struct {
	repo   Repository
	strict bool
}

type Option func(*Store)

// WithStrictTransitions makes UpdateStatus reject moves that the admin
// workflow does not allow.
func WithStrictTransitions(strict bool) Option {
	return func(s *Store) { s.strict = strict }
}

func NewStore(repo Repository, opts ...Option) *Store {
	s := &Store{repo: repo}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Create appends the order and echoes it back unchanged.
func (s *Store) Create(ctx context.Context, o Order) (Order, error) {
	if len(o.Items) == 0 {
		return Order{}, errors.New("order has no items")
	}
	if err := s.repo.Append(ctx, o); err != nil {
		return Order{}, fmt.Errorf("append order %s: %w", o.ID, err)
	}
	return o, nil
}

func (s *Store) GetByID(ctx context.Context, id string) (Order, bool, error) {
	o, err := s.repo.Get(ctx, id)
	if errors.Is(err, ErrOrderNotFound) {
		return Order{}, false, nil
	}
	if err != nil {
		return Order{}, false, err
	}
	return o, true, nil
}

func (s *Store) ByCustomer(ctx context.Context, customerID string) ([]Order, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := []Order{}
	for _, o := range all {
		if o.Customer.ID == customerID {
			out = append(out, o)
		}
	}
	return out, nil
}

// Recent returns up to limit orders, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Order, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })
	if limit >= 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

// List returns orders newest first, optionally restricted to one status.
// An empty filter or "all" matches every order.
func (s *Store) List(ctx context.Context, filter string) ([]Order, error) {
	all, err := s.Recent(ctx, -1)
	if err != nil {
		return nil, err
	}
	if filter == "" || strings.EqualFold(filter, "all") {
		return all, nil
	}
	want := Status(strings.ToLower(filter))
	if !want.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, filter)
	}
	out := []Order{}
	for _, o := range all {
		if o.Status == want {
			out = append(out, o)
		}
	}
	return out, nil
}

// UpdateStatus overwrites the order status. Unless the store is strict any
// valid status is accepted from any other.
func (s *Store) UpdateStatus(ctx context.Context, id string, status Status) (Order, Status, error) {
	if !status.Valid() {
		return Order{}, "", fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	var from Status
	guard := func(current Order) error {
		from = current.Status
		if s.strict && !CanTransition(current.Status, status) {
			return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, current.Status, status)
		}
		return nil
	}
	o, err := s.repo.SetStatus(ctx, id, status, guard)
	if err != nil {
		return Order{}, "", err
	}
	return o, from, nil
}

func (s *Store) UpdatePaymentStatus(ctx context.Context, id string, status PaymentStatus) (Order, error) {
	if !status.Valid() {
		return Order{}, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	return s.repo.SetPaymentStatus(ctx, id, status)
}

type Stats struct {
	OrderCount        int             `json:"orderCount"`
	TotalRevenue      decimal.Decimal `json:"totalRevenue"`
	AverageOrderValue decimal.Decimal `json:"averageOrderValue"`
	ByStatus          map[Status]int  `json:"byStatus"`
}

// Stats summarises every order for the admin dashboard.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	st := Stats{
		OrderCount:        len(all),
		TotalRevenue:      decimal.Zero,
		AverageOrderValue: decimal.Zero,
		ByStatus:          map[Status]int{},
	}
	for _, status := range Statuses {
		st.ByStatus[status] = 0
	}
	for _, o := range all {
		st.TotalRevenue = st.TotalRevenue.Add(o.TotalAmount)
		st.ByStatus[o.Status]++
	}
	if len(all) > 0 {
		st.AverageOrderValue = st.TotalRevenue.Div(decimal.NewFromInt(int64(len(all)))).Round(2)
	}
	return st, nil
}
