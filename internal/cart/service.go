package cart

import (
	"context"
	"fmt"
	"sync"

	"github.com/ariefcatur/larana-store/internal/catalog"
	"github.com/ariefcatur/larana-store/internal/metrics"
	"github.com/ariefcatur/larana-store/internal/redisx"
	"github.com/ariefcatur/larana-store/internal/storage"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

// View is a read-only snapshot of a client's cart.
type View struct {
	Lines         []Line          `json:"lines"`
	Subtotal      decimal.Decimal `json:"subtotal"`
	ItemCount     int             `json:"itemCount"`
	Notifications []Notification  `json:"notifications,omitempty"`
}

func viewOf(m *Manager, rec *Recorder) View {
	v := View{Lines: m.Lines(), Subtotal: m.Subtotal(), ItemCount: m.ItemCount()}
	if rec != nil {
		v.Notifications = rec.Notifications
	}
	return v
}

// Service manages per-client carts for the HTTP surface. Mutations for one
// client are serialized; concurrent reads of the same cart share one load.
type Service struct {
	store   storage.Store
	catalog *catalog.Catalog

	mu    sync.Mutex
	locks map[string]*clientLock
	sfg   singleflight.Group
}

// clientLock is dropped from the map once no caller holds or waits on it.
type clientLock struct {
	sync.Mutex
	refs int
}

func NewService(store storage.Store, c *catalog.Catalog) *Service {
	return &Service{store: store, catalog: c, locks: map[string]*clientLock{}}
}

func Key(clientID string) string { return fmt.Sprintf(redisx.KeyCart, clientID) }

func (s *Service) lock(clientID string) func() {
	s.mu.Lock()
	l, ok := s.locks[clientID]
	if !ok {
		l = &clientLock{}
		s.locks[clientID] = l
	}
	l.refs++
	s.mu.Unlock()

	l.Lock()
	return func() {
		l.Unlock()
		s.mu.Lock()
		if l.refs--; l.refs == 0 {
			delete(s.locks, clientID)
		}
		s.mu.Unlock()
	}
}

// held reports how many client locks are currently tracked.
func (s *Service) held() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.locks)
}

func (s *Service) Get(ctx context.Context, clientID string) (View, error) {
	v, err, _ := s.sfg.Do(clientID, func() (interface{}, error) {
		m, err := Load(ctx, s.store, Key(clientID), nil)
		if err != nil {
			return nil, err
		}
		return viewOf(m, nil), nil
	})
	if err != nil {
		return View{}, err
	}
	return v.(View), nil
}

// Manager loads the client's cart for exclusive use; release must be
// called when done. On error nothing is held.
func (s *Service) Manager(ctx context.Context, clientID string, n Notifier) (m *Manager, release func(), err error) {
	unlock := s.lock(clientID)
	m, err = Load(ctx, s.store, Key(clientID), n)
	if err != nil {
		unlock()
		return nil, nil, err
	}
	return m, unlock, nil
}

func (s *Service) mutate(ctx context.Context, op, clientID string, fn func(*Manager) error) (View, error) {
	rec := &Recorder{}
	m, release, err := s.Manager(ctx, clientID, rec)
	if err != nil {
		metrics.RecordCartOperation(op, false)
		return View{}, err
	}
	defer release()
	err = fn(m)
	metrics.RecordCartOperation(op, err == nil)
	if err != nil {
		return View{}, err
	}
	return viewOf(m, rec), nil
}

// Add resolves productID against the catalog and adds it to the cart.
func (s *Service) Add(ctx context.Context, clientID, productID string, quantity int) (View, error) {
	p, ok, err := s.catalog.GetByID(ctx, productID)
	if err != nil {
		return View{}, err
	}
	if !ok {
		metrics.RecordCartOperation("add", false)
		return View{}, catalog.ErrProductNotFound
	}
	return s.mutate(ctx, "add", clientID, func(m *Manager) error {
		return m.AddToCart(ctx, &p, quantity)
	})
}

func (s *Service) UpdateQuantity(ctx context.Context, clientID, productID string, quantity int) (View, error) {
	return s.mutate(ctx, "update", clientID, func(m *Manager) error {
		return m.UpdateQuantity(ctx, productID, quantity)
	})
}

func (s *Service) Remove(ctx context.Context, clientID, productID string) (View, error) {
	return s.mutate(ctx, "remove", clientID, func(m *Manager) error {
		return m.RemoveFromCart(ctx, productID)
	})
}

func (s *Service) Clear(ctx context.Context, clientID string) (View, error) {
	return s.mutate(ctx, "clear", clientID, func(m *Manager) error {
		return m.ClearCart(ctx)
	})
}
