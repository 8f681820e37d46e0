package checkout

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/ariefcatur/larana-store/internal/cart"
	"github.com/ariefcatur/larana-store/internal/customers"
	"github.com/ariefcatur/larana-store/internal/events"
	"github.com/ariefcatur/larana-store/internal/metrics"
	"github.com/ariefcatur/larana-store/internal/orders"
)

type Service struct {
	Carts       *cart.Service
	Orders      *orders.Store
	Customers   *customers.Directory
	Events      events.Publisher
	IDs         IDGenerator
	ServiceName string

	now func() time.Time
}

func NewService(carts *cart.Service, store *orders.Store, dir *customers.Directory, pub events.Publisher, serviceName string) *Service {
	if pub == nil {
		pub = events.Noop{}
	}
	return &Service{
		Carts:       carts,
		Orders:      store,
		Customers:   dir,
		Events:      pub,
		IDs:         UUIDs{},
		ServiceName: serviceName,
		now:         time.Now,
	}
}

// Checkout validates the form, turns the client's cart into an order,
// stores it and clears the cart. Event publishing is best effort. When the
// order was stored but the cart could not be cleared, the order is returned
// together with an error wrapping ErrCartNotCleared.
func (s *Service) Checkout(ctx context.Context, clientID string, f Form) (orders.Order, error) {
	if err := Validate(f); err != nil {
		return orders.Order{}, err
	}

	m, release, err := s.Carts.Manager(ctx, clientID, nil)
	if err != nil {
		return orders.Order{}, err
	}
	defer release()
	if m.IsEmpty() {
		return orders.Order{}, ErrEmptyCart
	}

	o, err := Build(m.Lines(), f, s.now().UTC(), s.IDs)
	if err != nil {
		return orders.Order{}, err
	}
	if o, err = s.Orders.Create(ctx, o); err != nil {
		return orders.Order{}, err
	}
	metrics.RecordOrderPlaced()

	if s.Customers != nil {
		if err := s.Customers.Register(ctx, o.Customer); err != nil {
			log.Printf("checkout: register customer %s: %v", o.Customer.ID, err)
		}
	}
	var clearErr error
	if err := m.ClearCart(ctx); err != nil {
		log.Printf("checkout: clear cart %s: %v", clientID, err)
		clearErr = fmt.Errorf("%w: %v", ErrCartNotCleared, err)
	}

	env, err := orders.NewEnvelope(orders.EventOrderPlaced, s.ServiceName, o.ID, orders.OrderPlacedPayload{Order: o})
	if err == nil {
		err = s.Events.Publish(ctx, orders.TopicOrderPlaced, env)
	}
	if err != nil {
		log.Printf("checkout: publish %s for %s: %v", orders.TopicOrderPlaced, o.ID, err)
	}
	return o, clearErr
}
