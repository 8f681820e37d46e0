package cart

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/ariefcatur/larana-store/internal/catalog"
	"github.com/ariefcatur/larana-store/internal/storage"
	"github.com/shopspring/decimal"
)

// Line holds a product reference and a quantity of at least 1.
type Line struct {
	Product  *catalog.Product `json:"product"`
	Quantity int              `json:"quantity"`
}

func (l Line) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

type Notification struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

type Notifier interface {
	Notify(Notification)
}

type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// Recorder collects notifications in order.
type Recorder struct {
	Notifications []Notification
}

func (r *Recorder) Notify(n Notification) { r.Notifications = append(r.Notifications, n) }

// Manager is one client's cart. Every mutation writes the full line list
// to the store before returning.
type Manager struct {
	store    storage.Store
	key      string
	notifier Notifier
	lines    []Line
}

// Load restores the cart stored under key. A missing or undecodable value
// yields an empty cart; any other storage error is returned so callers never
// overwrite a cart they could not read.
func Load(ctx context.Context, store storage.Store, key string, notifier Notifier) (*Manager, error) {
	m := &Manager{store: store, key: key, notifier: notifier}
	var lines []Line
	err := storage.GetJSON(ctx, store, key, &lines)
	switch {
	case err == nil:
		m.lines = sanitize(lines)
	case errors.Is(err, storage.ErrNotFound):
	case errors.Is(err, storage.ErrCorrupt):
		log.Printf("cart: load %s: %v", key, err)
	default:
		return nil, fmt.Errorf("load cart %s: %w", key, err)
	}
	return m, nil
}

// sanitize drops entries that cannot form a valid line and merges duplicates.
func sanitize(in []Line) []Line {
	out := make([]Line, 0, len(in))
	for _, l := range in {
		if l.Product == nil || l.Quantity < 1 {
			continue
		}
		if i := indexOf(out, l.Product.ID); i >= 0 {
			out[i].Quantity += l.Quantity
			continue
		}
		out = append(out, l)
	}
	return out
}

func indexOf(lines []Line, productID string) int {
	for i := range lines {
		if lines[i].Product.ID == productID {
			return i
		}
	}
	return -1
}

// AddToCart increments an existing line or appends a new one. Quantities
// below 1 count as 1. Stock is not checked.
func (m *Manager) AddToCart(ctx context.Context, p *catalog.Product, quantity int) error {
	if p == nil {
		return errors.New("cart: nil product")
	}
	if quantity < 1 {
		quantity = 1
	}
	if i := indexOf(m.lines, p.ID); i >= 0 {
		m.lines[i].Quantity += quantity
		m.notify("Item already in cart", fmt.Sprintf("Increased %s quantity", p.Name))
	} else {
		m.lines = append(m.lines, Line{Product: p, Quantity: quantity})
		m.notify("Added to cart", fmt.Sprintf("%s has been added to your cart", p.Name))
	}
	return m.persist(ctx)
}

// RemoveFromCart deletes the line for productID. Absent ids are a silent no-op.
func (m *Manager) RemoveFromCart(ctx context.Context, productID string) error {
	i := indexOf(m.lines, productID)
	if i < 0 {
		return nil
	}
	m.lines = append(m.lines[:i], m.lines[i+1:]...)
	m.notify("Item removed", "The item has been removed from your cart")
	return m.persist(ctx)
}

// UpdateQuantity sets the quantity of an existing line; quantity < 1 is ignored.
func (m *Manager) UpdateQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity < 1 {
		return nil
	}
	i := indexOf(m.lines, productID)
	if i < 0 {
		return nil
	}
	m.lines[i].Quantity = quantity
	return m.persist(ctx)
}

func (m *Manager) ClearCart(ctx context.Context) error {
	m.lines = nil
	m.notify("Cart cleared", "All items have been removed from your cart")
	return m.persist(ctx)
}

// Subtotal is recomputed from the current lines on every call.
func (m *Manager) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, l := range m.lines {
		total = total.Add(l.Subtotal())
	}
	return total
}

func (m *Manager) ItemCount() int {
	n := 0
	for _, l := range m.lines {
		n += l.Quantity
	}
	return n
}

// Lines returns a copy of the cart lines. Products remain shared references.
func (m *Manager) Lines() []Line {
	return append([]Line{}, m.lines...)
}

func (m *Manager) IsEmpty() bool { return len(m.lines) == 0 }

func (m *Manager) persist(ctx context.Context) error {
	lines := m.lines
	if lines == nil {
		lines = []Line{}
	}
	if err := storage.SetJSON(ctx, m.store, m.key, lines); err != nil {
		return fmt.Errorf("cart: persist %s: %w", m.key, err)
	}
	return nil
}

func (m *Manager) notify(title, description string) {
	if m.notifier != nil {
		m.notifier.Notify(Notification{Title: title, Description: description})
	}
}
