package checkout

import (
	"errors"
	"time"

	"github.com/ariefcatur/larana-store/internal/cart"
	"github.com/ariefcatur/larana-store/internal/orders"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyCart = errors.New("cart is empty")
	// ErrCartNotCleared accompanies a stored order whose cart still holds its lines.
	ErrCartNotCleared = errors.New("order placed but cart not cleared")
)

type IDGenerator interface {
	OrderID() string
	CustomerID() string
}

// UUIDs generates "ord-<uuid>" and "cust-<uuid>" identifiers.
type UUIDs struct{}

func (UUIDs) OrderID() string    { return "ord-" + uuid.NewString() }
func (UUIDs) CustomerID() string { return "cust-" + uuid.NewString() }

func (a AddressForm) toAddress(first, last string) orders.Address {
	return orders.Address{
		FirstName: first,
		LastName:  last,
		Street:    a.Street,
		Apartment: a.Apartment,
		City:      a.City,
		State:     a.State,
		ZipCode:   a.ZipCode,
		Country:   a.Country,
	}
}

// Build materializes an order from the cart lines and a validated form.
// Items carry the product price at build time.
func Build(lines []cart.Line, f Form, now time.Time, ids IDGenerator) (orders.Order, error) {
	if len(lines) == 0 {
		return orders.Order{}, ErrEmptyCart
	}

	items := make([]orders.OrderItem, 0, len(lines))
	total := decimal.Zero
	for _, l := range lines {
		item := orders.OrderItem{Product: *l.Product, Quantity: l.Quantity, Price: l.Product.Price}
		items = append(items, item)
		total = total.Add(item.LineTotal())
	}

	shipping := f.ShippingAddress.toAddress(f.FirstName, f.LastName)
	billing := shipping
	if !f.SameAsBilling && f.BillingAddress != nil {
		billing = f.BillingAddress.toAddress(f.FirstName, f.LastName)
	}

	return orders.Order{
		ID: ids.OrderID(),
		Customer: orders.Customer{
			ID:        ids.CustomerID(),
			FirstName: f.FirstName,
			LastName:  f.LastName,
			Email:     f.Email,
			Phone:     f.Phone,
			Addresses: []orders.Address{shipping},
			CreatedAt: now,
		},
		Items:           items,
		TotalAmount:     total,
		Status:          orders.StatusPending,
		ShippingAddress: shipping,
		BillingAddress:  billing,
		PaymentMethod:   f.PaymentMethod,
		PaymentStatus:   orders.PaymentPending,
		CreatedAt:       now,
		Notes:           f.Notes,
	}, nil
}
