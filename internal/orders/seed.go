package orders

import (
	"time"

	"github.com/ariefcatur/larana-store/internal/catalog"
	"github.com/shopspring/decimal"
)

// Seed returns the sample order shown in a fresh admin console.
func Seed() []Order {
	product, _ := catalog.FindByID(catalog.Seed(), "1")
	product.Details, product.Materials, product.Featured = nil, nil, false

	addr := Address{
		FirstName: "John", LastName: "Doe",
		Street: "123 Main St", City: "New York", State: "NY", ZipCode: "10001", Country: "USA",
	}
	price := decimal.RequireFromString("129.99")
	return []Order{{
		ID: "ord-001",
		Customer: Customer{
			ID: "cust-001", FirstName: "John", LastName: "Doe",
			Email: "john.doe@example.com", Phone: "555-123-4567",
			CreatedAt: time.Date(2023, 5, 10, 14, 30, 0, 0, time.UTC),
		},
		Items:           []OrderItem{{Product: product, Quantity: 1, Price: price}},
		TotalAmount:     price,
		Status:          StatusDelivered,
		ShippingAddress: addr,
		BillingAddress:  addr,
		PaymentMethod:   "Credit Card",
		PaymentStatus:   PaymentPaid,
		CreatedAt:       time.Date(2023, 11, 15, 9, 30, 0, 0, time.UTC),
	}}
}
