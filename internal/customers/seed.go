package customers

import (
	"time"

	"github.com/ariefcatur/larana-store/internal/orders"
)

func customer(id, first, last, email, phone, street, city, state, zip string, created time.Time) orders.Customer {
	return orders.Customer{
		ID: id, FirstName: first, LastName: last, Email: email, Phone: phone,
		Addresses: []orders.Address{{
			FirstName: first, LastName: last, Street: street, City: city, State: state,
			ZipCode: zip, Country: "United States", IsDefault: true,
		}},
		CreatedAt: created,
	}
}

// Seed returns the sample customers shown in a fresh admin console.
func Seed() []orders.Customer {
	return []orders.Customer{
		customer("CUST-001", "Emily", "Johnson", "emily.johnson@example.com", "+1 212-555-1234",
			"123 Maple Avenue", "New York", "NY", "10001", time.Date(2023, 1, 15, 10, 30, 0, 0, time.UTC)),
		customer("CUST-002", "Michael", "Smith", "michael.smith@example.com", "+1 323-555-5678",
			"456 Oak Street", "Los Angeles", "CA", "90001", time.Date(2023, 2, 22, 14, 45, 0, 0, time.UTC)),
		customer("CUST-003", "Sophia", "Williams", "sophia.williams@example.com", "+1 312-555-9012",
			"789 Pine Road", "Chicago", "IL", "60007", time.Date(2023, 3, 10, 9, 15, 0, 0, time.UTC)),
		customer("CUST-004", "Daniel", "Brown", "daniel.brown@example.com", "+1 305-555-3456",
			"101 Cedar Lane", "Miami", "FL", "33101", time.Date(2023, 4, 5, 16, 20, 0, 0, time.UTC)),
	}
}
