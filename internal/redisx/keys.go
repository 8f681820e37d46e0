package redisx

import "time"

const (
	// Cart per client: larana-cart:{client_id} -> [{"product": {...}, "quantity": n}]
	KeyCart = "larana-cart:%s"

	// Admin session: admin_user:{session_id} -> {"id","name","email","role"}
	KeySession = "admin_user:%s"

	// Rendered invoice cache: invoice:{order_id} -> html
	KeyInvoice = "invoice:%s"

	// Dedup event processing: dedup:{service}:{event_id}
	KeyDedup = "dedup:%s:%s"
)

var (
	TTLInvoice = 24 * time.Hour
	TTLDedup   = 48 * time.Hour
)
