package invoice

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/ariefcatur/larana-store/internal/orders"
	"github.com/ariefcatur/larana-store/internal/redisx"
	"github.com/redis/go-redis/v9"
)

// Cache keeps rendered invoices under invoice:<order id>.
type Cache struct {
	rdb *redis.Client
}

func NewCache(rdb *redis.Client) *Cache { return &Cache{rdb: rdb} }

func (c *Cache) Get(ctx context.Context, orderID string) (string, bool, error) {
	s, err := c.rdb.Get(ctx, fmt.Sprintf(redisx.KeyInvoice, orderID)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return s, true, nil
}

func (c *Cache) Put(ctx context.Context, orderID, html string) error {
	return c.rdb.Set(ctx, fmt.Sprintf(redisx.KeyInvoice, orderID), html, redisx.TTLInvoice).Err()
}

// Invalidate drops a cached invoice, e.g. after a payment status change.
func (c *Cache) Invalidate(ctx context.Context, orderID string) error {
	return c.rdb.Del(ctx, fmt.Sprintf(redisx.KeyInvoice, orderID)).Err()
}

// Render returns the cached invoice for o, rendering and caching it on a
// miss. A nil cache always renders.
func (c *Cache) Render(ctx context.Context, o orders.Order) (string, error) {
	if c == nil {
		return HTML(o)
	}
	if html, ok, err := c.Get(ctx, o.ID); err == nil && ok {
		return html, nil
	} else if err != nil {
		log.Printf("invoice: cache get %s: %v", o.ID, err)
	}
	html, err := HTML(o)
	if err != nil {
		return "", err
	}
	if err := c.Put(ctx, o.ID, html); err != nil {
		log.Printf("invoice: cache put %s: %v", o.ID, err)
	}
	return html, nil
}
