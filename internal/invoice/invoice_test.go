package invoice

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/ariefcatur/larana-store/internal/orders"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() orders.Order {
	o := orders.Seed()[0]
	o.BillingAddress.Apartment = "Apt <4>"
	return o
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Invoice_ord-001_20231115.pdf", Filename(sample()))
}

func TestHTML(t *testing.T) {
	html, err := HTML(sample())
	require.NoError(t, err)
	assert.Contains(t, html, "Invoice ord-001")
	assert.Contains(t, html, "Gold Chain Necklace")
	assert.Contains(t, html, "$129.99")
	assert.Contains(t, html, "PAID")
	assert.Contains(t, html, "11/15/2023")
	assert.Contains(t, html, "Apt &lt;4&gt;")
	assert.NotContains(t, html, "Apt <4>")
}

func TestCache_RenderCachesOnMiss(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	c := NewCache(rdb)
	ctx := context.Background()

	html, err := c.Render(ctx, sample())
	require.NoError(t, err)

	stored, err := mr.Get("invoice:ord-001")
	require.NoError(t, err)
	assert.Equal(t, html, stored)
	assert.InDelta(t, 24*time.Hour, mr.TTL("invoice:ord-001"), float64(time.Second))

	require.NoError(t, mr.Set("invoice:ord-001", "cached"))
	again, err := c.Render(ctx, sample())
	require.NoError(t, err)
	assert.Equal(t, "cached", again)

	require.NoError(t, c.Invalidate(ctx, "ord-001"))
	assert.False(t, mr.Exists("invoice:ord-001"))
}

func TestCache_NilRenders(t *testing.T) {
	var c *Cache
	html, err := c.Render(context.Background(), sample())
	require.NoError(t, err)
	assert.Contains(t, html, "INVOICE")
}
