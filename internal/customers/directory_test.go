package customers

import (
	"context"
	"testing"
	"time"

	"github.com/ariefcatur/larana-store/internal/orders"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecent_NewestFirst(t *testing.T) {
	d := NewDirectory(Seed())
	got, err := d.Recent(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "CUST-004", got[0].ID)
	assert.Equal(t, "CUST-003", got[1].ID)

	all, _ := d.Recent(context.Background(), 0)
	assert.Len(t, all, 4)
}

func TestRegister_NoDedup(t *testing.T) {
	d := NewDirectory(nil)
	ctx := context.Background()
	c := orders.Customer{ID: "cust-1", Email: "a@b.co", CreatedAt: time.Now()}
	require.NoError(t, d.Register(ctx, c))
	c.ID = "cust-2"
	require.NoError(t, d.Register(ctx, c))

	all, _ := d.List(ctx)
	assert.Len(t, all, 2)

	got, err := d.GetByID(ctx, "cust-2")
	require.NoError(t, err)
	assert.Equal(t, "a@b.co", got.Email)

	_, err = d.GetByID(ctx, "missing")
	assert.ErrorIs(t, err, ErrCustomerNotFound)
}
