package orders

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const orderColumns = `id, customer_id, customer, items, total_amount, status, shipping_address,
	billing_address, payment_method, payment_status, notes, created_at`

// Repo stores orders in Postgres; the embedded customer, items and
// addresses are JSONB columns.
type Repo struct{ DB *pgxpool.Pool }

func NewRepo(db *pgxpool.Pool) *Repo { return &Repo{DB: db} }

func (r *Repo) Append(ctx context.Context, o Order) error {
	customer, err := json.Marshal(o.Customer)
	if err != nil {
		return err
	}
	items, err := json.Marshal(o.Items)
	if err != nil {
		return err
	}
	shipping, err := json.Marshal(o.ShippingAddress)
	if err != nil {
		return err
	}
	billing, err := json.Marshal(o.BillingAddress)
	if err != nil {
		return err
	}
	_, err = r.DB.Exec(ctx, `
		INSERT INTO orders(id, customer_id, customer, items, total_amount, status, shipping_address,
		                   billing_address, payment_method, payment_status, notes, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
		o.ID, o.Customer.ID, customer, items, o.TotalAmount, string(o.Status), shipping,
		billing, o.PaymentMethod, string(o.PaymentStatus), o.Notes, o.CreatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrOrderExists
	}
	return err
}

func (r *Repo) Get(ctx context.Context, id string) (Order, error) {
	o, err := scanOrder(r.DB.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, ErrOrderNotFound
	}
	return o, err
}

func (r *Repo) List(ctx context.Context) ([]Order, error) {
	rows, err := r.DB.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

// SetStatus locks the row, runs guard against the current order and then
// writes the new status in the same transaction.
func (r *Repo) SetStatus(ctx context.Context, id string, s Status, guard StatusGuard) (Order, error) {
	tx, err := r.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return Order{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	current, err := scanOrder(tx.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id=$1 FOR UPDATE`, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, ErrOrderNotFound
	}
	if err != nil {
		return Order{}, err
	}
	if guard != nil {
		if err := guard(current); err != nil {
			return Order{}, err
		}
	}
	if _, err := tx.Exec(ctx, `UPDATE orders SET status=$2, updated_at=now() WHERE id=$1`, id, string(s)); err != nil {
		return Order{}, err
	}
	if err := tx.Commit(ctx); err != nil {
		return Order{}, err
	}
	current.Status = s
	return current, nil
}

func (r *Repo) SetPaymentStatus(ctx context.Context, id string, s PaymentStatus) (Order, error) {
	o, err := scanOrder(r.DB.QueryRow(ctx, `
		UPDATE orders SET payment_status=$2, updated_at=now() WHERE id=$1
		RETURNING `+orderColumns, id, string(s)))
	if errors.Is(err, pgx.ErrNoRows) {
		return Order{}, ErrOrderNotFound
	}
	return o, err
}

// SeedIfEmpty inserts orders when the table has no rows.
func (r *Repo) SeedIfEmpty(ctx context.Context, seed []Order) error {
	var n int
	if err := r.DB.QueryRow(ctx, `SELECT COUNT(*) FROM orders`).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, o := range seed {
		if err := r.Append(ctx, o); err != nil {
			return err
		}
	}
	return nil
}

func scanOrder(row pgx.Row) (Order, error) {
	var (
		o                                  Order
		customerID, status, payment        string
		customer, items, shipping, billing []byte
	)
	if err := row.Scan(&o.ID, &customerID, &customer, &items, &o.TotalAmount, &status, &shipping,
		&billing, &o.PaymentMethod, &payment, &o.Notes, &o.CreatedAt); err != nil {
		return Order{}, err
	}
	o.Status = Status(status)
	o.PaymentStatus = PaymentStatus(payment)
	for _, f := range []struct {
		raw []byte
		dst any
	}{{customer, &o.Customer}, {items, &o.Items}, {shipping, &o.ShippingAddress}, {billing, &o.BillingAddress}} {
		if err := json.Unmarshal(f.raw, f.dst); err != nil {
			return Order{}, err
		}
	}
	return o, nil
}
