package orders

import (
	"context"
	"errors"
)

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrOrderExists       = errors.New("order already exists")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrIllegalTransition = errors.New("illegal status transition")
)

// StatusGuard may veto a status change given the current order.
type StatusGuard func(current Order) error

// Repository persists orders. List returns orders in store (append) order.
type Repository interface {
	Append(ctx context.Context, o Order) error
	Get(ctx context.Context, id string) (Order, error)
	List(ctx context.Context) ([]Order, error)
	SetStatus(ctx context.Context, id string, s Status, guard StatusGuard) (Order, error)
	SetPaymentStatus(ctx context.Context, id string, s PaymentStatus) (Order, error)
}
