package notify

import (
	"context"
	"fmt"
	"log"

	"github.com/ariefcatur/larana-store/internal/invoice"
	kafkax "github.com/ariefcatur/larana-store/internal/kafka"
	"github.com/ariefcatur/larana-store/internal/orders"
	"github.com/ariefcatur/larana-store/internal/redisx"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
)

// Confirmation is what the customer would receive for a placed order.
type Confirmation struct {
	OrderID  string
	To       string
	Subject  string
	Invoice  string
	Filename string
}

// Sender delivers a confirmation. The default sender only logs it.
type Sender func(ctx context.Context, c Confirmation) error

func LogSender(_ context.Context, c Confirmation) error {
	log.Printf("confirmation to=%s subject=%q attachment=%s", c.To, c.Subject, c.Filename)
	return nil
}

type Service struct {
	Redis       *redis.Client
	Invoices    *invoice.Cache
	Send        Sender
	ServiceName string
}

// HandleOrderPlaced is installed as the consumer handler for order.placed.
func (s *Service) HandleOrderPlaced(ctx context.Context, m kafkago.Message) error {
	env, err := kafkax.UnmarshalEnvelope(m.Value)
	if err != nil {
		return err
	}
	if env.EventType != orders.EventOrderPlaced {
		return nil
	}

	dkey := fmt.Sprintf(redisx.KeyDedup, s.ServiceName, env.EventID)
	exists, err := redisx.Exists(ctx, s.Redis, dkey)
	if err != nil {
		return fmt.Errorf("dedup check %s: %w", env.EventID, err)
	}
	if exists {
		return nil
	}

	p, err := kafkax.UnwrapPayload[orders.OrderPlacedPayload](env.Payload)
	if err != nil {
		return err
	}
	o := p.Order

	html, err := s.Invoices.Render(ctx, o)
	if err != nil {
		return err
	}
	send := s.Send
	if send == nil {
		send = LogSender
	}
	if err := send(ctx, Confirmation{
		OrderID:  o.ID,
		To:       o.Customer.Email,
		Subject:  fmt.Sprintf("Your Larana order %s is confirmed", o.ID),
		Invoice:  html,
		Filename: invoice.Filename(o),
	}); err != nil {
		return err
	}

	// mark processed only after success so failures are retried
	return s.Redis.Set(ctx, dkey, "1", redisx.TTLDedup).Err()
}
