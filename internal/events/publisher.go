package events

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/ariefcatur/larana-store/internal/metrics"
	"github.com/ariefcatur/larana-store/internal/orders"
	"github.com/sony/gobreaker/v2"
)

// Publisher delivers an order event to topic. Implementations key messages
// by the envelope's correlation id.
type Publisher interface {
	Publish(ctx context.Context, topic string, env orders.Envelope) error
}

type PublisherFunc func(ctx context.Context, topic string, env orders.Envelope) error

func (f PublisherFunc) Publish(ctx context.Context, topic string, env orders.Envelope) error {
	return f(ctx, topic, env)
}

// Noop drops every event.
type Noop struct{}

func (Noop) Publish(context.Context, string, orders.Envelope) error { return nil }

// Breaker wraps a Publisher in a circuit breaker.
type Breaker struct {
	next Publisher
	cb   *gobreaker.CircuitBreaker[struct{}]
}

type BreakerSettings struct {
	Name        string
	MaxFailures uint32
	OpenTimeout time.Duration
	HalfOpenMax uint32
	ResetEvery  time.Duration
}

func DefaultBreakerSettings(name string) BreakerSettings {
	return BreakerSettings{Name: name, MaxFailures: 5, OpenTimeout: 30 * time.Second, HalfOpenMax: 1, ResetEvery: time.Minute}
}

func NewBreaker(next Publisher, s BreakerSettings) *Breaker {
	cb := gobreaker.NewCircuitBreaker[struct{}](gobreaker.Settings{
		Name:        s.Name,
		MaxRequests: s.HalfOpenMax,
		Interval:    s.ResetEvery,
		Timeout:     s.OpenTimeout,
		ReadyToTrip: func(c gobreaker.Counts) bool {
			return c.ConsecutiveFailures >= s.MaxFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Printf("breaker %s: %s -> %s", name, from, to)
		},
	})
	return &Breaker{next: next, cb: cb}
}

func (b *Breaker) Publish(ctx context.Context, topic string, env orders.Envelope) error {
	_, err := b.cb.Execute(func() (struct{}, error) {
		return struct{}{}, b.next.Publish(ctx, topic, env)
	})
	metrics.RecordPublish(topic, err == nil)
	return err
}

func (b *Breaker) State() gobreaker.State { return b.cb.State() }

// IsOpen reports whether err came from a tripped breaker rather than the
// wrapped publisher.
func IsOpen(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
