package kafka

import (
	"context"
	"fmt"
	"strconv"

	"github.com/ariefcatur/larana-store/internal/orders"
	"github.com/segmentio/kafka-go"
)

// Publisher routes order envelopes to one Producer per topic.
type Publisher struct {
	producers map[string]*Producer
}

func NewPublisher(producers ...*Producer) *Publisher {
	m := make(map[string]*Producer, len(producers))
	for _, p := range producers {
		m[p.Topic()] = p
	}
	return &Publisher{producers: m}
}

func (p *Publisher) Publish(ctx context.Context, topic string, env orders.Envelope) error {
	prod, ok := p.producers[topic]
	if !ok {
		return fmt.Errorf("kafka: no producer for topic %s", topic)
	}
	return prod.Publish(ctx, orders.PartitionKey(env.CorrelationID), MustMarshal(env),
		kafka.Header{Key: "x-event-type", Value: []byte(env.EventType)},
		kafka.Header{Key: "x-event-version", Value: []byte(strconv.Itoa(env.EventVersion))},
	)
}

func (p *Publisher) Start(ctx context.Context) {
	for _, prod := range p.producers {
		prod.Start(ctx)
	}
}

// Close flushes every producer and waits for them to finish.
func (p *Publisher) Close() {
	for _, prod := range p.producers {
		prod.Close()
	}
	for _, prod := range p.producers {
		prod.WaitClosed()
	}
}
