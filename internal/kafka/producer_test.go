package kafka

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/ariefcatur/larana-store/internal/orders"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	mu     sync.Mutex
	msgs   []kafka.Message
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func TestProducer_FlushesOnClose(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, orders.TopicOrderPlaced, 8)
	p.Start(context.Background())

	require.NoError(t, p.Publish(context.Background(), []byte("k1"), []byte("v1")))
	require.NoError(t, p.Publish(context.Background(), []byte("k2"), []byte("v2")))
	p.Close()
	p.WaitClosed()

	assert.Len(t, w.msgs, 2)
	assert.True(t, w.closed)
	assert.ErrorIs(t, p.Publish(context.Background(), nil, nil), ErrProducerClosed)
}

func TestProducer_FlushesOnContextCancel(t *testing.T) {
	w := &fakeWriter{}
	p := newProducer(w, "t", 8)
	ctx, cancel := context.WithCancel(context.Background())
	p.Start(ctx)
	require.NoError(t, p.Publish(context.Background(), []byte("k"), []byte("v")))
	cancel()

	select {
	case <-p.closeCh:
	case <-time.After(2 * time.Second):
		t.Fatal("producer did not stop")
	}
	assert.Len(t, w.msgs, 1)
}

func TestPublisher_RoutesByTopicWithHeaders(t *testing.T) {
	w := &fakeWriter{}
	prod := newProducer(w, orders.TopicOrderPlaced, 4)
	pub := NewPublisher(prod)
	pub.Start(context.Background())

	env, err := orders.NewEnvelope(orders.EventOrderPlaced, "test", "ord-9", orders.OrderPlacedPayload{})
	require.NoError(t, err)
	require.NoError(t, pub.Publish(context.Background(), orders.TopicOrderPlaced, env))
	assert.Error(t, pub.Publish(context.Background(), "unknown.topic", env))
	pub.Close()

	require.Len(t, w.msgs, 1)
	assert.Equal(t, "ord-9", string(w.msgs[0].Key))
	assert.Equal(t, "x-event-type", w.msgs[0].Headers[0].Key)
	assert.Equal(t, orders.EventOrderPlaced, string(w.msgs[0].Headers[0].Value))

	got, err := UnmarshalEnvelope(w.msgs[0].Value)
	require.NoError(t, err)
	assert.Equal(t, env.EventID, got.EventID)
}
