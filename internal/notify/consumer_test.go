package notify

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/msmahatha/agroCart-harvest-hub/internal/event"
)

type fakeReader struct {
	m        sync.Mutex
	messages []kafka.Message
}

func (f *fakeReader) ReadMessage(ctx context.Context) (kafka.Message, error) {
	f.m.Lock()
	defer f.m.Unlock()
	if len(f.messages) == 0 {
		return kafka.Message{}, context.Canceled
	}
	m := f.messages[0]
	f.messages = f.messages[1:]
	return m, nil
}

func (f *fakeReader) Close() error { return nil }

type recordingSender struct {
	m    sync.Mutex
	sent []event.OrderPlaced
	err  error
}

func (r *recordingSender) SendOrderConfirmation(_ context.Context, e event.OrderPlaced) error {
	r.m.Lock()
	defer r.m.Unlock()
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, e)
	return nil
}

func orderPlacedMessage(t *testing.T, e event.OrderPlaced) kafka.Message {
	t.Helper()
	value, err := json.Marshal(e)
	require.NoError(t, err)
	return kafka.Message{Key: []byte(e.OrderID), Value: value}
}

func newTestConsumer(reader *fakeReader, sender *recordingSender) *Consumer {
	return &Consumer{reader: reader, sender: sender, logger: zap.NewNop()}
}

func TestConsumer_SendsConfirmation(t *testing.T) {
	e := event.OrderPlaced{
		OrderID:   "ord-1",
		UserEmail: "user@example.com",
		UserName:  "Test User",
		Total:     971.5,
		Currency:  "INR",
	}
	reader := &fakeReader{messages: []kafka.Message{orderPlacedMessage(t, e)}}
	sender := &recordingSender{}

	consumer := newTestConsumer(reader, sender)
	consumer.processMessage(context.Background())

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "ord-1", sender.sent[0].OrderID)
	assert.Equal(t, "user@example.com", sender.sent[0].UserEmail)
}

func TestConsumer_SkipsMalformedMessage(t *testing.T) {
	reader := &fakeReader{messages: []kafka.Message{{Value: []byte("{not json")}}}
	sender := &recordingSender{}

	consumer := newTestConsumer(reader, sender)
	consumer.processMessage(context.Background())

	assert.Empty(t, sender.sent)
}

func TestConsumer_SkipsEventWithoutEmail(t *testing.T) {
	e := event.OrderPlaced{OrderID: "ord-2"}
	reader := &fakeReader{messages: []kafka.Message{orderPlacedMessage(t, e)}}
	sender := &recordingSender{}

	consumer := newTestConsumer(reader, sender)
	consumer.processMessage(context.Background())

	assert.Empty(t, sender.sent)
}

func TestConsumer_SendFailureDoesNotStopProcessing(t *testing.T) {
	e1 := event.OrderPlaced{OrderID: "ord-3", UserEmail: "a@example.com"}
	e2 := event.OrderPlaced{OrderID: "ord-4", UserEmail: "b@example.com"}
	reader := &fakeReader{messages: []kafka.Message{
		orderPlacedMessage(t, e1),
		orderPlacedMessage(t, e2),
	}}
	sender := &recordingSender{err: errors.New("smtp down")}

	consumer := newTestConsumer(reader, sender)
	consumer.processMessage(context.Background())

	sender.m.Lock()
	sender.err = nil
	sender.m.Unlock()

	consumer.processMessage(context.Background())

	require.Len(t, sender.sent, 1)
	assert.Equal(t, "ord-4", sender.sent[0].OrderID)
}

func TestConsumer_RunStopsOnCancelledContext(t *testing.T) {
	reader := &fakeReader{}
	sender := &recordingSender{}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	consumer := newTestConsumer(reader, sender)
	consumer.Run(ctx) // must return promptly
	assert.Empty(t, sender.sent)
}
