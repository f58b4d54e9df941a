package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHub_DeliversToSubscribers(t *testing.T) {
	hub := NewHub()
	ch1, cancel1 := hub.Subscribe()
	ch2, cancel2 := hub.Subscribe()
	defer cancel1()
	defer cancel2()

	e := OrderPlaced{OrderID: "ord-1", Total: 100}
	require.NoError(t, hub.PublishOrderPlaced(context.Background(), e))

	assert.Equal(t, "ord-1", (<-ch1).OrderID)
	assert.Equal(t, "ord-1", (<-ch2).OrderID)
}

func TestHub_UnsubscribedChannelGetsNothing(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe()
	cancel()

	require.NoError(t, hub.PublishOrderPlaced(context.Background(), OrderPlaced{OrderID: "ord-2"}))

	_, open := <-ch
	assert.False(t, open)
}

func TestHub_FullSubscriberDoesNotBlock(t *testing.T) {
	hub := NewHub()
	_, cancel := hub.Subscribe()
	defer cancel()

	for i := 0; i < 100; i++ {
		require.NoError(t, hub.PublishOrderPlaced(context.Background(), OrderPlaced{OrderID: "ord"}))
	}
}

type failingPublisher struct{ err error }

func (f failingPublisher) PublishOrderPlaced(context.Context, OrderPlaced) error { return f.err }

func TestFanout_ReachesAllPublishers(t *testing.T) {
	hub := NewHub()
	ch, cancel := hub.Subscribe()
	defer cancel()

	boom := errors.New("boom")
	fanout := Fanout{failingPublisher{err: boom}, hub}

	err := fanout.PublishOrderPlaced(context.Background(), OrderPlaced{OrderID: "ord-3"})
	assert.ErrorIs(t, err, boom)

	// The failing publisher did not stop delivery to the hub.
	assert.Equal(t, "ord-3", (<-ch).OrderID)
}
