package event

import (
	"context"
	"sync"
)

// Hub fans order-placed events out to in-process subscribers (the admin live
// feed). Slow subscribers drop events rather than block placement.
type Hub struct {
	mu   sync.RWMutex
	subs map[chan OrderPlaced]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[chan OrderPlaced]struct{})}
}

func (h *Hub) Subscribe() (<-chan OrderPlaced, func()) {
	ch := make(chan OrderPlaced, 16)

	h.mu.Lock()
	h.subs[ch] = struct{}{}
	h.mu.Unlock()

	cancel := func() {
		h.mu.Lock()
		delete(h.subs, ch)
		h.mu.Unlock()
		close(ch)
	}
	return ch, cancel
}

func (h *Hub) PublishOrderPlaced(_ context.Context, e OrderPlaced) error {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for ch := range h.subs {
		select {
		case ch <- e:
		default:
		}
	}
	return nil
}

// Fanout publishes to every publisher, collecting no errors beyond the last
// one; order placement treats publishing as best-effort anyway.
type Fanout []Publisher

func (f Fanout) PublishOrderPlaced(ctx context.Context, e OrderPlaced) error {
	var last error
	for _, p := range f {
		if err := p.PublishOrderPlaced(ctx, e); err != nil {
			last = err
		}
	}
	return last
}
