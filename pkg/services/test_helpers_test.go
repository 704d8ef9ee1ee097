package services

import (
	"context"
	"sync"
)

// stubHub records broadcasts so tests can assert on fan-out without a
// real connection manager.
type stubHub struct {
	mu     sync.Mutex
	events []stubBroadcast
}

type stubBroadcast struct {
	EventType string
	Data      map[string]any
}

func (h *stubHub) Broadcast(eventType string, data map[string]any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.events = append(h.events, stubBroadcast{EventType: eventType, Data: data})
}

func (h *stubHub) byType(eventType string) []stubBroadcast {
	h.mu.Lock()
	defer h.mu.Unlock()
	var out []stubBroadcast
	for _, e := range h.events {
		if e.EventType == eventType {
			out = append(out, e)
		}
	}
	return out
}

// stubBus records published payloads in place of the real pg_notify bus.
type stubBus struct {
	mu       sync.Mutex
	payloads []map[string]any
	err      error
}

func (b *stubBus) PublishEvent(_ context.Context, payload map[string]any) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.err != nil {
		return b.err
	}
	b.payloads = append(b.payloads, payload)
	return nil
}

func (b *stubBus) published() []map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]map[string]any, len(b.payloads))
	copy(out, b.payloads)
	return out
}
