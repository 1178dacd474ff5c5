package testutil

import (
	"context"
	"sync"

	"gallery/internal/events"
)

// Compile-time interface check.
var _ events.Emitter = (*MockBus)(nil)

// MockBus records every emitted event for later inspection.
type MockBus struct {
	mu     sync.Mutex
	events []events.Event
}

// NewMockBus returns a new MockBus.
func NewMockBus() *MockBus {
	return &MockBus{}
}

// Emit records an event synchronously.
func (b *MockBus) Emit(_ context.Context, event events.Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.events = append(b.events, event)
}

// Events returns a copy of all recorded events.
func (b *MockBus) Events() []events.Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]events.Event, len(b.events))
	copy(out, b.events)
	return out
}

// Topics returns the topics of all recorded events in order.
func (b *MockBus) Topics() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, 0, len(b.events))
	for _, e := range b.events {
		out = append(out, e.Topic)
	}
	return out
}
