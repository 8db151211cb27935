package audit

import (
	"context"
	"sync"
)

// Publisher is the port domain services emit audit events through.
//
// Compliance events are fail-closed: Emit blocks until the event is durably
// accepted, and the calling operation must fail when Emit fails. Operations
// events may be buffered or dropped by the implementation.
type Publisher interface {
	Emit(ctx context.Context, event Event) error
}

// MemoryPublisher collects events in memory. Used in tests and as the default
// sink when no broker is configured.
type MemoryPublisher struct {
	mu     sync.Mutex
	events []Event
}

func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{}
}

func (p *MemoryPublisher) Emit(_ context.Context, event Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

// Events returns a copy of everything emitted so far.
func (p *MemoryPublisher) Events() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Event, len(p.events))
	copy(out, p.events)
	return out
}

// NopPublisher discards all events. Useful for wiring paths where audit is
// explicitly disabled.
type NopPublisher struct{}

func (NopPublisher) Emit(context.Context, Event) error { return nil }
