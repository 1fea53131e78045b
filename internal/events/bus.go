package events

import (
	"slices"
	"sync"
	"sync/atomic"
	"time"
)

// Handler consumes a delivered event
type Handler func(Event)

// Bus is an in-process observer list.
//
// Delivery guarantees: Emit stamps the event with the next sequence id and
// calls every handler synchronously, in subscription order, before returning.
// Events therefore reach each handler in emission order. A handler that
// unsubscribes during delivery still receives the event in flight.
type Bus struct {
	mu       sync.Mutex
	handlers []*Subscription
	sequence atomic.Int64
	now      func() time.Time
}

// NewBus creates an empty bus
func NewBus() *Bus {
	return &Bus{now: time.Now}
}

// Subscription is a scoped registration. Close releases it and is safe to
// call more than once.
type Subscription struct {
	bus       *Bus
	handler   Handler
	closeOnce sync.Once
}

// Subscribe registers fn and returns the handle that releases it
func (b *Bus) Subscribe(fn Handler) *Subscription {
	sub := &Subscription{bus: b, handler: fn}

	b.mu.Lock()
	b.handlers = append(b.handlers, sub)
	b.mu.Unlock()

	return sub
}

// Close unsubscribes the handler
func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		s.bus.remove(s)
	})
}

func (b *Bus) remove(sub *Subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.handlers = slices.DeleteFunc(b.handlers, func(h *Subscription) bool { return h == sub })
}

// Emit assigns a sequence id and timestamp and delivers the event
func (b *Bus) Emit(event Event) {
	event.SequenceID = b.sequence.Add(1)
	if event.Timestamp.IsZero() {
		event.Timestamp = b.now()
	}

	b.mu.Lock()
	handlers := slices.Clone(b.handlers)
	b.mu.Unlock()

	for _, h := range handlers {
		h.handler(event)
	}
}

// Len returns the number of live subscriptions
func (b *Bus) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.handlers)
}

// LastSequence returns the sequence id of the most recent event, 0 if none
func (b *Bus) LastSequence() int64 {
	return b.sequence.Load()
}
