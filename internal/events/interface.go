package events

// Emitter is what the stores depend on to announce changes.
// Stores call Emit only after a mutation has fully applied.
type Emitter interface {
	Emit(event Event)
}

// Sink receives events outside the process boundary (activity log, relays).
// Unlike subscribers a sink may fail, see PublishWithRetry.
type Sink interface {
	SendEvent(event Event) error
}

// Discard is an Emitter that drops everything
var Discard Emitter = discard{}

type discard struct{}

func (discard) Emit(Event) {}

// Compile-time verification that *Bus implements Emitter
var _ Emitter = (*Bus)(nil)
