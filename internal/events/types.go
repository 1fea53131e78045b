package events

import "time"

// EventType indicates what kind of change occurred
type EventType string

const (
	EventCreated EventType = "created"
	EventUpdated EventType = "updated"
	EventDeleted EventType = "deleted"
)

// Entity names the kind of record an event is about
type Entity string

const (
	EntityCanvas     Entity = "canvas"
	EntityElement    Entity = "element"
	EntityBoard      Entity = "board"
	EntityColumn     Entity = "column"
	EntityCard       Entity = "card"
	EntityNote       Entity = "note"
	EntityCollection Entity = "collection"
)

// Event is a change notification. Exactly one is emitted per successful
// mutation; failed and no-op calls emit nothing.
type Event struct {
	Type       EventType
	Entity     Entity
	EntityID   string            // The affected record
	ParentID   string            // Owning canvas/board, empty for top-level records
	Related    []string          // Records removed or touched as a side effect (cascades)
	Meta       map[string]string // Small operation-specific details, e.g. move source
	Timestamp  time.Time         // When the event occurred
	SequenceID int64             // Monotonically increasing per bus
}
