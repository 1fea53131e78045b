package types

import "github.com/google/uuid"

// ID types give each opaque string identifier its domain meaning so a card id
// can never be passed where a column id is expected.

// CanvasID identifies a freeform canvas
type CanvasID string

// ElementID identifies an element placed on a canvas
type ElementID string

// BoardID identifies a kanban board
type BoardID string

// ColumnID identifies a column within a board
type ColumnID string

// CardID identifies a card within a board
type CardID string

// NoteID identifies a note
type NoteID string

// CollectionID identifies a named grouping of notes
type CollectionID string

// GroupID identifies an owning team. It is recorded, never validated.
type GroupID string

func newID() string {
	return uuid.NewString()
}

// NewCanvasID generates a random canvas id
func NewCanvasID() CanvasID {
	return CanvasID(newID())
}

// NewElementID generates a random element id
func NewElementID() ElementID {
	return ElementID(newID())
}

// NewBoardID generates a random board id
func NewBoardID() BoardID {
	return BoardID(newID())
}

// NewColumnID generates a random column id
func NewColumnID() ColumnID {
	return ColumnID(newID())
}

// NewCardID generates a random card id
func NewCardID() CardID {
	return CardID(newID())
}

// NewNoteID generates a random note id
func NewNoteID() NoteID {
	return NoteID(newID())
}

// NewCollectionID generates a random collection id
func NewCollectionID() CollectionID {
	return CollectionID(newID())
}

func (id CanvasID) String() string     { return string(id) }
func (id ElementID) String() string    { return string(id) }
func (id BoardID) String() string      { return string(id) }
func (id ColumnID) String() string     { return string(id) }
func (id CardID) String() string       { return string(id) }
func (id NoteID) String() string       { return string(id) }
func (id CollectionID) String() string { return string(id) }
func (id GroupID) String() string      { return string(id) }
