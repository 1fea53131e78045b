package models

import (
	"slices"
	"time"

	"github.com/thenoetrevino/orion/internal/types"
)

// Note is a freeform text document. LinkedNoteIDs is derived from the
// [[Title]] references in Content and is only ever recomputed, never patched.
type Note struct {
	ID            types.NoteID
	Title         string
	Content       string
	Tags          []string
	GroupID       types.GroupID
	CreatedAt     time.Time
	ModifiedAt    time.Time
	LinkedNoteIDs []types.NoteID
}

// Clone returns a deep copy of the note
func (n *Note) Clone() Note {
	out := *n
	out.Tags = slices.Clone(n.Tags)
	out.LinkedNoteIDs = slices.Clone(n.LinkedNoteIDs)
	return out
}

// HasTag reports whether the note carries tag
func (n *Note) HasTag(tag string) bool {
	return slices.Contains(n.Tags, tag)
}

// NoteCollection is a named, ordered grouping of note ids
type NoteCollection struct {
	ID         types.CollectionID
	Title      string
	NoteIDs    []types.NoteID
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// Clone returns a deep copy of the collection
func (c *NoteCollection) Clone() NoteCollection {
	out := *c
	out.NoteIDs = slices.Clone(c.NoteIDs)
	return out
}

// NoteSnapshot is the point-in-time state of a notes store
type NoteSnapshot struct {
	Notes       []Note
	Collections []NoteCollection
}
