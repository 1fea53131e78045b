// Package notes owns notes and the link graph derived from their
// [[Title]] references.
//
// A note's LinkedNoteIDs always equals the resolution of its current content
// against the titles in the store at the time the content was last written.
// Renaming or deleting a note does not rewrite other notes' links; those
// refresh the next time their own content changes.
package notes

import (
	"slices"
	"time"

	"github.com/thenoetrevino/orion/internal/events"
	"github.com/thenoetrevino/orion/internal/models"
	"github.com/thenoetrevino/orion/internal/types"
)

// Store holds notes in creation order plus their collections. It assumes a
// single writer and takes no locks.
type Store struct {
	notes       []*models.Note
	byID        map[types.NoteID]*models.Note
	collections []*models.NoteCollection
	emitter     events.Emitter
	now         func() time.Time
}

// NewStore creates an empty store. A nil emitter discards events.
func NewStore(emitter events.Emitter) *Store {
	if emitter == nil {
		emitter = events.Discard
	}
	return &Store{
		byID:    make(map[types.NoteID]*models.Note),
		emitter: emitter,
		now:     time.Now,
	}
}

// CreateNote adds a note and resolves the links in its content
func (s *Store) CreateNote(title, content string, tags []string, groupID types.GroupID) *models.Note {
	now := s.now()
	n := &models.Note{
		ID:         types.NewNoteID(),
		Title:      title,
		Content:    content,
		GroupID:    groupID,
		CreatedAt:  now,
		ModifiedAt: now,
	}
	for _, tag := range tags {
		if tag != "" && !n.HasTag(tag) {
			n.Tags = append(n.Tags, tag)
		}
	}
	s.notes = append(s.notes, n)
	s.byID[n.ID] = n
	n.LinkedNoteIDs = newTitleIndex(s.notes).resolve(content)

	s.emit(events.EventCreated, events.EntityNote, n.ID.String(), nil)
	return n
}

// UpdateContent replaces a note's content and recomputes its outbound links
// from scratch
func (s *Store) UpdateContent(id types.NoteID, content string) bool {
	n := s.byID[id]
	if n == nil {
		return false
	}
	n.Content = content
	n.ModifiedAt = s.now()
	n.LinkedNoteIDs = newTitleIndex(s.notes).resolve(content)

	s.emit(events.EventUpdated, events.EntityNote, id.String(), nil)
	return true
}

// UpdateTitle renames a note
func (s *Store) UpdateTitle(id types.NoteID, title string) bool {
	n := s.byID[id]
	if n == nil {
		return false
	}
	n.Title = title
	n.ModifiedAt = s.now()

	s.emit(events.EventUpdated, events.EntityNote, id.String(), nil)
	return true
}

// AddTag tags a note. Adding a tag it already has is a no-op.
func (s *Store) AddTag(id types.NoteID, tag string) bool {
	n := s.byID[id]
	if n == nil || tag == "" || n.HasTag(tag) {
		return false
	}
	n.Tags = append(n.Tags, tag)
	n.ModifiedAt = s.now()

	s.emit(events.EventUpdated, events.EntityNote, id.String(), nil)
	return true
}

// RemoveTag untags a note
func (s *Store) RemoveTag(id types.NoteID, tag string) bool {
	n := s.byID[id]
	if n == nil {
		return false
	}
	i := slices.Index(n.Tags, tag)
	if i < 0 {
		return false
	}
	n.Tags = slices.Delete(n.Tags, i, i+1)
	n.ModifiedAt = s.now()

	s.emit(events.EventUpdated, events.EntityNote, id.String(), nil)
	return true
}

// DeleteNote removes a note and strips it from every collection. Links from
// other notes to it are left until those notes are next edited.
func (s *Store) DeleteNote(id types.NoteID) bool {
	if s.byID[id] == nil {
		return false
	}
	delete(s.byID, id)
	s.notes = slices.DeleteFunc(s.notes, func(n *models.Note) bool { return n.ID == id })

	var touched []string
	now := s.now()
	for _, c := range s.collections {
		before := len(c.NoteIDs)
		c.NoteIDs = slices.DeleteFunc(c.NoteIDs, func(nid types.NoteID) bool { return nid == id })
		if len(c.NoteIDs) != before {
			c.ModifiedAt = now
			touched = append(touched, c.ID.String())
		}
	}

	s.emit(events.EventDeleted, events.EntityNote, id.String(), touched)
	return true
}

// GetNote returns the live note or nil
func (s *Store) GetNote(id types.NoteID) *models.Note {
	return s.byID[id]
}

// ListNotes returns notes in creation order
func (s *Store) ListNotes() []*models.Note {
	return slices.Clone(s.notes)
}

// GetNoteGraph returns the forward edges of every note. The slices are
// copies. Edges may name notes that have since been deleted.
func (s *Store) GetNoteGraph() map[types.NoteID][]types.NoteID {
	graph := make(map[types.NoteID][]types.NoteID, len(s.notes))
	for _, n := range s.notes {
		graph[n.ID] = slices.Clone(n.LinkedNoteIDs)
	}
	return graph
}

// Snapshot returns a deep copy of every note and collection
func (s *Store) Snapshot() models.NoteSnapshot {
	snap := models.NoteSnapshot{
		Notes:       make([]models.Note, len(s.notes)),
		Collections: make([]models.NoteCollection, len(s.collections)),
	}
	for i, n := range s.notes {
		snap.Notes[i] = n.Clone()
	}
	for i, c := range s.collections {
		snap.Collections[i] = c.Clone()
	}
	return snap
}

// Restore replaces the store contents with a copy of snap. Stored links are
// taken as given, not recomputed, and no events fire.
func (s *Store) Restore(snap models.NoteSnapshot) {
	s.notes = make([]*models.Note, len(snap.Notes))
	s.byID = make(map[types.NoteID]*models.Note, len(snap.Notes))
	for i := range snap.Notes {
		n := snap.Notes[i].Clone()
		s.notes[i] = &n
		s.byID[n.ID] = &n
	}

	s.collections = make([]*models.NoteCollection, len(snap.Collections))
	for i := range snap.Collections {
		c := snap.Collections[i].Clone()
		s.collections[i] = &c
	}
}

func (s *Store) emit(typ events.EventType, entity events.Entity, id string, related []string) {
	s.emitter.Emit(events.Event{
		Type:     typ,
		Entity:   entity,
		EntityID: id,
		Related:  related,
	})
}
