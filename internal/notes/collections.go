package notes

import (
	"slices"

	"github.com/thenoetrevino/orion/internal/events"
	"github.com/thenoetrevino/orion/internal/models"
	"github.com/thenoetrevino/orion/internal/types"
)

// CreateCollection groups existing notes under a title. Ids that do not name
// a note are skipped, as are repeats.
func (s *Store) CreateCollection(title string, noteIDs []types.NoteID) *models.NoteCollection {
	now := s.now()
	c := &models.NoteCollection{
		ID:         types.NewCollectionID(),
		Title:      title,
		CreatedAt:  now,
		ModifiedAt: now,
	}
	for _, id := range noteIDs {
		if s.byID[id] != nil && !slices.Contains(c.NoteIDs, id) {
			c.NoteIDs = append(c.NoteIDs, id)
		}
	}
	s.collections = append(s.collections, c)

	s.emit(events.EventCreated, events.EntityCollection, c.ID.String(), nil)
	return c
}

// AddToCollection appends a note to a collection. The note must exist and
// must not already be a member.
func (s *Store) AddToCollection(collectionID types.CollectionID, noteID types.NoteID) bool {
	c := s.GetCollection(collectionID)
	if c == nil || s.byID[noteID] == nil || slices.Contains(c.NoteIDs, noteID) {
		return false
	}
	c.NoteIDs = append(c.NoteIDs, noteID)
	c.ModifiedAt = s.now()

	s.emit(events.EventUpdated, events.EntityCollection, collectionID.String(), nil)
	return true
}

// RemoveFromCollection drops a note from a collection
func (s *Store) RemoveFromCollection(collectionID types.CollectionID, noteID types.NoteID) bool {
	c := s.GetCollection(collectionID)
	if c == nil {
		return false
	}
	i := slices.Index(c.NoteIDs, noteID)
	if i < 0 {
		return false
	}
	c.NoteIDs = slices.Delete(c.NoteIDs, i, i+1)
	c.ModifiedAt = s.now()

	s.emit(events.EventUpdated, events.EntityCollection, collectionID.String(), nil)
	return true
}

// DeleteCollection removes a collection. Its notes are untouched.
func (s *Store) DeleteCollection(id types.CollectionID) bool {
	i := slices.IndexFunc(s.collections, func(c *models.NoteCollection) bool { return c.ID == id })
	if i < 0 {
		return false
	}
	s.collections = slices.Delete(s.collections, i, i+1)

	s.emit(events.EventDeleted, events.EntityCollection, id.String(), nil)
	return true
}

// GetCollection returns the live collection or nil
func (s *Store) GetCollection(id types.CollectionID) *models.NoteCollection {
	for _, c := range s.collections {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// ListCollections returns collections in creation order
func (s *Store) ListCollections() []*models.NoteCollection {
	return slices.Clone(s.collections)
}

// CollectionNotes resolves a collection's ids to live notes, skipping any
// that no longer exist
func (s *Store) CollectionNotes(id types.CollectionID) []*models.Note {
	c := s.GetCollection(id)
	if c == nil {
		return nil
	}
	var out []*models.Note
	for _, nid := range c.NoteIDs {
		if n := s.byID[nid]; n != nil {
			out = append(out, n)
		}
	}
	return out
}
