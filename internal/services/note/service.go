package note

import (
	"log/slog"
	"slices"

	"github.com/thenoetrevino/orion/internal/models"
	"github.com/thenoetrevino/orion/internal/notes"
	"github.com/thenoetrevino/orion/internal/types"
)

// MaxTitleLength bounds note and collection titles
const MaxTitleLength = 200

// Service defines all note-related business operations
type Service interface {
	// Read operations
	GetNote(id types.NoteID) (*models.Note, error)
	ListNotes() []*models.Note
	ListByGroup(groupID types.GroupID) []*models.Note
	FindByTags(tags []string) []*models.Note
	Search(text string) ([]*models.Note, error)
	GetNoteGraph() map[types.NoteID][]types.NoteID
	Links(id types.NoteID) ([]*models.Note, error)
	Backlinks(id types.NoteID) ([]*models.Note, error)

	// Write operations
	CreateNote(req CreateNoteRequest) (*models.Note, error)
	UpdateContent(id types.NoteID, content string) error
	RenameNote(id types.NoteID, title string) error
	AddTag(id types.NoteID, tag string) error
	RemoveTag(id types.NoteID, tag string) error
	DeleteNote(id types.NoteID) error

	// Collections
	GetCollection(id types.CollectionID) (*models.NoteCollection, error)
	ListCollections() []*models.NoteCollection
	CollectionNotes(id types.CollectionID) ([]*models.Note, error)
	CreateCollection(title string, noteIDs []types.NoteID) (*models.NoteCollection, error)
	AddToCollection(collectionID types.CollectionID, noteID types.NoteID) error
	RemoveFromCollection(collectionID types.CollectionID, noteID types.NoteID) error
	DeleteCollection(id types.CollectionID) error
}

// Autosaver receives a fresh snapshot after every successful mutation
type Autosaver interface {
	QueueNotes(snapshot models.NoteSnapshot)
}

// CreateNoteRequest encapsulates data for creating a note
type CreateNoteRequest struct {
	Title   string
	Content string
	Tags    []string
	GroupID types.GroupID
}

// service implements Service interface
type service struct {
	store  *notes.Store
	saver  Autosaver
	logger *slog.Logger
}

// NewService creates a new note service. saver may be nil.
func NewService(store *notes.Store, saver Autosaver, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &service{
		store:  store,
		saver:  saver,
		logger: logger,
	}
}

// GetNote retrieves a note by id
func (s *service) GetNote(id types.NoteID) (*models.Note, error) {
	n := s.store.GetNote(id)
	if n == nil {
		return nil, ErrNoteNotFound
	}
	return n, nil
}

// ListNotes returns every note in creation order
func (s *service) ListNotes() []*models.Note {
	return s.store.ListNotes()
}

// ListByGroup returns the notes owned by a team
func (s *service) ListByGroup(groupID types.GroupID) []*models.Note {
	return s.store.ListByGroup(groupID)
}

// FindByTags returns notes carrying all of tags
func (s *service) FindByTags(tags []string) []*models.Note {
	return s.store.FindByTags(tags)
}

// Search finds notes whose title or content contains text
func (s *service) Search(text string) ([]*models.Note, error) {
	if text == "" {
		return nil, ErrEmptyQuery
	}
	return s.store.Search(text), nil
}

// GetNoteGraph returns the forward link graph
func (s *service) GetNoteGraph() map[types.NoteID][]types.NoteID {
	return s.store.GetNoteGraph()
}

// Links resolves a note's outbound edges to notes that still exist
func (s *service) Links(id types.NoteID) ([]*models.Note, error) {
	n, err := s.GetNote(id)
	if err != nil {
		return nil, err
	}
	var out []*models.Note
	for _, target := range n.LinkedNoteIDs {
		if linked := s.store.GetNote(target); linked != nil {
			out = append(out, linked)
		}
	}
	return out, nil
}

// Backlinks lists the notes whose links point at id, in creation order.
// The store keeps forward edges only, so this transposes the graph on
// every call.
func (s *service) Backlinks(id types.NoteID) ([]*models.Note, error) {
	if _, err := s.GetNote(id); err != nil {
		return nil, err
	}
	graph := s.store.GetNoteGraph()

	var out []*models.Note
	for _, n := range s.store.ListNotes() {
		if slices.Contains(graph[n.ID], id) {
			out = append(out, n)
		}
	}
	return out, nil
}

// CreateNote creates a note and resolves its links
func (s *service) CreateNote(req CreateNoteRequest) (*models.Note, error) {
	if err := validateTitle(req.Title); err != nil {
		return nil, err
	}

	n := s.store.CreateNote(req.Title, req.Content, req.Tags, req.GroupID)
	s.logger.Info("note created", "note_id", n.ID, "title", n.Title, "links", len(n.LinkedNoteIDs))
	s.autosave()
	return n, nil
}

// UpdateContent replaces a note's content and recomputes its links
func (s *service) UpdateContent(id types.NoteID, content string) error {
	if !s.store.UpdateContent(id, content) {
		return ErrNoteNotFound
	}
	s.autosave()
	return nil
}

// RenameNote changes a note title. Links in other notes that used the old
// title keep pointing here until those notes are edited.
func (s *service) RenameNote(id types.NoteID, title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	if !s.store.UpdateTitle(id, title) {
		return ErrNoteNotFound
	}
	s.autosave()
	return nil
}

// AddTag tags a note
func (s *service) AddTag(id types.NoteID, tag string) error {
	if tag == "" {
		return ErrEmptyTag
	}
	if _, err := s.GetNote(id); err != nil {
		return err
	}
	if !s.store.AddTag(id, tag) {
		return ErrTagExists
	}
	s.autosave()
	return nil
}

// RemoveTag untags a note
func (s *service) RemoveTag(id types.NoteID, tag string) error {
	if _, err := s.GetNote(id); err != nil {
		return err
	}
	if !s.store.RemoveTag(id, tag) {
		return ErrTagMissing
	}
	s.autosave()
	return nil
}

// DeleteNote deletes a note and removes it from every collection
func (s *service) DeleteNote(id types.NoteID) error {
	if !s.store.DeleteNote(id) {
		return ErrNoteNotFound
	}
	s.logger.Info("note deleted", "note_id", id)
	s.autosave()
	return nil
}

// GetCollection retrieves a collection by id
func (s *service) GetCollection(id types.CollectionID) (*models.NoteCollection, error) {
	c := s.store.GetCollection(id)
	if c == nil {
		return nil, ErrCollectionNotFound
	}
	return c, nil
}

// ListCollections returns every collection in creation order
func (s *service) ListCollections() []*models.NoteCollection {
	return s.store.ListCollections()
}

// CollectionNotes resolves a collection to its live notes
func (s *service) CollectionNotes(id types.CollectionID) ([]*models.Note, error) {
	if _, err := s.GetCollection(id); err != nil {
		return nil, err
	}
	return s.store.CollectionNotes(id), nil
}

// CreateCollection groups notes under a title. Every id must name a note.
func (s *service) CreateCollection(title string, noteIDs []types.NoteID) (*models.NoteCollection, error) {
	if err := validateTitle(title); err != nil {
		return nil, err
	}
	for _, id := range noteIDs {
		if _, err := s.GetNote(id); err != nil {
			return nil, err
		}
	}

	c := s.store.CreateCollection(title, noteIDs)
	s.autosave()
	return c, nil
}

// AddToCollection adds a note to a collection
func (s *service) AddToCollection(collectionID types.CollectionID, noteID types.NoteID) error {
	if _, err := s.GetCollection(collectionID); err != nil {
		return err
	}
	if _, err := s.GetNote(noteID); err != nil {
		return err
	}
	if !s.store.AddToCollection(collectionID, noteID) {
		return ErrAlreadyInCollection
	}
	s.autosave()
	return nil
}

// RemoveFromCollection removes a note from a collection
func (s *service) RemoveFromCollection(collectionID types.CollectionID, noteID types.NoteID) error {
	if _, err := s.GetCollection(collectionID); err != nil {
		return err
	}
	if !s.store.RemoveFromCollection(collectionID, noteID) {
		return ErrNotInCollection
	}
	s.autosave()
	return nil
}

// DeleteCollection deletes a collection, keeping its notes
func (s *service) DeleteCollection(id types.CollectionID) error {
	if !s.store.DeleteCollection(id) {
		return ErrCollectionNotFound
	}
	s.autosave()
	return nil
}

func (s *service) autosave() {
	if s.saver == nil {
		return
	}
	s.saver.QueueNotes(s.store.Snapshot())
}

func validateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}
