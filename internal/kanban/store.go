// Package kanban holds ordered boards of columns and cards. A card id is a
// member of exactly one column for as long as its board exists.
package kanban

import (
	"slices"
	"strconv"
	"time"

	"github.com/thenoetrevino/orion/internal/events"
	"github.com/thenoetrevino/orion/internal/models"
	"github.com/thenoetrevino/orion/internal/types"
)

// Store owns every board. It assumes a single writer and takes no locks.
type Store struct {
	boards  []*models.KanbanBoard
	emitter events.Emitter
	now     func() time.Time
}

// NewStore creates an empty store. A nil emitter discards events.
func NewStore(emitter events.Emitter) *Store {
	if emitter == nil {
		emitter = events.Discard
	}
	return &Store{emitter: emitter, now: time.Now}
}

// CreateBoard creates a board seeded with one empty column per title
func (s *Store) CreateBoard(title string, groupID types.GroupID, defaultColumns []string) *models.KanbanBoard {
	now := s.now()
	b := &models.KanbanBoard{
		ID:        types.NewBoardID(),
		Title:     title,
		GroupID:   groupID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, colTitle := range defaultColumns {
		b.Columns = append(b.Columns, &models.Column{ID: types.NewColumnID(), Title: colTitle})
	}
	s.boards = append(s.boards, b)

	s.emit(events.EventCreated, events.EntityBoard, b.ID.String(), "", nil)
	return b
}

// DeleteBoard destroys a board along with its columns and cards
func (s *Store) DeleteBoard(id types.BoardID) bool {
	i := slices.IndexFunc(s.boards, func(b *models.KanbanBoard) bool { return b.ID == id })
	if i < 0 {
		return false
	}
	s.boards = slices.Delete(s.boards, i, i+1)

	s.emit(events.EventDeleted, events.EntityBoard, id.String(), "", nil)
	return true
}

// GetBoard returns the live board or nil
func (s *Store) GetBoard(id types.BoardID) *models.KanbanBoard {
	for _, b := range s.boards {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// ListBoards returns boards in creation order
func (s *Store) ListBoards() []*models.KanbanBoard {
	return slices.Clone(s.boards)
}

// ListByGroup returns the boards recorded against groupID
func (s *Store) ListByGroup(groupID types.GroupID) []*models.KanbanBoard {
	var out []*models.KanbanBoard
	for _, b := range s.boards {
		if b.GroupID == groupID {
			out = append(out, b)
		}
	}
	return out
}

// AddMember records a user on the board. Adding an existing member is a no-op.
func (s *Store) AddMember(boardID types.BoardID, userID string) bool {
	b := s.GetBoard(boardID)
	if b == nil || slices.Contains(b.MemberIDs, userID) {
		return false
	}
	b.MemberIDs = append(b.MemberIDs, userID)
	s.touch(b)

	s.emit(events.EventUpdated, events.EntityBoard, boardID.String(), "", nil)
	return true
}

// RemoveMember drops a user from the board
func (s *Store) RemoveMember(boardID types.BoardID, userID string) bool {
	b := s.GetBoard(boardID)
	if b == nil {
		return false
	}
	i := slices.Index(b.MemberIDs, userID)
	if i < 0 {
		return false
	}
	b.MemberIDs = slices.Delete(b.MemberIDs, i, i+1)
	s.touch(b)

	s.emit(events.EventUpdated, events.EntityBoard, boardID.String(), "", nil)
	return true
}

// AddColumn appends an empty column
func (s *Store) AddColumn(boardID types.BoardID, title string) *models.Column {
	b := s.GetBoard(boardID)
	if b == nil {
		return nil
	}
	col := &models.Column{ID: types.NewColumnID(), Title: title}
	b.Columns = append(b.Columns, col)
	s.touch(b)

	s.emit(events.EventCreated, events.EntityColumn, col.ID.String(), boardID.String(), nil)
	return col
}

// RemoveColumn removes a column and discards every card in it. The cards are
// not moved anywhere; the discarded ids are listed in the event.
func (s *Store) RemoveColumn(boardID types.BoardID, columnID types.ColumnID) bool {
	b := s.GetBoard(boardID)
	if b == nil {
		return false
	}
	i := columnIndex(b, columnID)
	if i < 0 {
		return false
	}
	discarded := b.Columns[i].Cards
	b.Columns = slices.Delete(b.Columns, i, i+1)
	s.touch(b)

	related := make([]string, len(discarded))
	for j, card := range discarded {
		related[j] = card.ID.String()
	}
	s.emit(events.EventDeleted, events.EntityColumn, columnID.String(), boardID.String(), nil, related...)
	return true
}

// RenameColumn changes a column title
func (s *Store) RenameColumn(boardID types.BoardID, columnID types.ColumnID, title string) bool {
	b, col := s.column(boardID, columnID)
	if col == nil {
		return false
	}
	col.Title = title
	s.touch(b)

	s.emit(events.EventUpdated, events.EntityColumn, columnID.String(), boardID.String(), nil)
	return true
}

// GetColumn returns the live column or nil
func (s *Store) GetColumn(boardID types.BoardID, columnID types.ColumnID) *models.Column {
	_, col := s.column(boardID, columnID)
	return col
}

// AddCard appends a new card to the tail of a column, nil if the column is
// unknown.
func (s *Store) AddCard(boardID types.BoardID, columnID types.ColumnID, title, description string) *models.Card {
	b, col := s.column(boardID, columnID)
	if col == nil {
		return nil
	}
	card := &models.Card{
		ID:          types.NewCardID(),
		Title:       title,
		Description: description,
		CreatedAt:   s.now(),
	}
	col.Cards = append(col.Cards, card)
	s.touch(b)

	s.emit(events.EventCreated, events.EntityCard, card.ID.String(), boardID.String(),
		map[string]string{"column_id": columnID.String()})
	return card
}

// MoveCard takes a card out of sourceID and inserts it into targetID at
// targetIndex. The index is measured after the card has left the source, so
// a same-column reorder sees the shortened list. An index outside
// [0, len(target)] appends to the tail.
//
// The board's card count is the same before and after every call.
func (s *Store) MoveCard(boardID types.BoardID, cardID types.CardID, sourceID, targetID types.ColumnID, targetIndex int) bool {
	b := s.GetBoard(boardID)
	if b == nil {
		return false
	}
	si, ti := columnIndex(b, sourceID), columnIndex(b, targetID)
	if si < 0 || ti < 0 {
		return false
	}
	source, target := b.Columns[si], b.Columns[ti]

	from := source.IndexOf(cardID)
	if from < 0 {
		return false
	}
	card := source.Cards[from]
	source.Cards = slices.Delete(source.Cards, from, from+1)

	at := targetIndex
	if at < 0 || at > len(target.Cards) {
		at = len(target.Cards)
	}
	target.Cards = slices.Insert(target.Cards, at, card)
	s.touch(b)

	s.emit(events.EventUpdated, events.EntityCard, cardID.String(), boardID.String(), map[string]string{
		"from_column": sourceID.String(),
		"to_column":   targetID.String(),
		"index":       strconv.Itoa(at),
	})
	return true
}

// FindCard locates a card anywhere on the board
func (s *Store) FindCard(boardID types.BoardID, cardID types.CardID) (*models.Card, *models.Column) {
	b := s.GetBoard(boardID)
	if b == nil {
		return nil, nil
	}
	return findCard(b, cardID)
}

// DeleteCard removes a card from whichever column holds it
func (s *Store) DeleteCard(boardID types.BoardID, cardID types.CardID) bool {
	b := s.GetBoard(boardID)
	if b == nil {
		return false
	}
	_, col := findCard(b, cardID)
	if col == nil {
		return false
	}
	i := col.IndexOf(cardID)
	col.Cards = slices.Delete(col.Cards, i, i+1)
	s.touch(b)

	s.emit(events.EventDeleted, events.EntityCard, cardID.String(), boardID.String(), nil)
	return true
}

// Snapshot returns a deep copy of every board
func (s *Store) Snapshot() []models.KanbanBoard {
	out := make([]models.KanbanBoard, len(s.boards))
	for i, b := range s.boards {
		out[i] = b.Clone()
	}
	return out
}

// Restore replaces the store contents with a copy of records without
// emitting events. A card id may appear once per board; later copies are
// dropped and their ids returned.
func (s *Store) Restore(records []models.KanbanBoard) (duplicates []types.CardID) {
	s.boards = make([]*models.KanbanBoard, len(records))
	for i := range records {
		b := records[i].Clone()
		duplicates = append(duplicates, dedupeCards(&b)...)
		s.boards[i] = &b
	}
	return duplicates
}

func dedupeCards(b *models.KanbanBoard) []types.CardID {
	var dropped []types.CardID
	seen := make(map[types.CardID]bool)
	for _, col := range b.Columns {
		col.Cards = slices.DeleteFunc(col.Cards, func(card *models.Card) bool {
			if seen[card.ID] {
				dropped = append(dropped, card.ID)
				return true
			}
			seen[card.ID] = true
			return false
		})
	}
	return dropped
}

func (s *Store) column(boardID types.BoardID, columnID types.ColumnID) (*models.KanbanBoard, *models.Column) {
	b := s.GetBoard(boardID)
	if b == nil {
		return nil, nil
	}
	i := columnIndex(b, columnID)
	if i < 0 {
		return b, nil
	}
	return b, b.Columns[i]
}

func (s *Store) touch(b *models.KanbanBoard) {
	b.UpdatedAt = s.now()
}

func (s *Store) emit(typ events.EventType, entity events.Entity, id, parent string, meta map[string]string, related ...string) {
	s.emitter.Emit(events.Event{
		Type:     typ,
		Entity:   entity,
		EntityID: id,
		ParentID: parent,
		Meta:     meta,
		Related:  related,
	})
}

func columnIndex(b *models.KanbanBoard, id types.ColumnID) int {
	return slices.IndexFunc(b.Columns, func(c *models.Column) bool { return c.ID == id })
}

func findCard(b *models.KanbanBoard, id types.CardID) (*models.Card, *models.Column) {
	for _, col := range b.Columns {
		if i := col.IndexOf(id); i >= 0 {
			return col.Cards[i], col
		}
	}
	return nil, nil
}
