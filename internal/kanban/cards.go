package kanban

import (
	"slices"
	"time"

	"github.com/thenoetrevino/orion/internal/events"
	"github.com/thenoetrevino/orion/internal/models"
	"github.com/thenoetrevino/orion/internal/types"
)

// CardUpdate carries the editable card fields. Nil fields are left unchanged;
// ClearDue removes the due date.
type CardUpdate struct {
	Title       *string
	Description *string
	DueDate     *time.Time
	ClearDue    bool
}

// UpdateCard applies the non-nil fields of u
func (s *Store) UpdateCard(boardID types.BoardID, cardID types.CardID, u CardUpdate) bool {
	return s.editCard(boardID, cardID, func(c *models.Card) bool {
		if u.Title != nil {
			c.Title = *u.Title
		}
		if u.Description != nil {
			c.Description = *u.Description
		}
		switch {
		case u.ClearDue:
			c.DueDate = nil
		case u.DueDate != nil:
			due := *u.DueDate
			c.DueDate = &due
		}
		return true
	})
}

// AssignUser adds userID to the card's assignees. Already assigned is a no-op.
func (s *Store) AssignUser(boardID types.BoardID, cardID types.CardID, userID string) bool {
	return s.editCard(boardID, cardID, func(c *models.Card) bool {
		return addUnique(&c.AssigneeIDs, userID)
	})
}

// UnassignUser removes userID from the card's assignees
func (s *Store) UnassignUser(boardID types.BoardID, cardID types.CardID, userID string) bool {
	return s.editCard(boardID, cardID, func(c *models.Card) bool {
		return removeValue(&c.AssigneeIDs, userID)
	})
}

// AddCardTag tags a card
func (s *Store) AddCardTag(boardID types.BoardID, cardID types.CardID, tag string) bool {
	return s.editCard(boardID, cardID, func(c *models.Card) bool {
		return addUnique(&c.Tags, tag)
	})
}

// RemoveCardTag untags a card. Removing a tag the card lacks is a no-op.
func (s *Store) RemoveCardTag(boardID types.BoardID, cardID types.CardID, tag string) bool {
	return s.editCard(boardID, cardID, func(c *models.Card) bool {
		return removeValue(&c.Tags, tag)
	})
}

// editCard runs fn on the card and emits only when fn reports a change
func (s *Store) editCard(boardID types.BoardID, cardID types.CardID, fn func(*models.Card) bool) bool {
	b := s.GetBoard(boardID)
	if b == nil {
		return false
	}
	card, _ := findCard(b, cardID)
	if card == nil || !fn(card) {
		return false
	}
	s.touch(b)

	s.emit(events.EventUpdated, events.EntityCard, cardID.String(), boardID.String(), nil)
	return true
}

func addUnique(set *[]string, v string) bool {
	if slices.Contains(*set, v) {
		return false
	}
	*set = append(*set, v)
	return true
}

func removeValue(set *[]string, v string) bool {
	i := slices.Index(*set, v)
	if i < 0 {
		return false
	}
	*set = slices.Delete(*set, i, i+1)
	return true
}
