package models

import (
	"slices"
	"time"

	"github.com/thenoetrevino/orion/internal/types"
)

// KanbanBoard is an ordered set of columns
type KanbanBoard struct {
	ID        types.BoardID
	Title     string
	GroupID   types.GroupID
	MemberIDs []string
	Columns   []*Column
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Clone returns a deep copy of the board
func (b *KanbanBoard) Clone() KanbanBoard {
	out := *b
	out.MemberIDs = slices.Clone(b.MemberIDs)
	out.Columns = make([]*Column, len(b.Columns))
	for i, col := range b.Columns {
		c := col.Clone()
		out.Columns[i] = &c
	}
	return out
}

// CardCount totals the cards across every column
func (b *KanbanBoard) CardCount() int {
	n := 0
	for _, col := range b.Columns {
		n += len(col.Cards)
	}
	return n
}

// Column is an ordered list of cards (e.g., "Todo", "Doing", "Done")
type Column struct {
	ID    types.ColumnID
	Title string
	Cards []*Card
}

// Clone returns a deep copy of the column
func (c *Column) Clone() Column {
	out := *c
	out.Cards = make([]*Card, len(c.Cards))
	for i, card := range c.Cards {
		cc := card.Clone()
		out.Cards[i] = &cc
	}
	return out
}

// IndexOf returns the position of a card in the column, or -1
func (c *Column) IndexOf(id types.CardID) int {
	return slices.IndexFunc(c.Cards, func(card *Card) bool { return card.ID == id })
}

// Card is a single work item. A card id lives in exactly one column.
type Card struct {
	ID          types.CardID
	Title       string
	Description string
	AssigneeIDs []string
	Tags        []string
	CreatedAt   time.Time
	DueDate     *time.Time
}

// Clone returns a deep copy of the card
func (c *Card) Clone() Card {
	out := *c
	out.AssigneeIDs = slices.Clone(c.AssigneeIDs)
	out.Tags = slices.Clone(c.Tags)
	if c.DueDate != nil {
		d := *c.DueDate
		out.DueDate = &d
	}
	return out
}
