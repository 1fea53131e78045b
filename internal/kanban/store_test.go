package kanban

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/thenoetrevino/orion/internal/events"
	"github.com/thenoetrevino/orion/internal/models"
	"github.com/thenoetrevino/orion/internal/types"
)

type recorder struct {
	events []events.Event
}

func (r *recorder) Emit(e events.Event) { r.events = append(r.events, e) }

var defaultColumns = []string{"Todo", "Doing", "Done"}

// setupBoard creates a board with the default columns and the given card
// titles in each column, keyed by column title.
func setupBoard(t *testing.T, cards map[string][]string) (*Store, *recorder, *models.KanbanBoard) {
	t.Helper()
	rec := &recorder{}
	s := NewStore(rec)
	b := s.CreateBoard("Sprint", "", defaultColumns)
	for _, col := range b.Columns {
		for _, title := range cards[col.Title] {
			if s.AddCard(b.ID, col.ID, title, "") == nil {
				t.Fatalf("AddCard(%s, %s) failed", col.Title, title)
			}
		}
	}
	rec.events = nil
	return s, rec, b
}

func titles(col *models.Column) []string {
	out := make([]string, len(col.Cards))
	for i, c := range col.Cards {
		out[i] = c.Title
	}
	return out
}

func cardID(t *testing.T, col *models.Column, title string) types.CardID {
	t.Helper()
	for _, c := range col.Cards {
		if c.Title == title {
			return c.ID
		}
	}
	t.Fatalf("card %q not in column %s", title, col.Title)
	return ""
}

func TestMoveCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		card      string
		from, to  int
		index     int
		wantFrom  []string
		wantTo    []string
		sameTitle bool
	}{
		{
			name: "to head of another column", card: "X", from: 0, to: 1, index: 0,
			wantFrom: []string{"Y"}, wantTo: []string{"X", "P", "Q"},
		},
		{
			name: "to middle of another column", card: "X", from: 0, to: 1, index: 1,
			wantFrom: []string{"Y"}, wantTo: []string{"P", "X", "Q"},
		},
		{
			name: "index equal to length appends", card: "Y", from: 0, to: 1, index: 2,
			wantFrom: []string{"X"}, wantTo: []string{"P", "Q", "Y"},
		},
		{
			name: "index past length clamps to tail", card: "X", from: 0, to: 1, index: 99,
			wantFrom: []string{"Y"}, wantTo: []string{"P", "Q", "X"},
		},
		{
			name: "negative index clamps to tail", card: "X", from: 0, to: 1, index: -1,
			wantFrom: []string{"Y"}, wantTo: []string{"P", "Q", "X"},
		},
		{
			name: "same column forward uses post-removal indices", card: "P", from: 1, to: 1, index: 1,
			wantTo: []string{"Q", "P"}, sameTitle: true,
		},
		{
			name: "same column to front", card: "Q", from: 1, to: 1, index: 0,
			wantTo: []string{"Q", "P"}, sameTitle: true,
		},
		{
			name: "same column past end clamps", card: "P", from: 1, to: 1, index: 2,
			wantTo: []string{"Q", "P"}, sameTitle: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			s, rec, b := setupBoard(t, map[string][]string{
				"Todo":  {"X", "Y"},
				"Doing": {"P", "Q"},
			})
			src, dst := b.Columns[tt.from], b.Columns[tt.to]

			if !s.MoveCard(b.ID, cardID(t, src, tt.card), src.ID, dst.ID, tt.index) {
				t.Fatal("Expected MoveCard to succeed")
			}
			if !tt.sameTitle {
				if diff := cmp.Diff(tt.wantFrom, titles(src)); diff != "" {
					t.Errorf("source mismatch (-want +got):\n%s", diff)
				}
			}
			if diff := cmp.Diff(tt.wantTo, titles(dst)); diff != "" {
				t.Errorf("target mismatch (-want +got):\n%s", diff)
			}
			if b.CardCount() != 4 {
				t.Errorf("Expected 4 cards, got %d", b.CardCount())
			}
			if len(rec.events) != 1 {
				t.Errorf("Expected 1 event, got %d", len(rec.events))
			}
		})
	}
}

func TestMoveCard_Failures(t *testing.T) {
	t.Parallel()

	s, rec, b := setupBoard(t, map[string][]string{"Todo": {"X"}, "Doing": {"P"}})
	todo, doing := b.Columns[0], b.Columns[1]
	x := cardID(t, todo, "X")

	tests := []struct {
		name     string
		board    types.BoardID
		card     types.CardID
		from, to types.ColumnID
	}{
		{"unknown board", "nope", x, todo.ID, doing.ID},
		{"unknown source", b.ID, x, "nope", doing.ID},
		{"unknown target", b.ID, x, todo.ID, "nope"},
		{"card not in source", b.ID, x, doing.ID, todo.ID},
		{"unknown card", b.ID, "nope", todo.ID, doing.ID},
	}

	before := b.Clone()
	for _, tt := range tests {
		if s.MoveCard(tt.board, tt.card, tt.from, tt.to, 0) {
			t.Errorf("%s: expected MoveCard to fail", tt.name)
		}
	}

	if diff := cmp.Diff(before, b.Clone()); diff != "" {
		t.Errorf("failed moves changed the board (-want +got):\n%s", diff)
	}
	if len(rec.events) != 0 {
		t.Errorf("Expected no events from failed moves, got %d", len(rec.events))
	}
}

// TestMoveCard_RandomSequencePreservesMembership drives many random moves,
// valid and invalid, and checks every card stays in exactly one column.
func TestMoveCard_RandomSequencePreservesMembership(t *testing.T) {
	t.Parallel()

	s, _, b := setupBoard(t, map[string][]string{
		"Todo":  {"a", "b", "c", "d"},
		"Doing": {"e", "f"},
		"Done":  {"g"},
	})
	var all []types.CardID
	for _, col := range b.Columns {
		for _, c := range col.Cards {
			all = append(all, c.ID)
		}
	}

	rng := rand.New(rand.NewPCG(1, 2))
	for range 500 {
		card := all[rng.IntN(len(all))]
		from := b.Columns[rng.IntN(len(b.Columns))].ID
		to := b.Columns[rng.IntN(len(b.Columns))].ID
		s.MoveCard(b.ID, card, from, to, rng.IntN(12)-3)

		seen := make(map[types.CardID]int)
		for _, col := range b.Columns {
			for _, c := range col.Cards {
				seen[c.ID]++
			}
		}
		if len(seen) != len(all) {
			t.Fatalf("Expected %d distinct cards, got %d", len(all), len(seen))
		}
		for id, n := range seen {
			if n != 1 {
				t.Fatalf("card %s appears %d times", id, n)
			}
		}
	}
}

func TestCreateBoard_SeedsColumns(t *testing.T) {
	t.Parallel()

	s := NewStore(nil)
	b := s.CreateBoard("Roadmap", "team", defaultColumns)

	var got []string
	for _, col := range b.Columns {
		got = append(got, col.Title)
		if col.ID == "" {
			t.Error("Expected column id to be assigned")
		}
	}
	if diff := cmp.Diff(defaultColumns, got); diff != "" {
		t.Errorf("columns mismatch (-want +got):\n%s", diff)
	}
	if len(s.ListByGroup("team")) != 1 {
		t.Error("Expected board to be listed under its group")
	}
}

func TestRemoveColumn_DiscardsCards(t *testing.T) {
	t.Parallel()

	s, rec, b := setupBoard(t, map[string][]string{"Todo": {"X", "Y"}, "Doing": {"P"}})
	todo := b.Columns[0]
	x, y := cardID(t, todo, "X"), cardID(t, todo, "Y")

	if !s.RemoveColumn(b.ID, todo.ID) {
		t.Fatal("Expected RemoveColumn to succeed")
	}
	if s.RemoveColumn(b.ID, todo.ID) {
		t.Error("Expected second RemoveColumn to fail")
	}
	if got, _ := s.FindCard(b.ID, x); got != nil {
		t.Error("Expected discarded card to be gone")
	}
	if b.CardCount() != 1 {
		t.Errorf("Expected 1 remaining card, got %d", b.CardCount())
	}

	if len(rec.events) != 1 {
		t.Fatalf("Expected 1 event, got %d", len(rec.events))
	}
	if diff := cmp.Diff([]string{x.String(), y.String()}, rec.events[0].Related); diff != "" {
		t.Errorf("discarded ids mismatch (-want +got):\n%s", diff)
	}
}

func TestColumnOperations(t *testing.T) {
	t.Parallel()

	s, _, b := setupBoard(t, nil)
	col := s.AddColumn(b.ID, "Review")
	if col == nil {
		t.Fatal("Expected AddColumn to succeed")
	}
	if b.Columns[len(b.Columns)-1] != col {
		t.Error("Expected new column at the end")
	}
	if s.AddColumn("missing", "x") != nil {
		t.Error("Expected AddColumn on unknown board to fail")
	}
	if !s.RenameColumn(b.ID, col.ID, "QA") || s.GetColumn(b.ID, col.ID).Title != "QA" {
		t.Error("Expected rename to apply")
	}
	if s.AddCard(b.ID, "missing", "t", "") != nil {
		t.Error("Expected AddCard on unknown column to return nil")
	}
}

func TestCardEdits(t *testing.T) {
	t.Parallel()

	s, rec, b := setupBoard(t, map[string][]string{"Todo": {"X"}})
	x := cardID(t, b.Columns[0], "X")

	title := "Renamed"
	due := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	if !s.UpdateCard(b.ID, x, CardUpdate{Title: &title, DueDate: &due}) {
		t.Fatal("Expected UpdateCard to succeed")
	}
	if !s.AssignUser(b.ID, x, "alice") {
		t.Error("Expected AssignUser to succeed")
	}
	if s.AssignUser(b.ID, x, "alice") {
		t.Error("Expected duplicate assignment to be a no-op")
	}
	if !s.AddCardTag(b.ID, x, "bug") {
		t.Error("Expected AddCardTag to succeed")
	}
	if s.RemoveCardTag(b.ID, x, "feature") {
		t.Error("Expected removing an absent tag to be a no-op")
	}
	if !s.UnassignUser(b.ID, x, "alice") {
		t.Error("Expected UnassignUser to succeed")
	}

	card, _ := s.FindCard(b.ID, x)
	if card.Title != "Renamed" || card.DueDate == nil || !card.DueDate.Equal(due) {
		t.Errorf("unexpected card %+v", card)
	}
	if diff := cmp.Diff([]string{"bug"}, card.Tags); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
	if len(card.AssigneeIDs) != 0 {
		t.Errorf("Expected no assignees, got %v", card.AssigneeIDs)
	}
	// update, assign, tag, unassign
	if len(rec.events) != 4 {
		t.Errorf("Expected 4 events, got %d", len(rec.events))
	}

	if !s.UpdateCard(b.ID, x, CardUpdate{ClearDue: true}) {
		t.Fatal("Expected UpdateCard to succeed")
	}
	if card.DueDate != nil {
		t.Error("Expected due date to be cleared")
	}
}

func TestDeleteCard(t *testing.T) {
	t.Parallel()

	s, _, b := setupBoard(t, map[string][]string{"Doing": {"P", "Q"}})
	p := cardID(t, b.Columns[1], "P")

	if !s.DeleteCard(b.ID, p) {
		t.Fatal("Expected DeleteCard to succeed")
	}
	if s.DeleteCard(b.ID, p) {
		t.Error("Expected second DeleteCard to fail")
	}
	if diff := cmp.Diff([]string{"Q"}, titles(b.Columns[1])); diff != "" {
		t.Errorf("column mismatch (-want +got):\n%s", diff)
	}
}

func TestMembers(t *testing.T) {
	t.Parallel()

	s, _, b := setupBoard(t, nil)
	if !s.AddMember(b.ID, "u1") || s.AddMember(b.ID, "u1") {
		t.Error("Expected AddMember to succeed once")
	}
	if !s.RemoveMember(b.ID, "u1") || s.RemoveMember(b.ID, "u1") {
		t.Error("Expected RemoveMember to succeed once")
	}
}

func TestSnapshotRestore(t *testing.T) {
	t.Parallel()

	s, _, b := setupBoard(t, map[string][]string{"Todo": {"X"}})
	snap := s.Snapshot()

	s.AddCard(b.ID, b.Columns[0].ID, "later", "")
	if got := len(snap[0].Columns[0].Cards); got != 1 {
		t.Errorf("Expected snapshot to be unaffected, got %d cards", got)
	}

	restored := NewStore(nil)
	restored.Restore(snap)
	if diff := cmp.Diff(snap, restored.Snapshot()); diff != "" {
		t.Errorf("restore mismatch (-want +got):\n%s", diff)
	}
	if !restored.DeleteBoard(b.ID) {
		t.Error("Expected restored board to be deletable")
	}
}

func TestRestore_DropsRepeatedCards(t *testing.T) {
	t.Parallel()

	card := models.Card{ID: "x", Title: "X"}
	first, second, third := card, card, models.Card{ID: "y", Title: "Y"}
	records := []models.KanbanBoard{{ID: "b", Columns: []*models.Column{
		{ID: "todo", Cards: []*models.Card{&first, &third}},
		{ID: "done", Cards: []*models.Card{&second}},
	}}}

	s := NewStore(nil)
	dupes := s.Restore(records)
	if diff := cmp.Diff([]types.CardID{"x"}, dupes); diff != "" {
		t.Errorf("duplicates mismatch (-want +got):\n%s", diff)
	}
	b := s.GetBoard("b")
	if b.CardCount() != 2 || len(b.Columns[1].Cards) != 0 {
		t.Errorf("Expected the second copy of x removed, got %d cards", b.CardCount())
	}
	if len(records[0].Columns[1].Cards) != 1 {
		t.Error("Expected the input records to be left alone")
	}
}
