package notes

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/thenoetrevino/orion/internal/events"
	"github.com/thenoetrevino/orion/internal/models"
	"github.com/thenoetrevino/orion/internal/types"
)

type recorder struct {
	events []events.Event
}

func (r *recorder) Emit(e events.Event) { r.events = append(r.events, e) }

func newTestStore(t *testing.T) (*Store, *recorder) {
	t.Helper()
	rec := &recorder{}
	return NewStore(rec), rec
}

func TestUpdateContent_ResolvesLinks(t *testing.T) {
	t.Parallel()

	s, rec := newTestStore(t)
	alpha := s.CreateNote("Alpha", "", nil, "")
	beta := s.CreateNote("Beta", "", nil, "")
	rec.events = nil

	if !s.UpdateContent(alpha.ID, "see [[Beta]]") {
		t.Fatal("Expected UpdateContent to succeed")
	}
	if diff := cmp.Diff([]types.NoteID{beta.ID}, alpha.LinkedNoteIDs); diff != "" {
		t.Errorf("links mismatch (-want +got):\n%s", diff)
	}
	if len(rec.events) != 1 || rec.events[0].Type != events.EventUpdated {
		t.Errorf("Expected one update event, got %+v", rec.events)
	}
}

func TestUpdateContent_FoldsUnicodeTitles(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	src := s.CreateNote("Source", "", nil, "")
	street := s.CreateNote("Straße", "", nil, "")
	school := s.CreateNote("École", "", nil, "")
	sigma := s.CreateNote("ΣΟΦΙΑ", "", nil, "")

	if !s.UpdateContent(src.ID, "[[STRASSE]] [[école]] [[σοφια]]") {
		t.Fatal("Expected UpdateContent to succeed")
	}
	want := []types.NoteID{street.ID, school.ID, sigma.ID}
	if diff := cmp.Diff(want, src.LinkedNoteIDs); diff != "" {
		t.Errorf("links mismatch (-want +got):\n%s", diff)
	}
	if got := s.FindByTitle("strasse"); got == nil || got.ID != street.ID {
		t.Errorf("Expected FindByTitle to fold ß, got %+v", got)
	}
	if got := s.Search("strasse"); len(got) != 1 || got[0].ID != street.ID {
		t.Errorf("Expected Search to fold ß, got %+v", got)
	}
}

func TestUpdateContent_DropsUnresolved(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	alpha := s.CreateNote("Alpha", "", nil, "")

	s.UpdateContent(alpha.ID, "see [[Ghost]]")
	if len(alpha.LinkedNoteIDs) != 0 {
		t.Errorf("Expected no links, got %v", alpha.LinkedNoteIDs)
	}
}

func TestUpdateContent_LinkRules(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	src := s.CreateNote("Source", "", nil, "")
	beta := s.CreateNote("Beta", "", nil, "")
	gamma := s.CreateNote("Gamma Ray", "", nil, "")
	s.CreateNote("Beta", "duplicate title, created later", nil, "")

	tests := []struct {
		name    string
		content string
		want    []types.NoteID
	}{
		{name: "case insensitive", content: "[[beta]] [[GAMMA RAY]]", want: []types.NoteID{beta.ID, gamma.ID}},
		{name: "exact not substring", content: "[[Gamma]] [[Bet]]", want: nil},
		{name: "untrimmed title does not match", content: "[[ Beta ]]", want: nil},
		{name: "repeats collapse", content: "[[Beta]] [[Gamma Ray]] [[BETA]]", want: []types.NoteID{beta.ID, gamma.ID}},
		{name: "first created wins on duplicate titles", content: "[[Beta]]", want: []types.NoteID{beta.ID}},
		{name: "self reference", content: "[[Source]]", want: []types.NoteID{src.ID}},
	}

	// Subtests share the store, so they run sequentially
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s.UpdateContent(src.ID, tt.content)
			if diff := cmp.Diff(tt.want, src.LinkedNoteIDs); diff != "" {
				t.Errorf("links mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestUpdateContent_Recomputes(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	a := s.CreateNote("A", "", nil, "")
	s.CreateNote("B", "", nil, "")
	c := s.CreateNote("C", "", nil, "")

	s.UpdateContent(a.ID, "[[B]] [[C]]")
	s.UpdateContent(a.ID, "only [[C]] now")

	if diff := cmp.Diff([]types.NoteID{c.ID}, a.LinkedNoteIDs); diff != "" {
		t.Errorf("links mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateNote_ComputesLinks(t *testing.T) {
	t.Parallel()

	s, rec := newTestStore(t)
	target := s.CreateNote("Target", "", nil, "")
	n := s.CreateNote("Linker", "points at [[target]]", []string{"a", "a", ""}, "team")

	if diff := cmp.Diff([]types.NoteID{target.ID}, n.LinkedNoteIDs); diff != "" {
		t.Errorf("links mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"a"}, n.Tags); diff != "" {
		t.Errorf("tags mismatch (-want +got):\n%s", diff)
	}
	if len(rec.events) != 2 {
		t.Errorf("Expected 2 created events, got %d", len(rec.events))
	}
}

func TestUpdateContent_UnknownNote(t *testing.T) {
	t.Parallel()

	s, rec := newTestStore(t)
	if s.UpdateContent("missing", "x") {
		t.Error("Expected UpdateContent on unknown note to fail")
	}
	if len(rec.events) != 0 {
		t.Errorf("Expected no events, got %d", len(rec.events))
	}
}

func TestDeleteNote(t *testing.T) {
	t.Parallel()

	s, rec := newTestStore(t)
	a := s.CreateNote("A", "", nil, "")
	b := s.CreateNote("B", "", nil, "")
	s.UpdateContent(a.ID, "[[B]]")
	col := s.CreateCollection("Reading", []types.NoteID{a.ID, b.ID})
	other := s.CreateCollection("Other", []types.NoteID{a.ID})
	rec.events = nil

	if !s.DeleteNote(b.ID) {
		t.Fatal("Expected DeleteNote to succeed")
	}
	if s.DeleteNote(b.ID) {
		t.Error("Expected second DeleteNote to fail")
	}

	if diff := cmp.Diff([]types.NoteID{a.ID}, col.NoteIDs); diff != "" {
		t.Errorf("collection mismatch (-want +got):\n%s", diff)
	}
	if len(other.NoteIDs) != 1 {
		t.Error("Expected unrelated collection to be untouched")
	}

	// A's stale edge to B survives until A is edited again
	if diff := cmp.Diff([]types.NoteID{b.ID}, s.GetNoteGraph()[a.ID]); diff != "" {
		t.Errorf("graph mismatch (-want +got):\n%s", diff)
	}
	s.UpdateContent(a.ID, "[[B]]")
	if len(a.LinkedNoteIDs) != 0 {
		t.Errorf("Expected edit to drop the stale edge, got %v", a.LinkedNoteIDs)
	}

	if len(rec.events) != 2 {
		t.Fatalf("Expected 2 events, got %d", len(rec.events))
	}
	if diff := cmp.Diff([]string{col.ID.String()}, rec.events[0].Related); diff != "" {
		t.Errorf("related mismatch (-want +got):\n%s", diff)
	}
}

func TestTags(t *testing.T) {
	t.Parallel()

	s, rec := newTestStore(t)
	n := s.CreateNote("N", "", nil, "")
	rec.events = nil

	if !s.AddTag(n.ID, "go") {
		t.Error("Expected AddTag to succeed")
	}
	if s.AddTag(n.ID, "go") {
		t.Error("Expected duplicate AddTag to be a no-op")
	}
	if s.RemoveTag(n.ID, "rust") {
		t.Error("Expected removing an absent tag to be a no-op")
	}
	if !s.RemoveTag(n.ID, "go") {
		t.Error("Expected RemoveTag to succeed")
	}
	if len(rec.events) != 2 {
		t.Errorf("Expected 2 events, got %d", len(rec.events))
	}
}

func TestQueries(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	a := s.CreateNote("Go Patterns", "channels and select", []string{"go", "lang"}, "team-1")
	b := s.CreateNote("Rust", "ownership", []string{"lang"}, "team-2")
	s.CreateNote("Groceries", "milk", nil, "")

	ids := func(notes []*models.Note) []types.NoteID {
		var out []types.NoteID
		for _, n := range notes {
			out = append(out, n.ID)
		}
		return out
	}

	tests := []struct {
		name string
		got  []*models.Note
		want []types.NoteID
	}{
		{"tags all must match", s.FindByTags([]string{"go", "lang"}), []types.NoteID{a.ID}},
		{"shared tag", s.FindByTags([]string{"lang"}), []types.NoteID{a.ID, b.ID}},
		{"no tags", s.FindByTags(nil), nil},
		{"search title case insensitive", s.Search("rUsT"), []types.NoteID{b.ID}},
		{"search content", s.Search("SELECT"), []types.NoteID{a.ID}},
		{"search empty", s.Search(""), nil},
		{"group", s.ListByGroup("team-2"), []types.NoteID{b.ID}},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, ids(tt.got)); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", tt.name, diff)
		}
	}

	if got := s.FindByTitle("go patterns"); got != a {
		t.Errorf("Expected FindByTitle to resolve case-insensitively, got %v", got)
	}
}

func TestGetNoteGraph_ReturnsCopies(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	a := s.CreateNote("A", "", nil, "")
	b := s.CreateNote("B", "[[A]]", nil, "")

	graph := s.GetNoteGraph()
	if len(graph) != 2 || len(graph[a.ID]) != 0 {
		t.Fatalf("unexpected graph %v", graph)
	}
	graph[b.ID][0] = "tampered"
	if b.LinkedNoteIDs[0] != a.ID {
		t.Error("Expected graph edits to stay out of the store")
	}
}

func TestCollections(t *testing.T) {
	t.Parallel()

	s, rec := newTestStore(t)
	a := s.CreateNote("A", "", nil, "")
	b := s.CreateNote("B", "", nil, "")
	col := s.CreateCollection("Set", []types.NoteID{a.ID, "ghost", a.ID})
	rec.events = nil

	if diff := cmp.Diff([]types.NoteID{a.ID}, col.NoteIDs); diff != "" {
		t.Errorf("initial members mismatch (-want +got):\n%s", diff)
	}
	if s.AddToCollection(col.ID, "ghost") {
		t.Error("Expected adding a missing note to fail")
	}
	if s.AddToCollection(col.ID, a.ID) {
		t.Error("Expected adding a member twice to fail")
	}
	if !s.AddToCollection(col.ID, b.ID) {
		t.Error("Expected AddToCollection to succeed")
	}
	if !s.RemoveFromCollection(col.ID, a.ID) || s.RemoveFromCollection(col.ID, a.ID) {
		t.Error("Expected RemoveFromCollection to succeed once")
	}
	if got := s.CollectionNotes(col.ID); len(got) != 1 || got[0] != b {
		t.Errorf("unexpected collection notes %v", got)
	}
	if !s.DeleteCollection(col.ID) || s.DeleteCollection(col.ID) {
		t.Error("Expected DeleteCollection to succeed once")
	}
	if s.GetNote(b.ID) == nil {
		t.Error("Expected deleting a collection to keep its notes")
	}
	// add, remove, delete
	if len(rec.events) != 3 {
		t.Errorf("Expected 3 events, got %d", len(rec.events))
	}
}

func TestSnapshotRestore(t *testing.T) {
	t.Parallel()

	s, _ := newTestStore(t)
	a := s.CreateNote("A", "", []string{"x"}, "")
	s.CreateNote("B", "[[A]]", nil, "")
	s.CreateCollection("C", []types.NoteID{a.ID})

	snap := s.Snapshot()
	s.AddTag(a.ID, "y")
	if len(snap.Notes[0].Tags) != 1 {
		t.Error("Expected snapshot to be isolated from later edits")
	}

	rec := &recorder{}
	restored := NewStore(rec)
	restored.Restore(snap)
	if len(rec.events) != 0 {
		t.Errorf("Expected Restore to emit nothing, got %d", len(rec.events))
	}
	if diff := cmp.Diff(snap, restored.Snapshot()); diff != "" {
		t.Errorf("restore mismatch (-want +got):\n%s", diff)
	}
	if restored.GetNote(a.ID) == nil {
		t.Error("Expected restored note to be indexed by id")
	}
}
