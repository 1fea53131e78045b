package vault

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/orion/internal/models"
	"github.com/thenoetrevino/orion/internal/types"
)

func TestSlugify(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Meeting Notes":     "meeting-notes",
		"  Q3 / Roadmap!! ": "q3-roadmap",
		"Ünïcode Títle":     "ünïcode-títle",
		"???":               "untitled",
		"":                  "untitled",
	}
	for in, want := range tests {
		assert.Equal(t, want, Slugify(in), "Slugify(%q)", in)
	}
}

func TestExportImport_RoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	created := time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)
	notes := []models.Note{
		{ID: "n1", Title: "Daily Log", Content: "see [[Plans]]\n", Tags: []string{"log"}, CreatedAt: created, ModifiedAt: created},
		{ID: "n2", Title: "daily log", Content: "second with same slug"},
		{ID: "n3", Title: "Plans", Content: "---\nnot frontmatter\n"},
	}

	names, err := Export(dir, notes)
	require.NoError(t, err)
	assert.Equal(t, []string{"daily-log.md", "daily-log-2.md", "plans.md"}, names)

	records, err := Import(dir, "")
	require.NoError(t, err)
	require.Len(t, records, 3)

	byID := make(map[types.NoteID]Record)
	for _, r := range records {
		byID[r.ID] = r
	}
	first := byID["n1"]
	assert.Equal(t, "Daily Log", first.Title)
	assert.Equal(t, "see [[Plans]]\n", first.Content)
	assert.Equal(t, []string{"log"}, first.Tags)
	assert.True(t, first.Created.Equal(created))
	assert.Equal(t, "daily-log.md", first.Path)

	assert.Equal(t, "---\nnot frontmatter\n", byID["n3"].Content)
}

func TestImport_PatternAndFallbackTitle(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "projects", "deep"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "projects", "deep", "Scratch.md"), []byte("plain body"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "top.md"), []byte("top"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "projects", "skip.txt"), []byte("x"), 0o644))

	records, err := Import(dir, "projects/**/*.md")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Scratch", records[0].Title)
	assert.Equal(t, "plain body", records[0].Content)
	assert.Equal(t, "projects/deep/Scratch.md", records[0].Path)

	_, err = Import(dir, "[")
	assert.Error(t, err)
}

func TestParse_Errors(t *testing.T) {
	t.Parallel()

	_, err := Parse(strings.NewReader("---\ntitle: x\nno closing"), "f")
	assert.Error(t, err)

	_, err = Parse(strings.NewReader("---\ntitle: [unclosed\n---\n"), "f")
	assert.Error(t, err)

	_, err = Parse(strings.NewReader("body"), "")
	assert.ErrorIs(t, err, ErrNoTitle)

	rec, err := Parse(strings.NewReader("---\ntags: [a]\n---\nbody"), "fallback")
	require.NoError(t, err)
	assert.Equal(t, "fallback", rec.Title)
	assert.Equal(t, "body", rec.Content)
}

func TestWatch_DebouncesWrites(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	got := make(chan Record, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, dir, "*.md", func(r Record) { got <- r }, nil)
	}()

	// Give the watcher time to register the directory
	time.Sleep(100 * time.Millisecond)

	path := filepath.Join(dir, "idea.md")
	for i := range 5 {
		content := "---\ntitle: Idea\n---\nrevision " + string(rune('0'+i))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "ignored.txt"), []byte("x"), 0o644))

	// A slow machine may split the burst, but the last record always carries
	// the final revision
	deadline := time.After(3 * time.Second)
	for {
		select {
		case rec := <-got:
			assert.Equal(t, "Idea", rec.Title)
			if rec.Content != "revision 4" {
				continue
			}
		case <-deadline:
			t.Fatal("Expected the final revision from the watcher")
		}
		break
	}

	cancel()
	require.NoError(t, <-done)
}

func TestWatch_CallbacksRunOneAtATime(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var (
		inFlight, maxInFlight atomic.Int32
		calls                 = make(chan string, 16)
	)
	fn := func(r Record) {
		n := inFlight.Add(1)
		for {
			prev := maxInFlight.Load()
			if n <= prev || maxInFlight.CompareAndSwap(prev, n) {
				break
			}
		}
		time.Sleep(100 * time.Millisecond)
		inFlight.Add(-1)
		calls <- r.Title
	}

	done := make(chan error, 1)
	go func() { done <- Watch(ctx, dir, "*.md", fn, nil) }()
	time.Sleep(100 * time.Millisecond)

	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name+".md"), []byte("body"), 0o644))
	}

	seen := map[string]bool{}
	deadline := time.After(5 * time.Second)
	for len(seen) < 3 {
		select {
		case title := <-calls:
			seen[title] = true
		case <-deadline:
			t.Fatalf("Expected callbacks for a, b and c, got %v", seen)
		}
	}

	assert.Equal(t, int32(1), maxInFlight.Load(), "callbacks overlapped")
	cancel()
	require.NoError(t, <-done)
}

func TestDebouncer_CoalescesPerKey(t *testing.T) {
	t.Parallel()

	d := newDebouncer(20 * time.Millisecond)
	defer d.stop()

	d.add("a")
	d.add("a")
	d.add("b")

	got := map[string]int{}
	timeout := time.After(2 * time.Second)
	for len(got) < 2 {
		select {
		case key := <-d.ready:
			got[key]++
		case <-timeout:
			t.Fatalf("Expected signals for a and b, got %v", got)
		}
	}

	select {
	case key := <-d.ready:
		t.Errorf("Expected one signal per key, got extra %q", key)
	case <-time.After(100 * time.Millisecond):
	}
	assert.Equal(t, map[string]int{"a": 1, "b": 1}, got)
}
