package workspace

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/thenoetrevino/orion/internal/cli"
	"github.com/thenoetrevino/orion/internal/events"
	"github.com/thenoetrevino/orion/internal/services/note"
	"github.com/thenoetrevino/orion/internal/testutil"
	cliutil "github.com/thenoetrevino/orion/internal/testutil/cli"
)

func exitCode(t *testing.T, c *cli.CLI, args ...string) int {
	t.Helper()
	_, err := cliutil.ExecuteCLICommand(t, c, WorkspaceCmd(), args)
	return cli.ExitCode(err)
}

func seed(t *testing.T, c *cli.CLI) {
	t.Helper()
	if _, err := c.App.NoteService.CreateNote(note.CreateNoteRequest{Title: "Alpha", Content: "see [[Beta]]"}); err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}
	if _, err := c.App.NoteService.CreateNote(note.CreateNoteRequest{Title: "Beta", Tags: []string{"ref"}}); err != nil {
		t.Fatalf("CreateNote failed: %v", err)
	}
}

func TestExportImport(t *testing.T) {
	t.Parallel()

	src := cliutil.SetupCLITest(t)
	seed(t, src)
	path := filepath.Join(t.TempDir(), "backup.orna")

	out := cliutil.MustRun(t, src, WorkspaceCmd(), "export", "--file="+path, "--json")
	if got := testutil.ParseJSON(t, out)["exported"].(map[string]any)["notes"]; got != float64(2) {
		t.Errorf("Expected 2 exported notes, got %v", got)
	}

	dst := cliutil.SetupCLITest(t)
	cliutil.MustRun(t, dst, WorkspaceCmd(), "import", "--file="+path)

	notes := dst.App.NoteService.ListNotes()
	if len(notes) != 2 || notes[0].Title != "Alpha" {
		t.Fatalf("Expected Alpha and Beta after import, got %d notes", len(notes))
	}
	if len(notes[0].LinkedNoteIDs) != 1 || notes[0].LinkedNoteIDs[0] != notes[1].ID {
		t.Errorf("Expected the Alpha -> Beta link to survive, got %v", notes[0].LinkedNoteIDs)
	}
}

func TestImport_CorruptArchive(t *testing.T) {
	t.Parallel()

	c := cliutil.SetupCLITest(t)
	seed(t, c)
	path := filepath.Join(t.TempDir(), "junk.orna")
	if err := os.WriteFile(path, []byte(strings.Repeat("not an archive ", 8)), 0o644); err != nil {
		t.Fatal(err)
	}

	if got := exitCode(t, c, "import", "--file="+path); got != cli.ExitDataErr {
		t.Errorf("Expected data error exit code, got %d", got)
	}
	if len(c.App.NoteService.ListNotes()) != 2 {
		t.Error("Expected a failed import to leave the workspace untouched")
	}
	if _, err := cliutil.ExecuteCLICommand(t, c, WorkspaceCmd(), []string{"import"}); err == nil {
		t.Error("Expected an error for the missing required flag")
	}
}

func TestVaultExportImport(t *testing.T) {
	t.Parallel()

	c := cliutil.SetupCLITest(t)
	seed(t, c)
	dir := t.TempDir()

	files := strings.Split(cliutil.MustRun(t, c, WorkspaceCmd(), "vault-export", "--dir="+dir, "--quiet"), "\n")
	if len(files) != 2 {
		t.Fatalf("Expected 2 files, got %v", files)
	}

	// Edit Alpha on disk and add a brand new file without frontmatter
	alpha := filepath.Join(dir, files[0])
	data, err := os.ReadFile(alpha)
	if err != nil {
		t.Fatal(err)
	}
	edited := strings.Replace(string(data), "see [[Beta]]", "see [[Gamma]]", 1)
	if err := os.WriteFile(alpha, []byte(edited), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "Gamma.md"), []byte("fresh"), 0o644); err != nil {
		t.Fatal(err)
	}

	out := cliutil.MustRun(t, c, WorkspaceCmd(), "vault-import", "--dir="+dir, "--json")
	result := testutil.ParseJSON(t, out)["imported"].(map[string]any)
	if result["created"] != float64(1) || result["updated"] != float64(2) {
		t.Errorf("Expected 1 created and 2 updated, got %v", result)
	}

	notes := c.App.NoteService.ListNotes()
	if len(notes) != 3 {
		t.Fatalf("Expected 3 notes, got %d", len(notes))
	}
	if notes[0].Content != "see [[Gamma]]" || notes[2].Title != "Gamma" {
		t.Errorf("Expected Alpha edited and Gamma created, got %q and %q", notes[0].Content, notes[2].Title)
	}
}

func TestVaultCommands_RequireDir(t *testing.T) {
	t.Parallel()

	c := cliutil.SetupCLITest(t)
	for _, sub := range []string{"vault-export", "vault-import", "vault-watch"} {
		if got := exitCode(t, c, sub); got != cli.ExitUsage {
			t.Errorf("%s: expected usage error without a vault dir, got %d", sub, got)
		}
	}
}

func TestActivity(t *testing.T) {
	t.Parallel()

	c := cliutil.SetupCLITest(t)
	ctx := context.Background()
	for i, id := range []string{"n1", "n2", "n3"} {
		err := c.App.Repo().AppendActivity(ctx, events.Event{
			Type:       events.EventCreated,
			Entity:     events.EntityNote,
			EntityID:   id,
			Timestamp:  time.Now(),
			SequenceID: int64(i + 1),
		})
		if err != nil {
			t.Fatalf("AppendActivity failed: %v", err)
		}
	}

	out := cliutil.MustRun(t, c, WorkspaceCmd(), "activity", "--limit=2", "--quiet")
	if out != "n3\nn2" {
		t.Errorf("Expected newest two entries, got %q", out)
	}

	out = cliutil.MustRun(t, c, WorkspaceCmd(), "activity", "--json")
	entries := testutil.ParseJSON(t, out)["activity"].([]any)
	if len(entries) != 3 || entries[0].(map[string]any)["entity"] != "note" {
		t.Errorf("Expected 3 note entries, got %v", entries)
	}

	if got := exitCode(t, c, "activity", "--limit=0"); got != cli.ExitUsage {
		t.Errorf("Expected usage error for a zero limit, got %d", got)
	}
}

func TestStatus(t *testing.T) {
	t.Parallel()

	c := cliutil.SetupCLITest(t)
	seed(t, c)

	out := cliutil.MustRun(t, c, WorkspaceCmd(), "status", "--json")
	status := testutil.ParseJSON(t, out)["status"].(map[string]any)
	counts := status["counts"].(map[string]any)
	if counts["notes"] != float64(2) || counts["boards"] != float64(0) {
		t.Errorf("unexpected counts %v", counts)
	}
	if status["autosave"] == nil {
		t.Error("Expected autosave counters")
	}

	human := cliutil.MustRun(t, c, WorkspaceCmd(), "status")
	if !strings.Contains(human, "notes") {
		t.Errorf("Expected note totals in status, got:\n%s", human)
	}
}
