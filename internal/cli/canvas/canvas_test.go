package canvas

import (
	"errors"
	"strings"
	"testing"

	"github.com/thenoetrevino/orion/internal/cli"
	"github.com/thenoetrevino/orion/internal/testutil"
	cliutil "github.com/thenoetrevino/orion/internal/testutil/cli"
	"github.com/thenoetrevino/orion/internal/types"
)

// ============================================================================
// TEST HELPERS
// ============================================================================

func createCanvas(t *testing.T, c *cli.CLI, title string) string {
	t.Helper()
	return cliutil.MustRun(t, c, CanvasCmd(), "create", "--title="+title, "--quiet")
}

func addText(t *testing.T, c *cli.CLI, canvasID, text string) string {
	t.Helper()
	return cliutil.MustRun(t, c, CanvasCmd(), "add", canvasID, "--kind=text", "--text="+text, "--quiet")
}

// ============================================================================
// TESTS
// ============================================================================

func TestCreateAndList(t *testing.T) {
	t.Parallel()

	c := cliutil.SetupCLITest(t)
	id := createCanvas(t, c, "Architecture")
	if id == "" {
		t.Fatal("Expected quiet mode to print the new id")
	}

	out, err := cliutil.ExecuteCLICommand(t, c, CanvasCmd(), []string{"list", "--json"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	result := testutil.ParseJSON(t, out)
	canvases := result["canvases"].([]any)
	if len(canvases) != 1 || canvases[0].(map[string]any)["id"] != id {
		t.Errorf("Expected the created canvas in the list, got %v", canvases)
	}

	human := cliutil.MustRun(t, c, CanvasCmd(), "list")
	if !strings.Contains(human, "Architecture") {
		t.Errorf("Expected human list to name the canvas, got %q", human)
	}
}

func TestCreate_MissingTitle(t *testing.T) {
	t.Parallel()

	c := cliutil.SetupCLITest(t)
	if _, err := cliutil.ExecuteCLICommand(t, c, CanvasCmd(), []string{"create"}); err == nil {
		t.Error("Expected an error for the missing required flag")
	}

	_, err := cliutil.ExecuteCLICommand(t, c, CanvasCmd(), []string{"create", "--title="})
	if cli.ExitCode(err) != cli.ExitValidation {
		t.Errorf("Expected validation exit code, got %d (%v)", cli.ExitCode(err), err)
	}
}

func TestConnectAndCascade(t *testing.T) {
	t.Parallel()

	c := cliutil.SetupCLITest(t)
	canvasID := createCanvas(t, c, "Flow")
	a := addText(t, c, canvasID, "A")
	b := addText(t, c, canvasID, "B")

	connID := cliutil.MustRun(t, c, CanvasCmd(), "connect", canvasID, a, b, "--arrow", "--style=curved", "--quiet")
	if connID == "" {
		t.Fatal("Expected a connection id")
	}

	out := cliutil.MustRun(t, c, CanvasCmd(), "remove", canvasID, a)
	if !strings.Contains(out, "with 1 connections") {
		t.Errorf("Expected the cascade to be reported, got %q", out)
	}

	conns, err := c.App.CanvasService.GetConnections(types.CanvasID(canvasID))
	if err != nil || len(conns) != 0 {
		t.Errorf("Expected no connections left, got %d (%v)", len(conns), err)
	}

	_, err = cliutil.ExecuteCLICommand(t, c, CanvasCmd(), []string{"connect", canvasID, b, "ghost"})
	if cli.ExitCode(err) != cli.ExitNotFound {
		t.Errorf("Expected not found exit code, got %d", cli.ExitCode(err))
	}
}

func TestAdd_Validation(t *testing.T) {
	t.Parallel()

	c := cliutil.SetupCLITest(t)
	canvasID := createCanvas(t, c, "Shapes")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"shape", []string{"--kind=shape", "--shape=star", "--color=#FF0000", "--size=10,10"}, cli.ExitSuccess},
		{"image", []string{"--kind=image", "--image=a.png", "--at=5,5"}, cli.ExitSuccess},
		{"note", []string{"--kind=note", "--title=t", "--text=body"}, cli.ExitSuccess},
		{"bad color", []string{"--kind=shape", "--color=red"}, cli.ExitValidation},
		{"bad vector", []string{"--kind=text", "--at=1"}, cli.ExitValidation},
		{"bad shape", []string{"--kind=shape", "--shape=blob"}, cli.ExitValidation},
		{"unknown kind", []string{"--kind=blob"}, cli.ExitValidation},
		{"connection kind", []string{"--kind=connection"}, cli.ExitValidation},
		{"image without path", []string{"--kind=image"}, cli.ExitValidation},
	}

	for _, tt := range tests {
		args := append([]string{"add", canvasID, "--quiet"}, tt.args...)
		_, err := cliutil.ExecuteCLICommand(t, c, CanvasCmd(), args)
		if got := cli.ExitCode(err); got != tt.want {
			t.Errorf("%s: expected exit code %d, got %d (%v)", tt.name, tt.want, got, err)
		}
	}

	canvas, _ := c.App.CanvasService.GetCanvas(types.CanvasID(canvasID))
	if len(canvas.Elements) != 3 {
		t.Errorf("Expected 3 elements, got %d", len(canvas.Elements))
	}
}

func TestMoveResizeShow(t *testing.T) {
	t.Parallel()

	c := cliutil.SetupCLITest(t)
	canvasID := createCanvas(t, c, "Layout")
	id := addText(t, c, canvasID, "box")

	cliutil.MustRun(t, c, CanvasCmd(), "move", canvasID, id, "30,40")
	if _, err := cliutil.ExecuteCLICommand(t, c, CanvasCmd(), []string{"resize", canvasID, id, "0,10"}); cli.ExitCode(err) != cli.ExitValidation {
		t.Errorf("Expected a zero width to be rejected, got %v", err)
	}

	out := cliutil.MustRun(t, c, CanvasCmd(), "show", canvasID)
	if !strings.Contains(out, "(30, 40)") || !strings.Contains(out, `"box"`) {
		t.Errorf("Expected the moved element in the rendering, got:\n%s", out)
	}

	out = cliutil.MustRun(t, c, CanvasCmd(), "show", canvasID, "--json")
	canvas := testutil.ParseJSON(t, out)["canvas"].(map[string]any)
	elements := canvas["elements"].([]any)
	pos := elements[0].(map[string]any)["position"].(map[string]any)
	if pos["x"] != 30.0 || pos["y"] != 40.0 {
		t.Errorf("Expected position 30,40 in JSON, got %v", pos)
	}
}

func TestRenameAndDelete(t *testing.T) {
	t.Parallel()

	c := cliutil.SetupCLITest(t)
	id := createCanvas(t, c, "Old")

	cliutil.MustRun(t, c, CanvasCmd(), "rename", id, "--title=New")
	canvas, _ := c.App.CanvasService.GetCanvas(types.CanvasID(id))
	if canvas.Title != "New" {
		t.Errorf("Expected title New, got %s", canvas.Title)
	}

	cliutil.MustRun(t, c, CanvasCmd(), "delete", id)
	_, err := cliutil.ExecuteCLICommand(t, c, CanvasCmd(), []string{"delete", id, "--json"})
	var cmdErr *cli.CommandError
	if !errors.As(err, &cmdErr) || cmdErr.Code != cli.ExitNotFound {
		t.Errorf("Expected not found on second delete, got %v", err)
	}
}
