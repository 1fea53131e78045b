package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/thenoetrevino/orion/internal/archive"
	"github.com/thenoetrevino/orion/internal/models"
)

// ============================================================================
// Helpers
// ============================================================================

func newTestFormatter(jsonMode, quiet bool) (*OutputFormatter, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return &OutputFormatter{JSON: jsonMode, Quiet: quiet, Out: &out, Err: &errOut}, &out, &errOut
}

// ============================================================================
// Success Tests
// ============================================================================

func TestOutputFormatter_Success_Modes(t *testing.T) {
	data := map[string]any{"title": "Roadmap"}
	ids := []string{"a", "b"}
	human := func(w io.Writer) { fmt.Fprintln(w, "✓ done") }

	tests := []struct {
		name     string
		jsonMode bool
		quiet    bool
		validate func(t *testing.T, out string)
	}{
		{
			name: "human",
			validate: func(t *testing.T, out string) {
				if out != "✓ done\n" {
					t.Errorf("Expected human output, got %q", out)
				}
			},
		},
		{
			name:  "quiet prints ids",
			quiet: true,
			validate: func(t *testing.T, out string) {
				if out != "a\nb\n" {
					t.Errorf("Expected one id per line, got %q", out)
				}
			},
		},
		{
			name:     "json wraps data under key",
			jsonMode: true,
			validate: func(t *testing.T, out string) {
				var result map[string]any
				if err := json.Unmarshal([]byte(out), &result); err != nil {
					t.Fatalf("Failed to parse JSON: %v", err)
				}
				if result["success"] != true {
					t.Error("Expected success to be true")
				}
				if result["canvas"].(map[string]any)["title"] != "Roadmap" {
					t.Errorf("Expected canvas.title Roadmap, got %v", result["canvas"])
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, out, _ := newTestFormatter(tt.jsonMode, tt.quiet)
			if err := f.Success("canvas", data, ids, human); err != nil {
				t.Fatalf("Success failed: %v", err)
			}
			tt.validate(t, out.String())
		})
	}
}

// ============================================================================
// Error Tests
// ============================================================================

func TestOutputFormatter_Error_Human(t *testing.T) {
	f, out, errOut := newTestFormatter(false, false)
	if err := f.ErrorWithSuggestion("NOT_FOUND", "canvas missing", "list canvases"); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("Expected nothing on stdout, got %q", out.String())
	}
	if !strings.Contains(errOut.String(), "canvas missing") || !strings.Contains(errOut.String(), "list canvases") {
		t.Errorf("Expected message and suggestion on stderr, got %q", errOut.String())
	}
}

func TestOutputFormatter_Fail_JSON(t *testing.T) {
	f, out, _ := newTestFormatter(true, false)
	err := f.Fail(fmt.Errorf("board b1: %w", models.ErrNotFound))

	if !Reported(err) {
		t.Error("Expected the error to be marked reported")
	}
	if got := ExitCode(err); got != ExitNotFound {
		t.Errorf("Expected exit code %d, got %d", ExitNotFound, got)
	}

	var result map[string]any
	if jsonErr := json.Unmarshal(out.Bytes(), &result); jsonErr != nil {
		t.Fatalf("Failed to parse JSON: %v", jsonErr)
	}
	errData := result["error"].(map[string]any)
	if result["success"] != false || errData["code"] != "NOT_FOUND" {
		t.Errorf("unexpected error payload %v", result)
	}
	if errData["suggestion"] == nil {
		t.Error("Expected a suggestion for a not found error")
	}

	if f.Fail(nil) != nil {
		t.Error("Expected Fail(nil) to be nil")
	}
}

// ============================================================================
// Exit Code Tests
// ============================================================================

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
		code string
	}{
		{"nil", nil, ExitSuccess, "ERROR"},
		{"not found", fmt.Errorf("x: %w", models.ErrNotFound), ExitNotFound, "NOT_FOUND"},
		{"invalid", models.ErrInvalidArgument, ExitValidation, "VALIDATION_ERROR"},
		{"no-op", fmt.Errorf("tag: %w", models.ErrNoOp), ExitNoChange, "NO_CHANGE"},
		{"bad archive", fmt.Errorf("read: %w", archive.ErrChecksumMismatch), ExitDataErr, "DATA_ERROR"},
		{"usage", UsageError(errors.New("bad flag")), ExitUsage, "USAGE_ERROR"},
		{"other", errors.New("disk full"), ExitError, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
			if tt.err != nil {
				if got := ErrorCode(tt.err); got != tt.code {
					t.Errorf("ErrorCode() = %s, want %s", got, tt.code)
				}
			}
		})
	}
}

func TestReported_PlainErrors(t *testing.T) {
	if Reported(errors.New("x")) || Reported(UsageError(errors.New("x"))) {
		t.Error("Expected only Fail results to count as reported")
	}
}
