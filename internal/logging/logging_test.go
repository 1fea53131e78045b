package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"WARN":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"":        slog.LevelInfo,
		"chatty":  slog.LevelInfo,
	}
	for in, want := range tests {
		if got := ParseLevel(in); got != want {
			t.Errorf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestInit_WritesToFile(t *testing.T) {
	prev := slog.Default()
	defer func() {
		slog.SetDefault(prev)
		log.SetOutput(os.Stderr)
	}()

	path := filepath.Join(t.TempDir(), "logs", "orion.log")
	closer, err := Init(path, "warn")
	if err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	slog.Info("hidden")
	slog.Warn("visible", "board_id", "b1")
	if err := closer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	out := string(data)
	if strings.Contains(out, "hidden") {
		t.Error("Expected info record to be filtered at warn level")
	}
	if !strings.Contains(out, "visible") || !strings.Contains(out, "board_id=b1") {
		t.Errorf("Expected warn record in log, got %q", out)
	}
}
