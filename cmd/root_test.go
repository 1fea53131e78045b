package cmd

import (
	"bytes"
	"testing"

	"github.com/thenoetrevino/orion/internal/cli"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := NewRootCmd()

	want := map[string]bool{"canvas": false, "board": false, "note": false, "workspace": false}
	for _, sub := range root.Commands() {
		if _, ok := want[sub.Name()]; ok {
			want[sub.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("Expected a %q subcommand", name)
		}
	}
}

func TestRootCmd_UnknownFlagIsUsageError(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs([]string{"--no-such-flag"})

	err := root.Execute()
	if got := cli.ExitCode(err); got != cli.ExitUsage {
		t.Errorf("Expected exit code %d, got %d (%v)", cli.ExitUsage, got, err)
	}
}
