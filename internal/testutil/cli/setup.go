package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/orion/internal/cli"
	"github.com/thenoetrevino/orion/internal/config"
	"github.com/thenoetrevino/orion/internal/testutil"
)

// SetupCLITest opens a CLI over an in-memory database.
// This function is only for CLI tests and is isolated in a separate package
// to avoid import cycles when service tests import testutil
func SetupCLITest(t *testing.T) *cli.CLI {
	t.Helper()
	db := testutil.SetupTestDB(t)

	c, err := cli.Open(context.Background(), &config.Config{}, db)
	if err != nil {
		t.Fatalf("Failed to open CLI: %v", err)
	}
	t.Cleanup(func() {
		if err := c.Close(); err != nil {
			t.Logf("Warning: CLI close error during cleanup: %v", err)
		}
	})
	return c
}

// ExecuteCLICommand executes a CLI command against a test CLI instance.
// Commands pick the instance up through cli.GetCLIFromContext.
func ExecuteCLICommand(t *testing.T, c *cli.CLI, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()

	if c == nil {
		t.Fatal("CLI cannot be nil - SetupCLITest must be called first")
	}
	return testutil.ExecuteCommand(t, cli.WithCLI(context.Background(), c), cmd, args)
}

// MustRun executes a command that is expected to succeed and returns its
// trimmed output
func MustRun(t *testing.T, c *cli.CLI, cmd *cobra.Command, args ...string) string {
	t.Helper()

	out, err := ExecuteCLICommand(t, c, cmd, args)
	if err != nil {
		t.Fatalf("%s %v failed: %v\nOutput: %s", cmd.Name(), args, err, out)
	}
	return strings.TrimSpace(out)
}
