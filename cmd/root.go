package cmd

import (
	"github.com/spf13/cobra"
	"github.com/thenoetrevino/orion/internal/cli"
	"github.com/thenoetrevino/orion/internal/cli/board"
	"github.com/thenoetrevino/orion/internal/cli/canvas"
	"github.com/thenoetrevino/orion/internal/cli/note"
	"github.com/thenoetrevino/orion/internal/cli/workspace"
)

var rootCmd = NewRootCmd()

// NewRootCmd assembles the orion command tree
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "orion",
		Short: "Orion - canvases, kanban boards and linked notes",
		Long: `Orion keeps three kinds of workspace content consistent:
canvases of elements joined by connections, kanban boards of columns
and cards, and markdown notes linked by [[Title]] references.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Bad flags are usage mistakes, not runtime failures
	root.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return cli.UsageError(err)
	})

	root.AddCommand(canvas.CanvasCmd())
	root.AddCommand(board.BoardCmd())
	root.AddCommand(note.NoteCmd())
	root.AddCommand(workspace.WorkspaceCmd())
	return root
}

// Execute runs the root command. The returned error already carries its
// exit code; see cli.ExitCode.
func Execute() error {
	return rootCmd.Execute()
}
