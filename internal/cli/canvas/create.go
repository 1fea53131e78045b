package canvas

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/orion/internal/cli"
	canvasservice "github.com/thenoetrevino/orion/internal/services/canvas"
	"github.com/thenoetrevino/orion/internal/types"
)

// CreateCmd returns the canvas create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new canvas",
		Long: `Create a new, empty canvas.

Examples:
  # Simple canvas (human-readable output)
  orion canvas create --title="Architecture"

  # Quiet mode for bash capture
  CANVAS_ID=$(orion canvas create --title="Architecture" --quiet)
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("title", "", "Canvas title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("group", "", "Owning team id")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	group, _ := cmd.Flags().GetString("group")

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		canvas, err := c.App.CanvasService.CreateCanvas(canvasservice.CreateCanvasRequest{
			Title:   title,
			GroupID: types.GroupID(group),
		})
		if err != nil {
			return err
		}

		return f.Success("canvas", cli.CanvasView(canvas), cli.IDs(canvas.ID), func(w io.Writer) {
			fmt.Fprintf(w, "✓ Canvas '%s' created successfully (ID: %s)\n", canvas.Title, canvas.ID)
		})
	})
}
