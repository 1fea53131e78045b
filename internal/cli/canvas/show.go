package canvas

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/orion/internal/cli"
	"github.com/thenoetrevino/orion/internal/cli/render"
	"github.com/thenoetrevino/orion/internal/types"
)

// ShowCmd returns the canvas show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <canvas-id>",
		Short: "Show a canvas and its elements",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		canvas, err := c.App.CanvasService.GetCanvas(types.CanvasID(args[0]))
		if err != nil {
			return err
		}

		ids := make([]string, len(canvas.Elements))
		for i, e := range canvas.Elements {
			ids[i] = string(e.Base().ID)
		}
		return f.Success("canvas", cli.CanvasView(canvas), ids, func(w io.Writer) {
			fmt.Fprintln(w, render.Canvas(canvas))
		})
	})
}
