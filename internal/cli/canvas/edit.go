package canvas

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/orion/internal/cli"
	"github.com/thenoetrevino/orion/internal/types"
)

// RenameCmd returns the canvas rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <canvas-id>",
		Short: "Rename a canvas",
		Args:  cobra.ExactArgs(1),
		RunE:  runRename,
	}

	cmd.Flags().String("title", "", "New title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runRename(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	id := types.CanvasID(args[0])

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		if err := c.App.CanvasService.RenameCanvas(id, title); err != nil {
			return err
		}
		canvas, err := c.App.CanvasService.GetCanvas(id)
		if err != nil {
			return err
		}
		return f.Success("canvas", cli.CanvasSummary(canvas), cli.IDs(id), func(w io.Writer) {
			fmt.Fprintf(w, "✓ Canvas %s renamed to '%s'\n", id, title)
		})
	})
}

// DeleteCmd returns the canvas delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <canvas-id>",
		Short: "Delete a canvas and every element on it",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	id := types.CanvasID(args[0])

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		if err := c.App.CanvasService.DeleteCanvas(id); err != nil {
			return err
		}
		return f.Success("deleted", id, cli.IDs(id), func(w io.Writer) {
			fmt.Fprintf(w, "✓ Canvas %s deleted\n", id)
		})
	})
}
