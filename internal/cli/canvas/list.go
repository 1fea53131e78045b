package canvas

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/orion/internal/cli"
	"github.com/thenoetrevino/orion/internal/models"
	"github.com/thenoetrevino/orion/internal/types"
)

// ListCmd returns the canvas list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all canvases",
		Long:  "List all canvases in creation order, optionally only those owned by a team.",
		RunE:  runList,
	}

	cmd.Flags().String("group", "", "Only canvases owned by this team")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	group, _ := cmd.Flags().GetString("group")

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		var canvases []*models.Canvas
		if group != "" {
			canvases = c.App.CanvasService.ListByGroup(types.GroupID(group))
		} else {
			canvases = c.App.CanvasService.ListCanvases()
		}

		summaries := make([]map[string]any, len(canvases))
		ids := make([]string, len(canvases))
		for i, canvas := range canvases {
			summaries[i] = cli.CanvasSummary(canvas)
			ids[i] = string(canvas.ID)
		}

		return f.Success("canvases", summaries, ids, func(w io.Writer) {
			if len(canvases) == 0 {
				fmt.Fprintln(w, "No canvases found")
				return
			}
			fmt.Fprintf(w, "Found %d canvases:\n\n", len(canvases))
			for _, canvas := range canvases {
				fmt.Fprintf(w, "  [%s] %s (%d elements)\n", canvas.ID, canvas.Title, len(canvas.Elements))
			}
		})
	})
}
