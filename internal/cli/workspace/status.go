package workspace

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/orion/internal/cli"
	"github.com/thenoetrevino/orion/internal/cli/styles"
)

// StatusCmd returns the workspace status subcommand
func StatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show workspace totals and autosave counters",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
				ws := c.App.Workspace()
				totals := counts(ws)

				cards := 0
				for i := range ws.Boards {
					cards += ws.Boards[i].CardCount()
				}
				totals["cards"] = cards

				result := map[string]any{"counts": totals, "autosave": nil}
				metrics, ok := c.App.SaverMetrics()
				if ok {
					result["autosave"] = metrics
				}

				return f.Success("status", result, nil, func(w io.Writer) {
					fmt.Fprintln(w, styles.TitleStyle.Render("Workspace"))
					for _, key := range []string{"canvases", "boards", "cards", "notes", "collections"} {
						fmt.Fprintln(w, styles.Field(key, fmt.Sprint(totals[key])))
					}
					if !ok {
						fmt.Fprintln(w, styles.Field("autosave", "disabled"))
						return
					}
					fmt.Fprintln(w, styles.Field("queued", fmt.Sprint(metrics.SnapshotsQueued)))
					fmt.Fprintln(w, styles.Field("written", fmt.Sprint(metrics.SnapshotsWritten)))
					fmt.Fprintln(w, styles.Field("coalesced", fmt.Sprint(metrics.SnapshotsCoalesced)))
					fmt.Fprintln(w, styles.Field("errors", fmt.Sprint(metrics.WriteErrors)))
				})
			})
		},
	}

	cli.AddOutputFlags(cmd)
	return cmd
}
