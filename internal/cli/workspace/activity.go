package workspace

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/orion/internal/cli"
	"github.com/thenoetrevino/orion/internal/cli/styles"
	"github.com/thenoetrevino/orion/internal/models"
)

// DefaultActivityLimit is how many entries activity prints without --limit
const DefaultActivityLimit = 20

// ActivityCmd returns the workspace activity subcommand
func ActivityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activity",
		Short: "Show recent changes, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			limit, _ := cmd.Flags().GetInt("limit")
			if limit <= 0 {
				return cli.UsageError(fmt.Errorf("--limit must be positive, got %d", limit))
			}

			return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
				repo := c.App.Repo()
				if repo == nil {
					return fmt.Errorf("activity log unavailable: no database")
				}
				entries, err := repo.RecentActivity(c.Context(), limit)
				if err != nil {
					return fmt.Errorf("failed to read activity: %w", err)
				}

				views := make([]map[string]any, len(entries))
				ids := make([]string, len(entries))
				for i, e := range entries {
					views[i] = activityView(e)
					ids[i] = e.EntityID
				}
				return f.Success("activity", views, ids, func(w io.Writer) {
					printActivity(w, entries)
				})
			})
		},
	}

	cmd.Flags().Int("limit", DefaultActivityLimit, "Maximum number of entries")
	cli.AddOutputFlags(cmd)
	return cmd
}

func activityView(e models.ActivityEntry) map[string]any {
	return map[string]any{
		"sequence":    e.Sequence,
		"type":        e.Type,
		"entity":      e.Entity,
		"entity_id":   e.EntityID,
		"parent_id":   e.ParentID,
		"related":     e.Related,
		"occurred_at": e.OccurredAt.Format(time.RFC3339),
	}
}

func printActivity(w io.Writer, entries []models.ActivityEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No activity recorded")
		return
	}
	for _, e := range entries {
		line := fmt.Sprintf("%-6d %s  %-8s %-10s %s",
			e.Sequence,
			e.OccurredAt.Local().Format(time.DateTime),
			e.Type,
			e.Entity,
			cli.ShortID(e.EntityID))
		if len(e.Related) > 0 {
			line += "  (" + strings.Join(shortIDs(e.Related), ", ") + ")"
		}
		fmt.Fprintln(w, styles.ValueStyle.Render(line))
	}
}

func shortIDs(ids []string) []string {
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = cli.ShortID(id)
	}
	return out
}
