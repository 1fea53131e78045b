package note

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/orion/internal/cli"
	"github.com/thenoetrevino/orion/internal/cli/render"
	"github.com/thenoetrevino/orion/internal/models"
	"github.com/thenoetrevino/orion/internal/types"
)

// ListCmd returns the note list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes",
		Long:  "List notes in creation order, optionally filtered by team or by tags (all must match).",
		RunE:  runList,
	}

	cmd.Flags().String("group", "", "Only notes owned by this team")
	cmd.Flags().String("tags", "", "Only notes carrying every one of these comma separated tags")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	group, _ := cmd.Flags().GetString("group")
	tags, _ := cmd.Flags().GetString("tags")

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		var notes []*models.Note
		switch {
		case tags != "":
			notes = c.App.NoteService.FindByTags(cli.SplitList(tags))
		case group != "":
			notes = c.App.NoteService.ListByGroup(types.GroupID(group))
		default:
			notes = c.App.NoteService.ListNotes()
		}
		return printNotes(f, "notes", notes, "No notes found")
	})
}

// SearchCmd returns the note search subcommand
func SearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <text>",
		Short: "Find notes whose title or content contains text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
				notes, err := c.App.NoteService.Search(args[0])
				if err != nil {
					return err
				}
				return printNotes(f, "notes", notes, "No matching notes")
			})
		},
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func printNotes(f *cli.OutputFormatter, key string, notes []*models.Note, empty string) error {
	ids := make([]string, len(notes))
	for i, n := range notes {
		ids[i] = string(n.ID)
	}
	return f.Success(key, cli.NoteViews(notes), ids, func(w io.Writer) {
		if len(notes) == 0 {
			fmt.Fprintln(w, empty)
			return
		}
		fmt.Fprintf(w, "Found %d notes:\n\n", len(notes))
		for _, n := range notes {
			fmt.Fprintln(w, render.Summary(n))
		}
	})
}
