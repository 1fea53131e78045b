package note

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/orion/internal/cli"
	noteservice "github.com/thenoetrevino/orion/internal/services/note"
	"github.com/thenoetrevino/orion/internal/types"
)

// CreateCmd returns the note create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new note",
		Long: `Create a new note. [[Title]] mentions in the content link to the
notes with those titles, matched case-insensitively.

Examples:
  orion note create --title="Roadmap" --content="See [[Q3 goals]]" --tags=planning
  orion note create --title="Meeting" --file=meeting.md
`,
		RunE: runCreate,
	}

	cmd.Flags().String("title", "", "Note title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	contentFlags(cmd)
	cmd.Flags().String("tags", "", "Comma separated tags")
	cmd.Flags().String("group", "", "Owning team id")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	tags, _ := cmd.Flags().GetString("tags")
	group, _ := cmd.Flags().GetString("group")

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		content, _, err := readContent(cmd)
		if err != nil {
			return err
		}

		n, err := c.App.NoteService.CreateNote(noteservice.CreateNoteRequest{
			Title:   title,
			Content: content,
			Tags:    cli.SplitList(tags),
			GroupID: types.GroupID(group),
		})
		if err != nil {
			return err
		}

		return f.Success("note", cli.NoteView(n), cli.IDs(n.ID), func(w io.Writer) {
			fmt.Fprintf(w, "✓ Note '%s' created successfully (ID: %s)\n", n.Title, n.ID)
			if len(n.LinkedNoteIDs) > 0 {
				fmt.Fprintf(w, "  Links: %d\n", len(n.LinkedNoteIDs))
			}
		})
	})
}
