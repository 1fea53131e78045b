package note

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/orion/internal/cli"
	"github.com/thenoetrevino/orion/internal/cli/render"
	"github.com/thenoetrevino/orion/internal/types"
)

// ShowCmd returns the note show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <note-id>",
		Short: "Show a note with rendered content, links and backlinks",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cmd.Flags().Int("width", render.DefaultWidth, "Wrap width for the rendered content")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	width, _ := cmd.Flags().GetInt("width")
	id := types.NoteID(args[0])

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		n, err := c.App.NoteService.GetNote(id)
		if err != nil {
			return err
		}
		links, err := c.App.NoteService.Links(id)
		if err != nil {
			return err
		}
		backlinks, err := c.App.NoteService.Backlinks(id)
		if err != nil {
			return err
		}

		view := cli.NoteView(n)
		view["backlinks"] = cli.IDs(noteIDs(backlinks)...)
		return f.Success("note", view, cli.IDs(id), func(w io.Writer) {
			fmt.Fprintln(w, render.Note(n, links, backlinks, width))
		})
	})
}
