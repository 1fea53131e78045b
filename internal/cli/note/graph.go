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

// GraphCmd returns the note graph subcommand
func GraphCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "graph",
		Short: "Print the forward link graph",
		Long: `Print every note with the notes it links to. Edges to deleted notes
stay in the graph until the linking note is edited and are shown as missing.`,
		RunE: runGraph,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runGraph(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		graph := c.App.NoteService.GetNoteGraph()
		notes := c.App.NoteService.ListNotes()

		var ids []string
		for _, n := range notes {
			if len(graph[n.ID]) > 0 {
				ids = append(ids, string(n.ID))
			}
		}
		return f.Success("graph", graph, ids, func(w io.Writer) {
			if len(notes) == 0 {
				fmt.Fprintln(w, "No notes found")
				return
			}
			fmt.Fprintln(w, render.Graph(notes, graph))
		})
	})
}

// LinksCmd returns the note links subcommand
func LinksCmd() *cobra.Command {
	return relationCmd("links <note-id>", "List the notes a note links to", "links",
		func(c *cli.CLI, id types.NoteID) ([]*models.Note, error) {
			return c.App.NoteService.Links(id)
		})
}

// BacklinksCmd returns the note backlinks subcommand
func BacklinksCmd() *cobra.Command {
	return relationCmd("backlinks <note-id>", "List the notes linking to a note", "backlinks",
		func(c *cli.CLI, id types.NoteID) ([]*models.Note, error) {
			return c.App.NoteService.Backlinks(id)
		})
}

func relationCmd(use, short, key string, resolve func(*cli.CLI, types.NoteID) ([]*models.Note, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
				notes, err := resolve(c, types.NoteID(args[0]))
				if err != nil {
					return err
				}
				return printNotes(f, key, notes, "No "+key)
			})
		},
	}

	cli.AddOutputFlags(cmd)
	return cmd
}
