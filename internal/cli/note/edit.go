package note

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/orion/internal/cli"
	"github.com/thenoetrevino/orion/internal/models"
	"github.com/thenoetrevino/orion/internal/types"
)

// EditCmd returns the note edit subcommand
func EditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <note-id>",
		Short: "Replace a note's content and recompute its links",
		Args:  cobra.ExactArgs(1),
		RunE:  runEdit,
	}

	contentFlags(cmd)
	cli.AddOutputFlags(cmd)
	return cmd
}

func runEdit(cmd *cobra.Command, args []string) error {
	id := types.NoteID(args[0])

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		content, ok, err := readContent(cmd)
		if err != nil {
			return err
		}
		if !ok {
			return cli.UsageError(errors.New("one of --content or --file is required"))
		}

		if err := c.App.NoteService.UpdateContent(id, content); err != nil {
			return err
		}
		n, err := c.App.NoteService.GetNote(id)
		if err != nil {
			return err
		}
		return f.Success("note", cli.NoteView(n), cli.IDs(id), func(w io.Writer) {
			fmt.Fprintf(w, "✓ Note '%s' updated (%d links)\n", n.Title, len(n.LinkedNoteIDs))
		})
	})
}

// RenameCmd returns the note rename subcommand
func RenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <note-id>",
		Short: "Change a note's title",
		Long: `Change a note's title. Notes that mention the old title keep their
link until they are edited again.`,
		Args: cobra.ExactArgs(1),
		RunE: runRename,
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
	id := types.NoteID(args[0])

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		if err := c.App.NoteService.RenameNote(id, title); err != nil {
			return err
		}
		return f.Success("note", map[string]any{"id": id, "title": title}, cli.IDs(id), func(w io.Writer) {
			fmt.Fprintf(w, "✓ Note %s renamed to '%s'\n", id, title)
		})
	})
}

// DeleteCmd returns the note delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <note-id>",
		Short: "Delete a note and remove it from every collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := types.NoteID(args[0])

			return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
				if err := c.App.NoteService.DeleteNote(id); err != nil {
					return err
				}
				return f.Success("deleted", id, cli.IDs(id), func(w io.Writer) {
					fmt.Fprintf(w, "✓ Note %s deleted\n", id)
				})
			})
		},
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

// TagCmd returns the note tag subcommand
func TagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag <note-id> <tag>",
		Short: "Tag a note, or untag it with --remove",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			remove, _ := cmd.Flags().GetBool("remove")
			id := types.NoteID(args[0])
			tag := args[1]

			return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
				var err error
				if remove {
					err = c.App.NoteService.RemoveTag(id, tag)
				} else {
					err = c.App.NoteService.AddTag(id, tag)
				}
				if err != nil {
					return err
				}

				n, err := c.App.NoteService.GetNote(id)
				if err != nil {
					return err
				}
				return f.Success("tags", n.Tags, cli.IDs(id), func(w io.Writer) {
					fmt.Fprintf(w, "✓ Note '%s' tags: %v\n", n.Title, n.Tags)
				})
			})
		},
	}

	cmd.Flags().Bool("remove", false, "Remove the tag instead of adding it")
	cli.AddOutputFlags(cmd)
	return cmd
}

func noteIDs(notes []*models.Note) []types.NoteID {
	ids := make([]types.NoteID, len(notes))
	for i, n := range notes {
		ids[i] = n.ID
	}
	return ids
}
