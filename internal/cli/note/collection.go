package note

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/orion/internal/cli"
	"github.com/thenoetrevino/orion/internal/types"
)

// CollectionCmd returns the note collection parent command
func CollectionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "collection",
		Short: "Group notes into named, ordered collections",
	}

	cmd.AddCommand(collectionCreateCmd())
	cmd.AddCommand(collectionListCmd())
	cmd.AddCommand(collectionShowCmd())
	cmd.AddCommand(collectionMemberCmd("add", "Add a note to a collection", "added to",
		func(c *cli.CLI, id types.CollectionID, note types.NoteID) error {
			return c.App.NoteService.AddToCollection(id, note)
		}))
	cmd.AddCommand(collectionMemberCmd("remove", "Remove a note from a collection", "removed from",
		func(c *cli.CLI, id types.CollectionID, note types.NoteID) error {
			return c.App.NoteService.RemoveFromCollection(id, note)
		}))
	cmd.AddCommand(collectionDeleteCmd())

	return cmd
}

func collectionCreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a collection",
		Long: `Create a collection, optionally seeded with notes. Every note id must
exist.

Examples:
  orion note collection create --title="Reading list" --notes=$A,$B
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			title, _ := cmd.Flags().GetString("title")
			notesFlag, _ := cmd.Flags().GetString("notes")

			return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
				var ids []types.NoteID
				for _, id := range cli.SplitList(notesFlag) {
					ids = append(ids, types.NoteID(id))
				}

				col, err := c.App.NoteService.CreateCollection(title, ids)
				if err != nil {
					return err
				}
				return f.Success("collection", cli.CollectionView(col), cli.IDs(col.ID), func(w io.Writer) {
					fmt.Fprintf(w, "✓ Collection '%s' created with %d notes (ID: %s)\n", col.Title, len(col.NoteIDs), col.ID)
				})
			})
		},
	}

	cmd.Flags().String("title", "", "Collection title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().String("notes", "", "Comma separated note ids")
	cli.AddOutputFlags(cmd)
	return cmd
}

func collectionListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
				cols := c.App.NoteService.ListCollections()

				views := make([]map[string]any, len(cols))
				ids := make([]string, len(cols))
				for i, col := range cols {
					views[i] = cli.CollectionView(col)
					ids[i] = string(col.ID)
				}
				return f.Success("collections", views, ids, func(w io.Writer) {
					if len(cols) == 0 {
						fmt.Fprintln(w, "No collections found")
						return
					}
					fmt.Fprintf(w, "Found %d collections:\n\n", len(cols))
					for _, col := range cols {
						fmt.Fprintf(w, "  [%s] %s (%d notes)\n", col.ID, col.Title, len(col.NoteIDs))
					}
				})
			})
		},
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func collectionShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <collection-id>",
		Short: "List the notes in a collection",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
				notes, err := c.App.NoteService.CollectionNotes(types.CollectionID(args[0]))
				if err != nil {
					return err
				}
				return printNotes(f, "notes", notes, "Collection is empty")
			})
		},
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func collectionMemberCmd(verb, short, done string, apply func(*cli.CLI, types.CollectionID, types.NoteID) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   verb + " <collection-id> <note-id>",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := types.CollectionID(args[0])
			note := types.NoteID(args[1])

			return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
				if err := apply(c, id, note); err != nil {
					return err
				}
				col, err := c.App.NoteService.GetCollection(id)
				if err != nil {
					return err
				}
				return f.Success("collection", cli.CollectionView(col), cli.IDs(note), func(w io.Writer) {
					fmt.Fprintf(w, "✓ Note %s %s '%s'\n", note, done, col.Title)
				})
			})
		},
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func collectionDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <collection-id>",
		Short: "Delete a collection, keeping its notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := types.CollectionID(args[0])

			return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
				if err := c.App.NoteService.DeleteCollection(id); err != nil {
					return err
				}
				return f.Success("deleted", id, cli.IDs(id), func(w io.Writer) {
					fmt.Fprintf(w, "✓ Collection %s deleted\n", id)
				})
			})
		},
	}

	cli.AddOutputFlags(cmd)
	return cmd
}
