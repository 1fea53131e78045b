package board

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/orion/internal/cli"
	"github.com/thenoetrevino/orion/internal/cli/styles"
	"github.com/thenoetrevino/orion/internal/types"
)

// ColumnCmd returns the board column parent command
func ColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Manage the columns of a board",
	}

	cmd.AddCommand(columnAddCmd())
	cmd.AddCommand(columnRemoveCmd())
	cmd.AddCommand(columnRenameCmd())

	return cmd
}

func columnAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <board-id>",
		Short: "Append an empty column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			title, _ := cmd.Flags().GetString("title")
			id := types.BoardID(args[0])

			return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
				col, err := c.App.BoardService.AddColumn(id, title)
				if err != nil {
					return err
				}
				return f.Success("column", cli.ColumnView(col), cli.IDs(col.ID), func(w io.Writer) {
					fmt.Fprintf(w, "✓ Column '%s' added (ID: %s)\n", col.Title, col.ID)
				})
			})
		},
	}

	cmd.Flags().String("title", "", "Column title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func columnRemoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove <board-id> <column-id>",
		Short: "Remove a column",
		Long:  "Remove a column. Cards still in the column are discarded with it.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			boardID := types.BoardID(args[0])
			columnID := types.ColumnID(args[1])

			return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
				board, err := c.App.BoardService.GetBoard(boardID)
				if err != nil {
					return err
				}
				discarded := 0
				for _, col := range board.Columns {
					if col.ID == columnID {
						discarded = len(col.Cards)
					}
				}

				if err := c.App.BoardService.RemoveColumn(boardID, columnID); err != nil {
					return err
				}
				result := map[string]any{"id": columnID, "discarded_cards": discarded}
				return f.Success("removed", result, cli.IDs(columnID), func(w io.Writer) {
					fmt.Fprintf(w, "✓ Column %s removed\n", columnID)
					if discarded > 0 {
						fmt.Fprintln(w, styles.WarningStyle.Render(fmt.Sprintf("  %d cards discarded", discarded)))
					}
				})
			})
		},
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func columnRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename <board-id> <column-id>",
		Short: "Rename a column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			title, _ := cmd.Flags().GetString("title")
			boardID := types.BoardID(args[0])
			columnID := types.ColumnID(args[1])

			return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
				if err := c.App.BoardService.RenameColumn(boardID, columnID, title); err != nil {
					return err
				}
				return f.Success("column", map[string]any{"id": columnID, "title": title}, cli.IDs(columnID), func(w io.Writer) {
					fmt.Fprintf(w, "✓ Column %s renamed to '%s'\n", columnID, title)
				})
			})
		},
	}

	cmd.Flags().String("title", "", "New title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cli.AddOutputFlags(cmd)
	return cmd
}
