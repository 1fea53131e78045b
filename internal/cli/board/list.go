package board

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/orion/internal/cli"
	"github.com/thenoetrevino/orion/internal/cli/render"
	"github.com/thenoetrevino/orion/internal/models"
	"github.com/thenoetrevino/orion/internal/types"
)

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all boards",
		Long:  "List all boards in creation order, optionally only those owned by a team.",
		RunE:  runList,
	}

	cmd.Flags().String("group", "", "Only boards owned by this team")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	group, _ := cmd.Flags().GetString("group")

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		var boards []*models.KanbanBoard
		if group != "" {
			boards = c.App.BoardService.ListByGroup(types.GroupID(group))
		} else {
			boards = c.App.BoardService.ListBoards()
		}

		summaries := make([]map[string]any, len(boards))
		ids := make([]string, len(boards))
		for i, b := range boards {
			summaries[i] = cli.BoardSummary(b)
			ids[i] = string(b.ID)
		}

		return f.Success("boards", summaries, ids, func(w io.Writer) {
			if len(boards) == 0 {
				fmt.Fprintln(w, "No boards found")
				return
			}
			fmt.Fprintf(w, "Found %d boards:\n\n", len(boards))
			for _, b := range boards {
				fmt.Fprintf(w, "  [%s] %s (%d columns, %d cards)\n", b.ID, b.Title, len(b.Columns), b.CardCount())
			}
		})
	})
}

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <board-id>",
		Short: "Show a board with its columns and cards",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		board, err := c.App.BoardService.GetBoard(types.BoardID(args[0]))
		if err != nil {
			return err
		}

		var ids []string
		for _, col := range board.Columns {
			for _, card := range col.Cards {
				ids = append(ids, string(card.ID))
			}
		}
		return f.Success("board", cli.BoardView(board), ids, func(w io.Writer) {
			fmt.Fprintln(w, render.Board(board))
		})
	})
}

// DeleteCmd returns the board delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <board-id>",
		Short: "Delete a board with all its columns and cards",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
	id := types.BoardID(args[0])

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		if err := c.App.BoardService.DeleteBoard(id); err != nil {
			return err
		}
		return f.Success("deleted", id, cli.IDs(id), func(w io.Writer) {
			fmt.Fprintf(w, "✓ Board %s deleted\n", id)
		})
	})
}
