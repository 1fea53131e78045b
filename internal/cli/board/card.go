package board

import (
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/orion/internal/cli"
	boardservice "github.com/thenoetrevino/orion/internal/services/board"
	"github.com/thenoetrevino/orion/internal/types"
	"github.com/thenoetrevino/orion/internal/user"
)

// CardCmd returns the board card parent command
func CardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "card",
		Short: "Manage the cards on a board",
	}

	cmd.AddCommand(cardAddCmd())
	cmd.AddCommand(cardMoveCmd())
	cmd.AddCommand(cardEditCmd())
	cmd.AddCommand(cardDeleteCmd())
	cmd.AddCommand(cardTagCmd())
	cmd.AddCommand(cardAssignCmd())

	return cmd
}

func cardAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <board-id> <column-id>",
		Short: "Append a card to a column",
		Long: `Append a card to the bottom of a column.

Examples:
  CARD_ID=$(orion board card add $BOARD $TODO --title="Fix login" --quiet)
`,
		Args: cobra.ExactArgs(2),
		RunE: runCardAdd,
	}

	cmd.Flags().String("title", "", "Card title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().String("description", "", "Card description")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runCardAdd(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		card, err := c.App.BoardService.AddCard(boardservice.AddCardRequest{
			BoardID:     types.BoardID(args[0]),
			ColumnID:    types.ColumnID(args[1]),
			Title:       title,
			Description: description,
		})
		if err != nil {
			return err
		}
		return f.Success("card", cli.CardView(card), cli.IDs(card.ID), func(w io.Writer) {
			fmt.Fprintf(w, "✓ Card '%s' added (ID: %s)\n", card.Title, card.ID)
		})
	})
}

func cardMoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move <board-id> <card-id>",
		Short: "Move a card to a column and position",
		Long: `Move a card within or between columns. The index is clamped: a
negative index or one past the end appends the card.

Examples:
  # Head of the In Progress column
  orion board card move $BOARD $CARD --to=$DOING --index=0

  # Bottom of Done
  orion board card move $BOARD $CARD --to=$DONE --index=-1
`,
		Args: cobra.ExactArgs(2),
		RunE: runCardMove,
	}

	cmd.Flags().String("to", "", "Target column id (required)")
	if err := cmd.MarkFlagRequired("to"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cmd.Flags().String("from", "", "Source column id (default: the card's current column)")
	cmd.Flags().Int("index", -1, "Position in the target column")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runCardMove(cmd *cobra.Command, args []string) error {
	to, _ := cmd.Flags().GetString("to")
	from, _ := cmd.Flags().GetString("from")
	index, _ := cmd.Flags().GetInt("index")
	boardID := types.BoardID(args[0])
	cardID := types.CardID(args[1])

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		err := c.App.BoardService.MoveCard(boardservice.MoveCardRequest{
			BoardID:        boardID,
			CardID:         cardID,
			SourceColumnID: types.ColumnID(from),
			TargetColumnID: types.ColumnID(to),
			Index:          index,
		})
		if err != nil {
			return err
		}

		_, col, err := c.App.BoardService.FindCard(boardID, cardID)
		if err != nil {
			return err
		}
		position := col.IndexOf(cardID)
		result := map[string]any{"card_id": cardID, "column_id": col.ID, "index": position}
		return f.Success("moved", result, cli.IDs(cardID), func(w io.Writer) {
			fmt.Fprintf(w, "✓ Card %s moved to '%s' at position %d\n", cardID, col.Title, position)
		})
	})
}

func cardEditCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <board-id> <card-id>",
		Short: "Edit a card's title, description or due date",
		Args:  cobra.ExactArgs(2),
		RunE:  runCardEdit,
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description")
	cmd.Flags().String("due", "", "Due date (YYYY-MM-DD)")
	cmd.Flags().Bool("clear-due", false, "Remove the due date")
	cli.AddOutputFlags(cmd)
	return cmd
}

func runCardEdit(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()
	boardID := types.BoardID(args[0])
	cardID := types.CardID(args[1])

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		req := boardservice.UpdateCardRequest{BoardID: boardID, CardID: cardID}
		if flags.Changed("title") {
			title, _ := flags.GetString("title")
			req.Title = &title
		}
		if flags.Changed("description") {
			description, _ := flags.GetString("description")
			req.Description = &description
		}
		if flags.Changed("due") {
			dueFlag, _ := flags.GetString("due")
			due, err := cli.ParseDate(dueFlag)
			if err != nil {
				return err
			}
			req.DueDate = &due
		}
		req.ClearDue, _ = flags.GetBool("clear-due")

		if err := c.App.BoardService.UpdateCard(req); err != nil {
			return err
		}
		card, _, err := c.App.BoardService.FindCard(boardID, cardID)
		if err != nil {
			return err
		}
		return f.Success("card", cli.CardView(card), cli.IDs(cardID), func(w io.Writer) {
			fmt.Fprintf(w, "✓ Card %s updated\n", cardID)
		})
	})
}

func cardDeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <board-id> <card-id>",
		Short: "Delete a card",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			boardID := types.BoardID(args[0])
			cardID := types.CardID(args[1])

			return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
				if err := c.App.BoardService.DeleteCard(boardID, cardID); err != nil {
					return err
				}
				return f.Success("deleted", cardID, cli.IDs(cardID), func(w io.Writer) {
					fmt.Fprintf(w, "✓ Card %s deleted\n", cardID)
				})
			})
		},
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func cardTagCmd() *cobra.Command {
	return toggleCmd("tag <board-id> <card-id> <tag>", "Tag a card, or untag it with --remove", "tags", nil,
		func(c *cli.CLI, boardID types.BoardID, cardID types.CardID, tag string, remove bool) error {
			if remove {
				return c.App.BoardService.RemoveCardTag(boardID, cardID, tag)
			}
			return c.App.BoardService.AddCardTag(boardID, cardID, tag)
		})
}

func cardAssignCmd() *cobra.Command {
	return toggleCmd("assign <board-id> <card-id> [user-id]", "Assign a user to a card, or unassign with --remove", "assignees", user.CurrentUsername,
		func(c *cli.CLI, boardID types.BoardID, cardID types.CardID, userID string, remove bool) error {
			if remove {
				return c.App.BoardService.UnassignUser(boardID, cardID, userID)
			}
			return c.App.BoardService.AssignUser(boardID, cardID, userID)
		})
}

// toggleCmd builds a command that adds a value to a card set, or removes it
// with --remove, then prints the resulting set. With a fallback the value
// argument may be omitted.
func toggleCmd(use, short, field string, fallback func() string, apply func(*cli.CLI, types.BoardID, types.CardID, string, bool) error) *cobra.Command {
	argCheck := cobra.ExactArgs(3)
	if fallback != nil {
		argCheck = cobra.RangeArgs(2, 3)
	}

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  argCheck,
		RunE: func(cmd *cobra.Command, args []string) error {
			remove, _ := cmd.Flags().GetBool("remove")
			boardID := types.BoardID(args[0])
			cardID := types.CardID(args[1])
			value := optionalArg(args, 2)
			if value == "" && fallback != nil {
				value = fallback()
			}

			return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
				if err := apply(c, boardID, cardID, value, remove); err != nil {
					return err
				}
				card, _, err := c.App.BoardService.FindCard(boardID, cardID)
				if err != nil {
					return err
				}

				values := card.Tags
				if field == "assignees" {
					values = card.AssigneeIDs
				}
				return f.Success(field, values, cli.IDs(cardID), func(w io.Writer) {
					fmt.Fprintf(w, "✓ Card %s %s: %v\n", cardID, field, values)
				})
			})
		},
	}

	cmd.Flags().Bool("remove", false, "Remove instead of add")
	cli.AddOutputFlags(cmd)
	return cmd
}
