package board

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/orion/internal/cli"
	boardservice "github.com/thenoetrevino/orion/internal/services/board"
	"github.com/thenoetrevino/orion/internal/types"
)

// CreateCmd returns the board create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new board",
		Long: `Create a new board seeded with columns. Without --columns the
configured default columns are used.

Examples:
  # Default columns
  orion board create --title="Sprint 12"

  # Custom columns
  orion board create --title="Hiring" --columns="Applied,Interview,Offer"

  # Quiet mode for bash capture
  BOARD_ID=$(orion board create --title="Sprint 12" --quiet)
`,
		RunE: runCreate,
	}

	// Required flags
	cmd.Flags().String("title", "", "Board title (required)")
	if err := cmd.MarkFlagRequired("title"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}

	// Optional flags
	cmd.Flags().String("group", "", "Owning team id")
	cmd.Flags().String("columns", "", "Comma separated column titles")

	cli.AddOutputFlags(cmd)
	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	title, _ := cmd.Flags().GetString("title")
	group, _ := cmd.Flags().GetString("group")
	columnsFlag, _ := cmd.Flags().GetString("columns")

	req := boardservice.CreateBoardRequest{
		Title:   title,
		GroupID: types.GroupID(group),
	}
	if cmd.Flags().Changed("columns") {
		req.Columns = cli.SplitList(columnsFlag)
		if req.Columns == nil {
			req.Columns = []string{}
		}
	}

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		board, err := c.App.BoardService.CreateBoard(req)
		if err != nil {
			return err
		}

		titles := make([]string, len(board.Columns))
		for i, col := range board.Columns {
			titles[i] = col.Title
		}
		return f.Success("board", cli.BoardView(board), cli.IDs(board.ID), func(w io.Writer) {
			fmt.Fprintf(w, "✓ Board '%s' created successfully (ID: %s)\n", board.Title, board.ID)
			if len(titles) > 0 {
				fmt.Fprintf(w, "  Columns: %s\n", strings.Join(titles, " | "))
			}
		})
	})
}
