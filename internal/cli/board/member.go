package board

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/orion/internal/cli"
	"github.com/thenoetrevino/orion/internal/types"
	"github.com/thenoetrevino/orion/internal/user"
)

// MemberCmd returns the board member parent command
func MemberCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "member",
		Short: "Manage board members",
	}

	cmd.AddCommand(memberCmd("add", "Add a member to a board", "added to",
		func(c *cli.CLI, id types.BoardID, userID string) error {
			return c.App.BoardService.AddMember(id, userID)
		}))
	cmd.AddCommand(memberCmd("remove", "Remove a member from a board", "removed from",
		func(c *cli.CLI, id types.BoardID, userID string) error {
			return c.App.BoardService.RemoveMember(id, userID)
		}))

	return cmd
}

func memberCmd(verb, short, done string, apply func(*cli.CLI, types.BoardID, string) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:   verb + " <board-id> [user-id]",
		Short: short,
		Long:  short + ". The user defaults to the current OS user.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := types.BoardID(args[0])
			member := user.OrCurrent(optionalArg(args, 1))

			return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
				if err := apply(c, id, member); err != nil {
					return err
				}
				board, err := c.App.BoardService.GetBoard(id)
				if err != nil {
					return err
				}
				return f.Success("members", board.MemberIDs, []string{member}, func(w io.Writer) {
					fmt.Fprintf(w, "✓ %s %s board %s\n", member, done, id)
				})
			})
		},
	}

	cli.AddOutputFlags(cmd)
	return cmd
}

func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
