// Package board holds all cli commands related to kanban boards
//
// e.g., orion board ...
package board

import (
	"github.com/spf13/cobra"
)

// BoardCmd returns the board parent command
func BoardCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Manage kanban boards, columns and cards",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(MemberCmd())
	cmd.AddCommand(ColumnCmd())
	cmd.AddCommand(CardCmd())

	return cmd
}
