// Package canvas holds all cli commands related to canvases
//
// e.g., orion canvas ...
package canvas

import (
	"github.com/spf13/cobra"
)

// CanvasCmd returns the canvas parent command
func CanvasCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "canvas",
		Short: "Manage canvases and their elements",
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ConnectCmd())
	cmd.AddCommand(RemoveCmd())
	cmd.AddCommand(MoveCmd())
	cmd.AddCommand(ResizeCmd())

	return cmd
}
