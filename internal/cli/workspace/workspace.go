// Package workspace holds cli commands that act on the whole workspace:
// archives, markdown vaults and the activity log
//
// e.g., orion workspace ...
package workspace

import (
	"github.com/spf13/cobra"
)

// WorkspaceCmd returns the workspace parent command
func WorkspaceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workspace",
		Short: "Archive, sync and inspect the whole workspace",
	}

	cmd.AddCommand(ExportCmd())
	cmd.AddCommand(ImportCmd())
	cmd.AddCommand(VaultExportCmd())
	cmd.AddCommand(VaultImportCmd())
	cmd.AddCommand(VaultWatchCmd())
	cmd.AddCommand(ActivityCmd())
	cmd.AddCommand(StatusCmd())

	return cmd
}
