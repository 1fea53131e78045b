// Package note holds all cli commands related to notes and collections
//
// e.g., orion note ...
package note

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NoteCmd returns the note parent command
func NoteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "note",
		Short: "Manage linked notes and collections",
		Long: `Manage notes. A note links to another note by mentioning its title
as [[Title]] in its content; links are recomputed on every edit.`,
	}

	cmd.AddCommand(CreateCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(ShowCmd())
	cmd.AddCommand(EditCmd())
	cmd.AddCommand(RenameCmd())
	cmd.AddCommand(DeleteCmd())
	cmd.AddCommand(TagCmd())
	cmd.AddCommand(SearchCmd())
	cmd.AddCommand(GraphCmd())
	cmd.AddCommand(LinksCmd())
	cmd.AddCommand(BacklinksCmd())
	cmd.AddCommand(CollectionCmd())

	return cmd
}

// contentFlags registers --content and --file
func contentFlags(cmd *cobra.Command) {
	cmd.Flags().String("content", "", "Markdown content")
	cmd.Flags().String("file", "", "Read content from a file")
	cmd.MarkFlagsMutuallyExclusive("content", "file")
}

// readContent returns the content given by --content or --file, and whether
// either was set
func readContent(cmd *cobra.Command) (string, bool, error) {
	if cmd.Flags().Changed("file") {
		path, _ := cmd.Flags().GetString("file")
		data, err := os.ReadFile(path)
		if err != nil {
			return "", false, fmt.Errorf("failed to read %s: %w", path, err)
		}
		return string(data), true, nil
	}
	content, _ := cmd.Flags().GetString("content")
	return content, cmd.Flags().Changed("content"), nil
}
