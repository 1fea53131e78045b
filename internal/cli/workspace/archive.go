package workspace

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/orion/internal/archive"
	"github.com/thenoetrevino/orion/internal/cli"
)

// ExportCmd returns the workspace export subcommand
func ExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write every canvas, board and note to an archive file",
		Long: `Write the whole workspace to a single compressed, checksummed archive.

Examples:
  orion workspace export --file=backup.orna
`,
		RunE: runExport,
	}

	cmd.Flags().String("file", "", "Archive path (required)")
	if err := cmd.MarkFlagRequired("file"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		ws := c.App.Workspace()
		if err := writeArchive(path, ws); err != nil {
			return err
		}

		totals := counts(ws)
		return f.Success("exported", totals, []string{path}, func(w io.Writer) {
			fmt.Fprintf(w, "✓ Exported %d canvases, %d boards, %d notes to %s\n",
				totals["canvases"], totals["boards"], totals["notes"], path)
		})
	})
}

func writeArchive(path string, ws archive.Workspace) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	buf := bufio.NewWriter(file)
	if err := archive.Export(buf, ws); err != nil {
		return fmt.Errorf("failed to write archive: %w", err)
	}
	return buf.Flush()
}

// ImportCmd returns the workspace import subcommand
func ImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace the workspace with the contents of an archive file",
		Long: `Replace every canvas, board and note with the contents of an archive.
The archive is verified before anything is replaced.`,
		RunE: runImport,
	}

	cmd.Flags().String("file", "", "Archive path (required)")
	if err := cmd.MarkFlagRequired("file"); err != nil {
		log.Printf("Error marking flag as required: %v", err)
	}
	cli.AddOutputFlags(cmd)
	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("file")

	return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
		file, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", path, err)
		}
		defer file.Close()

		ws, err := archive.Import(bufio.NewReader(file))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		c.App.ReplaceWorkspace(ws)

		totals := counts(ws)
		return f.Success("imported", totals, []string{path}, func(w io.Writer) {
			fmt.Fprintf(w, "✓ Imported %d canvases, %d boards, %d notes from %s\n",
				totals["canvases"], totals["boards"], totals["notes"], path)
		})
	})
}

func counts(ws archive.Workspace) map[string]int {
	return map[string]int{
		"canvases":    len(ws.Canvases),
		"boards":      len(ws.Boards),
		"notes":       len(ws.Notes.Notes),
		"collections": len(ws.Notes.Collections),
	}
}
