package workspace

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/orion/internal/cli"
	"github.com/thenoetrevino/orion/internal/models"
	"github.com/thenoetrevino/orion/internal/vault"
)

func vaultFlags(cmd *cobra.Command, withPattern bool) {
	cmd.Flags().String("dir", "", "Vault directory (default: vault.dir from config)")
	if withPattern {
		cmd.Flags().String("pattern", "", "Glob of files to read (default: vault.pattern from config)")
	}
}

func vaultDir(cmd *cobra.Command, c *cli.CLI) (string, error) {
	dir, _ := cmd.Flags().GetString("dir")
	if dir == "" {
		dir = c.Config.Vault.Dir
	}
	if dir == "" {
		return "", cli.UsageError(errors.New("no vault directory: pass --dir or set vault.dir"))
	}
	return dir, nil
}

func vaultPattern(cmd *cobra.Command, c *cli.CLI) string {
	pattern, _ := cmd.Flags().GetString("pattern")
	if pattern == "" {
		pattern = c.Config.Vault.Pattern
	}
	if pattern == "" {
		pattern = vault.DefaultPattern
	}
	return pattern
}

// VaultExportCmd returns the workspace vault-export subcommand
func VaultExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault-export",
		Short: "Write every note as a markdown file with YAML frontmatter",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
				dir, err := vaultDir(cmd, c)
				if err != nil {
					return err
				}

				snap := c.App.Workspace().Notes
				files, err := vault.Export(dir, snap.Notes)
				if err != nil {
					return err
				}
				return f.Success("files", files, files, func(w io.Writer) {
					fmt.Fprintf(w, "✓ Wrote %d notes to %s\n", len(files), dir)
				})
			})
		},
	}

	vaultFlags(cmd, false)
	cli.AddOutputFlags(cmd)
	return cmd
}

// VaultImportCmd returns the workspace vault-import subcommand
func VaultImportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault-import",
		Short: "Create or update notes from markdown files",
		Long: `Read markdown files from a vault. Each file updates the note with the
same frontmatter id, or else the same title, and creates a note when
neither matches.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
				dir, err := vaultDir(cmd, c)
				if err != nil {
					return err
				}

				records, err := vault.Import(dir, vaultPattern(cmd, c))
				if err != nil {
					return err
				}

				var created, updated int
				ids := make([]string, 0, len(records))
				for _, rec := range records {
					n, isNew, err := c.App.ApplyVaultRecord(rec)
					if err != nil {
						return fmt.Errorf("%s: %w", rec.Path, err)
					}
					if isNew {
						created++
					} else {
						updated++
					}
					ids = append(ids, string(n.ID))
				}

				result := map[string]int{"created": created, "updated": updated}
				return f.Success("imported", result, ids, func(w io.Writer) {
					fmt.Fprintf(w, "✓ %d notes created, %d updated from %s\n", created, updated, dir)
				})
			})
		},
	}

	vaultFlags(cmd, true)
	cli.AddOutputFlags(cmd)
	return cmd
}

// VaultWatchCmd returns the workspace vault-watch subcommand
func VaultWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vault-watch",
		Short: "Apply vault file changes to notes until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			cmd.SetContext(ctx)

			return cli.Run(cmd, func(c *cli.CLI, f *cli.OutputFormatter) error {
				dir, err := vaultDir(cmd, c)
				if err != nil {
					return err
				}
				return watchVault(ctx, c, f, dir, vaultPattern(cmd, c))
			})
		},
	}

	vaultFlags(cmd, true)
	cli.AddOutputFlags(cmd)
	return cmd
}

// watchVault blocks until ctx is done. Each change is printed as it is
// applied; JSON mode writes one object per change.
func watchVault(ctx context.Context, c *cli.CLI, f *cli.OutputFormatter, dir, pattern string) error {
	if !f.JSON && !f.Quiet {
		fmt.Fprintf(f.Out, "Watching %s for %s (Ctrl+C to stop)\n", dir, pattern)
	}

	err := vault.Watch(ctx, dir, pattern, func(rec vault.Record) {
		n, created, err := c.App.ApplyVaultRecord(rec)
		if err != nil {
			slog.Warn("vault change not applied", "path", rec.Path, "error", err)
			return
		}
		action := "updated"
		if created {
			action = "created"
		}
		_ = f.Success("change", changeView(n, action, rec.Path), cli.IDs(n.ID), func(w io.Writer) {
			fmt.Fprintf(w, "✓ %s '%s' from %s\n", action, n.Title, rec.Path)
		})
	}, slog.Default())

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func changeView(n *models.Note, action, path string) map[string]any {
	return map[string]any{
		"action": action,
		"path":   path,
		"note":   cli.NoteView(n),
	}
}
