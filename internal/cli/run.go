package cli

import (
	"log"

	"github.com/spf13/cobra"
)

// Run opens the workspace for cmd, calls fn and closes the workspace again.
// Errors from fn are reported through the formatter and carry an exit code.
func Run(cmd *cobra.Command, fn func(c *CLI, f *OutputFormatter) error) error {
	formatter := NewFormatter(cmd)

	// Initialize CLI
	cliInstance, err := GetCLIFromContext(cmd.Context())
	if err != nil {
		if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
			log.Printf("Error formatting error message: %v", fmtErr)
		}
		return &CommandError{Code: ExitError, Err: err, reported: true}
	}
	defer func() {
		if err := cliInstance.Close(); err != nil {
			log.Printf("Error closing CLI: %v", err)
		}
	}()

	if err := fn(cliInstance, formatter); err != nil {
		return formatter.Fail(err)
	}
	return nil
}
