package cli

import (
	"errors"

	"github.com/thenoetrevino/orion/internal/archive"
	"github.com/thenoetrevino/orion/internal/models"
	"github.com/thenoetrevino/orion/internal/vault"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	// Use for: Normal, successful command execution.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, filesystem errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, unknown flags,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Canvas, element, board, column, card, note or collection ids
	// that do not resolve.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Corrupt archives, unsupported archive versions, or vault files
	// that cannot be parsed.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty titles, invalid element kinds, non-positive sizes,
	// or any case where input fails validation rules.
	ExitValidation = 5

	// ExitNoChange indicates the target resolved but nothing changed.
	// Use for: Tagging twice, removing an absent member, re-adding a note to
	// a collection.
	ExitNoChange = 6
)

// CommandError carries the exit code a failed command should end with
type CommandError struct {
	Code int
	Err  error

	reported bool
}

func (e *CommandError) Error() string { return e.Err.Error() }
func (e *CommandError) Unwrap() error { return e.Err }

// UsageError marks err as a command line usage mistake
func UsageError(err error) error {
	return &CommandError{Code: ExitUsage, Err: err}
}

// Reported reports whether err has already been written to the user
func Reported(err error) bool {
	var cmdErr *CommandError
	return errors.As(err, &cmdErr) && cmdErr.reported
}

// ExitCode maps an error returned by a command to a process exit code
func ExitCode(err error) int {
	var cmdErr *CommandError
	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &cmdErr):
		return cmdErr.Code
	case errors.Is(err, models.ErrNotFound):
		return ExitNotFound
	case errors.Is(err, models.ErrInvalidArgument):
		return ExitValidation
	case errors.Is(err, models.ErrNoOp):
		return ExitNoChange
	case errors.Is(err, archive.ErrBadMagic),
		errors.Is(err, archive.ErrUnsupportedVersion),
		errors.Is(err, archive.ErrChecksumMismatch),
		errors.Is(err, vault.ErrNoTitle):
		return ExitDataErr
	}
	return ExitError
}

// ErrorCode names the class of err for JSON error output
func ErrorCode(err error) string {
	switch ExitCode(err) {
	case ExitUsage:
		return "USAGE_ERROR"
	case ExitNotFound:
		return "NOT_FOUND"
	case ExitDataErr:
		return "DATA_ERROR"
	case ExitValidation:
		return "VALIDATION_ERROR"
	case ExitNoChange:
		return "NO_CHANGE"
	}
	return "ERROR"
}

func suggestionFor(err error) string {
	switch ExitCode(err) {
	case ExitNotFound:
		return "run the matching list command to see valid ids"
	case ExitDataErr:
		return "the file may be truncated or written by a newer version"
	}
	return ""
}
