package board

import (
	"fmt"

	"github.com/thenoetrevino/orion/internal/models"
)

// Board-related errors
var (
	// Validation errors
	ErrEmptyTitle   = fmt.Errorf("title cannot be empty: %w", models.ErrInvalidArgument)
	ErrTitleTooLong = fmt.Errorf("title cannot exceed %d characters: %w", MaxTitleLength, models.ErrInvalidArgument)
	ErrEmptyUserID  = fmt.Errorf("user ID cannot be empty: %w", models.ErrInvalidArgument)
	ErrEmptyTag     = fmt.Errorf("tag cannot be empty: %w", models.ErrInvalidArgument)

	// Business logic errors
	ErrBoardNotFound   = fmt.Errorf("board %w", models.ErrNotFound)
	ErrColumnNotFound  = fmt.Errorf("column %w", models.ErrNotFound)
	ErrCardNotFound    = fmt.Errorf("card %w", models.ErrNotFound)
	ErrAlreadyMember   = fmt.Errorf("user is already a member: %w", models.ErrNoOp)
	ErrNotMember       = fmt.Errorf("user is not a member: %w", models.ErrNoOp)
	ErrAlreadyAssigned = fmt.Errorf("user is already assigned: %w", models.ErrNoOp)
	ErrNotAssigned     = fmt.Errorf("user is not assigned: %w", models.ErrNoOp)
	ErrTagExists       = fmt.Errorf("card already has tag: %w", models.ErrNoOp)
	ErrTagMissing      = fmt.Errorf("card does not have tag: %w", models.ErrNoOp)
)
