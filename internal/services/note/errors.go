package note

import (
	"fmt"

	"github.com/thenoetrevino/orion/internal/models"
)

// Note-related errors
var (
	// Validation errors
	ErrEmptyTitle   = fmt.Errorf("title cannot be empty: %w", models.ErrInvalidArgument)
	ErrTitleTooLong = fmt.Errorf("title cannot exceed %d characters: %w", MaxTitleLength, models.ErrInvalidArgument)
	ErrEmptyTag     = fmt.Errorf("tag cannot be empty: %w", models.ErrInvalidArgument)
	ErrEmptyQuery   = fmt.Errorf("search text cannot be empty: %w", models.ErrInvalidArgument)

	// Business logic errors
	ErrNoteNotFound        = fmt.Errorf("note %w", models.ErrNotFound)
	ErrCollectionNotFound  = fmt.Errorf("collection %w", models.ErrNotFound)
	ErrTagExists           = fmt.Errorf("note already has tag: %w", models.ErrNoOp)
	ErrTagMissing          = fmt.Errorf("note does not have tag: %w", models.ErrNoOp)
	ErrAlreadyInCollection = fmt.Errorf("note already in collection: %w", models.ErrNoOp)
	ErrNotInCollection     = fmt.Errorf("note not in collection: %w", models.ErrNoOp)
)
