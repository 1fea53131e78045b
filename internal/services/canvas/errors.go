package canvas

import (
	"fmt"

	"github.com/thenoetrevino/orion/internal/models"
)

// Canvas-related errors
var (
	// Validation errors
	ErrEmptyTitle     = fmt.Errorf("title cannot be empty: %w", models.ErrInvalidArgument)
	ErrTitleTooLong   = fmt.Errorf("title cannot exceed %d characters: %w", MaxTitleLength, models.ErrInvalidArgument)
	ErrInvalidKind    = fmt.Errorf("unknown element kind: %w", models.ErrInvalidArgument)
	ErrInvalidSize    = fmt.Errorf("size must be positive: %w", models.ErrInvalidArgument)
	ErrEmptyImagePath = fmt.Errorf("image path cannot be empty: %w", models.ErrInvalidArgument)
	ErrSelfConnection = fmt.Errorf("connection cannot start and end on the same element: %w", models.ErrInvalidArgument)
	ErrConnectionKind = fmt.Errorf("use Connect to add connections: %w", models.ErrInvalidArgument)

	// Business logic errors
	ErrCanvasNotFound  = fmt.Errorf("canvas %w", models.ErrNotFound)
	ErrElementNotFound = fmt.Errorf("element %w", models.ErrNotFound)
)
