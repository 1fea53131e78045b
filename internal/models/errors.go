package models

import "errors"

// Error kinds shared by every store. Services wrap these so callers can
// classify a failure with errors.Is without knowing which store produced it.
var (
	// ErrNotFound indicates a referenced canvas, element, board, column, card,
	// note or collection id does not resolve
	ErrNotFound = errors.New("not found")

	// ErrInvalidArgument indicates a missing or malformed required field
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNoOp indicates the operation resolved its target but had no effect
	ErrNoOp = errors.New("no effect")
)
