package model

import "errors"

// Sentinel errors shared by the search core and the user interfaces.
var (
	// ErrInvalidConfiguration is returned for a non-positive board dimension or
	// depth bound, or for settings outside the accepted ranges.
	ErrInvalidConfiguration = errors.New("knightpath: invalid configuration")

	// ErrOutOfBounds is returned when a start or target cell lies off the board.
	ErrOutOfBounds = errors.New("knightpath: cell out of bounds")

	// ErrInvalidCell is returned when a cell cannot be parsed from text.
	ErrInvalidCell = errors.New("knightpath: invalid cell")
)
