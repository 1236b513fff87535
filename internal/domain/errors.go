package domain

import m "github.com/mouse-blink/knightpath/internal/model"

// Sentinel errors returned by the search core. They alias the model errors so
// callers can test with errors.Is against either package.
var (
	// ErrInvalidConfiguration is returned for a non-positive dimension or depth.
	ErrInvalidConfiguration = m.ErrInvalidConfiguration
	// ErrOutOfBounds is returned when the start or target lies off the board.
	ErrOutOfBounds = m.ErrOutOfBounds
)
