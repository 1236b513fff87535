package model

import "fmt"

// Accepted ranges and defaults for user-facing settings.
const (
	DefaultBoardSize = 6
	DefaultMaxMoves  = 3

	MinBoardSize = 6
	MaxBoardSize = 16
	MinMaxMoves  = 1
	MaxMaxMoves  = 5
)

// Settings are the persisted board options. MaxMoves bounds the number of
// cells in a reported path, the start included.
type Settings struct {
	BoardSize int `yaml:"ChessBoardSize"`
	MaxMoves  int `yaml:"MaxMoves"`
}

// DefaultSettings returns a 6×6 board with paths of at most three cells.
func DefaultSettings() Settings {
	return Settings{
		BoardSize: DefaultBoardSize,
		MaxMoves:  DefaultMaxMoves,
	}
}

// Validate checks the settings against the ranges the interfaces accept.
func (s Settings) Validate() error {
	if s.BoardSize < MinBoardSize || s.BoardSize > MaxBoardSize {
		return fmt.Errorf("%w: board size %d must be between %d and %d",
			ErrInvalidConfiguration, s.BoardSize, MinBoardSize, MaxBoardSize)
	}

	if s.MaxMoves < MinMaxMoves || s.MaxMoves > MaxMaxMoves {
		return fmt.Errorf("%w: max moves %d must be between %d and %d",
			ErrInvalidConfiguration, s.MaxMoves, MinMaxMoves, MaxMaxMoves)
	}

	return nil
}

// WithBoardSize returns a copy with the board size replaced.
func (s Settings) WithBoardSize(size int) Settings {
	s.BoardSize = size
	return s
}

// WithMaxMoves returns a copy with the move bound replaced.
func (s Settings) WithMaxMoves(moves int) Settings {
	s.MaxMoves = moves
	return s
}
