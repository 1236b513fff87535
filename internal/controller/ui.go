// Package controller provides the user interfaces for knight path searches.
package controller

import (
	"errors"

	m "github.com/mouse-blink/knightpath/internal/model"
)

// ErrNonInteractive is returned when the interactive board is requested
// without a terminal.
var ErrNonInteractive = errors.New("knightpath: interactive board requires a terminal")

// Session is the selection state the interactive board drives. Outcomes of
// superseded searches are never delivered.
type Session interface {
	Select(cell m.Cell) error
	Reset()
	Configure(settings m.Settings) error
	Settings() m.Settings
	Selection() m.Selection
	Generation() uint64
	Searching() bool
	Outcomes() <-chan m.Outcome
	// Done is closed when the session is closed.
	Done() <-chan struct{}
}

// SaveSettingsFunc persists settings changed from the interactive board.
type SaveSettingsFunc func(settings m.Settings) error

// UI defines how search results, moves and settings are presented.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayOutcomes shows the outcome of each search, in order.
	DisplayOutcomes(outcomes []m.Outcome) error
	// DisplayMoves shows the legal knight moves from a cell.
	DisplayMoves(cell m.Cell, settings m.Settings, moves []m.Cell) error
	// DisplaySettings shows the effective settings and where they are stored.
	DisplaySettings(settings m.Settings, location string) error
	// Play runs the interactive board until the user quits.
	Play(session Session, save SaveSettingsFunc) error
}
