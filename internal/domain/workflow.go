// Package domain contains the knight path search and the use cases built on it.
package domain

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/knightpath/internal/adapter"
	"github.com/mouse-blink/knightpath/internal/controller"
	"github.com/mouse-blink/knightpath/internal/logging"
	m "github.com/mouse-blink/knightpath/internal/model"
)

// Overrides replaces persisted settings for a single command. Zero fields
// keep the persisted value.
type Overrides struct {
	BoardSize int
	MaxMoves  int
}

// FindArgs holds arguments for a one-shot search from Start to each target.
type FindArgs struct {
	Overrides
	Start    m.Cell
	Targets  []m.Cell
	Parallel int
}

// MovesArgs holds arguments for listing the knight moves from a cell.
type MovesArgs struct {
	Overrides
	Cell m.Cell
}

// PlayArgs holds arguments for the interactive board.
type PlayArgs struct {
	Overrides
}

// SettingsArgs holds the settings to persist.
type SettingsArgs struct {
	Overrides
}

// Workflow defines the use cases exposed by the command line.
type Workflow interface {
	Find(ctx context.Context, args FindArgs) error
	Moves(args MovesArgs) error
	Play(ctx context.Context, args PlayArgs) error
	ShowSettings() error
	UpdateSettings(args SettingsArgs) error
	ResetSettings() error
}

type workflow struct {
	store    adapter.SettingsStore
	ui       controller.UI
	searcher Searcher
	log      *slog.Logger
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(store adapter.SettingsStore, ui controller.UI, searcher Searcher) Workflow {
	return &workflow{
		store:    store,
		ui:       ui,
		searcher: searcher,
		log:      logging.New("workflow"),
	}
}

// Find searches from the start to every target and displays the outcomes in
// argument order. All requests are validated before any search begins.
func (w *workflow) Find(ctx context.Context, args FindArgs) error {
	if len(args.Targets) == 0 {
		return fmt.Errorf("%w: at least one target is required", ErrInvalidConfiguration)
	}

	settings, err := w.resolve(args.Overrides)
	if err != nil {
		return err
	}

	requests := make([]m.Request, 0, len(args.Targets))
	for _, target := range args.Targets {
		req := m.NewRequest(settings, args.Start, target)
		if err := ValidateRequest(req); err != nil {
			return err
		}

		requests = append(requests, req)
	}

	threads := args.Parallel
	if threads <= 0 {
		threads = 1
	}

	outcomes := make([]m.Outcome, len(requests))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(threads)

	for i, req := range requests {
		g.Go(func() error {
			h, err := w.searcher.Submit(gCtx, req)
			if err != nil {
				return err
			}

			out, err := h.Wait()
			if err != nil {
				return fmt.Errorf("search %v to %v: %w", req.Start, req.Target, err)
			}

			outcomes[i] = out

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	w.log.Debug("find complete", slog.Int("targets", len(requests)), slog.Int("workers", threads))

	return w.ui.DisplayOutcomes(outcomes)
}

// Moves lists the legal knight moves from a cell on the configured board.
func (w *workflow) Moves(args MovesArgs) error {
	settings, err := w.resolve(args.Overrides)
	if err != nil {
		return err
	}

	if !args.Cell.OnBoard(settings.BoardSize) {
		return fmt.Errorf("%w: %v on a %dx%d board", ErrOutOfBounds, args.Cell,
			settings.BoardSize, settings.BoardSize)
	}

	return w.ui.DisplayMoves(args.Cell, settings, LegalMoves(args.Cell, settings.BoardSize))
}

// Play opens the interactive board. Settings changed on the board are saved
// through the settings store.
func (w *workflow) Play(ctx context.Context, args PlayArgs) error {
	settings, err := w.resolve(args.Overrides)
	if err != nil {
		return err
	}

	session := NewSession(ctx, w.searcher, settings)
	defer session.Close()

	return w.ui.Play(session, w.store.Save)
}

// ShowSettings displays the persisted settings.
func (w *workflow) ShowSettings() error {
	settings, err := w.store.Load()
	if err != nil {
		return err
	}

	return w.ui.DisplaySettings(settings, w.store.Location())
}

// UpdateSettings persists the given settings, keeping unset fields.
func (w *workflow) UpdateSettings(args SettingsArgs) error {
	settings, err := w.resolve(args.Overrides)
	if err != nil {
		return err
	}

	if err := w.store.Save(settings); err != nil {
		return err
	}

	w.log.Info("settings saved",
		slog.Int("board_size", settings.BoardSize),
		slog.Int("max_moves", settings.MaxMoves))

	return w.ui.DisplaySettings(settings, w.store.Location())
}

// ResetSettings restores and persists the default settings.
func (w *workflow) ResetSettings() error {
	settings := m.DefaultSettings()
	if err := w.store.Save(settings); err != nil {
		return err
	}

	return w.ui.DisplaySettings(settings, w.store.Location())
}

// resolve layers overrides over the persisted settings and validates the
// result against the accepted ranges.
func (w *workflow) resolve(o Overrides) (m.Settings, error) {
	settings, err := w.store.Load()
	if err != nil {
		return m.Settings{}, err
	}

	if o.BoardSize != 0 {
		settings = settings.WithBoardSize(o.BoardSize)
	}

	if o.MaxMoves != 0 {
		settings = settings.WithMaxMoves(o.MaxMoves)
	}

	if err := settings.Validate(); err != nil {
		return m.Settings{}, err
	}

	return settings, nil
}
