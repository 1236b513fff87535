package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mouse-blink/knightpath/internal/logging"
	m "github.com/mouse-blink/knightpath/internal/model"
)

// Session holds the start/target selection for one board and applies a
// latest-wins policy to searches: a new selection, a reset or a settings
// change cancels the search in flight, and only the outcome of the most
// recent request is delivered on Outcomes.
type Session struct {
	mu         sync.Mutex
	ctx        context.Context
	stop       context.CancelFunc
	searcher   Searcher
	settings   m.Settings
	start      *m.Cell
	target     *m.Cell
	generation uint64
	cancel     context.CancelFunc // cancels the latest search and its delivery
	searching  bool
	outcomes   chan m.Outcome
	log        *slog.Logger
}

// NewSession starts a session with the given settings. Cancelling ctx, or
// calling Close, abandons any search in flight.
func NewSession(ctx context.Context, searcher Searcher, settings m.Settings) *Session {
	ctx, stop := context.WithCancel(ctx)

	return &Session{
		ctx:      ctx,
		stop:     stop,
		searcher: searcher,
		settings: settings,
		outcomes: make(chan m.Outcome),
		log:      logging.New("session"),
	}
}

// Outcomes delivers the result of each search that was not superseded.
func (s *Session) Outcomes() <-chan m.Outcome {
	return s.outcomes
}

// Done is closed by Close or when the parent context ends.
func (s *Session) Done() <-chan struct{} {
	return s.ctx.Done()
}

// Select records cell as the start or the target. The first selection sets the
// start; the second sets the target and submits the search. A selection made
// after a complete pair begins a new pair.
func (s *Session) Select(cell m.Cell) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !cell.OnBoard(s.settings.BoardSize) {
		return fmt.Errorf("%w: %v on a %dx%d board", ErrOutOfBounds, cell,
			s.settings.BoardSize, s.settings.BoardSize)
	}

	if s.start == nil || s.target != nil {
		s.supersede()
		s.start, s.target = &cell, nil

		return nil
	}

	gen := s.supersede()
	req := m.NewRequest(s.settings, *s.start, cell)

	searchCtx, cancel := context.WithCancel(s.ctx)

	h, err := s.searcher.Submit(searchCtx, req)
	if err != nil {
		cancel()
		return err
	}

	s.target = &cell
	s.cancel = cancel
	s.searching = true

	go s.deliver(searchCtx, h, gen)

	return nil
}

// Reset clears the selection and abandons any search in flight.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.supersede()
	s.start, s.target = nil, nil
}

// Configure replaces the settings after validating them. The selection is
// cleared because cells picked on the old board may not exist on the new one.
func (s *Session) Configure(settings m.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.supersede()
	s.settings = settings
	s.start, s.target = nil, nil

	return nil
}

// Settings returns the current settings.
func (s *Session) Settings() m.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.settings
}

// Selection returns a copy of the current start/target pair.
func (s *Session) Selection() m.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()

	var sel m.Selection

	if s.start != nil {
		start := *s.start
		sel.Start = &start
	}

	if s.target != nil {
		target := *s.target
		sel.Target = &target
	}

	return sel
}

// Generation identifies the latest selection change. Outcomes carry the
// generation that produced them.
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.generation
}

// Searching reports whether a search is in flight.
func (s *Session) Searching() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.searching
}

// Close abandons any search in flight. The session must not be used after.
func (s *Session) Close() {
	s.stop()
}

// supersede cancels the search in flight and starts a new generation.
// Callers hold s.mu.
func (s *Session) supersede() uint64 {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}

	s.searching = false
	s.generation++

	return s.generation
}

// deliver waits for h and forwards its outcome if gen is still current.
func (s *Session) deliver(ctx context.Context, h *Handle, gen uint64) {
	log := s.log.With(
		slog.Uint64("search", h.ID()),
		slog.Uint64("generation", gen),
		slog.String("target", h.Request().Target.String()),
	)

	select {
	case <-h.Done():
	case <-ctx.Done():
		log.Debug("search superseded")
		return
	}

	out, err := h.Wait()
	if err != nil {
		log.Debug("search abandoned", slog.Any("err", err))
		return
	}

	out.Generation = gen

	s.mu.Lock()
	current := gen == s.generation && ctx.Err() == nil
	if current {
		s.searching = false
	}
	s.mu.Unlock()

	if !current {
		log.Debug("stale outcome discarded")
		return
	}

	select {
	case s.outcomes <- out:
	case <-ctx.Done():
		log.Debug("outcome superseded before delivery")
	}
}
