package domain

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/mouse-blink/knightpath/internal/logging"
	m "github.com/mouse-blink/knightpath/internal/model"
)

// Searcher runs path searches off the caller's goroutine.
type Searcher interface {
	// Submit validates req synchronously and, when valid, starts the search
	// in the background. Configuration and bounds errors are returned before
	// any work begins.
	Submit(ctx context.Context, req m.Request) (*Handle, error)
}

// Handle tracks one submitted search.
type Handle struct {
	id      uint64
	request m.Request
	cancel  context.CancelFunc
	done    chan struct{}
	outcome m.Outcome
	err     error
}

// ID returns the searcher-assigned identifier of the search.
func (h *Handle) ID() uint64 {
	return h.id
}

// Request returns the request the handle was created for.
func (h *Handle) Request() m.Request {
	return h.request
}

// Done is closed once the search has finished or been cancelled.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Cancel stops the search. It is safe to call more than once and after
// completion.
func (h *Handle) Cancel() {
	h.cancel()
}

// Wait blocks until the search finishes and returns its outcome, or the
// context error if it was cancelled first.
func (h *Handle) Wait() (m.Outcome, error) {
	<-h.done

	return h.outcome, h.err
}

type searcher struct {
	nextID atomic.Uint64
	log    *slog.Logger
}

// NewSearcher constructs a Searcher that runs each request on its own
// goroutine.
func NewSearcher() Searcher {
	return &searcher{log: logging.New("searcher")}
}

func (s *searcher) Submit(ctx context.Context, req m.Request) (*Handle, error) {
	if err := ValidateRequest(req); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(ctx)
	h := &Handle{
		id:      s.nextID.Add(1),
		request: req,
		cancel:  cancel,
		done:    make(chan struct{}),
		outcome: m.PendingOutcome(req),
	}

	log := s.log.With(
		slog.Uint64("search", h.id),
		slog.String("start", req.Start.String()),
		slog.String("target", req.Target.String()),
	)
	log.Debug("search submitted",
		slog.Int("dimension", req.Dimension),
		slog.Int("max_depth", req.MaxDepth))

	go func() {
		defer close(h.done)
		defer cancel()

		began := time.Now()

		paths, err := FindPaths(req.Start, req.Target, req.Dimension, req.MaxDepth,
			WithContext(ctx),
			WithOnLevel(func(depth, frontier, matches int) {
				log.Debug("level complete",
					slog.Int("depth", depth),
					slog.Int("frontier", frontier),
					slog.Int("matches", matches))
			}),
		)
		if err != nil {
			h.err = err
			log.Debug("search stopped", slog.Any("err", err))

			return
		}

		h.outcome = m.NewOutcome(req, paths)
		log.Debug("search finished",
			slog.String("status", string(h.outcome.Status)),
			slog.Int("paths", len(paths)),
			slog.Duration("elapsed", time.Since(began)))
	}()

	return h, nil
}
