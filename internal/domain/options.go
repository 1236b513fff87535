package domain

import (
	"context"
)

// Option configures FindPaths via functional arguments.
type Option func(*SearchOptions)

// SearchOptions holds parameters and callbacks that tune a path search.
type SearchOptions struct {
	// Ctx allows cancellation of long searches. It is checked once per
	// dequeued path.
	Ctx context.Context

	// OnLevel is called after each depth level completes with the depth just
	// processed, the number of paths queued for the next level and the number
	// of matches recorded so far.
	OnLevel func(depth, frontier, matches int)
}

// DefaultOptions returns SearchOptions with a background context and a no-op
// level hook.
func DefaultOptions() SearchOptions {
	return SearchOptions{
		Ctx:     context.Background(),
		OnLevel: func(int, int, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *SearchOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnLevel registers a callback to run after every completed level.
func WithOnLevel(fn func(depth, frontier, matches int)) Option {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnLevel = fn
		}
	}
}
