package domain

import (
	"fmt"

	m "github.com/mouse-blink/knightpath/internal/model"
)

// enumerator holds the mutable state of one level-synchronized search.
type enumerator struct {
	target    m.Cell
	dimension int
	maxDepth  int
	opts      SearchOptions
	frontier  []m.Path
	matches   []m.Path
}

// FindPaths returns every simple knight path from start to target on a
// dimension×dimension board whose length, counted in cells including the
// start, is at most maxDepth.
//
// Paths are reported depth by depth; within a depth they follow the order in
// which their parents were dequeued and then the knight offset order. A path
// that reaches the target is recorded and not extended further. When start
// equals target the single-cell path is the only match.
//
// An empty result means no path exists within the bound. FindPaths returns
// ErrInvalidConfiguration for a non-positive dimension or maxDepth,
// ErrOutOfBounds when start or target lies off the board, or the context error
// when the search is cancelled.
func FindPaths(start, target m.Cell, dimension, maxDepth int, opts ...Option) ([]m.Path, error) {
	if err := validate(start, target, dimension, maxDepth); err != nil {
		return nil, err
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	e := &enumerator{
		target:    target,
		dimension: dimension,
		maxDepth:  maxDepth,
		opts:      o,
		frontier:  []m.Path{m.NewPath(start)},
	}

	if err := e.run(); err != nil {
		return nil, err
	}

	return e.matches, nil
}

func validate(start, target m.Cell, dimension, maxDepth int) error {
	if dimension <= 0 {
		return fmt.Errorf("%w: board dimension must be positive, got %d", ErrInvalidConfiguration, dimension)
	}

	if maxDepth <= 0 {
		return fmt.Errorf("%w: max depth must be positive, got %d", ErrInvalidConfiguration, maxDepth)
	}

	if !start.OnBoard(dimension) {
		return fmt.Errorf("%w: start %v on a %dx%d board", ErrOutOfBounds, start, dimension, dimension)
	}

	if !target.OnBoard(dimension) {
		return fmt.Errorf("%w: target %v on a %dx%d board", ErrOutOfBounds, target, dimension, dimension)
	}

	return nil
}

// run expands the frontier one depth level at a time until it empties or the
// depth bound is reached.
func (e *enumerator) run() error {
	for depth := 1; len(e.frontier) > 0 && depth <= e.maxDepth; depth++ {
		levelSize := len(e.frontier)

		for range levelSize {
			select {
			case <-e.opts.Ctx.Done():
				return e.opts.Ctx.Err()
			default:
			}

			e.visit(e.dequeue())
		}

		e.opts.OnLevel(depth, len(e.frontier), len(e.matches))
	}

	return nil
}

func (e *enumerator) dequeue() m.Path {
	p := e.frontier[0]
	e.frontier[0] = nil
	e.frontier = e.frontier[1:]

	return p
}

// visit records p as a match or enqueues each simple extension of it.
func (e *enumerator) visit(p m.Path) {
	cur := p.Last()
	if cur == e.target {
		e.matches = append(e.matches, p)
		return
	}

	for _, next := range LegalMoves(cur, e.dimension) {
		if p.Contains(next) {
			continue
		}

		e.frontier = append(e.frontier, p.Extend(next))
	}
}

// ValidateRequest checks req the same way FindPaths does, without searching.
func ValidateRequest(req m.Request) error {
	return validate(req.Start, req.Target, req.Dimension, req.MaxDepth)
}
