package model

import "strings"

// Path is an ordered, non-repeating sequence of cells joined by knight moves.
// The first cell is the start; the last is the current or target cell.
// A Path is never modified after construction: Extend returns a copy.
type Path []Cell

// NewPath returns a single-cell path.
func NewPath(start Cell) Path {
	return Path{start}
}

// Last returns the final cell of the path.
func (p Path) Last() Cell {
	return p[len(p)-1]
}

// Contains reports whether c already appears in the path.
func (p Path) Contains(c Cell) bool {
	for _, visited := range p {
		if visited == c {
			return true
		}
	}

	return false
}

// Extend returns a new path with next appended. The receiver is untouched.
func (p Path) Extend(next Cell) Path {
	extended := make(Path, len(p), len(p)+1)
	copy(extended, p)

	return append(extended, next)
}

// Moves is the number of knight moves in the path.
func (p Path) Moves() int {
	if len(p) == 0 {
		return 0
	}

	return len(p) - 1
}

// String renders the path as algebraic cells joined by arrows.
func (p Path) String() string {
	parts := make([]string, 0, len(p))
	for _, c := range p {
		parts = append(parts, c.String())
	}

	return strings.Join(parts, " → ")
}
