package domain

import (
	m "github.com/mouse-blink/knightpath/internal/model"
)

// knightOffsets lists the eight knight displacements. The order is fixed so
// move generation, and therefore path enumeration, is reproducible.
var knightOffsets = [8]struct {
	dc, dr int
}{
	{1, 2}, {-1, 2}, // north
	{1, -2}, {-1, -2}, // south
	{2, 1}, {2, -1}, // east
	{-2, 1}, {-2, -1}, // west
}

// LegalMoves returns the knight destinations from c that land on a
// dimension×dimension board, in offset order. The position of c itself is not
// validated. A non-positive dimension yields no moves.
func LegalMoves(c m.Cell, dimension int) []m.Cell {
	if dimension <= 0 {
		return nil
	}

	moves := make([]m.Cell, 0, len(knightOffsets))
	for _, off := range knightOffsets {
		next := c.Offset(off.dc, off.dr)
		if next.OnBoard(dimension) {
			moves = append(moves, next)
		}
	}

	return moves
}

// IsKnightMove reports whether from and to are one knight move apart.
func IsKnightMove(from, to m.Cell) bool {
	dc, dr := abs(to.Col-from.Col), abs(to.Row-from.Row)

	return (dc == 1 && dr == 2) || (dc == 2 && dr == 1)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
