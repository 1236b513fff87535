// Package model defines the data structures shared by the knight path search
// and its user interfaces.
package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Cell is a square on the board addressed by column and row, both zero-based.
// Cells are values: two cells with equal coordinates are interchangeable.
type Cell struct {
	Col int
	Row int
}

// NewCell builds a Cell from a column and a row.
func NewCell(col, row int) Cell {
	return Cell{Col: col, Row: row}
}

// Offset returns the cell displaced by (dc, dr).
func (c Cell) Offset(dc, dr int) Cell {
	return Cell{Col: c.Col + dc, Row: c.Row + dr}
}

// OnBoard reports whether the cell lies within a dimension×dimension board.
func (c Cell) OnBoard(dimension int) bool {
	return c.Col >= 0 && c.Col <= dimension-1 &&
		c.Row >= 0 && c.Row <= dimension-1
}

// String renders the cell in algebraic notation: the file letter comes from
// the column and the rank number from the row, so (0,0) is "a1".
// Cells that have no letter (negative or beyond 'z') fall back to "(col,row)".
func (c Cell) String() string {
	if c.Col < 0 || c.Col >= 26 || c.Row < 0 {
		return fmt.Sprintf("(%d,%d)", c.Col, c.Row)
	}

	return string(rune('a'+c.Col)) + strconv.Itoa(c.Row+1)
}

// File returns the file letter of the cell's column.
func File(col int) string {
	if col < 0 || col >= 26 {
		return "?"
	}

	return string(rune('a' + col))
}

// ParseCell reads a cell written either in algebraic notation ("c2") or as a
// zero-based "col,row" pair ("2,1").
func ParseCell(s string) (Cell, error) {
	text := strings.TrimSpace(strings.ToLower(s))
	if text == "" {
		return Cell{}, fmt.Errorf("%w: empty", ErrInvalidCell)
	}

	if strings.Contains(text, ",") {
		return parsePair(text)
	}

	file := text[0]
	if file < 'a' || file > 'z' {
		return Cell{}, fmt.Errorf("%w: %q must start with a file letter", ErrInvalidCell, s)
	}

	rank, err := strconv.Atoi(text[1:])
	if err != nil || rank < 1 {
		return Cell{}, fmt.Errorf("%w: %q has no valid rank", ErrInvalidCell, s)
	}

	return Cell{Col: int(file - 'a'), Row: rank - 1}, nil
}

func parsePair(text string) (Cell, error) {
	parts := strings.Split(text, ",")
	if len(parts) != 2 {
		return Cell{}, fmt.Errorf("%w: %q is not a col,row pair", ErrInvalidCell, text)
	}

	col, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Cell{}, fmt.Errorf("%w: column %q: %v", ErrInvalidCell, parts[0], err)
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Cell{}, fmt.Errorf("%w: row %q: %v", ErrInvalidCell, parts[1], err)
	}

	return Cell{Col: col, Row: row}, nil
}
