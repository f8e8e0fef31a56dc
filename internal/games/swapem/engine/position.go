package engine

import (
	"fmt"
	"sort"
)

// Position addresses a grid cell by column and row, both 0-indexed.
// Row 0 is the top of the grid.
type Position struct {
	Col int
	Row int
}

// Pos is shorthand for Position{Col: col, Row: row}.
func Pos(col, row int) Position {
	return Position{Col: col, Row: row}
}

// Manhattan returns the taxicab distance between two positions.
func (p Position) Manhattan(o Position) int {
	return abs(p.Col-o.Col) + abs(p.Row-o.Row)
}

// Adjacent reports whether o is a direct horizontal or vertical neighbor of p.
func (p Position) Adjacent(o Position) bool {
	return p.Manhattan(o) == 1
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Col, p.Row)
}

// PositionSet is an unordered set of positions.
type PositionSet map[Position]struct{}

// NewPositionSet builds a set from the given positions.
func NewPositionSet(ps ...Position) PositionSet {
	s := make(PositionSet, len(ps))
	for _, p := range ps {
		s[p] = struct{}{}
	}
	return s
}

// Add inserts p and reports whether it was newly added.
func (s PositionSet) Add(p Position) bool {
	if _, ok := s[p]; ok {
		return false
	}
	s[p] = struct{}{}
	return true
}

// Has reports whether p is in the set.
func (s PositionSet) Has(p Position) bool {
	_, ok := s[p]
	return ok
}

// Clone returns an independent copy of the set.
func (s PositionSet) Clone() PositionSet {
	c := make(PositionSet, len(s))
	for p := range s {
		c[p] = struct{}{}
	}
	return c
}

// Equal reports whether both sets hold the same positions.
func (s PositionSet) Equal(o PositionSet) bool {
	if len(s) != len(o) {
		return false
	}
	for p := range s {
		if !o.Has(p) {
			return false
		}
	}
	return true
}

// Sorted returns the positions in row-major order.
func (s PositionSet) Sorted() []Position {
	out := make([]Position, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Row != out[j].Row {
			return out[i].Row < out[j].Row
		}
		return out[i].Col < out[j].Col
	})
	return out
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
