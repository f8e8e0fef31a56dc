package engine

import "fmt"

// Cell is one grid slot. Filled is false only transiently during resolution.
type Cell struct {
	Tile   Tile
	Filled bool
}

// Grid is a rectangular arrangement of cells stored row-major
// (index = row*W + col).
type Grid struct {
	W, H  int
	Cells []Cell
}

// NewGrid creates an empty width x height grid.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, &ConfigurationError{
			Field:  "grid",
			Reason: fmt.Sprintf("dimensions must be positive, got %dx%d", width, height),
		}
	}
	return &Grid{
		W:     width,
		H:     height,
		Cells: make([]Cell, width*height),
	}, nil
}

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Col >= 0 && p.Col < g.W && p.Row >= 0 && p.Row < g.H
}

func (g *Grid) index(p Position) int {
	return p.Row*g.W + p.Col
}

// At returns the tile at p. ok is false for empty or out-of-bounds cells.
func (g *Grid) At(p Position) (t Tile, ok bool) {
	if !g.InBounds(p) {
		return Tile{}, false
	}
	c := g.Cells[g.index(p)]
	return c.Tile, c.Filled
}

// Set places t at p. Out-of-bounds positions are ignored.
func (g *Grid) Set(p Position, t Tile) {
	if !g.InBounds(p) {
		return
	}
	g.Cells[g.index(p)] = Cell{Tile: t, Filled: true}
}

// Clear empties the cell at p.
func (g *Grid) Clear(p Position) {
	if !g.InBounds(p) {
		return
	}
	g.Cells[g.index(p)] = Cell{}
}

// Swap exchanges the contents of two cells.
func (g *Grid) Swap(a, b Position) {
	if !g.InBounds(a) || !g.InBounds(b) {
		return
	}
	i, j := g.index(a), g.index(b)
	g.Cells[i], g.Cells[j] = g.Cells[j], g.Cells[i]
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.Cells))
	copy(cells, g.Cells)
	return &Grid{W: g.W, H: g.H, Cells: cells}
}

// Equal reports whether two grids have the same dimensions and contents.
func (g *Grid) Equal(o *Grid) bool {
	if g.W != o.W || g.H != o.H || len(g.Cells) != len(o.Cells) {
		return false
	}
	for i := range g.Cells {
		if g.Cells[i] != o.Cells[i] {
			return false
		}
	}
	return true
}

// Gaps returns the empty positions in row-major order.
func (g *Grid) Gaps() []Position {
	var gaps []Position
	for i, c := range g.Cells {
		if !c.Filled {
			gaps = append(gaps, Position{Col: i % g.W, Row: i / g.W})
		}
	}
	return gaps
}

// Full reports whether every cell holds a tile.
func (g *Grid) Full() bool {
	for _, c := range g.Cells {
		if !c.Filled {
			return false
		}
	}
	return true
}

// Settle applies gravity: tiles in each column drop to fill gaps below them,
// keeping their relative order, and vacated top cells are refilled from f.
func (g *Grid) Settle(f *TileFactory) {
	for col := 0; col < g.W; col++ {
		write := g.H - 1
		for row := g.H - 1; row >= 0; row-- {
			i := g.index(Position{Col: col, Row: row})
			if !g.Cells[i].Filled {
				continue
			}
			if row != write {
				g.Cells[g.index(Position{Col: col, Row: write})] = g.Cells[i]
				g.Cells[i] = Cell{}
			}
			write--
		}
		for row := write; row >= 0; row-- {
			g.Set(Position{Col: col, Row: row}, f.Create())
		}
	}
}
