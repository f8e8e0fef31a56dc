package engine

import "fmt"

// maxFillPasses bounds the re-roll loop. A single pass clears every match
// whenever a non-completing color exists for each offending cell.
const maxFillPasses = 32

// Fill populates every cell of g and then re-rolls only matched cells until
// no match remains. Each re-rolled cell takes the first color, in random
// order, that does not complete a run through it; if every color would, the
// last one tried is kept. Fill always terminates and leaves g full. It
// returns an InvariantViolation if matches survive the bounded passes, which
// only happens with degenerate palettes.
func Fill(g *Grid, f *TileFactory) error {
	for i := range g.Cells {
		g.Cells[i] = Cell{Tile: f.Create(), Filled: true}
	}
	for pass := 0; pass < maxFillPasses; pass++ {
		matched := Union(Scan(g))
		if len(matched) == 0 {
			return nil
		}
		for _, p := range matched.Sorted() {
			reroll(g, f, p)
		}
	}
	if n := len(Union(Scan(g))); n > 0 {
		return &InvariantViolation{
			Op:     "fill",
			Detail: fmt.Sprintf("%d matched cells remain with palette size %d", n, f.PaletteSize()),
		}
	}
	return nil
}

func reroll(g *Grid, f *TileFactory, p Position) {
	var last ColorID
	for _, c := range f.shuffledColors() {
		last = c
		if !completesRun(g, p, c) {
			break
		}
	}
	g.Set(p, Tile{Color: last})
}

// completesRun reports whether color c at p would line up with two
// neighbors in any direction.
func completesRun(g *Grid, p Position, c ColorID) bool {
	same := func(dc, dr int) bool {
		t, ok := g.At(Position{Col: p.Col + dc, Row: p.Row + dr})
		return ok && t.Color == c
	}
	return (same(-1, 0) && same(-2, 0)) ||
		(same(1, 0) && same(2, 0)) ||
		(same(-1, 0) && same(1, 0)) ||
		(same(0, -1) && same(0, -2)) ||
		(same(0, 1) && same(0, 2)) ||
		(same(0, -1) && same(0, 1))
}
