package engine

// MinRun is the shortest aligned run that counts as a match.
const MinRun = 3

// Orientation is the axis of a matched run.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// MatchSet is one maximal aligned run of same-colored tiles.
type MatchSet struct {
	Color       ColorID
	Orientation Orientation
	Positions   []Position
}

// Len returns the run length.
func (m MatchSet) Len() int {
	return len(m.Positions)
}

// Scan returns every maximal horizontal and vertical run of at least MinRun
// same-colored tiles. Empty cells break runs. A cell at the crossing of two
// runs appears in both sets.
func Scan(g *Grid) []MatchSet {
	var sets []MatchSet
	for row := 0; row < g.H; row++ {
		sets = scanLine(g, sets, Horizontal, g.W, func(i int) Position { return Position{Col: i, Row: row} })
	}
	for col := 0; col < g.W; col++ {
		sets = scanLine(g, sets, Vertical, g.H, func(i int) Position { return Position{Col: col, Row: i} })
	}
	return sets
}

func scanLine(g *Grid, sets []MatchSet, o Orientation, n int, at func(int) Position) []MatchSet {
	start := 0
	for start < n {
		t, ok := g.At(at(start))
		if !ok {
			start++
			continue
		}
		end := start + 1
		for end < n {
			u, ok := g.At(at(end))
			if !ok || u.Color != t.Color {
				break
			}
			end++
		}
		if end-start >= MinRun {
			m := MatchSet{Color: t.Color, Orientation: o, Positions: make([]Position, 0, end-start)}
			for i := start; i < end; i++ {
				m.Positions = append(m.Positions, at(i))
			}
			sets = append(sets, m)
		}
		start = end
	}
	return sets
}

// Union collapses the positions of all sets, dropping duplicates.
func Union(sets []MatchSet) PositionSet {
	u := make(PositionSet)
	for _, m := range sets {
		for _, p := range m.Positions {
			u.Add(p)
		}
	}
	return u
}
