package engine

// Spawn describes a special tile created by a large match. Origin is the
// matched cell it was drawn from; Target is row 0 of the same column, where
// the tile is actually written before gravity runs.
type Spawn struct {
	Origin Position
	Target Position
	Tile   Tile
}

// SpecialForCount maps a matched cell count to the special it earns.
func SpecialForCount(n int) SpecialKind {
	switch {
	case n >= 6:
		return SpecialCross
	case n == 5:
		return SpecialColumnClear
	case n == 4:
		return SpecialRowClear
	default:
		return SpecialNone
	}
}

// PlanSpawn picks a special tile for the matched union, if it is large enough.
// The tile takes a random palette color rather than the matched color.
func PlanSpawn(matched PositionSet, f *TileFactory) (Spawn, bool) {
	kind := SpecialForCount(len(matched))
	if kind == SpecialNone {
		return Spawn{}, false
	}
	cells := matched.Sorted()
	origin := cells[f.rng.Intn(len(cells))]
	return Spawn{
		Origin: origin,
		Target: Position{Col: origin.Col, Row: 0},
		Tile:   Tile{Color: f.randomColor(), Special: kind},
	}, true
}
