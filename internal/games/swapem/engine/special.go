package engine

// Expand grows a destroy set by the effects of every special tile it
// contains. Effects chain: a special tile swept up by another's line is
// expanded in turn. The result is a superset of matched.
func Expand(g *Grid, matched PositionSet) PositionSet {
	destroy := matched.Clone()
	queue := matched.Sorted()
	processed := make(PositionSet, len(matched))

	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		if !processed.Add(p) {
			continue
		}
		t, ok := g.At(p)
		if !ok || !t.IsSpecial() {
			continue
		}
		for _, q := range affected(g, p, t.Special) {
			if destroy.Add(q) {
				queue = append(queue, q)
			}
		}
	}
	return destroy
}

// affected lists the cells swept by a special tile at p.
func affected(g *Grid, p Position, kind SpecialKind) []Position {
	var out []Position
	if kind == SpecialRowClear || kind == SpecialCross {
		for col := 0; col < g.W; col++ {
			out = append(out, Position{Col: col, Row: p.Row})
		}
	}
	if kind == SpecialColumnClear || kind == SpecialCross {
		for row := 0; row < g.H; row++ {
			out = append(out, Position{Col: p.Col, Row: row})
		}
	}
	return out
}
