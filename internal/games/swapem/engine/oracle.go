package engine

// HasAnyValidMove reports whether some adjacent swap produces a match.
// The grid is restored after every trial swap.
func HasAnyValidMove(g *Grid) bool {
	_, _, ok := FindValidMove(g)
	return ok
}

// FindValidMove returns the first match-producing swap in row-major order.
func FindValidMove(g *Grid) (a, b Position, ok bool) {
	for row := 0; row < g.H; row++ {
		for col := 0; col < g.W; col++ {
			a = Position{Col: col, Row: row}
			for _, b = range [2]Position{{Col: col + 1, Row: row}, {Col: col, Row: row + 1}} {
				if !g.InBounds(b) {
					continue
				}
				g.Swap(a, b)
				found := len(Scan(g)) > 0
				g.Swap(a, b)
				if found {
					return a, b, true
				}
			}
		}
	}
	return Position{}, Position{}, false
}
