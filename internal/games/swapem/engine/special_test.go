package engine

import "testing"

func makeSpecial(g *Grid, p Position, kind SpecialKind) {
	t, _ := g.At(p)
	t.Special = kind
	g.Set(p, t)
}

func TestExpandWithoutSpecialsIsIdentity(t *testing.T) {
	g := gridFromRows(t, deadlockRows...)
	matched := NewPositionSet(Pos(0, 0), Pos(1, 0), Pos(2, 0))

	got := Expand(g, matched)
	if !got.Equal(matched) {
		t.Errorf("Expand() = %v, want %v", got.Sorted(), matched.Sorted())
	}
}

func TestExpandCrossAddsRowAndColumn(t *testing.T) {
	g := gridFromRows(t, deadlockRows...)
	makeSpecial(g, Pos(3, 4), SpecialCross)
	matched := NewPositionSet(Pos(2, 4), Pos(3, 4), Pos(4, 4))

	got := Expand(g, matched)

	for col := 0; col < g.W; col++ {
		if !got.Has(Pos(col, 4)) {
			t.Errorf("row 4 cell %v missing from destroy set", Pos(col, 4))
		}
	}
	for row := 0; row < g.H; row++ {
		if !got.Has(Pos(3, row)) {
			t.Errorf("column 3 cell %v missing from destroy set", Pos(3, row))
		}
	}
	if len(got) != 15 {
		t.Errorf("destroy set size = %d, want 15", len(got))
	}
}

func TestExpandLineEffects(t *testing.T) {
	tests := []struct {
		name string
		kind SpecialKind
		want int
	}{
		{"row clear", SpecialRowClear, 8},
		{"column clear", SpecialColumnClear, 10},
		{"cross", SpecialCross, 15},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := gridFromRows(t, deadlockRows...)
			makeSpecial(g, Pos(3, 4), tc.kind)
			matched := NewPositionSet(Pos(2, 4), Pos(3, 4), Pos(4, 4))

			if got := len(Expand(g, matched)); got != tc.want {
				t.Errorf("destroy set size = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestExpandChainsThroughSpecials(t *testing.T) {
	g := gridFromRows(t, deadlockRows...)
	makeSpecial(g, Pos(3, 4), SpecialCross)
	makeSpecial(g, Pos(6, 4), SpecialColumnClear) // swept by the cross row
	makeSpecial(g, Pos(6, 0), SpecialRowClear)    // swept by column 6
	matched := NewPositionSet(Pos(2, 4), Pos(3, 4), Pos(4, 4))

	got := Expand(g, matched)

	// Row 4 and column 3 (15), column 6 (+7), row 0 (+6).
	if len(got) != 28 {
		t.Errorf("destroy set size = %d, want 28", len(got))
	}
	for col := 0; col < g.W; col++ {
		if !got.Has(Pos(col, 0)) {
			t.Errorf("row 0 cell %v should be destroyed by the chained row clear", Pos(col, 0))
		}
	}
}

func TestExpandIsIdempotent(t *testing.T) {
	g := gridFromRows(t, deadlockRows...)
	makeSpecial(g, Pos(3, 4), SpecialCross)
	makeSpecial(g, Pos(6, 4), SpecialColumnClear)
	makeSpecial(g, Pos(6, 0), SpecialRowClear)
	makeSpecial(g, Pos(0, 7), SpecialRowClear) // never reached
	matched := NewPositionSet(Pos(2, 4), Pos(3, 4), Pos(4, 4))

	once := Expand(g, matched)
	twice := Expand(g, once)
	if !twice.Equal(once) {
		t.Errorf("Expand is not idempotent: %d vs %d cells", len(once), len(twice))
	}
	if once.Has(Pos(0, 7)) {
		t.Error("special outside every swept line should not be destroyed")
	}
}
