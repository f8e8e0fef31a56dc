package engine

import (
	"errors"
	"testing"
)

func TestNewGridRejectsBadDimensions(t *testing.T) {
	tests := []struct {
		name string
		w, h int
	}{
		{"zero width", 0, 8},
		{"zero height", 8, 0},
		{"negative", -1, -1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewGrid(tc.w, tc.h)
			var cfgErr *ConfigurationError
			if !errors.As(err, &cfgErr) {
				t.Fatalf("NewGrid(%d, %d) error = %v, want ConfigurationError", tc.w, tc.h, err)
			}
			if cfgErr.Field != "grid" {
				t.Errorf("Field = %q, want %q", cfgErr.Field, "grid")
			}
		})
	}
}

func TestGridSetGetClear(t *testing.T) {
	g, err := NewGrid(4, 3)
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}

	if _, ok := g.At(Pos(1, 1)); ok {
		t.Error("new grid cell should be empty")
	}

	g.Set(Pos(1, 2), Tile{Color: 3, Special: SpecialCross})
	tile, ok := g.At(Pos(1, 2))
	if !ok || tile.Color != 3 || tile.Special != SpecialCross {
		t.Errorf("At(1,2) = %+v, %v", tile, ok)
	}
	if g.Cells[2*4+1].Tile != tile {
		t.Error("cells should be stored row-major")
	}

	g.Set(Pos(9, 9), Tile{Color: 1}) // ignored
	if _, ok := g.At(Pos(9, 9)); ok {
		t.Error("out-of-bounds At should report empty")
	}

	g.Clear(Pos(1, 2))
	if _, ok := g.At(Pos(1, 2)); ok {
		t.Error("cell should be empty after Clear")
	}
}

func TestGridSwapAndClone(t *testing.T) {
	g := gridFromRows(t, "012", "345")
	clone := g.Clone()

	g.Swap(Pos(0, 0), Pos(2, 1))
	a, _ := g.At(Pos(0, 0))
	b, _ := g.At(Pos(2, 1))
	if a.Color != 5 || b.Color != 0 {
		t.Errorf("after Swap got %d and %d, want 5 and 0", a.Color, b.Color)
	}

	if g.Equal(clone) {
		t.Error("clone should not follow mutations of the original")
	}
	g.Swap(Pos(0, 0), Pos(2, 1))
	if !g.Equal(clone) {
		t.Error("swapping back should restore the original")
	}
}

func TestGridGaps(t *testing.T) {
	g := gridFromRows(t, "012", "345")
	if !g.Full() {
		t.Error("grid built from rows should be full")
	}

	g.Clear(Pos(2, 0))
	g.Clear(Pos(0, 1))
	gaps := g.Gaps()
	if len(gaps) != 2 || gaps[0] != Pos(2, 0) || gaps[1] != Pos(0, 1) {
		t.Errorf("Gaps() = %v, want [(2,0) (0,1)]", gaps)
	}
	if g.Full() {
		t.Error("grid with gaps should not be full")
	}
}

func TestGridSettlePreservesOrder(t *testing.T) {
	g := gridFromRows(t,
		"10",
		"21",
		"32",
		"43",
		"54",
	)
	g.Clear(Pos(0, 1))
	g.Clear(Pos(0, 3))
	g.Clear(Pos(1, 4))

	g.Settle(newFactory(t, 5, 1))

	if !g.Full() {
		t.Fatal("grid should be full after Settle")
	}

	// Column 0 survivors top to bottom were 1, 3, 5.
	want0 := []ColorID{1, 3, 5}
	for i, c := range want0 {
		tile, _ := g.At(Pos(0, 2+i))
		if tile.Color != c {
			t.Errorf("col 0 row %d = %d, want %d", 2+i, tile.Color, c)
		}
	}

	// Column 1 survivors were 0, 1, 2, 3.
	want1 := []ColorID{0, 1, 2, 3}
	for i, c := range want1 {
		tile, _ := g.At(Pos(1, 1+i))
		if tile.Color != c {
			t.Errorf("col 1 row %d = %d, want %d", 1+i, tile.Color, c)
		}
	}
}

func TestPositionAdjacent(t *testing.T) {
	tests := []struct {
		a, b Position
		want bool
	}{
		{Pos(3, 3), Pos(4, 3), true},
		{Pos(3, 3), Pos(3, 2), true},
		{Pos(3, 3), Pos(4, 4), false},
		{Pos(3, 3), Pos(3, 3), false},
		{Pos(0, 0), Pos(2, 0), false},
	}

	for _, tc := range tests {
		if got := tc.a.Adjacent(tc.b); got != tc.want {
			t.Errorf("%v.Adjacent(%v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}
