package engine

import (
	"testing"
)

func TestHasAnyValidMove(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want bool
	}{
		{"deadlock board", deadlockRows, false},
		{"one swap completes row 0", withRow(deadlockRows, 0, "21234012"), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := gridFromRows(t, tc.rows...)
			if got := HasAnyValidMove(g); got != tc.want {
				t.Errorf("HasAnyValidMove() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFindValidMoveReturnsFirstPair(t *testing.T) {
	g := gridFromRows(t, withRow(deadlockRows, 0, "21234012")...)

	a, b, ok := FindValidMove(g)
	if !ok {
		t.Fatal("FindValidMove() found nothing")
	}
	if a != Pos(1, 0) || b != Pos(1, 1) {
		t.Errorf("FindValidMove() = %v, %v, want (1,0), (1,1)", a, b)
	}
}

func TestOracleDoesNotMutateGrid(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		g, _ := NewGrid(8, 8)
		if err := Fill(g, newFactory(t, 5, seed)); err != nil {
			t.Fatalf("Fill() failed: %v", err)
		}
		before := g.Clone()

		HasAnyValidMove(g)
		if !g.Equal(before) {
			t.Fatalf("seed %d: HasAnyValidMove changed the grid", seed)
		}
	}

	deadlock := gridFromRows(t, deadlockRows...)
	before := deadlock.Clone()
	HasAnyValidMove(deadlock)
	if !deadlock.Equal(before) {
		t.Error("exhaustive search changed the deadlock grid")
	}
}
