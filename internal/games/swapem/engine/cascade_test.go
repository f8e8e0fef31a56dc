package engine

import (
	"errors"
	"testing"
)

// fourRunRows holds exactly one match: a horizontal run of four 0s on row 7.
var fourRunRows = withRow(deadlockRows, 7, "00001234")

func TestResolveFourRunScenario(t *testing.T) {
	g := gridFromRows(t, fourRunRows...)
	f := newFactory(t, 5, 42)

	res, err := Resolve(g, f)
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}

	it := res.Steps()
	destroyed, ok := it.Next()
	if !ok || destroyed.Kind != StepDestroyed {
		t.Fatalf("first step = %v, want Destroyed", destroyed.Kind)
	}
	if destroyed.Awarded != 50 {
		t.Errorf("first iteration awarded %d, want 50", destroyed.Awarded)
	}
	if destroyed.Chain != 1 {
		t.Errorf("first iteration chain = %d, want 1", destroyed.Chain)
	}
	if len(destroyed.Destroyed) != 4 {
		t.Fatalf("destroyed %d cells, want 4", len(destroyed.Destroyed))
	}
	for i, p := range destroyed.Destroyed {
		if p != Pos(i, 7) {
			t.Errorf("destroyed[%d] = %v, want %v", i, p, Pos(i, 7))
		}
		if _, filled := destroyed.Grid.At(p); filled {
			t.Errorf("destroyed cell %v is still filled in the snapshot", p)
		}
	}

	spawned, ok := it.Next()
	if !ok || spawned.Kind != StepSpawned {
		t.Fatalf("second step = %v, want Spawned", spawned.Kind)
	}
	sp := spawned.Spawn
	if sp.Tile.Special != SpecialRowClear {
		t.Errorf("spawned %v, want RowClear", sp.Tile.Special)
	}
	if sp.Target.Row != 0 || sp.Target.Col < 0 || sp.Target.Col > 3 {
		t.Errorf("spawn target %v, want row 0 of a cleared column", sp.Target)
	}
	if tile, _ := spawned.Grid.At(sp.Target); tile != sp.Tile {
		t.Errorf("snapshot at %v = %+v, want %+v", sp.Target, tile, sp.Tile)
	}

	settled, ok := it.Next()
	if !ok || settled.Kind != StepSettled {
		t.Fatalf("third step = %v, want Settled", settled.Kind)
	}
	if !settled.Grid.Full() {
		t.Error("settled snapshot has gaps")
	}

	// Each cleared column had one gap at the bottom, so every tile above it
	// drops exactly one row, the spawned special included.
	for col := 0; col < 4; col++ {
		for row := 0; row < 7; row++ {
			before, _ := spawned.Grid.At(Pos(col, row))
			after, _ := settled.Grid.At(Pos(col, row+1))
			if before != after {
				t.Errorf("col %d: tile from row %d moved out of order", col, row)
			}
		}
	}
	if tile, _ := settled.Grid.At(Pos(sp.Target.Col, 1)); tile.Special != SpecialRowClear {
		t.Error("spawned special should fall one row during settlement")
	}

	spawns := 0
	it.Reset()
	for step, ok := it.Next(); ok; step, ok = it.Next() {
		if step.Kind == StepSpawned && step.Iteration == 1 {
			spawns++
		}
	}
	if spawns != 1 {
		t.Errorf("first iteration spawned %d specials, want 1", spawns)
	}

	if !g.Full() || len(Scan(g)) != 0 {
		t.Error("resolved grid should be full and stable")
	}
}

func TestResolveChainProgression(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		g := gridFromRows(t, fourRunRows...)
		res, err := Resolve(g, newFactory(t, 5, seed))
		if err != nil {
			t.Fatalf("seed %d: Resolve() failed: %v", seed, err)
		}

		wantFinal := res.Iterations + 1
		if wantFinal > MaxChain {
			wantFinal = MaxChain
		}
		if res.FinalChain != wantFinal {
			t.Errorf("seed %d: FinalChain = %d after %d iterations, want %d",
				seed, res.FinalChain, res.Iterations, wantFinal)
		}

		total := 0
		it := res.Steps()
		for step, ok := it.Next(); ok; step, ok = it.Next() {
			want := step.Iteration
			if want > MaxChain {
				want = MaxChain
			}
			if step.Chain != want {
				t.Errorf("seed %d: iteration %d used chain %d, want %d", seed, step.Iteration, step.Chain, want)
			}
			total += step.Awarded
		}
		if total != res.Awarded {
			t.Errorf("seed %d: step awards sum to %d, resolution says %d", seed, total, res.Awarded)
		}
	}
}

func TestResolveStableGrid(t *testing.T) {
	g := gridFromRows(t, deadlockRows...)
	before := g.Clone()

	res, err := Resolve(g, newFactory(t, 5, 1))
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}
	if res.Len() != 0 || res.Awarded != 0 || res.FinalChain != 1 {
		t.Errorf("resolution of a stable grid = %+v", res)
	}
	if !g.Equal(before) {
		t.Error("stable grid should be untouched")
	}
}

func TestResolveReportsGaps(t *testing.T) {
	g := gridFromRows(t, deadlockRows...)
	g.Clear(Pos(4, 4))

	_, err := Resolve(g, newFactory(t, 5, 1))
	var inv *InvariantViolation
	if !errors.As(err, &inv) {
		t.Fatalf("Resolve() error = %v, want InvariantViolation", err)
	}
}

func TestStepIteratorReplay(t *testing.T) {
	g := gridFromRows(t, fourRunRows...)
	res, err := Resolve(g, newFactory(t, 5, 3))
	if err != nil {
		t.Fatalf("Resolve() failed: %v", err)
	}

	collect := func(it *StepIterator) []StepKind {
		var kinds []StepKind
		for step, ok := it.Next(); ok; step, ok = it.Next() {
			kinds = append(kinds, step.Kind)
		}
		return kinds
	}

	it := res.Steps()
	if it.Remaining() != res.Len() {
		t.Errorf("Remaining() = %d, want %d", it.Remaining(), res.Len())
	}
	first := collect(it)
	if it.Remaining() != 0 {
		t.Error("iterator should be exhausted")
	}
	if _, ok := it.Next(); ok {
		t.Error("Next() after exhaustion should report false")
	}

	it.Reset()
	second := collect(it)
	if len(first) != len(second) || len(first) != res.Len() {
		t.Fatalf("replay lengths differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("step %d: %v then %v", i, first[i], second[i])
		}
	}

	if other := res.Steps(); other.Remaining() != res.Len() {
		t.Error("each call to Steps() should start from the beginning")
	}
}
