package engine

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

func TestFillLeavesNoMatches(t *testing.T) {
	for palette := MinPaletteSize; palette <= MaxPaletteSize; palette++ {
		for seed := int64(1); seed <= 20; seed++ {
			t.Run(fmt.Sprintf("palette=%d/seed=%d", palette, seed), func(t *testing.T) {
				g, _ := NewGrid(8, 8)
				if err := Fill(g, newFactory(t, palette, seed)); err != nil {
					t.Fatalf("Fill() failed: %v", err)
				}
				if !g.Full() {
					t.Error("grid has gaps after Fill")
				}
				if sets := Scan(g); len(sets) != 0 {
					t.Errorf("Fill() left %d matches", len(sets))
				}
				for _, c := range g.Cells {
					if c.Tile.Special != SpecialNone {
						t.Fatal("Fill() should only place plain tiles")
					}
					if int(c.Tile.Color) >= palette {
						t.Fatalf("color %d outside palette %d", c.Tile.Color, palette)
					}
				}
			})
		}
	}
}

func TestFillTerminatesOnDegeneratePalette(t *testing.T) {
	g, _ := NewGrid(8, 8)
	err := Fill(g, newFactory(t, 1, 7))

	var inv *InvariantViolation
	if !errors.As(err, &inv) {
		t.Fatalf("Fill() with one color error = %v, want InvariantViolation", err)
	}
	if !g.Full() {
		t.Error("grid should still be fully populated")
	}
}

func TestNewTileFactoryValidation(t *testing.T) {
	var cfgErr *ConfigurationError

	if _, err := NewTileFactory(0, rand.New(rand.NewSource(1))); !errors.As(err, &cfgErr) {
		t.Errorf("palette 0 error = %v, want ConfigurationError", err)
	}
	if _, err := NewTileFactory(5, nil); !errors.As(err, &cfgErr) {
		t.Errorf("nil rng error = %v, want ConfigurationError", err)
	}
}
