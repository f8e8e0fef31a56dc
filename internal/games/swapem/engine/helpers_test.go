package engine

import (
	"errors"
	"math/rand"
	"testing"
)

// deadlockRows is an 8x8, 5-color board with no match and no valid swap:
// color(col, row) = (col + row) mod 5.
var deadlockRows = []string{
	"01234012",
	"12340123",
	"23401234",
	"34012340",
	"40123401",
	"01234012",
	"12340123",
	"23401234",
}

// gridFromRows builds a full grid from digit rows, one digit per color.
func gridFromRows(t *testing.T, rows ...string) *Grid {
	t.Helper()
	g, err := NewGrid(len(rows[0]), len(rows))
	if err != nil {
		t.Fatalf("NewGrid() failed: %v", err)
	}
	for row, line := range rows {
		if len(line) != g.W {
			t.Fatalf("row %d has width %d, want %d", row, len(line), g.W)
		}
		for col, ch := range line {
			g.Set(Pos(col, row), Tile{Color: ColorID(ch - '0')})
		}
	}
	return g
}

// withRow returns a copy of rows with one row replaced.
func withRow(rows []string, index int, line string) []string {
	out := append([]string(nil), rows...)
	out[index] = line
	return out
}

func newFactory(t *testing.T, palette int, seed int64) *TileFactory {
	t.Helper()
	f, err := NewTileFactory(palette, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("NewTileFactory() failed: %v", err)
	}
	return f
}

// memHighScores is an in-memory HighScores for session tests.
type memHighScores struct {
	scores  map[int]int
	loadErr error
	saveErr error
	saves   []int
}

func newMemHighScores() *memHighScores {
	return &memHighScores{scores: make(map[int]int)}
}

func (m *memHighScores) LoadHighScore(palette int) (int, error) {
	if m.loadErr != nil {
		return 0, m.loadErr
	}
	return m.scores[palette], nil
}

func (m *memHighScores) SaveHighScore(palette, score int) error {
	m.saves = append(m.saves, score)
	if m.saveErr != nil {
		return m.saveErr
	}
	m.scores[palette] = score
	return nil
}

var errStoreDown = errors.New("store unavailable")
