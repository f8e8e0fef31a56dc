package swapem

import (
	"strings"

	"github.com/vovakirdan/swapem/internal/games/swapem/engine"
)

// GameStateType represents the adapter-level state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StateResolving   GameStateType = "resolving"
	StateGameOver    GameStateType = "game_over"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
	StateError       GameStateType = "error"
)

// Snapshot captures the game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Palette   int
	Score     int
	HighScore int
	Chain     int
	Cursor    engine.Position
	Board     []string // One string per row, color ids as digits, '.' for empty
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.err != nil:
		state = StateError
	case g.over():
		state = StateGameOver
	case g.playing:
		state = StateResolving
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:    g.tick,
		Palette: g.palette,
		Score:   g.displayScore,
		Cursor:  g.cursor,
		Board:   boardRows(g.display),
		State:   state,
	}
	if g.session != nil {
		snap.HighScore = g.session.HighScore()
		snap.Chain = g.session.Chain()
	}
	return snap
}

func boardRows(grid *engine.Grid) []string {
	if grid == nil {
		return nil
	}
	rows := make([]string, grid.H)
	var sb strings.Builder
	for row := 0; row < grid.H; row++ {
		sb.Reset()
		for col := 0; col < grid.W; col++ {
			t, ok := grid.At(engine.Pos(col, row))
			if !ok {
				sb.WriteByte('.')
				continue
			}
			sb.WriteByte(byte('0' + t.Color))
		}
		rows[row] = sb.String()
	}
	return rows
}
