// Package swapem adapts the match-3 engine to the terminal game loop.
// The engine resolves a swap in one call; this package replays the
// recorded destroy, spawn and settle steps one snapshot per step delay.
package swapem

import (
	"errors"
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/swapem/internal/config"
	"github.com/vovakirdan/swapem/internal/core"
	"github.com/vovakirdan/swapem/internal/games/swapem/engine"
	"github.com/vovakirdan/swapem/internal/registry"
)

// Game implements Swap'em! for one palette size.
type Game struct {
	palette    int
	cfg        config.SwapemConfig
	session    *engine.Session
	rng        *rand.Rand
	highScores engine.HighScores
	tick       uint64

	// Screen dimensions
	screenW  int
	screenH  int
	tickRate int

	cursor engine.Position

	// Playback of the last resolution
	playback     *engine.StepIterator
	current      engine.Step
	playing      bool
	stepTicks    int
	display      *engine.Grid
	displayScore int

	hintA, hintB engine.Position
	hintTicks    int
	message      string
	messageTicks int

	paused   bool
	tooSmall bool
	err      error
}

// Package-level variables for config
var (
	configPath string
	logger     = log.New(io.Discard)
)

// SetConfigPath sets a custom config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger shared by every game instance and its engine session.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// GameID returns the registry id for a palette size.
func GameID(palette int) string {
	return fmt.Sprintf("swapem-%d", palette)
}

// PaletteFromID parses a registry id created by GameID.
func PaletteFromID(id string) (int, bool) {
	var palette int
	if _, err := fmt.Sscanf(id, "swapem-%d", &palette); err != nil {
		return 0, false
	}
	if palette < engine.MinPaletteSize || palette > engine.MaxPaletteSize {
		return 0, false
	}
	return palette, true
}

// New creates a game using the given number of colors.
func New(palette int) *Game {
	return &Game{palette: palette}
}

func init() {
	for p := engine.MinPaletteSize; p <= engine.MaxPaletteSize; p++ {
		palette := p
		registry.Register(GameID(palette), func() registry.Game {
			return New(palette)
		})
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID(g.palette)
}

// Title returns the display name.
func (g *Game) Title() string {
	return fmt.Sprintf("Swap'em! (%d colors)", g.palette)
}

// PaletteSize returns the number of colors on the board.
func (g *Game) PaletteSize() int {
	return g.palette
}

// UseHighScores sets where per-palette records are read and written.
// It takes effect on the next Reset.
func (g *Game) UseHighScores(h engine.HighScores) {
	g.highScores = h
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadSwapem(configPath)
	if err != nil {
		logger.Warn("using default config", "error", err)
	}
	g.cfg = loaded

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tickRate = cfg.TickRate
	if g.tickRate <= 0 {
		g.tickRate = 60
	}
	g.paused = false
	g.err = nil
	g.playback = nil
	g.playing = false
	g.current = engine.Step{}
	g.hintTicks = 0
	g.message = ""
	g.messageTicks = 0

	opts := []engine.Option{engine.WithRand(g.rng), engine.WithLogger(logger)}
	if g.highScores != nil {
		opts = append(opts, engine.WithHighScores(g.highScores))
	}

	session, err := engine.NewSession(engine.Config{
		Width:       g.cfg.Grid.Width,
		Height:      g.cfg.Grid.Height,
		PaletteSize: g.palette,
	}, opts...)
	if err != nil {
		logger.Error("cannot start session", "palette", g.palette, "error", err)
		g.session = nil
		g.err = err
		g.display = nil
		g.displayScore = 0
		g.checkScreenSize()
		return
	}
	g.session = session
	g.session.CheckMoves()

	g.display = session.Grid()
	g.displayScore = session.Score()
	g.cursor = engine.Pos(g.display.W/2, g.display.H/2)

	g.checkScreenSize()
}

// Resize re-lays out the board for a new terminal size without restarting.
func (g *Game) Resize(width, height int) {
	g.screenW = width
	g.screenH = height
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	if g.display == nil {
		g.tooSmall = false
		return
	}
	minW := g.display.W*tileWidth + 2
	minH := g.display.H + hudHeight + 2
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall || g.session == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle pause
	if in.Has(core.ActionPause) && !g.over() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}
	if g.hintTicks > 0 {
		g.hintTicks--
	}

	if g.playing {
		g.stepTicks--
		if g.stepTicks <= 0 {
			g.advancePlayback()
		}
		return core.StepResult{State: g.State()}
	}

	if g.over() {
		return core.StepResult{State: g.State()}
	}

	switch {
	case in.Has(core.ActionUp):
		g.moveCursor(0, -1)
	case in.Has(core.ActionDown):
		g.moveCursor(0, 1)
	case in.Has(core.ActionLeft):
		g.moveCursor(-1, 0)
	case in.Has(core.ActionRight):
		g.moveCursor(1, 0)
	}

	if in.Has(core.ActionHint) {
		g.showHint()
	}

	if in.Has(core.ActionConfirm) {
		g.confirm()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) moveCursor(dx, dy int) {
	g.cursor.Col = core.Clamp(g.cursor.Col+dx, 0, g.display.W-1)
	g.cursor.Row = core.Clamp(g.cursor.Row+dy, 0, g.display.H-1)
}

func (g *Game) showHint() {
	a, b, ok := g.session.Hint()
	if !ok {
		return
	}
	g.hintA, g.hintB = a, b
	g.hintTicks = g.cfg.Presentation.HintTicks
}

// confirm clicks the tile under the cursor.
func (g *Game) confirm() {
	outcome, err := g.session.SelectTile(g.cursor)
	if err != nil {
		var iv *engine.InvariantViolation
		if errors.As(err, &iv) {
			logger.Error("resolution aborted", "error", err)
			g.err = err
		} else {
			g.flash(err.Error())
		}
	}

	switch outcome {
	case engine.OutcomeRejected:
		g.flash("No match")
	case engine.OutcomeResolved, engine.OutcomeGameOver:
		g.hintTicks = 0
		g.startPlayback()
	}
}

func (g *Game) flash(msg string) {
	g.message = msg
	g.messageTicks = g.cfg.Presentation.MessageTicks
}

// startPlayback begins replaying the most recent resolution.
func (g *Game) startPlayback() {
	res := g.session.LastResolution()
	if res == nil || res.Len() == 0 {
		g.finishPlayback()
		return
	}
	g.playback = res.Steps()
	g.displayScore = g.session.Score() - res.Awarded
	g.playing = true
	g.advancePlayback()
}

// advancePlayback shows the next recorded step, or ends playback.
func (g *Game) advancePlayback() {
	step, ok := g.playback.Next()
	if !ok {
		g.finishPlayback()
		return
	}
	g.current = step
	g.display = step.Grid
	g.displayScore += step.Awarded
	g.stepTicks = g.cfg.StepDelayTicks(g.tickRate)
}

func (g *Game) finishPlayback() {
	g.playing = false
	g.playback = nil
	g.current = engine.Step{}
	g.display = g.session.Grid()
	g.displayScore = g.session.Score()
}

// over reports whether the game-over screen is due. It waits for playback.
func (g *Game) over() bool {
	if g.err != nil {
		return true
	}
	return g.session != nil && g.session.State() == engine.StateGameOver && !g.playing
}

// Abandon leaves the game early. Records are saved once any playback ends.
func (g *Game) Abandon() error {
	if g.session == nil {
		return nil
	}
	if g.playing {
		return engine.ErrResolving
	}
	if g.session.State() == engine.StateGameOver {
		return nil
	}
	return g.session.EscapeToMenu()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.displayScore,
		GameOver: g.over(),
		Paused:   g.paused || g.tooSmall,
		Busy:     g.playing,
	}
}
