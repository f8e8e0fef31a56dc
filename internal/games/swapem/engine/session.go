package engine

import (
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Palette bounds accepted by a session.
const (
	MinPaletteSize = 5
	MaxPaletteSize = 8
)

// State is the session lifecycle state.
type State uint8

const (
	StateAwaitingInput State = iota
	StateResolving
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateAwaitingInput:
		return "AwaitingInput"
	case StateResolving:
		return "Resolving"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Outcome describes what a player input did.
type Outcome uint8

const (
	OutcomeIgnored    Outcome = iota // session not accepting input
	OutcomeSelected                  // first tile recorded
	OutcomeDeselected                // selection cleared
	OutcomeRejected                  // swap produced no match and was undone
	OutcomeResolved                  // swap resolved, moves remain
	OutcomeGameOver                  // swap resolved into a deadlock
)

// Tips are shown on the game-over screen.
var Tips = []string{
	"Try to look for matches that create chain reactions!",
	"Focus on creating matches at the bottom of the grid first.",
	"Sometimes sacrificing a move to set up a big combo is worth it.",
	"Pay attention to potential matches before making a swap.",
	"Try to create special matches of 4 or 5 tiles for bonus points!",
	"Don't rush - take your time to plan your moves carefully.",
}

// HighScores persists the best score per palette size.
type HighScores interface {
	LoadHighScore(paletteSize int) (int, error)
	SaveHighScore(paletteSize, score int) error
}

// Config sets the board shape and difficulty of a session.
type Config struct {
	Width       int
	Height      int
	PaletteSize int
}

// DefaultConfig returns an 8x8 board with the given palette size.
func DefaultConfig(paletteSize int) Config {
	return Config{Width: 8, Height: 8, PaletteSize: paletteSize}
}

// Option customizes a Session at construction.
type Option func(*Session)

// WithRand sets the random source. Defaults to a time-seeded source.
func WithRand(r Rand) Option {
	return func(s *Session) { s.rng = r }
}

// WithGrid starts the session from a prepared grid instead of a fresh fill.
// The grid is copied.
func WithGrid(g *Grid) Option {
	return func(s *Session) { s.grid = g.Clone() }
}

// WithHighScores attaches a high-score store.
func WithHighScores(h HighScores) Option {
	return func(s *Session) { s.highScores = h }
}

// WithLogger sets the logger used for non-fatal storage problems.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// Session owns one play-through: grid, score, chain and selection.
// It is not safe for concurrent use.
type Session struct {
	cfg        Config
	grid       *Grid
	factory    *TileFactory
	rng        Rand
	highScores HighScores
	logger     *log.Logger

	state       State
	score       int
	chain       int
	selected    Position
	hasSelected bool
	highScore   int
	newRecord   bool
	last        *Resolution
	tip         string
}

// NewSession validates cfg and builds a match-free board. The high score for
// the palette is loaded once; a load failure is logged and treated as 0.
func NewSession(cfg Config, opts ...Option) (*Session, error) {
	if cfg.PaletteSize < MinPaletteSize || cfg.PaletteSize > MaxPaletteSize {
		return nil, &ConfigurationError{
			Field:  "palette_size",
			Reason: fmt.Sprintf("must be in [%d,%d], got %d", MinPaletteSize, MaxPaletteSize, cfg.PaletteSize),
		}
	}

	s := &Session{cfg: cfg, chain: 1}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}

	factory, err := NewTileFactory(cfg.PaletteSize, s.rng)
	if err != nil {
		return nil, err
	}
	s.factory = factory

	if s.grid == nil {
		g, err := NewGrid(cfg.Width, cfg.Height)
		if err != nil {
			return nil, err
		}
		if err := Fill(g, factory); err != nil {
			return nil, err
		}
		s.grid = g
	} else if !s.grid.Full() {
		return nil, &ConfigurationError{Field: "grid", Reason: "prepared grid has empty cells"}
	}
	s.cfg.Width, s.cfg.Height = s.grid.W, s.grid.H

	if s.highScores != nil {
		high, err := s.highScores.LoadHighScore(cfg.PaletteSize)
		if err != nil {
			s.logger.Warn("could not load high score", "palette", cfg.PaletteSize, "error", err)
			high = 0
		}
		s.highScore = high
	}

	return s, nil
}

// SelectTile handles a click on p. The first click records a selection; a
// second click on an adjacent tile attempts a swap; any other second click
// clears the selection.
func (s *Session) SelectTile(p Position) (Outcome, error) {
	if s.state != StateAwaitingInput {
		return OutcomeIgnored, nil
	}
	if !s.grid.InBounds(p) {
		s.hasSelected = false
		return OutcomeDeselected, nil
	}
	if !s.hasSelected {
		s.selected = p
		s.hasSelected = true
		return OutcomeSelected, nil
	}

	from := s.selected
	s.hasSelected = false
	if !from.Adjacent(p) {
		return OutcomeDeselected, nil
	}
	return s.Swap(from, p)
}

// Swap exchanges two adjacent tiles. A swap that matches nothing is undone.
// A matching swap runs the cascade to completion and then checks for a
// deadlock.
func (s *Session) Swap(a, b Position) (Outcome, error) {
	switch s.state {
	case StateResolving:
		return OutcomeIgnored, ErrResolving
	case StateGameOver:
		return OutcomeIgnored, nil
	}
	if !s.grid.InBounds(a) || !s.grid.InBounds(b) || !a.Adjacent(b) {
		return OutcomeRejected, nil
	}

	s.grid.Swap(a, b)
	if len(Scan(s.grid)) == 0 {
		s.grid.Swap(a, b)
		return OutcomeRejected, nil
	}

	s.chain = 1
	s.state = StateResolving
	res, err := Resolve(s.grid, s.factory)
	s.last = res
	if res != nil {
		s.score += res.Awarded
		s.chain = res.FinalChain
	}
	if err != nil {
		s.state = StateGameOver
		return OutcomeGameOver, err
	}
	s.logger.Debug("resolved swap",
		"from", a, "to", b,
		"iterations", res.Iterations,
		"awarded", res.Awarded,
		"chain", res.FinalChain,
	)

	if !HasAnyValidMove(s.grid) {
		s.endGame()
		return OutcomeGameOver, nil
	}
	s.state = StateAwaitingInput
	return OutcomeResolved, nil
}

// CheckMoves runs the deadlock check on the current board and ends the game
// if no swap can match. It reports whether a valid move exists.
func (s *Session) CheckMoves() bool {
	if s.state == StateGameOver {
		return false
	}
	if s.state != StateAwaitingInput {
		return true
	}
	if HasAnyValidMove(s.grid) {
		return true
	}
	s.endGame()
	return false
}

// Hint returns one valid swap on the current board.
func (s *Session) Hint() (a, b Position, ok bool) {
	if s.state != StateAwaitingInput {
		return Position{}, Position{}, false
	}
	return FindValidMove(s.grid)
}

// EscapeToMenu abandons the session, saving the score if it beats the
// stored record. It is refused while a resolution is in flight.
func (s *Session) EscapeToMenu() error {
	if s.state == StateResolving {
		return ErrResolving
	}
	s.hasSelected = false
	s.recordIfNew()
	return nil
}

func (s *Session) endGame() {
	s.state = StateResolving
	s.recordIfNew()
	s.tip = Tips[s.rng.Intn(len(Tips))]
	s.state = StateGameOver
}

func (s *Session) recordIfNew() {
	if s.score <= s.highScore {
		return
	}
	s.highScore = s.score
	s.newRecord = true
	if s.highScores == nil {
		return
	}
	if err := s.highScores.SaveHighScore(s.cfg.PaletteSize, s.score); err != nil {
		s.logger.Warn("could not save high score", "palette", s.cfg.PaletteSize, "error", err)
	}
}

// Score returns the accumulated score.
func (s *Session) Score() int { return s.score }

// Chain returns the multiplier reached by the last resolution.
func (s *Session) Chain() int { return s.chain }

// State returns the lifecycle state.
func (s *Session) State() State { return s.state }

// Grid returns a snapshot of the board.
func (s *Session) Grid() *Grid { return s.grid.Clone() }

// Selected returns the pending selection, if any.
func (s *Session) Selected() (Position, bool) { return s.selected, s.hasSelected }

// HighScore returns the best known score for this palette.
func (s *Session) HighScore() int { return s.highScore }

// NewRecord reports whether this session beat the stored high score.
func (s *Session) NewRecord() bool { return s.newRecord }

// PaletteSize returns the configured palette size.
func (s *Session) PaletteSize() int { return s.cfg.PaletteSize }

// LastResolution returns the record of the most recent accepted swap.
func (s *Session) LastResolution() *Resolution { return s.last }

// Tip returns the game-over tip, empty until the game ends.
func (s *Session) Tip() string { return s.tip }
