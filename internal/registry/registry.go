// Package registry maps game ids to factories. Each Swap'em! palette
// registers itself in init(), so the CLI and the SSH menu can create
// boards by id without importing the game package directly.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/swapem/internal/core"
)

// Game is what the platform drives: a fixed-tick simulation that draws
// into a core.Screen. Implementations must not import Bubble Tea.
type Game interface {
	// ID is the stable key used by the CLI and score storage, e.g. "swapem-6".
	ID() string

	// Title is shown in menus and on the scoreboard.
	Title() string

	// Reset starts a fresh play-through with the given screen size and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one tick with the actions collected since the last one.
	Step(in core.InputFrame) core.StepResult

	// Render draws into a pre-cleared screen.
	Render(dst *core.Screen)

	// State reports score, game over, pause and whether a move is playing back.
	State() core.GameState
}

// GameInfo describes a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory creates a new game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
)

// Register adds a factory under id. It panics on a duplicate id.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = f().Title()
}

// List returns every registered game sorted by id.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	out := make([]GameInfo, 0, len(factories))
	for id := range factories {
		out = append(out, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Create builds a new instance of the game registered as id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
