package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/swapem/internal/config"
	"github.com/vovakirdan/swapem/internal/core"
	"github.com/vovakirdan/swapem/internal/games/swapem"
	"github.com/vovakirdan/swapem/internal/platform/tui"
	"github.com/vovakirdan/swapem/internal/registry"
	"github.com/vovakirdan/swapem/internal/storage"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play [palette]",
	Short: "Play a game",
	Long: `Start playing with the given number of colors (5-8).

Without an argument the palette comes from --difficulty, or from the
config's grid.palette_size.

Controls:
  Arrows/WASD  - Move cursor
  Enter/Space  - Select tile, select neighbour to swap
  H            - Show a hint
  P            - Pause
  B/Esc        - Back (saves a new record)
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 5 colors
  normal - 6 colors
  hard   - 7 colors
  expert - 8 colors

Examples:
  swapem play
  swapem play 7
  swapem play swapem-8
  swapem play --difficulty easy
  swapem play --config ./my-swapem.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, expert")
}

// resolveGameID picks the registry id from an argument, preset or the config default.
func resolveGameID(args []string, cfg config.SwapemConfig, difficulty string) (string, error) {
	if len(args) == 1 {
		if registry.Exists(args[0]) {
			return args[0], nil
		}
		palette, err := strconv.Atoi(args[0])
		if err != nil {
			return "", fmt.Errorf("unknown game %q", args[0])
		}
		id := swapem.GameID(palette)
		if !registry.Exists(id) {
			return "", fmt.Errorf("palette must be between %d and %d, got %d", config.MinPaletteSize, config.MaxPaletteSize, palette)
		}
		return id, nil
	}

	if difficulty != "" {
		preset, err := config.ParsePreset(difficulty)
		if err != nil {
			return "", err
		}
		config.ApplySwapemPreset(&cfg, preset)
	}
	return swapem.GameID(cfg.Grid.PaletteSize), nil
}

func runPlay(cmd *cobra.Command, args []string) {
	swapem.SetConfigPath(flagConfig)

	gameCfg, err := config.LoadSwapem(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}

	gameID, err := resolveGameID(args, gameCfg, flagDifficulty)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'swapem list' to see available games.")
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	_, runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
