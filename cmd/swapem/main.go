// swapem is a match-3 puzzle game for the terminal.
//
// Usage:
//
//	swapem list              - List available palettes
//	swapem play [palette]    - Play with 5-8 colors
//	swapem menu              - Pick a difficulty interactively
//	swapem serve             - Start SSH server for remote play
//	swapem scores [palette]  - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.swapem/scores.db)
//	--config <path> - Use a custom game config YAML
//	--debug         - Write engine debug logs to ~/.swapem/debug.log
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/swapem/internal/games/swapem"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
	flagDebug  bool
	flagConfig string

	debugLog *os.File
)

func main() {
	err := rootCmd.Execute()
	if debugLog != nil {
		debugLog.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "swapem",
	Short: "Swap'em! - a match-3 puzzle in your terminal",
	Long: `Swap'em! is a terminal match-3 game. Swap neighbouring tiles to line
up three or more of a color, set off chain reactions and build special
tiles that clear whole rows and columns.

Available commands:
  list     - Show the available palettes
  play     - Play a game directly
  menu     - Interactive difficulty picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  swapem play
  swapem play 7
  swapem play --difficulty hard
  swapem menu
  swapem serve --ssh :2222
  swapem scores 6`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.swapem/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Write debug logs to ~/.swapem/debug.log")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}

// setupLogging routes game and engine logs to a file; the TUI owns stdout.
func setupLogging(_ *cobra.Command, _ []string) error {
	if !flagDebug {
		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("cannot expand home directory: %w", err)
	}
	dir := filepath.Join(home, ".swapem")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}

	f, err := os.OpenFile(filepath.Join(dir, "debug.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open debug log: %w", err)
	}
	debugLog = f

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "swapem",
	})
	swapem.SetLogger(logger)
	logger.Debug("debug logging enabled")
	return nil
}
