package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/swapem/internal/config"
	"github.com/vovakirdan/swapem/internal/games/swapem"
	"github.com/vovakirdan/swapem/internal/registry"
	"github.com/vovakirdan/swapem/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [palette]",
	Short: "Show high scores",
	Long: `Display the top 10 scores and the record for a palette.
Without an argument, shows a summary for every palette.

Examples:
  swapem scores
  swapem scores 6
  swapem scores 6 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the leaderboard and record for the palette")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		if flagClearScores {
			fmt.Fprintln(os.Stderr, "Error: --clear needs a palette")
			os.Exit(1)
		}
		if err := printSummary(store); err != nil {
			fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
			os.Exit(1)
		}
		return
	}

	gameCfg, _ := config.LoadSwapem(flagConfig)
	gameID, err := resolveGameID(args, gameCfg, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'swapem list' to see available games.")
		os.Exit(1)
	}
	palette, _ := swapem.PaletteFromID(gameID)

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if err := store.ResetHighScore(palette); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared scores for %d colors.\n", palette)
		return
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'swapem play %d' to set the first high score!\n", palette)
		return
	}

	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Println()
	if record, err := store.LoadHighScore(palette); err == nil {
		fmt.Printf("Record: %d\n", record)
	}
}

// printSummary prints one line per palette with its record and play stats.
func printSummary(store *storage.Store) error {
	records, err := store.HighScores()
	if err != nil {
		return err
	}
	stats, err := store.GetAllGamesStats()
	if err != nil {
		return err
	}

	best := make(map[int]int, len(records))
	for _, r := range records {
		best[r.PaletteSize] = r.Score
	}

	fmt.Println("Swap'em! records")
	fmt.Println()
	fmt.Printf("  %-7s  %-8s  %-6s  %-8s  %s\n", "Colors", "Record", "Games", "Average", "Last played")
	fmt.Printf("  %-7s  %-8s  %-6s  %-8s  %s\n", "------", "------", "-----", "-------", "-----------")

	for p := config.MinPaletteSize; p <= config.MaxPaletteSize; p++ {
		games, avg, last := 0, 0.0, "-"
		if s, ok := stats[swapem.GameID(p)]; ok {
			games = s.GamesCount
			avg = s.AvgScore
			if !s.LastPlayed.IsZero() {
				last = s.LastPlayed.Format("2006-01-02 15:04")
			}
		}
		fmt.Printf("  %-7d  %-8d  %-6d  %-8.0f  %s\n", p, best[p], games, avg, last)
	}
	return nil
}
