package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/swapem/internal/config"
	"github.com/vovakirdan/swapem/internal/games/swapem"
	"github.com/vovakirdan/swapem/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available palettes",
	Long:  `Shows every registered board and the difficulty preset that uses it.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	cfg, err := config.LoadSwapem(flagConfig)
	if err != nil {
		fmt.Printf("Warning: %v\n\n", err)
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		if len(g.ID) > maxIDLen {
			maxIDLen = len(g.ID)
		}
	}

	fmt.Printf("  %-*s  %-22s  %s\n", maxIDLen, "ID", "Title", "Difficulty")
	fmt.Printf("  %-*s  %-22s  %s\n", maxIDLen, "--", "-----", "----------")

	for _, g := range games {
		difficulty := "-"
		if palette, ok := swapem.PaletteFromID(g.ID); ok {
			if preset, found := cfg.Difficulty.PresetFor(palette); found {
				difficulty = preset.Label()
			}
		}
		fmt.Printf("  %-*s  %-22s  %s\n", maxIDLen, g.ID, g.Title, difficulty)
	}

	fmt.Println()
	fmt.Println("Run 'swapem play <palette>' to play, e.g. 'swapem play 6'.")
}
