package config

import (
	_ "embed"
)

//go:embed defaults/swapem.yaml
var defaultSwapemYAML []byte

// DefaultSwapemConfig returns the default Swap'em! configuration.
func DefaultSwapemConfig() SwapemConfig {
	return SwapemConfig{
		Grid: GridConfig{
			Width:       8,
			Height:      8,
			PaletteSize: 6,
		},
		Presentation: PresentationConfig{
			StepDelayMS:  180,
			HintTicks:    90, // 1.5 seconds at 60fps
			MessageTicks: 60,
		},
		Difficulty: DifficultyConfig{
			Easy:   5,
			Normal: 6,
			Hard:   7,
			Expert: 8,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "swapem":
		return defaultSwapemYAML
	default:
		return nil
	}
}
