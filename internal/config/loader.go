package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadSwapem loads Swap'em! configuration.
// Search order: customPath -> ~/.swapem/configs/swapem.yaml -> ./configs/swapem.yaml -> embedded default
func LoadSwapem(customPath string) (SwapemConfig, error) {
	// Missing keys keep their defaults.
	cfg := DefaultSwapemConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultSwapemConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DefaultSwapemConfig(), fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{userConfigPath("swapem.yaml"), filepath.Join("configs", "swapem.yaml")}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if loaded, ok := tryLoad(path); ok {
			return loaded, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultSwapemYAML, &cfg); err != nil {
		return DefaultSwapemConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// tryLoad reads an optional config file; unreadable or invalid files are skipped.
func tryLoad(path string) (SwapemConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SwapemConfig{}, false
	}
	cfg := DefaultSwapemConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return SwapemConfig{}, false
	}
	if err := cfg.Validate(); err != nil {
		return SwapemConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".swapem", "configs", filename)
}

// Validate rejects configurations the engine cannot run.
func (c SwapemConfig) Validate() error {
	if c.Grid.Width <= 0 || c.Grid.Height <= 0 {
		return fmt.Errorf("grid dimensions must be positive, got %dx%d", c.Grid.Width, c.Grid.Height)
	}
	if err := validPalette("grid.palette_size", c.Grid.PaletteSize); err != nil {
		return err
	}
	for _, p := range Presets() {
		if err := validPalette("difficulty."+string(p), c.Difficulty.PaletteFor(p)); err != nil {
			return err
		}
	}
	if c.Presentation.StepDelayMS < 0 {
		return fmt.Errorf("presentation.step_delay_ms must not be negative")
	}
	return nil
}

func validPalette(field string, n int) error {
	if n < MinPaletteSize || n > MaxPaletteSize {
		return fmt.Errorf("%s must be in [%d,%d], got %d", field, MinPaletteSize, MaxPaletteSize, n)
	}
	return nil
}

// ApplySwapemPreset sets the palette size from a difficulty preset.
func ApplySwapemPreset(cfg *SwapemConfig, preset DifficultyPreset) {
	if n := cfg.Difficulty.PaletteFor(preset); n != 0 {
		cfg.Grid.PaletteSize = n
	}
}

// StepDelayTicks converts the configured step delay to simulation ticks.
// The result is at least 1 so every snapshot is shown for a frame.
func (c SwapemConfig) StepDelayTicks(tickRate int) int {
	ticks := c.Presentation.StepDelayMS * tickRate / 1000
	if ticks < 1 {
		return 1
	}
	return ticks
}
