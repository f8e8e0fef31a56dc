// Package config provides YAML-based game configuration loading and
// difficulty presets for Swap'em!.
package config

// SwapemConfig contains all configuration for the Swap'em! game.
type SwapemConfig struct {
	Grid         GridConfig         `yaml:"grid"`
	Presentation PresentationConfig `yaml:"presentation"`
	Difficulty   DifficultyConfig   `yaml:"difficulty"`
}

// GridConfig defines the board shape and default palette size.
type GridConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	PaletteSize int `yaml:"palette_size"`
}

// PresentationConfig defines how the terminal adapter paces a resolution.
type PresentationConfig struct {
	StepDelayMS  int `yaml:"step_delay_ms"` // Pause between destroy/spawn/settle snapshots
	HintTicks    int `yaml:"hint_ticks"`    // How long a hint stays highlighted
	MessageTicks int `yaml:"message_ticks"` // How long status messages stay visible
}

// DifficultyConfig maps each preset to a palette size.
type DifficultyConfig struct {
	Easy   int `yaml:"easy"`
	Normal int `yaml:"normal"`
	Hard   int `yaml:"hard"`
	Expert int `yaml:"expert"`
}
