package config

import "fmt"

// Palette bounds for a playable board.
const (
	MinPaletteSize = 5
	MaxPaletteSize = 8
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyExpert DifficultyPreset = "expert"
)

// Presets returns every preset from easiest to hardest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyExpert}
}

// Label returns the menu label for a preset.
func (p DifficultyPreset) Label() string {
	switch p {
	case DifficultyEasy:
		return "Easy"
	case DifficultyNormal:
		return "Normal"
	case DifficultyHard:
		return "Hard"
	case DifficultyExpert:
		return "Expert"
	default:
		return string(p)
	}
}

// ParsePreset converts a flag value into a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	for _, p := range Presets() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or expert)", s)
}

// PaletteFor returns the palette size configured for a preset.
func (d DifficultyConfig) PaletteFor(p DifficultyPreset) int {
	switch p {
	case DifficultyEasy:
		return d.Easy
	case DifficultyNormal:
		return d.Normal
	case DifficultyHard:
		return d.Hard
	case DifficultyExpert:
		return d.Expert
	default:
		return 0
	}
}

// PresetFor returns the first preset using the given palette size.
func (d DifficultyConfig) PresetFor(palette int) (DifficultyPreset, bool) {
	for _, p := range Presets() {
		if d.PaletteFor(p) == palette {
			return p, true
		}
	}
	return "", false
}
