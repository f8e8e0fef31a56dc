package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	var cfg SwapemConfig
	if err := yaml.Unmarshal(GetDefaultYAML("swapem"), &cfg); err != nil {
		t.Fatalf("embedded YAML does not parse: %v", err)
	}
	if cfg != DefaultSwapemConfig() {
		t.Errorf("embedded config = %+v, want %+v", cfg, DefaultSwapemConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("embedded config is invalid: %v", err)
	}
}

func TestLoadSwapemCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "swapem.yaml")
	data := "grid:\n  palette_size: 8\npresentation:\n  step_delay_ms: 50\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadSwapem(path)
	if err != nil {
		t.Fatalf("LoadSwapem() failed: %v", err)
	}
	if cfg.Grid.PaletteSize != 8 || cfg.Presentation.StepDelayMS != 50 {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.Grid.Width != 8 || cfg.Difficulty.Expert != 8 {
		t.Errorf("missing keys should keep defaults: %+v", cfg)
	}
}

func TestLoadSwapemErrors(t *testing.T) {
	dir := t.TempDir()

	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "grid: [", "failed to parse"},
		{"palette out of range", "grid:\n  palette_size: 3\n", "invalid config"},
		{"zero width", "grid:\n  width: 0\n", "invalid config"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tc.name, " ", "_")+".yaml")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatalf("WriteFile failed: %v", err)
			}
			cfg, err := LoadSwapem(path)
			if err == nil || !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("LoadSwapem() error = %v, want %q", err, tc.wantErr)
			}
			if cfg != DefaultSwapemConfig() {
				t.Error("failed load should return defaults")
			}
		})
	}

	if _, err := LoadSwapem(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing custom path should be an error")
	}
}

func TestPresets(t *testing.T) {
	cfg := DefaultSwapemConfig()

	tests := []struct {
		preset  DifficultyPreset
		palette int
	}{
		{DifficultyEasy, 5},
		{DifficultyNormal, 6},
		{DifficultyHard, 7},
		{DifficultyExpert, 8},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			c := cfg
			ApplySwapemPreset(&c, tc.preset)
			if c.Grid.PaletteSize != tc.palette {
				t.Errorf("palette = %d, want %d", c.Grid.PaletteSize, tc.palette)
			}
			got, ok := cfg.Difficulty.PresetFor(tc.palette)
			if !ok || got != tc.preset {
				t.Errorf("PresetFor(%d) = %q, %v", tc.palette, got, ok)
			}
			parsed, err := ParsePreset(string(tc.preset))
			if err != nil || parsed != tc.preset {
				t.Errorf("ParsePreset(%q) = %q, %v", tc.preset, parsed, err)
			}
		})
	}

	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("unknown preset should fail to parse")
	}
}

func TestStepDelayTicks(t *testing.T) {
	cfg := DefaultSwapemConfig()
	cfg.Presentation.StepDelayMS = 500
	if got := cfg.StepDelayTicks(60); got != 30 {
		t.Errorf("StepDelayTicks(60) = %d, want 30", got)
	}
	cfg.Presentation.StepDelayMS = 0
	if got := cfg.StepDelayTicks(60); got != 1 {
		t.Errorf("StepDelayTicks with zero delay = %d, want 1", got)
	}
}
