package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.arcade/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default.
// Missing keys keep their default values. A custom path that cannot be read,
// parsed or validated is an error; the implicit locations are skipped instead.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseBreakout(data)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("failed to load config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	candidates := []string{"configs/breakout.yaml"}
	if userCfgPath := userConfigPath("breakout.yaml"); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}
	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseBreakout(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parseBreakout(defaultBreakoutYAML)
	if err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseBreakout decodes YAML over the defaults and validates the result.
func parseBreakout(data []byte) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BreakoutConfig{}, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return BreakoutConfig{}, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// LoadBreakoutPreset loads the config, applies a difficulty preset and
// validates the result. Presets can push a small custom canvas out of range.
func LoadBreakoutPreset(customPath string, preset DifficultyPreset) (BreakoutConfig, error) {
	cfg, err := LoadBreakout(customPath)
	if err != nil {
		return BreakoutConfig{}, err
	}
	if preset == "" {
		return cfg, nil
	}

	ApplyBreakoutPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return BreakoutConfig{}, fmt.Errorf("difficulty %s: %w", preset, err)
	}
	return cfg, nil
}

// ApplyBreakoutPreset adjusts lives, paddle width and serve speed.
// DifficultyNormal and the empty preset leave the config unchanged.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives = 5
		cfg.Paddle.Width = 100
		cfg.Ball.Speed = 1.5
	case DifficultyHard:
		cfg.Gameplay.Lives = 2
		cfg.Paddle.Width = 55
		cfg.Ball.Speed = 3
	}
}
