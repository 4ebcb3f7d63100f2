package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadHexmatch loads hex match configuration.
// Search order: customPath -> ~/.hexarcade/configs/hexmatch.yaml -> ./configs/hexmatch.yaml -> embedded default
// Files are overlaid on the defaults, so a partial file only changes the keys it names.
// A custom path that cannot be read, parsed or validated is an error; the
// other locations are skipped when broken.
func LoadHexmatch(customPath string) (HexmatchConfig, error) {
	if customPath != "" {
		cfg, err := parseHexmatchFile(customPath)
		if err != nil {
			return DefaultHexmatchConfig(), err
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("hexmatch.yaml"), filepath.Join("configs", "hexmatch.yaml")} {
		if path == "" {
			continue
		}
		if cfg, err := parseHexmatchFile(path); err == nil {
			return cfg, nil
		}
	}

	cfg, err := ParseHexmatch(defaultHexmatchYAML)
	if err != nil {
		return DefaultHexmatchConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseHexmatchFile(path string) (HexmatchConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return HexmatchConfig{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	cfg, err := ParseHexmatch(data)
	if err != nil {
		return HexmatchConfig{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseHexmatch decodes YAML over the defaults and validates the result.
func ParseHexmatch(data []byte) (HexmatchConfig, error) {
	cfg := DefaultHexmatchConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".hexarcade", "configs", filename)
}

// ApplyHexmatchPreset modifies the config based on a difficulty preset.
// Fewer colours make matches more frequent, so easy plays with four and
// hard with six.
func ApplyHexmatchPreset(cfg *HexmatchConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = initialLevelForPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Board.PaletteSize = 4
		cfg.Bombs.CounterMax = cfg.Bombs.CounterMax + 1
	case DifficultyNormal:
		cfg.Board.PaletteSize = 5
	case DifficultyHard:
		cfg.Board.PaletteSize = 6
	}
	if cfg.Board.PaletteSize > len(cfg.Palette) {
		cfg.Board.PaletteSize = len(cfg.Palette)
	}
}
