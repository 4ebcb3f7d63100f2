package config

import (
	_ "embed"
)

//go:embed defaults/hexmatch.yaml
var defaultHexmatchYAML []byte

// DefaultHexmatchConfig returns the built-in configuration used when the
// embedded YAML cannot be read.
func DefaultHexmatchConfig() HexmatchConfig {
	return HexmatchConfig{
		Board: HexmatchBoard{
			Width:       8,
			Height:      9,
			PaletteSize: 5,
		},
		Palette: []PaletteEntry{
			{Name: "red", Hex: "#e74c3c", ANSI: 167},
			{Name: "green", Hex: "#2ecc71", ANSI: 42},
			{Name: "blue", Hex: "#3498db", ANSI: 68},
			{Name: "yellow", Hex: "#f1c40f", ANSI: 220},
			{Name: "purple", Hex: "#9b59b6", ANSI: 133},
			{Name: "cyan", Hex: "#1abc9c", ANSI: 37},
		},
		Bombs: HexmatchBombs{
			Enabled:       true,
			ScoreInterval: 1000,
			CounterMin:    3,
			CounterMax:    6,
		},
		Scoring: HexmatchScoring{
			PointsPerTile: 5,
		},
		Animation: HexmatchAnimation{
			FallTicks:    8,
			ExplodeTicks: 6,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 10000,
			},
			Scaling: ScalingConfig{
				IntervalReduction: 500,
				CounterReduction:  2,
			},
		},
	}
}
