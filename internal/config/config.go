// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// HexmatchConfig contains all configuration for the hex match game.
type HexmatchConfig struct {
	Board      HexmatchBoard     `yaml:"board"`
	Palette    []PaletteEntry    `yaml:"palette"`
	Bombs      HexmatchBombs     `yaml:"bombs"`
	Scoring    HexmatchScoring   `yaml:"scoring"`
	Animation  HexmatchAnimation `yaml:"animation"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// HexmatchBoard defines the grid dimensions.
type HexmatchBoard struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	PaletteSize int `yaml:"palette_size"` // How many palette entries are in play, 0 = all
}

// PaletteEntry is one tile colour. Hex is an RGB string ("#e74c3c");
// ANSI is the 256-colour fallback for terminals without true colour.
type PaletteEntry struct {
	Name string `yaml:"name"`
	Hex  string `yaml:"hex"`
	ANSI int    `yaml:"ansi"`
}

// HexmatchBombs defines bomb spawning.
type HexmatchBombs struct {
	Enabled       bool `yaml:"enabled"`
	ScoreInterval int  `yaml:"score_interval"` // A bomb spawns each time the score crosses a multiple
	CounterMin    int  `yaml:"counter_min"`
	CounterMax    int  `yaml:"counter_max"`
}

// HexmatchScoring defines points awarded.
type HexmatchScoring struct {
	PointsPerTile int `yaml:"points_per_tile"`
	CascadeBonus  int `yaml:"cascade_bonus"` // Extra points per tile for each cascade round after the first
}

// HexmatchAnimation defines presentation timings in ticks.
type HexmatchAnimation struct {
	FallTicks    int `yaml:"fall_ticks"`
	ExplodeTicks int `yaml:"explode_ticks"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "moves", or "none"
	MaxAt int    `yaml:"max_at"` // Score/moves at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	IntervalReduction int `yaml:"interval_reduction"` // Bomb interval reduction at max difficulty
	CounterReduction  int `yaml:"counter_reduction"`  // Bomb counter reduction at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// initialLevelForPreset returns the initial_level for a difficulty preset.
func initialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
