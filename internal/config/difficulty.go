package config

import "math"

// DifficultyManager derives bomb parameters from the player's progress.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0) based on score/moves.
func (d *DifficultyManager) Level(score, moves int) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := float64(d.cfg.Progression.MaxAt)
	if maxAt <= 0 {
		maxAt = 1
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "score":
		progress = float64(score) / maxAt
	case "moves":
		progress = float64(moves) / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// BombInterval returns the score distance between bomb spawns.
// It never drops below a quarter of the base interval.
func (d *DifficultyManager) BombInterval(base, score, moves int) int {
	level := d.Level(score, moves)
	result := base - int(level*float64(d.cfg.Scaling.IntervalReduction))
	if floor := base / 4; result < floor {
		result = floor
	}
	if result < 1 {
		result = 1
	}
	return result
}

// BombCounterMax returns the upper bound for new bomb counters, never
// below lo.
func (d *DifficultyManager) BombCounterMax(lo, hi, score, moves int) int {
	level := d.Level(score, moves)
	result := hi - int(level*float64(d.cfg.Scaling.CounterReduction))
	if result < lo {
		result = lo
	}
	return result
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
