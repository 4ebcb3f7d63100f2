package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 30)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score        int    // Current score
	Moves        int    // Successful moves so far
	BombsSpawned int    // Bombs placed since the last reset
	GameOver     bool   // Whether the game has ended
	Paused       bool   // Whether the game is paused
	EndReason    string // Why the game ended, empty while running
}

// Event is something that happened during a tick that the platform may
// want to react to (sound, logging, persistence).
type Event string

const (
	EventMatch     Event = "match"
	EventBombSpawn Event = "bomb_spawn"
	EventNoMatch   Event = "no_match"
	EventGameOver  Event = "game_over"
)

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
