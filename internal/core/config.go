package core

// RuntimeConfig contains configuration passed to a session at creation.
type RuntimeConfig struct {
	TickRate        int   // Simulation ticks per second
	Seed            int64 // RNG seed for deterministic gameplay
	FoodMaxAttempts int   // Random samples tried before food placement falls back to a scan
}

// DefaultTickRate is the fixed simulation cadence.
const DefaultTickRate = 7

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate:        DefaultTickRate,
		Seed:            0, // 0 means use current time in platform layer
		FoodMaxAttempts: 1024,
	}
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
}
