package core

// RuntimeConfig contains configuration passed to programs at initialization.
// Programs use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Frames per second requested from the host (default 60)
	Seed     int64 // RNG seed for deterministic simulation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a program as seen by the platform.
type GameState struct {
	Score    int  // Current (or final) score
	GameOver bool // Whether the last session has ended and not been restarted
	Paused   bool // Whether the program is paused
	Active   bool // Whether a session is running (false while idle)
}

// StepResult is returned by Step() after each frame.
type StepResult struct {
	State GameState
}
