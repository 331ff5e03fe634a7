package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The grid is fixed for the lifetime of a game; the screen may be resized.
type RuntimeConfig struct {
	ScreenW    int   // Screen width in characters
	ScreenH    int   // Screen height in characters
	GridW      int   // Playfield width in cells
	GridH      int   // Playfield height in cells
	TickRate   int   // Simulation ticks per second (default 12)
	FoodPoints int   // Score awarded per food eaten
	Seed       int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
// The grid matches an 800x600 window split into 20px cells.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    36,
		GridW:      40,
		GridH:      30,
		TickRate:   12,
		FoodPoints: 10,
		Seed:       0, // 0 means use current time in platform layer
	}
}

// GameState summarizes the game for the platform layer.
type GameState struct {
	Score     int  // Current score
	HighScore int  // Best score of this run
	GameOver  bool // Whether the last game has ended
	Quit      bool // Whether the player asked to terminate
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
}
