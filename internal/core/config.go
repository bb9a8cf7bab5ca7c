package core

import "time"

// DefaultFrameRate is the render cadence used when none is configured.
const DefaultFrameRate = 60

// RuntimeConfig is what the platform hands a game on Reset: the terminal
// size, how often it will be stepped and rendered, and the run seed.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	FrameRate int   // Frames stepped and rendered per second
	Seed      int64 // RNG seed, 0 lets the platform pick one
}

// DefaultConfig returns an 80x24 runtime at the default frame rate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		FrameRate: DefaultFrameRate,
	}
}

// FrameInterval is the wall-clock length of one frame.
func (c RuntimeConfig) FrameInterval() time.Duration {
	rate := c.FrameRate
	if rate <= 0 {
		rate = DefaultFrameRate
	}
	return time.Second / time.Duration(rate)
}

// GameState is the outcome-level view of a run the platform reacts to.
type GameState struct {
	Score    int
	GameOver bool // The run has been finalized
	Won      bool // Meaningful only when GameOver
	Paused   bool
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State GameState
}
