package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int    // Screen width in characters
	ScreenH  int    // Screen height in characters
	TickRate int    // Simulation ticks per second (default 60)
	Seed     uint64 // RNG seed; the entire pipe layout is a function of it
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means the platform layer resolves env/clock
	}
}

// Phase identifies where a session is in its lifecycle.
type Phase int

const (
	PhaseReady   Phase = iota // waiting for the first flap
	PhasePlaying              // simulation running
	PhaseDying                // collided, bird tumbling to the ground
	PhaseDead                 // game over panel, waiting for restart
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "Ready"
	case PhasePlaying:
		return "Playing"
	case PhaseDying:
		return "Dying"
	case PhaseDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// GameState communicates session status to the platform after each tick.
type GameState struct {
	Score    int   // Current score
	Best     int   // Best score this session
	Phase    Phase // Current lifecycle phase
	GameOver bool  // True in PhaseDying and PhaseDead
	Paused   bool  // Whether the simulation is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Events carry fire-and-forget triggers for the audio sink.
type StepResult struct {
	State  GameState
	Events []Event
}
