package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// Rand is the source of randomness games draw from.
// *math/rand.Rand satisfies it; tests substitute scripted sources.
type Rand interface {
	// Intn returns a value in [0, n). n must be positive.
	Intn(n int) int
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score, or the final score while GameOver is set
	GameOver bool // Whether the game is waiting for a resume after a loss
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventAte      EventKind = iota // A scoring collectible was eaten
	EventSlowed                    // The special collectible was eaten
	EventHit                       // An obstacle was hit
	EventSpawned                   // An extra collectible entered the field
	EventGameOver                  // The run ended
	EventResumed                   // Play resumed after game over
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventAte:
		return "ate"
	case EventSlowed:
		return "slowed"
	case EventHit:
		return "hit"
	case EventSpawned:
		return "spawned"
	case EventGameOver:
		return "game_over"
	case EventResumed:
		return "resumed"
	default:
		return "unknown"
	}
}

// Event is a single occurrence reported by a tick.
type Event struct {
	Kind   EventKind
	Pos    Position // Where it happened, if meaningful
	Delta  int      // Score change caused by the event
	Detail string   // Free-form qualifier (category, reason)
}
