package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// State is the game lifecycle state.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateGameOver
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Cause describes why a run ended.
type Cause int

const (
	CauseNone Cause = iota
	CauseCeiling
	CauseFloor
	CauseObstacle
)

// String returns a human-readable name for the cause.
func (c Cause) String() string {
	switch c {
	case CauseNone:
		return "none"
	case CauseCeiling:
		return "ceiling"
	case CauseFloor:
		return "floor"
	case CauseObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// boundaryCause checks the hitbox against the ceiling and the floor band.
func boundaryCause(hitbox core.Rect, world worldBounds) Cause {
	switch {
	case hitbox.Bottom() > world.height-world.floorTolerance:
		return CauseFloor
	case hitbox.Y < 0:
		return CauseCeiling
	default:
		return CauseNone
	}
}

// worldBounds is the play area the avatar must stay inside.
type worldBounds struct {
	width          float64
	height         float64
	floorTolerance float64
}
