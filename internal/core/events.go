package core

// EventKind identifies a game state transition published to observers.
type EventKind int

const (
	EventStarted  EventKind = iota // Idle/GameOver -> Running
	EventScored                    // An obstacle was passed
	EventPaused                    // Running -> Paused
	EventResumed                   // Paused -> Running
	EventGameOver                  // Running -> GameOver
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventScored:
		return "scored"
	case EventPaused:
		return "paused"
	case EventResumed:
		return "resumed"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is a state transition observed during a tick or a command.
type Event struct {
	Kind   EventKind
	Tick   uint64 // Simulation tick at which the event happened
	Score  int    // Score after the event
	Slot   int    // Obstacle slot for EventScored, -1 otherwise
	Reason string // Cause of EventGameOver
}
