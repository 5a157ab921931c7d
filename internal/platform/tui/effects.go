package tui

import "github.com/vovakirdan/tui-flappy/internal/core"

// shakePattern is one out-and-back swing in cells, one entry per frame.
var shakePattern = []int{1, 2, 2, 1, 0, 0}

// shakeSwings is how many times the pattern repeats after a game over.
const shakeSwings = 3

// effects holds presentation-only animation state driven by game events.
// It never feeds back into the simulation.
type effects struct {
	shake int // Frames of shake left
}

// observe reacts to a game event.
func (e *effects) observe(ev core.Event) {
	switch ev.Kind {
	case core.EventGameOver:
		e.shake = len(shakePattern) * shakeSwings
	case core.EventStarted:
		e.shake = 0
	}
}

// step advances animations by one frame.
func (e *effects) step() {
	if e.shake > 0 {
		e.shake--
	}
}

// active reports whether any animation still needs frames.
func (e *effects) active() bool {
	return e.shake > 0
}

// offset returns the current horizontal shake in cells.
func (e *effects) offset() int {
	if e.shake <= 0 {
		return 0
	}
	return shakePattern[e.shake%len(shakePattern)]
}

// apply distorts a rendered frame.
func (e *effects) apply(s *core.Screen) {
	if dx := e.offset(); dx != 0 {
		s.Shift(dx)
	}
}
