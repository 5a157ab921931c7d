// Package registry maps game IDs to constructors. A game package registers
// itself from init, and the front ends (local play, SSH sessions) build a
// fresh instance per run through Create.
package registry

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Game is what a front end drives: one Step per scheduler tick, one Render
// per frame. Implementations own their simulation and never touch the
// terminal.
type Game interface {
	// ID is the registry key, e.g. "flappy".
	ID() string

	// Title is shown in panels and the run board.
	Title() string

	// Reset rebuilds the world for the given screen and seed and leaves
	// the game idle.
	Reset(cfg core.RuntimeConfig)

	// Step applies the frame's actions and advances one tick.
	Step(in core.InputFrame) core.StepResult

	Render(dst *core.Screen)

	State() core.GameState
}

// Observable is implemented by games that publish state transitions.
// Listeners run on the goroutine that drives the game, after the tick or
// command that produced the event has completed.
type Observable interface {
	Subscribe(fn func(core.Event)) (unsubscribe func())
}

// Factory builds a new, independent game instance.
type Factory func() Game

var (
	mu        sync.RWMutex
	factories = make(map[string]Factory)
)

// Register adds a factory under id. It panics on a duplicate id, which can
// only happen when two packages claim the same name at init.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, dup := factories[id]; dup {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
}

// IDs returns the registered game IDs in sorted order.
func IDs() []string {
	mu.RLock()
	defer mu.RUnlock()

	ids := make([]string, 0, len(factories))
	for id := range factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Create builds a new instance of the game registered under id.
func Create(id string) (Game, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, UnknownGameError(id)
	}
	return f(), nil
}

// Exists reports whether id is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// UnknownGameError describes a missing id together with the registered ones.
func UnknownGameError(id string) error {
	known := IDs()
	if len(known) == 0 {
		return fmt.Errorf("registry: unknown game %q (none registered)", id)
	}
	return fmt.Errorf("registry: unknown game %q (registered: %s)", id, strings.Join(known, ", "))
}
