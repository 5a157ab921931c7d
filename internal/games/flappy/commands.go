package flappy

import (
	"sync"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

// Command is an input command accepted by the game.
type Command int

const (
	CmdJump Command = iota
	CmdReleaseJump
	CmdPause
	CmdResume
	CmdRestart
)

// String returns a human-readable name for the command.
func (c Command) String() string {
	switch c {
	case CmdJump:
		return "jump"
	case CmdReleaseJump:
		return "release_jump"
	case CmdPause:
		return "pause"
	case CmdResume:
		return "resume"
	case CmdRestart:
		return "restart"
	default:
		return "unknown"
	}
}

// CommandQueue buffers commands from any goroutine until the game drains
// them at the start of its next tick.
type CommandQueue struct {
	mu       sync.Mutex
	commands []Command
	staged   *config.FlappyConfig
}

// Push appends a command.
func (q *CommandQueue) Push(c Command) {
	q.mu.Lock()
	q.commands = append(q.commands, c)
	q.mu.Unlock()
}

// Len returns the number of buffered commands.
func (q *CommandQueue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.commands)
}

// drain moves buffered commands into dst, in push order.
func (q *CommandQueue) drain(dst []Command) []Command {
	q.mu.Lock()
	dst = append(dst, q.commands...)
	q.commands = q.commands[:0]
	q.mu.Unlock()
	return dst
}

// stage stores a configuration to apply on the next restart.
func (q *CommandQueue) stage(cfg config.FlappyConfig) {
	q.mu.Lock()
	q.staged = &cfg
	q.mu.Unlock()
}

// takeStaged returns and clears the staged configuration.
func (q *CommandQueue) takeStaged() (config.FlappyConfig, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.staged == nil {
		return config.FlappyConfig{}, false
	}
	cfg := *q.staged
	q.staged = nil
	return cfg, true
}
