// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
//
// A Game is a self-contained simulation context: it owns the avatar, the
// obstacle pool, the scroll layer and the score, and it is driven by exactly
// one goroutine calling Step or Tick at a fixed cadence. Other goroutines may
// only Submit commands or StageConfig.
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

type listener struct {
	id int
	fn func(core.Event)
}

// Game implements the Flappy Bird game logic.
type Game struct {
	cfg     config.FlappyConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	world   worldBounds

	state State
	score float64 // Accumulated increments, published truncated
	tick  uint64  // Simulation ticks since the last restart
	cause Cause

	avatar Avatar
	pool   *ObstaclePool
	scroll *ScrollLayer

	queue   CommandQueue
	drained []Command

	listeners []listener
	nextID    int
	pending   []core.Event
	flushing  bool
	reloads   int // Number of staged configs applied
}

// New creates a new Flappy Bird game instance with the default configuration.
func New() *Game {
	g := &Game{}
	g.configure(config.DefaultFlappyConfig(), 0)
	return g
}

// NewWithConfig creates an idle game with an explicit configuration and seed.
func NewWithConfig(cfg config.FlappyConfig, seed int64) *Game {
	g := &Game{}
	g.configure(cfg, seed)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Reset reloads the configuration and returns the game to Idle.
// Buffered commands and staged configs are discarded.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadFlappy(configPath)
	if err != nil {
		cfg = config.DefaultFlappyConfig()
	}

	g.runtime = runtime
	g.queue.drain(nil)
	g.queue.takeStaged()
	g.configure(cfg, runtime.Seed)
}

// configure rebuilds the whole simulation from cfg and enters Idle.
func (g *Game) configure(cfg config.FlappyConfig, seed int64) {
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(seed))
	g.rebuild()
	g.state = StateIdle
	g.score = 0
	g.tick = 0
	g.cause = CauseNone
}

// rebuild recreates the avatar, pool and scroll layer from g.cfg.
func (g *Game) rebuild() {
	g.world = worldBounds{
		width:          g.cfg.World.Width,
		height:         g.cfg.World.Height,
		floorTolerance: g.cfg.World.FloorTolerance,
	}
	g.avatar = newAvatar(g.cfg.Player, g.cfg.Physics)
	g.pool = NewObstaclePool(g.cfg.Obstacles, g.cfg.World.Width, g.rng)
	g.scroll = NewScrollLayer(g.cfg.Scroll, g.cfg.World.Width)
}

// Config returns the configuration of the current run.
func (g *Game) Config() config.FlappyConfig {
	return g.cfg
}

// ReleaseAfterTicks returns the flap hold of the active configuration.
// A staged config changes it at the next restart.
func (g *Game) ReleaseAfterTicks() int {
	return g.cfg.Controls.ReleaseAfterTicks
}

// Submit queues a command for the next tick. Safe for concurrent use.
func (g *Game) Submit(c Command) {
	g.queue.Push(c)
}

// StageConfig queues a configuration that takes effect on the next restart.
// Safe for concurrent use.
func (g *Game) StageConfig(cfg config.FlappyConfig) {
	g.queue.stage(cfg)
}

// Subscribe registers fn for state transition events.
// Events are delivered after the tick or command that produced them.
func (g *Game) Subscribe(fn func(core.Event)) (unsubscribe func()) {
	id := g.nextID
	g.nextID++
	g.listeners = append(g.listeners, listener{id: id, fn: fn})

	return func() {
		for i, l := range g.listeners {
			if l.id == id {
				g.listeners = append(g.listeners[:i:i], g.listeners[i+1:]...)
				return
			}
		}
	}
}

// Jump flaps the bird. Ignored unless running and not already jumping.
func (g *Game) Jump() {
	g.apply(CmdJump)
	g.flush()
}

// ReleaseJump ends the current jump so the next Jump is accepted.
func (g *Game) ReleaseJump() {
	g.apply(CmdReleaseJump)
	g.flush()
}

// Pause freezes a running game.
func (g *Game) Pause() {
	g.apply(CmdPause)
	g.flush()
}

// Resume continues a paused game exactly where it stopped.
func (g *Game) Resume() {
	g.apply(CmdResume)
	g.flush()
}

// Restart starts a new run from Idle or GameOver.
func (g *Game) Restart() {
	g.apply(CmdRestart)
	g.flush()
}

// apply performs a single command. Commands invalid in the current state are ignored.
func (g *Game) apply(c Command) {
	switch c {
	case CmdJump:
		if g.state == StateRunning {
			g.avatar.Jump()
		}
	case CmdReleaseJump:
		g.avatar.ReleaseJump()
	case CmdPause:
		if g.state == StateRunning {
			g.state = StatePaused
			g.emit(core.EventPaused, -1)
		}
	case CmdResume:
		if g.state == StatePaused {
			g.state = StateRunning
			g.emit(core.EventResumed, -1)
		}
	case CmdRestart:
		if g.state == StateIdle || g.state == StateGameOver {
			g.restart()
		}
	}
}

// restart resets the run and enters Running.
func (g *Game) restart() {
	if cfg, ok := g.queue.takeStaged(); ok {
		g.cfg = cfg
		g.rebuild()
		g.reloads++
	} else {
		g.avatar = newAvatar(g.cfg.Player, g.cfg.Physics)
		g.pool.Reset()
		g.scroll.Reset()
	}

	g.score = 0
	g.tick = 0
	g.cause = CauseNone
	g.state = StateRunning
	g.emit(core.EventStarted, -1)
}

// Step applies the frame's actions and advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Ordered() {
		if c, ok := commandFor(a); ok {
			g.Submit(c)
		}
	}

	advanced := g.Tick()
	return core.StepResult{State: g.State(), Advanced: advanced}
}

// commandFor maps a platform action to a game command.
func commandFor(a core.Action) (Command, bool) {
	switch a {
	case core.ActionJump:
		return CmdJump, true
	case core.ActionReleaseJump:
		return CmdReleaseJump, true
	case core.ActionPause:
		return CmdPause, true
	case core.ActionResume:
		return CmdResume, true
	case core.ActionRestart:
		return CmdRestart, true
	default:
		return 0, false
	}
}

// Tick drains queued commands and, if running, advances the simulation by
// one step. It reports whether the simulation advanced.
func (g *Game) Tick() bool {
	g.drained = g.queue.drain(g.drained[:0])
	for _, c := range g.drained {
		g.apply(c)
	}

	if g.state != StateRunning {
		g.flush()
		return false
	}

	g.tick++
	g.step()
	g.flush()
	return true
}

// step runs physics, collision, obstacles and scrolling for one tick.
// A collision ends the tick before any later update.
func (g *Game) step() {
	g.avatar.ApplyGravity()
	g.avatar.Integrate()

	hitbox := g.avatar.Hitbox()
	if cause := boundaryCause(hitbox, g.world); cause != CauseNone {
		g.end(cause)
		return
	}

	res := g.pool.Update(hitbox, g.avatar.X)
	for _, id := range res.Scored {
		g.score += g.cfg.Scoring.Increment
		g.emit(core.EventScored, int(id))
	}
	if res.Collided {
		g.end(CauseObstacle)
		return
	}

	g.scroll.Update()
}

// end moves the game to GameOver, freezing the score.
func (g *Game) end(cause Cause) {
	g.state = StateGameOver
	g.cause = cause
	g.emit(core.EventGameOver, -1)
}

func (g *Game) emit(kind core.EventKind, slot int) {
	ev := core.Event{
		Kind:  kind,
		Tick:  g.tick,
		Score: g.Score(),
		Slot:  slot,
	}
	if kind == core.EventGameOver {
		ev.Reason = g.cause.String()
	}
	g.pending = append(g.pending, ev)
}

// flush delivers pending events. Events raised by listeners are delivered
// by the outermost flush.
func (g *Game) flush() {
	if g.flushing {
		return
	}
	g.flushing = true
	defer func() { g.flushing = false }()

	for len(g.pending) > 0 {
		ev := g.pending[0]
		g.pending = g.pending[1:]
		for _, l := range append([]listener(nil), g.listeners...) {
			l.fn(ev)
		}
	}
	g.pending = g.pending[:0]
}

// Score returns the score truncated to an integer.
func (g *Game) Score() int {
	return int(g.score)
}

// Status returns the lifecycle state.
func (g *Game) Status() State {
	return g.state
}

// Cause returns why the last run ended, or CauseNone.
func (g *Game) Cause() Cause {
	return g.cause
}

// Reloads returns how many staged configurations have been applied.
func (g *Game) Reloads() int {
	return g.reloads
}

// Ticks returns the number of simulation ticks in the current run.
func (g *Game) Ticks() uint64 {
	return g.tick
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.Score(),
		Idle:     g.state == StateIdle,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}

// Register the game with the registry
func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}
