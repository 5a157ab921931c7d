package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

// Options tunes how a session drives its game.
type Options struct {
	// ReleaseAfterTicks is how many frames a flap counts as held.
	// Terminals report key presses only, so the release is synthesized.
	// Zero uses the game's own setting, read at every flap.
	ReleaseAfterTicks int

	// Player names the session in the run log.
	Player string

	// Logger receives session events. Nil discards them.
	Logger *log.Logger
}

// releaseTimer is implemented by games that configure their flap hold.
type releaseTimer interface {
	ReleaseAfterTicks() int
}

// helpStyle renders the help row under the playfield.
var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	keys       *KeyMapper
	help       help.Model
	board      Board
	fx         *effects
	inputFrame core.InputFrame
	gameState  core.GameState
	held       int  // Frames left before the current flap is released
	ticking    bool // Whether a TickMsg is scheduled
	showBoard  bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// Observable games also feed the presentation effects and the run log.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, playfieldHeight(cfg.ScreenH)),
		store:      store,
		config:     cfg,
		opts:       opts,
		keys:       NewKeyMapper(),
		help:       h,
		board:      NewBoard(store, game.ID(), game.Title(), cfg.ScreenW, cfg.ScreenH),
		fx:         &effects{},
		inputFrame: core.NewInputFrame(),
		gameState:  game.State(),
		ticking:    true,
	}

	if obs, ok := game.(registry.Observable); ok {
		fx, logger := m.fx, opts.Logger
		obs.Subscribe(func(ev core.Event) {
			fx.observe(ev)
			if ev.Kind == core.EventGameOver {
				recordRun(store, logger, game.ID(), opts.Player, ev)
			}
		})
	}

	return m
}

// playfieldHeight leaves the last row for the help bar.
func playfieldHeight(h int) int {
	return max(h-1, 1)
}

// recordRun appends a finished run to the log. Failures are logged only.
func recordRun(store *storage.Store, logger *log.Logger, gameID, player string, ev core.Event) {
	logger.Info("run finished",
		"player", player,
		"score", ev.Score,
		"ticks", ev.Tick,
		"cause", ev.Reason,
	)
	if store == nil {
		return
	}

	_, err := store.RecordRun(storage.RunEntry{
		GameID: gameID,
		Player: player,
		Score:  ev.Score,
		Ticks:  ev.Tick,
		Cause:  ev.Reason,
	})
	if err != nil {
		logger.Warn("could not record run", "error", err)
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.showBoard {
			return m.handleBoardKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Keys().Capture) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg, m.gameState)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionBack:
		// Open the run board; a running game is paused behind it
		m.showBoard = true
		m.board.Refresh()
		if !m.gameState.Running() {
			return m, nil
		}
		action = core.ActionPause
	case core.ActionJump:
		m.held = m.holdTicks()
	}

	m.inputFrame.Set(action)
	return m.wake()
}

// holdTicks returns how many frames the next flap is held.
func (m Model) holdTicks() int {
	n := m.opts.ReleaseAfterTicks
	if n <= 0 {
		if rt, ok := m.game.(releaseTimer); ok {
			n = rt.ReleaseAfterTicks()
		}
	}
	return max(n, 1)
}

// handleBoardKey processes keyboard input while the run board is open.
func (m Model) handleBoardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.board.Keys()
	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, keys.Close):
		m.showBoard = false
		return m, nil
	}

	var cmd tea.Cmd
	m.board, cmd = m.board.Update(msg)
	return m, cmd
}

// wake schedules a tick if the loop is idle, so queued input gets applied.
func (m Model) wake() (tea.Model, tea.Cmd) {
	if m.ticking {
		return m, nil
	}
	m.ticking = true
	return m, tickCmd(m.config.TickRate)
}

// handleResize processes window resize events.
// World coordinates are fixed, so the game is only rescaled, never reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playfieldHeight(msg.Height))
	m.board.Resize(msg.Width, msg.Height)
	m.help.Width = msg.Width

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.held > 0 {
		m.held--
		if m.held == 0 {
			m.inputFrame.Set(core.ActionReleaseJump)
		}
	}

	// Run game simulation
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Clear input for next frame
	m.inputFrame.Clear()
	m.fx.step()

	// Keep ticking while something moves; a key press wakes the loop again
	if m.gameState.Running() || m.fx.active() || m.held > 0 {
		return m, tickCmd(m.config.TickRate)
	}
	m.ticking = false
	return m, nil
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}

	// Create screenshots directory
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Ticking reports whether a tick is scheduled.
func (m Model) Ticking() bool {
	return m.ticking
}

// BoardOpen reports whether the run board is shown.
func (m Model) BoardOpen() bool {
	return m.showBoard
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.showBoard {
		return m.board.View()
	}

	// Render game to screen buffer
	m.game.Render(m.screen)
	m.fx.apply(m.screen)

	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys.Keys()))
}

// Run starts the Bubble Tea program with the given model.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
