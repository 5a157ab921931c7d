package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

var flagWatch bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start playing Flappy Bird.

Controls:
  Space/Up   - Start / flap
  Esc/P      - Pause / resume
  R          - Restart (after game over)
  Tab        - Runs of this session
  Ctrl+S     - Save a text screenshot
  Q/Ctrl+C   - Quit

With --watch, edits to the config file are picked up while playing and
take effect on the next restart.

Examples:
  flappy play
  flappy play --seed 42
  flappy play --config ./my-flappy.yaml --watch
  flappy play --log-file flappy.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the config file on change (applied on restart)")
}

func runPlay(_ *cobra.Command, _ []string) error {
	// The TUI owns the terminal, so logs only go to --log-file
	logger, closeLog, err := newLogger("flappy", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	_, source, err := config.LoadFlappyWithSource(flagConfig)
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", source)

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	flappy.SetConfigPath(flagConfig)
	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if flagWatch {
		stop := watchConfig(game, source, logger)
		defer stop()
	}

	store, err := storage.Open()
	if err != nil {
		logger.Warn("could not open run log", "error", err)
		// Continue without storage - game still works
		store = nil
	} else {
		defer store.Close()
	}

	// The flap hold comes from the game's active config, so reloads reach it
	err = tui.Run(game, store, cfg, tui.Options{
		Player: os.Getenv("USER"),
		Logger: logger,
	})
	if err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// configStager accepts configurations to apply on the next restart.
type configStager interface {
	StageConfig(cfg config.FlappyConfig)
}

// watchConfig stages every valid change of the config file at source.
// It returns a function that stops watching.
func watchConfig(game registry.Game, source string, logger *log.Logger) func() {
	stager, ok := game.(configStager)
	if !ok {
		logger.Warn("game does not support config reload", "game", game.ID())
		return func() {}
	}
	if source == config.SourceEmbedded {
		logger.Warn("no config file to watch, using embedded defaults")
		return func() {}
	}

	w, err := config.WatchFlappy(source)
	if err != nil {
		logger.Warn("could not watch config", "error", err)
		return func() {}
	}
	logger.Info("watching config", "path", w.Path())

	go func() {
		for {
			select {
			case cfg, ok := <-w.Changes:
				if !ok {
					return
				}
				stager.StageConfig(cfg)
				logger.Info("config staged for next restart", "path", w.Path())
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				logger.Warn("config reload failed", "error", err)
			}
		}
	}()

	return func() { w.Close() }
}
