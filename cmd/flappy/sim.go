package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

var (
	flagSimTicks  int
	flagFlapEvery int
	flagHold      int
	flagFormat    string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run the simulation without a display",
	Long: `Run one game headless with a fixed flap cadence and print the result.

The bird flaps every --flap-every ticks and releases --hold ticks later.
The run stops at game over or after --ticks ticks. With the same seed and
flags the result is always identical.

Examples:
  flappy sim --seed 42
  flappy sim --seed 42 --flap-every 18 --ticks 10000
  flappy sim --seed 7 --format yaml --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Maximum ticks to simulate")
	simCmd.Flags().IntVar(&flagFlapEvery, "flap-every", 24, "Flap every N ticks (0 = never)")
	simCmd.Flags().IntVar(&flagHold, "hold", 0, "Ticks a flap is held (0 = config controls.release_after_ticks)")
	simCmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text, yaml")
}

// simResult is the printed outcome of a headless run.
type simResult struct {
	Seed   int64   `yaml:"seed"`
	Source string  `yaml:"config"`
	State  string  `yaml:"state"`
	Cause  string  `yaml:"cause"`
	Score  int     `yaml:"score"`
	Ticks  uint64  `yaml:"ticks"`
	Flaps  int     `yaml:"flaps"`
	Y      float64 `yaml:"y"`
	Passed []int   `yaml:"passed"`
}

// flapScript is a fixed flap cadence.
type flapScript struct {
	every int
	hold  int
}

// commands returns what to submit before tick i.
func (s flapScript) commands(i int) []flappy.Command {
	if s.every <= 0 {
		return nil
	}
	var cmds []flappy.Command
	if i >= s.hold && (i-s.hold)%s.every == 0 {
		cmds = append(cmds, flappy.CmdReleaseJump)
	}
	if i%s.every == 0 {
		cmds = append(cmds, flappy.CmdJump)
	}
	return cmds
}

// simulate plays one run to game over or maxTicks.
func simulate(game *flappy.Game, script flapScript, maxTicks int) (flaps int) {
	game.Restart()
	for i := 0; i < maxTicks && game.Status() == flappy.StateRunning; i++ {
		for _, c := range script.commands(i) {
			if c == flappy.CmdJump {
				flaps++
			}
			game.Submit(c)
		}
		game.Tick()
	}
	return flaps
}

func runSim(cmd *cobra.Command, _ []string) error {
	logger, closeLog, err := newLogger("flappy-sim", os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	if flagFormat != "text" && flagFormat != "yaml" {
		return fmt.Errorf("unknown format %q", flagFormat)
	}

	gameCfg, source, err := config.LoadFlappyWithSource(flagConfig)
	if err != nil {
		return err
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	hold := flagHold
	if hold <= 0 {
		hold = max(gameCfg.Controls.ReleaseAfterTicks, 1)
	}

	game := flappy.NewWithConfig(gameCfg, seed)
	game.Subscribe(func(ev core.Event) {
		logger.Debug("event", "kind", ev.Kind, "tick", ev.Tick, "score", ev.Score, "slot", ev.Slot, "reason", ev.Reason)
	})

	start := time.Now()
	flaps := simulate(game, flapScript{every: flagFlapEvery, hold: hold}, flagSimTicks)
	logger.Info("simulation finished", "ticks", game.Ticks(), "elapsed", time.Since(start))

	snap := game.Snapshot()
	res := simResult{
		Seed:   seed,
		Source: source,
		State:  snap.State.String(),
		Cause:  snap.Cause.String(),
		Score:  snap.Score,
		Ticks:  snap.Tick,
		Flaps:  flaps,
		Y:      snap.Avatar.Y,
		Passed: make([]int, 0, len(snap.Passed)),
	}
	for _, id := range snap.Passed {
		res.Passed = append(res.Passed, int(id))
	}

	return printSimResult(cmd.OutOrStdout(), res, flagFormat)
}

func printSimResult(w io.Writer, res simResult, format string) error {
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		return enc.Close()
	}

	fmt.Fprintf(w, "Seed:   %d\n", res.Seed)
	fmt.Fprintf(w, "Config: %s\n", res.Source)
	fmt.Fprintf(w, "State:  %s\n", res.State)
	if res.Cause != flappy.CauseNone.String() {
		fmt.Fprintf(w, "Cause:  %s\n", res.Cause)
	}
	fmt.Fprintf(w, "Score:  %d\n", res.Score)
	fmt.Fprintf(w, "Ticks:  %d\n", res.Ticks)
	fmt.Fprintf(w, "Flaps:  %d\n", res.Flaps)
	return nil
}
