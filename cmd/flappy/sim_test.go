package main

import (
	"bytes"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
)

func TestFlapScript(t *testing.T) {
	s := flapScript{every: 10, hold: 3}

	tests := []struct {
		tick     int
		expected []flappy.Command
	}{
		{0, []flappy.Command{flappy.CmdJump}},
		{1, nil},
		{3, []flappy.Command{flappy.CmdReleaseJump}},
		{10, []flappy.Command{flappy.CmdJump}},
		{13, []flappy.Command{flappy.CmdReleaseJump}},
	}

	for _, tc := range tests {
		if got := s.commands(tc.tick); !reflect.DeepEqual(got, tc.expected) {
			t.Errorf("tick %d: commands = %v, expected %v", tc.tick, got, tc.expected)
		}
	}

	if got := (flapScript{}).commands(0); got != nil {
		t.Errorf("zero cadence should never flap, got %v", got)
	}
}

func TestSimulateDeterministic(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	script := flapScript{every: 20, hold: 8}

	a := flappy.NewWithConfig(cfg, 42)
	b := flappy.NewWithConfig(cfg, 42)
	flapsA := simulate(a, script, 2000)
	flapsB := simulate(b, script, 2000)

	if flapsA != flapsB || !reflect.DeepEqual(a.Snapshot(), b.Snapshot()) {
		t.Error("same seed and script should give the same run")
	}
}

func TestSimulateWithoutFlappingHitsFloor(t *testing.T) {
	game := flappy.NewWithConfig(config.DefaultFlappyConfig(), 1)
	flaps := simulate(game, flapScript{}, 1000)

	if flaps != 0 {
		t.Errorf("flaps = %d, expected 0", flaps)
	}
	if game.Status() != flappy.StateGameOver || game.Cause() != flappy.CauseFloor {
		t.Errorf("expected floor game over, got %v/%v", game.Status(), game.Cause())
	}
}

func TestPrintSimResult(t *testing.T) {
	res := simResult{Seed: 1, Source: "embedded", State: "game_over", Cause: "floor", Score: 2, Ticks: 90, Passed: []int{0}}

	var text bytes.Buffer
	if err := printSimResult(&text, res, "text"); err != nil {
		t.Fatalf("printSimResult(text) failed: %v", err)
	}
	if !strings.Contains(text.String(), "Score:  2") || !strings.Contains(text.String(), "Cause:  floor") {
		t.Errorf("unexpected text output:\n%s", text.String())
	}

	var out bytes.Buffer
	if err := printSimResult(&out, res, "yaml"); err != nil {
		t.Fatalf("printSimResult(yaml) failed: %v", err)
	}
	var decoded simResult
	if err := yaml.Unmarshal(out.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if !reflect.DeepEqual(decoded, res) {
		t.Errorf("decoded = %+v, expected %+v", decoded, res)
	}
}
