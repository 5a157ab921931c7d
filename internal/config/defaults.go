package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the default Flappy Bird configuration.
// It mirrors defaults/flappy.yaml and is used when the embedded file cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		World: FlappyWorld{
			Width:          525,
			Height:         600,
			FloorTolerance: 10,
		},
		Physics: FlappyPhysics{
			Gravity:        0.5,
			JumpForce:      -9,
			MaxFallSpeed:   12,
			AscendAngle:    -20,
			RotationFactor: 3,
			MinAngle:       -30,
			MaxAngle:       90,
		},
		Player: FlappyPlayer{
			X:      80,
			Y:      250,
			Width:  36,
			Height: 36,
			Hitbox: HitboxInset{Left: 3, Top: 2, Width: 8, Height: 4},
		},
		Obstacles: FlappyObstacles{
			Speed:         4,
			Width:         80,
			Height:        400,
			GapHeight:     150,
			GapMin:        200,
			GapMax:        400,
			RecycleMargin: 100,
			RespawnOffset: 100,
			Slots: []SlotLayout{
				{StartX: 500, Members: []MemberKind{MemberTop, MemberBottom}},
				{StartX: 800, Members: []MemberKind{MemberTop, MemberBottom}},
				{StartX: 1100, Members: []MemberKind{MemberTop, MemberBottom}},
			},
		},
		Scroll: FlappyScroll{
			Speed:         0.4,
			Width:         200,
			Height:        40,
			Offset:        100,
			Spacing:       400,
			RespawnOffset: 100,
			Lanes:         []float64{40, 110, 70},
		},
		Scoring: FlappyScoring{
			Increment: 1,
		},
		Controls: FlappyControls{
			ReleaseAfterTicks: 8,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flappy":
		return defaultFlappyYAML
	default:
		return nil
	}
}
