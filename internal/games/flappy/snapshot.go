package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// AvatarView is the published avatar state.
type AvatarView struct {
	X, Y          float64
	Width, Height float64
	Velocity      float64
	Rotation      float64 // Degrees, positive = nose down
	Jumping       bool
	Hitbox        core.Rect
}

// MemberView is the published state of one obstacle member.
type MemberView struct {
	Kind config.MemberKind
	Rect core.Rect
}

// ObstacleView is the published state of one obstacle slot.
type ObstacleView struct {
	Slot      SlotID
	X         float64
	GapCenter float64
	Passed    bool
	Members   []MemberView
}

// ScrollView is the published state of one background element.
type ScrollView struct {
	X, Y          float64
	Width, Height float64
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Tick      uint64
	State     State
	Score     int
	Cause     Cause
	WorldW    float64
	WorldH    float64
	FloorY    float64 // Hitbox bottoms below this line end the run
	Avatar    AvatarView
	Obstacles []ObstacleView
	Scroll    []ScrollView
	Passed    []SlotID
}

// Snapshot captures the current state. It shares no memory with the game.
func (g *Game) Snapshot() Snapshot {
	a := g.avatar
	snap := Snapshot{
		Tick:   g.tick,
		State:  g.state,
		Score:  g.Score(),
		Cause:  g.cause,
		WorldW: g.world.width,
		WorldH: g.world.height,
		FloorY: g.world.height - g.world.floorTolerance,
		Avatar: AvatarView{
			X:        a.X,
			Y:        a.Y,
			Width:    a.Width,
			Height:   a.Height,
			Velocity: a.Velocity,
			Rotation: a.Rotation(),
			Jumping:  a.Jumping,
			Hitbox:   a.Hitbox(),
		},
		Passed: g.pool.Passed().Slots(),
	}

	passed := g.pool.Passed()
	for _, p := range g.pool.Pairs() {
		view := ObstacleView{
			Slot:      p.ID,
			X:         p.X,
			GapCenter: p.GapCenter,
			Passed:    passed.Has(p.ID),
			Members:   make([]MemberView, len(p.Members)),
		}
		for i, m := range p.Members {
			view.Members[i] = MemberView{Kind: m.Kind, Rect: m.Rect}
		}
		snap.Obstacles = append(snap.Obstacles, view)
	}

	for _, e := range g.scroll.Elements() {
		snap.Scroll = append(snap.Scroll, ScrollView{X: e.X, Y: e.Y, Width: e.Width, Height: e.Height})
	}

	return snap
}
