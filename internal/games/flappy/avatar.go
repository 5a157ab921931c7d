package flappy

import (
	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Avatar is the player-controlled bird. X never changes during a run.
type Avatar struct {
	X, Y          float64
	Width, Height float64
	Velocity      float64 // Positive = falling
	Jumping       bool    // Set by Jump, cleared by ReleaseJump

	physics config.FlappyPhysics
	inset   config.HitboxInset
}

func newAvatar(player config.FlappyPlayer, physics config.FlappyPhysics) Avatar {
	return Avatar{
		X:       player.X,
		Y:       player.Y,
		Width:   player.Width,
		Height:  player.Height,
		physics: physics,
		inset:   player.Hitbox,
	}
}

// ApplyGravity accelerates the avatar downwards up to the terminal velocity.
func (a *Avatar) ApplyGravity() {
	a.Velocity += a.physics.Gravity
	if a.Velocity > a.physics.MaxFallSpeed {
		a.Velocity = a.physics.MaxFallSpeed
	}
}

// Jump applies the upward impulse unless a jump is already held.
// It reports whether the impulse was applied.
func (a *Avatar) Jump() bool {
	if a.Jumping {
		return false
	}
	a.Jumping = true
	a.Velocity = a.physics.JumpForce
	return true
}

// ReleaseJump lets the rotation track velocity again and re-arms Jump.
func (a *Avatar) ReleaseJump() {
	a.Jumping = false
}

// Integrate moves the avatar by its current velocity.
func (a *Avatar) Integrate() {
	a.Y += a.Velocity
}

// Rotation returns the sprite angle in degrees, positive = nose down.
func (a Avatar) Rotation() float64 {
	if a.Jumping {
		return a.physics.AscendAngle
	}
	return core.ClampF(a.Velocity*a.physics.RotationFactor, a.physics.MinAngle, a.physics.MaxAngle)
}

// Bounds returns the full sprite rectangle.
func (a Avatar) Bounds() core.Rect {
	return core.NewRect(a.X, a.Y, a.Width, a.Height)
}

// Hitbox returns the collision rectangle, inset from the sprite bounds.
func (a Avatar) Hitbox() core.Rect {
	return a.Bounds().Inset(a.inset.Left, a.inset.Top, a.inset.Width, a.inset.Height)
}
