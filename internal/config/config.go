// Package config provides YAML-based game configuration loading and
// hot reloading for the flappy game.
package config

// FlappyConfig contains all configuration for the Flappy Bird game.
// Distances are world units, speeds are units per tick and angles are degrees.
type FlappyConfig struct {
	World     FlappyWorld     `yaml:"world"`
	Physics   FlappyPhysics   `yaml:"physics"`
	Player    FlappyPlayer    `yaml:"player"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Scroll    FlappyScroll    `yaml:"scroll"`
	Scoring   FlappyScoring   `yaml:"scoring"`
	Controls  FlappyControls  `yaml:"controls"`
}

// FlappyWorld defines the play area.
type FlappyWorld struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	FloorTolerance float64 `yaml:"floor_tolerance"` // Band above the bottom edge that counts as floor
}

// FlappyPhysics defines avatar physics parameters.
type FlappyPhysics struct {
	Gravity        float64 `yaml:"gravity"`
	JumpForce      float64 `yaml:"jump_force"` // Negative = up
	MaxFallSpeed   float64 `yaml:"max_fall_speed"`
	AscendAngle    float64 `yaml:"ascend_angle"`    // Rotation held while jumping
	RotationFactor float64 `yaml:"rotation_factor"` // Degrees per unit of velocity
	MinAngle       float64 `yaml:"min_angle"`
	MaxAngle       float64 `yaml:"max_angle"`
}

// FlappyPlayer defines the avatar sprite and hitbox.
type FlappyPlayer struct {
	X      float64     `yaml:"x"`
	Y      float64     `yaml:"y"`
	Width  float64     `yaml:"width"`
	Height float64     `yaml:"height"`
	Hitbox HitboxInset `yaml:"hitbox"`
}

// HitboxInset describes how the hitbox is cut out of the sprite bounds.
type HitboxInset struct {
	Left   float64 `yaml:"left"`
	Top    float64 `yaml:"top"`
	Width  float64 `yaml:"width"`  // Total width removed
	Height float64 `yaml:"height"` // Total height removed
}

// MemberKind names one half of an obstacle pair.
type MemberKind string

const (
	MemberTop    MemberKind = "top"
	MemberBottom MemberKind = "bottom"
)

// SlotLayout is the startup layout of one obstacle slot.
type SlotLayout struct {
	StartX  float64      `yaml:"start_x"`
	Members []MemberKind `yaml:"members"`
}

// FlappyObstacles defines obstacle parameters.
type FlappyObstacles struct {
	Speed         float64      `yaml:"speed"`
	Width         float64      `yaml:"width"`
	Height        float64      `yaml:"height"` // Height of each member sprite
	GapHeight     float64      `yaml:"gap_height"`
	GapMin        int          `yaml:"gap_min"` // Gap center range [gap_min, gap_max)
	GapMax        int          `yaml:"gap_max"`
	RecycleMargin float64      `yaml:"recycle_margin"` // Distance past -width before recycling
	RespawnOffset float64      `yaml:"respawn_offset"` // Distance past the right edge on respawn
	Slots         []SlotLayout `yaml:"slots"`
}

// FlappyScroll defines the decorative background layer.
type FlappyScroll struct {
	Speed         float64   `yaml:"speed"`
	Width         float64   `yaml:"width"`
	Height        float64   `yaml:"height"`
	Offset        float64   `yaml:"offset"`  // X of the first element
	Spacing       float64   `yaml:"spacing"` // Distance between element origins
	RespawnOffset float64   `yaml:"respawn_offset"`
	Lanes         []float64 `yaml:"lanes"` // One element per lane, value is its Y
}

// FlappyScoring defines how passes are rewarded.
type FlappyScoring struct {
	Increment float64 `yaml:"increment"`
}

// FlappyControls defines platform input behavior.
type FlappyControls struct {
	// ReleaseAfterTicks is how long a terminal key press counts as held.
	ReleaseAfterTicks int `yaml:"release_after_ticks"`
}
