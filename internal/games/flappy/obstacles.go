package flappy

import (
	"math/rand"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Member is one half of an obstacle pair.
type Member struct {
	Kind config.MemberKind
	Rect core.Rect
}

// ObstaclePair is a pooled slot: members that move together and leave a gap
// between them.
type ObstaclePair struct {
	ID        SlotID
	X         float64 // Left edge shared by all members
	GapCenter float64
	Members   []Member
}

// Width returns the horizontal extent used for scoring and recycling.
// Members share X, so the first member is representative.
func (p ObstaclePair) Width() float64 {
	if len(p.Members) == 0 {
		return 0
	}
	return p.Members[0].Rect.W
}

// pairIndexes returns the indexes of the top and bottom members.
// ok is false unless the pair has exactly one of each.
func (p ObstaclePair) pairIndexes() (top, bottom int, ok bool) {
	if len(p.Members) != 2 {
		return 0, 0, false
	}
	top, bottom = -1, -1
	for i, m := range p.Members {
		switch m.Kind {
		case config.MemberTop:
			top = i
		case config.MemberBottom:
			bottom = i
		}
	}
	return top, bottom, top >= 0 && bottom >= 0
}

// PoolResult reports what happened to the pool during one tick.
type PoolResult struct {
	Collided bool
	HitSlot  SlotID   // Valid when Collided
	Scored   []SlotID // Slots credited this tick, in slot order
	Recycled []SlotID
}

// ObstaclePool manages a fixed set of obstacle slots.
type ObstaclePool struct {
	pairs  []ObstaclePair
	passed PassedSet
	cfg    config.FlappyObstacles
	worldW float64
	rng    *rand.Rand
}

// NewObstaclePool creates a pool with one slot per configured layout entry.
// The pool starts in its initial staggered layout.
func NewObstaclePool(cfg config.FlappyObstacles, worldW float64, rng *rand.Rand) *ObstaclePool {
	p := &ObstaclePool{
		pairs:  make([]ObstaclePair, len(cfg.Slots)),
		passed: newPassedSet(len(cfg.Slots)),
		cfg:    cfg,
		worldW: worldW,
		rng:    rng,
	}
	p.Reset()
	return p
}

// Reset returns every slot to its staggered start position with a fresh gap
// and clears the passed set.
func (p *ObstaclePool) Reset() {
	for i, layout := range p.cfg.Slots {
		members := make([]Member, len(layout.Members))
		for j, kind := range layout.Members {
			members[j] = Member{
				Kind: kind,
				Rect: core.NewRect(layout.StartX, 0, p.cfg.Width, p.cfg.Height),
			}
		}
		p.pairs[i] = ObstaclePair{ID: SlotID(i), Members: members}
		p.respawn(i, layout.StartX)
	}
	p.passed.Clear()
}

// respawn places slot i at x. Well-formed pairs get a new random gap;
// malformed ones only move horizontally.
func (p *ObstaclePool) respawn(i int, x float64) {
	pair := &p.pairs[i]
	pair.X = x
	for j := range pair.Members {
		pair.Members[j].Rect.X = x
	}

	top, bottom, ok := pair.pairIndexes()
	if !ok {
		return
	}

	pair.GapCenter = p.randomGapCenter()
	gapTop := pair.GapCenter - p.cfg.GapHeight/2
	gapBottom := pair.GapCenter + p.cfg.GapHeight/2

	// Top member hangs down to the gap, bottom member starts right below it
	pair.Members[top].Rect.Y = gapTop - pair.Members[top].Rect.H
	pair.Members[bottom].Rect.Y = gapBottom
}

// randomGapCenter draws an integer gap center from [GapMin, GapMax).
func (p *ObstaclePool) randomGapCenter() float64 {
	span := p.cfg.GapMax - p.cfg.GapMin
	if span <= 0 {
		return float64(p.cfg.GapMin)
	}
	return float64(p.cfg.GapMin + p.rng.Intn(span))
}

// Update advances every slot by one tick. It stops at the first slot that
// touches hitbox; slots before it have already moved and scored.
// avatarX is the avatar's left edge, used for the pass check.
func (p *ObstaclePool) Update(hitbox core.Rect, avatarX float64) PoolResult {
	var res PoolResult

	for i := range p.pairs {
		pair := &p.pairs[i]

		// Move all members together
		pair.X -= p.cfg.Speed
		for j := range pair.Members {
			pair.Members[j].Rect.X = pair.X
		}

		for _, m := range pair.Members {
			if hitbox.Intersects(m.Rect) {
				res.Collided = true
				res.HitSlot = pair.ID
				return res
			}
		}

		// A slot with no members has nothing to pass
		width := pair.Width()
		if len(pair.Members) > 0 && pair.X+width < avatarX && p.passed.Add(pair.ID) {
			res.Scored = append(res.Scored, pair.ID)
		}

		if pair.X < -(width + p.cfg.RecycleMargin) {
			p.respawn(i, p.worldW+p.cfg.RespawnOffset)
			p.passed.Remove(pair.ID)
			res.Recycled = append(res.Recycled, pair.ID)
		}
	}

	return res
}

// Pairs returns the slots. The slice must not be modified.
func (p *ObstaclePool) Pairs() []ObstaclePair {
	return p.pairs
}

// Passed returns the set of credited slots.
func (p *ObstaclePool) Passed() PassedSet {
	return p.passed
}
