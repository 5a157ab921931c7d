package flappy

import "github.com/vovakirdan/tui-flappy/internal/config"

// ScrollElement is a decorative background element (a cloud).
type ScrollElement struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
}

// ScrollLayer moves background elements independently of the obstacles.
// It never affects collision or scoring.
type ScrollLayer struct {
	elements []ScrollElement
	cfg      config.FlappyScroll
	worldW   float64
}

// NewScrollLayer creates one element per configured lane in its initial layout.
func NewScrollLayer(cfg config.FlappyScroll, worldW float64) *ScrollLayer {
	l := &ScrollLayer{
		elements: make([]ScrollElement, len(cfg.Lanes)),
		cfg:      cfg,
		worldW:   worldW,
	}
	l.Reset()
	return l
}

// Reset spaces the elements evenly from the configured offset.
func (l *ScrollLayer) Reset() {
	x := l.cfg.Offset
	for i, y := range l.cfg.Lanes {
		l.elements[i] = ScrollElement{
			X:      x,
			Y:      y,
			Width:  l.cfg.Width,
			Height: l.cfg.Height,
			Speed:  l.cfg.Speed,
		}
		x += l.cfg.Spacing
	}
}

// Update moves every element left. An element that had already left the
// screen at the start of the tick wraps to the right.
func (l *ScrollLayer) Update() {
	for i := range l.elements {
		e := &l.elements[i]
		current := e.X
		e.X = current - e.Speed
		if current < -e.Width {
			e.X = l.worldW + l.cfg.RespawnOffset
		}
	}
}

// Elements returns the background elements. The slice must not be modified.
func (l *ScrollLayer) Elements() []ScrollElement {
	return l.elements
}
