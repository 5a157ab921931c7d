package flappy

import (
	"testing"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

func TestScrollLayerInitialLayout(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	l := NewScrollLayer(cfg.Scroll, cfg.World.Width)

	want := []float64{100, 500, 900}
	elems := l.Elements()
	if len(elems) != len(want) {
		t.Fatalf("expected %d elements, got %d", len(want), len(elems))
	}
	for i, e := range elems {
		if e.X != want[i] {
			t.Errorf("element %d X = %v, expected %v", i, e.X, want[i])
		}
		if e.Y != cfg.Scroll.Lanes[i] {
			t.Errorf("element %d Y = %v, expected lane %v", i, e.Y, cfg.Scroll.Lanes[i])
		}
	}
}

func TestScrollLayerWrap(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	cfg.Scroll.Offset = -199
	cfg.Scroll.Lanes = []float64{50}
	l := NewScrollLayer(cfg.Scroll, cfg.World.Width)

	for i := 0; i < 3; i++ {
		l.Update()
	}
	if x := l.Elements()[0].X; x >= -200 {
		t.Fatalf("after 3 updates element should be past -width, got %v", x)
	}

	// Fully off screen at the start of this update, so it wraps
	l.Update()
	if x := l.Elements()[0].X; x != cfg.World.Width+100 {
		t.Errorf("wrapped X = %v, expected %v", x, cfg.World.Width+100)
	}
}

func TestScrollLayerReset(t *testing.T) {
	cfg := config.DefaultFlappyConfig()
	l := NewScrollLayer(cfg.Scroll, cfg.World.Width)

	for i := 0; i < 50; i++ {
		l.Update()
	}
	if l.Elements()[0].X == 100 {
		t.Fatal("elements should have moved")
	}

	l.Reset()
	if l.Elements()[0].X != 100 {
		t.Errorf("Reset X = %v, expected 100", l.Elements()[0].X)
	}
}
