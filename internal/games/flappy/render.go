package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Visual characters for rendering
const (
	BirdBody      = '●'
	BirdLevel     = '▶'
	BirdClimb     = '▲'
	BirdDive      = '▼'
	PipeChar      = '█'
	PipeCapTop    = '▄'
	PipeCapBottom = '▀'
	CloudChar     = '░'
	GroundChar    = '═'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	RenderSnapshot(dst, g.Snapshot())
}

// viewport maps world units to screen cells. The bottom row is the ground.
type viewport struct {
	sx, sy float64
	rows   int
}

func newViewport(dst *core.Screen, snap Snapshot) viewport {
	rows := dst.Height() - 1
	vp := viewport{rows: rows}
	if snap.WorldW > 0 {
		vp.sx = float64(dst.Width()) / snap.WorldW
	}
	if snap.WorldH > 0 {
		vp.sy = float64(rows) / snap.WorldH
	}
	return vp
}

// span converts a world rectangle to a cell block, at least one cell in each direction.
func (vp viewport) span(r core.Rect) (x, y, w, h int) {
	x0 := int(math.Floor(r.X * vp.sx))
	x1 := int(math.Ceil(r.Right() * vp.sx))
	y0 := int(math.Floor(r.Y * vp.sy))
	y1 := int(math.Ceil(r.Bottom() * vp.sy))

	y0 = core.Clamp(y0, 0, vp.rows)
	y1 = core.Clamp(y1, 0, vp.rows)
	return x0, y0, core.Max(x1-x0, 1), y1 - y0
}

// RenderSnapshot draws a snapshot. It has no access to the simulation.
func RenderSnapshot(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	vp := newViewport(dst, snap)

	// Clouds sit behind everything else
	for _, c := range snap.Scroll {
		x, y, w, h := vp.span(core.NewRect(c.X, c.Y, c.Width, c.Height))
		dst.FillArea(x, y, w, core.Max(h, 1), CloudChar, core.ColorGray)
	}

	for _, o := range snap.Obstacles {
		drawObstacle(dst, vp, o)
	}

	drawBird(dst, vp, snap.Avatar)

	// Ground
	dst.DrawHLine(0, vp.rows, dst.Width(), GroundChar, core.ColorYellow)

	// HUD
	dst.DrawTextColored(2, 0, fmt.Sprintf(" Score: %d ", snap.Score), core.ColorBrightWhite)

	switch snap.State {
	case StateIdle:
		drawCenteredMessage(dst, "FLAPPY BIRD", "Press Space to start")
	case StatePaused:
		drawCenteredMessage(dst, "PAUSED", "Press Esc to resume")
	case StateGameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

// drawObstacle renders both members of a slot with caps facing the gap.
func drawObstacle(dst *core.Screen, vp viewport, o ObstacleView) {
	for _, m := range o.Members {
		x, y, w, h := vp.span(m.Rect)
		if h <= 0 {
			continue
		}
		dst.FillArea(x, y, w, h, PipeChar, core.ColorGreen)

		switch m.Kind {
		case config.MemberTop:
			dst.DrawHLine(x, y+h-1, w, PipeCapTop, core.ColorBrightGreen)
		case config.MemberBottom:
			dst.DrawHLine(x, y, w, PipeCapBottom, core.ColorBrightGreen)
		}
	}
}

// drawBird renders the avatar with a head glyph that follows its rotation.
func drawBird(dst *core.Screen, vp viewport, a AvatarView) {
	x, y, w, _ := vp.span(core.NewRect(a.X, a.Y+a.Height/2, a.Width, 0))
	if y >= vp.rows {
		y = vp.rows - 1
	}

	head := BirdLevel
	switch {
	case a.Rotation < -10:
		head = BirdClimb
	case a.Rotation > 45:
		head = BirdDive
	}

	for dx := 0; dx < w-1; dx++ {
		dst.SetColored(x+dx, y, BirdBody, core.ColorYellow)
	}
	dst.SetColored(x+w-1, y, head, core.ColorOrange)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.FillArea(boxX, boxY, boxW, boxH, ' ', core.ColorDefault)
	dst.DrawBox(boxX, boxY, boxW, boxH)

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightYellow)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
