package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/fruitpit/fixed"
	"github.com/pthm-cable/fruitpit/fruit"
	"github.com/pthm-cable/fruitpit/ui"
)

// velocityScale stretches velocity vectors so slow fruits stay readable.
const velocityScale = 6

// handleOverlayKeys toggles overlays from their registered keys.
func (g *Game) handleOverlayKeys() {
	for _, o := range g.overlays.All() {
		if o.Key != 0 && rl.IsKeyPressed(o.Key) {
			g.overlays.Toggle(o.ID)
		}
	}
}

// drawActiveOverlays renders enabled debug overlays on top of the fruits.
func (g *Game) drawActiveOverlays(fruits []fruit.Fruit) {
	if g.overlays.IsEnabled(ui.OverlaySpatialGrid) {
		g.drawSpatialGrid()
	}
	if g.overlays.IsEnabled(ui.OverlayBounds) {
		g.drawBounds(fruits)
	}
	if g.overlays.IsEnabled(ui.OverlayContacts) {
		g.drawContacts(fruits)
	}
	if g.overlays.IsEnabled(ui.OverlayVelocity) {
		g.drawVelocities(fruits)
	}
}

func (g *Game) drawSpatialGrid() {
	cell := g.cfg.Physics.GridCellSize
	w, h := g.cfg.Pit.Width, g.cfg.Pit.Height
	color := rl.Color{R: 80, G: 80, B: 120, A: 90}

	for x := int32(0); x <= w; x += cell {
		g.drawLine(float32(x), 0, float32(x), float32(h), color)
	}
	for y := int32(0); y <= h; y += cell {
		g.drawLine(0, float32(y), float32(w), float32(y), color)
	}
}

func (g *Game) drawBounds(fruits []fruit.Fruit) {
	area := g.cfg.Derived.Area
	color := rl.Color{R: 120, G: 200, B: 255, A: 60}
	for _, f := range fruits {
		lo, hi := f.Bounds(area)
		x0, y0 := g.camera.WorldToScreen(float32(lo.X.Float()), float32(lo.Y.Float()))
		x1, y1 := g.camera.WorldToScreen(float32(hi.X.Float()), float32(hi.Y.Float()))
		rl.DrawRectangleLines(int32(x0), int32(y0), int32(x1-x0), int32(y1-y0), color)
	}
}

// drawContacts links every pair resolved on the last tick, once per pair.
func (g *Game) drawContacts(fruits []fruit.Fruit) {
	for i, f := range fruits {
		for _, j := range f.CollidedWith {
			if j <= i || j >= len(fruits) {
				continue
			}
			a, b := f.Position, fruits[j].Position
			g.drawLine(float32(a.X.Float()), float32(a.Y.Float()), float32(b.X.Float()), float32(b.Y.Float()), rl.Magenta)
		}
	}
}

func (g *Game) drawVelocities(fruits []fruit.Fruit) {
	for _, f := range fruits {
		if !f.State.Free() || f.Velocity.IsZero() {
			continue
		}
		tip := f.Position.Add(f.Velocity.Scale(fixed.FromInt(velocityScale)))
		g.drawLine(float32(f.Position.X.Float()), float32(f.Position.Y.Float()),
			float32(tip.X.Float()), float32(tip.Y.Float()), rl.SkyBlue)
	}
}

// settleTint fades a falling fruit's color toward white as its settle timer runs out.
func (g *Game) settleTint(f fruit.Fruit, base rl.Color) rl.Color {
	if f.State != fruit.Falling || g.cfg.Physics.SettleTicks <= 0 {
		return base
	}
	left := float32(f.SettleTimer) / float32(g.cfg.Physics.SettleTicks)
	return lerpColor(rl.White, base, left)
}

func lerpColor(a, b rl.Color, t float32) rl.Color {
	mix := func(x, y uint8) uint8 { return uint8(float32(x) + (float32(y)-float32(x))*t) }
	return rl.Color{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// drawLine draws a one-pixel line given in logical coordinates.
func (g *Game) drawLine(x0, y0, x1, y1 float32, color rl.Color) {
	ax, ay := g.camera.WorldToScreen(x0, y0)
	bx, by := g.camera.WorldToScreen(x1, y1)
	rl.DrawLineV(rl.Vector2{X: ax, Y: ay}, rl.Vector2{X: bx, Y: by}, color)
}
