// Package renderer draws the pit with raylib: walls, fruits and effects.
// Everything here reads simulation output and never writes back.
package renderer

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/fruitpit/camera"
	"github.com/pthm-cable/fruitpit/config"
	"github.com/pthm-cable/fruitpit/fixed"
	"github.com/pthm-cable/fruitpit/fruit"
	"github.com/pthm-cable/fruitpit/pit"
)

// Palette holds the pit colors.
type Palette struct {
	Background rl.Color
	Wall       rl.Color
	Held       rl.Color
	Falling    rl.Color
	Rolling    rl.Color
	Marker     rl.Color
	Aim        rl.Color
}

// DefaultPalette returns the default pit colors.
func DefaultPalette() Palette {
	return Palette{
		Background: rl.Color{R: 24, G: 20, B: 37, A: 255},
		Wall:       rl.Color{R: 139, G: 155, B: 180, A: 255},
		Held:       rl.Color{R: 254, G: 174, B: 52, A: 255},
		Falling:    rl.Color{R: 247, G: 118, B: 34, A: 255},
		Rolling:    rl.Color{R: 228, G: 59, B: 68, A: 255},
		Marker:     rl.Color{R: 38, G: 92, B: 66, A: 255},
		Aim:        rl.Color{R: 255, G: 255, B: 255, A: 60},
	}
}

// PitRenderer draws the pit walls and fruit sprites through a camera.
type PitRenderer struct {
	cam     *camera.Camera
	pit     config.PitConfig
	palette Palette
	frames  [pit.RotationFrames]pit.RotationFrame
}

// NewPitRenderer creates a renderer for the given pit geometry.
func NewPitRenderer(cam *camera.Camera, pc config.PitConfig) *PitRenderer {
	return &PitRenderer{
		cam:     cam,
		pit:     pc,
		palette: DefaultPalette(),
		frames:  pit.RotationTable(),
	}
}

// Palette returns the colors in use.
func (r *PitRenderer) Palette() Palette { return r.palette }

// DrawBackground clears the logical screen.
func (r *PitRenderer) DrawBackground() {
	rl.ClearBackground(rl.Black)
	x0, y0 := r.cam.WorldToScreen(0, 0)
	size := r.cam.Scale(1)
	rl.DrawRectangle(int32(x0), int32(y0),
		int32(float32(r.pit.Width)*size), int32(float32(r.pit.Height)*size),
		r.palette.Background)
}

// DrawWalls draws the left wall, the right wall and the floor.
func (r *PitRenderer) DrawWalls() {
	thick := r.cam.Scale(2)
	left, right, floor := float32(r.pit.WallLeft), float32(r.pit.WallRight), float32(r.pit.Floor)

	r.line(left, 0, left, floor, thick)
	r.line(right, 0, right, floor, thick)
	r.line(left, floor, right, floor, thick)
}

// DrawAim draws a faint guide from the spawn height down to the floor.
func (r *PitRenderer) DrawAim(x fixed.Num, spawnHeight int32) {
	fx := float32(x.Float())
	r.line(fx, float32(spawnHeight), fx, float32(r.pit.Floor), r.cam.Scale(1))
}

// DrawFruits draws every sprite in index order so later fruits overlap earlier ones.
func (r *PitRenderer) DrawFruits(sprites []pit.Sprite) {
	for _, s := range sprites {
		r.DrawFruit(s, r.StateColor(s.State))
	}
}

// DrawFruit draws one fruit with a rim marker showing its rotation frame.
func (r *PitRenderer) DrawFruit(s pit.Sprite, color rl.Color) {
	x, y := float32(s.Position.X.Float()), float32(s.Position.Y.Float())
	radius := float32(s.Radius)
	if !r.cam.IsVisible(x, y, radius) {
		return
	}

	sx, sy := r.cam.WorldToScreen(x, y)
	rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, r.cam.Scale(radius), color)

	// Marker sits just inside the rim, straight up at frame 0.
	offset := r.frames[s.RotationFrame%pit.RotationFrames].Apply(fixed.VInt(0, -int(s.Radius-2)))
	mx, my := r.cam.WorldToScreen(x+float32(offset.X.Float()), y+float32(offset.Y.Float()))
	rl.DrawCircleV(rl.Vector2{X: mx, Y: my}, r.cam.Scale(1.5), r.palette.Marker)
}

// StateColor returns the fill color for a fruit state.
func (r *PitRenderer) StateColor(s fruit.State) rl.Color {
	switch s {
	case fruit.Held:
		return r.palette.Held
	case fruit.Falling:
		return r.palette.Falling
	default:
		return r.palette.Rolling
	}
}

// line draws a segment given in logical coordinates.
func (r *PitRenderer) line(x0, y0, x1, y1, thick float32) {
	ax, ay := r.cam.WorldToScreen(x0, y0)
	bx, by := r.cam.WorldToScreen(x1, y1)
	rl.DrawLineEx(rl.Vector2{X: ax, Y: ay}, rl.Vector2{X: bx, Y: by}, thick, r.palette.Wall)
}
