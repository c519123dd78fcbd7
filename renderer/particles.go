package renderer

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/fruitpit/camera"
)

// PuffKind picks a puff's color.
type PuffKind uint8

const (
	PuffDrop   PuffKind = iota // fruit released
	PuffSettle                 // fruit came to rest
)

// puff is one short-lived dust mote in logical coordinates.
type puff struct {
	x, y, vx, vy float32
	life, max    int32
	kind         PuffKind
}

// ParticleRenderer renders lifecycle puffs. It is purely cosmetic and keeps
// its own state, separate from the simulation.
type ParticleRenderer struct {
	cam   *camera.Camera
	puffs []puff
	frame uint32
}

// NewParticleRenderer creates a new particle renderer.
func NewParticleRenderer(cam *camera.Camera) *ParticleRenderer {
	return &ParticleRenderer{cam: cam}
}

// Emit spawns a ring of puffs at (x, y).
func (r *ParticleRenderer) Emit(x, y float32, kind PuffKind) {
	const count = 6
	for i := range count {
		a := 2*math.Pi*float64(i)/count + float64(r.frame%7)*0.3
		r.puffs = append(r.puffs, puff{
			x: x, y: y,
			vx:   float32(math.Cos(a)) * 0.6,
			vy:   float32(math.Sin(a))*0.3 - 0.2,
			life: 20, max: 20,
			kind: kind,
		})
	}
}

// Update advances every puff by one frame and drops expired ones.
func (r *ParticleRenderer) Update() {
	r.frame++
	alive := r.puffs[:0]
	for _, p := range r.puffs {
		p.life--
		if p.life <= 0 {
			continue
		}
		p.x += p.vx
		p.y += p.vy
		p.vx *= 0.9
		p.vy *= 0.9
		alive = append(alive, p)
	}
	r.puffs = alive
}

// Draw renders all particles.
func (r *ParticleRenderer) Draw() {
	for i := range r.puffs {
		p := &r.puffs[i]

		// Calculate life ratio for fade
		lifeRatio := float32(p.life) / float32(p.max)

		var color rl.Color
		switch p.kind {
		case PuffDrop:
			color = rl.Color{R: 255, G: 230, B: 180, A: uint8(lifeRatio * 160)}
		default:
			color = rl.Color{R: 180, G: 160, B: 140, A: uint8(lifeRatio * 200)}
		}

		sx, sy := r.cam.WorldToScreen(p.x, p.y)
		rl.DrawCircleV(rl.Vector2{X: sx, Y: sy}, r.cam.Scale(0.5+lifeRatio), color)
	}
}

// Clear removes every puff.
func (r *ParticleRenderer) Clear() {
	r.puffs = r.puffs[:0]
}

// Len returns the number of live puffs.
func (r *ParticleRenderer) Len() int { return len(r.puffs) }
