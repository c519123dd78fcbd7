// Package pit runs the fruit pit: spawning, the per-tick physics step and the
// frame handed to presentation. Everything here is deterministic fixed-point
// and free of rendering.
package pit

import (
	"slices"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/fruitpit/components"
	"github.com/pthm-cable/fruitpit/config"
	"github.com/pthm-cable/fruitpit/fixed"
	"github.com/pthm-cable/fruitpit/fruit"
	"github.com/pthm-cable/fruitpit/systems"
)

// NoActive is the active index when no fruit is under play.
const NoActive = -1

// World owns every fruit in the pit. Fruits live in an ark world, one entity
// each, addressed by spawn order: index i is the i-th fruit ever spawned.
type World struct {
	cfg   *config.Config
	store *ecs.World

	// Entity mapper for creation, filter for whole-pit queries
	fruitMapper *ecs.Map6[
		components.Position,
		components.Velocity,
		components.Rotation,
		components.Body,
		components.Lifecycle,
		components.Contacts,
	]
	fruitFilter *ecs.Filter6[
		components.Position,
		components.Velocity,
		components.Rotation,
		components.Body,
		components.Lifecycle,
		components.Contacts,
	]

	// Individual component mappers for lookups
	posMap      *ecs.Map1[components.Position]
	velMap      *ecs.Map1[components.Velocity]
	rotMap      *ecs.Map1[components.Rotation]
	bodyMap     *ecs.Map1[components.Body]
	lifeMap     *ecs.Map1[components.Lifecycle]
	contactsMap *ecs.Map1[components.Contacts]

	entities []ecs.Entity // index = spawn order
	active   int
	aim      fixed.Num
	tick     uint64

	// Per-tick scratch, reused across steps
	grid       *systems.SpatialGrid
	maxRadius  int32
	snapshot   []fruit.Fruit
	work       []fruit.Fruit
	next       []pairOutcome
	candidates []int
	events     []Event

	phases PhaseTimer
}

// NewWorld creates an empty pit with the aim cursor at its start position.
func NewWorld(cfg *config.Config) *World {
	world := ecs.NewWorld()

	w := &World{
		cfg:   cfg,
		store: world,
		fruitMapper: ecs.NewMap6[
			components.Position,
			components.Velocity,
			components.Rotation,
			components.Body,
			components.Lifecycle,
			components.Contacts,
		](world),
		fruitFilter: ecs.NewFilter6[
			components.Position,
			components.Velocity,
			components.Rotation,
			components.Body,
			components.Lifecycle,
			components.Contacts,
		](world),
		posMap:      ecs.NewMap1[components.Position](world),
		velMap:      ecs.NewMap1[components.Velocity](world),
		rotMap:      ecs.NewMap1[components.Rotation](world),
		bodyMap:     ecs.NewMap1[components.Body](world),
		lifeMap:     ecs.NewMap1[components.Lifecycle](world),
		contactsMap: ecs.NewMap1[components.Contacts](world),
		active:      NoActive,
		grid:        systems.NewSpatialGrid(cfg.Pit.Width, cfg.Pit.Height, cfg.Physics.GridCellSize),
	}
	w.SetAim(fixed.FromInt(int(cfg.Fruit.AimStart)))
	return w
}

// Spawn creates a Held fruit at (x, spawn height), makes it the active fruit and
// returns its index. It is the only way fruits enter the pit.
func (w *World) Spawn(x fixed.Num) int {
	idx := len(w.entities)
	d := &w.cfg.Derived

	f := fruit.New(fixed.V(x, d.SpawnHeight), w.cfg.Fruit.Radius, w.cfg.Physics.SettleTicks)
	f.SetPosition(f.Position, d.Area)

	pos, vel, rot, body, contacts := components.Split(f)
	life := components.Lifecycle{Index: int32(idx), State: f.State, Settle: f.SettleTimer}
	e := w.fruitMapper.NewEntity(&pos, &vel, &rot, &body, &life, &contacts)

	w.entities = append(w.entities, e)
	w.active = idx
	return idx
}

// Len returns the number of fruits ever spawned.
func (w *World) Len() int { return len(w.entities) }

// Tick returns the number of completed steps.
func (w *World) Tick() uint64 { return w.tick }

// Active returns the index of the fruit currently in play.
func (w *World) Active() (int, bool) {
	if w.active < 0 || w.active >= len(w.entities) {
		return NoActive, false
	}
	return w.active, true
}

// Aim returns the x the next fruit spawns at.
func (w *World) Aim() fixed.Num { return w.aim }

// SetAim moves the aim cursor, clamped to where a fruit fits between the walls.
func (w *World) SetAim(x fixed.Num) {
	w.aim = fixed.Clamp(x, w.cfg.Derived.AimMin, w.cfg.Derived.AimMax)
}

// Fruit returns a copy of fruit i.
func (w *World) Fruit(i int) (fruit.Fruit, bool) {
	if i < 0 || i >= len(w.entities) {
		return fruit.Fruit{}, false
	}
	e := w.entities[i]
	return components.Assemble(
		w.posMap.Get(e), w.velMap.Get(e), w.rotMap.Get(e),
		w.bodyMap.Get(e), w.lifeMap.Get(e), w.contactsMap.Get(e),
	), true
}

// Snapshot returns copies of every fruit in index order.
func (w *World) Snapshot() []fruit.Fruit {
	return w.snapshotInto(make([]fruit.Fruit, 0, len(w.entities)))
}

func (w *World) snapshotInto(dst []fruit.Fruit) []fruit.Fruit {
	dst = dst[:0]
	for i := range w.entities {
		f, _ := w.Fruit(i)
		dst = append(dst, f)
	}
	return dst
}

// commit writes fruits back to their entities.
func (w *World) commit(fruits []fruit.Fruit) {
	for i, f := range fruits {
		e := w.entities[i]
		*w.posMap.Get(e) = components.Position(f.Position)
		*w.velMap.Get(e) = components.Velocity(f.Velocity)
		*w.rotMap.Get(e) = components.Rotation{Angle: f.Rotation.Angle, Speed: f.Rotation.Speed}

		life := w.lifeMap.Get(e)
		life.State = f.State
		life.Settle = f.SettleTimer

		contacts := w.contactsMap.Get(e)
		contacts.With = append(contacts.With[:0], f.CollidedWith...)
	}
}

// Census counts fruits by state.
func (w *World) Census() (held, falling, rolling int) {
	query := w.fruitFilter.Query()
	for query.Next() {
		_, _, _, _, life, _ := query.Get()
		switch life.State {
		case fruit.Held:
			held++
		case fruit.Falling:
			falling++
		case fruit.Rolling:
			rolling++
		}
	}
	return held, falling, rolling
}

// Sprite is what presentation needs to draw one fruit.
type Sprite struct {
	Index         int
	Position      fixed.Vec2
	Radius        int32
	RotationFrame int
	State         fruit.State
}

// Frame returns the presentation output for every fruit in index order.
func (w *World) Frame() []Sprite {
	sprites := make([]Sprite, 0, len(w.entities))
	query := w.fruitFilter.Query()
	for query.Next() {
		pos, _, rot, body, life, _ := query.Get()
		sprites = append(sprites, Sprite{
			Index:         int(life.Index),
			Position:      pos.Vec(),
			Radius:        body.Radius,
			RotationFrame: RotationFrameIndex(rot.Angle),
			State:         life.State,
		})
	}
	// Query order follows archetype storage, not spawn order
	slices.SortFunc(sprites, func(a, b Sprite) int { return a.Index - b.Index })
	return sprites
}

// Reset removes every fruit and returns the aim to its start position.
func (w *World) Reset() {
	for _, e := range w.entities {
		w.store.RemoveEntity(e)
	}
	w.entities = w.entities[:0]
	w.active = NoActive
	w.tick = 0
	w.SetAim(fixed.FromInt(int(w.cfg.Fruit.AimStart)))
}

// FruitAt returns the topmost fruit whose circle contains p. Later fruits are
// drawn over earlier ones, so the highest index wins.
func (w *World) FruitAt(p fixed.Vec2) (int, bool) {
	for i := len(w.entities) - 1; i >= 0; i-- {
		e := w.entities[i]
		pos := w.posMap.Get(e).Vec()
		r := fixed.FromInt(int(w.bodyMap.Get(e).Radius))
		if pos.Sub(p).MagnitudeSquared() <= fixed.Mul(r, r) {
			return i, true
		}
	}
	return NoActive, false
}
