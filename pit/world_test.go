package pit

import (
	"slices"
	"testing"

	"github.com/pthm-cable/fruitpit/config"
	"github.com/pthm-cable/fruitpit/fixed"
	"github.com/pthm-cable/fruitpit/fruit"
)

func newTestWorld(t *testing.T) *World {
	t.Helper()
	return NewWorld(config.Default())
}

// place overwrites fruit i's position and state.
func place(w *World, i int, pos fixed.Vec2, state fruit.State) {
	fruits := w.Snapshot()
	fruits[i].Position = pos
	fruits[i].State = state
	w.commit(fruits)
}

// launch is place with a starting velocity.
func launch(w *World, i int, pos, v fixed.Vec2, state fruit.State) {
	fruits := w.Snapshot()
	fruits[i].Position = pos
	fruits[i].Velocity = v
	fruits[i].State = state
	w.commit(fruits)
}

func TestNewWorld_Empty(t *testing.T) {
	w := newTestWorld(t)

	if w.Len() != 0 {
		t.Errorf("Len() = %d, want 0", w.Len())
	}
	if i, ok := w.Active(); ok || i != NoActive {
		t.Errorf("Active() = (%d, %v), want (%d, false)", i, ok, NoActive)
	}
	if got := w.Aim(); got != fixed.FromInt(90) {
		t.Errorf("Aim() = %v, want 90", got)
	}
	if _, ok := w.Fruit(0); ok {
		t.Error("Fruit(0) should not exist in an empty pit")
	}
}

func TestSpawn(t *testing.T) {
	w := newTestWorld(t)

	idx := w.Spawn(fixed.FromInt(100))
	if idx != 0 {
		t.Fatalf("first Spawn() = %d, want 0", idx)
	}
	if i, ok := w.Active(); !ok || i != 0 {
		t.Errorf("Active() = (%d, %v), want (0, true)", i, ok)
	}

	f, ok := w.Fruit(0)
	if !ok {
		t.Fatal("Fruit(0) missing after spawn")
	}
	if f.State != fruit.Held {
		t.Errorf("state = %v, want Held", f.State)
	}
	if want := fixed.VInt(100, 16); f.Position != want {
		t.Errorf("position = %v, want %v", f.Position, want)
	}
	if f.Radius != 8 {
		t.Errorf("radius = %d, want 8", f.Radius)
	}

	if idx := w.Spawn(fixed.FromInt(120)); idx != 1 {
		t.Errorf("second Spawn() = %d, want 1", idx)
	}
	if i, _ := w.Active(); i != 1 {
		t.Errorf("Active() = %d after second spawn, want 1", i)
	}
}

func TestSpawn_ClampsBetweenWalls(t *testing.T) {
	tests := []struct {
		name  string
		x     int
		wantX int
	}{
		{"left of pit", 0, 70},
		{"inside", 120, 120},
		{"right of pit", 500, 171},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t)
			f, _ := w.Fruit(w.Spawn(fixed.FromInt(tt.x)))
			if f.Position.X != fixed.FromInt(tt.wantX) {
				t.Errorf("x = %v, want %d", f.Position.X, tt.wantX)
			}
		})
	}
}

func TestSetAim_Clamps(t *testing.T) {
	w := newTestWorld(t)

	w.SetAim(fixed.FromInt(1000))
	if w.Aim() != fixed.FromInt(171) {
		t.Errorf("Aim() = %v, want 171", w.Aim())
	}
	w.SetAim(fixed.FromInt(-5))
	if w.Aim() != fixed.FromInt(70) {
		t.Errorf("Aim() = %v, want 70", w.Aim())
	}
}

func TestCensus(t *testing.T) {
	w := newTestWorld(t)
	w.Spawn(fixed.FromInt(80))
	w.Spawn(fixed.FromInt(100))
	w.Spawn(fixed.FromInt(120))
	place(w, 0, fixed.VInt(80, 140), fruit.Rolling)
	place(w, 1, fixed.VInt(100, 60), fruit.Falling)

	held, falling, rolling := w.Census()
	if held != 1 || falling != 1 || rolling != 1 {
		t.Errorf("Census() = (%d, %d, %d), want (1, 1, 1)", held, falling, rolling)
	}
}

func TestFrame_IndexOrder(t *testing.T) {
	w := newTestWorld(t)
	for x := 80; x <= 160; x += 20 {
		w.Spawn(fixed.FromInt(x))
	}
	place(w, 1, fixed.VInt(100, 140), fruit.Rolling)
	place(w, 3, fixed.VInt(140, 60), fruit.Falling)

	frame := w.Frame()
	if len(frame) != w.Len() {
		t.Fatalf("len(Frame()) = %d, want %d", len(frame), w.Len())
	}
	for i, s := range frame {
		if s.Index != i {
			t.Errorf("frame[%d].Index = %d", i, s.Index)
		}
		f, _ := w.Fruit(i)
		if s.Position != f.Position || s.State != f.State || s.Radius != f.Radius {
			t.Errorf("frame[%d] = %+v does not match fruit %v", i, s, f)
		}
		if s.RotationFrame != RotationFrameIndex(f.Rotation.Angle) {
			t.Errorf("frame[%d].RotationFrame = %d", i, s.RotationFrame)
		}
	}
}

func TestReset(t *testing.T) {
	w := newTestWorld(t)
	w.Spawn(fixed.FromInt(100))
	w.Step(Intent{MoveRight: true})
	w.Step(Intent{Drop: true})

	w.Reset()

	if w.Len() != 0 || w.Tick() != 0 {
		t.Errorf("after Reset: Len() = %d, Tick() = %d", w.Len(), w.Tick())
	}
	if _, ok := w.Active(); ok {
		t.Error("Active() should report none after Reset")
	}
	if w.Aim() != fixed.FromInt(90) {
		t.Errorf("Aim() = %v, want 90", w.Aim())
	}
	if idx := w.Spawn(w.Aim()); idx != 0 {
		t.Errorf("Spawn() after Reset = %d, want 0", idx)
	}
	if held, _, _ := w.Census(); held != 1 {
		t.Errorf("held = %d after respawn, want 1", held)
	}
}

func TestReset_RemovesEntities(t *testing.T) {
	w := newTestWorld(t)
	used := w.store.Stats().Entities.Used

	for x := range 4 {
		w.Spawn(fixed.FromInt(80 + 10*x))
	}
	spawned := slices.Clone(w.entities)

	w.Reset()

	for i, e := range spawned {
		if w.store.Alive(e) {
			t.Errorf("entity of fruit %d still alive after Reset", i)
		}
	}
	if got := w.store.Stats().Entities.Used; got != used {
		t.Errorf("entities in use = %d after Reset, want %d", got, used)
	}

	w.Spawn(w.Aim())
	w.Reset()
	if got := w.store.Stats().Entities.Used; got != used {
		t.Errorf("entities in use = %d after a second Reset, want %d", got, used)
	}
}

func TestFruitAt(t *testing.T) {
	w := newTestWorld(t)
	w.Spawn(fixed.FromInt(100))
	w.Spawn(fixed.FromInt(110))
	place(w, 0, fixed.VInt(100, 140), fruit.Rolling)
	place(w, 1, fixed.VInt(110, 140), fruit.Rolling)

	tests := []struct {
		name   string
		p      fixed.Vec2
		want   int
		wantOK bool
	}{
		{"only first", fixed.VInt(94, 140), 0, true},
		{"overlap picks topmost", fixed.VInt(105, 140), 1, true},
		{"rim", fixed.VInt(118, 140), 1, true},
		{"outside", fixed.VInt(140, 140), NoActive, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := w.FruitAt(tt.p)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("FruitAt(%v) = (%d, %v), want (%d, %v)", tt.p, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
