package pit

import (
	"slices"

	"github.com/pthm-cable/fruitpit/fixed"
	"github.com/pthm-cable/fruitpit/fruit"
	"github.com/pthm-cable/fruitpit/geometry"
	"github.com/pthm-cable/fruitpit/telemetry"
)

// PhaseTimer is told when each stage of Step begins.
type PhaseTimer interface {
	StartPhase(phase string)
}

// SetPhaseTimer installs a timer for Step's stages. nil disables timing.
func (w *World) SetPhaseTimer(p PhaseTimer) { w.phases = p }

func (w *World) phase(name string) {
	if w.phases != nil {
		w.phases.StartPhase(name)
	}
}

// Step advances the pit by one tick and returns what happened.
//
// Pass 1 runs in three sweeps. The first steers the held fruit and gives every
// free fruit its candidate velocity. The second resolves each overlapping or
// approaching pair once, reading only start-of-tick positions and candidate
// velocities, and accumulates the outcome per fruit. The third applies the
// outcomes, walls and settling, and writes the working copy. No sweep reads
// what another fruit wrote in the same tick, so spawn order cannot change the
// result. Pass 2 spawns the next fruit once the active one has settled.
//
// The returned slice is reused by the next call.
func (w *World) Step(in Intent) []Event {
	w.tick++
	w.events = w.events[:0]
	d := &w.cfg.Derived
	dir := in.Direction()

	w.phase(telemetry.PhaseSnapshot)
	w.SetAim(w.aim + d.Fruit.InputStep.MulInt(int64(dir)))
	w.snapshot = w.snapshotInto(w.snapshot)
	w.work = w.work[:0]
	w.next = slices.Grow(w.next[:0], len(w.snapshot))[:len(w.snapshot)]
	for _, f := range w.snapshot {
		f = f.Clone()
		f.CollidedWith = f.CollidedWith[:0]
		w.work = append(w.work, f)
	}

	w.phase(telemetry.PhaseSpatialGrid)
	w.rebuildGrid()

	w.phase(telemetry.PhaseIntegrate)
	for i := range w.work {
		w.prepareFruit(i, dir, in.Drop)
	}
	w.resolvePairs()
	for i := range w.work {
		if w.snapshot[i].State.Free() {
			w.moveFruit(i)
		}
	}

	w.phase(telemetry.PhaseCommit)
	w.commit(w.work)

	w.phase(telemetry.PhaseSpawn)
	if i, ok := w.Active(); ok && w.work[i].State == fruit.Rolling {
		idx := w.Spawn(w.aim)
		f, _ := w.Fruit(idx)
		w.emit(EventSpawn, idx, f.Position)
	}

	return w.events
}

// rebuildGrid indexes every free fruit at its start-of-tick position.
func (w *World) rebuildGrid() {
	w.grid.Clear()
	w.maxRadius = 0
	for i, f := range w.snapshot {
		if !f.State.Free() {
			continue
		}
		w.grid.Insert(i, f.Position)
		w.maxRadius = max(w.maxRadius, f.Radius)
	}
}

// broadRadius bounds the centre distance of any pair that can overlap or meet
// within one tick.
func (w *World) broadRadius() fixed.Num {
	return fixed.FromInt(int(2*w.maxRadius)) + w.cfg.Derived.TerminalVelocity.MulInt(4)
}

// pairOutcome collects what fruit i's pairs did to it this tick.
type pairOutcome struct {
	candidate fixed.Vec2 // gravity-clamped velocity before any pair
	push      fixed.Vec2 // sum of propulsion from overlapping partners
	pushed    bool
	scale     fixed.Num // smallest time of impact among approaching partners
	contact   bool
}

// prepareFruit steers a Held fruit or records a free fruit's candidate velocity.
// A fruit dropped this tick starts physics on the next one.
func (w *World) prepareFruit(i, dir int, drop bool) {
	d := &w.cfg.Derived
	f := &w.work[i]
	w.next[i] = pairOutcome{scale: fixed.One}

	switch f.State {
	case fruit.Held:
		f.Steer(dir, d.Fruit.InputStep, d.Area)
		if drop && f.Drop() == nil {
			w.emit(EventDrop, i, f.Position)
		}
	case fruit.Falling, fruit.Rolling:
		w.next[i].candidate = f.Accelerated(d.Fruit)
	}
}

// resolvePairs visits every pair of free fruits once, from its lower index.
// Overlapping pairs push apart along the centre line with propulsion
// clamp(|t/4|, min, max); pairs meeting within the tick (0 <= t < 1) have both
// velocities scaled by t.
func (w *World) resolvePairs() {
	d := &w.cfg.Derived
	for i := range w.snapshot {
		a := &w.snapshot[i]
		if !a.State.Free() {
			continue
		}
		ci := geometry.Circle{Position: a.Position, Radius: a.Radius, Velocity: w.next[i].candidate}

		w.candidates = w.grid.QueryRadiusInto(w.candidates[:0], a.Position, w.broadRadius(), i)
		for _, j := range w.candidates {
			if j < i {
				continue
			}
			b := &w.snapshot[j]
			cj := geometry.Circle{Position: b.Position, Radius: b.Radius, Velocity: w.next[j].candidate}
			t, ok := geometry.Collision(geometry.BallFromCircle(ci), geometry.BallFromCircle(cj))

			if _, overlap := geometry.CircleIntersection(ci, cj); overlap {
				axis := cj.Position.Sub(ci.Position).Normalize()
				if axis.IsZero() {
					// Coincident centres: the lower index goes left.
					axis = fixed.V(fixed.One, 0)
				}
				p := fixed.Clamp(fixed.Abs(t.DivInt(4)), d.PropulsionMin, d.PropulsionMax)
				w.next[i].push = w.next[i].push.Sub(axis.Scale(p))
				w.next[j].push = w.next[j].push.Add(axis.Scale(p))
				w.next[i].pushed, w.next[j].pushed = true, true
			} else if ok && t >= 0 && t < fixed.One {
				w.next[i].scale = fixed.Min(w.next[i].scale, t)
				w.next[j].scale = fixed.Min(w.next[j].scale, t)
			} else {
				continue
			}

			w.next[i].contact, w.next[j].contact = true, true
			w.work[i].CollidedWith = append(w.work[i].CollidedWith, j)
			w.work[j].CollidedWith = append(w.work[j].CollidedWith, i)
		}
	}
}

// moveFruit applies fruit i's pair outcome, then walls, friction, settling and
// the position commit.
func (w *World) moveFruit(i int) {
	d := &w.cfg.Derived
	f := &w.work[i]
	out := w.next[i]
	start := w.snapshot[i].Position

	v := out.candidate
	switch {
	case out.pushed:
		// Propulsion replaces the candidate velocity.
		tv := fixed.Splat(d.TerminalVelocity)
		v = out.push.Clamp(tv.Neg(), tv)
	case out.scale < fixed.One:
		v = v.Scale(out.scale)
	}
	contact := out.contact

	if n, hit := d.Area.InPlayfield(geometry.Circle{Position: start.Add(v), Radius: f.Radius}); hit {
		v = w.wallResponse(v, n)
		contact = true
	}

	switch f.State {
	case fruit.Rolling:
		v.X = v.X.Mul(d.RollingFriction)
	case fruit.Falling:
		if contact {
			f.SettleTimer--
		}
		if f.SettleTimer <= 0 && f.Settle() == nil {
			w.emit(EventSettle, i, start)
		}
	case fruit.Held:
	}

	next := start.Add(v)
	var nudge fixed.Vec2
	if n, hit := d.Area.InPlayfield(geometry.Circle{Position: next, Radius: f.Radius}); hit {
		nudge = n
		next = next.Add(n)
	}

	f.Velocity = v
	f.SetPosition(next, d.Area)
	f.Spin(nudge, d.Fruit.SpinFactor)
}

// wallResponse damps v after the wall correction n: friction and a damped
// bounce on the floor, a damped bounce off the sides. Residual speed at or
// below the rest threshold is dropped.
func (w *World) wallResponse(v, n fixed.Vec2) fixed.Vec2 {
	d := &w.cfg.Derived
	if n.Y != 0 {
		v.X = v.X.Mul(d.FloorFriction)
		v.Y = v.Y.Mul(d.FloorBounce)
		if fixed.Abs(v.Y) <= d.RestThreshold {
			v.Y = 0
		}
		return v
	}
	v.X = v.X.Mul(d.WallBounce)
	if fixed.Abs(v.X) <= d.RestThreshold {
		v.X = 0
	}
	return v
}

func (w *World) emit(kind EventKind, index int, pos fixed.Vec2) {
	w.events = append(w.events, Event{Kind: kind, Tick: w.tick, Index: index, Position: pos})
}
