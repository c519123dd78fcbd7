// Package fruit defines the fruit entity and its Held → Falling → Rolling
// state machine.
package fruit

import (
	"fmt"
	"slices"

	"github.com/pthm-cable/fruitpit/fixed"
	"github.com/pthm-cable/fruitpit/geometry"
)

var fullTurn = fixed.FromInt(360)

// Rotation is the presentation-only spin of a fruit, in degrees.
type Rotation struct {
	Angle fixed.Num // always in [0, 360)
	Speed fixed.Num // last spin delta
}

// Tuning is the subset of physics constants a single fruit needs to move itself.
type Tuning struct {
	Gravity          fixed.Num
	TerminalVelocity fixed.Num
	InputStep        fixed.Num
	SpinFactor       fixed.Num
}

// Fruit is one round object in the pit.
type Fruit struct {
	Position     fixed.Vec2
	Radius       int32
	Rotation     Rotation
	State        State
	Velocity     fixed.Vec2
	SettleTimer  int32 // ticks of contact left before Falling becomes Rolling
	CollidedWith []int // partners resolved this tick
}

// New returns a Held fruit at rest.
func New(pos fixed.Vec2, radius, settleTicks int32) Fruit {
	return Fruit{
		Position:    pos,
		Radius:      radius,
		State:       Held,
		SettleTimer: settleTicks,
	}
}

// Clone returns a copy that shares no memory with f.
func (f Fruit) Clone() Fruit {
	f.CollidedWith = slices.Clone(f.CollidedWith)
	return f
}

// Circle returns the collision snapshot of f.
func (f Fruit) Circle() geometry.Circle {
	return geometry.Circle{Position: f.Position, Radius: f.Radius, Velocity: f.Velocity}
}

// Bounds returns the rectangle f's position is clamped to in its current state.
func (f Fruit) Bounds(area geometry.PlayArea) (lo, hi fixed.Vec2) {
	if f.State == Held {
		return area.HeldBounds(f.Radius)
	}
	return area.Bounds(f.Radius)
}

// SetPosition moves f to p, clamped to the play area.
func (f *Fruit) SetPosition(p fixed.Vec2, area geometry.PlayArea) {
	lo, hi := f.Bounds(area)
	f.Position = p.Clamp(lo, hi)
}

// HasCollidedWith reports whether the pair (f, i) was already resolved this tick.
func (f Fruit) HasCollidedWith(i int) bool {
	return slices.Contains(f.CollidedWith, i)
}

// Drop releases a Held fruit.
func (f *Fruit) Drop() error {
	next, err := f.State.Drop()
	if err != nil {
		return err
	}
	f.State = next
	return nil
}

// Settle turns a Falling fruit into a Rolling one.
func (f *Fruit) Settle() error {
	next, err := f.State.Settle()
	if err != nil {
		return err
	}
	f.State = next
	return nil
}

// Steer applies one tick of horizontal input to a Held fruit. dir is -1, 0 or 1.
func (f *Fruit) Steer(dir int, step fixed.Num, area geometry.PlayArea) {
	f.Velocity = fixed.Vec2{}
	f.SetPosition(f.Position.Add(fixed.V(step.MulInt(int64(dir)), 0)), area)
}

// Accelerated returns the candidate velocity for this tick: gravity added and
// each axis clamped to the terminal velocity. Held fruits do not move.
func (f Fruit) Accelerated(t Tuning) fixed.Vec2 {
	if !f.State.Free() {
		return fixed.Vec2{}
	}
	tv := fixed.Splat(t.TerminalVelocity)
	return f.Velocity.Add(fixed.V(0, t.Gravity)).Clamp(tv.Neg(), tv)
}

// MoveAndRotate advances f by one tick in isolation: input when Held, otherwise
// gravity and integration. Collisions are the simulation step's job.
func (f *Fruit) MoveAndRotate(dir int, t Tuning, area geometry.PlayArea) {
	if f.State == Held {
		f.Steer(dir, t.InputStep, area)
		return
	}
	f.Velocity = f.Accelerated(t)
	f.SetPosition(f.Position.Add(f.Velocity), area)
	f.Spin(fixed.Vec2{}, t.SpinFactor)
}

// Spin turns f by |v|·factor degrees: counter-clockwise while moving left,
// clockwise otherwise. A fruit whose velocity only cancels its nudge does not spin.
func (f *Fruit) Spin(nudge fixed.Vec2, factor fixed.Num) {
	var delta fixed.Num
	if f.Velocity != nudge.Neg() {
		delta = f.Velocity.Magnitude().Mul(factor)
		if f.Velocity.X >= 0 {
			delta = -delta
		}
	}
	f.Rotation.Speed = delta
	f.Rotation.Angle = WrapAngle(f.Rotation.Angle + delta)
}

// WrapAngle maps a into [0, 360).
func WrapAngle(a fixed.Num) fixed.Num {
	a %= fullTurn
	if a < 0 {
		a += fullTurn
	}
	return a
}

func (f Fruit) String() string {
	return fmt.Sprintf("fruit{%s pos=%s vel=%s}", f.State, f.Position, f.Velocity)
}
