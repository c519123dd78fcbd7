package components

import "github.com/pthm-cable/fruitpit/fixed"

// Position is a fruit's centre in pit coordinates.
type Position struct {
	X, Y fixed.Num
}

// Velocity is a fruit's displacement per tick.
type Velocity struct {
	X, Y fixed.Num
}

// Rotation is the presentation-only spin of a fruit.
type Rotation struct {
	Angle fixed.Num // degrees, [0, 360)
	Speed fixed.Num // degrees per tick
}

// Vec returns p as a vector.
func (p Position) Vec() fixed.Vec2 { return fixed.Vec2(p) }

// Vec returns v as a vector.
func (v Velocity) Vec() fixed.Vec2 { return fixed.Vec2(v) }
