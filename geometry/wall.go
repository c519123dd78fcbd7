package geometry

import "github.com/pthm-cable/fruitpit/fixed"

// Axis says which coordinate a wall bounds.
// Horizontal walls sit at an x coordinate, Vertical walls at a y coordinate.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Side is the side of the play area a wall closes.
type Side uint8

const (
	Left Side = iota
	Right
	Top
	Bottom
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	}
	return "unknown"
}

// Wall is one boundary of the play area.
type Wall struct {
	Axis Axis
	At   int32
	Side Side
}

// HorizontalWall returns a wall at x closing the given side (Left or Right).
func HorizontalWall(x int32, side Side) Wall {
	return Wall{Axis: Horizontal, At: x, Side: side}
}

// VerticalWall returns a wall at y closing the given side (Top or Bottom).
func VerticalWall(y int32, side Side) Wall {
	return Wall{Axis: Vertical, At: y, Side: side}
}

// CircleInWall returns the correction that pushes c out of w, if c penetrates it.
// Top walls are never enforced.
func CircleInWall(c Circle, w Wall) (fixed.Vec2, bool) {
	at := fixed.FromInt(int(w.At))
	r := c.radius()

	switch {
	case w.Axis == Horizontal && w.Side == Left:
		p := at - (c.Position.X - r)
		if p > 0 {
			return fixed.V(p, 0), true
		}
	case w.Axis == Horizontal && w.Side == Right:
		p := (c.Position.X + r) - at
		if p > 0 {
			return fixed.V(-p, 0), true
		}
	case w.Axis == Vertical && w.Side == Bottom:
		p := (c.Position.Y + r) - at
		if p > 0 {
			return fixed.V(0, -p), true
		}
	}
	return fixed.Vec2{}, false
}

// PlayArea is the pit: left wall, right wall and floor. There is no ceiling;
// Height only bounds how far below the floor a position may be clamped.
type PlayArea struct {
	Left   Wall
	Right  Wall
	Floor  Wall
	Height int32
}

// NewPlayArea builds the pit from wall coordinates.
func NewPlayArea(left, right, floor, height int32) PlayArea {
	return PlayArea{
		Left:   HorizontalWall(left, Left),
		Right:  HorizontalWall(right, Right),
		Floor:  VerticalWall(floor, Bottom),
		Height: height,
	}
}

// InPlayfield checks the floor, then the left wall, then the right wall and
// returns the first penetration found. Corrections are not combined.
func (a PlayArea) InPlayfield(c Circle) (fixed.Vec2, bool) {
	if n, ok := CircleInWall(c, a.Floor); ok {
		return n, true
	}
	if n, ok := CircleInWall(c, a.Left); ok {
		return n, true
	}
	return CircleInWall(c, a.Right)
}

// Bounds returns the clamp rectangle for a free fruit of the given radius.
func (a PlayArea) Bounds(radius int32) (lo, hi fixed.Vec2) {
	lo = fixed.VInt(int(a.Left.At+radius), int(radius))
	hi = fixed.VInt(int(a.Right.At-radius), int(a.Height-radius))
	return lo, hi
}

// HeldBounds returns the clamp rectangle for a fruit under player control.
func (a PlayArea) HeldBounds(radius int32) (lo, hi fixed.Vec2) {
	lo = fixed.VInt(int(a.Left.At+radius), 0)
	hi = fixed.VInt(int(a.Right.At-radius), int(a.Height))
	return lo, hi
}

// Contains reports whether p lies inside Bounds(radius).
func (a PlayArea) Contains(p fixed.Vec2, radius int32) bool {
	lo, hi := a.Bounds(radius)
	return p.X >= lo.X && p.X <= hi.X && p.Y >= lo.Y && p.Y <= hi.Y
}
