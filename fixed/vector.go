package fixed

import "fmt"

// Vec2 is a 2D vector of fixed-point components.
type Vec2 struct {
	X, Y Num
}

// V builds a vector from two scalars.
func V(x, y Num) Vec2 { return Vec2{X: x, Y: y} }

// VInt builds a vector from integer components.
func VInt(x, y int) Vec2 { return Vec2{X: FromInt(x), Y: FromInt(y)} }

// VFloat builds a vector from float components. Tests and tuning only.
func VFloat(x, y float64) Vec2 { return Vec2{X: FromFloat(x), Y: FromFloat(y)} }

// Splat returns a vector with both components equal to x.
func Splat(x Num) Vec2 { return Vec2{X: x, Y: x} }

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec2) Neg() Vec2       { return Vec2{X: -v.X, Y: -v.Y} }
func (v Vec2) IsZero() bool    { return v.X == 0 && v.Y == 0 }

// Scale multiplies both components by s.
func (v Vec2) Scale(s Num) Vec2 { return Vec2{X: Mul(v.X, s), Y: Mul(v.Y, s)} }

// Div divides both components by s. Division by zero yields the zero vector.
func (v Vec2) Div(s Num) Vec2 { return Vec2{X: Div(v.X, s), Y: Div(v.Y, s)} }

// Dot returns v·o.
func (v Vec2) Dot(o Vec2) Num { return Mul(v.X, o.X) + Mul(v.Y, o.Y) }

// MagnitudeSquared returns |v|² in fixed-point units.
func (v Vec2) MagnitudeSquared() Num { return v.Dot(v) }

// Magnitude returns |v|. The root is taken over the raw components directly,
// so vectors too short for MagnitudeSquared to resolve still get a length.
func (v Vec2) Magnitude() Num {
	x, y := abs64(int64(v.X)), abs64(int64(v.Y))
	return Num(isqrt(x*x + y*y))
}

// Normalize returns the unit vector of v, or the zero vector when |v| is zero.
// Callers must treat a zero result as "no direction".
func (v Vec2) Normalize() Vec2 {
	mag := v.Magnitude()
	if mag == 0 {
		return Vec2{}
	}
	return v.Div(mag)
}

// Clamp limits each component to the matching component range of lo and hi.
func (v Vec2) Clamp(lo, hi Vec2) Vec2 {
	return Vec2{X: Clamp(v.X, lo.X, hi.X), Y: Clamp(v.Y, lo.Y, hi.Y)}
}

// Floor floors both components.
func (v Vec2) Floor() Vec2 { return Vec2{X: v.X.Floor(), Y: v.Y.Floor()} }

func (v Vec2) String() string { return fmt.Sprintf("(%s, %s)", v.X, v.Y) }

// ClampVec is the free-function form of Vec2.Clamp.
func ClampVec(v, lo, hi Vec2) Vec2 { return v.Clamp(lo, hi) }
