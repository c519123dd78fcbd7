// Package geometry holds the circle and wall shapes the pit is built from and
// the intersection math between them.
package geometry

import "github.com/pthm-cable/fruitpit/fixed"

// Circle is a collision snapshot of a fruit. It is never stored.
type Circle struct {
	Position fixed.Vec2
	Radius   int32
	Velocity fixed.Vec2
}

func (c Circle) radius() fixed.Num { return fixed.FromInt(int(c.Radius)) }

// Moved returns the circle advanced by its own velocity.
func (c Circle) Moved() Circle {
	c.Position = c.Position.Add(c.Velocity)
	return c
}

// CircleIntersection returns the penetration vector of a into b, pointing from b
// toward a with length equal to the overlap. Adding it to a's position separates
// the two. Coincident centres overlap but have no direction, so the vector is zero.
func CircleIntersection(a, b Circle) (fixed.Vec2, bool) {
	d := a.Position.Sub(b.Position)
	overlap := a.radius() + b.radius() - d.Magnitude()
	if overlap <= 0 {
		return fixed.Vec2{}, false
	}
	return d.Normalize().Scale(overlap), true
}

// Ball is a moving circle for time-of-impact queries.
type Ball struct {
	Position fixed.Vec2
	Velocity fixed.Vec2
	Radius   int32
}

// BallFromCircle converts a collision snapshot.
func BallFromCircle(c Circle) Ball {
	return Ball{Position: c.Position, Velocity: c.Velocity, Radius: c.Radius}
}

// Collision solves |Δp + Δv·t| = ra + rb for the entry time t, in ticks.
//
// With no relative motion t is 0 and ok is false. A negative discriminant means
// the paths never meet; the root term is clamped to 0 (t is then the time of
// closest approach) and ok is false. A negative t means the balls already overlap.
func Collision(a, b Ball) (t fixed.Num, ok bool) {
	dv := a.Velocity.Sub(b.Velocity)
	dp := a.Position.Sub(b.Position)
	r := fixed.FromInt(int(a.Radius + b.Radius))

	qa := dv.Dot(dv)
	if qa == 0 {
		return 0, false
	}
	qb := dp.Dot(dv).MulInt(2)
	qc := dp.Dot(dp) - fixed.Mul(r, r)

	disc := fixed.Mul(qb, qb) - fixed.Mul(qa, qc).MulInt(4)
	ok = disc >= 0
	root := fixed.Sqrt(fixed.Max(disc, 0))

	return fixed.Div(-qb-root, qa.MulInt(2)), ok
}

// TimeToCollision returns the entry time from Collision, discarding the
// degenerate-case flag.
func TimeToCollision(a, b Ball) fixed.Num {
	t, _ := Collision(a, b)
	return t
}
