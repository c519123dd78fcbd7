package fixed

import (
	"math"
	"testing"
)

func near(a Num, want float64, tol float64) bool {
	return math.Abs(a.Float()-want) <= tol
}

func TestMulDiv(t *testing.T) {
	tests := []struct {
		name string
		a, b float64
		mul  float64
		div  float64
	}{
		{"positive", 2.5, 4, 10, 0.625},
		{"negative lhs", -2.5, 4, -10, -0.625},
		{"both negative", -3, -0.5, 1.5, 6},
		{"fraction", 0.98, 6, 5.88, 0.1633},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := FromFloat(tt.a), FromFloat(tt.b)
			if got := Mul(a, b); !near(got, tt.mul, 0.02) {
				t.Errorf("Mul(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.mul)
			}
			if got := Div(a, b); !near(got, tt.div, 0.01) {
				t.Errorf("Div(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.div)
			}
		})
	}
}

func TestMulIsSymmetricInSign(t *testing.T) {
	a := FromFloat(5.1)
	b := FromFloat(-0.25)
	if Mul(a, b) != -Mul(a, -b) {
		t.Errorf("Mul sign asymmetry: %v vs %v", Mul(a, b), -Mul(a, -b))
	}
}

func TestDivByZero(t *testing.T) {
	if got := Div(FromInt(3), 0); got != 0 {
		t.Errorf("Div by zero = %v, want 0", got)
	}
	if got := VInt(3, 4).Div(0); !got.IsZero() {
		t.Errorf("Vec2.Div by zero = %v, want zero vector", got)
	}
}

func TestSqrt(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{-4, 0},
		{1, 1},
		{4, 2},
		{2, 1.4142},
		{256, 16},
		{0.25, 0.5},
	}
	for _, tt := range tests {
		if got := Sqrt(FromFloat(tt.in)); !near(got, tt.want, 0.01) {
			t.Errorf("Sqrt(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFloorAndInt(t *testing.T) {
	if got := FromFloat(-1.5).Floor(); got != FromInt(-2) {
		t.Errorf("Floor(-1.5) = %v, want -2", got)
	}
	if got := FromFloat(2.75).Int(); got != 2 {
		t.Errorf("Int(2.75) = %d, want 2", got)
	}
	if got := FromFloat(-0.25).Int(); got != -1 {
		t.Errorf("Int(-0.25) = %d, want -1", got)
	}
}

func TestClamp(t *testing.T) {
	lo, hi := FromInt(-6), FromInt(6)
	if got := Clamp(FromInt(9), lo, hi); got != hi {
		t.Errorf("Clamp high = %v", got)
	}
	if got := Clamp(FromInt(-9), lo, hi); got != lo {
		t.Errorf("Clamp low = %v", got)
	}
	v := VInt(10, -10).Clamp(Splat(lo), Splat(hi))
	if v != VInt(6, -6) {
		t.Errorf("Vec2.Clamp = %v, want (6, -6)", v)
	}
}

func TestVectorMagnitude(t *testing.T) {
	if got := VInt(3, 4).Magnitude(); got != FromInt(5) {
		t.Errorf("|(3,4)| = %v, want 5", got)
	}
	if got := VInt(3, 4).MagnitudeSquared(); got != FromInt(25) {
		t.Errorf("|(3,4)|² = %v, want 25", got)
	}
	// Too small for the squared form to resolve, but still has a length.
	tiny := V(FromRaw(2), 0)
	if tiny.MagnitudeSquared() != 0 {
		t.Fatalf("expected tiny squared magnitude to underflow")
	}
	if tiny.Magnitude() != FromRaw(2) {
		t.Errorf("tiny magnitude = %v, want raw 2", tiny.Magnitude())
	}
}

func TestNormalize(t *testing.T) {
	n := VInt(10, 0).Normalize()
	if n != V(One, 0) {
		t.Errorf("Normalize((10,0)) = %v, want (1,0)", n)
	}

	n = VInt(-3, 4).Normalize()
	if !near(n.X, -0.6, 0.01) || !near(n.Y, 0.8, 0.01) {
		t.Errorf("Normalize((-3,4)) = %v", n)
	}

	if got := (Vec2{}).Normalize(); !got.IsZero() {
		t.Errorf("Normalize(zero) = %v, want zero", got)
	}
}

func TestSplat(t *testing.T) {
	if got := Splat(FromInt(6)); got.X != got.Y || got.X != FromInt(6) {
		t.Errorf("Splat(6) = %v", got)
	}
}
