// Package fixed provides the 24.8 fixed-point scalar and 2D vector used by all physics math.
package fixed

import (
	"fmt"
	"math"
	"math/bits"
)

// 24.8 fixed point constants. Values are stored in an int64 so that products of
// pit-scale quantities (squared distances, discriminants) never overflow.
const (
	Shift = 8
	Scale = 1 << Shift
	Mask  = Scale - 1
	Half  = 1 << (Shift - 1)
)

// Num is a signed fixed-point number with Shift fractional bits.
type Num int64

// Common values.
const (
	Zero Num = 0
	One  Num = Scale
)

// --- Conversion ---

func FromInt(i int) Num { return Num(int64(i) << Shift) }

// FromFloat rounds f to the nearest representable value.
// Only used for tuning constants; the simulation itself never touches floats.
func FromFloat(f float64) Num { return Num(math.Round(f * Scale)) }

// FromRaw wraps raw fixed-point bits.
func FromRaw(raw int64) Num { return Num(raw) }

func (n Num) Raw() int64       { return int64(n) }
func (n Num) Float() float64   { return float64(n) / Scale }
func (n Num) Int() int         { return int(int64(n) >> Shift) }
func (n Num) Floor() Num       { return n &^ Mask }
func (n Num) String() string   { return fmt.Sprintf("%.4f", n.Float()) }
func (n Num) Frac() Num        { return n & Mask }
func (n Num) IsNegative() bool { return n < 0 }

// --- Arithmetic ---

// Mul multiplies two fixed-point values, truncating toward zero.
func Mul(a, b Num) Num {
	if a == 0 || b == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := abs64(int64(a)), abs64(int64(b))

	hi, lo := bits.Mul64(ua, ub)
	result := int64((hi << (64 - Shift)) | (lo >> Shift))

	if negative {
		return Num(-result)
	}
	return Num(result)
}

// Div divides a by b, truncating toward zero. Division by zero yields 0.
func Div(a, b Num) Num {
	if b == 0 || a == 0 {
		return 0
	}
	negative := (a < 0) != (b < 0)
	ua, ub := abs64(int64(a)), abs64(int64(b))

	// a << Shift as 128-bit
	hi := ua >> (64 - Shift)
	lo := ua << Shift
	if hi >= ub {
		if negative {
			return math.MinInt64
		}
		return math.MaxInt64
	}

	quo, _ := bits.Div64(hi, lo, ub)
	if quo > math.MaxInt64 {
		if negative {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	if negative {
		return Num(-int64(quo))
	}
	return Num(quo)
}

// Mul is the method form of Mul.
func (n Num) Mul(o Num) Num { return Mul(n, o) }

// Div is the method form of Div.
func (n Num) Div(o Num) Num { return Div(n, o) }

// MulInt scales by an integer without rounding.
func (n Num) MulInt(i int64) Num { return n * Num(i) }

// DivInt divides by an integer, truncating toward zero. Division by zero yields 0.
func (n Num) DivInt(i int64) Num {
	if i == 0 {
		return 0
	}
	return n / Num(i)
}

// Abs returns the absolute value.
func Abs(n Num) Num {
	if n < 0 {
		return -n
	}
	return n
}

// Sign returns -One, 0 or One.
func Sign(n Num) Num {
	switch {
	case n < 0:
		return -One
	case n > 0:
		return One
	}
	return 0
}

func Min(a, b Num) Num {
	if a < b {
		return a
	}
	return b
}

func Max(a, b Num) Num {
	if a > b {
		return a
	}
	return b
}

// Clamp limits v to [lo, hi]. lo wins if the range is inverted.
func Clamp(v, lo, hi Num) Num {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Sqrt returns the square root of x, or 0 for x <= 0.
// sqrt(raw/S) = sqrt(raw*S)/S, so the root of raw<<Shift is already in fixed-point units.
func Sqrt(x Num) Num {
	if x <= 0 {
		return 0
	}
	return Num(isqrt(uint64(x) << Shift))
}

// isqrt returns floor(sqrt(n)) using Newton iteration seeded from the bit length.
func isqrt(n uint64) uint64 {
	if n < 2 {
		return n
	}
	x := uint64(1) << ((bits.Len64(n) + 1) / 2)
	for {
		y := (x + n/x) >> 1
		if y >= x {
			return x
		}
		x = y
	}
}

func abs64(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}
