package pit

import (
	"math"

	"github.com/pthm-cable/fruitpit/fixed"
)

// RotationFrames is the number of precomputed fruit orientations.
const RotationFrames = 32

// RotationFrame is one precomputed orientation: its angle and the 2×2 matrix
// that rotates sprite-local offsets by it.
type RotationFrame struct {
	Degrees fixed.Num
	Matrix  [2][2]fixed.Num // row-major: {{cos, -sin}, {sin, cos}}
}

// Apply rotates v by the frame's angle.
func (r RotationFrame) Apply(v fixed.Vec2) fixed.Vec2 {
	m := r.Matrix
	return fixed.V(
		fixed.Mul(m[0][0], v.X)+fixed.Mul(m[0][1], v.Y),
		fixed.Mul(m[1][0], v.X)+fixed.Mul(m[1][1], v.Y),
	)
}

var rotationTable [RotationFrames]RotationFrame

func init() {
	for i := range rotationTable {
		deg := 360.0 * float64(i) / RotationFrames
		s, c := math.Sincos(deg * math.Pi / 180)
		rotationTable[i] = RotationFrame{
			Degrees: fixed.FromFloat(deg),
			Matrix: [2][2]fixed.Num{
				{fixed.FromFloat(c), fixed.FromFloat(-s)},
				{fixed.FromFloat(s), fixed.FromFloat(c)},
			},
		}
	}
}

// RotationTable returns a copy of the shared orientation table.
func RotationTable() [RotationFrames]RotationFrame { return rotationTable }

// RotationFrameIndex maps an angle in degrees to its frame:
// floor(angle / (360/32)) mod 32, never negative.
func RotationFrameIndex(angle fixed.Num) int {
	num := angle.Raw() * RotationFrames
	den := fixed.FromInt(360).Raw()

	q := num / den
	if num%den != 0 && num < 0 {
		q--
	}
	idx := int(q % RotationFrames)
	if idx < 0 {
		idx += RotationFrames
	}
	return idx
}
