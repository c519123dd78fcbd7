package systems

import (
	"slices"
	"testing"

	"github.com/pthm-cable/fruitpit/fixed"
)

// TestQueryMatchesBruteForce verifies the grid finds exactly the indices a full
// scan would, in ascending order.
func TestQueryMatchesBruteForce(t *testing.T) {
	positions := []fixed.Vec2{
		fixed.VInt(70, 140),
		fixed.VInt(86, 140),
		fixed.VInt(100, 20),
		fixed.VInt(171, 152),
		fixed.VInt(78, 126),
		fixed.VInt(130, 90),
		fixed.VFloat(94.5, 139.25),
	}

	g := NewSpatialGrid(240, 160, 32)
	// Insert out of order so sorting is exercised.
	for i := len(positions) - 1; i >= 0; i-- {
		g.Insert(i, positions[i])
	}
	if g.Len() != len(positions) {
		t.Fatalf("Len = %d, want %d", g.Len(), len(positions))
	}

	radius := fixed.FromInt(40)
	for i, p := range positions {
		var want []int
		for j, q := range positions {
			if j != i && q.Sub(p).Magnitude() <= radius {
				want = append(want, j)
			}
		}

		got := g.QueryRadiusInto(nil, p, radius, i)
		if !slices.Equal(got, want) {
			t.Errorf("query around %d = %v, want %v", i, got, want)
		}
	}
}

func TestQueryAppendsToDst(t *testing.T) {
	g := NewSpatialGrid(240, 160, 32)
	g.Insert(0, fixed.VInt(100, 100))
	g.Insert(1, fixed.VInt(104, 100))

	dst := []int{42}
	dst = g.QueryRadiusInto(dst, fixed.VInt(100, 100), fixed.FromInt(8), 0)
	if !slices.Equal(dst, []int{42, 1}) {
		t.Errorf("dst = %v, want [42 1]", dst)
	}
}

func TestClearAndOutOfRange(t *testing.T) {
	g := NewSpatialGrid(240, 160, 32)
	g.Insert(0, fixed.VInt(-50, 500))
	g.Insert(1, fixed.VInt(0, 159))

	got := g.QueryRadiusInto(nil, fixed.VInt(0, 159), fixed.FromInt(400), -1)
	if !slices.Equal(got, []int{0, 1}) {
		t.Errorf("clamped query = %v", got)
	}

	g.Clear()
	if g.Len() != 0 {
		t.Errorf("Len after Clear = %d", g.Len())
	}
}
