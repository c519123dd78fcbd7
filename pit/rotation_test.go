package pit

import (
	"testing"

	"github.com/pthm-cable/fruitpit/fixed"
)

func TestRotationFrameIndex(t *testing.T) {
	tests := []struct {
		angle fixed.Num
		want  int
	}{
		{fixed.FromInt(0), 0},
		{fixed.FromFloat(11.24), 0},
		{fixed.FromFloat(11.25), 1},
		{fixed.FromInt(180), 16},
		{fixed.FromInt(359), 31},
		{fixed.FromInt(360), 0},
		{fixed.FromInt(720), 0},
		{fixed.FromInt(-1), 31},
		{fixed.FromFloat(-11.25), 31},
		{fixed.FromFloat(-11.26), 30},
	}

	for _, tt := range tests {
		t.Run(tt.angle.String(), func(t *testing.T) {
			if got := RotationFrameIndex(tt.angle); got != tt.want {
				t.Errorf("RotationFrameIndex(%v) = %d, want %d", tt.angle, got, tt.want)
			}
		})
	}
}

func TestRotationTable(t *testing.T) {
	table := RotationTable()

	if table[0].Degrees != 0 || table[8].Degrees != fixed.FromInt(90) || table[31].Degrees != fixed.FromFloat(348.75) {
		t.Errorf("degrees = %v, %v, %v", table[0].Degrees, table[8].Degrees, table[31].Degrees)
	}

	right := fixed.VInt(1, 0)
	if got := table[0].Apply(right); got != right {
		t.Errorf("frame 0 rotated %v to %v", right, got)
	}
	if got := table[8].Apply(right); got != fixed.VInt(0, 1) {
		t.Errorf("frame 8 rotated %v to %v, want (0, 1)", right, got)
	}
	if got := table[16].Apply(right); got != fixed.VInt(-1, 0) {
		t.Errorf("frame 16 rotated %v to %v, want (-1, 0)", right, got)
	}

	table[0].Degrees = fixed.FromInt(5)
	if RotationTable()[0].Degrees != 0 {
		t.Error("RotationTable() exposed the shared table")
	}
}
