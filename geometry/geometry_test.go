package geometry

import (
	"testing"

	"github.com/pthm-cable/fruitpit/fixed"
)

func circle(x, y int, r int32) Circle {
	return Circle{Position: fixed.VInt(x, y), Radius: r}
}

func TestCircleIntersection(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Circle
		want   fixed.Vec2
		wantOK bool
	}{
		{"overlapping on x", circle(10, 0, 8), circle(0, 0, 8), fixed.VInt(6, 0), true},
		{"points from b toward a", circle(0, 0, 8), circle(0, 10, 8), fixed.VInt(0, -6), true},
		{"exactly touching", circle(16, 0, 8), circle(0, 0, 8), fixed.Vec2{}, false},
		{"apart", circle(40, 0, 8), circle(0, 0, 8), fixed.Vec2{}, false},
		{"coincident has no direction", circle(5, 5, 8), circle(5, 5, 8), fixed.Vec2{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CircleIntersection(tt.a, tt.b)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("vector = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIntersectionSeparates(t *testing.T) {
	a := Circle{Position: fixed.VFloat(100, 140), Radius: 8}
	b := Circle{Position: fixed.VFloat(107, 136), Radius: 8}

	n, ok := CircleIntersection(a, b)
	if !ok {
		t.Fatal("expected overlap")
	}
	a.Position = a.Position.Add(n)
	if rest, ok := CircleIntersection(a, b); ok && rest.Magnitude() > fixed.FromFloat(0.05) {
		t.Errorf("still overlapping by %v after correction", rest.Magnitude())
	}
}

func TestCircleInWall(t *testing.T) {
	tests := []struct {
		name   string
		c      Circle
		wall   Wall
		want   fixed.Vec2
		wantOK bool
	}{
		{"left wall", circle(65, 100, 8), HorizontalWall(62, Left), fixed.VInt(5, 0), true},
		{"clear of left wall", circle(80, 100, 8), HorizontalWall(62, Left), fixed.Vec2{}, false},
		{"right wall", circle(175, 100, 8), HorizontalWall(179, Right), fixed.VInt(-4, 0), true},
		{"floor", circle(100, 145, 8), VerticalWall(148, Bottom), fixed.VInt(0, -5), true},
		{"resting on floor", circle(100, 140, 8), VerticalWall(148, Bottom), fixed.Vec2{}, false},
		{"top is never enforced", circle(100, 0, 8), VerticalWall(4, Top), fixed.Vec2{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := CircleInWall(tt.c, tt.wall)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("CircleInWall = %v, %v; want %v, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestInPlayfieldFirstMatchWins(t *testing.T) {
	area := NewPlayArea(62, 179, 148, 160)

	// In the floor and the left wall at once: only the floor correction is returned.
	got, ok := area.InPlayfield(circle(65, 145, 8))
	if !ok || got != fixed.VInt(0, -5) {
		t.Errorf("corner = %v, %v; want floor correction", got, ok)
	}

	got, ok = area.InPlayfield(circle(65, 100, 8))
	if !ok || got != fixed.VInt(5, 0) {
		t.Errorf("left = %v, %v", got, ok)
	}

	got, ok = area.InPlayfield(circle(176, 100, 8))
	if !ok || got != fixed.VInt(-5, 0) {
		t.Errorf("right = %v, %v", got, ok)
	}

	if _, ok := area.InPlayfield(circle(120, 60, 8)); ok {
		t.Error("centre of pit should not touch any wall")
	}
}

func TestBounds(t *testing.T) {
	area := NewPlayArea(62, 179, 148, 160)
	lo, hi := area.Bounds(8)
	if lo != fixed.VInt(70, 8) || hi != fixed.VInt(171, 152) {
		t.Errorf("Bounds(8) = %v..%v", lo, hi)
	}
	lo, hi = area.HeldBounds(8)
	if lo != fixed.VInt(70, 0) || hi != fixed.VInt(171, 160) {
		t.Errorf("HeldBounds(8) = %v..%v", lo, hi)
	}
	if !area.Contains(fixed.VInt(100, 100), 8) || area.Contains(fixed.VInt(60, 100), 8) {
		t.Error("Contains mismatch")
	}
}

func TestTimeToCollision(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Ball
		want   fixed.Num
		wantOK bool
	}{
		{
			name:   "closing gap",
			a:      Ball{Position: fixed.VInt(0, 0), Velocity: fixed.VInt(2, 0), Radius: 8},
			b:      Ball{Position: fixed.VInt(20, 0), Radius: 8},
			want:   fixed.FromInt(2),
			wantOK: true,
		},
		{
			name:   "already overlapping is negative",
			a:      Ball{Position: fixed.VInt(0, 0), Velocity: fixed.VInt(1, 0), Radius: 8},
			b:      Ball{Position: fixed.VInt(10, 0), Radius: 8},
			want:   fixed.FromInt(-6),
			wantOK: true,
		},
		{
			name:   "no relative motion",
			a:      Ball{Position: fixed.VInt(0, 0), Velocity: fixed.VInt(1, 1), Radius: 8},
			b:      Ball{Position: fixed.VInt(4, 0), Velocity: fixed.VInt(1, 1), Radius: 8},
			want:   0,
			wantOK: false,
		},
		{
			name:   "paths never meet",
			a:      Ball{Position: fixed.VInt(0, 0), Velocity: fixed.VInt(1, 0), Radius: 8},
			b:      Ball{Position: fixed.VInt(0, 40), Radius: 8},
			want:   0,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Collision(tt.a, tt.b)
			if ok != tt.wantOK {
				t.Errorf("ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("t = %v, want %v", got, tt.want)
			}
			if TimeToCollision(tt.a, tt.b) != got {
				t.Error("TimeToCollision disagrees with Collision")
			}
		})
	}
}

func TestTimeToCollisionIdenticalPositions(t *testing.T) {
	b := Ball{Position: fixed.VInt(90, 16), Radius: 8}
	if got := TimeToCollision(b, b); got != 0 {
		t.Errorf("identical balls = %v, want 0", got)
	}
}
