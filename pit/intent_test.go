package pit

import "testing"

func TestIntent_Direction(t *testing.T) {
	tests := []struct {
		name string
		in   Intent
		want int
	}{
		{"none", Intent{}, 0},
		{"left", Intent{MoveLeft: true}, -1},
		{"right", Intent{MoveRight: true}, 1},
		{"both", Intent{MoveLeft: true, MoveRight: true}, 0},
		{"drop only", Intent{Drop: true}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Direction(); got != tt.want {
				t.Errorf("Direction() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestDropLatch(t *testing.T) {
	var l DropLatch
	pressed := []bool{false, true, true, true, false, true, false, false, true}
	want := []bool{false, true, false, false, false, true, false, false, true}

	for i, p := range pressed {
		if got := l.Update(p); got != want[i] {
			t.Errorf("tick %d: Update(%v) = %v, want %v", i, p, got, want[i])
		}
	}
}

func TestEventKind_String(t *testing.T) {
	for kind, want := range map[EventKind]string{
		EventDrop:     "drop",
		EventSettle:   "settle",
		EventSpawn:    "spawn",
		EventKind(99): "unknown",
	} {
		if got := kind.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", kind, got, want)
		}
	}
}

func TestAutopilot(t *testing.T) {
	a := Autopilot{SweepTicks: 3, DropEvery: 4}

	tests := []struct {
		tick uint64
		want Intent
	}{
		{0, Intent{MoveRight: true, Drop: true}},
		{1, Intent{MoveRight: true}},
		{3, Intent{MoveLeft: true}},
		{4, Intent{MoveLeft: true, Drop: true}},
		{6, Intent{MoveRight: true}},
	}
	for _, tt := range tests {
		if got := a.Intent(tt.tick); got != tt.want {
			t.Errorf("Intent(%d) = %+v, want %+v", tt.tick, got, tt.want)
		}
	}

	if got := (Autopilot{}).Intent(0); got != (Intent{}) {
		t.Errorf("zero autopilot pressed %+v", got)
	}
}
