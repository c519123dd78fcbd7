package pit

import "github.com/pthm-cable/fruitpit/fixed"

// Intent is the player's input for one tick.
type Intent struct {
	MoveLeft  bool
	MoveRight bool
	Drop      bool // edge-triggered: true only on the tick the button goes down
}

// Direction returns -1, 0 or 1. Holding both directions cancels out.
func (in Intent) Direction() int {
	dir := 0
	if in.MoveLeft {
		dir--
	}
	if in.MoveRight {
		dir++
	}
	return dir
}

// DropLatch turns a level signal (button held) into a one-tick drop.
type DropLatch struct {
	down bool
}

// Update returns true only on the first tick pressed is seen after a release.
func (l *DropLatch) Update(pressed bool) bool {
	fire := pressed && !l.down
	l.down = pressed
	return fire
}

// EventKind identifies what happened during a step.
type EventKind uint8

const (
	EventDrop   EventKind = iota // a Held fruit was released
	EventSettle                  // a Falling fruit became Rolling
	EventSpawn                   // a new fruit entered the pit
)

func (k EventKind) String() string {
	switch k {
	case EventDrop:
		return "drop"
	case EventSettle:
		return "settle"
	case EventSpawn:
		return "spawn"
	}
	return "unknown"
}

// Event is one lifecycle change produced by Step.
type Event struct {
	Kind     EventKind
	Tick     uint64
	Index    int
	Position fixed.Vec2
}
