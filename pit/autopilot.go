package pit

// Autopilot plays without a human: it sweeps the aim back and forth across the
// pit and presses drop at a fixed interval. Runs driven by it are reproducible.
type Autopilot struct {
	SweepTicks int // ticks spent moving in one direction
	DropEvery  int // ticks between drop presses
}

// DefaultAutopilot sweeps every two seconds and drops every 40 ticks.
func DefaultAutopilot() Autopilot {
	return Autopilot{SweepTicks: 120, DropEvery: 40}
}

// Intent returns the input for the given tick.
func (a Autopilot) Intent(tick uint64) Intent {
	var in Intent
	if a.SweepTicks > 0 {
		right := (tick/uint64(a.SweepTicks))%2 == 0
		in.MoveRight, in.MoveLeft = right, !right
	}
	if a.DropEvery > 0 {
		in.Drop = tick%uint64(a.DropEvery) == 0
	}
	return in
}
