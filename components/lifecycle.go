package components

import "github.com/pthm-cable/fruitpit/fruit"

// Lifecycle tracks where a fruit is in the Held → Falling → Rolling machine.
type Lifecycle struct {
	Index  int32 // spawn order, also the arena index
	State  fruit.State
	Settle int32 // contact ticks left before settling
}

// Contacts lists the fruits this one resolved a collision with on the last tick.
type Contacts struct {
	With []int
}
