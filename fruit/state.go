package fruit

import (
	"errors"
	"fmt"
)

// State is the lifecycle stage of a fruit.
type State uint8

const (
	Held    State = iota // under player control, no gravity
	Falling              // dropped, gravity applies
	Rolling              // settled; terminal
)

func (s State) String() string {
	switch s {
	case Held:
		return "held"
	case Falling:
		return "falling"
	case Rolling:
		return "rolling"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// ErrInvalidTransition is returned when a transition is requested from a state
// that does not allow it.
var ErrInvalidTransition = errors.New("invalid fruit state transition")

// Drop returns the state after a drop signal. Only Held fruits can be dropped.
func (s State) Drop() (State, error) {
	switch s {
	case Held:
		return Falling, nil
	case Falling, Rolling:
		return s, fmt.Errorf("drop from %s: %w", s, ErrInvalidTransition)
	}
	return s, fmt.Errorf("drop from %s: %w", s, ErrInvalidTransition)
}

// Settle returns the state after the settle timer expires. Only Falling fruits settle.
func (s State) Settle() (State, error) {
	switch s {
	case Falling:
		return Rolling, nil
	case Held, Rolling:
		return s, fmt.Errorf("settle from %s: %w", s, ErrInvalidTransition)
	}
	return s, fmt.Errorf("settle from %s: %w", s, ErrInvalidTransition)
}

// Free reports whether gravity and collisions apply to the state.
func (s State) Free() bool {
	switch s {
	case Falling, Rolling:
		return true
	case Held:
		return false
	}
	return false
}
