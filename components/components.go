// Package components defines the ECS components a fruit is stored as.
package components

import (
	"slices"

	"github.com/pthm-cable/fruitpit/fixed"
	"github.com/pthm-cable/fruitpit/fruit"
)

// Split breaks a fruit into its components.
func Split(f fruit.Fruit) (Position, Velocity, Rotation, Body, Contacts) {
	return Position(f.Position),
		Velocity(f.Velocity),
		Rotation{Angle: f.Rotation.Angle, Speed: f.Rotation.Speed},
		Body{Radius: f.Radius},
		Contacts{With: slices.Clone(f.CollidedWith)}
}

// Assemble rebuilds a fruit value from its components.
func Assemble(pos *Position, vel *Velocity, rot *Rotation, body *Body, life *Lifecycle, contacts *Contacts) fruit.Fruit {
	return fruit.Fruit{
		Position:     fixed.Vec2(*pos),
		Radius:       body.Radius,
		Rotation:     fruit.Rotation{Angle: rot.Angle, Speed: rot.Speed},
		State:        life.State,
		Velocity:     fixed.Vec2(*vel),
		SettleTimer:  life.Settle,
		CollidedWith: slices.Clone(contacts.With),
	}
}
