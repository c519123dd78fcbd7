package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID names a toggleable drawing layer.
type OverlayID string

const (
	OverlaySpatialGrid OverlayID = "spatial_grid"
	OverlayVelocity    OverlayID = "velocity"
	OverlayContacts    OverlayID = "contacts"
	OverlayBounds      OverlayID = "bounds"
	OverlaySettle      OverlayID = "settle"
	OverlayAimGuide    OverlayID = "aim_guide"
)

// OverlayGroup is the heading an overlay is listed under.
type OverlayGroup uint8

const (
	GroupPlay    OverlayGroup = iota // helps while playing
	GroupPhysics                     // shows solver internals
)

func (g OverlayGroup) String() string {
	switch g {
	case GroupPlay:
		return "Play"
	case GroupPhysics:
		return "Physics"
	}
	return "Other"
}

// Overlay describes one layer and the key that toggles it.
type Overlay struct {
	ID          OverlayID
	Name        string
	Description string
	Key         int32 // raylib key code, 0 for none
	Group       OverlayGroup
}

// KeyLabel is the printable key, e.g. "G".
func (o Overlay) KeyLabel() string {
	if o.Key >= rl.KeyA && o.Key <= rl.KeyZ {
		return string(rune(o.Key))
	}
	return ""
}

var defaultOverlays = []Overlay{
	{OverlayAimGuide, "Aim Guide", "Line from the aim cursor to the floor", rl.KeyA, GroupPlay},
	{OverlaySettle, "Settle Timers", "Tint falling fruits by remaining settle time", rl.KeyT, GroupPlay},
	{OverlaySpatialGrid, "Spatial Grid", "Broadphase cells", rl.KeyG, GroupPhysics},
	{OverlayVelocity, "Velocity", "Velocity of every free fruit", rl.KeyV, GroupPhysics},
	{OverlayContacts, "Contacts", "Pairs resolved on the last tick", rl.KeyC, GroupPhysics},
	{OverlayBounds, "Bounds", "Box each fruit centre is clamped to", rl.KeyB, GroupPhysics},
}

// OverlayRegistry holds the overlays in display order and which are on.
type OverlayRegistry struct {
	overlays []Overlay
	enabled  map[OverlayID]bool
}

// NewOverlayRegistry returns a registry of the built-in overlays, all off.
func NewOverlayRegistry() *OverlayRegistry {
	r := &OverlayRegistry{enabled: make(map[OverlayID]bool)}
	for _, o := range defaultOverlays {
		r.Register(o)
	}
	return r
}

// Register appends o. Registering an existing ID replaces its description.
func (r *OverlayRegistry) Register(o Overlay) {
	for i := range r.overlays {
		if r.overlays[i].ID == o.ID {
			r.overlays[i] = o
			return
		}
	}
	r.overlays = append(r.overlays, o)
}

// Toggle flips id and returns its new state. Unknown IDs stay off.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	if !r.known(id) {
		return false
	}
	r.enabled[id] = !r.enabled[id]
	return r.enabled[id]
}

// SetEnabled turns id on or off.
func (r *OverlayRegistry) SetEnabled(id OverlayID, on bool) {
	if r.known(id) {
		r.enabled[id] = on
	}
}

func (r *OverlayRegistry) IsEnabled(id OverlayID) bool { return r.enabled[id] }

// All returns every overlay in display order.
func (r *OverlayRegistry) All() []Overlay { return r.overlays }

// Groups returns the groups that have overlays, in first-seen order.
func (r *OverlayRegistry) Groups() []OverlayGroup {
	var groups []OverlayGroup
	seen := map[OverlayGroup]bool{}
	for _, o := range r.overlays {
		if !seen[o.Group] {
			seen[o.Group] = true
			groups = append(groups, o.Group)
		}
	}
	return groups
}

// InGroup returns the overlays listed under g.
func (r *OverlayRegistry) InGroup(g OverlayGroup) []Overlay {
	var out []Overlay
	for _, o := range r.overlays {
		if o.Group == g {
			out = append(out, o)
		}
	}
	return out
}

func (r *OverlayRegistry) known(id OverlayID) bool {
	for _, o := range r.overlays {
		if o.ID == id {
			return true
		}
	}
	return false
}
