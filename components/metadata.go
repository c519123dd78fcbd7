package components

import "fmt"

// FieldDescriptor describes a component field for UI display.
type FieldDescriptor struct {
	ID     string  // Unique identifier
	Label  string  // Display name
	Format string  // Printf format (e.g., "%.2f")
	Min    float32 // Minimum value (for bars)
	Max    float32 // Maximum value (for bars)
	IsBar  bool    // True to render as progress bar
	Group  string  // Logical grouping
}

// FruitFieldDescriptors returns metadata for the fields shown for the active fruit.
func FruitFieldDescriptors(settleTicks int32) []FieldDescriptor {
	return []FieldDescriptor{
		{ID: "state", Label: "State", Format: "%s", Group: "lifecycle"},
		{ID: "settle", Label: "Settle", Format: "%.0f", Min: 0, Max: float32(settleTicks), IsBar: true, Group: "lifecycle"},
		{ID: "x", Label: "X", Format: "%.2f", Group: "motion"},
		{ID: "y", Label: "Y", Format: "%.2f", Group: "motion"},
		{ID: "speed", Label: "Speed", Format: "%.2f", Min: 0, Max: 8.5, IsBar: true, Group: "motion"},
		{ID: "angle", Label: "Angle", Format: "%.0f", Min: 0, Max: 360, IsBar: true, Group: "motion"},
	}
}

// FruitGroups returns the logical groupings for fruit fields.
func FruitGroups() []string {
	return []string{"lifecycle", "motion"}
}

// GetFruitValue extracts a numeric fruit field by ID.
func GetFruitValue(pos *Position, vel *Velocity, rot *Rotation, life *Lifecycle, fieldID string) float32 {
	switch fieldID {
	case "settle":
		return float32(life.Settle)
	case "x":
		return float32(pos.X.Float())
	case "y":
		return float32(pos.Y.Float())
	case "speed":
		return float32(vel.Vec().Magnitude().Float())
	case "angle":
		return float32(rot.Angle.Float())
	default:
		return 0
	}
}

// FormatFruitValue renders a fruit field with its descriptor's format.
func FormatFruitValue(d FieldDescriptor, pos *Position, vel *Velocity, rot *Rotation, life *Lifecycle) string {
	if d.ID == "state" {
		return fmt.Sprintf(d.Format, life.State)
	}
	return fmt.Sprintf(d.Format, GetFruitValue(pos, vel, rot, life, d.ID))
}
