package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/fruitpit/components"
)

// InspectorData is the selected fruit, as stored in the world.
type InspectorData struct {
	Index    int
	Position components.Position
	Velocity components.Velocity
	Rotation components.Rotation
	Life     components.Lifecycle
	Contacts []int
}

// Inspector shows the fields of one fruit, laid out from its descriptors.
type Inspector struct {
	renderer *Renderer
	x, y     int32
	width    int32
	fields   []components.FieldDescriptor
}

// NewInspector creates an inspector for fruits that settle after settleTicks contact ticks.
func NewInspector(x, y, width int32, settleTicks int32) *Inspector {
	return &Inspector{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
		fields:   components.FruitFieldDescriptors(settleTicks),
	}
}

// SetPosition updates the panel position.
func (ins *Inspector) SetPosition(x, y int32) {
	ins.x = x
	ins.y = y
}

// Draw renders the panel and returns the Y position below it.
func (ins *Inspector) Draw(data InspectorData) int32 {
	r := ins.renderer
	padding := r.Theme.Padding
	groups := components.FruitGroups()

	lines := int32(len(ins.fields)+len(groups)) + 2
	height := lines*r.Theme.LineHeight + 2*padding
	r.DrawPanel(ins.x, ins.y, ins.width, height)

	x := ins.x + padding
	y := ins.y + padding
	rl.DrawText(fmt.Sprintf("Fruit #%d", data.Index), x, y, 16, rl.White)
	y += r.Theme.LineHeight + 2

	inner := ins.width - 2*padding
	for _, group := range groups {
		y = r.DrawSectionHeader(x, y, group)
		for _, fd := range ins.fields {
			if fd.Group != group {
				continue
			}
			value := components.GetFruitValue(&data.Position, &data.Velocity, &data.Rotation, &data.Life, fd.ID)
			text := components.FormatFruitValue(fd, &data.Position, &data.Velocity, &data.Rotation, &data.Life)
			y = r.DrawField(x, y, fd, value, text, inner)
		}
	}

	y = r.DrawLabelValue(x, y, "Contacts", fmt.Sprint(data.Contacts))
	return y + padding
}
