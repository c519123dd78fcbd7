package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// ControlsPanel renders the overlay toggles as checkboxes.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// SetPosition updates the panel position.
func (c *ControlsPanel) SetPosition(x, y int32) {
	c.x = x
	c.y = y
}

// IsVisible returns whether the panel is shown.
func (c *ControlsPanel) IsVisible() bool {
	return c.visible
}

// Toggle switches panel visibility.
func (c *ControlsPanel) Toggle() bool {
	c.visible = !c.visible
	return c.visible
}

// Draw renders the panel and applies checkbox changes to the registry.
// Returns the Y position below the panel.
func (c *ControlsPanel) Draw(overlays *OverlayRegistry) int32 {
	if !c.visible {
		return c.y
	}

	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight + 4

	groups := overlays.Groups()
	rows := 0
	for _, g := range groups {
		rows += len(overlays.InGroup(g)) + 1
	}
	panelHeight := int32(rows)*lineHeight + padding*3 + lineHeight

	r.DrawPanel(c.x, c.y, c.width, panelHeight)

	y := c.y + padding
	rl.DrawText("Overlays", c.x+padding, y, 16, rl.White)
	y += lineHeight

	for _, group := range groups {
		rl.DrawText(group.String(), c.x+padding, y, r.Theme.HeaderFontSize, r.Theme.Header)
		y += lineHeight

		for _, o := range overlays.InGroup(group) {
			enabled := overlays.IsEnabled(o.ID)
			bounds := rl.Rectangle{X: float32(c.x + padding), Y: float32(y), Width: 14, Height: 14}
			label := o.Name
			if k := o.KeyLabel(); k != "" {
				label = "[" + k + "] " + label
			}
			if checked := gui.CheckBox(bounds, label, enabled); checked != enabled {
				overlays.SetEnabled(o.ID, checked)
			}
			y += lineHeight
		}
	}

	return c.y + panelHeight
}
