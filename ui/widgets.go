package ui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/fruitpit/components"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.Panel)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.Border)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.Header)
	return y + r.Theme.LineHeight
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.Label)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.Value)
	return y + r.Theme.LineHeight
}

// DrawBar draws a progress bar for a value in [minVal, maxVal].
func (r *Renderer) DrawBar(x, y int32, label string, value, minVal, maxVal float32, width int32) int32 {
	frac := float32(0)
	if maxVal > minVal {
		frac = (value - minVal) / (maxVal - minVal)
	}
	frac = min(max(frac, 0), 1)

	barX := x + r.Theme.LabelWidth
	barWidth := width - r.Theme.LabelWidth - 50

	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.Label)
	rl.DrawRectangle(barX, y, barWidth, r.Theme.BarHeight, r.Theme.Track)

	fill := r.Theme.Bar
	switch {
	case frac < 0.25:
		fill = r.Theme.BarWarn
	case frac > 0.75:
		fill = r.Theme.BarFull
	}
	rl.DrawRectangle(barX, y, int32(float32(barWidth)*frac), r.Theme.BarHeight, fill)
	rl.DrawText(fmt.Sprintf("%.0f", value), barX+barWidth+5, y, r.Theme.FontSize, r.Theme.Value)

	return y + r.Theme.LineHeight
}

// DrawField renders one descriptor-driven field: a bar or a formatted value.
func (r *Renderer) DrawField(x, y int32, fd components.FieldDescriptor, value float32, text string, width int32) int32 {
	if fd.IsBar {
		return r.DrawBar(x, y, fd.Label, value, fd.Min, fd.Max, width)
	}
	return r.DrawLabelValue(x, y, fd.Label, text)
}
