// Package ui draws the panels around the pit: the HUD, the overlay toggles and
// the fruit inspector. Panels are laid out from field descriptors so the data
// shown can change without touching drawing code.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme is the panel palette and metrics, in screen pixels.
type Theme struct {
	Panel, Border  rl.Color
	Header         rl.Color
	Label, Value   rl.Color
	Track          rl.Color // empty part of a bar
	Bar            rl.Color
	BarWarn        rl.Color // below a quarter
	BarFull        rl.Color // above three quarters
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme matches the pit's warm background.
func DefaultTheme() Theme {
	return Theme{
		Panel:          rl.Color{R: 32, G: 24, B: 22, A: 235},
		Border:         rl.Color{R: 96, G: 72, B: 56, A: 255},
		Header:         rl.Color{R: 250, G: 200, B: 90, A: 255},
		Label:          rl.Color{R: 190, G: 175, B: 160, A: 255},
		Value:          rl.RayWhite,
		Track:          rl.Color{R: 54, G: 44, B: 40, A: 255},
		Bar:            rl.Color{R: 120, G: 180, B: 110, A: 255},
		BarWarn:        rl.Color{R: 220, G: 110, B: 80, A: 255},
		BarFull:        rl.Color{R: 240, G: 210, B: 100, A: 255},
		Padding:        8,
		LineHeight:     16,
		LabelWidth:     64,
		BarHeight:      10,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}
