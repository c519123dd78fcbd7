package ui

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/fruitpit/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title          string
	Fruits         int
	Held           int
	Falling        int
	Rolling        int
	Tick           uint64
	Aim            float64
	StepsPerUpdate int
	FPS            int32
	Paused         bool
	Autopilot      bool
}

// HUDActions reports which HUD buttons were used this frame.
type HUDActions struct {
	TogglePause     bool
	Reset           bool
	ToggleAutopilot bool
	StepsPerUpdate  int
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD and its buttons.
func (h *HUD) Draw(data HUDData) HUDActions {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Fruits: %d | Held: %d | Falling: %d | Rolling: %d", data.Fruits, data.Held, data.Falling, data.Rolling),
		10, 35, 16, rl.LightGray,
	)
	rl.DrawText(
		fmt.Sprintf("Tick: %d | Aim: %.0f | Speed: %dx | FPS: %d", data.Tick, data.Aim, data.StepsPerUpdate, data.FPS),
		10, 55, 16, rl.LightGray,
	)

	statusText := "Running"
	if data.Paused {
		statusText = "PAUSED"
	}
	rl.DrawText(statusText, 10, 75, 16, rl.Yellow)

	actions := HUDActions{StepsPerUpdate: data.StepsPerUpdate}

	pauseLabel := "Pause"
	if data.Paused {
		pauseLabel = "Resume"
	}
	actions.TogglePause = gui.Button(rl.Rectangle{X: 10, Y: 100, Width: 80, Height: 24}, pauseLabel)
	actions.Reset = gui.Button(rl.Rectangle{X: 100, Y: 100, Width: 80, Height: 24}, "Reset")
	actions.ToggleAutopilot = gui.CheckBox(rl.Rectangle{X: 190, Y: 104, Width: 16, Height: 16}, "Autopilot", data.Autopilot) != data.Autopilot

	steps := gui.Slider(
		rl.Rectangle{X: 60, Y: 132, Width: 120, Height: 16},
		"Speed", fmt.Sprintf("%dx", data.StepsPerUpdate),
		float32(data.StepsPerUpdate), 1, 10,
	)
	actions.StepsPerUpdate = int(steps + 0.5)

	return actions
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PerfPanel renders the step phase breakdown.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(stats telemetry.PerfStats) {
	x := p.x
	y := p.y

	rl.DrawText("Step Performance", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Avg tick: %s (%.0f/s)", stats.AvgTickDuration.Round(time.Microsecond), stats.TicksPerSecond), x, y, 14, rl.Yellow)
	y += 16

	for _, phase := range telemetry.Phases {
		avg, ok := stats.PhaseAvg[phase]
		if !ok {
			continue
		}
		pct := stats.PhasePct[phase]

		color := rl.LightGray
		if pct > 40 {
			color = rl.Red
		} else if pct > 20 {
			color = rl.Orange
		}

		rl.DrawText(fmt.Sprintf("%-13s %8s %5.1f%%", phase, avg.Round(time.Microsecond), pct), x, y, 12, color)
		y += 14
	}
}
