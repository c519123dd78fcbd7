package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/fruitpit/pit"
)

// readIntent samples the player's keys, or the autopilot when it is driving.
func (g *Game) readIntent() pit.Intent {
	if g.useAutopilot {
		in := g.autopilot.Intent(g.tick)
		g.latch.Update(in.Drop)
		return in
	}
	return pit.Intent{
		MoveLeft:  rl.IsKeyDown(rl.KeyLeft),
		MoveRight: rl.IsKeyDown(rl.KeyRight),
		Drop:      g.latch.Update(rl.IsKeyDown(rl.KeyDown) || rl.IsKeyDown(rl.KeySpace)),
	}
}

// handleInput processes keyboard and mouse input that is not player intent.
func (g *Game) handleInput() {
	g.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}

	if rl.IsKeyPressed(rl.KeyP) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyR) {
		g.Reset()
	}
	if rl.IsKeyPressed(rl.KeyF1) {
		g.useAutopilot = !g.useAutopilot
	}

	// Steps-per-update control with < > keys (comma and period)
	if rl.IsKeyPressed(rl.KeyComma) && g.stepsPerUpdate > 1 {
		g.stepsPerUpdate--
	}
	if rl.IsKeyPressed(rl.KeyPeriod) && g.stepsPerUpdate < 10 {
		g.stepsPerUpdate++
	}

	// Debug mode toggle
	if rl.IsKeyPressed(rl.KeyF3) {
		g.debugMode = !g.debugMode
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.controls.Toggle()
	}
	g.handleOverlayKeys()

	g.handleCameraInput()
	g.handleSelection()
}

// handleResize checks for window resize and propagates new dimensions.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	g.camera.Resize(w, h)
	g.perfPanel.SetPosition(int32(w)-230, 10)
	g.inspector.SetPosition(int32(w)-230, 150)
}

// handleCameraInput zooms with the mouse wheel and pans with the right button.
func (g *Game) handleCameraInput() {
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.camera.ZoomBy(1 + wheel*0.1)
	}
	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		d := rl.GetMouseDelta()
		g.camera.Pan(-d.X, -d.Y)
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		g.camera.Reset()
	}
}
