package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/fruitpit/pit"
	"github.com/pthm-cable/fruitpit/ui"
)

const controlsLegend = "Left/Right: aim | Down/Space: drop | P: pause | R: reset | </>: speed | F1: autopilot | F3: perf | Tab: overlays | Click: inspect"

// Draw renders the game.
func (g *Game) Draw() {
	g.perfCollector.RecordFrame()

	rl.BeginDrawing()
	g.pitRenderer.DrawBackground()

	if g.overlays.IsEnabled(ui.OverlayAimGuide) {
		g.pitRenderer.DrawAim(g.world.Aim(), g.cfg.Fruit.SpawnHeight)
	}
	g.pitRenderer.DrawWalls()

	fruits := g.world.Snapshot()
	g.drawFruits()
	g.particles.Draw()
	g.drawActiveOverlays(fruits)
	g.drawSelectionHighlight()

	g.drawUI()

	rl.EndDrawing()
}

// drawFruits draws the frame, tinting falling fruits when the settle overlay is on.
func (g *Game) drawFruits() {
	frame := g.world.Frame()
	if !g.overlays.IsEnabled(ui.OverlaySettle) {
		g.pitRenderer.DrawFruits(frame)
		return
	}
	for _, s := range frame {
		f, _ := g.world.Fruit(s.Index)
		g.pitRenderer.DrawFruit(s, g.settleTint(f, g.pitRenderer.StateColor(s.State)))
	}
}

func (g *Game) drawSelectionHighlight() {
	f, ok := g.world.Fruit(g.selected)
	if !ok {
		return
	}
	sx, sy := g.camera.WorldToScreen(float32(f.Position.X.Float()), float32(f.Position.Y.Float()))
	rl.DrawCircleLines(int32(sx), int32(sy), g.camera.Scale(float32(f.Radius)+1.5), rl.Yellow)
}

// drawUI renders the HUD and panels and applies their button actions.
func (g *Game) drawUI() {
	held, falling, rolling := g.world.Census()
	actions := g.hud.Draw(ui.HUDData{
		Title:          Title,
		Fruits:         g.world.Len(),
		Held:           held,
		Falling:        falling,
		Rolling:        rolling,
		Tick:           g.tick,
		Aim:            g.world.Aim().Float(),
		StepsPerUpdate: g.stepsPerUpdate,
		FPS:            rl.GetFPS(),
		Paused:         g.paused,
		Autopilot:      g.useAutopilot,
	})
	g.applyHUDActions(actions)

	g.controls.Draw(g.overlays)

	if g.debugMode {
		g.perfPanel.Draw(g.perfCollector.Stats())
	}
	if data, ok := g.selectedData(); ok {
		g.inspector.Draw(data)
	}

	g.hud.DrawControls(int32(rl.GetScreenHeight()), controlsLegend)
}

func (g *Game) applyHUDActions(a ui.HUDActions) {
	if a.TogglePause {
		g.paused = !g.paused
	}
	if a.ToggleAutopilot {
		g.useAutopilot = !g.useAutopilot
		g.latch = pit.DropLatch{}
	}
	if a.StepsPerUpdate >= 1 {
		g.stepsPerUpdate = a.StepsPerUpdate
	}
	if a.Reset {
		g.Reset()
	}
}
