package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/fruitpit/components"
	"github.com/pthm-cable/fruitpit/fixed"
	"github.com/pthm-cable/fruitpit/pit"
	"github.com/pthm-cable/fruitpit/ui"
)

// handleSelection selects the fruit under a left click; clicking empty space clears it.
func (g *Game) handleSelection() {
	if !rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		return
	}
	if i, ok := g.findFruitAtMouse(); ok {
		g.selected = i
		return
	}
	// Clicks on the HUD and panels land outside the pit area; keep the selection.
	mouse := rl.GetMousePosition()
	if wx, wy := g.camera.ScreenToWorld(mouse.X, mouse.Y); g.insidePit(wx, wy) {
		g.selected = pit.NoActive
	}
}

// findFruitAtMouse returns the fruit under the mouse cursor, if any.
func (g *Game) findFruitAtMouse() (int, bool) {
	mouse := rl.GetMousePosition()
	wx, wy := g.camera.ScreenToWorld(mouse.X, mouse.Y)
	return g.world.FruitAt(fixed.VFloat(float64(wx), float64(wy)))
}

func (g *Game) insidePit(x, y float32) bool {
	p := g.cfg.Pit
	return x >= float32(p.WallLeft) && x <= float32(p.WallRight) && y >= 0 && y <= float32(p.Floor)
}

// selectedData returns the inspector data for the selected fruit.
func (g *Game) selectedData() (ui.InspectorData, bool) {
	f, ok := g.world.Fruit(g.selected)
	if !ok {
		return ui.InspectorData{}, false
	}
	pos, vel, rot, _, contacts := components.Split(f)
	return ui.InspectorData{
		Index:    g.selected,
		Position: pos,
		Velocity: vel,
		Rotation: rot,
		Life:     components.Lifecycle{Index: int32(g.selected), State: f.State, Settle: f.SettleTimer},
		Contacts: contacts.With,
	}, true
}
