package game

import (
	"context"
	"log/slog"

	"github.com/pthm-cable/fruitpit/fruit"
)

// LogWorldState logs a one-line summary of the pit, plus every fruit at debug level.
func (g *Game) LogWorldState() {
	held, falling, rolling := g.world.Census()
	slog.Info("world state",
		"tick", g.tick,
		"fruits", g.world.Len(),
		"held", held,
		"falling", falling,
		"rolling", rolling,
		"aim", g.world.Aim().Float(),
	)

	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		return
	}
	for i, f := range g.world.Snapshot() {
		logFruit(i, f)
	}
}

func logFruit(i int, f fruit.Fruit) {
	slog.Debug("fruit",
		"index", i,
		"state", f.State.String(),
		"x", f.Position.X.Float(),
		"y", f.Position.Y.Float(),
		"vx", f.Velocity.X.Float(),
		"vy", f.Velocity.Y.Float(),
		"angle", f.Rotation.Angle.Float(),
		"settle", f.SettleTimer,
		"contacts", len(f.CollidedWith),
	)
}
