package game

import (
	"log/slog"

	"github.com/pthm-cable/fruitpit/pit"
	"github.com/pthm-cable/fruitpit/renderer"
	"github.com/pthm-cable/fruitpit/telemetry"
)

// eventFlushSize is how many event records are buffered before writing.
const eventFlushSize = 256

// startRound puts the first fruit into play at the aim cursor.
func (g *Game) startRound() {
	idx := g.world.Spawn(g.world.Aim())
	f, _ := g.world.Fruit(idx)
	g.handleEvents([]pit.Event{{Kind: pit.EventSpawn, Tick: g.tick, Index: idx, Position: f.Position}})
}

// Reset empties the pit and starts a new round. Telemetry windows restart at
// tick 0; output files keep appending.
func (g *Game) Reset() {
	g.writeEvents()

	g.world.Reset()
	g.tick = 0
	g.latch = pit.DropLatch{}
	g.selected = pit.NoActive
	g.collector.Reset()
	g.lifetimeTracker.Reset()
	if g.particles != nil {
		g.particles.Clear()
	}

	slog.Info("pit reset")
	g.startRound()
}

// handleEvents feeds lifecycle events to telemetry and effects.
func (g *Game) handleEvents(events []pit.Event) {
	for _, e := range events {
		x, y := e.Position.X.Float(), e.Position.Y.Float()
		slog.Debug("fruit event", "kind", e.Kind.String(), "tick", e.Tick, "index", e.Index, "x", x, "y", y)

		var kind string
		switch e.Kind {
		case pit.EventSpawn:
			kind = telemetry.KindSpawn
			g.lifetimeTracker.Register(e.Index, e.Tick)
			g.collector.RecordSpawn()
		case pit.EventDrop:
			kind = telemetry.KindDrop
			g.lifetimeTracker.RecordDrop(e.Index, e.Tick)
			g.collector.RecordDrop()
			g.emitPuff(x, y, renderer.PuffDrop)
		case pit.EventSettle:
			kind = telemetry.KindSettle
			fall := g.lifetimeTracker.RecordSettle(e.Index, e.Tick)
			g.collector.RecordSettle(fall)
			g.emitPuff(x, y, renderer.PuffSettle)
		}

		if g.outputManager != nil {
			g.eventRecords = append(g.eventRecords, telemetry.NewEventRecord(e.Tick, kind, e.Index, x, y))
		}
	}

	if len(g.eventRecords) >= eventFlushSize {
		g.writeEvents()
	}
}

func (g *Game) emitPuff(x, y float64, kind renderer.PuffKind) {
	if g.particles == nil {
		return
	}
	g.particles.Emit(float32(x), float32(y)+float32(g.cfg.Fruit.Radius), kind)
}

// writeEvents flushes buffered event records to events.csv.
func (g *Game) writeEvents() {
	if len(g.eventRecords) == 0 {
		return
	}
	if err := g.outputManager.WriteEvents(g.eventRecords); err != nil {
		slog.Error("failed to write events", "error", err)
	}
	g.eventRecords = g.eventRecords[:0]
}
