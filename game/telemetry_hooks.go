package game

import (
	"log/slog"

	"github.com/pthm-cable/fruitpit/fruit"
	"github.com/pthm-cable/fruitpit/telemetry"
)

// flushTelemetry checks if the stats window should be flushed and handles bookmarks.
func (g *Game) flushTelemetry() {
	if !g.collector.ShouldFlush(g.tick) {
		return
	}

	stats := g.collector.Flush(g.tick, g.sample())
	perfStats := g.perfCollector.Stats()

	if g.statsCallback != nil {
		g.statsCallback(stats)
	}

	// Log stats if enabled (console output)
	if g.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if err := g.outputManager.WriteTelemetry(stats); err != nil {
		slog.Error("failed to write telemetry", "error", err)
	}
	if err := g.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
		slog.Error("failed to write perf", "error", err)
	}

	for _, bm := range g.bookmarkDetector.Check(stats) {
		if g.logStats {
			bm.LogBookmark()
		}
		if err := g.outputManager.WriteBookmark(bm); err != nil {
			slog.Error("failed to write bookmark", "error", err)
		}
	}
}

// sample measures the pit at the end of a stats window.
func (g *Game) sample() telemetry.Sample {
	var s telemetry.Sample
	s.Held, s.Falling, s.Rolling = g.world.Census()

	fruits := g.world.Snapshot()
	s.Speeds = make([]float64, 0, len(fruits))
	s.PileHeight = pileHeight(fruits, g.cfg.Pit.Floor)

	pairs := 0
	for _, f := range fruits {
		pairs += len(f.CollidedWith)
		if f.State.Free() {
			s.Speeds = append(s.Speeds, f.Velocity.Magnitude().Float())
		}
	}
	s.Contacts = pairs / 2

	return s
}

// pileHeight returns how far above the floor the highest rolling fruit reaches.
func pileHeight(fruits []fruit.Fruit, floor int32) float64 {
	var height float64
	for _, f := range fruits {
		if f.State != fruit.Rolling {
			continue
		}
		top := f.Position.Y.Float() - float64(f.Radius)
		height = max(height, float64(floor)-top)
	}
	return height
}
