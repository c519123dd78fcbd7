package telemetry

import (
	"math"
	"testing"
)

func TestCollectorWindow(t *testing.T) {
	c := NewCollector(60)

	if c.ShouldFlush(59) {
		t.Error("flushed before window end")
	}
	if !c.ShouldFlush(60) {
		t.Error("expected flush at window end")
	}

	c.RecordSpawn()
	c.RecordDrop()
	c.RecordSettle(40)
	c.RecordSpawn()
	c.RecordDrop()
	c.RecordSettle(80)

	stats := c.Flush(60, Sample{
		Held:       1,
		Rolling:    2,
		Speeds:     []float64{0, 1},
		PileHeight: 16,
		Contacts:   1,
	})

	if stats.Fruits != 3 || stats.Held != 1 || stats.Rolling != 2 {
		t.Errorf("census = %+v", stats)
	}
	if stats.Drops != 2 || stats.Settles != 2 || stats.Spawns != 2 {
		t.Errorf("events = %d/%d/%d", stats.Drops, stats.Settles, stats.Spawns)
	}
	if math.Abs(stats.FallTicksMean-60) > 1e-9 || stats.FallTicksMax != 80 {
		t.Errorf("fall ticks = %v/%v", stats.FallTicksMean, stats.FallTicksMax)
	}
	if math.Abs(stats.SpeedMean-0.5) > 1e-9 {
		t.Errorf("speed mean = %v", stats.SpeedMean)
	}
	if stats.WindowStartTick != 0 || stats.WindowEndTick != 60 {
		t.Errorf("window = %d..%d", stats.WindowStartTick, stats.WindowEndTick)
	}

	// Counters reset for the next window
	next := c.Flush(120, Sample{})
	if next.Drops != 0 || next.Settles != 0 || next.FallTicksMean != 0 {
		t.Errorf("counters not reset: %+v", next)
	}
	if next.WindowStartTick != 60 {
		t.Errorf("next window start = %d", next.WindowStartTick)
	}
}

func TestCollectorMinimumWindow(t *testing.T) {
	c := NewCollector(0)
	if c.WindowDurationTicks() != 1 {
		t.Errorf("window = %d, want 1", c.WindowDurationTicks())
	}
}

func TestLifetimeTracker(t *testing.T) {
	lt := NewLifetimeTracker()
	lt.Register(0, 1)
	lt.RecordDrop(0, 31)

	if got := lt.Get(0).HeldTicks(); got != 30 {
		t.Errorf("held ticks = %d, want 30", got)
	}
	if got := lt.Get(0).FallTicks(); got != 0 {
		t.Errorf("fall ticks before settle = %d", got)
	}
	if got := lt.RecordSettle(0, 131); got != 100 {
		t.Errorf("fall ticks = %d, want 100", got)
	}

	// Unknown fruits are ignored
	lt.RecordDrop(5, 10)
	if lt.RecordSettle(5, 20) != 0 || lt.Count() != 1 {
		t.Error("unknown fruit tracked")
	}

	lt.Reset()
	if lt.Count() != 0 || lt.Get(0) != nil {
		t.Error("Reset kept stats")
	}
}
