package telemetry

// Collector accumulates events within tick windows and produces WindowStats.
type Collector struct {
	windowDurationTicks uint64

	// Current window tracking
	windowStartTick uint64

	// Event counters for current window
	drops     int
	settles   int
	spawns    int
	fallTicks []float64
}

// Sample is the pit state the caller measures at window end.
type Sample struct {
	Held, Falling, Rolling int
	Speeds                 []float64 // |velocity| of every free fruit
	PileHeight             float64
	Contacts               int
}

// NewCollector creates a new stats collector flushing every windowTicks ticks.
func NewCollector(windowTicks int) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{windowDurationTicks: uint64(windowTicks)}
}

// RecordDrop records a fruit being released.
func (c *Collector) RecordDrop() {
	c.drops++
}

// RecordSettle records a fruit settling after fallTicks ticks in the air.
func (c *Collector) RecordSettle(fallTicks uint64) {
	c.settles++
	c.fallTicks = append(c.fallTicks, float64(fallTicks))
}

// RecordSpawn records a new fruit.
func (c *Collector) RecordSpawn() {
	c.spawns++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick uint64) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick uint64, s Sample) WindowStats {
	speedMean, speedStd, speedP50, speedP90 := ComputeSpeedStats(s.Speeds)

	var fallMean, fallMax float64
	if len(c.fallTicks) > 0 {
		fallMean, _, _, _ = ComputeSpeedStats(c.fallTicks)
		for _, t := range c.fallTicks {
			fallMax = max(fallMax, t)
		}
	}

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,

		Fruits:  s.Held + s.Falling + s.Rolling,
		Held:    s.Held,
		Falling: s.Falling,
		Rolling: s.Rolling,

		Drops:   c.drops,
		Settles: c.settles,
		Spawns:  c.spawns,

		FallTicksMean: fallMean,
		FallTicksMax:  fallMax,

		SpeedMean: speedMean,
		SpeedStd:  speedStd,
		SpeedP50:  speedP50,
		SpeedP90:  speedP90,

		PileHeight: s.PileHeight,
		Contacts:   s.Contacts,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	c.drops = 0
	c.settles = 0
	c.spawns = 0
	c.fallTicks = c.fallTicks[:0]

	return stats
}

// Reset starts a fresh window at tick 0.
func (c *Collector) Reset() {
	c.Flush(0, Sample{})
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() uint64 {
	return c.windowDurationTicks
}
