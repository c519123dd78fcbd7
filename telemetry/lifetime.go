package telemetry

// LifetimeStats tracks one fruit from spawn to settle.
type LifetimeStats struct {
	SpawnTick  uint64
	DropTick   uint64 // 0 until dropped
	SettleTick uint64 // 0 until settled
}

// HeldTicks returns how long the player held the fruit, or 0 if not yet dropped.
func (s *LifetimeStats) HeldTicks() uint64 {
	if s.DropTick == 0 {
		return 0
	}
	return s.DropTick - s.SpawnTick
}

// FallTicks returns the ticks from drop to settle, or 0 if not yet settled.
func (s *LifetimeStats) FallTicks() uint64 {
	if s.SettleTick == 0 || s.DropTick == 0 {
		return 0
	}
	return s.SettleTick - s.DropTick
}

// LifetimeTracker manages per-fruit lifetime statistics, keyed by fruit index.
type LifetimeTracker struct {
	stats map[int]*LifetimeStats
}

// NewLifetimeTracker creates a new lifetime tracker.
func NewLifetimeTracker() *LifetimeTracker {
	return &LifetimeTracker{
		stats: make(map[int]*LifetimeStats),
	}
}

// Register starts tracking a newly spawned fruit.
func (lt *LifetimeTracker) Register(index int, spawnTick uint64) {
	lt.stats[index] = &LifetimeStats{SpawnTick: spawnTick}
}

// Get returns the lifetime stats for a fruit, or nil if not found.
func (lt *LifetimeTracker) Get(index int) *LifetimeStats {
	return lt.stats[index]
}

// RecordDrop marks the tick a fruit was released.
func (lt *LifetimeTracker) RecordDrop(index int, tick uint64) {
	if s := lt.stats[index]; s != nil {
		s.DropTick = tick
	}
}

// RecordSettle marks the tick a fruit settled and returns its fall time.
func (lt *LifetimeTracker) RecordSettle(index int, tick uint64) uint64 {
	s := lt.stats[index]
	if s == nil {
		return 0
	}
	s.SettleTick = tick
	return s.FallTicks()
}

// Count returns the number of tracked fruits.
func (lt *LifetimeTracker) Count() int {
	return len(lt.stats)
}

// Reset forgets every fruit.
func (lt *LifetimeTracker) Reset() {
	clear(lt.stats)
}
