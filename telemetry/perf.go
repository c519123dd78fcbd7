package telemetry

import (
	"log/slog"
	"slices"
	"time"
)

// Phase names for the simulation step.
const (
	PhaseSnapshot    = "snapshot"
	PhaseSpatialGrid = "spatial_grid"
	PhaseIntegrate   = "integrate"
	PhaseCommit      = "commit"
	PhaseSpawn       = "spawn"
	PhaseTelemetry   = "telemetry"
)

// Phases lists the step phases in execution order.
var Phases = [...]string{
	PhaseSnapshot, PhaseSpatialGrid, PhaseIntegrate,
	PhaseCommit, PhaseSpawn, PhaseTelemetry,
}

const noPhase = -1

func phaseIndex(name string) int {
	for i, p := range Phases {
		if p == name {
			return i
		}
	}
	return noPhase
}

// phaseTimes is one tick's time per phase, indexed like Phases.
type phaseTimes [len(Phases)]time.Duration

// PerfCollector times ticks and their phases over a rolling window of ticks.
// Names outside Phases end the running phase but are not timed themselves.
type PerfCollector struct {
	window int
	ticks  []time.Duration
	phases []phaseTimes
	next   int
	filled int

	current    phaseTimes
	running    int
	tickStart  time.Time
	phaseStart time.Time

	lastFrame time.Time
	frame     time.Duration
}

// NewPerfCollector creates a collector averaging over window ticks (60 if < 1).
func NewPerfCollector(window int) *PerfCollector {
	if window < 1 {
		window = 60
	}
	return &PerfCollector{
		window:  window,
		ticks:   make([]time.Duration, window),
		phases:  make([]phaseTimes, window),
		running: noPhase,
	}
}

// StartTick begins timing a new simulation tick.
func (p *PerfCollector) StartTick() {
	p.tickStart = time.Now()
	p.current = phaseTimes{}
	p.running = noPhase
}

// StartPhase ends the running phase and starts timing phase.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	p.stopPhase(now)
	p.running = phaseIndex(phase)
	p.phaseStart = now
}

func (p *PerfCollector) stopPhase(now time.Time) {
	if p.running != noPhase {
		p.current[p.running] += now.Sub(p.phaseStart)
	}
}

// EndTick closes the running phase and stores the tick.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	p.stopPhase(now)
	p.running = noPhase

	p.ticks[p.next] = now.Sub(p.tickStart)
	p.phases[p.next] = p.current
	p.next = (p.next + 1) % p.window
	p.filled = min(p.filled+1, p.window)
}

// RecordFrame marks a rendered frame; the gap to the previous call is the frame time.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrame.IsZero() {
		p.frame = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats is the timing summary of the current window.
type PerfStats struct {
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration
	P95TickDuration time.Duration

	PhaseAvg map[string]time.Duration // mean time per tick in each phase
	PhasePct map[string]float64       // share of the mean tick, 0..100

	TicksPerSecond float64

	FrameDuration time.Duration
	FPS           float64
}

// Stats summarises the ticks currently in the window.
func (p *PerfCollector) Stats() PerfStats {
	s := PerfStats{
		PhaseAvg:      make(map[string]time.Duration, len(Phases)),
		PhasePct:      make(map[string]float64, len(Phases)),
		FrameDuration: p.frame,
	}
	if p.frame > 0 {
		s.FPS = float64(time.Second) / float64(p.frame)
	}
	if p.filled == 0 {
		return s
	}

	ticks := slices.Clone(p.ticks[:p.filled])
	slices.Sort(ticks)
	var total time.Duration
	var phaseTotal phaseTimes
	for i, d := range p.ticks[:p.filled] {
		total += d
		for j, pd := range p.phases[i] {
			phaseTotal[j] += pd
		}
	}

	n := time.Duration(p.filled)
	s.AvgTickDuration = total / n
	s.MinTickDuration = ticks[0]
	s.MaxTickDuration = ticks[len(ticks)-1]
	s.P95TickDuration = ticks[(len(ticks)*95)/100]

	for j, name := range Phases {
		if phaseTotal[j] == 0 {
			continue
		}
		avg := phaseTotal[j] / n
		s.PhaseAvg[name] = avg
		if s.AvgTickDuration > 0 {
			s.PhasePct[name] = 100 * float64(avg) / float64(s.AvgTickDuration)
		}
	}
	if s.AvgTickDuration > 0 {
		s.TicksPerSecond = float64(time.Second) / float64(s.AvgTickDuration)
	}
	return s
}

// LogStats logs the summary at Info.
func (s PerfStats) LogStats() {
	slog.Info("perf", "stats", s)
}

// LogValue implements slog.LogValuer. Phases under 0.1% are left out.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("min_tick_us", s.MinTickDuration.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTickDuration.Microseconds()),
		slog.Int64("p95_tick_us", s.P95TickDuration.Microseconds()),
		slog.Int("ticks_per_sec", int(s.TicksPerSecond)),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Int("fps", int(s.FPS)))
	}
	for _, name := range Phases {
		if pct := s.PhasePct[name]; pct >= 0.1 {
			attrs = append(attrs, slog.Float64(name+"_pct", float64(int(pct*10))/10))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is one row of perf.csv.
type PerfStatsCSV struct {
	WindowEnd      uint64  `csv:"window_end"`
	AvgTickUS      int64   `csv:"avg_tick_us"`
	MinTickUS      int64   `csv:"min_tick_us"`
	MaxTickUS      int64   `csv:"max_tick_us"`
	P95TickUS      int64   `csv:"p95_tick_us"`
	TicksPerSec    float64 `csv:"ticks_per_sec"`
	FPS            float64 `csv:"fps"`
	SnapshotPct    float64 `csv:"snapshot_pct"`
	SpatialGridPct float64 `csv:"spatial_grid_pct"`
	IntegratePct   float64 `csv:"integrate_pct"`
	CommitPct      float64 `csv:"commit_pct"`
	SpawnPct       float64 `csv:"spawn_pct"`
	TelemetryPct   float64 `csv:"telemetry_pct"`
}

// ToCSV flattens s into a perf.csv row for the window ending at windowEnd.
func (s PerfStats) ToCSV(windowEnd uint64) PerfStatsCSV {
	return PerfStatsCSV{
		WindowEnd:      windowEnd,
		AvgTickUS:      s.AvgTickDuration.Microseconds(),
		MinTickUS:      s.MinTickDuration.Microseconds(),
		MaxTickUS:      s.MaxTickDuration.Microseconds(),
		P95TickUS:      s.P95TickDuration.Microseconds(),
		TicksPerSec:    s.TicksPerSecond,
		FPS:            s.FPS,
		SnapshotPct:    s.PhasePct[PhaseSnapshot],
		SpatialGridPct: s.PhasePct[PhaseSpatialGrid],
		IntegratePct:   s.PhasePct[PhaseIntegrate],
		CommitPct:      s.PhasePct[PhaseCommit],
		SpawnPct:       s.PhasePct[PhaseSpawn],
		TelemetryPct:   s.PhasePct[PhaseTelemetry],
	}
}
