package main

import (
	"math"
	"sync"

	"github.com/pthm-cable/fruitpit/config"
	"github.com/pthm-cable/fruitpit/fruit"
	"github.com/pthm-cable/fruitpit/geometry"
	"github.com/pthm-cable/fruitpit/pit"
	"github.com/pthm-cable/fruitpit/telemetry"
)

// Fitness weights. Fall time is measured in settle timers, overlap in radii.
const (
	weightFall     = 1.0
	weightOverlap  = 4.0
	weightRestless = 0.5
)

// FitnessEvaluator runs headless pits and computes fitness.
type FitnessEvaluator struct {
	params     *ParamVector
	maxTicks   uint64
	pilots     []pit.Autopilot
	baseConfig *config.Config

	mu      sync.Mutex
	lastRun runResult // averaged over pilots, from the most recent Evaluate call
}

// NewFitnessEvaluator creates a new evaluator.
func NewFitnessEvaluator(params *ParamVector, maxTicks uint64, pilots []pit.Autopilot, baseCfg *config.Config) *FitnessEvaluator {
	return &FitnessEvaluator{
		params:     params,
		maxTicks:   maxTicks,
		pilots:     pilots,
		baseConfig: baseCfg,
	}
}

// LastRun returns the averaged measurements from the most recent evaluation.
func (fe *FitnessEvaluator) LastRun() runResult {
	fe.mu.Lock()
	defer fe.mu.Unlock()
	return fe.lastRun
}

// runResult holds the measurements from a single pit run.
type runResult struct {
	fallTicks float64 // mean ticks from drop to settle
	overlap   float64 // mean residual penetration between resting fruits, in pixels
	restless  float64 // p90 speed of free fruits at the end of the run
	settled   int
}

// Evaluate computes fitness for a raw parameter vector (lower = better).
// Every pilot runs in its own goroutine on its own config copy.
func (fe *FitnessEvaluator) Evaluate(x []float64) float64 {
	results := make([]runResult, len(fe.pilots))
	fits := make([]float64, len(fe.pilots))
	var wg sync.WaitGroup

	for i, pilot := range fe.pilots {
		wg.Add(1)
		go func(idx int, p pit.Autopilot) {
			defer wg.Done()
			cfg := fe.copyConfig()
			if err := fe.params.ApplyToConfig(cfg, x); err != nil {
				fits[idx] = math.Inf(1)
				return
			}
			results[idx] = runPit(cfg, p, fe.maxTicks)
			fits[idx] = computeFitness(results[idx], cfg)
		}(i, pilot)
	}
	wg.Wait()

	var avg runResult
	var total float64
	for i, r := range results {
		total += fits[i]
		avg.fallTicks += r.fallTicks
		avg.overlap += r.overlap
		avg.restless += r.restless
		avg.settled += r.settled
	}
	n := float64(len(fe.pilots))
	avg.fallTicks /= n
	avg.overlap /= n
	avg.restless /= n
	avg.settled /= len(fe.pilots)

	fe.mu.Lock()
	fe.lastRun = avg
	fe.mu.Unlock()

	return total / n
}

// runPit plays one pit to maxTicks and measures it.
func runPit(cfg *config.Config, pilot pit.Autopilot, maxTicks uint64) runResult {
	w := pit.NewWorld(cfg)
	lifetimes := telemetry.NewLifetimeTracker()
	collector := telemetry.NewCollector(int(maxTicks))

	lifetimes.Register(w.Spawn(w.Aim()), 0)
	for w.Tick() < maxTicks {
		for _, e := range w.Step(pilot.Intent(w.Tick())) {
			switch e.Kind {
			case pit.EventSpawn:
				lifetimes.Register(e.Index, e.Tick)
			case pit.EventDrop:
				lifetimes.RecordDrop(e.Index, e.Tick)
			case pit.EventSettle:
				collector.RecordSettle(lifetimes.RecordSettle(e.Index, e.Tick))
			}
		}
	}

	fruits := w.Snapshot()
	var speeds []float64
	for _, f := range fruits {
		if f.State.Free() {
			speeds = append(speeds, f.Velocity.Magnitude().Float())
		}
	}
	stats := collector.Flush(w.Tick(), telemetry.Sample{Speeds: speeds})

	return runResult{
		fallTicks: stats.FallTicksMean,
		overlap:   residualOverlap(fruits),
		restless:  stats.SpeedP90,
		settled:   stats.Settles,
	}
}

// residualOverlap returns the mean penetration depth over overlapping pairs of
// rolling fruits, or 0 when none overlap.
func residualOverlap(fruits []fruit.Fruit) float64 {
	var sum float64
	var pairs int
	for i := range fruits {
		if fruits[i].State != fruit.Rolling {
			continue
		}
		for j := i + 1; j < len(fruits); j++ {
			if fruits[j].State != fruit.Rolling {
				continue
			}
			if d, ok := geometry.CircleIntersection(fruits[i].Circle(), fruits[j].Circle()); ok {
				sum += d.Magnitude().Float()
				pairs++
			}
		}
	}
	if pairs == 0 {
		return 0
	}
	return sum / float64(pairs)
}

// computeFitness calculates the scalar fitness (lower = better).
// A run where nothing settled is the worst possible outcome.
func computeFitness(r runResult, cfg *config.Config) float64 {
	if r.settled == 0 {
		return math.Inf(1)
	}
	fall := r.fallTicks / float64(cfg.Physics.SettleTicks)
	overlap := r.overlap / float64(cfg.Fruit.Radius)
	return weightFall*fall + weightOverlap*overlap + weightRestless*r.restless
}

// copyConfig creates a copy of the base config that evaluations may mutate.
func (fe *FitnessEvaluator) copyConfig() *config.Config {
	cfg := *fe.baseConfig
	return &cfg
}
