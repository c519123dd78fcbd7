package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/optimize"

	"github.com/pthm-cable/fruitpit/config"
	"github.com/pthm-cable/fruitpit/pit"
)

// evalRecord is one row of optimize_log.csv.
type evalRecord struct {
	Eval            int     `csv:"eval"`
	Fitness         float64 `csv:"fitness"`
	FallTicks       float64 `csv:"fall_ticks"`
	Overlap         float64 `csv:"overlap"`
	Restless        float64 `csv:"restless"`
	Settled         int     `csv:"settled"`
	FloorBounce     float64 `csv:"floor_bounce"`
	WallBounce      float64 `csv:"wall_bounce"`
	FloorFriction   float64 `csv:"floor_friction"`
	RollingFriction float64 `csv:"rolling_friction"`
	PropulsionMax   float64 `csv:"propulsion_max"`
}

// pilotVariants returns n autopilots with different sweep and drop rhythms.
func pilotVariants(n int) []pit.Autopilot {
	base := pit.DefaultAutopilot()
	pilots := make([]pit.Autopilot, n)
	for i := range pilots {
		pilots[i] = pit.Autopilot{
			SweepTicks: base.SweepTicks + 37*i,
			DropEvery:  base.DropEvery + 11*i,
		}
	}
	return pilots
}

// search tracks evaluations: the log file, the best point and progress.
type search struct {
	params    *ParamVector
	evaluator *FitnessEvaluator
	log       *os.File
	maxEvals  int
	start     time.Time

	evals       int
	bestFitness float64
	best        []float64
}

// eval scores a unit-cube point for the optimizer.
func (s *search) eval(x []float64) float64 {
	raw := s.params.Clamp(s.params.Denormalize(x))
	fitness := s.evaluator.Evaluate(raw)
	s.evals++
	if s.best == nil || fitness < s.bestFitness {
		s.bestFitness, s.best = fitness, raw
	}

	run := s.evaluator.LastRun()
	s.record(evalRecord{
		Eval: s.evals, Fitness: fitness,
		FallTicks: run.fallTicks, Overlap: run.overlap, Restless: run.restless, Settled: run.settled,
		FloorBounce: raw[0], WallBounce: raw[1],
		FloorFriction: raw[2], RollingFriction: raw[3],
		PropulsionMax: raw[4],
	})

	elapsed := time.Since(s.start)
	eta := elapsed / time.Duration(s.evals) * time.Duration(s.maxEvals-s.evals)
	fmt.Printf("eval %d/%d fitness=%.3f fall=%.0f overlap=%.2f settled=%d best=%.3f elapsed=%s eta=%s\n",
		s.evals, s.maxEvals, fitness, run.fallTicks, run.overlap, run.settled, s.bestFitness,
		elapsed.Round(time.Second), eta.Round(time.Second))
	return fitness
}

func (s *search) record(rec evalRecord) {
	rows := []evalRecord{rec}
	var err error
	if s.evals == 1 {
		err = gocsv.Marshal(rows, s.log)
	} else {
		err = gocsv.MarshalWithoutHeaders(rows, s.log)
	}
	if err != nil {
		log.Printf("logging eval %d: %v", s.evals, err)
	}
}

func main() {
	configPath := flag.String("config", "", "Base config YAML file (empty = use defaults)")
	maxTicks := flag.Int("max-ticks", 6000, "Ticks per pit run")
	pilots := flag.Int("pilots", 3, "Autopilot variants per evaluation")
	maxEvals := flag.Int("max-evals", 200, "Maximum number of evaluations")
	population := flag.Int("population", 0, "CMA-ES population size (0 = auto)")
	outputDir := flag.String("output", "", "Output directory for results")
	flag.Parse()

	if err := run(*configPath, *outputDir, *maxTicks, *pilots, *maxEvals, *population); err != nil {
		log.Fatal(err)
	}
}

func run(configPath, outputDir string, maxTicks, pilots, maxEvals, population int) error {
	if outputDir == "" {
		return errors.New("--output is required")
	}
	if pilots < 1 {
		return errors.New("--pilots must be at least 1")
	}
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := config.Init(configPath); err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logFile, err := os.Create(filepath.Join(outputDir, "optimize_log.csv"))
	if err != nil {
		return fmt.Errorf("creating log: %w", err)
	}
	defer logFile.Close()

	params := NewParamVector()
	s := &search{
		params:    params,
		evaluator: NewFitnessEvaluator(params, uint64(maxTicks), pilotVariants(pilots), config.Cfg()),
		log:       logFile,
		maxEvals:  maxEvals,
		start:     time.Now(),
	}

	if population == 0 {
		population = 4 + 3*params.Dim()/2
	}
	fmt.Printf("CMA-ES over %d parameters, population %d, %d evals, %d autopilots x %d ticks\n",
		params.Dim(), population, maxEvals, pilots, maxTicks)

	// Each evaluation already fans out over the autopilots.
	settings := &optimize.Settings{FuncEvaluations: maxEvals}
	method := &optimize.CmaEsChol{InitStepSize: 0.3, Population: population}
	result, err := optimize.Minimize(optimize.Problem{Func: s.eval}, params.Normalize(params.DefaultVector()), settings, method)
	if err != nil {
		log.Printf("optimization ended: %v", err)
	}

	// The best sample may beat the final mean.
	best := s.best
	if best == nil && result != nil {
		best = params.Clamp(params.Denormalize(result.X))
	}
	if best == nil {
		return errors.New("no evaluations completed")
	}

	fmt.Printf("\n%d evaluations in %s, best fitness %.3f\n", s.evals, time.Since(s.start).Round(time.Second), s.bestFitness)
	for i, spec := range params.Specs {
		fmt.Printf("  %s: %.6f\n", spec.Path, best[i])
	}

	bestCfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("reloading config: %w", err)
	}
	if err := params.ApplyToConfig(bestCfg, best); err != nil {
		return fmt.Errorf("applying best parameters: %w", err)
	}
	out := filepath.Join(outputDir, "best_config.yaml")
	if err := bestCfg.WriteYAML(out); err != nil {
		return fmt.Errorf("writing best config: %w", err)
	}
	fmt.Printf("best config saved to %s\n", out)
	return nil
}
