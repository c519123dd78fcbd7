// Package game drives a pit: it turns keyboard or scripted input into intents,
// steps the world, feeds telemetry and draws the result.
package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/fruitpit/camera"
	"github.com/pthm-cable/fruitpit/config"
	"github.com/pthm-cable/fruitpit/pit"
	"github.com/pthm-cable/fruitpit/renderer"
	"github.com/pthm-cable/fruitpit/telemetry"
	"github.com/pthm-cable/fruitpit/ui"
)

// Game holds the complete game state.
type Game struct {
	cfg   *config.Config
	world *pit.World

	// Input
	latch        pit.DropLatch
	autopilot    pit.Autopilot
	useAutopilot bool

	// Simulation control
	tick           uint64
	paused         bool
	stepsPerUpdate int
	headless       bool
	debugMode      bool
	selected       int

	// Presentation (nil when headless)
	camera      *camera.Camera
	pitRenderer *renderer.PitRenderer
	particles   *renderer.ParticleRenderer
	hud         *ui.HUD
	perfPanel   *ui.PerfPanel
	controls    *ui.ControlsPanel
	inspector   *ui.Inspector
	overlays    *ui.OverlayRegistry

	// Telemetry
	collector        *telemetry.Collector
	perfCollector    *telemetry.PerfCollector
	lifetimeTracker  *telemetry.LifetimeTracker
	bookmarkDetector *telemetry.BookmarkDetector
	outputManager    *telemetry.OutputManager
	eventRecords     []telemetry.EventRecord
	logStats         bool
	statsCallback    func(telemetry.WindowStats)
}

// NewGameWithOptions creates a game from the global config. In graphical mode
// the raylib window must already be open.
func NewGameWithOptions(opts Options) *Game {
	cfg := config.Cfg()

	statsWindow := cfg.Telemetry.StatsWindow
	if opts.StatsWindow > 0 {
		statsWindow = opts.StatsWindow
	}
	steps := max(opts.StepsPerUpdate, 1)

	g := &Game{
		cfg:              cfg,
		world:            pit.NewWorld(cfg),
		autopilot:        pit.DefaultAutopilot(),
		useAutopilot:     opts.Autopilot || opts.Headless,
		stepsPerUpdate:   steps,
		headless:         opts.Headless,
		selected:         pit.NoActive,
		collector:        telemetry.NewCollector(statsWindow),
		perfCollector:    telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		lifetimeTracker:  telemetry.NewLifetimeTracker(),
		bookmarkDetector: telemetry.NewBookmarkDetector(10, dangerHeight(cfg)),
		logStats:         opts.LogStats,
		statsCallback:    opts.StatsCallback,
	}
	g.world.SetPhaseTimer(g.perfCollector)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		slog.Error("failed to create output manager", "error", err)
	}
	g.outputManager = om
	if err := g.outputManager.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config", "error", err)
	}

	if !g.headless {
		g.initPresentation()
	}

	g.startRound()
	return g
}

// initPresentation creates the camera, renderers and panels.
func (g *Game) initPresentation() {
	w, h := float32(rl.GetScreenWidth()), float32(rl.GetScreenHeight())
	g.camera = camera.New(w, h, float32(g.cfg.Pit.Width), float32(g.cfg.Pit.Height))
	g.pitRenderer = renderer.NewPitRenderer(g.camera, g.cfg.Pit)
	g.particles = renderer.NewParticleRenderer(g.camera)
	g.hud = ui.NewHUD()
	g.perfPanel = ui.NewPerfPanel(int32(w)-230, 10)
	g.controls = ui.NewControlsPanel(10, 160, 200)
	g.inspector = ui.NewInspector(int32(w)-230, 150, 220, g.cfg.Physics.SettleTicks)
	g.overlays = ui.NewOverlayRegistry()
}

// dangerHeight is the pile height at which the next fruit would spawn inside it.
func dangerHeight(cfg *config.Config) float64 {
	return float64(cfg.Pit.Floor - cfg.Fruit.SpawnHeight - cfg.Fruit.Radius)
}

// Update handles input and advances the simulation for one frame.
func (g *Game) Update() {
	g.handleInput()
	if g.particles != nil {
		g.particles.Update()
	}
	if g.paused {
		return
	}
	in := g.readIntent()
	for i := range g.stepsPerUpdate {
		if i > 0 {
			// Drop is edge-triggered: only the first step of a frame sees it.
			in.Drop = false
		}
		g.step(in)
	}
}

// UpdateHeadless advances the simulation without any raylib calls.
func (g *Game) UpdateHeadless() {
	for range g.stepsPerUpdate {
		g.step(g.autopilot.Intent(g.tick))
	}
}

// step runs one simulation tick and everything that hangs off it.
func (g *Game) step(in pit.Intent) {
	g.perfCollector.StartTick()

	events := g.world.Step(in)
	g.tick = g.world.Tick()

	g.perfCollector.StartPhase(telemetry.PhaseTelemetry)
	g.handleEvents(events)
	g.flushTelemetry()

	g.perfCollector.EndTick()
}

// Tick returns the number of completed simulation ticks.
func (g *Game) Tick() uint64 { return g.tick }

// World exposes the pit being played.
func (g *Game) World() *pit.World { return g.world }

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool { return g.paused }

// Unload flushes telemetry output and releases resources.
func (g *Game) Unload() {
	g.writeEvents()
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
