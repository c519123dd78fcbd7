// Package config provides configuration loading and access for the pit.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/fruitpit/fixed"
	"github.com/pthm-cable/fruitpit/fruit"
	"github.com/pthm-cable/fruitpit/geometry"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Config holds all pit configuration parameters.
type Config struct {
	Pit       PitConfig       `yaml:"pit"`
	Fruit     FruitConfig     `yaml:"fruit"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Screen    ScreenConfig    `yaml:"screen"`
	Telemetry TelemetryConfig `yaml:"telemetry"`

	// Derived values computed after loading
	Derived DerivedConfig `yaml:"-"`
}

// PitConfig holds the walls and the logical screen they sit in.
type PitConfig struct {
	WallLeft  int32 `yaml:"wall_left"`  // x of the left wall
	WallRight int32 `yaml:"wall_right"` // x of the right wall
	Floor     int32 `yaml:"floor"`      // y of the floor (y grows downward)
	Width     int32 `yaml:"width"`      // logical screen width
	Height    int32 `yaml:"height"`     // logical screen height
}

// FruitConfig holds spawn parameters.
type FruitConfig struct {
	Radius      int32 `yaml:"radius"`
	SpawnHeight int32 `yaml:"spawn_height"`
	AimStart    int32 `yaml:"aim_start"` // x of the aim cursor and first fruit
}

// PhysicsConfig holds per-tick physics constants. All rates are per tick.
type PhysicsConfig struct {
	Gravity          float64 `yaml:"gravity"`
	TerminalVelocity float64 `yaml:"terminal_velocity"`
	InputStep        float64 `yaml:"input_step"`
	FloorFriction    float64 `yaml:"floor_friction"`
	FloorBounce      float64 `yaml:"floor_bounce"`
	WallBounce       float64 `yaml:"wall_bounce"`
	RestThreshold    float64 `yaml:"rest_threshold"` // |v| at or below this snaps to 0 after a bounce
	RollingFriction  float64 `yaml:"rolling_friction"`
	PropulsionMin    float64 `yaml:"propulsion_min"`
	PropulsionMax    float64 `yaml:"propulsion_max"`
	SpinFactor       float64 `yaml:"spin_factor"`
	SettleTicks      int32   `yaml:"settle_ticks"`
	GridCellSize     int32   `yaml:"grid_cell_size"`
}

// ScreenConfig holds window settings for the graphical runner.
type ScreenConfig struct {
	Scale     int `yaml:"scale"` // window pixels per logical pixel
	TargetFPS int `yaml:"target_fps"`
}

// TelemetryConfig holds stats collection parameters.
type TelemetryConfig struct {
	StatsWindow         int `yaml:"stats_window"`          // ticks per stats window
	PerfCollectorWindow int `yaml:"perf_collector_window"` // ticks for perf rolling average
}

// DerivedConfig holds fixed-point copies of the tuning, computed once after load
// so the simulation never converts floats.
type DerivedConfig struct {
	Area             geometry.PlayArea
	Fruit            fruit.Tuning
	TerminalVelocity fixed.Num
	FloorFriction    fixed.Num
	FloorBounce      fixed.Num
	WallBounce       fixed.Num
	RestThreshold    fixed.Num
	RollingFriction  fixed.Num
	PropulsionMin    fixed.Num
	PropulsionMax    fixed.Num
	SpawnHeight      fixed.Num
	AimMin           fixed.Num // leftmost aim x
	AimMax           fixed.Num // rightmost aim x
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// MustInit is like Init but panics on error.
func MustInit(path string) {
	if err := Init(path); err != nil {
		panic(fmt.Sprintf("config: failed to initialize: %v", err))
	}
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only overwrites fields present in the file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Finalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Finalize validates c and recomputes the derived values. Call it after
// changing fields in code.
func (c *Config) Finalize() error {
	if err := c.Validate(); err != nil {
		return err
	}
	c.computeDerived()
	return nil
}

// Validate checks that the pit can hold a fruit and the physics constants are usable.
func (c *Config) Validate() error {
	p, f := c.Pit, c.Fruit
	switch {
	case f.Radius <= 0:
		return fmt.Errorf("fruit.radius %d must be positive: %w", f.Radius, ErrInvalid)
	case p.WallRight-p.WallLeft < 2*f.Radius:
		return fmt.Errorf("pit walls %d..%d too narrow for radius %d: %w", p.WallLeft, p.WallRight, f.Radius, ErrInvalid)
	case p.Floor <= 0 || p.Floor > p.Height:
		return fmt.Errorf("pit.floor %d outside screen height %d: %w", p.Floor, p.Height, ErrInvalid)
	case p.WallLeft < 0 || p.WallRight > p.Width:
		return fmt.Errorf("pit walls %d..%d outside screen width %d: %w", p.WallLeft, p.WallRight, p.Width, ErrInvalid)
	case c.Physics.TerminalVelocity <= 0:
		return fmt.Errorf("physics.terminal_velocity must be positive: %w", ErrInvalid)
	case c.Physics.PropulsionMin > c.Physics.PropulsionMax:
		return fmt.Errorf("physics.propulsion_min exceeds propulsion_max: %w", ErrInvalid)
	case c.Physics.SettleTicks < 1:
		return fmt.Errorf("physics.settle_ticks %d must be at least 1: %w", c.Physics.SettleTicks, ErrInvalid)
	case c.Physics.GridCellSize < 1:
		return fmt.Errorf("physics.grid_cell_size %d must be at least 1: %w", c.Physics.GridCellSize, ErrInvalid)
	}
	return nil
}

// computeDerived calculates values derived from loaded config.
func (c *Config) computeDerived() {
	ph := c.Physics
	d := &c.Derived

	d.Area = geometry.NewPlayArea(c.Pit.WallLeft, c.Pit.WallRight, c.Pit.Floor, c.Pit.Height)
	d.TerminalVelocity = fixed.FromFloat(ph.TerminalVelocity)
	d.Fruit = fruit.Tuning{
		Gravity:          fixed.FromFloat(ph.Gravity),
		TerminalVelocity: d.TerminalVelocity,
		InputStep:        fixed.FromFloat(ph.InputStep),
		SpinFactor:       fixed.FromFloat(ph.SpinFactor),
	}
	d.FloorFriction = fixed.FromFloat(ph.FloorFriction)
	d.FloorBounce = fixed.FromFloat(ph.FloorBounce)
	d.WallBounce = fixed.FromFloat(ph.WallBounce)
	d.RestThreshold = fixed.FromFloat(ph.RestThreshold)
	d.RollingFriction = fixed.FromFloat(ph.RollingFriction)
	d.PropulsionMin = fixed.FromFloat(ph.PropulsionMin)
	d.PropulsionMax = fixed.FromFloat(ph.PropulsionMax)
	d.SpawnHeight = fixed.FromInt(int(c.Fruit.SpawnHeight))
	d.AimMin = fixed.FromInt(int(c.Pit.WallLeft + c.Fruit.Radius))
	d.AimMax = fixed.FromInt(int(c.Pit.WallRight - c.Fruit.Radius))
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
