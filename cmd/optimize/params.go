// Command optimize searches the pit's bounce and friction constants with
// CMA-ES, scoring each candidate on headless autopilot runs.
package main

import (
	"github.com/pthm-cable/fruitpit/config"
)

// ParamSpec is one tunable constant and its search range.
type ParamSpec struct {
	Name     string
	Path     string // YAML path, for reports
	Min, Max float64
	Default  float64
}

func (s ParamSpec) clamp(x float64) float64 { return min(max(x, s.Min), s.Max) }

// toUnit maps x from [Min, Max] to [0, 1]; fromUnit is its inverse.
func (s ParamSpec) toUnit(x float64) float64   { return (x - s.Min) / (s.Max - s.Min) }
func (s ParamSpec) fromUnit(u float64) float64 { return s.Min + u*(s.Max-s.Min) }

// ParamVector is the ordered set of constants the optimizer searches.
type ParamVector struct {
	Specs []ParamSpec
}

// NewParamVector returns the response constants. Gravity, terminal velocity
// and the settle timer shape how the game feels and stay fixed.
func NewParamVector() *ParamVector {
	return &ParamVector{Specs: []ParamSpec{
		{Name: "floor_bounce", Path: "physics.floor_bounce", Min: -0.6, Max: -0.05, Default: -0.25},
		{Name: "wall_bounce", Path: "physics.wall_bounce", Min: -0.6, Max: -0.05, Default: -0.25},
		{Name: "floor_friction", Path: "physics.floor_friction", Min: 0.85, Max: 1.0, Default: 0.98},
		{Name: "rolling_friction", Path: "physics.rolling_friction", Min: 0.85, Max: 1.0, Default: 0.98},
		{Name: "propulsion_max", Path: "physics.propulsion_max", Min: 0.25, Max: 2.0, Default: 1.0},
	}}
}

func (pv *ParamVector) Dim() int { return len(pv.Specs) }

// each applies f to every value with its spec and returns the results.
func (pv *ParamVector) each(xs []float64, f func(ParamSpec, float64) float64) []float64 {
	out := make([]float64, len(pv.Specs))
	for i, s := range pv.Specs {
		out[i] = f(s, xs[i])
	}
	return out
}

// DefaultVector returns every spec's default.
func (pv *ParamVector) DefaultVector() []float64 {
	return pv.each(make([]float64, len(pv.Specs)), func(s ParamSpec, _ float64) float64 { return s.Default })
}

// Normalize maps raw values into the optimizer's unit cube.
func (pv *ParamVector) Normalize(raw []float64) []float64 {
	return pv.each(raw, ParamSpec.toUnit)
}

// Denormalize maps unit-cube values back to raw values. It does not clamp.
func (pv *ParamVector) Denormalize(unit []float64) []float64 {
	return pv.each(unit, ParamSpec.fromUnit)
}

// Clamp limits every value to its spec's range.
func (pv *ParamVector) Clamp(raw []float64) []float64 {
	return pv.each(raw, ParamSpec.clamp)
}

// fields returns the physics fields in Specs order.
func fields(ph *config.PhysicsConfig) []*float64 {
	return []*float64{
		&ph.FloorBounce,
		&ph.WallBounce,
		&ph.FloorFriction,
		&ph.RollingFriction,
		&ph.PropulsionMax,
	}
}

// ApplyToConfig writes clamped values into cfg and re-derives its
// fixed-point tuning.
func (pv *ParamVector) ApplyToConfig(cfg *config.Config, values []float64) error {
	for i, f := range fields(&cfg.Physics) {
		*f = pv.Specs[i].clamp(values[i])
	}
	return cfg.Finalize()
}

// ExtractFromConfig reads the current values from cfg.
func (pv *ParamVector) ExtractFromConfig(cfg *config.Config) []float64 {
	out := make([]float64, 0, len(pv.Specs))
	for _, f := range fields(&cfg.Physics) {
		out = append(out, *f)
	}
	return out
}
