// Package telemetry provides pit health tracking: windowed stats, per-fruit
// lifetimes, perf timing and CSV output.
package telemetry

import (
	"log/slog"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a window of ticks.
type WindowStats struct {
	WindowStartTick uint64 `csv:"-"`
	WindowEndTick   uint64 `csv:"window_end"`

	// Census at window end
	Fruits  int `csv:"fruits"`
	Held    int `csv:"held"`
	Falling int `csv:"falling"`
	Rolling int `csv:"rolling"`

	// Lifecycle events during window
	Drops   int `csv:"drops"`
	Settles int `csv:"settles"`
	Spawns  int `csv:"spawns"`

	// Time from drop to settle, for fruits that settled this window
	FallTicksMean float64 `csv:"fall_ticks_mean"`
	FallTicksMax  float64 `csv:"fall_ticks_max"`

	// Speed distribution of free fruits (sampled at window end)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedStd  float64 `csv:"speed_std"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`

	// Pile shape
	PileHeight float64 `csv:"pile_height"` // floor to top of the highest rolling fruit
	Contacts   int     `csv:"contacts"`    // fruit pairs resolved on the last tick
}

// Percentile calculates the p-th percentile of a sorted slice.
// p should be in [0, 1]. Returns 0 if slice is empty.
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}

	// Linear interpolation
	idx := p * float64(n-1)
	lo := int(idx)
	hi := lo + 1
	if hi >= n {
		return sorted[n-1]
	}

	frac := idx - float64(lo)
	return sorted[lo]*(1-frac) + sorted[hi]*frac
}

// ComputeSpeedStats calculates mean, standard deviation and percentiles.
// The standard deviation is the unbiased sample estimate; it is 0 for fewer
// than two values.
func ComputeSpeedStats(values []float64) (mean, std, p50, p90 float64) {
	n := len(values)
	if n == 0 {
		return 0, 0, 0, 0
	}

	if n == 1 {
		mean = values[0]
	} else {
		mean, std = stat.MeanStdDev(values, nil)
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	return mean, std, Percentile(sorted, 0.50), Percentile(sorted, 0.90)
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("window_start", s.WindowStartTick),
		slog.Uint64("window_end", s.WindowEndTick),
		slog.Int("fruits", s.Fruits),
		slog.Int("held", s.Held),
		slog.Int("falling", s.Falling),
		slog.Int("rolling", s.Rolling),
		slog.Int("drops", s.Drops),
		slog.Int("settles", s.Settles),
		slog.Int("spawns", s.Spawns),
		slog.Float64("fall_ticks_mean", s.FallTicksMean),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_p90", s.SpeedP90),
		slog.Float64("pile_height", s.PileHeight),
		slog.Int("contacts", s.Contacts),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"fruits", s.Fruits,
		"falling", s.Falling,
		"rolling", s.Rolling,
		"drops", s.Drops,
		"settles", s.Settles,
		"spawns", s.Spawns,
		"fall_ticks_mean", s.FallTicksMean,
		"fall_ticks_max", s.FallTicksMax,
		"speed_mean", s.SpeedMean,
		"speed_std", s.SpeedStd,
		"speed_p50", s.SpeedP50,
		"speed_p90", s.SpeedP90,
		"pile_height", s.PileHeight,
		"contacts", s.Contacts,
	)
}
