package game

import "github.com/pthm-cable/fruitpit/telemetry"

// Title is the window and HUD title.
const Title = "Fruit Pit"

// Options holds runtime settings that are not part of the pit configuration.
type Options struct {
	LogStats       bool   // log window stats and perf via slog
	StatsWindow    int    // ticks per stats window (0 = config)
	OutputDir      string // CSV and config output (empty = disabled)
	Headless       bool   // no window, no raylib calls
	StepsPerUpdate int    // ticks per Update call
	Autopilot      bool   // scripted input instead of the keyboard; always on headless

	// StatsCallback, if set, receives every flushed stats window.
	StatsCallback func(telemetry.WindowStats)
}
