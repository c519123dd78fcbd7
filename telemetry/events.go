package telemetry

// Event kinds as written to events.csv.
const (
	KindDrop   = "drop"
	KindSettle = "settle"
	KindSpawn  = "spawn"
)

// EventRecord is one lifecycle change, flattened for CSV.
type EventRecord struct {
	Tick  uint64  `csv:"tick"`
	Kind  string  `csv:"kind"`
	Index int     `csv:"index"`
	X     float64 `csv:"x"`
	Y     float64 `csv:"y"`
}

// NewEventRecord creates an event record.
func NewEventRecord(tick uint64, kind string, index int, x, y float64) EventRecord {
	return EventRecord{Tick: tick, Kind: kind, Index: index, X: x, Y: y}
}
