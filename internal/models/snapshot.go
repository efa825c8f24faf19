package models

// Snapshot is the interchange document for backup and restore: all three
// collections serialized in full, each element matching its stored shape
// verbatim. It must round-trip losslessly.
type Snapshot struct {
	Workouts   []Workout    `json:"workouts"`
	Logs       []Log        `json:"logs"`
	Bodyweight []Bodyweight `json:"bodyweight"`
}
