package models

// Bodyweight is a single dated body-weight measurement. The store enforces at
// most one entry per date; writing to an existing date updates it in place.
type Bodyweight struct {
	ID         int64   `json:"id"`
	Date       string  `json:"date"` // YYYY-MM-DD
	WeekNumber int     `json:"weekNumber"`
	Weight     float64 `json:"weight"`
}
