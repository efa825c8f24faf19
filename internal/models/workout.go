package models

type WorkoutStatus string

const (
	WorkoutDraft     WorkoutStatus = "draft"
	WorkoutCompleted WorkoutStatus = "completed"
)

// Workout is one day's training session record. A date may accumulate several
// completed workouts, but at most one non-completed (draft) workout exists per
// date at a time.
type Workout struct {
	ID         int64         `json:"id"`
	Date       string        `json:"date"` // YYYY-MM-DD
	WeekNumber int           `json:"weekNumber"`
	Status     WorkoutStatus `json:"status"`
}

// Active reports whether the workout still accepts set edits.
func (w Workout) Active() bool {
	return w.Status != WorkoutCompleted
}
