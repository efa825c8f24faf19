// Package history answers "what did I lift last time": it resolves the most
// recent completed session for an exercise and supports weekday- and
// exercise-scoped browsing of past workouts.
package history

import (
	"sort"

	"github.com/julianstephens/liftlog/internal/models"
	"github.com/julianstephens/liftlog/internal/storage"
)

// LastLog is the outcome of a history lookup: the full log for per-set
// comparison, its workout date, and the last recorded working weight.
// LastWeight is nil when the historical log exists but no set has a weight.
type LastLog struct {
	Log        models.Log
	Date       string
	LastWeight *float64
}

type Resolver struct {
	store storage.Provider
}

func NewResolver(store storage.Provider) *Resolver {
	return &Resolver{store: store}
}

// LastCompletedLog finds the most recent completed workout strictly before
// beforeDate that contains the exercise, and extracts the last non-empty set
// weight. A same-day completed session never counts as "last time". Returns
// (nil, nil) when there is no history; a first-time exercise is a legitimate
// state, not an error.
//
// When several completed workouts share the greatest date, the one with the
// highest workout id wins, so resolution is deterministic.
func (r *Resolver) LastCompletedLog(exerciseName, beforeDate string) (*LastLog, error) {
	logs, err := r.store.GetLogsByExercise(exerciseName)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return nil, nil
	}

	// Join to workouts, keeping only completed ones before the reference
	// date. ISO date strings order correctly under string comparison.
	valid := make(map[int64]models.Workout)
	for _, log := range logs {
		if _, seen := valid[log.WorkoutID]; seen {
			continue
		}
		w, err := r.store.GetWorkout(log.WorkoutID)
		if err != nil {
			// A log can outlive its workout only through external edits or
			// partial imports; skip it rather than failing the lookup.
			continue
		}
		if w.Status == models.WorkoutCompleted && w.Date < beforeDate {
			valid[w.ID] = w
		}
	}

	var best *models.Log
	var bestWorkout models.Workout
	for i := range logs {
		w, ok := valid[logs[i].WorkoutID]
		if !ok {
			continue
		}
		if best == nil || w.Date > bestWorkout.Date || (w.Date == bestWorkout.Date && w.ID > bestWorkout.ID) {
			best = &logs[i]
			bestWorkout = w
		}
	}
	if best == nil {
		return nil, nil
	}

	return &LastLog{
		Log:        *best,
		Date:       bestWorkout.Date,
		LastWeight: best.LastWeight(),
	}, nil
}

// Entry pairs a log with its owning workout's date for display.
type Entry struct {
	Log  models.Log
	Date string
}

// ExerciseHistory returns all logs for an exercise in increasing log id
// order (creation order), each paired with its workout date. The ordering is
// deliberately not re-validated against workout dates: an imported or
// manually edited record may appear out of chronological order, and that is
// surfaced as-is rather than silently reordered.
func (r *Resolver) ExerciseHistory(exerciseName string) ([]Entry, error) {
	logs, err := r.store.GetLogsByExercise(exerciseName)
	if err != nil {
		return nil, err
	}

	sort.Slice(logs, func(i, j int) bool { return logs[i].ID < logs[j].ID })

	entries := make([]Entry, 0, len(logs))
	for _, log := range logs {
		date := ""
		if w, err := r.store.GetWorkout(log.WorkoutID); err == nil {
			date = w.Date
		}
		entries = append(entries, Entry{Log: log, Date: date})
	}
	return entries, nil
}
