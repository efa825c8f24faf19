package models

import "fmt"

// SetField names an editable field of a set.
type SetField string

const (
	FieldWeight SetField = "weight"
	FieldReps   SetField = "reps"
)

// Set is one unit of an exercise's performance. A nil field means "unset",
// which is distinct from zero: an empty input box never becomes a lifted
// weight of 0 downstream.
type Set struct {
	Weight *float64 `json:"weight,omitempty"`
	Reps   *int     `json:"reps,omitempty"`
}

// Log records one exercise's performance within a workout. Set order is
// significant (index = position in the session) and is only ever appended to
// or value-edited in place, never reordered.
type Log struct {
	ID           int64  `json:"id"`
	WorkoutID    int64  `json:"workoutId"`
	ExerciseName string `json:"exerciseName"`
	Target       string `json:"target,omitempty"`
	Sets         []Set  `json:"sets"`
}

// EmptySets returns n placeholder sets with weight and reps unset.
func EmptySets(n int) []Set {
	return make([]Set, n)
}

// ReplaceSet returns a new sets slice with the set at index replaced. The
// input slice is never mutated, so callers holding the old slice (UI state,
// cached query results) are not aliased to the persisted value.
func ReplaceSet(sets []Set, index int, set Set) ([]Set, error) {
	if index < 0 || index >= len(sets) {
		return nil, fmt.Errorf("set index %d out of range (have %d sets)", index, len(sets))
	}
	out := make([]Set, len(sets))
	copy(out, sets)
	out[index] = set
	return out, nil
}

// MaxWeight returns the heaviest weight across the log's sets, treating unset
// weights as 0. A result of 0 means nothing was lifted.
func (l Log) MaxWeight() float64 {
	var max float64
	for _, s := range l.Sets {
		if s.Weight != nil && *s.Weight > max {
			max = *s.Weight
		}
	}
	return max
}

// LastWeight scans the sets from the last index backward and returns the
// first recorded weight, or nil when no set has one. The trailing sets of a
// session are often left empty, so the scan skips them rather than reporting
// "no weight".
func (l Log) LastWeight() *float64 {
	for i := len(l.Sets) - 1; i >= 0; i-- {
		if l.Sets[i].Weight != nil {
			w := *l.Sets[i].Weight
			return &w
		}
	}
	return nil
}
