package history

import (
	"sort"

	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/models"
	"github.com/julianstephens/liftlog/internal/storage"
	"github.com/julianstephens/liftlog/internal/utils"
)

// Filter classifies stored workouts by derived weekday and lists the
// distinct exercises on record.
type Filter struct {
	store storage.Provider
}

func NewFilter(store storage.Provider) *Filter {
	return &Filter{store: store}
}

// WorkoutsForWeekday returns all workouts, regardless of status, whose date
// falls on the labeled weekday. The "All" sentinel disables filtering.
// Workouts whose stored date fails to parse are excluded from weekday
// matches but still included under "All".
func (f *Filter) WorkoutsForWeekday(label string) ([]models.Workout, error) {
	workouts, err := f.store.GetAllWorkouts()
	if err != nil {
		return nil, err
	}
	if label == constants.AllFilter {
		return workouts, nil
	}

	var matched []models.Workout
	for _, w := range workouts {
		day, err := utils.WeekdayLabel(w.Date)
		if err != nil {
			continue
		}
		if day == label {
			matched = append(matched, w)
		}
	}
	return matched, nil
}

// ExerciseNames returns the distinct exercise names across all logs, sorted
// alphabetically and prefixed with the "All" sentinel.
func (f *Filter) ExerciseNames() ([]string, error) {
	logs, err := f.store.GetAllLogs()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	for _, l := range logs {
		seen[l.ExerciseName] = struct{}{}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return append([]string{constants.AllFilter}, names...), nil
}
