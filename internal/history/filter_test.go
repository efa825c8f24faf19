package history

import (
	"testing"

	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/models"
)

func TestWorkoutsForWeekday(t *testing.T) {
	store := setupStore(t)
	// 2025-06-16 is a Monday, 2025-06-17 a Tuesday
	addSession(t, store, "2025-06-16", models.WorkoutCompleted, fptr(50))
	addSession(t, store, "2025-06-17", models.WorkoutCompleted, fptr(60))
	addSession(t, store, "2025-06-23", models.WorkoutDraft, fptr(52))

	f := NewFilter(store)

	t.Run("matches by derived weekday", func(t *testing.T) {
		mondays, err := f.WorkoutsForWeekday("Monday")
		if err != nil {
			t.Fatalf("WorkoutsForWeekday() returned unexpected error: %v", err)
		}
		if len(mondays) != 2 {
			t.Fatalf("found %d Monday workouts, want 2 (drafts included)", len(mondays))
		}
		for _, w := range mondays {
			if w.Date != "2025-06-16" && w.Date != "2025-06-23" {
				t.Errorf("unexpected workout date %q", w.Date)
			}
		}
	})

	t.Run("All disables filtering", func(t *testing.T) {
		all, err := f.WorkoutsForWeekday(constants.AllFilter)
		if err != nil {
			t.Fatalf("WorkoutsForWeekday() returned unexpected error: %v", err)
		}
		if len(all) != 3 {
			t.Errorf("found %d workouts under All, want 3", len(all))
		}
	})

	t.Run("no matches", func(t *testing.T) {
		sundays, err := f.WorkoutsForWeekday("Sunday")
		if err != nil {
			t.Fatalf("WorkoutsForWeekday() returned unexpected error: %v", err)
		}
		if len(sundays) != 0 {
			t.Errorf("found %d Sunday workouts, want 0", len(sundays))
		}
	})
}

func TestExerciseNames(t *testing.T) {
	store := setupStore(t)
	wid := addSession(t, store, "2025-06-16", models.WorkoutCompleted, fptr(50))
	// Duplicate name in a second log and an extra distinct one
	store.AddLog(models.Log{WorkoutID: wid, ExerciseName: "Squat", Sets: models.EmptySets(1)})
	store.AddLog(models.Log{WorkoutID: wid, ExerciseName: "Bench press", Sets: models.EmptySets(1)})

	names, err := NewFilter(store).ExerciseNames()
	if err != nil {
		t.Fatalf("ExerciseNames() returned unexpected error: %v", err)
	}

	want := []string{constants.AllFilter, "Bench press", "Squat"}
	if len(names) != len(want) {
		t.Fatalf("ExerciseNames() = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("names[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}
