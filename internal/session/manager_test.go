package session

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/julianstephens/liftlog/internal/models"
	"github.com/julianstephens/liftlog/internal/routines"
	"github.com/julianstephens/liftlog/internal/storage/sqlite"
)

func testCatalog() routines.Catalog {
	return routines.Catalog{
		"Push": {
			Name: "Push",
			Exercises: []routines.Exercise{
				{Name: "Bench press", Sets: 4, Target: "8-10"},
				{Name: "Overhead press", Sets: 3, Target: "8"},
			},
		},
	}
}

func setupManager(t *testing.T) *Manager {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return NewManager(store, testCatalog())
}

func TestStartSession(t *testing.T) {
	t.Run("creates workout and template logs", func(t *testing.T) {
		m := setupManager(t)

		w, err := m.StartSession("2025-06-16", "Push")
		if err != nil {
			t.Fatalf("StartSession() returned unexpected error: %v", err)
		}
		if w.Date != "2025-06-16" || w.WeekNumber != 25 {
			t.Errorf("unexpected workout: %+v", w)
		}
		if w.Status != models.WorkoutDraft {
			t.Errorf("new workout status = %q, want draft", w.Status)
		}

		logs, err := m.store.GetLogsByWorkout(w.ID)
		if err != nil {
			t.Fatalf("GetLogsByWorkout() returned unexpected error: %v", err)
		}
		if len(logs) != 2 {
			t.Fatalf("session has %d logs, want 2", len(logs))
		}
		if logs[0].ExerciseName != "Bench press" || len(logs[0].Sets) != 4 {
			t.Errorf("unexpected first log: %+v", logs[0])
		}
		if logs[1].ExerciseName != "Overhead press" || len(logs[1].Sets) != 3 {
			t.Errorf("unexpected second log: %+v", logs[1])
		}
		for _, log := range logs {
			for i, set := range log.Sets {
				if set.Weight != nil || set.Reps != nil {
					t.Errorf("%s set %d not empty: %+v", log.ExerciseName, i, set)
				}
			}
		}
	})

	t.Run("reuses the existing draft for a date", func(t *testing.T) {
		m := setupManager(t)

		first, err := m.StartSession("2025-06-16", "Push")
		if err != nil {
			t.Fatalf("StartSession() returned unexpected error: %v", err)
		}
		second, err := m.StartSession("2025-06-16", "Push")
		if err != nil {
			t.Fatalf("second StartSession() returned unexpected error: %v", err)
		}
		if first.ID != second.ID {
			t.Errorf("second start created workout %d, want reuse of %d", second.ID, first.ID)
		}

		workouts, _ := m.store.GetWorkoutsByDate("2025-06-16")
		if len(workouts) != 1 {
			t.Errorf("date has %d workouts, want 1", len(workouts))
		}
	})

	t.Run("unknown routine", func(t *testing.T) {
		m := setupManager(t)
		if _, err := m.StartSession("2025-06-16", "Cardio"); !errors.Is(err, ErrUnknownRoutine) {
			t.Errorf("StartSession() = %v, want ErrUnknownRoutine", err)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		m := setupManager(t)
		if _, err := m.StartSession("16/06/2025", "Push"); err == nil {
			t.Error("StartSession() with malformed date should fail")
		}
	})
}

func TestGetActiveWorkout(t *testing.T) {
	m := setupManager(t)

	if _, err := m.GetActiveWorkout("2025-06-16"); !errors.Is(err, ErrNoActiveWorkout) {
		t.Errorf("GetActiveWorkout() on empty store = %v, want ErrNoActiveWorkout", err)
	}

	w, _ := m.StartSession("2025-06-16", "Push")
	active, err := m.GetActiveWorkout("2025-06-16")
	if err != nil {
		t.Fatalf("GetActiveWorkout() returned unexpected error: %v", err)
	}
	if active.ID != w.ID {
		t.Errorf("active workout id = %d, want %d", active.ID, w.ID)
	}

	// A completed workout is no longer active
	if err := m.CompleteSession(w.ID); err != nil {
		t.Fatalf("CompleteSession() returned unexpected error: %v", err)
	}
	if _, err := m.GetActiveWorkout("2025-06-16"); !errors.Is(err, ErrNoActiveWorkout) {
		t.Errorf("GetActiveWorkout() after complete = %v, want ErrNoActiveWorkout", err)
	}
}

func TestUpdateSet(t *testing.T) {
	m := setupManager(t)
	w, _ := m.StartSession("2025-06-16", "Push")
	logs, _ := m.store.GetLogsByWorkout(w.ID)
	logID := logs[0].ID

	t.Run("records weight and reps", func(t *testing.T) {
		if err := m.UpdateSet(logID, 0, models.FieldWeight, "52.5"); err != nil {
			t.Fatalf("UpdateSet() returned unexpected error: %v", err)
		}
		if err := m.UpdateSet(logID, 0, models.FieldReps, "8"); err != nil {
			t.Fatalf("UpdateSet() returned unexpected error: %v", err)
		}

		log, _ := m.store.GetLog(logID)
		if log.Sets[0].Weight == nil || *log.Sets[0].Weight != 52.5 {
			t.Errorf("weight = %v, want 52.5", log.Sets[0].Weight)
		}
		if log.Sets[0].Reps == nil || *log.Sets[0].Reps != 8 {
			t.Errorf("reps = %v, want 8", log.Sets[0].Reps)
		}
		// Other sets untouched
		for i := 1; i < len(log.Sets); i++ {
			if log.Sets[i].Weight != nil || log.Sets[i].Reps != nil {
				t.Errorf("set %d modified: %+v", i, log.Sets[i])
			}
		}
	})

	t.Run("malformed input clears the field", func(t *testing.T) {
		if err := m.UpdateSet(logID, 0, models.FieldWeight, "not a number"); err != nil {
			t.Fatalf("UpdateSet() returned unexpected error: %v", err)
		}
		log, _ := m.store.GetLog(logID)
		if log.Sets[0].Weight != nil {
			t.Errorf("weight = %v, want unset after malformed input", *log.Sets[0].Weight)
		}
		// Reps were not part of the edit and survive
		if log.Sets[0].Reps == nil || *log.Sets[0].Reps != 8 {
			t.Errorf("reps = %v, want 8", log.Sets[0].Reps)
		}
	})

	t.Run("out of range index", func(t *testing.T) {
		if err := m.UpdateSet(logID, 99, models.FieldWeight, "50"); err == nil {
			t.Error("UpdateSet() with out-of-range index should fail")
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		if err := m.UpdateSet(logID, 0, models.SetField("distance"), "5"); err == nil {
			t.Error("UpdateSet() with unknown field should fail")
		}
	})
}

func TestAddManualExercise(t *testing.T) {
	m := setupManager(t)
	w, _ := m.StartSession("2025-06-16", "Push")

	id, err := m.AddManualExercise(w.ID, "Dips", 2)
	if err != nil {
		t.Fatalf("AddManualExercise() returned unexpected error: %v", err)
	}
	log, _ := m.store.GetLog(id)
	if log.ExerciseName != "Dips" || len(log.Sets) != 2 {
		t.Errorf("unexpected log: %+v", log)
	}

	t.Run("set count floor of one", func(t *testing.T) {
		id, err := m.AddManualExercise(w.ID, "Plank", 0)
		if err != nil {
			t.Fatalf("AddManualExercise() returned unexpected error: %v", err)
		}
		log, _ := m.store.GetLog(id)
		if len(log.Sets) != 1 {
			t.Errorf("log has %d sets, want 1", len(log.Sets))
		}
	})

	t.Run("empty name", func(t *testing.T) {
		if _, err := m.AddManualExercise(w.ID, "", 3); err == nil {
			t.Error("AddManualExercise() with empty name should fail")
		}
	})

	t.Run("dangling workout id", func(t *testing.T) {
		if _, err := m.AddManualExercise(9999, "Dips", 3); err == nil {
			t.Error("AddManualExercise() against a missing workout should fail")
		}
	})
}

func TestCompleteSession(t *testing.T) {
	m := setupManager(t)
	w, _ := m.StartSession("2025-06-16", "Push")

	if err := m.CompleteSession(w.ID); err != nil {
		t.Fatalf("CompleteSession() returned unexpected error: %v", err)
	}
	got, _ := m.store.GetWorkout(w.ID)
	if got.Status != models.WorkoutCompleted {
		t.Errorf("status = %q, want completed", got.Status)
	}

	// Completing again is a no-op
	if err := m.CompleteSession(w.ID); err != nil {
		t.Errorf("second CompleteSession() = %v, want nil", err)
	}

	// A session started later on the same date is a fresh workout
	w2, err := m.StartSession("2025-06-16", "Push")
	if err != nil {
		t.Fatalf("StartSession() after complete returned unexpected error: %v", err)
	}
	if w2.ID == w.ID {
		t.Error("start after complete reused the completed workout")
	}
}

func TestResetSession(t *testing.T) {
	m := setupManager(t)
	w, _ := m.StartSession("2025-06-16", "Push")

	if err := m.ResetSession(w.ID); err != nil {
		t.Fatalf("ResetSession() returned unexpected error: %v", err)
	}

	if _, err := m.GetActiveWorkout("2025-06-16"); !errors.Is(err, ErrNoActiveWorkout) {
		t.Errorf("GetActiveWorkout() after reset = %v, want ErrNoActiveWorkout", err)
	}
	logs, _ := m.store.GetAllLogs()
	if len(logs) != 0 {
		t.Errorf("%d logs remain after reset, want 0", len(logs))
	}

	if err := m.ResetSession(w.ID); err == nil {
		t.Error("resetting a deleted workout should fail")
	}
}

func TestRecordBodyweight(t *testing.T) {
	m := setupManager(t)

	entry, err := m.RecordBodyweight("2025-06-16", 80.5)
	if err != nil {
		t.Fatalf("RecordBodyweight() returned unexpected error: %v", err)
	}
	if entry.WeekNumber != 25 {
		t.Errorf("week = %d, want 25", entry.WeekNumber)
	}

	// Same-day entry replaces the measurement
	again, err := m.RecordBodyweight("2025-06-16", 80.1)
	if err != nil {
		t.Fatalf("RecordBodyweight() returned unexpected error: %v", err)
	}
	if again.ID != entry.ID {
		t.Errorf("upsert changed the id: %d then %d", entry.ID, again.ID)
	}

	if _, err := m.RecordBodyweight("2025-06-16", 0); err == nil {
		t.Error("RecordBodyweight() with zero weight should fail")
	}
	if _, err := m.RecordBodyweight("bad-date", 80); err == nil {
		t.Error("RecordBodyweight() with bad date should fail")
	}
}
