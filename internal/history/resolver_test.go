package history

import (
	"path/filepath"
	"testing"

	"github.com/julianstephens/liftlog/internal/models"
	"github.com/julianstephens/liftlog/internal/storage/sqlite"
)

func setupStore(t *testing.T) *sqlite.Store {
	t.Helper()
	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to initialize test store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func fptr(v float64) *float64 { return &v }

// addSession creates a workout with one squat log holding the given set
// weights (nil entries stay unset).
func addSession(t *testing.T, store *sqlite.Store, date string, status models.WorkoutStatus, weights ...*float64) int64 {
	t.Helper()
	wid, err := store.AddWorkout(models.Workout{Date: date, WeekNumber: 1, Status: status})
	if err != nil {
		t.Fatalf("failed to add workout: %v", err)
	}
	sets := make([]models.Set, len(weights))
	for i, w := range weights {
		sets[i] = models.Set{Weight: w}
	}
	if _, err := store.AddLog(models.Log{WorkoutID: wid, ExerciseName: "Squat", Sets: sets}); err != nil {
		t.Fatalf("failed to add log: %v", err)
	}
	return wid
}

func TestLastCompletedLog(t *testing.T) {
	t.Run("no history is not an error", func(t *testing.T) {
		r := NewResolver(setupStore(t))
		last, err := r.LastCompletedLog("Squat", "2025-06-16")
		if err != nil {
			t.Fatalf("LastCompletedLog() returned unexpected error: %v", err)
		}
		if last != nil {
			t.Errorf("LastCompletedLog() = %+v, want nil for first-time exercise", last)
		}
	})

	t.Run("backward scan finds last recorded weight", func(t *testing.T) {
		store := setupStore(t)
		addSession(t, store, "2025-06-09", models.WorkoutCompleted, fptr(50), fptr(52), nil)

		last, err := NewResolver(store).LastCompletedLog("Squat", "2025-06-16")
		if err != nil {
			t.Fatalf("LastCompletedLog() returned unexpected error: %v", err)
		}
		if last == nil {
			t.Fatal("LastCompletedLog() = nil, want a result")
		}
		if last.LastWeight == nil || *last.LastWeight != 52 {
			t.Errorf("LastWeight = %v, want 52 (trailing empty set skipped)", last.LastWeight)
		}
		if last.Date != "2025-06-09" {
			t.Errorf("Date = %q, want 2025-06-09", last.Date)
		}
	})

	t.Run("most recent completed session wins", func(t *testing.T) {
		store := setupStore(t)
		addSession(t, store, "2025-06-02", models.WorkoutCompleted, fptr(48))
		addSession(t, store, "2025-06-09", models.WorkoutCompleted, fptr(52))

		last, err := NewResolver(store).LastCompletedLog("Squat", "2025-06-16")
		if err != nil {
			t.Fatalf("LastCompletedLog() returned unexpected error: %v", err)
		}
		if last == nil || *last.LastWeight != 52 {
			t.Errorf("LastCompletedLog() picked %+v, want the 2025-06-09 session", last)
		}
	})

	t.Run("draft sessions never count", func(t *testing.T) {
		store := setupStore(t)
		addSession(t, store, "2025-06-09", models.WorkoutDraft, fptr(60))

		last, err := NewResolver(store).LastCompletedLog("Squat", "2025-06-16")
		if err != nil {
			t.Fatalf("LastCompletedLog() returned unexpected error: %v", err)
		}
		if last != nil {
			t.Errorf("LastCompletedLog() = %+v, want nil when only drafts exist", last)
		}
	})

	t.Run("same-day completed session is excluded", func(t *testing.T) {
		store := setupStore(t)
		addSession(t, store, "2025-06-16", models.WorkoutCompleted, fptr(55))
		addSession(t, store, "2025-06-09", models.WorkoutCompleted, fptr(52))

		last, err := NewResolver(store).LastCompletedLog("Squat", "2025-06-16")
		if err != nil {
			t.Fatalf("LastCompletedLog() returned unexpected error: %v", err)
		}
		if last == nil || last.Date != "2025-06-09" {
			t.Errorf("LastCompletedLog() = %+v, want the strictly earlier session", last)
		}
	})

	t.Run("equal dates resolved by highest workout id", func(t *testing.T) {
		store := setupStore(t)
		addSession(t, store, "2025-06-09", models.WorkoutCompleted, fptr(50))
		second := addSession(t, store, "2025-06-09", models.WorkoutCompleted, fptr(54))

		last, err := NewResolver(store).LastCompletedLog("Squat", "2025-06-16")
		if err != nil {
			t.Fatalf("LastCompletedLog() returned unexpected error: %v", err)
		}
		if last == nil || last.Log.WorkoutID != second {
			t.Errorf("LastCompletedLog() = %+v, want workout %d", last, second)
		}
	})

	t.Run("history with no recorded weight", func(t *testing.T) {
		store := setupStore(t)
		addSession(t, store, "2025-06-09", models.WorkoutCompleted, nil, nil)

		last, err := NewResolver(store).LastCompletedLog("Squat", "2025-06-16")
		if err != nil {
			t.Fatalf("LastCompletedLog() returned unexpected error: %v", err)
		}
		if last == nil {
			t.Fatal("LastCompletedLog() = nil, want a result with nil LastWeight")
		}
		if last.LastWeight != nil {
			t.Errorf("LastWeight = %v, want nil", *last.LastWeight)
		}
	})
}

func TestExerciseHistory(t *testing.T) {
	store := setupStore(t)
	addSession(t, store, "2025-06-02", models.WorkoutCompleted, fptr(48))
	addSession(t, store, "2025-06-09", models.WorkoutDraft, fptr(52))

	entries, err := NewResolver(store).ExerciseHistory("Squat")
	if err != nil {
		t.Fatalf("ExerciseHistory() returned unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("ExerciseHistory() returned %d entries, want 2 (drafts included)", len(entries))
	}
	if entries[0].Date != "2025-06-02" || entries[1].Date != "2025-06-09" {
		t.Errorf("unexpected dates: %q, %q", entries[0].Date, entries[1].Date)
	}
	if entries[0].Log.ID >= entries[1].Log.ID {
		t.Error("entries not in creation order")
	}
}
