package analysis

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

func addSquatSession(t *testing.T, store *sqlite.Store, date string, weights ...*float64) {
	t.Helper()
	wid, err := store.AddWorkout(models.Workout{Date: date, WeekNumber: 1, Status: models.WorkoutCompleted})
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
}

func TestBodyweightSeries(t *testing.T) {
	store := setupStore(t)
	// Inserted out of date order; the series must come back ascending
	store.UpsertBodyweight(models.Bodyweight{Date: "2025-06-18", WeekNumber: 25, Weight: 80.2})
	store.UpsertBodyweight(models.Bodyweight{Date: "2025-06-16", WeekNumber: 25, Weight: 80.6})

	points, err := NewAggregator(store).BodyweightSeries()
	if err != nil {
		t.Fatalf("BodyweightSeries() returned unexpected error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("BodyweightSeries() returned %d points, want 2", len(points))
	}
	if points[0].Date != "2025-06-16" || points[1].Date != "2025-06-18" {
		t.Errorf("points not ascending by date: %+v", points)
	}
	if points[0].Value != 80.6 {
		t.Errorf("first value = %v, want 80.6", points[0].Value)
	}
	if points[0].DisplayDate != "16 Jun" {
		t.Errorf("DisplayDate = %q, want %q", points[0].DisplayDate, "16 Jun")
	}
}

func TestLoadProgression(t *testing.T) {
	t.Run("per-session max, ascending by date", func(t *testing.T) {
		store := setupStore(t)
		addSquatSession(t, store, "2025-06-09", fptr(100), fptr(105), fptr(102.5))
		addSquatSession(t, store, "2025-06-02", fptr(97.5), fptr(100))

		seq, err := NewAggregator(store).LoadProgression("Squat")
		if err != nil {
			t.Fatalf("LoadProgression() returned unexpected error: %v", err)
		}

		var points []Point
		for p := range seq {
			points = append(points, p)
		}
		if len(points) != 2 {
			t.Fatalf("got %d points, want 2", len(points))
		}
		if points[0].Date != "2025-06-02" || points[0].Value != 100 {
			t.Errorf("unexpected first point: %+v", points[0])
		}
		if points[1].Date != "2025-06-09" || points[1].Value != 105 {
			t.Errorf("unexpected second point: %+v", points[1])
		}
	})

	t.Run("sessions with nothing lifted are dropped", func(t *testing.T) {
		store := setupStore(t)
		addSquatSession(t, store, "2025-06-02", fptr(100))
		addSquatSession(t, store, "2025-06-09", nil, nil)

		seq, err := NewAggregator(store).LoadProgression("Squat")
		if err != nil {
			t.Fatalf("LoadProgression() returned unexpected error: %v", err)
		}
		count := 0
		for range seq {
			count++
		}
		if count != 1 {
			t.Errorf("got %d points, want 1 (empty session dropped)", count)
		}
	})

	t.Run("sequence is restartable", func(t *testing.T) {
		store := setupStore(t)
		addSquatSession(t, store, "2025-06-02", fptr(100))
		addSquatSession(t, store, "2025-06-09", fptr(105))

		seq, err := NewAggregator(store).LoadProgression("Squat")
		if err != nil {
			t.Fatalf("LoadProgression() returned unexpected error: %v", err)
		}

		first, second := 0, 0
		for range seq {
			first++
		}
		for range seq {
			second++
		}
		if first != 2 || second != 2 {
			t.Errorf("iterations saw %d then %d points, want 2 both times", first, second)
		}
	})

	t.Run("early break stops iteration", func(t *testing.T) {
		store := setupStore(t)
		addSquatSession(t, store, "2025-06-02", fptr(100))
		addSquatSession(t, store, "2025-06-09", fptr(105))

		seq, _ := NewAggregator(store).LoadProgression("Squat")
		count := 0
		for range seq {
			count++
			break
		}
		if count != 1 {
			t.Errorf("saw %d points before break, want 1", count)
		}
	})

	t.Run("unknown exercise yields empty sequence", func(t *testing.T) {
		store := setupStore(t)
		seq, err := NewAggregator(store).LoadProgression("Deadlift")
		if err != nil {
			t.Fatalf("LoadProgression() returned unexpected error: %v", err)
		}
		for range seq {
			t.Fatal("sequence should be empty")
		}
	})
}
