// Package session governs the lifecycle of a day's workout: locating or
// creating the active (non-completed) workout for a date, instantiating logs
// from a routine template, editing set values, and completing or discarding
// the session.
package session

import (
	"errors"
	"fmt"

	"github.com/julianstephens/liftlog/internal/logger"
	"github.com/julianstephens/liftlog/internal/models"
	"github.com/julianstephens/liftlog/internal/routines"
	"github.com/julianstephens/liftlog/internal/storage"
	"github.com/julianstephens/liftlog/internal/utils"
	"github.com/julianstephens/liftlog/internal/validation"
)

// ErrNoActiveWorkout is returned when a date has no draft workout.
var ErrNoActiveWorkout = errors.New("no active workout")

// ErrUnknownRoutine is returned when a routine name is not in the catalog.
var ErrUnknownRoutine = errors.New("unknown routine")

type Manager struct {
	store   storage.Provider
	catalog routines.Catalog
}

func NewManager(store storage.Provider, catalog routines.Catalog) *Manager {
	return &Manager{store: store, catalog: catalog}
}

// GetActiveWorkout returns the non-completed workout for a date, or
// ErrNoActiveWorkout. At most one draft exists per date; if the invariant has
// been violated externally the earliest one wins and the situation is logged
// (doctor reports it).
func (m *Manager) GetActiveWorkout(date string) (models.Workout, error) {
	workouts, err := m.store.GetWorkoutsByDate(date)
	if err != nil {
		return models.Workout{}, err
	}

	var active []models.Workout
	for _, w := range workouts {
		if w.Active() {
			active = append(active, w)
		}
	}
	if len(active) == 0 {
		return models.Workout{}, ErrNoActiveWorkout
	}
	if len(active) > 1 {
		logger.Warn("multiple draft workouts for date", "date", date, "count", len(active))
	}
	return active[0], nil
}

// StartSession ensures a draft workout exists for the date and instantiates
// one log per template entry of the routine, each pre-filled with the
// template's set count of unset placeholder sets.
//
// Workout creation is idempotent: a date with an existing draft reuses it
// rather than creating a second one. Re-applying a routine appends its logs
// to the existing session, the same path manual extra exercises take.
func (m *Manager) StartSession(date, routineName string) (models.Workout, error) {
	if err := validation.ValidateDate(date); err != nil {
		return models.Workout{}, err
	}

	routine, ok := m.catalog.Get(routineName)
	if !ok {
		return models.Workout{}, fmt.Errorf("%w: %s", ErrUnknownRoutine, routineName)
	}

	workout, err := m.GetActiveWorkout(date)
	if errors.Is(err, ErrNoActiveWorkout) {
		week, werr := utils.WeekNumber(date)
		if werr != nil {
			return models.Workout{}, werr
		}
		workout = models.Workout{
			Date:       date,
			WeekNumber: week,
			Status:     models.WorkoutDraft,
		}
		workout.ID, werr = m.store.AddWorkout(workout)
		if werr != nil {
			return models.Workout{}, fmt.Errorf("failed to create workout: %w", werr)
		}
		logger.Info("created workout", "date", date, "id", workout.ID, "routine", routineName)
	} else if err != nil {
		return models.Workout{}, err
	}

	// Not wrapped in a cross-collection transaction; a crash mid-sequence
	// can leave fewer logs than the template specifies. Accepted, and the
	// partial session remains editable rather than being masked.
	for _, ex := range routine.Exercises {
		log := models.Log{
			WorkoutID:    workout.ID,
			ExerciseName: ex.Name,
			Target:       ex.Target,
			Sets:         models.EmptySets(ex.Sets),
		}
		if _, err := m.store.AddLog(log); err != nil {
			return models.Workout{}, fmt.Errorf("failed to create log for %q: %w", ex.Name, err)
		}
	}

	return workout, nil
}

// AddManualExercise appends one log with the given set count to an existing
// workout. setCount has a minimum of one.
func (m *Manager) AddManualExercise(workoutID int64, name string, setCount int) (int64, error) {
	if name == "" {
		return 0, errors.New("exercise name cannot be empty")
	}
	if setCount < 1 {
		setCount = 1
	}

	// Resolve the workout first so a dangling id fails rather than creating
	// an orphaned log.
	if _, err := m.store.GetWorkout(workoutID); err != nil {
		return 0, err
	}

	return m.store.AddLog(models.Log{
		WorkoutID:    workoutID,
		ExerciseName: name,
		Sets:         models.EmptySets(setCount),
	})
}

// UpdateSet replaces exactly one field of one set in place, leaving all other
// sets untouched. The raw value is coerced to a number; empty or malformed
// input stores "unset", never zero.
func (m *Manager) UpdateSet(logID int64, setIndex int, field models.SetField, value string) error {
	log, err := m.store.GetLog(logID)
	if err != nil {
		return err
	}
	if setIndex < 0 || setIndex >= len(log.Sets) {
		return fmt.Errorf("set index %d out of range for log %d (have %d sets)", setIndex, logID, len(log.Sets))
	}

	set := log.Sets[setIndex]
	switch field {
	case models.FieldWeight:
		set.Weight = validation.ParseWeight(value)
	case models.FieldReps:
		set.Reps = validation.ParseReps(value)
	default:
		return fmt.Errorf("unknown set field %q", field)
	}

	sets, err := models.ReplaceSet(log.Sets, setIndex, set)
	if err != nil {
		return err
	}
	return m.store.UpdateLogSets(logID, sets)
}

// CompleteSession marks a workout completed. Irreversible through this
// interface; completing an already-completed workout is a no-op. A session
// started later on the same date becomes a fresh workout.
func (m *Manager) CompleteSession(workoutID int64) error {
	workout, err := m.store.GetWorkout(workoutID)
	if err != nil {
		return err
	}
	if workout.Status == models.WorkoutCompleted {
		return nil
	}
	return m.store.SetWorkoutStatus(workoutID, models.WorkoutCompleted)
}

// ResetSession deletes all logs for the workout, then the workout itself.
// Destructive; callers confirm upstream. After a reset the date has no
// active workout, so routine selection is offered again.
func (m *Manager) ResetSession(workoutID int64) error {
	if _, err := m.store.GetWorkout(workoutID); err != nil {
		return err
	}
	if err := m.store.DeleteLogsByWorkout(workoutID); err != nil {
		return err
	}
	if err := m.store.DeleteWorkout(workoutID); err != nil {
		return err
	}
	logger.Info("reset workout", "id", workoutID)
	return nil
}

// RecordBodyweight upserts the day's body-weight measurement, deriving the
// week number from the date.
func (m *Manager) RecordBodyweight(date string, weight float64) (models.Bodyweight, error) {
	if err := validation.ValidateDate(date); err != nil {
		return models.Bodyweight{}, err
	}
	if weight <= 0 {
		return models.Bodyweight{}, fmt.Errorf("weight must be positive, got %v", weight)
	}

	week, err := utils.WeekNumber(date)
	if err != nil {
		return models.Bodyweight{}, err
	}

	entry := models.Bodyweight{Date: date, WeekNumber: week, Weight: weight}
	entry.ID, err = m.store.UpsertBodyweight(entry)
	if err != nil {
		return models.Bodyweight{}, err
	}
	return entry, nil
}
