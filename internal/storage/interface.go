package storage

import "github.com/julianstephens/liftlog/internal/models"

// Provider is the record store contract. All application components read and
// write the three collections exclusively through it, which keeps them
// testable against any backend implementing the same semantics.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Workouts
	AddWorkout(models.Workout) (int64, error)
	GetWorkout(id int64) (models.Workout, error)
	GetWorkoutsByDate(date string) ([]models.Workout, error)
	GetWorkoutsByWeek(week int) ([]models.Workout, error)
	GetAllWorkouts() ([]models.Workout, error)
	SetWorkoutStatus(id int64, status models.WorkoutStatus) error
	DeleteWorkout(id int64) error

	// Logs
	AddLog(models.Log) (int64, error)
	GetLog(id int64) (models.Log, error)
	GetLogsByWorkout(workoutID int64) ([]models.Log, error)
	GetLogsByExercise(name string) ([]models.Log, error)
	GetAllLogs() ([]models.Log, error)
	UpdateLogSets(id int64, sets []models.Set) error
	DeleteLogsByWorkout(workoutID int64) error

	// Bodyweight
	UpsertBodyweight(models.Bodyweight) (int64, error)
	GetBodyweightByDate(date string) (models.Bodyweight, error)
	GetAllBodyweight() ([]models.Bodyweight, error)

	// Maintenance. Wipe removes every record from all three collections;
	// restore uses it before replaying a snapshot.
	Wipe() error

	// Subscribe registers a change listener; the returned function cancels
	// the subscription.
	Subscribe(fn func(Collection)) (cancel func())

	// Utils
	GetConfigPath() string
}
