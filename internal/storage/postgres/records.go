package postgres

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/liftlog/internal/models"
	"github.com/julianstephens/liftlog/internal/storage"
)

func (s *Store) AddWorkout(w models.Workout) (int64, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	var id int64
	err = db.QueryRow(
		"INSERT INTO workouts (date, week_number, status) VALUES ($1, $2, $3) RETURNING id",
		w.Date, w.WeekNumber, w.Status,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert workout: %w", err)
	}

	s.broker.Publish(storage.CollectionWorkouts)
	return id, nil
}

func (s *Store) GetWorkout(id int64) (models.Workout, error) {
	db, err := s.conn()
	if err != nil {
		return models.Workout{}, err
	}

	var w models.Workout
	err = db.QueryRow("SELECT id, date, week_number, status FROM workouts WHERE id = $1", id).
		Scan(&w.ID, &w.Date, &w.WeekNumber, &w.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Workout{}, fmt.Errorf("workout %d: %w", id, storage.ErrNotFound)
	}
	return w, err
}

func (s *Store) GetWorkoutsByDate(date string) ([]models.Workout, error) {
	return s.queryWorkouts("SELECT id, date, week_number, status FROM workouts WHERE date = $1 ORDER BY id", date)
}

func (s *Store) GetWorkoutsByWeek(week int) ([]models.Workout, error) {
	return s.queryWorkouts("SELECT id, date, week_number, status FROM workouts WHERE week_number = $1 ORDER BY date, id", week)
}

func (s *Store) GetAllWorkouts() ([]models.Workout, error) {
	return s.queryWorkouts("SELECT id, date, week_number, status FROM workouts ORDER BY date, id")
}

func (s *Store) SetWorkoutStatus(id int64, status models.WorkoutStatus) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	res, err := db.Exec("UPDATE workouts SET status = $1 WHERE id = $2", status, id)
	if err != nil {
		return fmt.Errorf("failed to update workout status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("workout %d: %w", id, storage.ErrNotFound)
	}

	s.broker.Publish(storage.CollectionWorkouts)
	return nil
}

func (s *Store) DeleteWorkout(id int64) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	res, err := db.Exec("DELETE FROM workouts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("workout %d: %w", id, storage.ErrNotFound)
	}

	s.broker.Publish(storage.CollectionWorkouts)
	return nil
}

func (s *Store) queryWorkouts(query string, args ...any) ([]models.Workout, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []models.Workout
	for rows.Next() {
		var w models.Workout
		if err := rows.Scan(&w.ID, &w.Date, &w.WeekNumber, &w.Status); err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}

func (s *Store) AddLog(l models.Log) (int64, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	setsJSON, err := json.Marshal(l.Sets)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal sets: %w", err)
	}

	var id int64
	err = db.QueryRow(
		"INSERT INTO logs (workout_id, exercise_name, target, sets) VALUES ($1, $2, $3, $4) RETURNING id",
		l.WorkoutID, l.ExerciseName, l.Target, string(setsJSON),
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to insert log: %w", err)
	}

	s.broker.Publish(storage.CollectionLogs)
	return id, nil
}

func (s *Store) GetLog(id int64) (models.Log, error) {
	db, err := s.conn()
	if err != nil {
		return models.Log{}, err
	}

	row := db.QueryRow("SELECT id, workout_id, exercise_name, target, sets FROM logs WHERE id = $1", id)
	l, err := scanLog(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Log{}, fmt.Errorf("log %d: %w", id, storage.ErrNotFound)
	}
	return l, err
}

func (s *Store) GetLogsByWorkout(workoutID int64) ([]models.Log, error) {
	return s.queryLogs("SELECT id, workout_id, exercise_name, target, sets FROM logs WHERE workout_id = $1 ORDER BY id", workoutID)
}

func (s *Store) GetLogsByExercise(name string) ([]models.Log, error) {
	return s.queryLogs("SELECT id, workout_id, exercise_name, target, sets FROM logs WHERE exercise_name = $1 ORDER BY id", name)
}

func (s *Store) GetAllLogs() ([]models.Log, error) {
	return s.queryLogs("SELECT id, workout_id, exercise_name, target, sets FROM logs ORDER BY id")
}

func (s *Store) UpdateLogSets(id int64, sets []models.Set) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	setsJSON, err := json.Marshal(sets)
	if err != nil {
		return fmt.Errorf("failed to marshal sets: %w", err)
	}

	res, err := db.Exec("UPDATE logs SET sets = $1 WHERE id = $2", string(setsJSON), id)
	if err != nil {
		return fmt.Errorf("failed to update log sets: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("log %d: %w", id, storage.ErrNotFound)
	}

	s.broker.Publish(storage.CollectionLogs)
	return nil
}

func (s *Store) DeleteLogsByWorkout(workoutID int64) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	if _, err := db.Exec("DELETE FROM logs WHERE workout_id = $1", workoutID); err != nil {
		return fmt.Errorf("failed to delete logs for workout %d: %w", workoutID, err)
	}

	s.broker.Publish(storage.CollectionLogs)
	return nil
}

func (s *Store) queryLogs(query string, args ...any) ([]models.Log, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []models.Log
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLog(row rowScanner) (models.Log, error) {
	var l models.Log
	var setsJSON string
	if err := row.Scan(&l.ID, &l.WorkoutID, &l.ExerciseName, &l.Target, &setsJSON); err != nil {
		return models.Log{}, err
	}
	if err := json.Unmarshal([]byte(setsJSON), &l.Sets); err != nil {
		return models.Log{}, fmt.Errorf("failed to parse sets for log %d: %w", l.ID, err)
	}
	return l, nil
}

func (s *Store) UpsertBodyweight(b models.Bodyweight) (int64, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	var id int64
	err = db.QueryRow(`
		INSERT INTO bodyweight (date, week_number, weight) VALUES ($1, $2, $3)
		ON CONFLICT (date) DO UPDATE SET weight = EXCLUDED.weight, week_number = EXCLUDED.week_number
		RETURNING id`,
		b.Date, b.WeekNumber, b.Weight,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert bodyweight: %w", err)
	}

	s.broker.Publish(storage.CollectionBodyweight)
	return id, nil
}

func (s *Store) GetBodyweightByDate(date string) (models.Bodyweight, error) {
	db, err := s.conn()
	if err != nil {
		return models.Bodyweight{}, err
	}

	var b models.Bodyweight
	err = db.QueryRow("SELECT id, date, week_number, weight FROM bodyweight WHERE date = $1", date).
		Scan(&b.ID, &b.Date, &b.WeekNumber, &b.Weight)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Bodyweight{}, fmt.Errorf("bodyweight for %s: %w", date, storage.ErrNotFound)
	}
	return b, err
}

func (s *Store) GetAllBodyweight() ([]models.Bodyweight, error) {
	db, err := s.conn()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query("SELECT id, date, week_number, weight FROM bodyweight ORDER BY date")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []models.Bodyweight
	for rows.Next() {
		var b models.Bodyweight
		if err := rows.Scan(&b.ID, &b.Date, &b.WeekNumber, &b.Weight); err != nil {
			return nil, err
		}
		entries = append(entries, b)
	}
	return entries, rows.Err()
}
