package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/liftlog/internal/models"
	"github.com/julianstephens/liftlog/internal/storage"
)

func (s *Store) AddLog(l models.Log) (int64, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	setsJSON, err := json.Marshal(l.Sets)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal sets: %w", err)
	}

	res, err := db.Exec(
		"INSERT INTO logs (workout_id, exercise_name, target, sets) VALUES (?, ?, ?, ?)",
		l.WorkoutID, l.ExerciseName, l.Target, string(setsJSON),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert log: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	s.broker.Publish(storage.CollectionLogs)
	return id, nil
}

func (s *Store) GetLog(id int64) (models.Log, error) {
	db, err := s.conn()
	if err != nil {
		return models.Log{}, err
	}

	row := db.QueryRow("SELECT id, workout_id, exercise_name, target, sets FROM logs WHERE id = ?", id)
	l, err := scanLog(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Log{}, fmt.Errorf("log %d: %w", id, storage.ErrNotFound)
	}
	return l, err
}

func (s *Store) GetLogsByWorkout(workoutID int64) ([]models.Log, error) {
	return s.queryLogs("SELECT id, workout_id, exercise_name, target, sets FROM logs WHERE workout_id = ? ORDER BY id", workoutID)
}

func (s *Store) GetLogsByExercise(name string) ([]models.Log, error) {
	return s.queryLogs("SELECT id, workout_id, exercise_name, target, sets FROM logs WHERE exercise_name = ? ORDER BY id", name)
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

	res, err := db.Exec("UPDATE logs SET sets = ? WHERE id = ?", string(setsJSON), id)
	if err != nil {
		return fmt.Errorf("failed to update log sets: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return fmt.Errorf("log %d: %w", id, storage.ErrNotFound)
	}

	s.broker.Publish(storage.CollectionLogs)
	return nil
}

// DeleteLogsByWorkout removes every log owned by a workout. Deleting zero
// rows is not an error; a draft workout may have no logs yet.
func (s *Store) DeleteLogsByWorkout(workoutID int64) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	if _, err := db.Exec("DELETE FROM logs WHERE workout_id = ?", workoutID); err != nil {
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
