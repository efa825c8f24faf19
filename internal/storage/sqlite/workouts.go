package sqlite

import (
	"database/sql"
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

	res, err := db.Exec(
		"INSERT INTO workouts (date, week_number, status) VALUES (?, ?, ?)",
		w.Date, w.WeekNumber, w.Status,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert workout: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	s.broker.Publish(storage.CollectionWorkouts)
	return id, nil
}

func (s *Store) GetWorkout(id int64) (models.Workout, error) {
	db, err := s.conn()
	if err != nil {
		return models.Workout{}, err
	}

	row := db.QueryRow("SELECT id, date, week_number, status FROM workouts WHERE id = ?", id)
	w, err := scanWorkout(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Workout{}, fmt.Errorf("workout %d: %w", id, storage.ErrNotFound)
	}
	return w, err
}

func (s *Store) GetWorkoutsByDate(date string) ([]models.Workout, error) {
	return s.queryWorkouts("SELECT id, date, week_number, status FROM workouts WHERE date = ? ORDER BY id", date)
}

func (s *Store) GetWorkoutsByWeek(week int) ([]models.Workout, error) {
	return s.queryWorkouts("SELECT id, date, week_number, status FROM workouts WHERE week_number = ? ORDER BY date, id", week)
}

func (s *Store) GetAllWorkouts() ([]models.Workout, error) {
	return s.queryWorkouts("SELECT id, date, week_number, status FROM workouts ORDER BY date, id")
}

func (s *Store) SetWorkoutStatus(id int64, status models.WorkoutStatus) error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	res, err := db.Exec("UPDATE workouts SET status = ? WHERE id = ?", status, id)
	if err != nil {
		return fmt.Errorf("failed to update workout status: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
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

	res, err := db.Exec("DELETE FROM workouts WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
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

type rowScanner interface {
	Scan(dest ...any) error
}

func scanWorkout(row rowScanner) (models.Workout, error) {
	var w models.Workout
	err := row.Scan(&w.ID, &w.Date, &w.WeekNumber, &w.Status)
	return w, err
}
