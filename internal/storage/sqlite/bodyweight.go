package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/julianstephens/liftlog/internal/models"
	"github.com/julianstephens/liftlog/internal/storage"
)

// UpsertBodyweight inserts a measurement, or updates the existing entry when
// the date already has one. Returns the id of the surviving row.
func (s *Store) UpsertBodyweight(b models.Bodyweight) (int64, error) {
	db, err := s.conn()
	if err != nil {
		return 0, err
	}

	_, err = db.Exec(`
		INSERT INTO bodyweight (date, week_number, weight) VALUES (?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET weight = excluded.weight, week_number = excluded.week_number`,
		b.Date, b.WeekNumber, b.Weight,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to upsert bodyweight: %w", err)
	}

	var id int64
	if err := db.QueryRow("SELECT id FROM bodyweight WHERE date = ?", b.Date).Scan(&id); err != nil {
		return 0, err
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
	row := db.QueryRow("SELECT id, date, week_number, weight FROM bodyweight WHERE date = ?", date)
	if err := row.Scan(&b.ID, &b.Date, &b.WeekNumber, &b.Weight); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Bodyweight{}, fmt.Errorf("bodyweight for %s: %w", date, storage.ErrNotFound)
		}
		return models.Bodyweight{}, err
	}
	return b, nil
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
