// Package sqlite implements the record store on an embedded SQLite database
// (modernc.org/sqlite, no cgo). It is the default backend for local use.
package sqlite

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/liftlog/internal/migration"
	"github.com/julianstephens/liftlog/internal/storage"
	"github.com/julianstephens/liftlog/migrations"
)

type Store struct {
	path   string
	db     *sql.DB
	broker storage.Broker
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'liftlog init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	return s.validateSchemaVersion()
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) runMigrations() error {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}

	runner := migration.NewRunner(s.db, subFS)
	_, err = runner.Apply(nil)
	return err
}

func (s *Store) validateSchemaVersion() error {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS).ValidateVersion()
}

// conn guards against use before Init/Load.
func (s *Store) conn() (*sql.DB, error) {
	if s.db == nil {
		return nil, storage.ErrNotLoaded
	}
	return s.db, nil
}

// Subscribe registers a change listener with the store's broker.
func (s *Store) Subscribe(fn func(storage.Collection)) func() {
	return s.broker.Subscribe(fn)
}

// Wipe removes every record from all three collections.
func (s *Store) Wipe() error {
	db, err := s.conn()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"logs", "workouts", "bodyweight"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to wipe %s: %w", table, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	s.broker.Publish(storage.CollectionWorkouts)
	s.broker.Publish(storage.CollectionLogs)
	s.broker.Publish(storage.CollectionBodyweight)
	return nil
}

func (s *Store) GetConfigPath() string {
	return s.path
}

// GetDB exposes the underlying handle for diagnostics. Nil before Init/Load.
func (s *Store) GetDB() *sql.DB {
	return s.db
}
