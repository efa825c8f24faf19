// Package postgres implements the record store on PostgreSQL (lib/pq) for
// users who keep their log on a home server instead of a local file. It
// mirrors the sqlite backend's semantics exactly.
package postgres

import (
	"database/sql"
	"fmt"
	"io/fs"
	"net/url"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/migration"
	"github.com/julianstephens/liftlog/internal/storage"
	"github.com/julianstephens/liftlog/migrations"
)

type Store struct {
	connStr string
	db      *sql.DB
	broker  storage.Broker
}

func NewStore(connStr string) *Store {
	s := &Store{connStr: connStr}
	s.ensureSearchPath()
	return s
}

// ensureSearchPath pins the connection to the liftlog schema unless the
// caller already set one.
func (s *Store) ensureSearchPath() {
	if storage.IsPostgresConnString(s.connStr) {
		u, err := url.Parse(s.connStr)
		if err != nil {
			return
		}
		q := u.Query()
		if q.Get("search_path") == "" {
			q.Set("search_path", constants.AppName)
			u.RawQuery = q.Encode()
			s.connStr = u.String()
		}
		return
	}
	if !strings.Contains(strings.ToLower(s.connStr), "search_path=") {
		s.connStr = strings.TrimSpace(s.connStr) + " search_path=" + constants.AppName
	}
}

func (s *Store) Init() error {
	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(5)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	s.db = db

	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	return s.runMigrations()
}

func (s *Store) Load() error {
	if s.db != nil {
		return nil
	}

	db, err := sql.Open("postgres", s.connStr)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	return s.validateSchemaVersion()
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *Store) runMigrations() error {
	subFS, err := fs.Sub(migrations.FS, "postgres")
	if err != nil {
		return fmt.Errorf("failed to access postgres migrations: %w", err)
	}
	_, err = migration.NewRunner(s.db, subFS).Apply(nil)
	return err
}

func (s *Store) validateSchemaVersion() error {
	subFS, err := fs.Sub(migrations.FS, "postgres")
	if err != nil {
		return fmt.Errorf("failed to access postgres migrations: %w", err)
	}
	return migration.NewRunner(s.db, subFS).ValidateVersion()
}

func (s *Store) conn() (*sql.DB, error) {
	if s.db == nil {
		return nil, storage.ErrNotLoaded
	}
	return s.db, nil
}

func (s *Store) Subscribe(fn func(storage.Collection)) func() {
	return s.broker.Subscribe(fn)
}

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

// GetConfigPath returns the connection string with any query parameters
// stripped, suitable for display.
func (s *Store) GetConfigPath() string {
	if u, err := url.Parse(s.connStr); err == nil && u.Scheme != "" {
		u.RawQuery = ""
		return u.String()
	}
	return s.connStr
}

// GetDB exposes the underlying handle for diagnostics. Nil before Init/Load.
func (s *Store) GetDB() *sql.DB {
	return s.db
}
