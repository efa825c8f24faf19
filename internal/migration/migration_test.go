package migration

import (
	"database/sql"
	"path/filepath"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"001_init.sql":       {Data: []byte("CREATE TABLE a (id INTEGER PRIMARY KEY);")},
		"002_add_column.sql": {Data: []byte("ALTER TABLE a ADD COLUMN name TEXT;")},
	}
}

func TestCurrentVersionFreshDatabase(t *testing.T) {
	runner := NewRunner(openTestDB(t), testFS())
	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion() returned unexpected error: %v", err)
	}
	if version != 0 {
		t.Errorf("CurrentVersion() = %d, want 0 for a fresh database", version)
	}
}

func TestReadMigrationFiles(t *testing.T) {
	t.Run("sorted by version", func(t *testing.T) {
		runner := NewRunner(openTestDB(t), testFS())
		migrations, err := runner.ReadMigrationFiles()
		if err != nil {
			t.Fatalf("ReadMigrationFiles() returned unexpected error: %v", err)
		}
		if len(migrations) != 2 {
			t.Fatalf("got %d migrations, want 2", len(migrations))
		}
		if migrations[0].Version != 1 || migrations[0].Name != "init" {
			t.Errorf("unexpected first migration: %+v", migrations[0])
		}
		if migrations[1].Version != 2 || migrations[1].Name != "add_column" {
			t.Errorf("unexpected second migration: %+v", migrations[1])
		}
	})

	t.Run("rejects bad filenames", func(t *testing.T) {
		fs := fstest.MapFS{"noversion.sql": {Data: []byte("SELECT 1;")}}
		if _, err := NewRunner(openTestDB(t), fs).ReadMigrationFiles(); err == nil {
			t.Error("ReadMigrationFiles() should reject a file without a version prefix")
		}
	})

	t.Run("rejects duplicate versions", func(t *testing.T) {
		fs := fstest.MapFS{
			"001_a.sql": {Data: []byte("SELECT 1;")},
			"001_b.sql": {Data: []byte("SELECT 1;")},
		}
		if _, err := NewRunner(openTestDB(t), fs).ReadMigrationFiles(); err == nil {
			t.Error("ReadMigrationFiles() should reject duplicate versions")
		}
	})
}

func TestApply(t *testing.T) {
	t.Run("applies all pending and records version", func(t *testing.T) {
		db := openTestDB(t)
		runner := NewRunner(db, testFS())

		applied, err := runner.Apply(nil)
		if err != nil {
			t.Fatalf("Apply() returned unexpected error: %v", err)
		}
		if applied != 2 {
			t.Errorf("Apply() applied %d migrations, want 2", applied)
		}

		version, _ := runner.CurrentVersion()
		if version != 2 {
			t.Errorf("CurrentVersion() = %d after apply, want 2", version)
		}

		// The migrated schema is actually usable
		if _, err := db.Exec("INSERT INTO a (name) VALUES ('x')"); err != nil {
			t.Errorf("migrated schema rejects insert: %v", err)
		}
	})

	t.Run("second apply is a no-op", func(t *testing.T) {
		runner := NewRunner(openTestDB(t), testFS())
		if _, err := runner.Apply(nil); err != nil {
			t.Fatalf("Apply() returned unexpected error: %v", err)
		}
		applied, err := runner.Apply(nil)
		if err != nil {
			t.Fatalf("second Apply() returned unexpected error: %v", err)
		}
		if applied != 0 {
			t.Errorf("second Apply() applied %d migrations, want 0", applied)
		}
	})

	t.Run("fails when database is newer than known migrations", func(t *testing.T) {
		db := openTestDB(t)
		runner := NewRunner(db, testFS())
		if _, err := runner.Apply(nil); err != nil {
			t.Fatalf("Apply() returned unexpected error: %v", err)
		}

		// Simulate an older binary against a newer schema
		older := NewRunner(db, fstest.MapFS{"001_init.sql": testFS()["001_init.sql"]})
		if _, err := older.Apply(nil); err == nil {
			t.Error("Apply() should refuse a schema newer than its migrations")
		}
		if err := older.ValidateVersion(); err == nil {
			t.Error("ValidateVersion() should refuse a schema newer than its migrations")
		}
	})

	t.Run("failed migration rolls back", func(t *testing.T) {
		db := openTestDB(t)
		fs := fstest.MapFS{
			"001_init.sql": {Data: []byte("CREATE TABLE a (id INTEGER PRIMARY KEY);")},
			"002_bad.sql":  {Data: []byte("THIS IS NOT SQL;")},
		}
		runner := NewRunner(db, fs)

		applied, err := runner.Apply(nil)
		if err == nil {
			t.Fatal("Apply() with a broken migration should fail")
		}
		if applied != 1 {
			t.Errorf("Apply() applied %d migrations before failing, want 1", applied)
		}
		version, _ := runner.CurrentVersion()
		if version != 1 {
			t.Errorf("CurrentVersion() = %d after failed migration, want 1", version)
		}
	})
}
