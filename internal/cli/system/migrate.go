package system

import (
	"database/sql"
	"fmt"
	"io/fs"

	"github.com/julianstephens/liftlog/internal/cli"
	"github.com/julianstephens/liftlog/internal/migration"
	"github.com/julianstephens/liftlog/internal/storage/postgres"
	"github.com/julianstephens/liftlog/migrations"
)

type MigrateCmd struct{}

func (c *MigrateCmd) Run(ctx *cli.Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}
	defer ctx.Store.Close()

	db, dir, err := migrationTarget(ctx)
	if err != nil {
		return err
	}

	sub, err := fs.Sub(migrations.FS, dir)
	if err != nil {
		return err
	}
	runner := migration.NewRunner(db, sub)

	count, err := runner.Apply(func(msg string) {
		fmt.Println(msg)
	})
	if err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	if count == 0 {
		fmt.Println("No migrations to apply. Database is up to date.")
	} else {
		fmt.Printf("\nSuccessfully applied %d migration(s).\n", count)
	}
	return nil
}

type dbProvider interface {
	GetDB() *sql.DB
}

// migrationTarget resolves the open database handle and the per-driver
// migration directory for the configured store.
func migrationTarget(ctx *cli.Context) (*sql.DB, string, error) {
	provider, ok := ctx.Store.(dbProvider)
	if !ok {
		return nil, "", fmt.Errorf("store does not expose a database connection")
	}
	db := provider.GetDB()
	if db == nil {
		return nil, "", fmt.Errorf("database connection is nil")
	}

	dir := "sqlite"
	if _, ok := ctx.Store.(*postgres.Store); ok {
		dir = "postgres"
	}
	return db, dir, nil
}
