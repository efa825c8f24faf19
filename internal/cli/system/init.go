// Package system holds the maintenance commands: init, migrate, doctor, and
// the keyring credential helpers.
package system

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/julianstephens/liftlog/internal/backup"
	"github.com/julianstephens/liftlog/internal/cli"
	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/storage"
	"github.com/julianstephens/liftlog/internal/storage/postgres"
	"github.com/julianstephens/liftlog/internal/storage/sqlite"
)

type InitCmd struct {
	Force  bool   `help:"Delete the existing database before initialization."`
	Source string `help:"Database path or connection string to copy data from."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		dbPath := ctx.Store.GetConfigPath()
		// Refuse to delete the source (user error protection)
		if c.Source != "" {
			if abs, err := filepath.Abs(dbPath); err == nil {
				dbPath = abs
			}
			if absSource, err := filepath.Abs(c.Source); err == nil && absSource == dbPath {
				return fmt.Errorf("cannot use --force when source and destination are the same: %s", dbPath)
			}
		}
		if _, err := os.Stat(dbPath); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing database: %w", err)
			}
			if err := os.Remove(dbPath); err != nil {
				return fmt.Errorf("failed to delete existing database: %w", err)
			}
			fmt.Printf("Deleted existing database at: %s\n", dbPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing database: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}
	fmt.Printf("Initialized liftlog storage at: %s\n", ctx.Store.GetConfigPath())

	if c.Source != "" {
		fmt.Printf("Copying data from: %s\n", c.Source)
		if err := c.copyData(ctx, c.Source); err != nil {
			return fmt.Errorf("data copy failed: %w", err)
		}
		fmt.Println("Data copy completed successfully!")
	}
	return nil
}

// copyData exports the source store and imports the snapshot into the
// freshly initialized destination, remapping ids.
func (c *InitCmd) copyData(ctx *cli.Context, source string) error {
	var sourceStore storage.Provider
	if storage.IsPostgresConnString(source) {
		if storage.HasEmbeddedCredentials(source) {
			return fmt.Errorf("source connection string contains embedded credentials; use the keyring or %s instead", constants.ConnectionEnvVar)
		}
		sourceStore = postgres.NewStore(source)
	} else {
		sourceStore = sqlite.NewStore(source)
	}

	if err := sourceStore.Load(); err != nil {
		return fmt.Errorf("failed to load source database: %w", err)
	}
	defer sourceStore.Close()

	snap, err := backup.Export(sourceStore)
	if err != nil {
		return fmt.Errorf("failed to export source data: %w", err)
	}
	if err := backup.Import(ctx.Store, snap, false); err != nil {
		return fmt.Errorf("failed to import into destination: %w", err)
	}
	fmt.Printf("  Copied %d workouts, %d logs, %d bodyweight entries\n",
		len(snap.Workouts), len(snap.Logs), len(snap.Bodyweight))
	return nil
}
