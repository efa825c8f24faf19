// Package backups holds the snapshot commands: export, import, and the
// rotated backup set.
package backups

import (
	"fmt"
	"os"

	"github.com/julianstephens/liftlog/internal/backup"
	"github.com/julianstephens/liftlog/internal/cli"
)

type ExportCmd struct {
	Output string `short:"o" help:"Write the snapshot to a file instead of stdout." type:"path"`
}

// ExportCmd serializes every collection into one JSON document.
func (c *ExportCmd) Run(ctx *cli.Context) error {
	snap, err := backup.Export(ctx.Store)
	if err != nil {
		return err
	}

	if c.Output == "" {
		return backup.WriteSnapshot(os.Stdout, snap)
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer f.Close()

	if err := backup.WriteSnapshot(f, snap); err != nil {
		return err
	}
	fmt.Printf("Exported %d workouts, %d logs, %d bodyweight entries to %s\n",
		len(snap.Workouts), len(snap.Logs), len(snap.Bodyweight), c.Output)
	return nil
}
