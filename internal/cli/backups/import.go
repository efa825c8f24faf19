package backups

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/liftlog/internal/backup"
	"github.com/julianstephens/liftlog/internal/cli"
)

type ImportCmd struct {
	File    string `arg:"" help:"Snapshot file to import." type:"existingfile"`
	Replace bool   `help:"Wipe existing data before importing."`
	Yes     bool   `short:"y" help:"Skip the confirmation prompt when replacing."`
}

// ImportCmd loads a snapshot into the store. By default entries are merged
// in with fresh ids; --replace wipes the store first.
func (c *ImportCmd) Run(ctx *cli.Context) error {
	f, err := os.Open(c.File)
	if err != nil {
		return fmt.Errorf("failed to open snapshot: %w", err)
	}
	defer f.Close()

	snap, err := backup.ReadSnapshot(f)
	if err != nil {
		return err
	}

	if c.Replace && !c.Yes {
		var confirmed bool
		err := huh.NewConfirm().
			Title("Replace all existing data with the snapshot contents?").
			Affirmative("Replace").
			Negative("Abort").
			Value(&confirmed).
			Run()
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Aborted")
			return nil
		}
	}

	if err := backup.Import(ctx.Store, snap, c.Replace); err != nil {
		return err
	}
	fmt.Printf("Imported %d workouts, %d logs, %d bodyweight entries\n",
		len(snap.Workouts), len(snap.Logs), len(snap.Bodyweight))
	return nil
}
