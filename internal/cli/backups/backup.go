package backups

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/liftlog/internal/backup"
	"github.com/julianstephens/liftlog/internal/cli"
)

type BackupCmd struct {
	Create  BackupCreateCmd  `cmd:"" help:"Write a new rotated snapshot."`
	List    BackupListCmd    `cmd:"" help:"List kept snapshots."`
	Restore BackupRestoreCmd `cmd:"" help:"Restore the store from a kept snapshot."`
}

type BackupCreateCmd struct{}

func (c *BackupCreateCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store, ctx.Store.GetConfigPath())
	info, err := mgr.Create()
	if err != nil {
		return err
	}
	fmt.Printf("Created %s (%d workouts, %d logs, %d bodyweight entries)\n",
		info.File, info.Workouts, info.Logs, info.Bodyweight)
	fmt.Printf("id: %s\n", info.ID)
	return nil
}

type BackupListCmd struct{}

func (c *BackupListCmd) Run(ctx *cli.Context) error {
	mgr := backup.NewManager(ctx.Store, ctx.Store.GetConfigPath())
	manifest, err := mgr.List()
	if err != nil {
		return err
	}
	if len(manifest) == 0 {
		fmt.Println("No backups yet")
		return nil
	}
	for _, info := range manifest {
		fmt.Printf("%s  %s  %dw/%dl/%db  %s\n",
			info.CreatedAt.Format("2006-01-02 15:04"), info.File,
			info.Workouts, info.Logs, info.Bodyweight, info.ID)
	}
	return nil
}

type BackupRestoreCmd struct {
	ID  string `arg:"" help:"Manifest id of the snapshot to restore."`
	Yes bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *BackupRestoreCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		var confirmed bool
		err := huh.NewConfirm().
			Title("Replace all existing data with this snapshot?").
			Affirmative("Restore").
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

	mgr := backup.NewManager(ctx.Store, ctx.Store.GetConfigPath())
	if err := mgr.Restore(c.ID); err != nil {
		return err
	}
	fmt.Println("Restored")
	return nil
}
