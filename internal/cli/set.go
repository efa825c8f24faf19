package cli

import (
	"fmt"

	"github.com/julianstephens/liftlog/internal/models"
)

type SetCmd struct {
	Log    int64  `arg:"" help:"Log id of the exercise entry."`
	Set    int    `arg:"" help:"Set number, starting at 1."`
	Weight string `short:"w" help:"Weight in kg. Empty clears the value."`
	Reps   string `short:"r" help:"Repetition count. Empty clears the value."`
}

func (c *SetCmd) Run(ctx *Context) error {
	if c.Weight == "" && c.Reps == "" {
		return fmt.Errorf("nothing to record: pass --weight and/or --reps")
	}

	mgr := ctx.Sessions()
	idx := c.Set - 1
	if c.Weight != "" {
		if err := mgr.UpdateSet(c.Log, idx, models.FieldWeight, c.Weight); err != nil {
			return err
		}
	}
	if c.Reps != "" {
		if err := mgr.UpdateSet(c.Log, idx, models.FieldReps, c.Reps); err != nil {
			return err
		}
	}

	log, err := ctx.Store.GetLog(c.Log)
	if err != nil {
		return err
	}
	fmt.Printf("%s set %d: %s\n", log.ExerciseName, c.Set, FormatSet(log.Sets[idx]))
	return nil
}
