package cli

import (
	"fmt"

	"github.com/charmbracelet/huh"
)

type CompleteCmd struct {
	Date string `short:"d" help:"Session date (YYYY-MM-DD). Defaults to today."`
}

func (c *CompleteCmd) Run(ctx *Context) error {
	date := DateOrToday(c.Date)
	mgr := ctx.Sessions()
	workout, err := mgr.GetActiveWorkout(date)
	if err != nil {
		return err
	}
	if err := mgr.CompleteSession(workout.ID); err != nil {
		return err
	}

	logs, err := ctx.Store.GetLogsByWorkout(workout.ID)
	if err != nil {
		return err
	}
	filled := 0
	for _, log := range logs {
		filled += FilledSets(log)
	}
	fmt.Printf("Completed workout #%d (%s): %d exercises, %d sets recorded\n",
		workout.ID, workout.Date, len(logs), filled)
	return nil
}

type ResetCmd struct {
	Date string `short:"d" help:"Session date (YYYY-MM-DD). Defaults to today."`
	Yes  bool   `short:"y" help:"Skip the confirmation prompt."`
}

func (c *ResetCmd) Run(ctx *Context) error {
	date := DateOrToday(c.Date)

	if !c.Yes {
		var confirmed bool
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Delete the workout for %s and all of its sets?", date)).
			Affirmative("Delete").
			Negative("Keep").
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

	mgr := ctx.Sessions()
	workout, err := mgr.GetActiveWorkout(date)
	if err != nil {
		return err
	}
	if err := mgr.ResetSession(workout.ID); err != nil {
		return err
	}
	fmt.Printf("Removed workout #%d for %s\n", workout.ID, date)
	return nil
}
