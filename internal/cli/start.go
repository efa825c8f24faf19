package cli

import (
	"fmt"

	"github.com/julianstephens/liftlog/internal/session"
)

type StartCmd struct {
	Routine string `arg:"" help:"Routine name from the catalog."`
	Date    string `short:"d" help:"Session date (YYYY-MM-DD). Defaults to today."`
}

func (c *StartCmd) Run(ctx *Context) error {
	date := DateOrToday(c.Date)

	workout, err := ctx.Sessions().StartSession(date, c.Routine)
	if err != nil {
		return err
	}

	logs, err := ctx.Store.GetLogsByWorkout(workout.ID)
	if err != nil {
		return err
	}

	fmt.Printf("Session for %s (workout #%d, week %d):\n", date, workout.ID, workout.WeekNumber)
	for _, log := range logs {
		fmt.Printf("  [%d] %s - %d sets", log.ID, log.ExerciseName, len(log.Sets))
		if log.Target != "" {
			fmt.Printf(" (target %s reps)", log.Target)
		}
		fmt.Println()
	}
	return nil
}

type AddCmd struct {
	Name string `arg:"" help:"Exercise name."`
	Sets int    `short:"s" help:"Number of sets." default:"3"`
	Date string `short:"d" help:"Session date (YYYY-MM-DD). Defaults to today."`
}

// AddCmd appends an extra exercise to the date's active workout.
func (c *AddCmd) Run(ctx *Context) error {
	date := DateOrToday(c.Date)
	mgr := ctx.Sessions()

	workout, err := mgr.GetActiveWorkout(date)
	if err != nil {
		if err == session.ErrNoActiveWorkout {
			return fmt.Errorf("no active workout for %s - run 'liftlog start' first", date)
		}
		return err
	}

	logID, err := mgr.AddManualExercise(workout.ID, c.Name, c.Sets)
	if err != nil {
		return err
	}

	fmt.Printf("Added %s with %d sets (log #%d)\n", c.Name, c.Sets, logID)
	return nil
}
