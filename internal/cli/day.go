package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/liftlog/internal/session"
	"github.com/julianstephens/liftlog/internal/storage"
)

type DayCmd struct {
	Date string `short:"d" help:"Session date (YYYY-MM-DD). Defaults to today."`
}

// DayCmd shows the date's active session: each exercise with its sets and
// the last recorded working weight from the previous completed session.
func (c *DayCmd) Run(ctx *Context) error {
	date := DateOrToday(c.Date)

	workout, err := ctx.Sessions().GetActiveWorkout(date)
	if errors.Is(err, session.ErrNoActiveWorkout) {
		fmt.Printf("No active workout for %s. Available routines:\n", date)
		for _, name := range ctx.Catalog.Names() {
			r := ctx.Catalog[name]
			fmt.Printf("  %-12s (%d exercises", name, len(r.Exercises))
			if r.Label != "" {
				fmt.Printf(", usually %s", r.Label)
			}
			fmt.Println(")")
		}
		return nil
	}
	if err != nil {
		return err
	}

	logs, err := ctx.Store.GetLogsByWorkout(workout.ID)
	if err != nil {
		return err
	}

	resolver := ctx.Resolver()
	fmt.Printf("Workout #%d - %s (week %d, %s)\n", workout.ID, workout.Date, workout.WeekNumber, workout.Status)
	for _, log := range logs {
		fmt.Printf("\n[%d] %s", log.ID, log.ExerciseName)
		if log.Target != "" {
			fmt.Printf("  (target %s reps)", log.Target)
		}

		last, err := resolver.LastCompletedLog(log.ExerciseName, date)
		if err != nil {
			return err
		}
		if last != nil && last.LastWeight != nil {
			fmt.Printf("  last: %gkg on %s", *last.LastWeight, last.Date)
		}
		fmt.Println()

		for i, set := range log.Sets {
			fmt.Printf("  set %d: %s\n", i+1, FormatSet(set))
		}
	}

	// Day summary includes bodyweight when recorded.
	if bw, err := ctx.Store.GetBodyweightByDate(date); err == nil {
		fmt.Printf("\nBodyweight: %gkg\n", bw.Weight)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return err
	}
	return nil
}
