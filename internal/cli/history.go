package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/julianstephens/liftlog/internal/constants"
	"github.com/julianstephens/liftlog/internal/models"
)

type HistoryCmd struct {
	Day      string `help:"Filter by weekday label (e.g. Monday)." default:"All"`
	Exercise string `short:"e" help:"Filter by exercise name." default:"All"`
	Week     int    `help:"Show only workouts of this ISO week number."`
	Limit    int    `short:"n" help:"Show at most N workouts, newest first." default:"10"`
}

// HistoryCmd lists past workouts newest first, optionally narrowed by
// weekday, exercise, or ISO week.
func (c *HistoryCmd) Run(ctx *Context) error {
	var (
		workouts []models.Workout
		err      error
	)
	if c.Week > 0 {
		workouts, err = ctx.Store.GetWorkoutsByWeek(c.Week)
	} else {
		workouts, err = ctx.Filter().WorkoutsForWeekday(c.Day)
	}
	if err != nil {
		return err
	}
	if len(workouts) == 0 {
		fmt.Println("No workouts recorded")
		return nil
	}

	sort.Slice(workouts, func(i, j int) bool {
		if workouts[i].Date != workouts[j].Date {
			return workouts[i].Date > workouts[j].Date
		}
		return workouts[i].ID > workouts[j].ID
	})

	shown := 0
	for _, w := range workouts {
		if c.Limit > 0 && shown >= c.Limit {
			break
		}
		logs, err := ctx.Store.GetLogsByWorkout(w.ID)
		if err != nil {
			return err
		}
		if c.Exercise != constants.AllFilter {
			logs = filterLogsByName(logs, c.Exercise)
			if len(logs) == 0 {
				continue
			}
		}

		fmt.Printf("%s  #%d  week %d  %s\n", w.Date, w.ID, w.WeekNumber, w.Status)
		for _, log := range logs {
			parts := make([]string, 0, len(log.Sets))
			for _, set := range log.Sets {
				parts = append(parts, FormatSet(set))
			}
			fmt.Printf("  %-24s %s\n", log.ExerciseName, strings.Join(parts, "  "))
		}
		shown++
	}
	if shown == 0 {
		fmt.Println("No workouts matched the filters")
	}
	return nil
}

func filterLogsByName(logs []models.Log, name string) []models.Log {
	var out []models.Log
	for _, l := range logs {
		if strings.EqualFold(l.ExerciseName, name) {
			out = append(out, l)
		}
	}
	return out
}
