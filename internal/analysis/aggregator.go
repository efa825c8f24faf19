// Package analysis turns raw records into chart-ready series: the
// body-weight trend and per-exercise load progression.
package analysis

import (
	"iter"
	"sort"

	"github.com/julianstephens/liftlog/internal/storage"
	"github.com/julianstephens/liftlog/internal/utils"
)

// Point is one sample of a series: a stored date, its display form, and a
// value.
type Point struct {
	Date        string
	DisplayDate string
	Value       float64
}

type Aggregator struct {
	store storage.Provider
}

func NewAggregator(store storage.Provider) *Aggregator {
	return &Aggregator{store: store}
}

// BodyweightSeries returns all body-weight entries ordered ascending by
// date. Missing days are not gap-filled.
func (a *Aggregator) BodyweightSeries() ([]Point, error) {
	entries, err := a.store.GetAllBodyweight()
	if err != nil {
		return nil, err
	}

	points := make([]Point, 0, len(entries))
	for _, e := range entries {
		points = append(points, Point{
			Date:        e.Date,
			DisplayDate: utils.DisplayDate(e.Date),
			Value:       e.Weight,
		})
	}
	return points, nil
}

// LoadProgression builds the per-session maximum lifted weight for one
// exercise as a restartable sequence: each log is joined to its workout's
// date, unset weights count as 0, and sessions where nothing was lifted are
// dropped. Points come out ascending by date; ties keep their insertion
// order.
func (a *Aggregator) LoadProgression(exerciseName string) (iter.Seq[Point], error) {
	logs, err := a.store.GetLogsByExercise(exerciseName)
	if err != nil {
		return nil, err
	}

	points := make([]Point, 0, len(logs))
	for _, log := range logs {
		w, err := a.store.GetWorkout(log.WorkoutID)
		if err != nil {
			continue
		}
		max := log.MaxWeight()
		if max == 0 {
			continue
		}
		points = append(points, Point{
			Date:        w.Date,
			DisplayDate: utils.DisplayDate(w.Date),
			Value:       max,
		})
	}

	sort.SliceStable(points, func(i, j int) bool { return points[i].Date < points[j].Date })

	return func(yield func(Point) bool) {
		for _, p := range points {
			if !yield(p) {
				return
			}
		}
	}, nil
}
