// Package routines holds the static routine catalog: named workout templates
// listing exercises with target set counts and rep ranges. The catalog is
// read-only input consumed by the session manager; nothing in the application
// writes to it.
package routines

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
)

// Exercise is one template entry of a routine.
type Exercise struct {
	Name   string `json:"name"`
	Sets   int    `json:"sets"`
	Target string `json:"target"` // rep-range label, e.g. "8-10"
}

// Routine is an ordered list of template entries plus a suggested weekday
// label for display.
type Routine struct {
	Name      string     `json:"name"`
	Label     string     `json:"label,omitempty"`
	Exercises []Exercise `json:"exercises"`
}

// Catalog maps routine name to its template.
type Catalog map[string]Routine

// Default returns the built-in catalog: a five-day split with set counts and
// target rep ranges.
func Default() Catalog {
	list := []Routine{
		{
			Name:  "Push",
			Label: "Monday",
			Exercises: []Exercise{
				{Name: "Barbell bench press", Sets: 4, Target: "8-10"},
				{Name: "Incline dumbbell press", Sets: 3, Target: "10-12"},
				{Name: "Barbell overhead press", Sets: 4, Target: "8"},
				{Name: "Lateral raise", Sets: 3, Target: "12-15"},
				{Name: "French press", Sets: 3, Target: "10-12"},
				{Name: "Cable pushdown", Sets: 3, Target: "12-15"},
			},
		},
		{
			Name:  "Pull",
			Label: "Tuesday",
			Exercises: []Exercise{
				{Name: "Lat pulldown", Sets: 4, Target: "8-10"},
				{Name: "Barbell row", Sets: 4, Target: "8-10"},
				{Name: "Seated cable row", Sets: 3, Target: "10-12"},
				{Name: "Cable rear delt fly", Sets: 3, Target: "12-15"},
				{Name: "Barbell curl", Sets: 3, Target: "8-10"},
				{Name: "Alternating dumbbell curl", Sets: 3, Target: "12"},
			},
		},
		{
			Name:  "Legs",
			Label: "Wednesday",
			Exercises: []Exercise{
				{Name: "Squat", Sets: 4, Target: "6-8"},
				{Name: "Leg press", Sets: 4, Target: "10"},
				{Name: "Leg extension", Sets: 3, Target: "12-15"},
				{Name: "Leg curl", Sets: 3, Target: "12-15"},
				{Name: "Calf raise", Sets: 3, Target: "15"},
				{Name: "Calf press", Sets: 3, Target: "12-15"},
			},
		},
		{
			Name:  "Upper",
			Label: "Thursday",
			Exercises: []Exercise{
				{Name: "Bench press", Sets: 3, Target: "8"},
				{Name: "Chest press", Sets: 3, Target: "10-12"},
				{Name: "Pull-up", Sets: 3, Target: "8-10"},
				{Name: "One-arm dumbbell row", Sets: 3, Target: "10-12"},
				{Name: "Lateral raise", Sets: 3, Target: "12-15"},
				{Name: "Arnold press", Sets: 3, Target: "8-10"},
			},
		},
		{
			Name:  "Legs + Arms",
			Label: "Friday",
			Exercises: []Exercise{
				{Name: "Romanian deadlift", Sets: 4, Target: "8"},
				{Name: "Leg extension", Sets: 3, Target: "12-15"},
				{Name: "Leg curl", Sets: 3, Target: "12-15"},
				{Name: "Cable curl", Sets: 3, Target: "10-12"},
				{Name: "French press", Sets: 3, Target: "10-12"},
				{Name: "Rope pushdown", Sets: 3, Target: "12-15"},
			},
		},
	}

	catalog := make(Catalog, len(list))
	for _, r := range list {
		catalog[r.Name] = r
	}
	return catalog
}

// LoadFile reads a catalog from a JSON file holding an array of routines,
// replacing the built-in templates.
func LoadFile(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read routines file: %w", err)
	}

	var list []Routine
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, fmt.Errorf("failed to parse routines file %s: %w", path, err)
	}

	catalog := make(Catalog, len(list))
	for _, r := range list {
		if r.Name == "" {
			return nil, fmt.Errorf("routine with empty name in %s", path)
		}
		for _, ex := range r.Exercises {
			if ex.Sets < 1 {
				return nil, fmt.Errorf("routine %q: exercise %q must have at least one set", r.Name, ex.Name)
			}
		}
		catalog[r.Name] = r
	}
	return catalog, nil
}

// Get returns the named routine.
func (c Catalog) Get(name string) (Routine, bool) {
	r, ok := c[name]
	return r, ok
}

// Names returns the routine names sorted alphabetically.
func (c Catalog) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
