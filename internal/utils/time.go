package utils

import (
	"fmt"
	"time"

	"github.com/julianstephens/liftlog/internal/constants"
)

// Today returns today's date string (YYYY-MM-DD) in the system timezone.
func Today() string {
	return time.Now().Format(constants.DateFormat)
}

// WeekNumber returns the ISO-8601 week number for a date string. Every
// writer derives week numbers through this function so the convention stays
// consistent across collections.
func WeekNumber(date string) (int, error) {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", date, err)
	}
	_, week := t.ISOWeek()
	return week, nil
}

// weekdayLabels maps the calendar weekday to its display label. The mapping
// is explicit rather than derived from locale formatting, so the labels
// cannot change out from under stored filters when the host locale does.
var weekdayLabels = map[time.Weekday]string{
	time.Monday:    "Monday",
	time.Tuesday:   "Tuesday",
	time.Wednesday: "Wednesday",
	time.Thursday:  "Thursday",
	time.Friday:    "Friday",
	time.Saturday:  "Saturday",
	time.Sunday:    "Sunday",
}

// WeekdayLabel derives the weekday label for a stored date string using a
// locale-independent calendar computation.
func WeekdayLabel(date string) (string, error) {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return weekdayLabels[t.Weekday()], nil
}

// WeekdayLabels returns all weekday labels in Monday-first order.
func WeekdayLabels() []string {
	return []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
}

// DisplayDate formats a stored date for chart axes and history lists.
// Invalid dates are returned unchanged so a corrupt record is still visible.
func DisplayDate(date string) string {
	t, err := time.Parse(constants.DateFormat, date)
	if err != nil {
		return date
	}
	return t.Format(constants.DisplayDateFormat)
}
