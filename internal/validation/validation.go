package validation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/julianstephens/liftlog/internal/constants"
)

// ValidateDate checks that a date string is a real calendar date in
// YYYY-MM-DD form.
func ValidateDate(date string) error {
	if _, err := time.Parse(constants.DateFormat, date); err != nil {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", date, err)
	}
	return nil
}

// ParseWeight coerces free-text numeric input to a weight. Empty or
// malformed text yields nil ("unset"), never zero, so it cannot corrupt
// history or progression math.
func ParseWeight(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	// Tolerate a decimal comma from locales that use one
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}

// ParseReps coerces free-text numeric input to a rep count. Empty or
// malformed text yields nil.
func ParseReps(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return nil
	}
	return &v
}
