package cli

import (
	"fmt"
	"strings"

	"github.com/julianstephens/liftlog/internal/analysis"
	"github.com/julianstephens/liftlog/internal/history"
	"github.com/julianstephens/liftlog/internal/models"
	"github.com/julianstephens/liftlog/internal/routines"
	"github.com/julianstephens/liftlog/internal/session"
	"github.com/julianstephens/liftlog/internal/storage"
	"github.com/julianstephens/liftlog/internal/utils"
)

// Context carries the injected store and routine catalog into every command.
type Context struct {
	Store   storage.Provider
	Catalog routines.Catalog
}

// Sessions returns a session manager bound to the context's store.
func (c *Context) Sessions() *session.Manager {
	return session.NewManager(c.Store, c.Catalog)
}

// Resolver returns a history resolver bound to the context's store.
func (c *Context) Resolver() *history.Resolver {
	return history.NewResolver(c.Store)
}

// Filter returns a history filter bound to the context's store.
func (c *Context) Filter() *history.Filter {
	return history.NewFilter(c.Store)
}

// Aggregator returns an aggregator bound to the context's store.
func (c *Context) Aggregator() *analysis.Aggregator {
	return analysis.NewAggregator(c.Store)
}

// DateOrToday resolves an optional --date flag.
func DateOrToday(date string) string {
	if date == "" {
		return utils.Today()
	}
	return date
}

// FormatSet renders one set for list output, e.g. "52.5kg x 8" or "-".
func FormatSet(s models.Set) string {
	if s.Weight == nil && s.Reps == nil {
		return "-"
	}

	var parts []string
	if s.Weight != nil {
		parts = append(parts, fmt.Sprintf("%gkg", *s.Weight))
	} else {
		parts = append(parts, "?kg")
	}
	if s.Reps != nil {
		parts = append(parts, fmt.Sprintf("x %d", *s.Reps))
	}
	return strings.Join(parts, " ")
}

// FilledSets counts the sets with a recorded weight.
func FilledSets(l models.Log) int {
	n := 0
	for _, s := range l.Sets {
		if s.Weight != nil {
			n++
		}
	}
	return n
}
