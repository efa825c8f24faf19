package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/liftlog/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StatePickRoutine:
		if m.form != nil {
			content = m.form.View()
		}
	case StateSession, StateEditSet, StateWeigh:
		content = m.viewSession()
	case StateHistory:
		content = m.viewHistory()
	case StateChart:
		content = m.viewChart()
	case StateConfirmReset:
		content = m.viewConfirmReset()
	}

	var status string
	if m.status != "" {
		status = statusStyle.Render(m.status)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		status,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	var tabs []string
	titles := []string{"Session", "History", "Chart"}
	states := []SessionState{StateSession, StateHistory, StateChart}
	active := m.state
	if active == StateEditSet || active == StateWeigh || active == StateConfirmReset || active == StatePickRoutine {
		active = StateSession
	}
	for i, title := range titles {
		if active == states[i] {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewSession() string {
	if m.workout == nil {
		return docStyle.Render("No active workout for " + m.date)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Workout #%d - %s (week %d, %s)\n\n",
		m.workout.ID, m.workout.Date, m.workout.WeekNumber, m.workout.Status)

	for i, log := range m.logs {
		name := log.ExerciseName
		if i == m.exerciseIdx {
			name = selectedStyle.Render("> " + name)
		} else {
			name = "  " + name
		}
		b.WriteString(name)
		if log.Target != "" {
			b.WriteString(mutedStyle.Render("  (target " + log.Target + " reps)"))
		}
		if last, ok := m.lastWeights[log.ExerciseName]; ok && last != nil && last.LastWeight != nil {
			b.WriteString(mutedStyle.Render(fmt.Sprintf("  last: %gkg on %s", *last.LastWeight, last.Date)))
		}
		b.WriteString("\n")

		for j, set := range log.Sets {
			cell := formatSet(set)
			if i == m.exerciseIdx && j == m.setIdx {
				if m.state == StateEditSet {
					cell = m.input.View()
				} else {
					cell = selectedStyle.Render("[" + cell + "]")
				}
			}
			fmt.Fprintf(&b, "    set %d: %s\n", j+1, cell)
		}
		b.WriteString("\n")
	}

	if m.state == StateWeigh {
		b.WriteString("Bodyweight: " + m.input.View() + "\n")
	}

	return docStyle.Render(b.String())
}

func (m Model) viewHistory() string {
	if len(m.historyWorkouts) == 0 {
		return docStyle.Render("No workouts recorded")
	}

	var b strings.Builder
	for _, w := range m.historyWorkouts {
		fmt.Fprintf(&b, "%s  #%d  week %d  %s\n", w.Date, w.ID, w.WeekNumber, w.Status)
		for _, log := range m.historyLogs[w.ID] {
			parts := make([]string, 0, len(log.Sets))
			for _, set := range log.Sets {
				parts = append(parts, formatSet(set))
			}
			fmt.Fprintf(&b, "  %-24s %s\n", log.ExerciseName, mutedStyle.Render(strings.Join(parts, "  ")))
		}
		b.WriteString("\n")
	}
	return docStyle.Render(b.String())
}

func (m Model) viewChart() string {
	if len(m.chartPoints) == 0 {
		return docStyle.Render("No bodyweight entries recorded")
	}

	lo, hi := m.chartPoints[0].Value, m.chartPoints[0].Value
	for _, p := range m.chartPoints {
		if p.Value < lo {
			lo = p.Value
		}
		if p.Value > hi {
			hi = p.Value
		}
	}

	const width = 30
	var b strings.Builder
	b.WriteString("Bodyweight (kg)\n\n")
	for _, p := range m.chartPoints {
		w := width
		if hi > lo {
			w = 1 + int(float64(width-1)*(p.Value-lo)/(hi-lo))
		}
		fmt.Fprintf(&b, "%6s %s %g\n",
			mutedStyle.Render(p.DisplayDate), barStyle.Render(strings.Repeat("█", w)), p.Value)
	}
	return docStyle.Render(b.String())
}

func (m Model) viewConfirmReset() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete this workout and all of its sets?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func formatSet(s models.Set) string {
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
