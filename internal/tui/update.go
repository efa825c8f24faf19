package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/liftlog/internal/models"
	"github.com/julianstephens/liftlog/internal/storage"
	"github.com/julianstephens/liftlog/internal/validation"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case refreshMsg:
		switch msg.collection {
		case storage.CollectionBodyweight:
			if m.state == StateChart {
				m.refreshChart()
			}
		default:
			if m.state == StateSession || m.state == StateEditSet {
				m.refreshSession()
			}
			if m.state == StateHistory {
				m.refreshHistory()
			}
		}
		return m, m.waitForChange()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateSubmodels(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Text entry states swallow all keys except their own controls.
	switch m.state {
	case StatePickRoutine:
		return m.updatePicker(msg)
	case StateEditSet, StateWeigh:
		return m.updateInput(msg)
	case StateConfirmReset:
		return m.updateConfirmReset(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.unsub()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Tab):
		return m.cycleView(1), nil
	case key.Matches(msg, m.keys.ShiftTab):
		return m.cycleView(-1), nil
	}

	if m.state != StateSession {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.exerciseIdx > 0 {
			m.exerciseIdx--
			m.clampSetIdx()
		}
	case key.Matches(msg, m.keys.Down):
		if m.exerciseIdx < len(m.logs)-1 {
			m.exerciseIdx++
			m.clampSetIdx()
		}
	case key.Matches(msg, m.keys.Left):
		if m.setIdx > 0 {
			m.setIdx--
		}
	case key.Matches(msg, m.keys.Right):
		if m.exerciseIdx < len(m.logs) && m.setIdx < len(m.logs[m.exerciseIdx].Sets)-1 {
			m.setIdx++
		}

	case key.Matches(msg, m.keys.Weight):
		return m.beginSetEdit(models.FieldWeight)
	case key.Matches(msg, m.keys.Reps):
		return m.beginSetEdit(models.FieldReps)

	case key.Matches(msg, m.keys.Complete):
		if m.workout == nil {
			return m, nil
		}
		if err := m.sessions.CompleteSession(m.workout.ID); err != nil {
			m.status = "Error: " + err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("Completed workout #%d", m.workout.ID)
		m.refreshSession()
		if m.workout == nil {
			m.enterRoutinePicker()
			return m, m.form.Init()
		}

	case key.Matches(msg, m.keys.Reset):
		if m.workout != nil {
			m.state = StateConfirmReset
		}

	case key.Matches(msg, m.keys.Weigh):
		m.input.Reset()
		m.editField = ""
		m.input.Placeholder = "kg"
		m.input.Focus()
		m.state = StateWeigh
		return m, nil
	}

	return m, nil
}

func (m Model) beginSetEdit(field models.SetField) (tea.Model, tea.Cmd) {
	if m.exerciseIdx >= len(m.logs) || m.setIdx >= len(m.logs[m.exerciseIdx].Sets) {
		return m, nil
	}

	set := m.logs[m.exerciseIdx].Sets[m.setIdx]
	m.input.Reset()
	switch field {
	case models.FieldWeight:
		m.input.Placeholder = "kg"
		if set.Weight != nil {
			m.input.SetValue(fmt.Sprintf("%g", *set.Weight))
		}
	case models.FieldReps:
		m.input.Placeholder = "reps"
		if set.Reps != nil {
			m.input.SetValue(fmt.Sprintf("%d", *set.Reps))
		}
	}
	m.input.Focus()
	m.editField = field
	m.state = StateEditSet
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.input.Blur()
		m.state = StateSession
		return m, nil
	case "enter":
		value := m.input.Value()
		m.input.Blur()
		m.state = StateSession
		return m.commitInput(value)
	case "ctrl+c":
		m.quitting = true
		m.unsub()
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) commitInput(value string) (tea.Model, tea.Cmd) {
	if m.input.Placeholder == "kg" && m.editField == "" {
		// bodyweight entry
		weight := validation.ParseWeight(value)
		if weight == nil {
			m.status = "Invalid weight: " + value
			return m, nil
		}
		entry, err := m.sessions.RecordBodyweight(m.date, *weight)
		if err != nil {
			m.status = "Error: " + err.Error()
			return m, nil
		}
		m.status = fmt.Sprintf("Recorded %gkg", entry.Weight)
		return m, nil
	}

	log := m.logs[m.exerciseIdx]
	if err := m.sessions.UpdateSet(log.ID, m.setIdx, m.editField, value); err != nil {
		m.status = "Error: " + err.Error()
	} else {
		m.status = ""
	}
	m.editField = ""
	m.refreshSession()
	return m, nil
}

func (m Model) updateConfirmReset(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		if m.workout != nil {
			if err := m.sessions.ResetSession(m.workout.ID); err != nil {
				m.status = "Error: " + err.Error()
				m.state = StateSession
				return m, nil
			}
		}
		m.state = StateSession
		m.refreshSession()
		if m.workout == nil {
			m.enterRoutinePicker()
			return m, m.form.Init()
		}
	case "n", "esc":
		m.state = StateSession
	case "ctrl+c":
		m.quitting = true
		m.unsub()
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) updatePicker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" || msg.String() == "q" {
		m.quitting = true
		m.unsub()
		return m, tea.Quit
	}
	return m.updateSubmodels(msg)
}

func (m Model) updateSubmodels(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.state == StatePickRoutine && m.form != nil {
		form, cmd := m.form.Update(msg)
		if f, ok := form.(*huh.Form); ok {
			m.form = f
		}

		if m.form.State == huh.StateCompleted {
			if _, err := m.sessions.StartSession(m.date, m.form.GetString("routine")); err != nil {
				m.status = "Error: " + err.Error()
			}
			m.form = nil
			m.state = StateSession
			m.refreshSession()
		}
		return m, cmd
	}

	if m.state == StateEditSet || m.state == StateWeigh {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) cycleView(dir int) Model {
	views := []SessionState{StateSession, StateHistory, StateChart}
	current := 0
	for i, v := range views {
		if m.state == v {
			current = i
		}
	}
	m.state = views[(current+dir+len(views))%len(views)]

	switch m.state {
	case StateSession:
		m.refreshSession()
	case StateHistory:
		m.refreshHistory()
	case StateChart:
		m.refreshChart()
	}
	return m
}
