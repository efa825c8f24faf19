// Package tui is the interactive session view: it shows the day's workout,
// lets sets be filled in place, and reflects store changes live.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/liftlog/internal/analysis"
	"github.com/julianstephens/liftlog/internal/history"
	"github.com/julianstephens/liftlog/internal/models"
	"github.com/julianstephens/liftlog/internal/routines"
	"github.com/julianstephens/liftlog/internal/session"
	"github.com/julianstephens/liftlog/internal/storage"
)

type SessionState int

const (
	StateSession SessionState = iota
	StateHistory
	StateChart
	StatePickRoutine
	StateEditSet
	StateConfirmReset
	StateWeigh
)

// refreshMsg signals that a collection changed underneath the view.
type refreshMsg struct {
	collection storage.Collection
}

type Model struct {
	store    storage.Provider
	catalog  routines.Catalog
	sessions *session.Manager
	resolver *history.Resolver

	date  string
	state SessionState
	keys  KeyMap
	help  help.Model

	workout *models.Workout
	logs    []models.Log
	// last completed weight per exercise, resolved once per refresh
	lastWeights map[string]*history.LastLog

	historyWorkouts []models.Workout
	historyLogs     map[int64][]models.Log
	chartPoints     []analysis.Point

	exerciseIdx int
	setIdx      int

	form      *huh.Form
	input     textinput.Model
	editField models.SetField

	changes  chan storage.Collection
	unsub    func()
	status   string
	quitting bool
	width    int
	height   int
}

func NewModel(store storage.Provider, catalog routines.Catalog, date string) Model {
	changes := make(chan storage.Collection, 8)
	unsub := store.Subscribe(func(c storage.Collection) {
		select {
		case changes <- c:
		default:
		}
	})

	ti := textinput.New()
	ti.CharLimit = 8
	ti.Width = 10

	m := Model{
		store:    store,
		catalog:  catalog,
		sessions: session.NewManager(store, catalog),
		resolver: history.NewResolver(store),
		date:     date,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		input:    ti,
		changes:  changes,
		unsub:    unsub,
	}
	m.refreshSession()
	if m.workout == nil {
		m.enterRoutinePicker()
	}
	return m
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.waitForChange()}
	if m.form != nil {
		cmds = append(cmds, m.form.Init())
	}
	return tea.Batch(cmds...)
}

// waitForChange blocks on the subscription channel and surfaces the next
// store change as a message.
func (m Model) waitForChange() tea.Cmd {
	return func() tea.Msg {
		c, ok := <-m.changes
		if !ok {
			return nil
		}
		return refreshMsg{collection: c}
	}
}

// refreshSession reloads the active workout, its logs, and the last-time
// weights shown next to each exercise.
func (m *Model) refreshSession() {
	m.workout = nil
	m.logs = nil
	m.lastWeights = make(map[string]*history.LastLog)

	workout, err := m.sessions.GetActiveWorkout(m.date)
	if err != nil {
		return
	}
	m.workout = &workout

	logs, err := m.store.GetLogsByWorkout(workout.ID)
	if err != nil {
		return
	}
	m.logs = logs

	for _, log := range logs {
		last, err := m.resolver.LastCompletedLog(log.ExerciseName, m.date)
		if err != nil {
			continue
		}
		m.lastWeights[log.ExerciseName] = last
	}

	if m.exerciseIdx >= len(m.logs) {
		m.exerciseIdx = max(0, len(m.logs)-1)
	}
	m.clampSetIdx()
}

func (m *Model) refreshHistory() {
	m.historyWorkouts = nil
	m.historyLogs = make(map[int64][]models.Log)

	workouts, err := m.store.GetAllWorkouts()
	if err != nil {
		return
	}
	// newest first
	for i := len(workouts) - 1; i >= 0; i-- {
		w := workouts[i]
		m.historyWorkouts = append(m.historyWorkouts, w)
		if logs, err := m.store.GetLogsByWorkout(w.ID); err == nil {
			m.historyLogs[w.ID] = logs
		}
		if len(m.historyWorkouts) >= 10 {
			break
		}
	}
}

func (m *Model) refreshChart() {
	m.chartPoints = nil
	points, err := analysis.NewAggregator(m.store).BodyweightSeries()
	if err != nil {
		return
	}
	if len(points) > 15 {
		points = points[len(points)-15:]
	}
	m.chartPoints = points
}

func (m *Model) enterRoutinePicker() {
	names := m.catalog.Names()
	options := make([]huh.Option[string], 0, len(names))
	for _, name := range names {
		label := name
		if r := m.catalog[name]; r.Label != "" {
			label = name + " (" + r.Label + ")"
		}
		options = append(options, huh.NewOption(label, name))
	}

	m.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Key("routine").
			Title("Start a session for " + m.date).
			Options(options...),
	))
	m.state = StatePickRoutine
}

func (m *Model) clampSetIdx() {
	if m.exerciseIdx < len(m.logs) {
		if n := len(m.logs[m.exerciseIdx].Sets); m.setIdx >= n {
			m.setIdx = max(0, n-1)
		}
	} else {
		m.setIdx = 0
	}
}

func (m Model) ShortHelp() []key.Binding {
	switch m.state {
	case StateSession:
		return []key.Binding{m.keys.Weight, m.keys.Reps, m.keys.Complete, m.keys.Tab, m.keys.Help, m.keys.Quit}
	case StateEditSet, StateWeigh:
		return []key.Binding{m.keys.Enter, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel"))}
	default:
		return []key.Binding{m.keys.Tab, m.keys.Quit}
	}
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Help, m.keys.Quit},
		{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right},
		{m.keys.Weight, m.keys.Reps, m.keys.Complete, m.keys.Reset, m.keys.Weigh},
	}
}
