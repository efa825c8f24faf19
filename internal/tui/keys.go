package tui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Enter    key.Binding
	Tab      key.Binding
	ShiftTab key.Binding
	Weight   key.Binding
	Reps     key.Binding
	Complete key.Binding
	Reset    key.Binding
	Weigh    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "previous exercise")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "next exercise")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous set")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next set")),
		Enter:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Tab:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		ShiftTab: key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous view")),
		Weight:   key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "edit weight")),
		Reps:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "edit reps")),
		Complete: key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "complete session")),
		Reset:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "reset session")),
		Weigh:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "record bodyweight")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "toggle help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
