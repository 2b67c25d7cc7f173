// Package tui implements the terminal front end.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"pomodoro/internal/core/timer"
)

// Controller is the set of timer commands the TUI issues.
type Controller interface {
	State() timer.State
	Toggle() timer.State
	Reset() timer.State
	AdjustDuration(session timer.Session, direction timer.Direction) timer.State
}

// Model is the bubbletea model for the timer.
type Model struct {
	controller Controller
	events     <-chan timer.Event

	keys   KeyMap
	styles Styles
	help   help.Model

	state     timer.State
	width     int
	showGuide bool
	quitting  bool
}

// New creates a Model. events is usually a Runner subscription; the model
// renders whatever state arrives on it and never schedules ticks itself.
func New(controller Controller, events <-chan timer.Event) *Model {
	return &Model{
		controller: controller,
		events:     events,
		keys:       DefaultKeyMap(),
		styles:     DefaultStyles(),
		help:       help.New(),
		state:      controller.State(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// State returns the last rendered timer state.
func (m *Model) State() timer.State {
	return m.state
}
