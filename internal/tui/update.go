package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"pomodoro/internal/core/timer"
)

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case MsgTimerEvent:
		m.state = msg.Event.State
		return m, waitForEvent(m.events)

	case MsgEventsClosed:
		m.quitting = true
		return m, tea.Quit

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showGuide {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		default:
			m.showGuide = false
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.state = m.controller.Toggle()
	case key.Matches(msg, m.keys.Reset):
		m.state = m.controller.Reset()
	case key.Matches(msg, m.keys.WorkDecrease):
		m.state = m.controller.AdjustDuration(timer.SessionWork, timer.DirectionDecrease)
	case key.Matches(msg, m.keys.WorkIncrease):
		m.state = m.controller.AdjustDuration(timer.SessionWork, timer.DirectionIncrease)
	case key.Matches(msg, m.keys.BreakDecrease):
		m.state = m.controller.AdjustDuration(timer.SessionBreak, timer.DirectionDecrease)
	case key.Matches(msg, m.keys.BreakIncrease):
		m.state = m.controller.AdjustDuration(timer.SessionBreak, timer.DirectionIncrease)
	case key.Matches(msg, m.keys.Guide):
		m.showGuide = true
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}
