package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"pomodoro/internal/core/timer"
)

// MsgTimerEvent is sent for every event published by the runner.
type MsgTimerEvent struct {
	Event timer.Event
}

// MsgEventsClosed is sent when the runner closes its event stream.
type MsgEventsClosed struct{}

// waitForEvent blocks on the next runner event.
func waitForEvent(events <-chan timer.Event) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return MsgEventsClosed{}
		}
		return MsgTimerEvent{Event: event}
	}
}
