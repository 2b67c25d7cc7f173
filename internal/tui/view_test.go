package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"pomodoro/internal/core/timer"
	"pomodoro/internal/ui/guide"
)

func TestView_Idle(t *testing.T) {
	m := New(newFakeController(), nil)

	view := m.View()

	assert.Contains(t, view, "Pomodoro Timer")
	assert.Contains(t, view, "work")
	assert.Contains(t, view, "25:00")
	assert.Contains(t, view, "work 25 min · break 5 min")
	assert.Contains(t, view, "idle")
	assert.Contains(t, view, "start/pause")
}

func TestView_BreakPaused(t *testing.T) {
	m := New(newFakeController(), nil)
	m.state = timer.State{
		WorkDuration:   1500,
		BreakDuration:  300,
		CurrentTime:    65,
		CurrentSession: timer.SessionBreak,
		TimerStatus:    timer.StatusPaused,
	}

	view := m.View()

	assert.Contains(t, view, "break")
	assert.Contains(t, view, "01:05")
	assert.Contains(t, view, "paused")
}

func TestView_Guide(t *testing.T) {
	m := New(newFakeController(), nil)
	m.showGuide = true

	view := m.View()

	assert.Contains(t, view, guide.Title)
	assert.Contains(t, view, guide.ReadMoreURL)
	assert.NotContains(t, view, "25:00")
}
