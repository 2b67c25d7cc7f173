package window

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"

	"pomodoro/internal/core/timer"
)

type recordedAdjust struct {
	session   timer.Session
	direction timer.Direction
}

func TestWindow_RendersState(t *testing.T) {
	app := test.NewTempApp(t)
	view := New(app, timer.DefaultState(), Controls{})

	assert.Equal(t, "Work", view.sessionLabel.Text)
	assert.Equal(t, "25:00", view.timerLabel.Text)
	assert.Equal(t, "Work 25 min", view.workLabel.Text)
	assert.Equal(t, "Break 5 min", view.breakLabel.Text)
	assert.False(t, view.running)

	state := timer.DefaultState()
	state.CurrentSession = timer.SessionBreak
	state.CurrentTime = 65
	state.TimerStatus = timer.StatusRunning
	view.Render(state)

	assert.Equal(t, "Break", view.sessionLabel.Text)
	assert.Equal(t, breakColor, view.sessionLabel.Color)
	assert.Equal(t, "01:05", view.timerLabel.Text)
	assert.True(t, view.running)
	assert.Equal(t, theme.MediaPauseIcon(), view.toggleButton.Icon)
}

func TestWindow_ButtonsInvokeControls(t *testing.T) {
	app := test.NewTempApp(t)
	toggles, resets := 0, 0
	var adjusts []recordedAdjust
	view := New(app, timer.DefaultState(), Controls{
		OnToggle: func() { toggles++ },
		OnReset:  func() { resets++ },
		OnAdjust: func(session timer.Session, direction timer.Direction) {
			adjusts = append(adjusts, recordedAdjust{session, direction})
		},
	})

	test.Tap(view.toggleButton)
	test.Tap(view.resetButton)
	test.Tap(view.workDecrease)
	test.Tap(view.workIncrease)
	test.Tap(view.breakDecrease)
	test.Tap(view.breakIncrease)

	assert.Equal(t, 1, toggles)
	assert.Equal(t, 1, resets)
	assert.Equal(t, []recordedAdjust{
		{timer.SessionWork, timer.DirectionDecrease},
		{timer.SessionWork, timer.DirectionIncrease},
		{timer.SessionBreak, timer.DirectionDecrease},
		{timer.SessionBreak, timer.DirectionIncrease},
	}, adjusts)
}

func TestWindow_NilControlsAreIgnored(t *testing.T) {
	app := test.NewTempApp(t)
	view := New(app, timer.DefaultState(), Controls{})

	assert.NotPanics(t, func() {
		test.Tap(view.toggleButton)
		test.Tap(view.resetButton)
		test.Tap(view.workIncrease)
	})
}

func TestDurationCaption(t *testing.T) {
	assert.Equal(t, "Work 1 min", durationCaption("Work", 60))
	assert.Equal(t, "Break 26 min", durationCaption("Break", 1560))
}

func TestWindow_ShowHelp(t *testing.T) {
	app := test.NewTempApp(t)
	view := New(app, timer.DefaultState(), Controls{})

	assert.NotPanics(t, func() {
		view.Show()
		view.ShowHelp()
	})
}
