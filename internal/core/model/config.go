package model

import (
	"time"

	"pomodoro/internal/core/timer"
)

// Settings defines user-configurable timer preferences.
type Settings struct {
	WorkDuration  time.Duration
	BreakDuration time.Duration
	LogLevel      string
}

// DefaultSettings returns default settings for the timer.
func DefaultSettings() Settings {
	return Settings{
		WorkDuration:  timer.DefaultWorkDuration * time.Second,
		BreakDuration: timer.DefaultBreakDuration * time.Second,
		LogLevel:      "info",
	}
}

// TimerState converts settings to an idle timer state. Durations are
// truncated to whole seconds and never go below one minute.
func (settings Settings) TimerState() timer.State {
	return timer.NewState(
		int(settings.WorkDuration/time.Second),
		int(settings.BreakDuration/time.Second),
	)
}
