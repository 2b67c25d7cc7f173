package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"pomodoro/internal/core/timer"
	"pomodoro/internal/ui/guide"
)

// View implements tea.Model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showGuide {
		return m.styles.App.Render(m.viewGuide())
	}

	sessionStyle := m.styles.Work
	sessionName := "work"
	if m.state.CurrentSession == timer.SessionBreak {
		sessionStyle = m.styles.Break
		sessionName = "break"
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.Title.Render("Pomodoro Timer"),
		m.styles.Subtitle.Render("A timer for the Pomodoro Technique."),
		"",
		sessionStyle.Render(sessionName),
		m.styles.Clock.Render(timer.FormatTime(m.state.CurrentTime)),
		m.styles.Durations.Render(fmt.Sprintf("work %d min · break %d min",
			m.state.WorkDuration/60, m.state.BreakDuration/60)),
		m.viewStatus(),
		"",
		m.help.View(m.keys),
	)
	return m.styles.App.Render(body)
}

func (m *Model) viewStatus() string {
	switch m.state.TimerStatus {
	case timer.StatusRunning:
		return m.styles.Status.Render("running")
	case timer.StatusPaused:
		return m.styles.Paused.Render("paused")
	default:
		return m.styles.Status.Render("idle")
	}
}

func (m *Model) viewGuide() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Title.Render(guide.Title),
		m.styles.Guide.Render(guide.Text()),
		m.styles.Subtitle.Render("Read more: "+guide.ReadMoreURL),
		"",
		m.styles.Subtitle.Render("press any key to return"),
	)
}
