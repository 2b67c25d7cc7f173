package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the palette for the TUI.
var Colors = struct {
	Work   lipgloss.Color
	Break  lipgloss.Color
	Title  lipgloss.Color
	Muted  lipgloss.Color
	Paused lipgloss.Color
}{
	Work:   lipgloss.Color("#2563EB"), // Blue
	Break:  lipgloss.Color("#16A34A"), // Green
	Title:  lipgloss.Color("#DFE6E9"), // Light gray
	Muted:  lipgloss.Color("#636E72"), // Gray
	Paused: lipgloss.Color("#FDCB6E"), // Yellow
}

// Styles contains the lipgloss styles for the TUI.
type Styles struct {
	App       lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Work      lipgloss.Style
	Break     lipgloss.Style
	Clock     lipgloss.Style
	Durations lipgloss.Style
	Status    lipgloss.Style
	Paused    lipgloss.Style
	Guide     lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		App:       lipgloss.NewStyle().Padding(1, 2),
		Title:     lipgloss.NewStyle().Bold(true).Foreground(Colors.Title),
		Subtitle:  lipgloss.NewStyle().Foreground(Colors.Muted),
		Work:      lipgloss.NewStyle().Bold(true).Foreground(Colors.Work),
		Break:     lipgloss.NewStyle().Bold(true).Foreground(Colors.Break),
		Clock:     lipgloss.NewStyle().Bold(true).Padding(1, 4).Border(lipgloss.RoundedBorder()),
		Durations: lipgloss.NewStyle().Foreground(Colors.Muted),
		Status:    lipgloss.NewStyle().Foreground(Colors.Muted),
		Paused:    lipgloss.NewStyle().Foreground(Colors.Paused),
		Guide:     lipgloss.NewStyle().Width(64).Padding(1, 0),
	}
}
