package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the keybindings for the TUI.
type KeyMap struct {
	Toggle        key.Binding // Start or pause
	Reset         key.Binding
	WorkDecrease  key.Binding
	WorkIncrease  key.Binding
	BreakDecrease key.Binding
	BreakIncrease key.Binding
	Guide         key.Binding // Explain the technique
	Help          key.Binding
	Quit          key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(" ", "s"),
			key.WithHelp("space/s", "start/pause"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reset"),
		),
		WorkDecrease: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "work -1m"),
		),
		WorkIncrease: key.NewBinding(
			key.WithKeys("W"),
			key.WithHelp("W", "work +1m"),
		),
		BreakDecrease: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "break -1m"),
		),
		BreakIncrease: key.NewBinding(
			key.WithKeys("B"),
			key.WithHelp("B", "break +1m"),
		),
		Guide: key.NewBinding(
			key.WithKeys("i"),
			key.WithHelp("i", "about"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.Reset, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Toggle, k.Reset},
		{k.WorkDecrease, k.WorkIncrease},
		{k.BreakDecrease, k.BreakIncrease},
		{k.Guide, k.Help, k.Quit},
	}
}
