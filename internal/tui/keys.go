package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Restart key.Binding
	Quit    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Restart: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "play again"),
			key.WithDisabled(),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Restart, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
