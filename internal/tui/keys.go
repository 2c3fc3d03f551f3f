package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the key bindings for the swipe view.
type keyMap struct {
	Like    key.Binding
	Skip    key.Binding
	Refresh key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Like: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/→", "like"),
		),
		Skip: key.NewBinding(
			key.WithKeys("s", "left"),
			key.WithHelp("s/←", "skip"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "back"),
		),
	}
}
