package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap is the complete input surface. Anything outside it is ignored,
// and nothing is ever forwarded to the child (its stdin is closed).
type KeyMap struct {
	Quit     key.Binding
	Focus    key.Binding
	LineUp   key.Binding
	LineDown key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "quit")),
		Focus:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "switch panel")),
		LineUp:   key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "scroll up")),
		LineDown: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "scroll down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Top:      key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "jump to top")),
		Bottom:   key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "resume autoscroll")),
	}
}
