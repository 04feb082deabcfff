package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Sections []key.Binding // one per page section, in order

	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding

	NextLink key.Binding
	PrevLink key.Binding
	Copy     key.Binding

	Theme key.Binding
	Help  key.Binding
	Quit  key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Sections: []key.Binding{
			key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "home")),
			key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "about")),
			key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "skills")),
			key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "projects")),
			key.NewBinding(key.WithKeys("5"), key.WithHelp("5", "contact")),
		},
		Up:       key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "scroll up")),
		Down:     key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "scroll down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", " ", "f"), key.WithHelp("pgdn", "page down")),
		Top:      key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		NextLink: key.NewBinding(key.WithKeys("n", "tab"), key.WithHelp("n", "next link")),
		PrevLink: key.NewBinding(key.WithKeys("p", "shift+tab"), key.WithHelp("p", "prev link")),
		Copy:     key.NewBinding(key.WithKeys("y", "enter"), key.WithHelp("y", "copy link")),
		Theme:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "toggle theme")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Down, k.NextLink, k.Copy, k.Theme, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Sections,
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Top, k.Bottom},
		{k.NextLink, k.PrevLink, k.Copy},
		{k.Theme, k.Help, k.Quit},
	}
}
