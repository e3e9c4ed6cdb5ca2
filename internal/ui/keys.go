package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Choose   key.Binding
	Previous key.Binding
	Next     key.Binding
	Restart  key.Binding
	Paste    key.Binding
	Copy     key.Binding
	Help     key.Binding
	Quit     key.Binding
	Load     key.Binding
	Cancel   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Choose: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9", "a", "b", "c", "d", "e", "f", "g"),
			key.WithHelp("a-g/1-9", "answer"),
		),
		Previous: key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous")),
		Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		Restart:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Paste:    key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paste quiz JSON")),
		Copy:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy prompt")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Load:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "load")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Choose, k.Previous, k.Next, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Choose, k.Previous, k.Next, k.Restart},
		{k.Paste, k.Copy, k.Help, k.Quit},
	}
}

// choiceIndex maps a choice key to a zero-based index.
func choiceIndex(s string) (int, bool) {
	if len(s) != 1 {
		return 0, false
	}
	c := s[0]
	switch {
	case c >= '1' && c <= '9':
		return int(c - '1'), true
	case c >= 'a' && c <= 'g':
		return int(c - 'a'), true
	}
	return 0, false
}
