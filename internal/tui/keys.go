package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Raise      key.Binding
	Lower      key.Binding
	Hidden     key.Binding
	Quarter    key.Binding
	Half       key.Binding
	Full       key.Binding
	ToggleDrag key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Raise: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "raise"),
		),
		Lower: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "lower"),
		),
		Hidden: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "hidden"),
		),
		Quarter: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "quarter"),
		),
		Half: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "half"),
		),
		Full: key.NewBinding(
			key.WithKeys("4"),
			key.WithHelp("4", "full"),
		),
		ToggleDrag: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle drag"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Raise, k.Lower, k.ToggleDrag, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Raise, k.Lower},
		{k.Hidden, k.Quarter, k.Half, k.Full},
		{k.ToggleDrag, k.Help, k.Quit},
	}
}
