package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap lists every binding the viewer reacts to
type KeyMap struct {
	Forward   key.Binding
	Back      key.Binding
	Reset     key.Binding
	Offset    key.Binding
	Save      key.Binding
	Help      key.Binding
	HelpPager key.Binding
	Quit      key.Binding
	ForceQuit key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Forward: key.NewBinding(
			key.WithKeys("right", "l", "n"),
			key.WithHelp("→/l", "forward"),
		),
		Back: key.NewBinding(
			key.WithKeys("left", "h", "p"),
			key.WithHelp("←/h", "back"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r", "home"),
			key.WithHelp("r", "reset"),
		),
		Offset: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "offset"),
		),
		Save: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		HelpPager: key.NewBinding(
			key.WithKeys("H"),
			key.WithHelp("H", "help pager"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "force quit"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y", "Y", "enter"),
			key.WithHelp("y", "confirm"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("n", "N", "esc"),
			key.WithHelp("n", "cancel"),
		),
	}
}

// ShortHelp satisfies help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Forward, k.Reset, k.Help, k.Quit}
}

// FullHelp satisfies help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Back, k.Forward, k.Reset},
		{k.Offset, k.Save, k.HelpPager},
		{k.Help, k.Quit, k.ForceQuit},
	}
}
