package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the application key bindings.
type keyMap struct {
	Back     key.Binding
	Preview  key.Binding
	NextTab  key.Binding
	Compose  key.Binding
	Open     key.Binding
	Settings key.Binding
	Pane     key.Binding
	Jump     key.Binding
	Quit     key.Binding
}

// ShortHelp returns the bindings for the footer bar.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Back, k.Preview, k.NextTab, k.Compose, k.Open, k.Pane, k.Jump, k.Quit}
}

// FullHelp returns the bindings grouped for expanded help.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Back, k.Preview, k.NextTab},
		{k.Compose, k.Open, k.Settings},
		{k.Pane, k.Jump, k.Quit},
	}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Back: key.NewBinding(
			key.WithKeys("esc", "backspace"),
			key.WithHelp("esc", "back"),
		),
		Preview: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "peek back"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		Compose: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "compose"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter", "o"),
			key.WithHelp("enter", "open message"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		Pane: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "switch pane"),
		),
		Jump: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "jump"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
