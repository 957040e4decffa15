package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the portfolio.
type KeyMap struct {
	About      key.Binding
	Projects   key.Binding
	Leadership key.Binding
	Contact    key.Binding
	ViewWork   key.Binding
	GetInTouch key.Binding
	Theme      key.Binding
	Menu       key.Binding
	Scroll     key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		About: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "about"),
		),
		Projects: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "projects"),
		),
		Leadership: key.NewBinding(
			key.WithKeys("l"),
			key.WithHelp("l", "leadership"),
		),
		Contact: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "contact"),
		),
		ViewWork: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view my work"),
		),
		GetInTouch: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "get in touch"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
			key.WithDisabled(),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "pgup", "pgdown"),
			key.WithHelp("↑/↓", "scroll"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns the short help bindings.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Menu, k.Theme, k.Scroll, k.Quit}
}

// FullHelp returns the full help bindings.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.About, k.Projects, k.Leadership, k.Contact},
		{k.ViewWork, k.GetInTouch},
		{k.Menu, k.Theme, k.Scroll, k.Quit},
	}
}
