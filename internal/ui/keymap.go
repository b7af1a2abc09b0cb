package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds the presentation key bindings. It implements help.KeyMap
// for rendering with bubbles/help.
type KeyMap struct {
	Next       key.Binding
	Prev       key.Binding
	FirstSlide key.Binding
	LastSlide  key.Binding
	Index      key.Binding
	GoTo       key.Binding
	Fullscreen key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the standard presentation bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Next: key.NewBinding(
			key.WithKeys("right", " ", "enter"),
			key.WithHelp("→/space", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("left", "backspace"),
			key.WithHelp("←/bksp", "prev"),
		),
		FirstSlide: key.NewBinding(
			key.WithKeys("home"),
			key.WithHelp("home", "first slide"),
		),
		LastSlide: key.NewBinding(
			key.WithKeys("end"),
			key.WithHelp("end", "last slide"),
		),
		Index: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "index"),
		),
		GoTo: key.NewBinding(
			key.WithKeys("g"),
			key.WithHelp("g", "go to slide"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fullscreen"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Prev, k.GoTo, k.Index, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev, k.FirstSlide, k.LastSlide},
		{k.Index, k.GoTo, k.Fullscreen},
		{k.Help, k.Quit},
	}
}
