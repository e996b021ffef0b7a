package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the application.
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Focus* move focus without checking the target.
	FocusUp    key.Binding
	FocusDown  key.Binding
	FocusLeft  key.Binding
	FocusRight key.Binding

	Select key.Binding
	Clear  key.Binding
	Filter key.Binding
	Yank   key.Binding
	Cancel key.Binding
	Help   key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default vim-style key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "next"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("h/left", "column left"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("l/right", "column right"),
		),
		FocusUp: key.NewBinding(
			key.WithKeys("K", "ctrl+up"),
			key.WithHelp("K", "focus previous"),
		),
		FocusDown: key.NewBinding(
			key.WithKeys("J", "ctrl+down"),
			key.WithHelp("J", "focus next"),
		),
		FocusLeft: key.NewBinding(
			key.WithKeys("H", "ctrl+left"),
			key.WithHelp("H", "focus left"),
		),
		FocusRight: key.NewBinding(
			key.WithKeys("L", "ctrl+right"),
			key.WithHelp("L", "focus right"),
		),
		Select: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "select"),
		),
		Clear: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "jump"),
		),
		Yank: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "yank"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
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
	return []key.Binding{k.Down, k.Right, k.Select, k.Filter, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.FocusUp, k.FocusDown, k.FocusLeft, k.FocusRight},
		{k.Select, k.Clear, k.Yank, k.Filter},
		{k.Help, k.Quit},
	}
}
