package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds all lipgloss styles for the TUI.
type Styles struct {
	App            lipgloss.Style
	Title          lipgloss.Style
	Header         lipgloss.Style
	Option         lipgloss.Style
	OptionFocused  lipgloss.Style
	OptionChecked  lipgloss.Style
	OptionDisabled lipgloss.Style
	Match          lipgloss.Style // fuzzy-matched characters in the jump list
	Overlay        lipgloss.Style
	Help           lipgloss.Style
	Empty          lipgloss.Style
	HintKey        lipgloss.Style
	HintDesc       lipgloss.Style
}

// DefaultStyles returns the default style configuration.
// Grayscale with a single desaturated teal accent.
func DefaultStyles() Styles {
	primary := lipgloss.AdaptiveColor{Light: "#505050", Dark: "#A0A0A0"}
	subtle := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#606060"}
	accent := lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}
	border := lipgloss.AdaptiveColor{Light: "#888888", Dark: "#505050"}

	// Option styles carry no padding: the grid positions cells by width.
	return Styles{
		App: lipgloss.NewStyle().
			PaddingTop(1).
			PaddingLeft(2).
			PaddingRight(2),

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		Header: lipgloss.NewStyle().
			Foreground(subtle).
			MarginBottom(1),

		Option: lipgloss.NewStyle().
			Foreground(primary),

		OptionFocused: lipgloss.NewStyle().
			Background(accent).
			Foreground(lipgloss.Color("#1A1A1A")),

		OptionChecked: lipgloss.NewStyle().
			Bold(true).
			Foreground(accent),

		OptionDisabled: lipgloss.NewStyle().
			Foreground(subtle).
			Strikethrough(true),

		Match: lipgloss.NewStyle().
			Underline(true).
			Foreground(accent),

		Overlay: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(border).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(subtle).
			PaddingTop(1),

		Empty: lipgloss.NewStyle().
			Foreground(subtle),

		HintKey: lipgloss.NewStyle().
			Foreground(accent),

		HintDesc: lipgloss.NewStyle().
			Foreground(subtle),
	}
}
