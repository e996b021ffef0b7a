package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Hint represents a single keybind hint for display.
type Hint struct {
	Key  string // Display key (e.g., "Enter")
	Desc string // Short description (e.g., "jump")
}

// renderHintsInline renders hints for overlays: "Enter jump  Esc cancel"
func (a App) renderHintsInline(hints []Hint) string {
	if len(hints) == 0 {
		return ""
	}

	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = a.styles.HintKey.Render(h.Key) + " " + a.styles.HintDesc.Render(h.Desc)
	}
	return strings.Join(parts, "  ")
}

// filterHints are shown under the jump input.
func filterHints() []Hint {
	return []Hint{
		{Key: "Enter", Desc: "jump"},
		{Key: "up/down", Desc: "choose"},
		{Key: "Esc", Desc: "cancel"},
	}
}

// renderMessageLine renders the status message with a prefix by type.
func (a App) renderMessageLine() string {
	if a.messageText == "" {
		return ""
	}

	var color lipgloss.AdaptiveColor
	var prefix string
	switch a.messageType {
	case MessageError:
		color = lipgloss.AdaptiveColor{Light: "#CC3333", Dark: "#FF6666"}
		prefix = "✗ "
	case MessageSuccess:
		color = lipgloss.AdaptiveColor{Light: "#338833", Dark: "#66CC66"}
		prefix = "✓ "
	default:
		color = lipgloss.AdaptiveColor{Light: "#4A7070", Dark: "#5F8787"}
	}

	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(prefix + a.messageText)
}
