package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/nikbrunner/radiogrid/internal/model"
	"github.com/nikbrunner/radiogrid/internal/search"
	"github.com/nikbrunner/radiogrid/internal/tui/layout"
)

// Mode is the input mode of the App.
type Mode int

const (
	ModeNormal Mode = iota
	ModeFilter      // type-to-jump overlay is open
)

// MessageType selects how the status message is styled.
type MessageType int

const (
	MessageInfo MessageType = iota
	MessageSuccess
	MessageError
)

// FilterState holds state for the type-to-jump overlay.
type FilterState struct {
	Input   textinput.Model
	Matches []search.SearchResult
	Cursor  int
}

// NewFilterState creates a new FilterState with initialized input.
func NewFilterState(cfg layout.LayoutConfig) FilterState {
	input := textinput.New()
	input.Placeholder = "Jump to..."
	input.CharLimit = cfg.Input.FilterCharLimit
	input.Width = cfg.Input.FilterWidth

	return FilterState{Input: input}
}

// Reset clears the filter for a new session.
func (f *FilterState) Reset() {
	f.Input.Reset()
	f.Matches = nil
	f.Cursor = 0
}

// Refresh recomputes matches for the current query, keeping the cursor in
// range.
func (f *FilterState) Refresh(group *model.Group) {
	f.Matches = search.FuzzySearchOptions(group, f.Input.Value())
	if f.Cursor >= len(f.Matches) {
		f.Cursor = 0
	}
}

// Target returns the group index the filter would jump to: the match under
// the cursor if it can take focus, otherwise the best eligible match.
func (f *FilterState) Target(group *model.Group) int {
	if f.Cursor < len(f.Matches) && f.Matches[f.Cursor].Option.Eligible() {
		return f.Matches[f.Cursor].Index
	}
	return search.BestEligible(group, f.Input.Value())
}
