package model

// NoSelection is the selected index of an empty Selection.
const NoSelection = -1

// Selection tracks the single selected index of a radio group.
// At most one index is selected at any time.
type Selection struct {
	selected int
}

// NewSelection creates an empty Selection.
func NewSelection() *Selection {
	return &Selection{selected: NoSelection}
}

// Select makes index the selected one and returns the index it replaced,
// or NoSelection.
func (s *Selection) Select(index int) int {
	previous := s.selected
	s.selected = index
	return previous
}

// Deselect clears the selection if index is the selected one.
func (s *Selection) Deselect(index int) bool {
	if s.selected != index || index == NoSelection {
		return false
	}
	s.selected = NoSelection
	return true
}

// SelectedIndex returns the selected index or NoSelection.
func (s *Selection) SelectedIndex() int {
	return s.selected
}

// HasSelection returns true if an index is selected.
func (s *Selection) HasSelection() bool {
	return s.selected != NoSelection
}

// IsSelected returns true if index is the selected one.
func (s *Selection) IsSelected(index int) bool {
	return s.selected != NoSelection && s.selected == index
}

// Reset clears the selection.
func (s *Selection) Reset() {
	s.selected = NoSelection
}
