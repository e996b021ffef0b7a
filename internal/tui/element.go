package tui

import (
	"github.com/mattn/go-runewidth"
	"github.com/nikbrunner/radiogrid/internal/grid"
	"github.com/nikbrunner/radiogrid/internal/model"
)

// Element is the realized view of one option: a radio button the layout
// measures and arranges.
type Element struct {
	Option model.Option

	checked     bool
	prefixWidth int

	desired grid.Size
	bounds  grid.Rect

	// toggled is set by the owning group while the element is realized.
	toggled func(e *Element)
}

func newElement(option model.Option, prefixWidth int) *Element {
	return &Element{Option: option, prefixWidth: prefixWidth}
}

// ID returns the option ID.
func (e *Element) ID() string {
	return e.Option.ID
}

// Eligible reports whether the element can take keyboard focus.
func (e *Element) Eligible() bool {
	return e.Option.Eligible()
}

// Checked reports whether the radio button is checked.
func (e *Element) Checked() bool {
	return e.checked
}

// SetChecked changes the checked state and notifies the group on change.
func (e *Element) SetChecked(checked bool) {
	if e.checked == checked {
		return
	}
	e.checked = checked
	if e.toggled != nil {
		e.toggled(e)
	}
}

// Measure implements grid.Child. An element is one row high and as wide as
// its marker plus label, capped at the available width.
func (e *Element) Measure(available grid.Size) {
	width := float64(e.prefixWidth + runewidth.StringWidth(e.Option.Label))
	if available.Width > 0 && width > available.Width {
		width = available.Width
	}
	e.desired = grid.Size{Width: width, Height: 1}
}

// DesiredSize implements grid.Child.
func (e *Element) DesiredSize() grid.Size {
	return e.desired
}

// Arrange implements grid.Child.
func (e *Element) Arrange(bounds grid.Rect) {
	e.bounds = bounds
}

// Bounds returns the rectangle assigned by the last Arrange.
func (e *Element) Bounds() grid.Rect {
	return e.bounds
}
