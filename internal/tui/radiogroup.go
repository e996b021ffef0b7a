package tui

import (
	"log"

	"github.com/nikbrunner/radiogrid/internal/grid"
	"github.com/nikbrunner/radiogrid/internal/model"
	"github.com/nikbrunner/radiogrid/internal/nav"
)

// checkHandlers are the group's reactions to one element being toggled.
// They exist only while the element is realized.
type checkHandlers struct {
	checked   func()
	unchecked func()
}

// RadioGroup keeps single selection and keyboard focus across the elements
// of a Repeater laid out by a grid.Layout.
type RadioGroup struct {
	repeater  *Repeater
	layout    *grid.Layout
	selection *model.Selection
	handlers  map[string]checkHandlers
	focused   int
}

// NewRadioGroup attaches a group to repeater. Elements realized from now on
// report their checked state to the group.
func NewRadioGroup(repeater *Repeater, layout *grid.Layout) *RadioGroup {
	g := &RadioGroup{
		repeater:  repeater,
		layout:    layout,
		selection: model.NewSelection(),
		handlers:  make(map[string]checkHandlers),
	}
	repeater.ElementPrepared = g.onElementPrepared
	repeater.ElementClearing = g.onElementClearing
	return g
}

func (g *RadioGroup) onElementPrepared(e *Element, _ int) {
	g.handlers[e.ID()] = checkHandlers{
		checked:   func() { g.onChildChecked(e) },
		unchecked: func() { g.onChildUnchecked(e) },
	}
	e.toggled = g.dispatch
}

func (g *RadioGroup) onElementClearing(e *Element) {
	delete(g.handlers, e.ID())
	e.toggled = nil
}

func (g *RadioGroup) dispatch(e *Element) {
	h, ok := g.handlers[e.ID()]
	if !ok {
		return
	}
	if e.Checked() {
		h.checked()
	} else {
		h.unchecked()
	}
}

// onChildChecked unchecks the previously selected element, which deselects
// it, then selects e.
func (g *RadioGroup) onChildChecked(e *Element) {
	if previous, ok := g.repeater.TryGetElement(g.selection.SelectedIndex()); ok && previous != e {
		previous.SetChecked(false)
	}
	g.selection.Select(g.repeater.ElementIndex(e))
}

func (g *RadioGroup) onChildUnchecked(e *Element) {
	g.selection.Deselect(g.repeater.ElementIndex(e))
}

// SetOptions replaces the options. The selection follows the previously
// selected option by ID, then by label, and is dropped if neither matches.
func (g *RadioGroup) SetOptions(options []model.Option) {
	var keep *model.Option
	if e, ok := g.repeater.TryGetElement(g.selection.SelectedIndex()); ok {
		o := e.Option
		keep = &o
	}

	g.selection.Reset()
	g.repeater.SetItems(options)

	if keep != nil {
		index := indexOfOption(options, *keep)
		if index >= 0 {
			g.SelectIndex(index)
		}
	}
	g.ResetFocus()
}

func indexOfOption(options []model.Option, want model.Option) int {
	if want.ID != "" {
		for i, o := range options {
			if o.ID == want.ID {
				return i
			}
		}
	}
	for i, o := range options {
		if o.Label == want.Label {
			return i
		}
	}
	return -1
}

// ResetFocus puts focus on the selected element if it can take focus,
// otherwise on the first element that can, otherwise on index 0.
func (g *RadioGroup) ResetFocus() {
	if index := g.selection.SelectedIndex(); g.eligible(index) {
		g.focused = index
		return
	}
	for i := 0; i < g.repeater.Len(); i++ {
		if g.eligible(i) {
			g.focused = i
			return
		}
	}
	g.focused = 0
}

func (g *RadioGroup) eligible(index int) bool {
	e, ok := g.repeater.TryGetElement(index)
	return ok && e.Eligible()
}

// MoveNext moves focus to the next eligible element in index order.
func (g *RadioGroup) MoveNext(selectOnFocus bool) bool {
	return g.move(nav.Next, selectOnFocus)
}

// MovePrevious moves focus to the previous eligible element in index order.
func (g *RadioGroup) MovePrevious(selectOnFocus bool) bool {
	return g.move(nav.Previous, selectOnFocus)
}

// MoveRight moves focus to the nearest eligible element in a column to the
// right, preferring the same row.
func (g *RadioGroup) MoveRight(selectOnFocus bool) bool {
	return g.move(nav.Right, selectOnFocus)
}

// MoveLeft moves focus to the nearest eligible element in a column to the
// left, preferring the same row.
func (g *RadioGroup) MoveLeft(selectOnFocus bool) bool {
	return g.move(nav.Left, selectOnFocus)
}

func (g *RadioGroup) move(d nav.Direction, selectOnFocus bool) bool {
	if g.repeater.Len() == 0 {
		return false
	}

	res, err := nav.NextFocusIndex(nav.Request{
		FocusedIndex: g.focused,
		Direction:    d,
		ItemCount:    g.repeater.Len(),
		MaxColumns:   g.layout.MaximumColumns(),
	}, g.eligible)
	if err != nil {
		log.Printf("move %s from %d: %v", d, g.focused, err)
		return false
	}

	index, ok := res.Found()
	if !ok {
		return false
	}
	g.Focus(index, selectOnFocus)
	return true
}

// Focus moves focus to index and, when selectOnFocus is set, checks it.
// Returns false if the element cannot take focus.
func (g *RadioGroup) Focus(index int, selectOnFocus bool) bool {
	if !g.eligible(index) {
		return false
	}
	g.focused = index
	if selectOnFocus {
		g.SelectIndex(index)
	}
	return true
}

// SelectFocused checks the focused element.
func (g *RadioGroup) SelectFocused() bool {
	return g.SelectIndex(g.focused)
}

// SelectIndex checks the element at index. Disabled elements cannot be
// checked.
func (g *RadioGroup) SelectIndex(index int) bool {
	e, ok := g.repeater.TryGetElement(index)
	if !ok || e.Option.Disabled {
		return false
	}
	e.SetChecked(true)
	return true
}

// ClearSelection unchecks the selected element, if any.
func (g *RadioGroup) ClearSelection() bool {
	e, ok := g.repeater.TryGetElement(g.selection.SelectedIndex())
	if !ok {
		return false
	}
	e.SetChecked(false)
	return true
}

// Focused returns the focused index.
func (g *RadioGroup) Focused() int {
	return g.focused
}

// SelectedIndex returns the selected index or model.NoSelection.
func (g *RadioGroup) SelectedIndex() int {
	return g.selection.SelectedIndex()
}

// SelectedOption returns the selected option, or nil.
func (g *RadioGroup) SelectedOption() *model.Option {
	e, ok := g.repeater.TryGetElement(g.selection.SelectedIndex())
	if !ok {
		return nil
	}
	return &e.Option
}

// ContainerFromIndex returns the element realized for index.
func (g *RadioGroup) ContainerFromIndex(index int) (*Element, bool) {
	return g.repeater.TryGetElement(index)
}

// ContainerFromID returns the element realized for the option with id.
func (g *RadioGroup) ContainerFromID(id string) (*Element, bool) {
	for i := 0; i < g.repeater.Len(); i++ {
		if e, _ := g.repeater.TryGetElement(i); e.ID() == id {
			return e, true
		}
	}
	return nil, false
}
