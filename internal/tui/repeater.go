package tui

import (
	"github.com/mattn/go-runewidth"
	"github.com/nikbrunner/radiogrid/internal/grid"
	"github.com/nikbrunner/radiogrid/internal/model"
)

// Repeater realizes one Element per option and reports each element as it
// is prepared for display or cleared away.
type Repeater struct {
	elements    []*Element
	prefixWidth int

	ElementPrepared func(e *Element, index int)
	ElementClearing func(e *Element)
}

// NewRepeater creates an empty Repeater. prefix is the marker drawn before
// each label and is used to measure elements.
func NewRepeater(prefix string) *Repeater {
	return &Repeater{prefixWidth: runewidth.StringWidth(prefix)}
}

// SetItems clears the current elements and realizes one per option.
func (r *Repeater) SetItems(options []model.Option) {
	for _, e := range r.elements {
		if r.ElementClearing != nil {
			r.ElementClearing(e)
		}
	}

	r.elements = make([]*Element, len(options))
	for i, o := range options {
		e := newElement(o, r.prefixWidth)
		r.elements[i] = e
		if r.ElementPrepared != nil {
			r.ElementPrepared(e, i)
		}
	}
}

// Len returns the number of realized elements.
func (r *Repeater) Len() int {
	return len(r.elements)
}

// TryGetElement returns the element at index, if realized.
func (r *Repeater) TryGetElement(index int) (*Element, bool) {
	if index < 0 || index >= len(r.elements) {
		return nil, false
	}
	return r.elements[index], true
}

// ElementIndex returns the index of e, or -1 if it is not realized here.
func (r *Repeater) ElementIndex(e *Element) int {
	for i, el := range r.elements {
		if el == e {
			return i
		}
	}
	return -1
}

// Children returns the elements as layout children, in index order.
func (r *Repeater) Children() []grid.Child {
	children := make([]grid.Child, len(r.elements))
	for i, e := range r.elements {
		children[i] = e
	}
	return children
}
