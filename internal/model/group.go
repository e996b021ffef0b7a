package model

import "strings"

// Group holds the options of one radio group in display order.
type Group struct {
	Name    string   `json:"name" yaml:"name"`
	Header  string   `json:"header,omitempty" yaml:"header,omitempty"`
	Options []Option `json:"options" yaml:"options"`
}

// NewGroup creates an empty Group with an initialized option slice.
func NewGroup(name string) *Group {
	return &Group{
		Name:    name,
		Options: []Option{},
	}
}

// Len returns the number of options.
func (g *Group) Len() int {
	return len(g.Options)
}

// OptionByID finds an option by ID, returns nil if not found.
func (g *Group) OptionByID(id string) *Option {
	for i := range g.Options {
		if g.Options[i].ID == id {
			return &g.Options[i]
		}
	}
	return nil
}

// IndexOf returns the index of the option with the given ID, or -1.
func (g *Group) IndexOf(id string) int {
	for i := range g.Options {
		if g.Options[i].ID == id {
			return i
		}
	}
	return -1
}

// Labels returns the option labels in order.
func (g *Group) Labels() []string {
	labels := make([]string, len(g.Options))
	for i, o := range g.Options {
		labels[i] = o.Label
	}
	return labels
}

// EnsureIDs assigns a UUID to every option that has none or shares its ID
// with an earlier option. Hand-written config files usually omit IDs.
func (g *Group) EnsureIDs() {
	seen := make(map[string]bool, len(g.Options))
	for i := range g.Options {
		if g.Options[i].ID == "" || seen[g.Options[i].ID] {
			g.Options[i].ID = GenerateUUID()
		}
		seen[g.Options[i].ID] = true
	}
}

// HasLabel returns true if an option with the label exists (case-insensitive).
func (g *Group) HasLabel(label string) bool {
	for _, o := range g.Options {
		if strings.EqualFold(o.Label, label) {
			return true
		}
	}
	return false
}

// ImportMerge appends options whose labels are not already present.
// Returns the number of options added and skipped as duplicates.
func (g *Group) ImportMerge(options []Option) (added, skipped int) {
	for _, o := range options {
		if o.Label == "" || g.HasLabel(o.Label) {
			skipped++
			continue
		}
		if o.ID == "" {
			o.ID = GenerateUUID()
		}
		g.Options = append(g.Options, o)
		added++
	}
	return added, skipped
}
