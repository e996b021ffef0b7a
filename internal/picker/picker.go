// Package picker is a one-shot chooser over fuzzy search results, used when
// a query from the command line matches more than one option.
package picker

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/radiogrid/internal/model"
	"github.com/nikbrunner/radiogrid/internal/search"
	"github.com/nikbrunner/radiogrid/internal/tui/layout"
)

var (
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	labelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	matchStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Underline(true)
	disabledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Strikethrough(true)
	titleStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("99")).Bold(true)
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

type keyMap struct {
	Down   key.Binding
	Up     key.Binding
	Choose key.Binding
	Cancel key.Binding
}

var keys = keyMap{
	Down:   key.NewBinding(key.WithKeys("j", "down")),
	Up:     key.NewBinding(key.WithKeys("k", "up")),
	Choose: key.NewBinding(key.WithKeys("enter")),
	Cancel: key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
}

// Picker lists search results as radio options; Enter checks one and quits.
type Picker struct {
	results   []search.SearchResult
	query     string
	cursor    int
	selected  bool
	cancelled bool
	width     int
	glyphs    layout.GlyphConfig
	text      layout.TextConfig
}

// New creates a Picker over results, which are shown in the order given.
func New(results []search.SearchResult, query string) Picker {
	cfg := layout.DefaultConfig()
	return Picker{
		results: results,
		query:   query,
		width:   80,
		glyphs:  cfg.Glyphs,
		text:    cfg.Text,
	}
}

// Init implements tea.Model.
func (p Picker) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (p Picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.width = msg.Width

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Cancel):
			p.cancelled = true
			return p, tea.Quit

		case key.Matches(msg, keys.Choose):
			if o := p.current(); o == nil || o.Disabled {
				return p, nil
			}
			p.selected = true
			return p, tea.Quit

		case key.Matches(msg, keys.Down):
			p.cursor = min(p.cursor+1, max(len(p.results)-1, 0))

		case key.Matches(msg, keys.Up):
			p.cursor = max(p.cursor-1, 0)
		}
	}
	return p, nil
}

func (p Picker) current() *model.Option {
	if p.cursor >= len(p.results) {
		return nil
	}
	return p.results[p.cursor].Option
}

// View implements tea.Model.
func (p Picker) View() string {
	lines := []string{
		titleStyle.Render(fmt.Sprintf("Pick: %s (%d results)", p.query, len(p.results))),
		"",
	}

	for i, r := range p.results {
		focused := i == p.cursor
		prefix := p.glyphs.Prefix(focused, focused && p.selected)
		if focused {
			prefix = cursorStyle.Render(prefix)
		}

		base := labelStyle
		if r.Option.Disabled {
			base = disabledStyle
		}
		row := prefix + highlight(r.Option.Label, r.MatchedIndexes, base) + footerStyle.Render(fmt.Sprintf("  #%d", r.Index+1))
		lines = append(lines, row)
	}

	lines = append(lines, "", footerStyle.Render("j/k move  enter choose  q/esc cancel"))
	for i, line := range lines {
		lines[i] = layout.TruncateANSIAware(line, p.width, p.text)
	}
	return strings.Join(lines, "\n")
}

// highlight renders label with the fuzzy-matched characters emphasised.
func highlight(label string, matched []int, base lipgloss.Style) string {
	if len(matched) == 0 {
		return base.Render(label)
	}

	hit := make(map[int]bool, len(matched))
	for _, i := range matched {
		hit[i] = true
	}

	var b strings.Builder
	for i, r := range label {
		style := base
		if hit[i] {
			style = matchStyle.Inherit(base)
		}
		b.WriteString(style.Render(string(r)))
	}
	return b.String()
}

// SelectedOption returns the chosen option, or nil if nothing was chosen.
func (p Picker) SelectedOption() *model.Option {
	if p.cancelled || !p.selected {
		return nil
	}
	return p.current()
}

// SelectedIndex returns the group index of the chosen option, or -1.
func (p Picker) SelectedIndex() int {
	if p.SelectedOption() == nil {
		return -1
	}
	return p.results[p.cursor].Index
}

// Cancelled reports whether the picker was closed without a choice.
func (p Picker) Cancelled() bool {
	return p.cancelled
}
