package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nikbrunner/radiogrid/internal/grid"
	"github.com/nikbrunner/radiogrid/internal/search"
	"github.com/nikbrunner/radiogrid/internal/tui/layout"
)

func (a App) renderView() string {
	body := a.renderGrid()
	if a.mode == ModeFilter {
		body = lipgloss.JoinVertical(lipgloss.Left, body, a.renderFilter())
	}

	content := a.styles.App.Render(
		lipgloss.JoinVertical(lipgloss.Left, a.renderHeader(), body, a.renderHelpBar()),
	)

	// Use Place to ensure exact terminal dimensions
	return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, content)
}

func (a App) renderHeader() string {
	title := a.styles.Title.Render(a.config.Name)
	if a.config.Header == "" {
		return a.styles.Header.Render(title)
	}
	return a.styles.Header.Render(title + "  " + a.config.Header)
}

// ensureLayout measures and arranges the elements unless the cached
// arrangement is still valid for the current width.
func (a App) ensureLayout() grid.Size {
	contentWidth := layout.CalculateContentWidth(a.width, a.layoutConfig.Frame)
	if a.cache.valid && a.cache.width == contentWidth {
		return a.cache.desired
	}

	columns := min(a.layout.MaximumColumns(), a.repeater.Len())
	labelWidth := layout.CalculateLabelWidth(contentWidth, columns, int(a.layout.ColumnSpacing()), a.layoutConfig)
	prefixWidth := layout.VisibleLength(a.layoutConfig.Glyphs.Prefix(false, false))
	available := grid.Size{
		Width:  float64(prefixWidth + labelWidth),
		Height: float64(layout.CalculateViewportHeight(a.height, a.layoutConfig.Frame)),
	}

	children := a.repeater.Children()
	desired := a.layout.MeasureChildren(children, available)
	a.layout.ArrangeChildren(children, desired)

	a.cache.valid = true
	a.cache.width = contentWidth
	a.cache.desired = desired
	return desired
}

// renderGrid draws every element at its arranged position, scrolled so that
// the focused row stays visible.
func (a App) renderGrid() string {
	if a.repeater.Len() == 0 {
		return a.styles.Empty.Render("No options")
	}
	a.ensureLayout()

	totalLines := 0
	for i := 0; i < a.repeater.Len(); i++ {
		e, _ := a.repeater.TryGetElement(i)
		b := e.Bounds()
		totalLines = max(totalLines, int(b.Y+b.Height))
	}

	focusedLine := 0
	if e, ok := a.repeater.TryGetElement(a.group.Focused()); ok {
		focusedLine = int(e.Bounds().Y)
	}
	viewportHeight := layout.CalculateViewportHeight(a.height, a.layoutConfig.Frame)
	offset := layout.CalculateViewportOffset(focusedLine, totalLines, viewportHeight)

	blocks := make([]layout.Block, 0, a.repeater.Len())
	for i := 0; i < a.repeater.Len(); i++ {
		e, _ := a.repeater.TryGetElement(i)
		b := e.Bounds()
		y := int(b.Y) - offset
		if y < 0 || y >= viewportHeight {
			continue
		}
		blocks = append(blocks, layout.Block{
			X:       int(b.X),
			Y:       y,
			Content: a.renderElement(e, i == a.group.Focused()),
		})
	}

	return layout.Compose(blocks)
}

func (a App) renderElement(e *Element, focused bool) string {
	prefix := a.layoutConfig.Glyphs.Prefix(focused, e.Checked())
	text, _ := layout.TruncateWithPrefixSuffix(e.Option.Label, int(e.Bounds().Width), prefix, "", a.layoutConfig.Text)

	switch {
	case e.Option.Disabled:
		return a.styles.OptionDisabled.Render(text)
	case focused:
		return a.styles.OptionFocused.Render(text)
	case e.Checked():
		return a.styles.OptionChecked.Render(text)
	}
	return a.styles.Option.Render(text)
}

// renderFilter renders the type-to-jump input and its matches.
func (a App) renderFilter() string {
	width := layout.CalculateOverlayWidth(a.width, a.layoutConfig.Overlay)

	var b strings.Builder
	b.WriteString(a.filter.Input.View())
	b.WriteString("\n")

	matches := a.filter.Matches
	start, end := layout.CalculateVisibleListItems(a.layoutConfig.Overlay.MaxVisible, a.filter.Cursor, len(matches))
	for i := start; i < end; i++ {
		cursor := "  "
		if i == a.filter.Cursor {
			cursor = "> "
		}
		line := cursor + a.highlightMatch(matches[i])
		b.WriteString(layout.TruncateANSIAware(line, width-4, a.layoutConfig.Text))
		b.WriteString("\n")
	}
	if a.filter.Input.Value() != "" && len(matches) == 0 {
		b.WriteString(a.styles.Empty.Render("no matches"))
		b.WriteString("\n")
	}

	b.WriteString(a.renderHintsInline(filterHints()))

	return a.styles.Overlay.Width(width).Render(b.String())
}

// highlightMatch renders a match label with its matched characters styled.
func (a App) highlightMatch(m search.SearchResult) string {
	hit := make(map[int]bool, len(m.MatchedIndexes))
	for _, i := range m.MatchedIndexes {
		hit[i] = true
	}

	base := a.styles.Option
	if !m.Option.Eligible() {
		base = a.styles.OptionDisabled
	}

	var b strings.Builder
	for i, r := range m.Option.Label {
		if hit[i] {
			b.WriteString(a.styles.Match.Render(string(r)))
		} else {
			b.WriteString(base.Render(string(r)))
		}
	}
	return b.String()
}

func (a App) renderHelpBar() string {
	var lines []string

	if msg := a.renderMessageLine(); msg != "" {
		lines = append(lines, msg)
	} else {
		lines = append(lines, a.renderSelectionLine())
	}

	lines = append(lines, a.help.View(a.keys))
	return a.styles.Help.Render(strings.Join(lines, "\n"))
}

// renderSelectionLine shows the current selection, e.g. "selected: Large (3/5)".
func (a App) renderSelectionLine() string {
	selected := a.group.SelectedOption()
	if selected == nil {
		return a.styles.Empty.Render("nothing selected")
	}
	return a.styles.HintDesc.Render(fmt.Sprintf("selected: %s (%d/%d)",
		selected.Label, a.group.SelectedIndex()+1, a.repeater.Len()))
}
