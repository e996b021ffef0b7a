package layout

import "github.com/mattn/go-runewidth"

// CalculateViewportHeight computes the rows available to the grid.
// Returns at least MinHeight.
func CalculateViewportHeight(terminalHeight int, cfg FrameConfig) int {
	height := terminalHeight - cfg.HeightReduction
	if height < cfg.MinHeight {
		return cfg.MinHeight
	}
	return height
}

// CalculateContentWidth computes the columns available to the grid.
func CalculateContentWidth(terminalWidth int, cfg FrameConfig) int {
	width := terminalWidth - cfg.ContentPadding
	if width < 1 {
		return 1
	}
	return width
}

// CalculateLabelWidth returns how wide a label may be so that columns
// option cells, separated by columnSpacing, fit in contentWidth.
func CalculateLabelWidth(contentWidth, columns, columnSpacing int, cfg LayoutConfig) int {
	if columns < 1 {
		columns = 1
	}
	cell := (contentWidth - (columns-1)*columnSpacing) / columns
	label := cell - runewidth.StringWidth(cfg.Glyphs.Prefix(false, false))
	if label < cfg.Frame.MinLabelWidth {
		return cfg.Frame.MinLabelWidth
	}
	return label
}

// CalculateViewportOffset calculates the scroll offset needed to keep the
// focused row visible within the viewport.
func CalculateViewportOffset(focused, total, viewportHeight int) int {
	if total <= viewportHeight {
		return 0
	}

	// Keep focus roughly centered, but clamp to valid range
	offset := focused - viewportHeight/2
	if offset < 0 {
		offset = 0
	}

	maxOffset := total - viewportHeight
	if offset > maxOffset {
		offset = maxOffset
	}

	return offset
}
