package layout

// CalculateOverlayWidth sizes the jump overlay as a share of the terminal,
// held within [MinWidth, MaxWidth] and never wider than the screen minus
// its frame.
func CalculateOverlayWidth(terminalWidth int, cfg OverlayConfig) int {
	width := min(max(terminalWidth*cfg.WidthPercent/100, cfg.MinWidth), cfg.MaxWidth)
	return max(min(width, terminalWidth-4), 1)
}

// CalculateVisibleListItems returns the window [start, end) of a match list
// that keeps the cursor on screen, scrolling only once it passes the last
// visible row.
func CalculateVisibleListItems(maxVisible, cursor, total int) (start, end int) {
	if total <= maxVisible {
		return 0, total
	}
	start = max(cursor-maxVisible+1, 0)
	return start, min(start+maxVisible, total)
}
