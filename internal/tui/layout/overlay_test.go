package layout

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestCalculateOverlayWidth(t *testing.T) {
	cfg := DefaultConfig().Overlay

	tests := []struct {
		terminalWidth int
		want          int
	}{
		{80, 40},  // half the terminal
		{200, 70}, // capped at MaxWidth
		{50, 30},  // raised to MinWidth
		{20, 16},  // MinWidth would overflow the screen
		{3, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, CalculateOverlayWidth(tt.terminalWidth, cfg), tt.want, "terminal width %d", tt.terminalWidth)
	}
}

func TestCalculateVisibleListItems(t *testing.T) {
	tests := []struct {
		name                  string
		maxVisible, cursor, n int
		wantStart, wantEnd    int
	}{
		{"every match fits", 8, 3, 5, 0, 5},
		{"cursor on first page", 8, 7, 20, 0, 8},
		{"cursor past first page", 8, 10, 20, 3, 11},
		{"cursor on last match", 8, 19, 20, 12, 20},
		{"no matches", 8, 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := CalculateVisibleListItems(tt.maxVisible, tt.cursor, tt.n)
			assert.Equal(t, start, tt.wantStart)
			assert.Equal(t, end, tt.wantEnd)
		})
	}
}
