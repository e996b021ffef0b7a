package layout

import (
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func TestStripANSI(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Medium", "Medium"},
		{"\x1b[1m(*) Medium\x1b[0m", "(*) Medium"},
		{"( ) \x1b[38;5;66mMe\x1b[0mdium", "( ) Medium"},
		{"\x1b[1m\x1b[9m\x1b[0m", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, StripANSI(tt.input), tt.want, "input %q", tt.input)
	}
}

func TestVisibleLength(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"plain label", "Medium", 6},
		{"styled label", "\x1b[1mMedium\x1b[0m", 6},
		{"marker and label", ">(*) Small", 10},
		{"wide label", "中杯", 4},
		{"styled wide label", "\x1b[4m大杯\x1b[0m", 4},
		{"accented", "Crème", 5},
		{"empty", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, VisibleLength(tt.input), tt.want)
		})
	}
}

func TestTruncateText(t *testing.T) {
	cfg := DefaultConfig().Text

	tests := []struct {
		name      string
		text      string
		maxWidth  int
		want      string
		truncated bool
	}{
		{"fits", "Small", 10, "Small", false},
		{"exact width", "Large", 5, "Large", false},
		{"cut with ellipsis", "Extra Large", 8, "Extra...", true},
		{"room for ellipsis only", "Medium", 3, "...", true},
		{"partial ellipsis", "Medium", 2, "..", true},
		{"zero width", "Medium", 0, "", true},
		{"empty label", "", 10, "", false},
		{"wide label fits", "中杯", 4, "中杯", false},
		{"wide label cut on a cell boundary", "大杯特大", 6, "大...", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := TruncateText(tt.text, tt.maxWidth, cfg)
			assert.Equal(t, got, tt.want)
			assert.Equal(t, truncated, tt.truncated)
		})
	}
}

func TestTruncateWithPrefixSuffix(t *testing.T) {
	cfg := DefaultConfig().Text

	tests := []struct {
		name      string
		text      string
		maxWidth  int
		prefix    string
		suffix    string
		want      string
		truncated bool
	}{
		{"marker fits", "Medium", 10, "( ) ", "", "( ) Medium", false},
		{"label cut, marker kept", "Medium", 9, "( ) ", "", "( ) Me...", true},
		{"focused checked marker", "Extra Large", 12, ">(*) ", "", ">(*) Extr...", true},
		{"suffix kept", "Large", 10, "( ) ", " *", "( ) L... *", true},
		{"marker alone", "", 10, "( ) ", "", "( ) ", false},
		{"no room for the label", "Small", 7, " ( ) ", "", " ( )...", true},
		{"zero width", "Small", 0, "( ) ", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, truncated := TruncateWithPrefixSuffix(tt.text, tt.maxWidth, tt.prefix, tt.suffix, cfg)
			assert.Equal(t, got, tt.want)
			assert.Equal(t, truncated, tt.truncated)
			assert.Assert(t, VisibleLength(got) <= max(tt.maxWidth, 0))
		})
	}
}

func TestTruncateANSIAware(t *testing.T) {
	cfg := DefaultConfig().Text
	const reset = "\x1b[0m"

	tests := []struct {
		name     string
		input    string
		maxWidth int
	}{
		{"plain fits", "> Medium", 10},
		{"styled fits", "> \x1b[1mMed\x1b[0mium", 10},
		{"plain cut", "> Extra Large", 8},
		{"highlighted match cut", "> \x1b[1mE\x1b[0mxtra \x1b[1mL\x1b[0marge", 8},
		{"wide cut", "> 大杯特大杯", 7},
		{"ellipsis only", "> Medium", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := TruncateANSIAware(tt.input, tt.maxWidth, cfg)
			assert.Assert(t, VisibleLength(got) <= tt.maxWidth, "got %q", got)

			if VisibleLength(tt.input) <= tt.maxWidth {
				assert.Equal(t, got, tt.input)
				return
			}
			assert.Assert(t, strings.HasSuffix(got, cfg.Ellipsis+reset), "got %q", got)
		})
	}
}

func TestTruncateANSIAware_Degenerate(t *testing.T) {
	cfg := DefaultConfig().Text

	assert.Equal(t, TruncateANSIAware("Medium", 0, cfg), "")
	assert.Equal(t, TruncateANSIAware("Medium", -1, cfg), "")
	assert.Equal(t, TruncateANSIAware("", 10, cfg), "")
	assert.Equal(t, TruncateANSIAware("\x1b[1m\x1b[0m", 10, cfg), "\x1b[1m\x1b[0m")
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  int
	}{
		{"( ) A", 8, 8},
		{"\x1b[1m(*) A\x1b[0m", 8, 8},
		{"( ) Medium", 4, 10},
		{"中", 5, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, VisibleLength(PadRight(tt.input, tt.width)), tt.want, "PadRight(%q, %d)", tt.input, tt.width)
	}
}
