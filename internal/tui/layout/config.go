package layout

// LayoutConfig holds all layout-related configuration values.
type LayoutConfig struct {
	Glyphs  GlyphConfig
	Frame   FrameConfig
	Overlay OverlayConfig
	Input   InputConfig
	Text    TextConfig
}

// GlyphConfig holds the markers drawn in front of each option label.
type GlyphConfig struct {
	Checked   string
	Unchecked string

	// Focus marks the focused option; Blank keeps unfocused labels aligned.
	Focus string
	Blank string
}

// Prefix returns the marker string for an option in the given state.
func (g GlyphConfig) Prefix(focused, checked bool) string {
	cursor := g.Blank
	if focused {
		cursor = g.Focus
	}
	box := g.Unchecked
	if checked {
		box = g.Checked
	}
	return cursor + box + " "
}

// FrameConfig holds the space around the option grid.
type FrameConfig struct {
	// HeightReduction is subtracted from terminal height for the grid.
	// Accounts for: app padding (1) + header (2) + help bar (2) = 5
	HeightReduction int

	// MinHeight is the minimum grid height in rows.
	MinHeight int

	// ContentPadding is subtracted from terminal width (left + right).
	ContentPadding int

	// MinLabelWidth keeps labels readable in narrow terminals.
	MinLabelWidth int
}

// OverlayConfig holds the filter and help overlay configuration.
type OverlayConfig struct {
	// WidthPercent is the overlay width as percentage of terminal width.
	WidthPercent int

	MinWidth int
	MaxWidth int

	// MaxVisible: max matches listed under the filter input.
	MaxVisible int
}

// InputConfig holds text input configuration.
type InputConfig struct {
	FilterCharLimit int
	FilterWidth     int
}

// TextConfig holds text truncation configuration.
type TextConfig struct {
	// Ellipsis is the string used to indicate truncation.
	Ellipsis string
}

// DefaultConfig returns the default layout configuration.
func DefaultConfig() LayoutConfig {
	return LayoutConfig{
		Glyphs: GlyphConfig{
			Checked:   "(*)",
			Unchecked: "( )",
			Focus:     ">",
			Blank:     " ",
		},
		Frame: FrameConfig{
			HeightReduction: 5, // app padding (1) + header (2) + help bar (2)
			MinHeight:       3,
			ContentPadding:  4,
			MinLabelWidth:   4,
		},
		Overlay: OverlayConfig{
			WidthPercent: 50,
			MinWidth:     30,
			MaxWidth:     70,
			MaxVisible:   8,
		},
		Input: InputConfig{
			FilterCharLimit: 50,
			FilterWidth:     30,
		},
		Text: TextConfig{
			Ellipsis: "...",
		},
	}
}
