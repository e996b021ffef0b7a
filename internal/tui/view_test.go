package tui_test

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/radiogrid/internal/storage"
	"github.com/nikbrunner/radiogrid/internal/tui"
	"github.com/nikbrunner/radiogrid/internal/tui/layout"
)

func plainView(app tui.App) string {
	return layout.StripANSI(app.View())
}

func lineContaining(t *testing.T, view, needle string) string {
	t.Helper()
	for _, line := range strings.Split(view, "\n") {
		if strings.Contains(line, needle) {
			return line
		}
	}
	t.Fatalf("no line contains %q in:\n%s", needle, view)
	return ""
}

func TestView_ColumnMajorPlacement(t *testing.T) {
	app := newTestApp(t, tui.AppParams{}).WithDimensions(80, 24)
	view := plainView(app)

	row0 := lineContaining(t, view, "One")
	for _, label := range []string{"Four", "Six"} {
		if !strings.Contains(row0, label) {
			t.Errorf("first row should contain %q, got %q", label, row0)
		}
	}
	if !(strings.Index(row0, "One") < strings.Index(row0, "Four") && strings.Index(row0, "Four") < strings.Index(row0, "Six")) {
		t.Errorf("first row out of order: %q", row0)
	}

	row1 := lineContaining(t, view, "Two")
	for _, label := range []string{"Five", "Seven"} {
		if !strings.Contains(row1, label) {
			t.Errorf("second row should contain %q, got %q", label, row1)
		}
	}

	row2 := lineContaining(t, view, "Three")
	for _, label := range []string{"Four", "Five", "Six", "Seven"} {
		if strings.Contains(row2, label) {
			t.Errorf("third row should hold only Three, got %q", row2)
		}
	}

	// Columns line up: Four and Five start at the same offset.
	if strings.Index(row0, "Four") != strings.Index(row1, "Five") {
		t.Errorf("second column misaligned:\n%q\n%q", row0, row1)
	}
}

func TestView_CheckedMarker(t *testing.T) {
	app := newTestApp(t, tui.AppParams{}).WithDimensions(80, 24)
	app = press(app, "j")
	view := plainView(app)

	if !strings.Contains(view, "(*) Two") {
		t.Errorf("expected checked marker on Two:\n%s", view)
	}
	if !strings.Contains(view, "( ) One") {
		t.Errorf("expected unchecked marker on One:\n%s", view)
	}
	if strings.Count(view, "(*)") != 1 {
		t.Errorf("expected exactly one checked marker:\n%s", view)
	}
	if !strings.Contains(view, "selected: Two (2/7)") {
		t.Errorf("expected selection line:\n%s", view)
	}
}

func TestView_FocusMarker(t *testing.T) {
	app := newTestApp(t, tui.AppParams{}).WithDimensions(80, 24)
	app = press(app, "L")

	row0 := lineContaining(t, plainView(app), "Four")
	if !strings.Contains(row0, ">( ) Four") {
		t.Errorf("expected focus marker on Four, got %q", row0)
	}
}

func TestView_NoOptions(t *testing.T) {
	config := storage.DefaultConfig()
	app := newTestApp(t, tui.AppParams{Config: &config}).WithDimensions(80, 24)

	view := plainView(app)
	if !strings.Contains(view, "No options") {
		t.Errorf("expected empty state:\n%s", view)
	}
	if !strings.Contains(view, "nothing selected") {
		t.Errorf("expected empty selection line:\n%s", view)
	}
}

func TestView_HeaderShowsNameAndText(t *testing.T) {
	config := numbersConfig()
	config.Header = "Pick a number"
	app := newTestApp(t, tui.AppParams{Config: config}).WithDimensions(80, 24)

	header := lineContaining(t, plainView(app), "numbers")
	if !strings.Contains(header, "Pick a number") {
		t.Errorf("expected header text, got %q", header)
	}
}

func TestView_ReflowsAfterColumnChange(t *testing.T) {
	app := newTestApp(t, tui.AppParams{}).WithDimensions(80, 24)
	_ = plainView(app)

	one := numbersConfig()
	one.MaximumColumns = 1
	updated, _ := app.Update(tui.ConfigReloadedMsg{Config: one})
	app = updated.(tui.App)

	row0 := lineContaining(t, plainView(app), "One")
	if strings.Contains(row0, "Four") {
		t.Errorf("single column layout should not share rows, got %q", row0)
	}
}

func TestView_FilterOverlay(t *testing.T) {
	app := newTestApp(t, tui.AppParams{}).WithDimensions(80, 24)
	app = press(app, "/", "t")
	view := plainView(app)

	if !strings.Contains(view, "jump") {
		t.Errorf("expected filter hints:\n%s", view)
	}
	// Both Two and Three match "t" and appear in the match list too.
	if strings.Count(view, "Three") < 2 {
		t.Errorf("expected Three in the match list:\n%s", view)
	}
}

func TestView_TruncatesLongLabels(t *testing.T) {
	config := numbersConfig()
	config.MaximumColumns = 1
	config.Options[0].Label = strings.Repeat("x", 200)

	app := newTestApp(t, tui.AppParams{Config: config}).WithDimensions(60, 24)
	view := plainView(app)

	for _, line := range strings.Split(view, "\n") {
		if w := layout.VisibleLength(line); w > 60 {
			t.Errorf("line wider than terminal (%d): %q", w, line)
		}
	}
	if !strings.Contains(view, "...") {
		t.Errorf("expected ellipsis on the long label:\n%s", view)
	}
}

func TestView_WindowResize(t *testing.T) {
	app := newTestApp(t, tui.AppParams{})

	updated, _ := app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	app = updated.(tui.App)

	lines := strings.Split(app.View(), "\n")
	if len(lines) != 30 {
		t.Errorf("expected view to fill 30 lines, got %d", len(lines))
	}
}
