package picker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/radiogrid/internal/model"
	"github.com/nikbrunner/radiogrid/internal/search"
	"github.com/nikbrunner/radiogrid/internal/tui/layout"
)

func twoResults() []search.SearchResult {
	return []search.SearchResult{
		{Option: &model.Option{ID: "s", Label: "Small"}, Index: 1},
		{Option: &model.Option{ID: "xs", Label: "Extra Small"}, Index: 0},
	}
}

func TestPicker_InitialState(t *testing.T) {
	p := New(twoResults(), "sm")

	if p.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", p.cursor)
	}
	if len(p.results) != 2 {
		t.Errorf("expected 2 results, got %d", len(p.results))
	}
}

func TestPicker_NavigateDown(t *testing.T) {
	p := New(twoResults(), "sm")
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}

	newModel, _ := p.Update(msg)
	p = newModel.(Picker)

	if p.cursor != 1 {
		t.Errorf("expected cursor at 1, got %d", p.cursor)
	}
}

func TestPicker_NavigateUp(t *testing.T) {
	p := New(twoResults(), "sm")
	p.cursor = 1

	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	newModel, _ := p.Update(msg)
	p = newModel.(Picker)

	if p.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", p.cursor)
	}
}

func TestPicker_BoundsCheck(t *testing.T) {
	results := []search.SearchResult{
		{Option: &model.Option{ID: "s", Label: "Small"}},
	}
	p := New(results, "sm")

	newModel, _ := p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	p = newModel.(Picker)
	if p.cursor != 0 {
		t.Errorf("expected cursor at 0, got %d", p.cursor)
	}

	newModel, _ = p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	p = newModel.(Picker)
	if p.cursor != 0 {
		t.Errorf("expected cursor at 0 (only 1 item), got %d", p.cursor)
	}
}

func TestPicker_SelectItem(t *testing.T) {
	p := New(twoResults(), "sm")
	p.cursor = 1

	newModel, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = newModel.(Picker)

	if !p.selected {
		t.Error("expected selected to be true after Enter")
	}
	if cmd == nil {
		t.Error("expected quit command after selection")
	}
	if got := p.SelectedOption(); got == nil || got.ID != "xs" {
		t.Errorf("expected Extra Small, got %v", got)
	}
	if got := p.SelectedIndex(); got != 0 {
		t.Errorf("expected group index 0, got %d", got)
	}
}

func TestPicker_DisabledCannotBeChosen(t *testing.T) {
	results := []search.SearchResult{
		{Option: &model.Option{ID: "m", Label: "Medium", Disabled: true}, Index: 2},
	}
	p := New(results, "med")

	newModel, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = newModel.(Picker)

	if p.selected || cmd != nil {
		t.Error("expected Enter on a disabled option to be ignored")
	}
	if p.SelectedIndex() != -1 {
		t.Errorf("expected -1, got %d", p.SelectedIndex())
	}
}

func TestPicker_Cancel(t *testing.T) {
	p := New(twoResults(), "sm")

	newModel, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	p = newModel.(Picker)

	if !p.Cancelled() {
		t.Error("expected cancelled to be true after Esc")
	}
	if cmd == nil {
		t.Error("expected quit command after cancel")
	}
	if p.SelectedOption() != nil {
		t.Error("expected nil when cancelled")
	}
}

func TestPicker_ArrowKeys(t *testing.T) {
	p := New(twoResults(), "sm")

	newModel, _ := p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p = newModel.(Picker)
	if p.cursor != 1 {
		t.Errorf("expected cursor at 1 after down arrow, got %d", p.cursor)
	}

	newModel, _ = p.Update(tea.KeyMsg{Type: tea.KeyUp})
	p = newModel.(Picker)
	if p.cursor != 0 {
		t.Errorf("expected cursor at 0 after up arrow, got %d", p.cursor)
	}
}

func TestPicker_View(t *testing.T) {
	p := New(twoResults(), "sm")
	view := p.View()

	if !strings.Contains(view, "2 results") {
		t.Error("expected result count in header")
	}
	if !strings.Contains(view, "> ") {
		t.Error("expected cursor marker")
	}
}

func TestPicker_ViewShowsRadioRows(t *testing.T) {
	p := New(twoResults(), "sm")
	view := layout.StripANSI(p.View())

	if !strings.Contains(view, ">( ) Small  #2") {
		t.Errorf("expected focused row with group position:\n%s", view)
	}
	if !strings.Contains(view, " ( ) Extra Small  #1") {
		t.Errorf("expected unfocused row:\n%s", view)
	}
}

func TestPicker_ViewTruncatesToWidth(t *testing.T) {
	results := []search.SearchResult{
		{Option: &model.Option{ID: "l", Label: strings.Repeat("Long ", 20)}, Index: 0},
	}
	p := New(results, "long")
	newModel, _ := p.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	p = newModel.(Picker)

	for _, line := range strings.Split(p.View(), "\n") {
		if w := layout.VisibleLength(line); w > 30 {
			t.Errorf("line wider than 30 cells (%d): %q", w, line)
		}
	}
}
