package layout

import (
	"strings"
	"testing"
)

// trimmed returns the lines of s with trailing padding removed.
func trimmed(s string) []string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " ")
	}
	return lines
}

func TestCompose_Empty(t *testing.T) {
	if got := Compose(nil); got != "" {
		t.Errorf("Compose(nil) = %q, want empty", got)
	}
}

func TestCompose_ColumnMajorGrid(t *testing.T) {
	// 0 3 5
	// 1 4 6
	// 2
	blocks := []Block{
		{X: 0, Y: 0, Content: "a"}, {X: 0, Y: 1, Content: "bb"}, {X: 0, Y: 2, Content: "c"},
		{X: 6, Y: 0, Content: "d"}, {X: 6, Y: 1, Content: "e"},
		{X: 12, Y: 0, Content: "f"}, {X: 12, Y: 1, Content: "gggg"},
	}

	got := trimmed(Compose(blocks))
	want := []string{
		"a     d     f",
		"bb    e     gggg",
		"c",
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d lines, got %d: %q", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCompose_RowSpacingLeavesBlankLines(t *testing.T) {
	blocks := []Block{
		{X: 2, Y: 0, Content: "one"},
		{X: 2, Y: 2, Content: "two"},
	}

	got := trimmed(Compose(blocks))
	want := []string{"  one", "", "  two"}

	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("Compose = %q, want %q", got, want)
	}
}

func TestCompose_OrderIndependent(t *testing.T) {
	a := []Block{{X: 0, Y: 0, Content: "x"}, {X: 0, Y: 1, Content: "y"}, {X: 3, Y: 0, Content: "z"}}
	b := []Block{a[2], a[1], a[0]}

	if Compose(a) != Compose(b) {
		t.Error("block order should not affect the result")
	}
}

func TestCompose_StyledContentMeasuredByVisibleWidth(t *testing.T) {
	blocks := []Block{
		{X: 0, Y: 0, Content: "\x1b[1mab\x1b[0m"},
		{X: 4, Y: 0, Content: "cd"},
	}

	got := StripANSI(Compose(blocks))
	if strings.TrimRight(got, " ") != "ab  cd" {
		t.Errorf("Compose = %q, want %q", got, "ab  cd")
	}
}
