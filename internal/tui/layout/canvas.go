package layout

import (
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Block is rendered content anchored at a cell position.
type Block struct {
	X, Y    int
	Content string
}

// Compose draws blocks onto a single string. Blocks sharing an X form a
// column; columns are joined left to right with blank gaps so that each
// starts at its X. Blocks must not overlap.
func Compose(blocks []Block) string {
	if len(blocks) == 0 {
		return ""
	}

	columns := make(map[int][]Block)
	for _, b := range blocks {
		columns[b.X] = append(columns[b.X], b)
	}

	xs := make([]int, 0, len(columns))
	for x := range columns {
		xs = append(xs, x)
	}
	sort.Ints(xs)

	var parts []string
	cursor := 0
	for _, x := range xs {
		if gap := x - cursor; gap > 0 {
			parts = append(parts, strings.Repeat(" ", gap))
			cursor = x
		}
		column := renderColumn(columns[x])
		parts = append(parts, column)
		cursor += lipgloss.Width(column)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// renderColumn stacks blocks by Y, leaving empty lines for gaps.
func renderColumn(blocks []Block) string {
	sort.Slice(blocks, func(i, j int) bool { return blocks[i].Y < blocks[j].Y })

	var lines []string
	for _, b := range blocks {
		for len(lines) < b.Y {
			lines = append(lines, "")
		}
		for i, line := range strings.Split(b.Content, "\n") {
			row := b.Y + i
			if row < 0 {
				continue
			}
			if row < len(lines) {
				lines[row] = line
			} else {
				lines = append(lines, line)
			}
		}
	}
	return strings.Join(lines, "\n")
}
