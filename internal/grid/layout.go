package grid

// Size is a width/height pair in layout units (terminal cells for the TUI).
type Size struct {
	Width  float64
	Height float64
}

// Rect is a placed rectangle.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Placement is where one item lands in the grid.
// Bounds carries the item's own desired size, not the cell size.
type Placement struct {
	Index  int
	Column int
	Row    int
	Bounds Rect
}

// LargestSize returns the componentwise maximum of sizes.
func LargestSize(sizes []Size) Size {
	var largest Size
	for _, s := range sizes {
		if s.Width > largest.Width {
			largest.Width = s.Width
		}
		if s.Height > largest.Height {
			largest.Height = s.Height
		}
	}
	return largest
}

// Measure returns the desired size of a uniform-to-largest column-major grid.
// Non-positive maxColumns is treated as 1.
func Measure(sizes []Size, maxColumns int) Size {
	if len(sizes) == 0 {
		return Size{}
	}
	p := Params{ItemCount: len(sizes), MaxColumns: clampColumns(maxColumns)}
	cell := LargestSize(sizes)

	return Size{
		Width:  cell.Width * float64(p.ColumnCount()),
		Height: cell.Height * float64(p.RowCount()),
	}
}

// Arrange places every item column-major. Offsets advance by the cell size
// plus spacing; a new column resets the vertical offset.
func Arrange(sizes []Size, maxColumns int, columnSpacing, rowSpacing float64) []Placement {
	if len(sizes) == 0 {
		return nil
	}
	p := Params{ItemCount: len(sizes), MaxColumns: clampColumns(maxColumns)}
	cell := LargestSize(sizes)

	placements := make([]Placement, 0, len(sizes))
	col, row := 0, 0
	var x, y float64
	for i, s := range sizes {
		placements = append(placements, Placement{
			Index:  i,
			Column: col,
			Row:    row,
			Bounds: Rect{X: x, Y: y, Width: s.Width, Height: s.Height},
		})

		row++
		if row == p.ColumnLen(col) {
			col++
			row = 0
			x += cell.Width + columnSpacing
			y = 0
		} else {
			y += cell.Height + rowSpacing
		}
	}
	return placements
}
