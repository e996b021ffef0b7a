package grid

import "fmt"

// Child is an element the host can measure and arrange.
type Child interface {
	Measure(available Size)
	DesiredSize() Size
	Arrange(bounds Rect)
}

// Layout is the host-facing column-major uniform-to-largest layout.
// Changing any of its values notifies the registered invalidation observers.
type Layout struct {
	maxColumns    int
	columnSpacing float64
	rowSpacing    float64

	observers []func()
}

// NewLayout creates a Layout. maxColumns must be at least 1.
func NewLayout(maxColumns int, columnSpacing, rowSpacing float64) (*Layout, error) {
	if maxColumns <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxColumns, maxColumns)
	}
	return &Layout{
		maxColumns:    maxColumns,
		columnSpacing: columnSpacing,
		rowSpacing:    rowSpacing,
	}, nil
}

// OnInvalidate registers fn to run whenever a layout value changes.
func (l *Layout) OnInvalidate(fn func()) {
	l.observers = append(l.observers, fn)
}

func (l *Layout) invalidate() {
	for _, fn := range l.observers {
		fn()
	}
}

// MaximumColumns returns the column cap.
func (l *Layout) MaximumColumns() int {
	return l.maxColumns
}

// ColumnSpacing returns the horizontal gap between columns.
func (l *Layout) ColumnSpacing() float64 {
	return l.columnSpacing
}

// RowSpacing returns the vertical gap between rows.
func (l *Layout) RowSpacing() float64 {
	return l.rowSpacing
}

// SetMaximumColumns changes the column cap. Values below 1 are rejected and
// leave the layout untouched.
func (l *Layout) SetMaximumColumns(n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidMaxColumns, n)
	}
	if n != l.maxColumns {
		l.maxColumns = n
		l.invalidate()
	}
	return nil
}

// SetColumnSpacing changes the gap between columns.
func (l *Layout) SetColumnSpacing(v float64) {
	if v != l.columnSpacing {
		l.columnSpacing = v
		l.invalidate()
	}
}

// SetRowSpacing changes the gap between rows.
func (l *Layout) SetRowSpacing(v float64) {
	if v != l.rowSpacing {
		l.rowSpacing = v
		l.invalidate()
	}
}

// MeasureChildren lets every child measure against the full available size
// and returns the grid's desired size.
func (l *Layout) MeasureChildren(children []Child, available Size) Size {
	for _, c := range children {
		c.Measure(available)
	}
	return Measure(desiredSizes(children), l.maxColumns)
}

// ArrangeChildren arranges every child at its placement and returns final.
func (l *Layout) ArrangeChildren(children []Child, final Size) Size {
	placements := Arrange(desiredSizes(children), l.maxColumns, l.columnSpacing, l.rowSpacing)
	for _, p := range placements {
		children[p.Index].Arrange(p.Bounds)
	}
	return final
}

func desiredSizes(children []Child) []Size {
	sizes := make([]Size, len(children))
	for i, c := range children {
		sizes[i] = c.DesiredSize()
	}
	return sizes
}
