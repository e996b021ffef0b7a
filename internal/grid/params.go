package grid

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidMaxColumns = errors.New("maximum columns must be at least 1")
	ErrIndexOutOfRange   = errors.New("item index out of range")
	ErrNegativeItemCount = errors.New("item count must not be negative")
)

// Params describes how itemCount items are split into at most MaxColumns
// column-major columns. The leftmost ExtraColumns columns hold one item more
// than the others.
type Params struct {
	ItemCount  int
	MaxColumns int
}

// NewParams validates the inputs and returns the column partition.
func NewParams(itemCount, maxColumns int) (Params, error) {
	if maxColumns <= 0 {
		return Params{}, fmt.Errorf("%w: got %d", ErrInvalidMaxColumns, maxColumns)
	}
	if itemCount < 0 {
		return Params{}, fmt.Errorf("%w: got %d", ErrNegativeItemCount, itemCount)
	}
	return Params{ItemCount: itemCount, MaxColumns: maxColumns}, nil
}

// ItemsPerColumn is the height of the short columns.
func (p Params) ItemsPerColumn() int {
	return p.ItemCount / p.MaxColumns
}

// ExtraColumns is the number of leftmost columns holding ItemsPerColumn+1 items.
func (p Params) ExtraColumns() int {
	return p.ItemCount % p.MaxColumns
}

// ColumnCount returns the number of non-empty columns.
func (p Params) ColumnCount() int {
	return min(p.MaxColumns, p.ItemCount)
}

// RowCount returns the height of the tallest column.
func (p Params) RowCount() int {
	if p.ItemCount == 0 {
		return 0
	}
	return (p.ItemCount + p.MaxColumns - 1) / p.MaxColumns
}

// ColumnLen returns how many items column col holds.
func (p Params) ColumnLen(col int) int {
	if col < 0 || col >= p.MaxColumns {
		return 0
	}
	if col < p.ExtraColumns() {
		return p.ItemsPerColumn() + 1
	}
	return p.ItemsPerColumn()
}

// ColumnStart returns the index of the first item in column col.
func (p Params) ColumnStart(col int) int {
	extra := min(col, p.ExtraColumns())
	return extra*(p.ItemsPerColumn()+1) + (col-extra)*p.ItemsPerColumn()
}

// Contains reports whether index addresses an item.
func (p Params) Contains(index int) bool {
	return index >= 0 && index < p.ItemCount
}

// ColumnOf returns the column holding index.
func (p Params) ColumnOf(index int) (int, error) {
	if !p.Contains(index) {
		return 0, fmt.Errorf("%w: %d not in [0, %d)", ErrIndexOutOfRange, index, p.ItemCount)
	}

	perColumn := p.ItemsPerColumn()
	extra := p.ExtraColumns()

	remaining := index
	col := 0
	for ; col < extra; col++ {
		remaining -= perColumn + 1
		if remaining < 0 {
			return col, nil
		}
	}
	for ; col < p.MaxColumns; col++ {
		remaining -= perColumn
		if remaining < 0 {
			return col, nil
		}
	}
	// Unreachable for an index inside the range.
	return 0, fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
}

// Slot returns the (column, row) position of index.
func (p Params) Slot(index int) (col, row int, err error) {
	col, err = p.ColumnOf(index)
	if err != nil {
		return 0, 0, err
	}
	return col, index - p.ColumnStart(col), nil
}

// clampColumns mirrors the host behaviour of treating non-positive column
// counts as a single column.
func clampColumns(maxColumns int) int {
	return max(1, maxColumns)
}
