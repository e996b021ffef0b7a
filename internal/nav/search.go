package nav

import "github.com/nikbrunner/radiogrid/internal/grid"

// increment returns the offset from index to the first candidate.
func increment(p grid.Params, d Direction, index, column int) int {
	switch d {
	case Next:
		return 1
	case Previous:
		return -1
	case Right:
		return rightIncrement(p, index, column)
	case Left:
		return leftIncrement(p, column)
	}
	return 0
}

// rightIncrement jumps to the same row in the next column. The last item of
// the last long column has no matching row in the shorter column beside it,
// so it lands on that column's last item instead.
func rightIncrement(p grid.Params, index, column int) int {
	perColumn := p.ItemsPerColumn()
	extra := p.ExtraColumns()
	if perColumn > 0 && index == extra*(perColumn+1)-1 {
		return perColumn
	}
	return p.ColumnLen(column)
}

// leftIncrement jumps back by the length of the column to the left. A column
// directly after the long columns still steps back by a long column.
func leftIncrement(p grid.Params, column int) int {
	perColumn := p.ItemsPerColumn()
	if column < p.ExtraColumns()+1 {
		return -(perColumn + 1)
	}
	return -perColumn
}

// search holds the probe state for one NextFocusIndex call.
type search struct {
	params       grid.Params
	direction    Direction
	origin       int
	anchorColumn int
	visited      map[int]bool
}

// advance returns the next candidate after index was rejected.
func (s *search) advance(index, distance int) (int, int, bool) {
	switch s.direction {
	case Next:
		return index + 1, 0, true
	case Previous:
		return index - 1, 0, true
	case Right, Left:
		return s.probe(distance)
	}
	return 0, 0, false
}

// probe walks outward from origin, below first and then above, returning
// the nearest unvisited index that lies on the requested side of the anchor
// column. It stops once neither direction can produce a candidate.
func (s *search) probe(distance int) (int, int, bool) {
	for d := max(distance, 1); d <= s.params.ItemCount; d++ {
		below := s.origin + d
		above := s.origin - d

		belowOK := s.acceptable(below)
		aboveOK := s.acceptable(above)
		if !belowOK && !aboveOK && s.spent(below, above) {
			return 0, 0, false
		}

		if belowOK && !s.visited[below] {
			return below, d, true
		}
		if aboveOK && !s.visited[above] {
			return above, d, true
		}
	}
	return 0, 0, false
}

// acceptable reports whether index is in the grid and on the requested side
// of the anchor column.
func (s *search) acceptable(index int) bool {
	col, err := s.params.ColumnOf(index)
	if err != nil {
		return false
	}
	if s.direction == Right {
		return col > s.anchorColumn
	}
	return col < s.anchorColumn
}

// spent reports whether probing further can never yield a candidate. Columns
// are monotonic in index, so once an end has left the grid or crossed the
// anchor column it stays out.
func (s *search) spent(below, above int) bool {
	if s.direction == Right {
		// Below only moves further right; above drifts back toward the anchor.
		return below >= s.params.ItemCount && !s.acceptable(above)
	}
	return above < 0 && !s.acceptable(below)
}
