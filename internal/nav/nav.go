// Package nav computes keyboard focus moves across a column-major grid.
//
// Indices are stored linearly but laid out down each column first, so a
// Right move from row r of column c has to land on row r of column c+1,
// whose start depends on how long column c is. When the target is not
// eligible the search probes outward from it until it finds an eligible
// index or runs out of grid.
package nav

import (
	"fmt"

	"github.com/nikbrunner/radiogrid/internal/grid"
)

// Direction is a movement intent.
type Direction int

const (
	Next Direction = iota
	Previous
	Right
	Left
)

func (d Direction) String() string {
	switch d {
	case Next:
		return "next"
	case Previous:
		return "previous"
	case Right:
		return "right"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", int(d))
}

// ParseDirection maps a name ("next", "down", "right", ...) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "next", "down":
		return Next, nil
	case "previous", "prev", "up":
		return Previous, nil
	case "right":
		return Right, nil
	case "left":
		return Left, nil
	}
	return 0, fmt.Errorf("unknown direction %q", s)
}

// Request is a single focus move. FocusedIndex is also the anchor whose
// column Left/Right probes are measured against.
type Request struct {
	FocusedIndex int
	Direction    Direction
	ItemCount    int
	MaxColumns   int
}

// EligibleFunc reports whether the item at index can take focus.
type EligibleFunc func(index int) bool

// Outcome tags a Result.
type Outcome int

const (
	Exhausted Outcome = iota
	Found
)

// Result is either Found with the index to focus and the probe distance it
// was reached at, or Exhausted.
type Result struct {
	Outcome  Outcome
	Index    int
	Distance int
}

// Found returns the index to focus and true, or false when exhausted.
func (r Result) Found() (int, bool) {
	return r.Index, r.Outcome == Found
}

func found(index, distance int) Result {
	return Result{Outcome: Found, Index: index, Distance: distance}
}

// NextFocusIndex returns the index that should receive focus for req.
// An invalid column cap or a focused index outside the grid is an error;
// running out of candidates is not.
func NextFocusIndex(req Request, eligible EligibleFunc) (Result, error) {
	p, err := grid.NewParams(req.ItemCount, req.MaxColumns)
	if err != nil {
		return Result{}, err
	}
	anchorColumn, err := p.ColumnOf(req.FocusedIndex)
	if err != nil {
		return Result{}, fmt.Errorf("focused index: %w", err)
	}

	seed := req.FocusedIndex + increment(p, req.Direction, req.FocusedIndex, anchorColumn)
	s := &search{
		params:       p,
		direction:    req.Direction,
		origin:       seed,
		anchorColumn: anchorColumn,
		visited:      make(map[int]bool),
	}

	index, distance := seed, 0
	for p.Contains(index) {
		if eligible(index) {
			return found(index, distance), nil
		}
		s.visited[index] = true

		var ok bool
		index, distance, ok = s.advance(index, distance)
		if !ok {
			break
		}
	}
	return Result{Outcome: Exhausted}, nil
}
