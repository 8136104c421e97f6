// Package portal turns solved puzzles into portal exits carved out of the
// station's walls. It finds straight segments of unclaimed wall cells,
// scores them by exposure, and claims one deterministically per puzzle.
package portal

import (
	"wallgate/pkg/engine/grid"
)

// Orientation is the axis a run lies on.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns a display name for the orientation.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Run is a contiguous straight-line sequence of unclaimed wall cells.
// Cells are ordered left-to-right for horizontal runs and top-to-bottom
// for vertical runs.
type Run struct {
	Cells       []grid.Coord
	Orientation Orientation
	Score       int
}

// Length returns the number of cells in the run.
func (r *Run) Length() int {
	return len(r.Cells)
}

// Anchor returns the first cell of the run.
func (r *Run) Anchor() grid.Coord {
	if len(r.Cells) == 0 {
		return grid.Coord{}
	}
	return r.Cells[0]
}

// FindRuns scans the index along both axes and returns every candidate run
// with minLength <= length <= maxLength. Maximal runs shorter than
// minLength are dropped; longer ones are split (see splitRun). The scan
// order is fixed (rows top to bottom then columns left to right), so the
// result order is deterministic for a given index.
func FindRuns(idx *grid.Index, minLength, maxLength int) []Run {
	if idx == nil || minLength <= 0 || maxLength < minLength {
		return nil
	}
	minX, minY, maxX, maxY, ok := idx.Bounds()
	if !ok {
		return nil
	}

	var runs []Run

	// Horizontal pass. The scan goes one column past maxX so a run
	// touching the right edge of the bounding box still gets flushed.
	for y := minY; y <= maxY; y++ {
		start := -1
		for x := minX; x <= maxX+1; x++ {
			if idx.Has(x, y) {
				if start < 0 {
					start = x
				}
				continue
			}
			if start >= 0 {
				runs = append(runs, splitRun(start, x-start, y, Horizontal, minLength, maxLength)...)
				start = -1
			}
		}
	}

	// Vertical pass, symmetric with a one-past-maxY sentinel.
	for x := minX; x <= maxX; x++ {
		start := -1
		for y := minY; y <= maxY+1; y++ {
			if idx.Has(x, y) {
				if start < 0 {
					start = y
				}
				continue
			}
			if start >= 0 {
				runs = append(runs, splitRun(start, y-start, x, Vertical, minLength, maxLength)...)
				start = -1
			}
		}
	}

	return runs
}

// splitRun turns one maximal run into zero or more bounded runs. A run
// already within [minLength, maxLength] is emitted whole, never split.
// Over-long runs are walked in strides of maxLength from offset 0; a
// trailing remainder shorter than minLength is dropped rather than forced
// into the previous segment.
func splitRun(start, length, fixed int, o Orientation, minLength, maxLength int) []Run {
	if length < minLength {
		return nil
	}
	if length <= maxLength {
		return []Run{makeRun(start, length, fixed, o)}
	}

	var runs []Run
	for offset := 0; offset < length; offset += maxLength {
		remaining := length - offset
		segment := maxLength
		if remaining < segment {
			segment = remaining
		}
		if segment < minLength {
			break
		}
		runs = append(runs, makeRun(start+offset, segment, fixed, o))
	}
	return runs
}

func makeRun(start, length, fixed int, o Orientation) Run {
	cells := make([]grid.Coord, length)
	for i := 0; i < length; i++ {
		if o == Horizontal {
			cells[i] = grid.Coord{X: start + i, Y: fixed}
		} else {
			cells[i] = grid.Coord{X: fixed, Y: start + i}
		}
	}
	return Run{Cells: cells, Orientation: o}
}
