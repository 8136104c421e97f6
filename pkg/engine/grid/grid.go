// Package grid provides a sparse 2D spatial index over wall tiles.
// These are engine-level constructs usable by any tile-based game.
package grid

import (
	"math"

	"github.com/zyedidia/generic/mapset"
)

// Coord identifies a single grid cell by integer coordinates.
type Coord struct {
	X int
	Y int
}

// FromWorld converts a world position to a grid coordinate using the given
// tile size. Floor division keeps cells contiguous across the origin for
// negative positions.
func FromWorld(x, y, tileSize float64) Coord {
	return Coord{
		X: int(math.Floor(x / tileSize)),
		Y: int(math.Floor(y / tileSize)),
	}
}

// WallCell is one indexed wall tile: its grid coordinate plus an opaque
// handle to the entity that owns the tile.
type WallCell struct {
	Coord  Coord
	Entity int
}

// Index is a sparse lookup of wall cells keyed by grid coordinate.
// It is rebuilt fresh for every placement attempt; callers must not cache
// one across claims, since the set of claimed cells changes between
// attempts.
type Index struct {
	cells map[Coord]WallCell

	minX, maxX int
	minY, maxY int
}

// Build creates an index from the given wall cells, skipping any whose
// coordinate is in claimed. A nil claimed set excludes nothing. If two
// cells share a coordinate the first one wins.
func Build(walls []WallCell, claimed *mapset.Set[Coord]) *Index {
	idx := &Index{cells: make(map[Coord]WallCell, len(walls))}

	for _, w := range walls {
		if claimed != nil && claimed.Has(w.Coord) {
			continue
		}
		if _, found := idx.cells[w.Coord]; found {
			continue
		}

		if len(idx.cells) == 0 {
			idx.minX, idx.maxX = w.Coord.X, w.Coord.X
			idx.minY, idx.maxY = w.Coord.Y, w.Coord.Y
		} else {
			if w.Coord.X < idx.minX {
				idx.minX = w.Coord.X
			}
			if w.Coord.X > idx.maxX {
				idx.maxX = w.Coord.X
			}
			if w.Coord.Y < idx.minY {
				idx.minY = w.Coord.Y
			}
			if w.Coord.Y > idx.maxY {
				idx.maxY = w.Coord.Y
			}
		}

		idx.cells[w.Coord] = w
	}

	return idx
}

// Size returns the number of indexed cells.
func (idx *Index) Size() int {
	if idx == nil {
		return 0
	}
	return len(idx.cells)
}

// Has reports whether a wall cell is indexed at (x, y).
func (idx *Index) Has(x, y int) bool {
	if idx == nil {
		return false
	}
	_, found := idx.cells[Coord{x, y}]
	return found
}

// Get returns the wall cell at (x, y). The second result is false if no
// cell is indexed there.
func (idx *Index) Get(x, y int) (WallCell, bool) {
	if idx == nil {
		return WallCell{}, false
	}
	c, found := idx.cells[Coord{x, y}]
	return c, found
}

// Bounds returns the bounding rectangle of the indexed cells. The final
// result is false when the index is empty.
func (idx *Index) Bounds() (minX, minY, maxX, maxY int, ok bool) {
	if idx == nil || len(idx.cells) == 0 {
		return 0, 0, 0, 0, false
	}
	return idx.minX, idx.minY, idx.maxX, idx.maxY, true
}

// AnyInRow reports whether any cell is indexed at row y with x in
// [x0, x1] inclusive.
func (idx *Index) AnyInRow(y, x0, x1 int) bool {
	if idx == nil {
		return false
	}
	for x := x0; x <= x1; x++ {
		if _, found := idx.cells[Coord{x, y}]; found {
			return true
		}
	}
	return false
}

// AnyInCol reports whether any cell is indexed at column x with y in
// [y0, y1] inclusive.
func (idx *Index) AnyInCol(x, y0, y1 int) bool {
	if idx == nil {
		return false
	}
	for y := y0; y <= y1; y++ {
		if _, found := idx.cells[Coord{x, y}]; found {
			return true
		}
	}
	return false
}
