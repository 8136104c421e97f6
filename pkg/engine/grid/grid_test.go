package grid

import (
	"testing"

	"github.com/zyedidia/generic/mapset"
)

func TestFromWorld_PositiveCoordinates(t *testing.T) {
	c := FromWorld(33, 17, 16)
	want := Coord{2, 1}
	if c != want {
		t.Errorf("FromWorld(33, 17, 16) = %v, want %v", c, want)
	}
}

func TestFromWorld_ExactTileBoundary(t *testing.T) {
	c := FromWorld(32, 16, 16)
	want := Coord{2, 1}
	if c != want {
		t.Errorf("FromWorld(32, 16, 16) = %v, want %v", c, want)
	}
}

func TestFromWorld_NegativeCoordinatesFloor(t *testing.T) {
	// -1/16 must land in cell -1, not 0 (floor division, not truncation).
	c := FromWorld(-1, -17, 16)
	want := Coord{-1, -2}
	if c != want {
		t.Errorf("FromWorld(-1, -17, 16) = %v, want %v", c, want)
	}
}

func TestBuild_EmptyInput(t *testing.T) {
	idx := Build(nil, nil)
	if idx.Size() != 0 {
		t.Errorf("Size() = %d, want 0", idx.Size())
	}
	if _, _, _, _, ok := idx.Bounds(); ok {
		t.Error("Bounds() ok = true for empty index, want false")
	}
}

func TestBuild_SkipsClaimedCoordinates(t *testing.T) {
	claimed := mapset.New[Coord]()
	claimed.Put(Coord{1, 0})

	walls := []WallCell{
		{Coord: Coord{0, 0}, Entity: 10},
		{Coord: Coord{1, 0}, Entity: 11},
		{Coord: Coord{2, 0}, Entity: 12},
	}
	idx := Build(walls, &claimed)

	if idx.Size() != 2 {
		t.Errorf("Size() = %d, want 2 (one coordinate claimed)", idx.Size())
	}
	if idx.Has(1, 0) {
		t.Error("Has(1, 0) = true, want false (coordinate is claimed)")
	}
	if !idx.Has(0, 0) || !idx.Has(2, 0) {
		t.Error("unclaimed coordinates missing from index")
	}
}

func TestBuild_DuplicateCoordinateFirstWins(t *testing.T) {
	walls := []WallCell{
		{Coord: Coord{0, 0}, Entity: 1},
		{Coord: Coord{0, 0}, Entity: 2},
	}
	idx := Build(walls, nil)

	if idx.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", idx.Size())
	}
	cell, _ := idx.Get(0, 0)
	if cell.Entity != 1 {
		t.Errorf("Get(0, 0).Entity = %d, want 1 (first entry wins)", cell.Entity)
	}
}

func TestBounds_TracksRectangle(t *testing.T) {
	walls := []WallCell{
		{Coord: Coord{-2, 5}},
		{Coord: Coord{7, -1}},
		{Coord: Coord{0, 0}},
	}
	idx := Build(walls, nil)

	minX, minY, maxX, maxY, ok := idx.Bounds()
	if !ok {
		t.Fatal("Bounds() ok = false, want true")
	}
	if minX != -2 || minY != -1 || maxX != 7 || maxY != 5 {
		t.Errorf("Bounds() = (%d, %d, %d, %d), want (-2, -1, 7, 5)", minX, minY, maxX, maxY)
	}
}

func TestAnyInRow(t *testing.T) {
	walls := []WallCell{
		{Coord: Coord{3, 2}},
	}
	idx := Build(walls, nil)

	if !idx.AnyInRow(2, 0, 5) {
		t.Error("AnyInRow(2, 0, 5) = false, want true")
	}
	if idx.AnyInRow(3, 0, 5) {
		t.Error("AnyInRow(3, 0, 5) = true, want false (wrong row)")
	}
	if idx.AnyInRow(2, 4, 5) {
		t.Error("AnyInRow(2, 4, 5) = true, want false (outside span)")
	}
}

func TestAnyInCol(t *testing.T) {
	walls := []WallCell{
		{Coord: Coord{1, 4}},
	}
	idx := Build(walls, nil)

	if !idx.AnyInCol(1, 4, 4) {
		t.Error("AnyInCol(1, 4, 4) = false, want true")
	}
	if idx.AnyInCol(0, 0, 9) {
		t.Error("AnyInCol(0, 0, 9) = true, want false (wrong column)")
	}
}

func TestNilIndexLookupsDoNotPanic(t *testing.T) {
	var idx *Index
	if idx.Has(0, 0) {
		t.Error("nil index Has = true, want false")
	}
	if idx.Size() != 0 {
		t.Error("nil index Size != 0")
	}
	if idx.AnyInRow(0, 0, 0) || idx.AnyInCol(0, 0, 0) {
		t.Error("nil index range lookup = true, want false")
	}
}
