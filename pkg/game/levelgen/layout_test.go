package levelgen

import (
	"fmt"
	"testing"

	"wallgate/pkg/game/config"
	"wallgate/pkg/game/state"
)

func TestAddWallLine_Horizontal(t *testing.T) {
	g := state.NewGame(config.Default(), nil)
	added := AddWallLine(g, 2, 3, 4, true)

	if added != 4 {
		t.Fatalf("added = %d, want 4", added)
	}
	cells := g.WallCells()
	for i, c := range cells {
		if c.Coord.Y != 3 || c.Coord.X != 2+i {
			t.Errorf("cell %d at %v, want (%d,3)", i, c.Coord, 2+i)
		}
	}
}

func TestAddWallLine_SkipsExistingWalls(t *testing.T) {
	g := state.NewGame(config.Default(), nil)
	AddWallLine(g, 0, 0, 4, true)
	added := AddWallLine(g, 2, 0, 4, true) // overlaps cells 2 and 3

	if added != 2 {
		t.Errorf("added = %d, want 2 (two cells already occupied)", added)
	}
	if g.WallCount() != 6 {
		t.Errorf("WallCount() = %d, want 6", g.WallCount())
	}
}

func TestAddWallLine_NilGameNoPanic(t *testing.T) {
	if added := AddWallLine(nil, 0, 0, 3, true); added != 0 {
		t.Errorf("added = %d for nil game, want 0", added)
	}
}

func TestAddWallRect_PerimeterOnly(t *testing.T) {
	g := state.NewGame(config.Default(), nil)
	AddWallRect(g, 0, 0, 4, 3)

	// 4x3 perimeter = 2*4 + 2*1 interior columns = 10 cells.
	if g.WallCount() != 10 {
		t.Errorf("WallCount() = %d, want 10", g.WallCount())
	}
	for _, c := range g.WallCells() {
		onEdge := c.Coord.X == 0 || c.Coord.X == 3 || c.Coord.Y == 0 || c.Coord.Y == 2
		if !onEdge {
			t.Errorf("cell %v is inside the rectangle, want perimeter only", c.Coord)
		}
	}
}

func TestBuildDemoStation_PuzzlesSolvable(t *testing.T) {
	g := state.NewGame(config.Default(), nil)
	BuildDemoStation(g)

	if g.WallCount() == 0 {
		t.Fatal("demo station has no walls")
	}
	if _, found := g.Puzzle("puzzle-1"); !found {
		t.Fatal("demo station missing puzzle-1")
	}

	// Every demo puzzle must be solvable with its published answer, and
	// each solve must claim a portal somewhere in the layout.
	for i, p := range demoPuzzles {
		id := fmt.Sprintf("puzzle-%d", i+1)
		if !g.SubmitAnswer(id, p.answer) {
			t.Errorf("SubmitAnswer(%s, %q) = false, want true", id, p.answer)
		}
		if !g.Portals.IsActive(id) {
			t.Errorf("Portals.IsActive(%s) = false, want true", id)
		}
	}
}
