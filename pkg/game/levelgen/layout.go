// Package levelgen builds wall layouts and places puzzle terminals.
package levelgen

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"wallgate/pkg/engine/grid"
	"wallgate/pkg/game/answers"
	"wallgate/pkg/game/entities"
	"wallgate/pkg/game/state"
)

// AddWallLine lays count wall tiles starting at grid cell (x, y), going
// right when horizontal or down otherwise. Cells already holding a wall
// are skipped. Returns the number of tiles added.
func AddWallLine(g *state.Game, x, y, count int, horizontal bool) int {
	if g == nil || count <= 0 {
		return 0
	}

	occupied := mapset.New[grid.Coord]()
	for _, c := range g.WallCells() {
		occupied.Put(c.Coord)
	}

	size := g.Config.World.TileSize
	added := 0
	for i := 0; i < count; i++ {
		cx, cy := x, y
		if horizontal {
			cx += i
		} else {
			cy += i
		}
		coord := grid.Coord{X: cx, Y: cy}
		if occupied.Has(coord) {
			continue
		}
		occupied.Put(coord)
		g.AddWall(float64(cx)*size, float64(cy)*size)
		added++
	}
	return added
}

// AddWallRect lays the perimeter of a w by h rectangle of wall tiles with
// its top-left corner at grid cell (x, y).
func AddWallRect(g *state.Game, x, y, w, h int) {
	if g == nil || w <= 0 || h <= 0 {
		return
	}
	AddWallLine(g, x, y, w, true)
	AddWallLine(g, x, y+h-1, w, true)
	AddWallLine(g, x, y, h, false)
	AddWallLine(g, x+w-1, y, h, false)
}

// Demo puzzle answers, one terminal per entry.
var demoPuzzles = []struct {
	puzzleType string
	answer     string
}{
	{answers.TypeSequence, "1-2-3-4"},
	{answers.TypeSequence, "2-4-6-8"},
	{answers.TypePattern, "up-down-left-right"},
	{answers.TypePattern, "north-south-east-west"},
}

// BuildDemoStation lays out a small station: two rooms, a long spine
// corridor wall, and one puzzle terminal per demo answer. The spine is
// long enough to be segmented into several portal candidates.
func BuildDemoStation(g *state.Game) {
	if g == nil {
		return
	}

	AddWallRect(g, 0, 0, 8, 6)
	AddWallRect(g, 12, 0, 7, 6)
	AddWallLine(g, 0, 10, 20, true)
	AddWallLine(g, 24, 2, 12, false)

	for i, p := range demoPuzzles {
		id := fmt.Sprintf("puzzle-%d", i+1)
		terminal := entities.NewPuzzleTerminal(
			id,
			p.puzzleType,
			p.answer,
			fmt.Sprintf("Look for a code like: %s", p.answer),
			fmt.Sprintf("Security Terminal #%d", i+1),
		)
		g.AddPuzzle(terminal)
		g.AddHint(fmt.Sprintf("Terminal %s accepts a %s code", id, p.puzzleType))
	}
}
