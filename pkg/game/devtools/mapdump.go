// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"wallgate/pkg/engine/grid"
	"wallgate/pkg/game/state"
)

// RenderMap returns an ASCII view of the wall grid. Unclaimed walls show
// as '#', empty cells as '.', and each claim's cells as a letter assigned
// per puzzle in identifier order ('A' for the first, wrapping after 'Z').
func RenderMap(g *state.Game) string {
	if g == nil || g.WallCount() == 0 {
		return ""
	}

	cells := g.WallCells()
	minX, minY := cells[0].Coord.X, cells[0].Coord.Y
	maxX, maxY := minX, minY
	for _, c := range cells {
		if c.Coord.X < minX {
			minX = c.Coord.X
		}
		if c.Coord.X > maxX {
			maxX = c.Coord.X
		}
		if c.Coord.Y < minY {
			minY = c.Coord.Y
		}
		if c.Coord.Y > maxY {
			maxY = c.Coord.Y
		}
	}

	walls := map[grid.Coord]bool{}
	for _, c := range cells {
		walls[c.Coord] = true
	}

	claims := g.Portals.Claims()
	ids := make([]string, 0, len(claims))
	for id := range claims {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	claimSymbols := map[grid.Coord]rune{}
	for i, id := range ids {
		symbol := rune('A' + i%26)
		for _, cell := range claims[id].Cells {
			claimSymbols[cell.Coord] = symbol
		}
	}

	var b strings.Builder
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			coord := grid.Coord{X: x, Y: y}
			switch {
			case claimSymbols[coord] != 0:
				b.WriteRune(claimSymbols[coord])
			case walls[coord]:
				b.WriteByte('#')
			default:
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteMapFile writes the rendered map plus a claim legend to a file.
func WriteMapFile(g *state.Game, path string) error {
	var b strings.Builder
	b.WriteString(RenderMap(g))
	b.WriteByte('\n')

	claims := g.Portals.Claims()
	ids := make([]string, 0, len(claims))
	for id := range claims {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for i, id := range ids {
		claim := claims[id]
		status := "dormant"
		if claim.Active {
			status = "active"
		}
		fmt.Fprintf(&b, "%c: puzzle %s, %d cells, %s, group %s\n",
			'A'+i%26, id, claim.SegmentLength, status, claim.GroupID)
	}

	return os.WriteFile(path, []byte(b.String()), 0644)
}
