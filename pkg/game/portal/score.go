package portal

import (
	"wallgate/pkg/engine/grid"
)

// Score weights. A side of the run with no occupied perpendicular
// neighbour anywhere along the span counts as exposed.
const (
	exposedSideBonus = 10
)

// ScoreRuns annotates every run with its placement score.
func ScoreRuns(runs []Run, idx *grid.Index, preferredLength int) {
	for i := range runs {
		runs[i].Score = scoreRun(&runs[i], idx, preferredLength)
	}
}

// scoreRun computes the desirability of a run: +10 for each perpendicular
// side fully clear of walls (max +20), minus the distance of the run's
// length from the preferred length. The penalty is deliberately coarse so
// several near-equal candidates stay eligible for the randomised pick.
func scoreRun(r *Run, idx *grid.Index, preferredLength int) int {
	if r.Length() == 0 {
		return 0
	}

	score := 0
	first := r.Cells[0]
	last := r.Cells[len(r.Cells)-1]

	if r.Orientation == Horizontal {
		if !idx.AnyInRow(first.Y+1, first.X, last.X) {
			score += exposedSideBonus
		}
		if !idx.AnyInRow(first.Y-1, first.X, last.X) {
			score += exposedSideBonus
		}
	} else {
		if !idx.AnyInCol(first.X+1, first.Y, last.Y) {
			score += exposedSideBonus
		}
		if !idx.AnyInCol(first.X-1, first.Y, last.Y) {
			score += exposedSideBonus
		}
	}

	penalty := r.Length() - preferredLength
	if penalty < 0 {
		penalty = -penalty
	}

	return score - penalty
}
