package portal

import (
	"testing"

	"wallgate/pkg/engine/grid"
)

func TestScoreRun_BothSidesExposed(t *testing.T) {
	walls := rowOfWalls(0, 0, 5)
	idx := grid.Build(walls, nil)
	runs := FindRuns(idx, 4, 5)
	if len(runs) != 1 {
		t.Fatalf("len(runs) = %d, want 1", len(runs))
	}

	ScoreRuns(runs, idx, 4)

	// +10 above, +10 below, -|5-4| length penalty.
	if runs[0].Score != 19 {
		t.Errorf("Score = %d, want 19", runs[0].Score)
	}
}

func TestScoreRun_EnclosedSideScoresLower(t *testing.T) {
	// Identical 5-cell run, but with a wall touching one perpendicular
	// side. It must score strictly lower than the fully exposed run.
	exposed := grid.Build(rowOfWalls(0, 0, 5), nil)
	exposedRuns := FindRuns(exposed, 4, 5)
	ScoreRuns(exposedRuns, exposed, 4)

	blocked := grid.Build(append(rowOfWalls(0, 0, 5), grid.WallCell{Coord: grid.Coord{X: 2, Y: 1}}), nil)
	var blockedRun *Run
	blockedRuns := FindRuns(blocked, 4, 5)
	ScoreRuns(blockedRuns, blocked, 4)
	for i := range blockedRuns {
		if blockedRuns[i].Orientation == Horizontal && blockedRuns[i].Length() == 5 {
			blockedRun = &blockedRuns[i]
		}
	}
	if blockedRun == nil {
		t.Fatal("no 5-cell horizontal run found in blocked layout")
	}

	if blockedRun.Score >= exposedRuns[0].Score {
		t.Errorf("blocked run score = %d, exposed run score = %d, want blocked < exposed",
			blockedRun.Score, exposedRuns[0].Score)
	}
	// One side still clear: +10 - 1.
	if blockedRun.Score != 9 {
		t.Errorf("blocked run score = %d, want 9", blockedRun.Score)
	}
}

func TestScoreRun_PreferredLengthBeatsOffLength(t *testing.T) {
	// Two isolated runs of lengths 4 and 5, preferred 4: same exposure,
	// so the length-4 run scores exactly one point higher.
	walls := append(rowOfWalls(0, 0, 4), rowOfWalls(10, 0, 5)...)
	idx := grid.Build(walls, nil)
	runs := FindRuns(idx, 4, 5)
	if len(runs) != 2 {
		t.Fatalf("len(runs) = %d, want 2", len(runs))
	}
	ScoreRuns(runs, idx, 4)

	var score4, score5 int
	for _, run := range runs {
		if run.Length() == 4 {
			score4 = run.Score
		} else {
			score5 = run.Score
		}
	}
	if score4 != 20 || score5 != 19 {
		t.Errorf("scores = {len4: %d, len5: %d}, want {20, 19}", score4, score5)
	}
}

func TestScoreRun_VerticalExposure(t *testing.T) {
	// Vertical run with a wall touching its +x side along the span.
	walls := append(colOfWalls(0, 0, 4), grid.WallCell{Coord: grid.Coord{X: 1, Y: 2}})
	idx := grid.Build(walls, nil)

	var vertical *Run
	runs := FindRuns(idx, 4, 5)
	ScoreRuns(runs, idx, 4)
	for i := range runs {
		if runs[i].Orientation == Vertical {
			vertical = &runs[i]
		}
	}
	if vertical == nil {
		t.Fatal("no vertical run found")
	}
	// Only the -x side is clear: +10 - 0.
	if vertical.Score != 10 {
		t.Errorf("vertical run score = %d, want 10", vertical.Score)
	}
}
