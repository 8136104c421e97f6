// Package entities contains game-specific entity types for the station.
package entities

// PuzzleTerminal represents a terminal that requires solving a puzzle.
// Solving one is what opens a portal exit in the station's walls.
type PuzzleTerminal struct {
	ID          string // puzzle identifier, stable across saves
	Type        string // answer-handler type tag (see pkg/game/answers)
	Answer      string // the expected answer (e.g. "1-2-3-4")
	Hint        string // hint text shown when examining
	Solved      bool
	Description string
}

// NewPuzzleTerminal creates a new unsolved puzzle terminal.
func NewPuzzleTerminal(id, puzzleType, answer, hint, description string) *PuzzleTerminal {
	return &PuzzleTerminal{
		ID:          id,
		Type:        puzzleType,
		Answer:      answer,
		Hint:        hint,
		Description: description,
		Solved:      false,
	}
}

// IsSolved returns whether the puzzle has been solved.
func (p *PuzzleTerminal) IsSolved() bool {
	return p.Solved
}

// Solve marks the puzzle as solved.
func (p *PuzzleTerminal) Solve() {
	p.Solved = true
}
