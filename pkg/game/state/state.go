// Package state owns the mutable game context: wall records, puzzle
// terminals and the portal controller. Everything lives on an explicit
// Game value rather than package globals so tests can run isolated worlds
// in parallel.
package state

import (
	"github.com/zyedidia/generic/mapset"

	"wallgate/pkg/engine/grid"
	"wallgate/pkg/game/answers"
	"wallgate/pkg/game/config"
	"wallgate/pkg/game/entities"
	"wallgate/pkg/game/portal"
)

// Game represents one running game world.
type Game struct {
	Config  *config.Config
	Answers *answers.Registry
	Portals *portal.Controller

	walls   []entities.Wall
	puzzles map[string]*entities.PuzzleTerminal
	solved  mapset.Set[string]

	Messages []string
	Hints    []string
}

// NewGame creates a game world with the given configuration. notify may
// be nil; it receives per-cell portal activation notifications.
func NewGame(cfg *config.Config, notify portal.Notifier) *Game {
	if cfg == nil {
		cfg = config.Default()
	}
	g := &Game{
		Config:  cfg,
		Answers: answers.DefaultRegistry(),
		puzzles: make(map[string]*entities.PuzzleTerminal),
		solved:  mapset.New[string](),
	}
	g.Portals = portal.NewController(cfg.Portal, g, notify)
	return g
}

// AddWall records a wall tile at a world position and returns its entity
// handle.
func (g *Game) AddWall(x, y float64) int {
	id := len(g.walls)
	g.walls = append(g.walls, entities.Wall{ID: id, X: x, Y: y})
	return id
}

// Wall returns the wall record for an entity handle.
func (g *Game) Wall(id int) (entities.Wall, bool) {
	if id < 0 || id >= len(g.walls) {
		return entities.Wall{}, false
	}
	return g.walls[id], true
}

// WallCount returns the number of wall records.
func (g *Game) WallCount() int {
	return len(g.walls)
}

// WallCells converts the wall records to grid cells for the portal
// controller. The conversion runs per placement attempt so the controller
// always sees current occupancy.
func (g *Game) WallCells() []grid.WallCell {
	cells := make([]grid.WallCell, len(g.walls))
	for i, w := range g.walls {
		cells[i] = grid.WallCell{
			Coord:  grid.FromWorld(w.X, w.Y, g.Config.World.TileSize),
			Entity: w.ID,
		}
	}
	return cells
}

// AddPuzzle registers a puzzle terminal. Returns false for nil puzzles,
// empty identifiers or duplicates.
func (g *Game) AddPuzzle(p *entities.PuzzleTerminal) bool {
	if p == nil || p.ID == "" {
		return false
	}
	if _, found := g.puzzles[p.ID]; found {
		return false
	}
	g.puzzles[p.ID] = p
	return true
}

// Puzzle returns the puzzle terminal with the given identifier.
func (g *Game) Puzzle(id string) (*entities.PuzzleTerminal, bool) {
	p, found := g.puzzles[id]
	return p, found
}

// IsSolved reports whether the puzzle has been solved.
func (g *Game) IsSolved(id string) bool {
	return g.solved.Has(id)
}

// SubmitAnswer validates a submitted answer for a puzzle and, when it
// matches, marks the puzzle solved and asks the portal controller for a
// wall segment. Returns whether the answer was accepted; re-submitting a
// correct answer is accepted again and leaves the claim untouched.
func (g *Game) SubmitAnswer(puzzleID, submitted string) bool {
	p, found := g.puzzles[puzzleID]
	if !found {
		return false
	}
	if !g.Answers.Check(p.Type, p.Answer, submitted) {
		return false
	}

	p.Solve()
	g.solved.Put(puzzleID)
	g.Portals.OnPuzzleSolved(puzzleID)
	return true
}

// AddMessage adds a message to the game's message log.
func (g *Game) AddMessage(msg string) {
	const maxMessages = 5
	g.Messages = append(g.Messages, msg)

	// Keep only the last maxMessages
	if len(g.Messages) > maxMessages {
		g.Messages = g.Messages[len(g.Messages)-maxMessages:]
	}
}

// ClearMessages clears all messages.
func (g *Game) ClearMessages() {
	g.Messages = make([]string, 0)
}

// AddHint adds a hint to the game.
func (g *Game) AddHint(hint string) {
	g.Hints = append(g.Hints, hint)
}

// Reset drops walls, puzzles, claims and logs, keeping configuration and
// answer handlers.
func (g *Game) Reset() {
	g.walls = nil
	g.puzzles = make(map[string]*entities.PuzzleTerminal)
	g.solved = mapset.New[string]()
	g.Messages = nil
	g.Hints = nil
	g.Portals.Reset()
}
