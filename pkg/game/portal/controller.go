package portal

import (
	"sync"

	"github.com/google/uuid"
	"github.com/zyedidia/generic/mapset"

	"wallgate/pkg/engine/grid"
	"wallgate/pkg/game/config"
)

// ClaimCell is one wall cell belonging to a claim. SegmentIndex is the
// cell's position in the run's natural scan order and the indexes of a
// claim form a dense 0..len-1 sequence.
type ClaimCell struct {
	Coord        grid.Coord
	Entity       int
	SegmentIndex int
}

// Claim is the permanent association between a puzzle and the wall cells
// chosen as its portal. Claims are never removed; the only mutation after
// creation is the activation flag flipping on.
type Claim struct {
	PuzzleID      string
	GroupID       string
	Cells         []ClaimCell
	SegmentLength int
	Active        bool
}

// Activation is the per-cell notification sent to the rendering
// collaborator when a claim activates.
type Activation struct {
	Entity        int
	PuzzleID      string
	GroupID       string
	SegmentIndex  int
	SegmentLength int
}

// Notifier receives activation notifications, once per claimed cell.
type Notifier interface {
	PortalCellActivated(a Activation)
}

// WallSource supplies the current wall occupancy. It is queried fresh on
// every placement attempt because wall state changes between attempts.
type WallSource interface {
	WallCells() []grid.WallCell
}

// Controller owns the claim table and runs the placement pipeline when a
// puzzle is solved. The mutex makes the check-claim sequence one atomic
// section, so two concurrent solves of the same puzzle cannot both pass
// the unclaimed check and double-claim cells.
type Controller struct {
	mu      sync.Mutex
	cfg     config.PortalConfig
	source  WallSource
	notify  Notifier
	claims  map[string]*Claim
	claimed mapset.Set[grid.Coord]
}

// NewController creates a controller over the given wall source. notify
// may be nil, in which case activations are not reported anywhere.
func NewController(cfg config.PortalConfig, source WallSource, notify Notifier) *Controller {
	return &Controller{
		cfg:     cfg,
		source:  source,
		notify:  notify,
		claims:  make(map[string]*Claim),
		claimed: mapset.New[grid.Coord](),
	}
}

// SetConfig replaces the placement settings. Existing claims keep the
// cells they already hold.
func (c *Controller) SetConfig(cfg config.PortalConfig) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cfg = cfg
}

// OnPuzzleSolved claims and activates a portal for the given puzzle.
// Solving an already-claimed puzzle is an idempotent success: a dormant
// claim activates, an active one is left alone, and true is returned in
// both cases. Returns false without touching world state when the feature
// is disabled, the identifier is empty, or no eligible segment exists.
func (c *Controller) OnPuzzleSolved(puzzleID string) bool {
	if !c.cfg.Enabled || puzzleID == "" {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if claim, found := c.claims[puzzleID]; found {
		c.activate(claim)
		return true
	}

	claim, ok := c.place(puzzleID)
	if !ok {
		return false
	}
	c.activate(claim)
	return true
}

// Stage claims a portal for the puzzle without activating it, so the
// segment is reserved ahead of the solve. A later OnPuzzleSolved for the
// same identifier activates the staged cells. Returns false under the
// same conditions as OnPuzzleSolved, or true if a claim already exists.
func (c *Controller) Stage(puzzleID string) bool {
	if !c.cfg.Enabled || puzzleID == "" {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, found := c.claims[puzzleID]; found {
		return true
	}
	_, ok := c.place(puzzleID)
	return ok
}

// place runs the full pipeline for a fresh puzzle identifier and records
// the winning claim. Callers must hold the mutex.
func (c *Controller) place(puzzleID string) (*Claim, bool) {
	var walls []grid.WallCell
	if c.source != nil {
		walls = c.source.WallCells()
	}

	idx := grid.Build(walls, &c.claimed)
	runs := FindRuns(idx, c.cfg.MinSegmentLength, c.cfg.MaxSegmentLength)
	ScoreRuns(runs, idx, c.cfg.PreferredSegmentLength)

	run, ok := selectRun(runs, puzzleID, c.cfg.BaseSeed)
	if !ok {
		return nil, false
	}

	claim := &Claim{
		PuzzleID:      puzzleID,
		GroupID:       groupIdentifier(puzzleID),
		Cells:         make([]ClaimCell, len(run.Cells)),
		SegmentLength: len(run.Cells),
	}
	for i, coord := range run.Cells {
		cell, _ := idx.Get(coord.X, coord.Y)
		claim.Cells[i] = ClaimCell{
			Coord:        coord,
			Entity:       cell.Entity,
			SegmentIndex: i,
		}
		c.claimed.Put(coord)
	}

	c.claims[puzzleID] = claim
	return claim, true
}

// activate flips a claim active and notifies the renderer once per cell.
// Already-active claims are left untouched. Callers must hold the mutex.
func (c *Controller) activate(claim *Claim) {
	if claim.Active {
		return
	}
	claim.Active = true

	if c.notify == nil {
		return
	}
	for _, cell := range claim.Cells {
		c.notify.PortalCellActivated(Activation{
			Entity:        cell.Entity,
			PuzzleID:      claim.PuzzleID,
			GroupID:       claim.GroupID,
			SegmentIndex:  cell.SegmentIndex,
			SegmentLength: claim.SegmentLength,
		})
	}
}

// HasClaim reports whether the puzzle already owns a portal claim.
func (c *Controller) HasClaim(puzzleID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, found := c.claims[puzzleID]
	return found
}

// IsActive reports whether the puzzle's claim exists and is activated.
func (c *Controller) IsActive(puzzleID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	claim, found := c.claims[puzzleID]
	return found && claim.Active
}

// ClaimFor returns a copy of the puzzle's claim for inspection.
func (c *Controller) ClaimFor(puzzleID string) (Claim, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	claim, found := c.claims[puzzleID]
	if !found {
		return Claim{}, false
	}
	out := *claim
	out.Cells = append([]ClaimCell(nil), claim.Cells...)
	return out, true
}

// Claims returns copies of all claims, keyed by puzzle identifier.
func (c *Controller) Claims() map[string]Claim {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]Claim, len(c.claims))
	for id, claim := range c.claims {
		cp := *claim
		cp.Cells = append([]ClaimCell(nil), claim.Cells...)
		out[id] = cp
	}
	return out
}

// IsCoordClaimed reports whether any claim owns the coordinate.
func (c *Controller) IsCoordClaimed(coord grid.Coord) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.claimed.Has(coord)
}

// Reset drops every claim. Only intended for tests and level teardown.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.claims = make(map[string]*Claim)
	c.claimed = mapset.New[grid.Coord]()
}

// groupIdentifier derives a stable group identifier for a puzzle's portal
// cells. UUIDv5 over the identifier keeps it reproducible across runs.
func groupIdentifier(puzzleID string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("wallgate/portal/"+puzzleID)).String()
}
