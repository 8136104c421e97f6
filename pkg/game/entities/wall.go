package entities

// Wall is one wall tile record. ID is the arena index handed out by the
// game state; X and Y are the tile's world position in world units.
type Wall struct {
	ID int
	X  float64
	Y  float64
}
