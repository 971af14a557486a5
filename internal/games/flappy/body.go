package flappy

import "github.com/vovakirdan/tui-flappy/internal/core"

// Role distinguishes the two barriers of an obstacle pair.
type Role int

const (
	RoleUpper Role = iota // Hangs from the top of the playfield
	RoleLower             // Rises from the ground
)

// Obstacle is a static barrier. Obstacles never move once placed.
type Obstacle struct {
	Rect core.Rect
	Role Role
	Pair int // Index of the pair this barrier belongs to
}

// Flyer is the player-controlled body.
type Flyer struct {
	X, Y   float64 // Top-left corner
	VX, VY float64 // Velocity in world units per second; positive VY is down
	W, H   float64
	Bounce float64 // Fraction of normal velocity kept on contact
}

// Rect returns the flyer's bounding box.
func (f Flyer) Rect() core.Rect {
	return core.NewRect(f.X, f.Y, f.W, f.H)
}

// CollisionFlags are terminal markers: once set they stay set for the session.
type CollisionFlags struct {
	Bumped bool // Touched an obstacle
	Landed bool // Touched the ground
}

// Any reports whether either flag is set.
func (f CollisionFlags) Any() bool {
	return f.Bumped || f.Landed
}
