package object

import (
	"image/color"

	"github.com/tomz197/rockfall/internal/input"
	"github.com/tomz197/rockfall/internal/physics"
)

// Input is an alias for the input package's Input type.
type Input = input.Input

// Arena represents the fixed logical play area.
type Arena struct {
	Width  float64
	Height float64
}

// Colors used for rendering.
var (
	ColorWhite = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	ColorRed   = color.RGBA{R: 255, A: 255}
)

// Shape is a drawable rectangle with its fill color.
type Shape struct {
	Rect  physics.Rect
	Color color.RGBA
}

// Collidable is implemented by moving entities that are removed after a hit.
type Collidable interface {
	// Bounds returns the entity's current rectangle.
	Bounds() physics.Rect
	// MarkCollided flags the entity for removal in the collision sweep.
	MarkCollided()
	// IsCollided returns true if the entity is flagged for removal.
	IsCollided() bool
}

// inBand is the off-screen retain predicate shared by asteroids and projectiles.
// The band [0, height] is closed, so an entity sitting exactly on either edge
// is kept. Only the vertical position is checked; horizontal drift never happens.
func inBand(r physics.Rect, height float64) bool {
	return r.Y >= 0 && r.Y <= height
}
