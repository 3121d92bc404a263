package object

import (
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/tomz197/rockfall/internal/config"
	"github.com/tomz197/rockfall/internal/physics"
)

// Asteroid is a rock drifting down the arena.
type Asteroid struct {
	ID       uuid.UUID
	Rect     physics.Rect
	Vel      physics.Vector
	Collided bool // Marked for removal in the collision sweep
}

// NewAsteroid creates an asteroid just below the top of the arena at a
// random horizontal position.
func NewAsteroid(rng *rand.Rand, arena Arena) *Asteroid {
	x := rng.Float64() * arena.Width
	return NewAsteroidAt(x, arena.Height*config.AsteroidStartY)
}

// NewAsteroidAt creates an asteroid at (x,y) with the standard size and fall speed.
func NewAsteroidAt(x, y float64) *Asteroid {
	return &Asteroid{
		ID:   uuid.New(),
		Rect: physics.NewRect(x, y, config.AsteroidSize, config.AsteroidSize),
		Vel:  physics.Vector{X: 0, Y: config.AsteroidSpeed},
	}
}

// Move translates the asteroid by its velocity.
func (a *Asteroid) Move() {
	a.Rect.Translate(a.Vel)
}

// InBand returns true while the asteroid is vertically inside the arena.
func (a *Asteroid) InBand(height float64) bool {
	return inBand(a.Rect, height)
}

// Bounds returns the asteroid's rectangle.
func (a *Asteroid) Bounds() physics.Rect {
	return a.Rect
}

// MarkCollided marks the asteroid for removal (implements Collidable).
func (a *Asteroid) MarkCollided() {
	a.Collided = true
}

// IsCollided returns true if the asteroid is marked for removal (implements Collidable).
func (a *Asteroid) IsCollided() bool {
	return a.Collided
}

// Shape returns the asteroid as a drawable.
func (a *Asteroid) Shape() Shape {
	return Shape{Rect: a.Rect, Color: ColorWhite}
}
