package object

import (
	"github.com/google/uuid"
	"github.com/tomz197/rockfall/internal/config"
	"github.com/tomz197/rockfall/internal/physics"
)

// Projectile is a bullet fired straight up from the ship.
type Projectile struct {
	ID       uuid.UUID
	Rect     physics.Rect
	Vel      physics.Vector
	Collided bool
}

// NewProjectile creates a projectile at position (x,y) traveling upward.
func NewProjectile(x, y float64) *Projectile {
	return &Projectile{
		ID:   uuid.New(),
		Rect: physics.NewRect(x, y, config.ProjectileSize, config.ProjectileSize),
		Vel:  physics.Vector{X: 0, Y: -config.ProjectileSpeed},
	}
}

// Move translates the projectile by its velocity.
func (p *Projectile) Move() {
	p.Rect.Translate(p.Vel)
}

// InBand returns true while the projectile is vertically inside the arena.
func (p *Projectile) InBand(height float64) bool {
	return inBand(p.Rect, height)
}

// Bounds returns the projectile's rectangle.
func (p *Projectile) Bounds() physics.Rect {
	return p.Rect
}

// MarkCollided marks the projectile for removal.
func (p *Projectile) MarkCollided() {
	p.Collided = true
}

// IsCollided returns true if the projectile is marked for removal.
func (p *Projectile) IsCollided() bool {
	return p.Collided
}

// Shape returns the projectile as a drawable.
func (p *Projectile) Shape() Shape {
	return Shape{Rect: p.Rect, Color: ColorRed}
}
