package sim

import (
	"slices"

	"github.com/tomz197/rockfall/internal/object"
)

// checkCollisions reports ship hits and marks every overlapping
// asteroid/projectile pair. Nothing is removed here.
func (s *Simulation) checkCollisions() {
	ship := s.player.Bounds()
	for _, a := range s.asteroids {
		if a.Bounds().Overlaps(ship) {
			s.playerHits++
			s.logger.Info("asteroid hit player", "asteroid", a.ID, "x", a.Rect.X, "y", a.Rect.Y)
		}
	}

	for _, a := range s.asteroids {
		for _, p := range s.projectiles {
			if a.Bounds().Overlaps(p.Bounds()) {
				markPair(a, p)
			}
		}
	}
}

// markPair flags both sides of a hit for removal.
func markPair(a, b object.Collidable) {
	a.MarkCollided()
	b.MarkCollided()
}

// sweepCollided drops every entity marked during checkCollisions.
func (s *Simulation) sweepCollided() {
	s.projectiles = slices.DeleteFunc(s.projectiles, func(p *object.Projectile) bool {
		return p.IsCollided()
	})
	s.asteroids = slices.DeleteFunc(s.asteroids, func(a *object.Asteroid) bool {
		if a.IsCollided() {
			s.logger.Debug("asteroid destroyed", "asteroid", a.ID)
			return true
		}
		return false
	})
}
