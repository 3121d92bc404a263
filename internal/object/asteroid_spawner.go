package object

import (
	"math/rand/v2"
	"slices"
)

// AsteroidSpawner emits one asteroid whenever the frame counter hits a trigger value.
type AsteroidSpawner struct {
	triggers []int
	rng      *rand.Rand
}

// NewAsteroidSpawner creates a spawner firing on the given frame counter values.
func NewAsteroidSpawner(rng *rand.Rand, triggers ...int) *AsteroidSpawner {
	return &AsteroidSpawner{
		triggers: slices.Clone(triggers),
		rng:      rng,
	}
}

// Update returns a new asteroid if frame is a trigger frame, nil otherwise.
func (s *AsteroidSpawner) Update(frame int, arena Arena) *Asteroid {
	if !slices.Contains(s.triggers, frame) {
		return nil
	}
	return NewAsteroid(s.rng, arena)
}
