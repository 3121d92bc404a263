package object

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tomz197/rockfall/internal/physics"
)

func newTestRand() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestNewAsteroidPlacement(t *testing.T) {
	rng := newTestRand()

	for range 100 {
		a := NewAsteroid(rng, testArena)
		assert.GreaterOrEqual(t, a.Rect.X, 0.0)
		assert.Less(t, a.Rect.X, testArena.Width)
		assert.Equal(t, 6.0, a.Rect.Y)
		assert.Equal(t, 20.0, a.Rect.W)
		assert.Equal(t, 20.0, a.Rect.H)
		assert.Equal(t, physics.Vector{X: 0, Y: 5}, a.Vel)
		assert.False(t, a.Collided)
	}
}

func TestAsteroidsAreDistinct(t *testing.T) {
	a := NewAsteroidAt(10, 10)
	b := NewAsteroidAt(10, 10)
	assert.NotEqual(t, a.ID, b.ID)
	assert.NotSame(t, a, b)
}

func TestAsteroidMove(t *testing.T) {
	a := NewAsteroidAt(100, 6)
	a.Move()
	a.Move()
	assert.Equal(t, physics.NewRect(100, 16, 20, 20), a.Rect)
}

func TestAsteroidInBand(t *testing.T) {
	a := NewAsteroidAt(100, 599)
	assert.True(t, a.InBand(600))

	a.Rect.Y = 600
	assert.True(t, a.InBand(600), "bottom edge is inside the band")

	a.Rect.Y = 0
	assert.True(t, a.InBand(600), "top edge is inside the band")

	a.Rect.Y = 605
	assert.False(t, a.InBand(600))

	a.Rect.Y = -5
	assert.False(t, a.InBand(600))
}

func TestAsteroidCollidable(t *testing.T) {
	var c Collidable = NewAsteroidAt(0, 0)
	assert.False(t, c.IsCollided())
	c.MarkCollided()
	assert.True(t, c.IsCollided())
}

func TestProjectile(t *testing.T) {
	p := NewProjectile(300, 540)
	assert.Equal(t, physics.NewRect(300, 540, 5, 5), p.Bounds())
	assert.Equal(t, ColorRed, p.Shape().Color)

	p.Move()
	assert.Equal(t, 535.0, p.Rect.Y)
	assert.True(t, p.InBand(600))

	p.Rect.Y = 0
	assert.True(t, p.InBand(600))

	p.Move()
	assert.False(t, p.InBand(600))

	var c Collidable = p
	c.MarkCollided()
	assert.True(t, p.IsCollided())
}

func TestAsteroidSpawnerTriggers(t *testing.T) {
	s := NewAsteroidSpawner(newTestRand(), 20, 50)

	spawned := 0
	for frame := 0; frame <= 60; frame++ {
		a := s.Update(frame, testArena)
		switch frame {
		case 20, 50:
			assert.NotNil(t, a, "frame %d", frame)
		default:
			assert.Nil(t, a, "frame %d", frame)
		}
		if a != nil {
			spawned++
		}
	}
	assert.Equal(t, 2, spawned)
}

func TestAsteroidSpawnerCopiesTriggers(t *testing.T) {
	triggers := []int{5}
	s := NewAsteroidSpawner(newTestRand(), triggers...)
	triggers[0] = 6

	assert.NotNil(t, s.Update(5, testArena))
	assert.Nil(t, s.Update(6, testArena))
}
