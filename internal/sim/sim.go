// Package sim holds the game state and advances it one frame at a time.
//
// The Simulation knows nothing about terminals or windows: a driver feeds it
// input through an InputSource and draws the result through a Renderer.
package sim

import (
	"io"
	"math/rand/v2"
	"slices"

	"github.com/charmbracelet/log"
	"github.com/tomz197/rockfall/internal/config"
	"github.com/tomz197/rockfall/internal/object"
)

// InputSource supplies the input for one tick.
type InputSource interface {
	Poll() object.Input
}

// Renderer draws one frame's shapes.
type Renderer interface {
	Render(shapes []object.Shape) error
}

// Options configures a Simulation. Zero values select the defaults.
type Options struct {
	Arena  object.Arena
	Rand   *rand.Rand
	Logger *log.Logger
}

// Simulation owns the player, the live asteroids and projectiles, and the
// frame counter that paces spawning.
type Simulation struct {
	arena       object.Arena
	player      *object.Player
	asteroids   []*object.Asteroid
	projectiles []*object.Projectile
	spawner     *object.AsteroidSpawner
	frame       int
	playerHits  int
	logger      *log.Logger
}

// New creates a simulation with the player near the bottom and two asteroids.
func New(opts Options) *Simulation {
	if opts.Arena == (object.Arena{}) {
		opts.Arena = object.Arena{Width: config.ArenaWidth, Height: config.ArenaHeight}
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	s := &Simulation{
		arena:   opts.Arena,
		player:  object.NewPlayer(opts.Arena),
		spawner: object.NewAsteroidSpawner(opts.Rand, config.AsteroidSpawnFrames...),
		logger:  opts.Logger,
	}
	for range config.InitialAsteroids {
		s.asteroids = append(s.asteroids, object.NewAsteroid(opts.Rand, opts.Arena))
	}
	return s
}

// Step runs one tick: poll input, advance the frame, render the result.
// A renderer error is returned as-is; the driver treats it as fatal.
func (s *Simulation) Step(src InputSource, dst Renderer) error {
	s.AdvanceFrame(src.Poll())
	return dst.Render(s.RenderSnapshot())
}

// AdvanceFrame runs the per-frame update. A fire event is dispatched first,
// as the event loop delivers it ahead of the update.
func (s *Simulation) AdvanceFrame(in object.Input) {
	if in.Fire {
		s.SpawnProjectile()
	}

	s.player.Move(in, s.arena)

	for _, a := range s.asteroids {
		a.Move()
	}
	if a := s.spawner.Update(s.frame, s.arena); a != nil {
		s.asteroids = append(s.asteroids, a)
	}
	s.asteroids = slices.DeleteFunc(s.asteroids, func(a *object.Asteroid) bool {
		return !a.InBand(s.arena.Height)
	})

	for _, p := range s.projectiles {
		p.Move()
	}
	s.projectiles = slices.DeleteFunc(s.projectiles, func(p *object.Projectile) bool {
		return !p.InBand(s.arena.Height)
	})

	s.checkCollisions()
	s.sweepCollided()

	if s.frame < config.FrameCycle {
		s.frame++
	} else {
		s.frame = 0
	}
}

// SpawnProjectile fires a projectile from the player's current position.
// There is no cooldown.
func (s *Simulation) SpawnProjectile() {
	r := s.player.Bounds()
	s.projectiles = append(s.projectiles, object.NewProjectile(r.X, r.Y))
}

// RenderSnapshot returns the player, every asteroid and every projectile as
// drawables, in that order. It does not modify the simulation.
func (s *Simulation) RenderSnapshot() []object.Shape {
	shapes := make([]object.Shape, 0, 1+len(s.asteroids)+len(s.projectiles))
	shapes = append(shapes, s.player.Shape())
	for _, a := range s.asteroids {
		shapes = append(shapes, a.Shape())
	}
	for _, p := range s.projectiles {
		shapes = append(shapes, p.Shape())
	}
	return shapes
}

// Player returns the ship.
func (s *Simulation) Player() *object.Player {
	return s.player
}

// Asteroids returns the live asteroids. The slice must not be modified.
func (s *Simulation) Asteroids() []*object.Asteroid {
	return s.asteroids
}

// Projectiles returns the live projectiles. The slice must not be modified.
func (s *Simulation) Projectiles() []*object.Projectile {
	return s.projectiles
}

// AddAsteroid inserts an asteroid, e.g. to set up a scenario.
func (s *Simulation) AddAsteroid(a *object.Asteroid) {
	s.asteroids = append(s.asteroids, a)
}

// AddProjectile inserts a projectile, e.g. to set up a scenario.
func (s *Simulation) AddProjectile(p *object.Projectile) {
	s.projectiles = append(s.projectiles, p)
}

// Frame returns the spawn-pacing frame counter, in [0, config.FrameCycle].
func (s *Simulation) Frame() int {
	return s.frame
}

// PlayerHits returns how many asteroid overlaps with the ship were observed.
// A hit is counted once per asteroid per frame; nothing else happens.
func (s *Simulation) PlayerHits() int {
	return s.playerHits
}

// Arena returns the play area dimensions.
func (s *Simulation) Arena() object.Arena {
	return s.arena
}
