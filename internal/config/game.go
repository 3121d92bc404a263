package config

import "time"

// Arena - the fixed logical canvas every entity lives in.
const (
	ArenaWidth  = 600.0
	ArenaHeight = 600.0
)

// Player
const (
	PlayerWidth   = 10.0
	PlayerHeight  = 20.0
	PlayerSpeed   = 5.0  // Units per frame per held direction
	PlayerCeiling = 90.0 // Upward movement stops once the ship is above this line
)

// Asteroids
const (
	AsteroidSize     = 20.0
	AsteroidSpeed    = 5.0  // Downward, units per frame
	AsteroidStartY   = 0.01 // Fraction of arena height
	InitialAsteroids = 2
)

// AsteroidSpawnFrames are the frame counter values that spawn a new asteroid.
var AsteroidSpawnFrames = []int{20, 50}

// Projectiles
const (
	ProjectileSize  = 5.0
	ProjectileSpeed = 5.0 // Upward, units per frame
)

// FrameCycle is the highest frame counter value before it wraps to 0.
const FrameCycle = 60

// Tick rate
const (
	TargetFPS       = 60
	TargetFrameTime = time.Second / TargetFPS
)
