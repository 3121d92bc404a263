package object

import (
	"github.com/tomz197/rockfall/internal/config"
	"github.com/tomz197/rockfall/internal/physics"
)

// Player is the ship. It lives for the whole session and is never destroyed.
type Player struct {
	Rect    physics.Rect
	Speed   float64 // Units moved per frame per held direction
	Ceiling float64 // Upward moves are rejected once Y is above this line
}

// NewPlayer creates the ship near the bottom center of the arena.
func NewPlayer(arena Arena) *Player {
	return &Player{
		Rect: physics.NewRect(
			arena.Width/2,
			arena.Height*0.9,
			config.PlayerWidth,
			config.PlayerHeight,
		),
		Speed:   config.PlayerSpeed,
		Ceiling: config.PlayerCeiling,
	}
}

// Move applies held direction keys. Each axis behaves like a wall: a step is
// dropped only when the relevant edge is already strictly past its boundary,
// so the ship can overshoot a boundary by at most one step.
func (p *Player) Move(in Input, arena Arena) {
	r := &p.Rect

	if in.Up && !(r.Y < p.Ceiling && r.Top() < p.Ceiling) {
		r.Y -= p.Speed
	}
	if in.Down && !(r.Y > 0 && r.Bottom() > arena.Height) {
		r.Y += p.Speed
	}
	if in.Left && !(r.X < 0 && r.Left() < 0) {
		r.X -= p.Speed
	}
	if in.Right && !(r.X > 0 && r.Right() > arena.Width) {
		r.X += p.Speed
	}
}

// Bounds returns the ship's rectangle.
func (p *Player) Bounds() physics.Rect {
	return p.Rect
}

// Shape returns the ship as a drawable.
func (p *Player) Shape() Shape {
	return Shape{Rect: p.Rect, Color: ColorWhite}
}
