// Package physics provides the axis-aligned geometry used for movement and collision.
package physics

// Vector is a 2D displacement.
type Vector struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
// Y grows downward.
type Rect struct {
	X, Y float64
	W, H float64
}

// NewRect creates a rectangle at (x,y) with the given size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 { return r.X }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Y }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Translate moves the rectangle by v.
func (r *Rect) Translate(v Vector) {
	r.X += v.X
	r.Y += v.Y
}

// Overlaps reports whether r and o intersect. Edges are inclusive,
// so rectangles that merely touch count as overlapping.
func (r Rect) Overlaps(o Rect) bool {
	return r.Left() <= o.Right() &&
		r.Right() >= o.Left() &&
		r.Top() <= o.Bottom() &&
		r.Bottom() >= o.Top()
}
