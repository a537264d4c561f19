// Package geom holds the value types shared by every simulated entity:
// integer rectangles for collision bounds and float vectors for velocity.
package geom

// Rect is an axis-aligned box in world pixels. Y grows downward.
type Rect struct {
	X, Y int // Top-left corner
	W, H int
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() int { return r.X }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int { return r.X + r.W }

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() int { return r.Y }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// CenterX returns the horizontal center.
func (r Rect) CenterX() int { return r.X + r.W/2 }

// CenterY returns the vertical center.
func (r Rect) CenterY() int { return r.Y + r.H/2 }

// Center returns the center as a vector.
func (r Rect) Center() Vec2 {
	return Vec2{X: float64(r.X) + float64(r.W)/2, Y: float64(r.Y) + float64(r.H)/2}
}

// Intersects reports whether two rectangles overlap.
// Rectangles that only share an edge do not intersect.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// OverlapsX reports whether the horizontal spans overlap.
func (r Rect) OverlapsX(other Rect) bool {
	return r.X < other.Right() && other.X < r.Right()
}

// Translate returns the rectangle moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// SetBottom moves the rectangle vertically so its bottom edge is at y.
func (r *Rect) SetBottom(y int) { r.Y = y - r.H }

// SetRight moves the rectangle horizontally so its right edge is at x.
func (r *Rect) SetRight(x int) { r.X = x - r.W }

// SetCenterX moves the rectangle horizontally so its center is at x.
func (r *Rect) SetCenterX(x int) { r.X = x - r.W/2 }
