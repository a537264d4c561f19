package entity

import "github.com/younwookim/platformer/internal/domain/geom"

// GroundTolerance is the largest gap allowed between a grounded actor's feet
// and its ground platform's top edge.
const GroundTolerance = 5

// Body is the physical state shared by the player and enemies.
// Position lives in Bounds (whole pixels); velocity is in pixels per frame.
type Body struct {
	Bounds geom.Rect
	VX, VY float64

	OnGround    bool
	Ground      EntityID // platform under the feet while OnGround
	FacingRight bool

	Health    int
	MaxHealth int
}

// Center returns the center of the body.
func (b *Body) Center() geom.Vec2 {
	return b.Bounds.Center()
}

// Land snaps the body on top of a platform.
func (b *Body) Land(p Platform) {
	b.Bounds.SetBottom(p.Bounds().Top())
	b.VY = 0
	b.OnGround = true
	b.Ground = p.ID()
}

// Airborne clears the ground state.
func (b *Body) Airborne() {
	b.OnGround = false
	b.Ground = NoEntity
}

// IsAlive reports whether health is above zero.
func (b *Body) IsAlive() bool {
	return b.Health > 0
}

// SetPos moves the top-left corner.
func (b *Body) SetPos(x, y int) {
	b.Bounds.X = x
	b.Bounds.Y = y
}

// Facing returns +1 when facing right, -1 otherwise.
func (b *Body) Facing() int {
	if b.FacingRight {
		return 1
	}
	return -1
}

// hitRect returns a w×h rectangle against the facing edge, vertically
// centered on the body.
func (b *Body) hitRect(w, h int) geom.Rect {
	x := b.Bounds.Right()
	if !b.FacingRight {
		x = b.Bounds.Left() - w
	}
	return geom.NewRect(x, b.Bounds.CenterY()-h/2, w, h)
}

// damage lowers health without going below zero.
func (b *Body) damage(n int) {
	b.Health -= n
	if b.Health < 0 {
		b.Health = 0
	}
}
