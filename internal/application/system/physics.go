package system

import (
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/domain/geom"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// PlatformSource is the read-only view of the platform arena that actors
// collide against.
type PlatformSource interface {
	Platform(id entity.EntityID) (entity.Platform, bool)
	EachPlatform(fn func(p entity.Platform) bool)
}

// PhysicsSystem moves actor bodies against the platform set.
//
// Movement is axis separated: the horizontal move is resolved fully before the
// vertical one. Positions are whole pixels and each axis moves by the
// truncated velocity, so there is no swept collision and a very fast actor can
// skip a thin platform.
type PhysicsSystem struct {
	config *config.PhysicsConfig
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{config: cfg}
}

// Update advances a body by one frame.
func (s *PhysicsSystem) Update(b *entity.Body, platforms PlatformSource) {
	s.carry(b, platforms)

	if !b.OnGround {
		s.applyGravity(b)
	}

	s.moveX(b, platforms)
	s.moveY(b, platforms)

	if b.OnGround {
		s.applyFriction(b, platforms)
	}
}

// carry translates a grounded body by its ground platform's displacement and
// drops the ground state when that platform is gone or no longer solid.
func (s *PhysicsSystem) carry(b *entity.Body, platforms PlatformSource) {
	if !b.OnGround {
		return
	}
	ground, ok := platforms.Platform(b.Ground)
	if !ok || !ground.Solid() {
		b.Airborne()
		return
	}
	dx, dy := ground.Delta()
	if dx != 0 {
		s.moveXBy(b, dx, platforms, b.Ground)
	}
	if dy != 0 {
		prev := b.Bounds
		b.Bounds = b.Bounds.Translate(0, dy)
		if dy < 0 && s.hitCeiling(b, prev, platforms) {
			b.Airborne()
		}
	}
}

// applyGravity applies gravity acceleration to an airborne body
func (s *PhysicsSystem) applyGravity(b *entity.Body) {
	b.VY += s.config.Physics.Gravity
	if b.VY > s.config.Physics.MaxFallSpeed {
		b.VY = s.config.Physics.MaxFallSpeed
	}
}

// moveX moves the body horizontally and pushes it flush against anything it
// ran into.
func (s *PhysicsSystem) moveX(b *entity.Body, platforms PlatformSource) {
	if dx := int(b.VX); dx != 0 {
		s.moveXBy(b, dx, platforms, entity.NoEntity)
	}
}

// moveXBy shifts the body dx pixels and resolves the overlap against every
// solid platform except skip.
func (s *PhysicsSystem) moveXBy(b *entity.Body, dx int, platforms PlatformSource, skip entity.EntityID) {
	b.Bounds.X += dx

	platforms.EachPlatform(func(p entity.Platform) bool {
		if p.ID() == skip || !p.Solid() || !b.Bounds.Intersects(p.Bounds()) {
			return true
		}
		if dx > 0 {
			b.Bounds.SetRight(p.Bounds().Left())
		} else {
			b.Bounds.X = p.Bounds().Right()
		}
		b.VX = 0
		return true
	})
}

// moveY moves the body vertically and recomputes its ground state.
func (s *PhysicsSystem) moveY(b *entity.Body, platforms PlatformSource) {
	prev := b.Bounds
	prevGround := b.Ground
	b.Airborne()

	dy := int(b.VY)
	if dy == 0 {
		if b.VY >= 0 {
			s.probeGround(b, platforms, prevGround)
		}
		return
	}
	b.Bounds.Y += dy

	if dy > 0 {
		if !s.land(b, prev, platforms) {
			s.probeGround(b, platforms, prevGround)
		}
	} else {
		s.hitCeiling(b, prev, platforms)
	}
}

// land snaps a falling body onto the highest platform it landed on and
// reports whether there was one.
func (s *PhysicsSystem) land(b *entity.Body, prev geom.Rect, platforms PlatformSource) bool {
	snap := s.config.Physics.SnapDistance

	var best entity.Platform
	platforms.EachPlatform(func(p entity.Platform) bool {
		pb := p.Bounds()
		if !p.Solid() || !b.Bounds.Intersects(pb) {
			return true
		}
		if prev.Bottom() > pb.Top() && b.Bounds.Bottom()-pb.Top() > snap {
			return true
		}
		if best == nil || pb.Top() < best.Bounds().Top() {
			best = p
		}
		return true
	})
	if best == nil {
		return false
	}

	impact := b.VY
	b.Land(best)
	s.restitute(b, best, impact)
	return true
}

// restitute reflects part of the impact speed off springy materials.
// Launchers are left alone: the world launches whoever stands on them.
func (s *PhysicsSystem) restitute(b *entity.Body, p entity.Platform, impact float64) {
	if _, ok := p.(entity.Launcher); ok {
		return
	}
	bounce := p.Props().Bounce
	if bounce <= 0 || impact < s.config.Physics.MinBounceSpeed {
		return
	}
	b.VY = -impact * bounce
	b.Airborne()
}

// hitCeiling stops a rising body under the lowest platform it hit and
// reports whether there was one.
func (s *PhysicsSystem) hitCeiling(b *entity.Body, prev geom.Rect, platforms PlatformSource) bool {
	snap := s.config.Physics.SnapDistance

	var best entity.Platform
	platforms.EachPlatform(func(p entity.Platform) bool {
		pb := p.Bounds()
		if !p.Solid() || !b.Bounds.Intersects(pb) {
			return true
		}
		if prev.Top() < pb.Bottom() && pb.Bottom()-b.Bounds.Top() > snap {
			return true
		}
		if best == nil || pb.Bottom() > best.Bounds().Bottom() {
			best = p
		}
		return true
	})
	if best == nil {
		return false
	}

	b.Bounds.Y = best.Bounds().Bottom()
	b.VY = 0
	return true
}

// probeGround grounds a body resting exactly on a solid platform top. Without
// it a body standing still would lose its ground every other frame while
// gravity builds up less than a pixel of fall.
func (s *PhysicsSystem) probeGround(b *entity.Body, platforms PlatformSource, prefer entity.EntityID) {
	var found entity.Platform
	platforms.EachPlatform(func(p entity.Platform) bool {
		pb := p.Bounds()
		if !p.Solid() || pb.Top() != b.Bounds.Bottom() || !b.Bounds.OverlapsX(pb) {
			return true
		}
		found = p
		return p.ID() != prefer
	})
	if found != nil {
		b.Land(found)
	}
}

// applyFriction decays horizontal velocity on the ground, scaled by the
// material under the body.
func (s *PhysicsSystem) applyFriction(b *entity.Body, platforms PlatformSource) {
	friction := 1.0
	if ground, ok := platforms.Platform(b.Ground); ok {
		friction = ground.Props().Friction
	}

	b.VX *= 1 - (1-s.config.Physics.GroundFriction)*friction
	if geom.AbsF(b.VX) < s.config.Physics.StopThreshold {
		b.VX = 0
	}
}
