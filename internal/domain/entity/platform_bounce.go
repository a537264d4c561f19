package entity

import "github.com/younwookim/platformer/internal/domain/geom"

// Bounce platform defaults.
const (
	DefaultBounceStrength = 25.0
	DefaultBounceFrames   = 20
)

// BouncePlatform launches actors that stand on it. Activate opens a short
// window used by renderers to flash the surface; the launch itself is applied
// by the world.
type BouncePlatform struct {
	platformBase

	strength     float64
	activeFrames int
	Timer        int
}

// NewBouncePlatform creates a bounce platform. A non-positive strength uses
// DefaultBounceStrength.
func NewBouncePlatform(id EntityID, bounds geom.Rect, material Material, strength float64) *BouncePlatform {
	if strength <= 0 {
		strength = DefaultBounceStrength
	}
	return &BouncePlatform{
		platformBase: platformBase{id: id, bounds: bounds, material: material},
		strength:     strength,
		activeFrames: DefaultBounceFrames,
	}
}

// Kind implements Platform.
func (p *BouncePlatform) Kind() PlatformKind { return PlatformBounce }

// Activate starts the active window.
func (p *BouncePlatform) Activate() { p.Timer = p.activeFrames }

// Active reports whether the platform was activated recently.
func (p *BouncePlatform) Active() bool { return p.Timer > 0 }

// Strength is the upward speed given to a launched actor.
func (p *BouncePlatform) Strength() float64 { return p.strength }

// Update implements Platform.
func (p *BouncePlatform) Update() {
	p.Frame++
	if p.Timer > 0 {
		p.Timer--
	}
}
