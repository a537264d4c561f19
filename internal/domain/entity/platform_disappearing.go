package entity

import "github.com/younwookim/platformer/internal/domain/geom"

// Disappearing platform defaults, in frames.
const (
	DefaultVanishDelay  = 60
	DefaultRespawnDelay = 300
)

// DisappearState is the phase of a disappearing platform.
type DisappearState int

const (
	DisappearStable DisappearState = iota
	DisappearTriggered
	DisappearVanished
)

// String returns the phase name.
func (s DisappearState) String() string {
	switch s {
	case DisappearStable:
		return "stable"
	case DisappearTriggered:
		return "triggered"
	case DisappearVanished:
		return "vanished"
	default:
		return "unknown"
	}
}

// DisappearingPlatform crumbles a fixed delay after being stood upon, stays
// gone for the respawn delay, then returns. It is not solid while vanished.
type DisappearingPlatform struct {
	platformBase

	State        DisappearState
	Timer        int
	Delay        int
	RespawnDelay int
}

// NewDisappearingPlatform creates a disappearing platform. Non-positive delays
// use the defaults.
func NewDisappearingPlatform(id EntityID, bounds geom.Rect, material Material, delay, respawn int) *DisappearingPlatform {
	if delay <= 0 {
		delay = DefaultVanishDelay
	}
	if respawn <= 0 {
		respawn = DefaultRespawnDelay
	}
	return &DisappearingPlatform{
		platformBase: platformBase{id: id, bounds: bounds, material: material},
		Delay:        delay,
		RespawnDelay: respawn,
	}
}

// Kind implements Platform.
func (p *DisappearingPlatform) Kind() PlatformKind { return PlatformDisappearing }

// Solid implements Platform.
func (p *DisappearingPlatform) Solid() bool { return p.State != DisappearVanished }

// Trigger starts the countdown. Only a stable platform can be triggered.
func (p *DisappearingPlatform) Trigger() {
	if p.State != DisappearStable {
		return
	}
	p.State = DisappearTriggered
	p.Timer = p.Delay
}

// Update implements Platform.
func (p *DisappearingPlatform) Update() {
	p.Frame++
	switch p.State {
	case DisappearTriggered:
		p.Timer--
		if p.Timer <= 0 {
			p.State = DisappearVanished
			p.Timer = p.RespawnDelay
		}
	case DisappearVanished:
		p.Timer--
		if p.Timer <= 0 {
			p.State = DisappearStable
			p.Timer = 0
		}
	}
}

// Alpha is the render opacity: fading while triggered, zero while vanished.
func (p *DisappearingPlatform) Alpha() float64 {
	switch p.State {
	case DisappearTriggered:
		return float64(p.Timer) / float64(p.Delay)
	case DisappearVanished:
		return 0
	default:
		return 1
	}
}
