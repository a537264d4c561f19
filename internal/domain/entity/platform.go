package entity

import (
	"errors"
	"fmt"

	"github.com/younwookim/platformer/internal/domain/geom"
)

// ErrUnknownPlatformKind is returned for a platform kind with no variant.
var ErrUnknownPlatformKind = errors.New("unknown platform kind")

// PlatformKind selects the platform variant.
type PlatformKind int

const (
	PlatformStatic PlatformKind = iota
	PlatformMoving
	PlatformDisappearing
	PlatformBounce
)

// String returns the level-file name of the kind.
func (k PlatformKind) String() string {
	switch k {
	case PlatformStatic:
		return "static"
	case PlatformMoving:
		return "moving"
	case PlatformDisappearing:
		return "disappearing"
	case PlatformBounce:
		return "bounce"
	default:
		return "unknown"
	}
}

// ParsePlatformKind maps a level-file name to a kind. Empty means static.
func ParsePlatformKind(s string) (PlatformKind, error) {
	switch s {
	case "", "static":
		return PlatformStatic, nil
	case "moving":
		return PlatformMoving, nil
	case "disappearing":
		return PlatformDisappearing, nil
	case "bounce":
		return PlatformBounce, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPlatformKind, s)
}

// Platform is a collidable surface. The world updates every platform once per
// frame before any actor moves.
type Platform interface {
	ID() EntityID
	Kind() PlatformKind
	Bounds() geom.Rect
	Material() Material
	Props() SurfaceProps
	// Solid reports whether actors collide with the platform this frame.
	Solid() bool
	Update()
	// Delta is the displacement applied by the last Update.
	Delta() (dx, dy int)
}

// Triggerable platforms react to being stood upon.
type Triggerable interface {
	Platform
	Trigger()
}

// Launcher platforms throw a grounded actor upward.
type Launcher interface {
	Platform
	Activate()
	Active() bool
	Strength() float64
}

// platformBase carries the state every variant shares.
type platformBase struct {
	id       EntityID
	bounds   geom.Rect
	material Material

	// Frame counts updates; renderers use it for idle animation.
	Frame int
}

func (p *platformBase) ID() EntityID        { return p.id }
func (p *platformBase) Bounds() geom.Rect   { return p.bounds }
func (p *platformBase) Material() Material  { return p.material }
func (p *platformBase) Props() SurfaceProps { return p.material.Props() }
func (p *platformBase) Solid() bool         { return true }
func (p *platformBase) Delta() (int, int)   { return 0, 0 }

// StaticPlatform never moves.
type StaticPlatform struct {
	platformBase
}

// NewStaticPlatform creates a static platform.
func NewStaticPlatform(id EntityID, bounds geom.Rect, material Material) *StaticPlatform {
	return &StaticPlatform{platformBase{id: id, bounds: bounds, material: material}}
}

// Kind implements Platform.
func (p *StaticPlatform) Kind() PlatformKind { return PlatformStatic }

// Update implements Platform.
func (p *StaticPlatform) Update() { p.Frame++ }
