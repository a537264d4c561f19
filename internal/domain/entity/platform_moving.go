package entity

import (
	"math"

	"github.com/younwookim/platformer/internal/domain/geom"
)

// MovingParams tunes the velocity curve of a moving platform.
type MovingParams struct {
	MaxSpeed     float64
	Acceleration float64 // lerp factor toward the target velocity
	SlowRadius   float64 // start decelerating within this distance of the endpoint
	ArriveRadius float64 // snap to the endpoint within this distance
	PauseFrames  int
}

// DefaultMovingParams returns the standard moving platform tuning.
func DefaultMovingParams() MovingParams {
	return MovingParams{
		MaxSpeed:     2,
		Acceleration: 0.1,
		SlowRadius:   50,
		ArriveRadius: 10,
		PauseFrames:  60,
	}
}

// MovingPlatform travels back and forth between two endpoints (top-left
// positions). Velocity eases toward a target each frame and the platform rests
// at each endpoint before reversing.
type MovingPlatform struct {
	platformBase

	From, To   geom.Vec2
	Direction  int // +1 toward To, -1 toward From
	PauseTimer int

	params MovingParams
	pos    geom.Vec2
	vel    geom.Vec2
	axis   geom.Vec2
	dx, dy int
}

// NewMovingPlatform creates a platform starting at bounds' position and
// travelling toward to.
func NewMovingPlatform(id EntityID, bounds geom.Rect, material Material, to geom.Vec2, params MovingParams) *MovingPlatform {
	from := geom.Vec2{X: float64(bounds.X), Y: float64(bounds.Y)}
	return &MovingPlatform{
		platformBase: platformBase{id: id, bounds: bounds, material: material},
		From:         from,
		To:           to,
		Direction:    1,
		params:       params,
		pos:          from,
		axis:         to.Sub(from).Normalize(),
	}
}

// Kind implements Platform.
func (p *MovingPlatform) Kind() PlatformKind { return PlatformMoving }


// Delta implements Platform.
func (p *MovingPlatform) Delta() (int, int) { return p.dx, p.dy }

func (p *MovingPlatform) target() geom.Vec2 {
	if p.Direction > 0 {
		return p.To
	}
	return p.From
}

// Update implements Platform.
func (p *MovingPlatform) Update() {
	p.Frame++
	p.dx, p.dy = 0, 0

	if p.PauseTimer > 0 {
		p.PauseTimer--
		return
	}

	target := p.target()
	dist := p.pos.DistanceTo(target)
	want := p.axis.Scale(p.params.MaxSpeed * float64(p.Direction))

	var factor float64
	switch {
	case dist < p.params.SlowRadius:
		want = want.Scale(dist / p.params.SlowRadius)
		factor = p.params.Acceleration * 0.5
	case p.vel.Len() < p.params.MaxSpeed*0.9:
		factor = p.params.Acceleration
	default:
		factor = p.params.Acceleration * 0.2
	}

	p.vel = p.vel.Lerp(want, factor)
	p.pos = p.pos.Add(p.vel)

	if p.pos.DistanceTo(target) < p.params.ArriveRadius {
		p.pos = target
		p.vel = geom.Vec2{}
		p.Direction = -p.Direction
		p.PauseTimer = p.params.PauseFrames
	}

	old := p.bounds
	p.bounds.X = int(math.Round(p.pos.X))
	p.bounds.Y = int(math.Round(p.pos.Y))
	p.dx = p.bounds.X - old.X
	p.dy = p.bounds.Y - old.Y
}
