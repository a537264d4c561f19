package system

import (
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/domain/geom"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// PlayerResult reports what happened to the player during one update.
type PlayerResult struct {
	Jumped   bool
	Attacked bool
	// Fell is set when the player dropped out of the world and took the fall
	// penalty. The caller owns lives and game over.
	Fell bool
}

// PlayerController applies input, physics and world bounds to the player.
type PlayerController struct {
	config  *config.PhysicsConfig
	physics *PhysicsSystem
}

// NewPlayerController creates a player controller
func NewPlayerController(cfg *config.PhysicsConfig, physics *PhysicsSystem) *PlayerController {
	return &PlayerController{config: cfg, physics: physics}
}

// Update advances the player by one frame: timers, physics, input, animation
// and the world boundary check. spawnX, spawnY is where a fall respawns.
func (c *PlayerController) Update(p *entity.Player, input InputState, platforms PlatformSource, spawnX, spawnY int) PlayerResult {
	var res PlayerResult

	p.TickTimers()
	c.physics.Update(&p.Body, platforms)

	p.Walk(input.Direction())
	if input.Jump {
		res.Jumped = p.Jump()
	}
	if input.Attack {
		res.Attacked = p.Attack()
	}

	p.SelectAnimation()
	res.Fell = c.checkBoundary(p, spawnX, spawnY)
	return res
}

// checkBoundary keeps the player inside the world horizontally and applies the
// fall penalty below it.
func (c *PlayerController) checkBoundary(p *entity.Player, spawnX, spawnY int) bool {
	world := c.config.World
	p.Bounds.X = geom.Clamp(p.Bounds.X, 0, max(0, world.Width-p.Bounds.W))

	if p.Bounds.Y <= world.Height+world.FallMargin {
		return false
	}
	p.FallPenalty(spawnX, spawnY)
	return true
}
