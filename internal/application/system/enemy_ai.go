package system

import (
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/domain/geom"
)

// retreatFactor scales the attack range an enemy gives up an attack at.
const retreatFactor = 1.5

// damagedDamping is applied to horizontal velocity each frame while damaged.
const damagedDamping = 0.5

// EnemyAI drives the enemy state machine and moves enemies.
type EnemyAI struct {
	physics *PhysicsSystem
}

// NewEnemyAI creates an enemy AI driver
func NewEnemyAI(physics *PhysicsSystem) *EnemyAI {
	return &EnemyAI{physics: physics}
}

// FindHome returns the solid platform horizontally under the enemy's center
// whose top is nearest to its feet.
func FindHome(e *entity.Enemy, platforms PlatformSource) (entity.Platform, bool) {
	cx := e.Bounds.CenterX()
	bottom := e.Bounds.Bottom()

	var best entity.Platform
	bestGap := 0
	platforms.EachPlatform(func(p entity.Platform) bool {
		pb := p.Bounds()
		if !p.Solid() || cx < pb.Left() || cx >= pb.Right() {
			return true
		}
		gap := geom.Abs(bottom - pb.Top())
		if best == nil || gap < bestGap {
			best, bestGap = p, gap
		}
		return true
	})
	return best, best != nil
}

// Update advances one enemy by a frame. The player is only read.
func (a *EnemyAI) Update(e *entity.Enemy, player *entity.Player, platforms PlatformSource) {
	home, hasHome := platforms.Platform(e.Home)
	if hasHome {
		e.SetPatrolBounds(home.Bounds())
	}

	a.think(e, player)
	a.physics.Update(&e.Body, platforms)
	if hasHome {
		a.clampPatrol(e)
	}
	a.tickTimers(e)
	a.checkStuck(e)
	if hasHome {
		a.ensureOnPlatform(e, home)
	}
}

// think runs the state machine and sets the desired horizontal velocity.
func (a *EnemyAI) think(e *entity.Enemy, player *entity.Player) {
	target := player.Center()
	dist := e.Center().DistanceTo(target)

	switch e.State {
	case entity.EnemyPatrol:
		if dist < e.Stats.DetectionRange {
			e.SetState(entity.EnemyAlert, e.Stats.AlertFrames)
			e.VX = 0
			e.Face(target.X)
			return
		}
		if e.PauseTimer > 0 {
			e.VX = 0
			return
		}
		e.VX = e.Stats.Speed * float64(e.Direction)
		e.FacingRight = e.Direction > 0

	case entity.EnemyAlert:
		e.VX = 0
		e.Face(target.X)
		switch {
		case dist < e.Stats.AttackRange:
			e.SetState(entity.EnemyAttack, e.Stats.AttackFrames)
		case e.StateTimer <= 0:
			e.SetState(entity.EnemyPatrol, 0)
		}

	case entity.EnemyAttack:
		e.VX = 0
		e.Face(target.X)
		switch {
		case dist > e.Stats.AttackRange*retreatFactor:
			e.SetState(entity.EnemyAlert, e.Stats.RetreatFrames)
		case e.StateTimer <= 0:
			e.SetState(entity.EnemyPatrol, 0)
		}

	case entity.EnemyDamaged:
		e.VX *= damagedDamping
		if e.DamageTimer <= 0 {
			e.SetState(entity.EnemyPatrol, 0)
		}
	}
}

// clampPatrol keeps the enemy between its patrol bounds and turns it around
// when a patrol walk reaches one.
func (a *EnemyAI) clampPatrol(e *entity.Enemy) {
	left := e.PatrolLeft
	right := max(e.PatrolLeft+e.Bounds.W, e.PatrolRight)

	switch {
	case e.Bounds.Left() <= left:
		e.Bounds.X = left
		if e.State == entity.EnemyPatrol && e.Direction < 0 && e.PauseTimer == 0 {
			e.TurnAround()
		}
	case e.Bounds.Right() >= right:
		e.Bounds.SetRight(right)
		if e.State == entity.EnemyPatrol && e.Direction > 0 && e.PauseTimer == 0 {
			e.TurnAround()
		}
	}
}

func (a *EnemyAI) tickTimers(e *entity.Enemy) {
	if e.PauseTimer > 0 {
		e.PauseTimer--
	}
	if e.StateTimer > 0 {
		e.StateTimer--
	}
	if e.DamageTimer > 0 {
		e.DamageTimer--
	}
}

// checkStuck turns a patrolling enemy around when it has not made progress for
// StuckFrames frames.
func (a *EnemyAI) checkStuck(e *entity.Enemy) {
	defer func() { e.LastX = e.Bounds.X }()

	if e.State != entity.EnemyPatrol || e.PauseTimer > 0 || !e.OnGround {
		e.StuckTimer = 0
		return
	}
	if geom.Abs(e.Bounds.X-e.LastX) >= 1 {
		e.StuckTimer = 0
		return
	}

	e.StuckTimer++
	if e.StuckTimer >= e.Stats.StuckFrames {
		e.StuckTimer = 0
		e.TurnAround()
	}
}

// ensureOnPlatform puts an enemy that drifted off its solid home back on it.
func (a *EnemyAI) ensureOnPlatform(e *entity.Enemy, home entity.Platform) {
	if !home.Solid() {
		return
	}
	hb := home.Bounds()
	if !e.Bounds.OverlapsX(hb) {
		e.Bounds.SetCenterX(hb.CenterX())
		e.Land(home)
		return
	}
	if e.OnGround && e.Ground == home.ID() && geom.Abs(e.Bounds.Bottom()-hb.Top()) > entity.GroundTolerance {
		e.Land(home)
	}
}
