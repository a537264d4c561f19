package entity

import "github.com/younwookim/platformer/internal/domain/geom"

// AnimState is the player's animation selection. It is simulation state
// because the attack frames gate the hit window.
type AnimState int

const (
	AnimIdle AnimState = iota
	AnimWalk
	AnimJump
	AnimAttack
)

// String returns the animation name.
func (a AnimState) String() string {
	switch a {
	case AnimIdle:
		return "idle"
	case AnimWalk:
		return "walk"
	case AnimJump:
		return "jump"
	case AnimAttack:
		return "attack"
	default:
		return "unknown"
	}
}

// PlayerStats holds the tunable player values.
type PlayerStats struct {
	Width, Height         int
	Speed                 float64
	JumpStrength          float64 // positive; applied upward
	MaxHealth             int
	AttackCooldown        int // frames
	AttackWindow          int // frames at the start of the cooldown with a live hitbox
	AttackWidth           int
	AttackHeight          int
	AttackDamage          int
	Knockback             float64
	InvulnerabilityFrames int
	AnimLockFrames        int
}

// DefaultPlayerStats returns the standard player tuning.
func DefaultPlayerStats() PlayerStats {
	return PlayerStats{
		Width:                 64,
		Height:                96,
		Speed:                 5,
		JumpStrength:          15,
		MaxHealth:             3,
		AttackCooldown:        30,
		AttackWindow:          15,
		AttackWidth:           40,
		AttackHeight:          30,
		AttackDamage:          1,
		Knockback:             8,
		InvulnerabilityFrames: 120,
		AnimLockFrames:        15,
	}
}

// Player is the controllable hero.
type Player struct {
	Body
	Stats PlayerStats

	Moving            bool // horizontal input held this frame
	Attacking         bool
	AttackTimer       int // counts down from AttackCooldown
	Swing             int // increments per attack; enemies are hit once per swing
	InvulnerableTimer int

	Anim     AnimState
	AnimLock int
}

// NewPlayer creates a player at the given top-left position.
func NewPlayer(x, y int, stats PlayerStats) *Player {
	return &Player{
		Body: Body{
			Bounds:      geom.NewRect(x, y, stats.Width, stats.Height),
			FacingRight: true,
			Health:      stats.MaxHealth,
			MaxHealth:   stats.MaxHealth,
		},
		Stats: stats,
	}
}

// AttackWindowActive reports whether an attack timer lies in the live part of
// the cooldown: the first window frames after the attack starts.
func AttackWindowActive(timer, cooldown, window int) bool {
	return timer > 0 && timer > cooldown-window
}

// AttackActive reports whether the attack hitbox is live.
func (p *Player) AttackActive() bool {
	return p.Attacking && AttackWindowActive(p.AttackTimer, p.Stats.AttackCooldown, p.Stats.AttackWindow)
}

// AttackRect returns the hitbox in front of the player.
func (p *Player) AttackRect() geom.Rect {
	return p.hitRect(p.Stats.AttackWidth, p.Stats.AttackHeight)
}

// Invulnerable reports whether damage is currently ignored.
func (p *Player) Invulnerable() bool {
	return p.InvulnerableTimer > 0
}

// Walk sets horizontal velocity from a direction (-1, 0, +1).
func (p *Player) Walk(dir int) {
	p.Moving = dir != 0
	switch {
	case dir < 0:
		p.VX = -p.Stats.Speed
		p.FacingRight = false
	case dir > 0:
		p.VX = p.Stats.Speed
		p.FacingRight = true
	}
}

// Jump launches the player when grounded. Returns whether it jumped.
func (p *Player) Jump() bool {
	if !p.OnGround {
		return false
	}
	p.VY = -p.Stats.JumpStrength
	p.Airborne()
	return true
}

// Attack starts a swing when the cooldown has elapsed.
func (p *Player) Attack() bool {
	if p.AttackTimer > 0 {
		return false
	}
	p.Attacking = true
	p.AttackTimer = p.Stats.AttackCooldown
	p.Swing++
	return true
}

// Launch throws the player upward at the given speed.
func (p *Player) Launch(speed float64) {
	p.VY = -speed
	p.Airborne()
}

// TakeDamage applies n damage. It is a no-op returning false while
// invulnerable or already dead; otherwise it knocks the player back, starts
// invulnerability and reports whether health reached zero.
func (p *Player) TakeDamage(n int) bool {
	if p.Invulnerable() || !p.IsAlive() {
		return false
	}
	p.damage(n)
	p.VX = -float64(p.Facing()) * p.Stats.Knockback
	p.InvulnerableTimer = p.Stats.InvulnerabilityFrames
	return p.Health <= 0
}

// FallPenalty moves the player back to a respawn point and costs one health,
// ignoring invulnerability.
func (p *Player) FallPenalty(x, y int) {
	p.SetPos(x, y)
	p.VX, p.VY = 0, 0
	p.Airborne()
	p.damage(1)
}

// Reset restores the player to a fresh state at the given position.
func (p *Player) Reset(x, y int) {
	p.SetPos(x, y)
	p.VX, p.VY = 0, 0
	p.Airborne()
	p.FacingRight = true
	p.Moving = false
	p.Health = p.MaxHealth
	p.InvulnerableTimer = 0
	p.Attacking = false
	p.AttackTimer = 0
	p.Anim = AnimIdle
	p.AnimLock = 0
}

// TickTimers counts every player timer down by one frame.
func (p *Player) TickTimers() {
	if p.AttackTimer > 0 {
		p.AttackTimer--
		if p.AttackTimer == 0 {
			p.Attacking = false
		}
	}
	if p.AnimLock > 0 {
		p.AnimLock--
	}
	if p.InvulnerableTimer > 0 {
		p.InvulnerableTimer--
	}
}

// SelectAnimation picks the animation state for this frame. Entering the
// attack animation locks out other changes for AnimLockFrames.
func (p *Player) SelectAnimation() {
	next := AnimIdle
	switch {
	case p.AttackActive():
		next = AnimAttack
	case p.VY < -2 || p.VY > 2:
		next = AnimJump
	case p.Moving && geom.AbsF(p.VX) > 1:
		next = AnimWalk
	}

	if next == p.Anim {
		return
	}
	if next == AnimAttack {
		p.Anim = next
		p.AnimLock = p.Stats.AnimLockFrames
		return
	}
	if p.AnimLock == 0 {
		p.Anim = next
	}
}
