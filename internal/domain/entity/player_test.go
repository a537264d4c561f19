package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlayer() *Player {
	return NewPlayer(100, 100, DefaultPlayerStats())
}

func TestNewPlayer(t *testing.T) {
	p := newTestPlayer()

	require.NotNil(t, p)
	assert.Equal(t, 64, p.Bounds.W)
	assert.Equal(t, 96, p.Bounds.H)
	assert.Equal(t, 3, p.Health)
	assert.Equal(t, 3, p.MaxHealth)
	assert.True(t, p.FacingRight)
	assert.Equal(t, AnimIdle, p.Anim)
}

func TestAttackWindowActive(t *testing.T) {
	tests := []struct {
		timer int
		want  bool
	}{
		{30, true},
		{16, true},
		{15, false},
		{1, false},
		{0, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, AttackWindowActive(tt.timer, 30, 15), "timer=%d", tt.timer)
	}
}

func TestPlayer_AttackWindowLastsFifteenFrames(t *testing.T) {
	p := newTestPlayer()
	require.True(t, p.Attack())
	assert.False(t, p.Attack(), "cooldown blocks a second swing")

	active := 0
	for i := 0; i < p.Stats.AttackCooldown; i++ {
		if p.AttackActive() {
			active++
		}
		p.TickTimers()
	}

	assert.Equal(t, 15, active)
	assert.False(t, p.Attacking)
	assert.True(t, p.Attack(), "attack is available once the cooldown ends")
	assert.Equal(t, 2, p.Swing)
}

func TestPlayer_AttackRectInFront(t *testing.T) {
	p := newTestPlayer()

	r := p.AttackRect()
	assert.Equal(t, p.Bounds.Right(), r.Left())
	assert.Equal(t, 40, r.W)
	assert.Equal(t, 30, r.H)
	assert.Equal(t, p.Bounds.CenterY(), r.CenterY())

	p.Walk(-1)
	r = p.AttackRect()
	assert.Equal(t, p.Bounds.Left(), r.Right())
}

func TestPlayer_Jump(t *testing.T) {
	p := newTestPlayer()

	assert.False(t, p.Jump(), "cannot jump in the air")

	p.OnGround = true
	p.Ground = 1
	assert.True(t, p.Jump())
	assert.False(t, p.OnGround)
	assert.InDelta(t, -15.0, p.VY, 1e-9)
}

func TestPlayer_TakeDamage(t *testing.T) {
	p := newTestPlayer()

	dead := p.TakeDamage(1)
	assert.False(t, dead)
	assert.Equal(t, 2, p.Health)
	assert.True(t, p.Invulnerable())
	assert.InDelta(t, -8.0, p.VX, 1e-9, "knockback is opposite to facing")

	assert.False(t, p.TakeDamage(1), "ignored while invulnerable")
	assert.Equal(t, 2, p.Health)

	p.InvulnerableTimer = 0
	assert.True(t, p.TakeDamage(5))
	assert.Equal(t, 0, p.Health)

	p.InvulnerableTimer = 0
	assert.False(t, p.TakeDamage(1), "no further damage once dead")
	assert.Equal(t, 0, p.Health)
}

func TestPlayer_FallPenaltyIgnoresInvulnerability(t *testing.T) {
	p := newTestPlayer()
	p.InvulnerableTimer = 50
	p.VX, p.VY = 3, 12

	p.FallPenalty(100, 520)

	assert.Equal(t, 2, p.Health)
	assert.Equal(t, 100, p.Bounds.X)
	assert.Equal(t, 520, p.Bounds.Y)
	assert.Zero(t, p.VX)
	assert.Zero(t, p.VY)
}

func TestPlayer_Reset(t *testing.T) {
	p := newTestPlayer()
	p.Health = 1
	p.InvulnerableTimer = 10
	p.Attack()
	p.FacingRight = false

	p.Reset(5, 6)

	assert.True(t, p.FacingRight)
	assert.Equal(t, p.MaxHealth, p.Health)
	assert.False(t, p.Invulnerable())
	assert.False(t, p.Attacking)
	assert.Equal(t, 5, p.Bounds.X)
	assert.Equal(t, 6, p.Bounds.Y)
}

func TestPlayer_SelectAnimation(t *testing.T) {
	tests := []struct {
		name  string
		setup func(p *Player)
		want  AnimState
	}{
		{"idle", func(p *Player) {}, AnimIdle},
		{"walk", func(p *Player) { p.Walk(1) }, AnimWalk},
		{"rising", func(p *Player) { p.VY = -10 }, AnimJump},
		{"falling", func(p *Player) { p.VY = 5 }, AnimJump},
		{"slow vertical drift is not a jump", func(p *Player) { p.VY = 1.5 }, AnimIdle},
		{"attack wins", func(p *Player) { p.VY = -10; p.Attack() }, AnimAttack},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newTestPlayer()
			tt.setup(p)
			p.SelectAnimation()
			assert.Equal(t, tt.want, p.Anim)
		})
	}
}

func TestPlayer_AnimationLockHoldsAttack(t *testing.T) {
	p := newTestPlayer()
	p.Attack()
	p.SelectAnimation()
	require.Equal(t, AnimAttack, p.Anim)

	// Past the hit window but still locked.
	for i := 0; i < p.Stats.AttackWindow; i++ {
		p.TickTimers()
	}
	p.AnimLock = 1
	p.Walk(1)
	p.SelectAnimation()
	assert.Equal(t, AnimAttack, p.Anim)

	p.TickTimers()
	p.SelectAnimation()
	assert.Equal(t, AnimWalk, p.Anim)
}
