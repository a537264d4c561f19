package system

import (
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/ecs"
)

// CombatSystem resolves the player's contacts with platforms, coins and
// enemies. It mutates entities and arenas; scoring is left to the caller.
type CombatSystem struct{}

// NewCombatSystem creates a new combat system
func NewCombatSystem() *CombatSystem {
	return &CombatSystem{}
}

// PlatformContact is what the platform under the player did this frame.
type PlatformContact struct {
	Bounced  entity.EntityID // launcher that threw the player, if any
	Strength float64

	Hurt bool // hazard damage landed
	Died bool
}

// Hit is the outcome of damage dealt to the player.
type Hit struct {
	Hurt bool
	Died bool
	By   entity.EntityID
}

// AttackHit records a swing landing on an enemy.
type AttackHit struct {
	Enemy  *entity.Enemy
	Killed bool
}

// ResolvePlatformContact applies the behaviour of the platform the player is
// standing on: disappearing platforms start their countdown, launchers throw
// the player up and damaging surfaces hurt.
func (s *CombatSystem) ResolvePlatformContact(p *entity.Player, platforms PlatformSource) PlatformContact {
	var c PlatformContact
	if !p.OnGround {
		return c
	}
	ground, ok := platforms.Platform(p.Ground)
	if !ok {
		return c
	}

	if t, ok := ground.(entity.Triggerable); ok {
		t.Trigger()
	}
	if l, ok := ground.(entity.Launcher); ok {
		l.Activate()
		p.Launch(l.Strength())
		c.Bounced = ground.ID()
		c.Strength = l.Strength()
	}
	if dmg := ground.Props().Damage; dmg > 0 {
		c.Hurt, c.Died = hurtPlayer(p, dmg)
	}
	return c
}

// CollectCoins collects and removes every coin the player overlaps.
func (s *CombatSystem) CollectCoins(p *entity.Player, coins *ecs.Store[*entity.Coin]) []*entity.Coin {
	var collected []*entity.Coin
	for _, c := range coins.Values() {
		if c.Collected || !p.Bounds.Intersects(c.Bounds) {
			continue
		}
		c.Collect()
		coins.Remove(c.ID)
		collected = append(collected, c)
	}
	return collected
}

// ResolveEnemyContact damages the player when it touches an enemy body or a
// live enemy attack. Nothing happens while the player is invulnerable.
func (s *CombatSystem) ResolveEnemyContact(p *entity.Player, enemies *ecs.Store[*entity.Enemy]) Hit {
	if p.Invulnerable() {
		return Hit{}
	}

	var hit Hit
	enemies.Each(func(id entity.EntityID, e *entity.Enemy) bool {
		touching := p.Bounds.Intersects(e.Bounds) ||
			(e.AttackActive() && p.Bounds.Intersects(e.AttackRect()))
		if !touching {
			return true
		}
		hit.Hurt, hit.Died = hurtPlayer(p, e.Stats.Damage)
		hit.By = id
		return false
	})
	return hit
}

// ResolveAttack damages every enemy inside the player's live hitbox. Each
// swing hits an enemy at most once; defeated enemies are removed.
func (s *CombatSystem) ResolveAttack(p *entity.Player, enemies *ecs.Store[*entity.Enemy]) []AttackHit {
	if !p.AttackActive() {
		return nil
	}
	rect := p.AttackRect()

	var hits []AttackHit
	for _, e := range enemies.Values() {
		if e.LastSwing == p.Swing || !rect.Intersects(e.Bounds) {
			continue
		}
		e.LastSwing = p.Swing
		killed := e.TakeDamage(p.Stats.AttackDamage)
		if killed {
			enemies.Remove(e.ID)
		}
		hits = append(hits, AttackHit{Enemy: e, Killed: killed})
	}
	return hits
}

// RemoveFallenEnemies drops enemies that fell below the given y and returns
// how many were removed.
func (s *CombatSystem) RemoveFallenEnemies(enemies *ecs.Store[*entity.Enemy], limit int) int {
	removed := 0
	for _, e := range enemies.Values() {
		if e.Bounds.Y > limit {
			enemies.Remove(e.ID)
			removed++
		}
	}
	return removed
}

// hurtPlayer applies damage and reports whether it landed and whether it
// killed the player.
func hurtPlayer(p *entity.Player, n int) (hurt, died bool) {
	if p.Invulnerable() || !p.IsAlive() {
		return false, false
	}
	return true, p.TakeDamage(n)
}
