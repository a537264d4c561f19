package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/domain/geom"
	"github.com/younwookim/platformer/internal/ecs"
)

func TestCombatSystem_CollectCoins(t *testing.T) {
	s := NewCombatSystem()
	reg := ecs.NewRegistry()
	player := entity.NewPlayer(100, 500, entity.DefaultPlayerStats())

	near := reg.AddCoin(120, 520, entity.CoinPowerUp, entity.DefaultCoinStats())
	far := reg.AddCoin(600, 520, entity.CoinNormal, entity.DefaultCoinStats())

	got := s.CollectCoins(player, reg.Coins)

	require.Len(t, got, 1)
	assert.Equal(t, near.ID, got[0].ID)
	assert.True(t, near.Collected)
	assert.Equal(t, 50, got[0].Value)
	assert.False(t, reg.Coins.Has(near.ID))
	assert.True(t, reg.Coins.Has(far.ID))

	assert.Empty(t, s.CollectCoins(player, reg.Coins), "collected coins are gone")
}

func TestCombatSystem_ResolveEnemyContact(t *testing.T) {
	tests := []struct {
		name         string
		invulnerable bool
		health       int
		wantHurt     bool
		wantDied     bool
		wantHealth   int
	}{
		{"touch hurts", false, 3, true, false, 2},
		{"last health dies", false, 1, true, true, 0},
		{"invulnerable is ignored", true, 3, false, false, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewCombatSystem()
			reg := ecs.NewRegistry()
			e := reg.AddEnemy(120, 500, entity.DefaultEnemyStats())
			player := entity.NewPlayer(100, 500, entity.DefaultPlayerStats())
			player.Health = tt.health
			if tt.invulnerable {
				player.InvulnerableTimer = 10
			}

			hit := s.ResolveEnemyContact(player, reg.Enemies)

			assert.Equal(t, tt.wantHurt, hit.Hurt)
			assert.Equal(t, tt.wantDied, hit.Died)
			assert.Equal(t, tt.wantHealth, player.Health)
			if tt.wantHurt {
				assert.Equal(t, e.ID, hit.By)
				assert.True(t, player.Invulnerable())
			}
		})
	}
}

func TestCombatSystem_EnemyAttackRectCounts(t *testing.T) {
	s := NewCombatSystem()
	reg := ecs.NewRegistry()
	e := reg.AddEnemy(100, 500, entity.DefaultEnemyStats())
	e.FacingRight = true

	// Just past the enemy's right edge: outside its body, inside its attack.
	player := entity.NewPlayer(e.Bounds.Right()+10, 500, entity.DefaultPlayerStats())

	assert.False(t, s.ResolveEnemyContact(player, reg.Enemies).Hurt)

	e.SetState(entity.EnemyAttack, 30)
	assert.True(t, s.ResolveEnemyContact(player, reg.Enemies).Hurt)
}

func TestCombatSystem_ResolveAttack(t *testing.T) {
	s := NewCombatSystem()
	reg := ecs.NewRegistry()
	player := entity.NewPlayer(100, 500, entity.DefaultPlayerStats())
	player.FacingRight = true

	target := reg.AddEnemy(player.Bounds.Right()+5, 500, entity.DefaultEnemyStats())
	behind := reg.AddEnemy(0, 500, entity.DefaultEnemyStats())

	assert.Empty(t, s.ResolveAttack(player, reg.Enemies), "no swing, no hit")

	require.True(t, player.Attack())
	hits := s.ResolveAttack(player, reg.Enemies)
	require.Len(t, hits, 1)
	assert.Equal(t, target.ID, hits[0].Enemy.ID)
	assert.False(t, hits[0].Killed)
	assert.Equal(t, 1, target.Health)
	assert.Equal(t, 2, behind.Health)

	assert.Empty(t, s.ResolveAttack(player, reg.Enemies), "one hit per swing")

	player.AttackTimer = 0
	require.True(t, player.Attack())
	hits = s.ResolveAttack(player, reg.Enemies)
	require.Len(t, hits, 1)
	assert.True(t, hits[0].Killed)
	assert.False(t, reg.Enemies.Has(target.ID))
	assert.Equal(t, 0, target.Health)
}

func TestCombatSystem_PlatformContact(t *testing.T) {
	t.Run("bounce launches", func(t *testing.T) {
		s := NewCombatSystem()
		reg := ecs.NewRegistry()
		pad := reg.AddBounce(geom.NewRect(0, 600, 200, 40), entity.MaterialCloud, 25)
		player := entity.NewPlayer(50, 0, entity.DefaultPlayerStats())
		player.Land(pad)

		c := s.ResolvePlatformContact(player, reg)

		assert.Equal(t, pad.ID(), c.Bounced)
		assert.Equal(t, 25.0, c.Strength)
		assert.Equal(t, -25.0, player.VY)
		assert.False(t, player.OnGround)
		assert.True(t, pad.Active())
	})

	t.Run("disappearing is triggered", func(t *testing.T) {
		s := NewCombatSystem()
		reg := ecs.NewRegistry()
		p := reg.AddDisappearing(geom.NewRect(0, 600, 200, 40), entity.MaterialNormal, 60, 300)
		player := entity.NewPlayer(50, 0, entity.DefaultPlayerStats())
		player.Land(p)

		s.ResolvePlatformContact(player, reg)

		assert.Equal(t, entity.DisappearTriggered, p.State)
	})

	t.Run("lava hurts once per invulnerability", func(t *testing.T) {
		s := NewCombatSystem()
		reg := ecs.NewRegistry()
		p := reg.AddStatic(geom.NewRect(0, 600, 200, 40), entity.MaterialLava)
		player := entity.NewPlayer(50, 0, entity.DefaultPlayerStats())
		player.Land(p)

		c := s.ResolvePlatformContact(player, reg)
		assert.True(t, c.Hurt)
		assert.False(t, c.Died)
		assert.Equal(t, 2, player.Health)

		c = s.ResolvePlatformContact(player, reg)
		assert.False(t, c.Hurt)
		assert.Equal(t, 2, player.Health)
	})

	t.Run("airborne does nothing", func(t *testing.T) {
		s := NewCombatSystem()
		reg := ecs.NewRegistry()
		reg.AddStatic(geom.NewRect(0, 600, 200, 40), entity.MaterialLava)
		player := entity.NewPlayer(50, 0, entity.DefaultPlayerStats())

		assert.Equal(t, PlatformContact{}, s.ResolvePlatformContact(player, reg))
	})
}

func TestCombatSystem_RemoveFallenEnemies(t *testing.T) {
	s := NewCombatSystem()
	reg := ecs.NewRegistry()
	reg.AddEnemy(0, 500, entity.DefaultEnemyStats())
	fallen := reg.AddEnemy(0, 900, entity.DefaultEnemyStats())

	assert.Equal(t, 1, s.RemoveFallenEnemies(reg.Enemies, 820))
	assert.False(t, reg.Enemies.Has(fallen.ID))
	assert.Equal(t, 1, reg.CountEnemies())
}
