package world

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/application/system"
	worldmock "github.com/younwookim/platformer/internal/application/world/mock"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/domain/event"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// testLevel is a flat 2000px floor with the player standing at x=100 and one
// coin far to the right.
func testLevel(id string) *config.LevelConfig {
	return &config.LevelConfig{
		ID:    id,
		Name:  id,
		EndX:  1800,
		Spawn: config.PointConfig{X: 100, Y: 504},
		Platforms: []config.PlatformConfig{
			{Type: "grass", X: 0, Y: 600, W: 2000, H: 40},
		},
		Coins: []config.CoinSpawnConfig{
			{X: 1500, Y: 400},
		},
	}
}

func newTestWorld(t *testing.T, levels []*config.LevelConfig, opts ...Option) *World {
	t.Helper()
	cfg := config.Default()
	cfg.Levels = levels

	opts = append([]Option{WithLogger(slog.New(slog.DiscardHandler))}, opts...)
	w, err := New(cfg, opts...)
	require.NoError(t, err)
	w.Start()
	return w
}

func step(w *World, n int, input system.InputState) {
	for range n {
		w.Step(input)
	}
}

func findEvent[T event.Event](events []event.Event) (T, bool) {
	for _, e := range events {
		if v, ok := e.(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func TestNew_NoLevels(t *testing.T) {
	_, err := New(config.Default())
	assert.ErrorIs(t, err, ErrNoLevels)
}

func TestNew_BadLevel(t *testing.T) {
	cfg := config.Default()
	lvl := testLevel("bad")
	lvl.Platforms[0].Type = "jelly"
	cfg.Levels = []*config.LevelConfig{lvl}

	_, err := New(cfg, WithLogger(slog.New(slog.DiscardHandler)))
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrUnknownMaterial)
}

func TestWorld_MenuAndStart(t *testing.T) {
	cfg := config.Default()
	cfg.Levels = []*config.LevelConfig{testLevel("a")}
	w, err := New(cfg, WithLogger(slog.New(slog.DiscardHandler)))
	require.NoError(t, err)

	assert.Equal(t, state.StateMenu, w.State())
	w.Step(system.InputState{Right: true})
	assert.Equal(t, 0, w.Frame(), "menu does not simulate")

	w.Start()
	assert.Equal(t, state.StatePlaying, w.State())
	assert.Equal(t, 3, w.Lives())
	assert.Equal(t, 300, w.TimeRemaining())

	w.Step(system.InputState{})
	assert.Equal(t, 1, w.Frame())
	assert.True(t, w.Player().OnGround)
}

func TestWorld_Pause(t *testing.T) {
	w := newTestWorld(t, []*config.LevelConfig{testLevel("a")})
	w.Step(system.InputState{})

	w.TogglePause()
	require.Equal(t, state.StatePaused, w.State())
	x := w.Player().Bounds.X
	step(w, 10, system.InputState{Right: true})
	assert.Equal(t, 1, w.Frame())
	assert.Equal(t, x, w.Player().Bounds.X)

	w.TogglePause()
	assert.Equal(t, state.StatePlaying, w.State())
	w.Step(system.InputState{Right: true})
	assert.Greater(t, w.Player().Bounds.X, x)
}

func TestWorld_CollectLastCoin(t *testing.T) {
	a := testLevel("a")
	a.Coins = []config.CoinSpawnConfig{{X: 120, Y: 540}}
	w := newTestWorld(t, []*config.LevelConfig{a, testLevel("b")})

	w.Step(system.InputState{})

	assert.Equal(t, state.StateLevelComplete, w.State())
	assert.Equal(t, 1, w.CoinsCollected())
	assert.Equal(t, 10+1000+300*10, w.Score())

	collected, ok := findEvent[event.CoinCollected](w.Events())
	require.True(t, ok)
	assert.Equal(t, 10, collected.Value)

	done, ok := findEvent[event.LevelComplete](w.Events())
	require.True(t, ok)
	assert.Equal(t, event.LevelComplete{Level: 0, AllCoins: true, Bonus: 1000, TimeBonus: 3000}, done)

	step(w, LevelClearFrames, system.InputState{})
	assert.Equal(t, state.StatePlaying, w.State())
	assert.Equal(t, 1, w.LevelIndex())
	assert.Equal(t, 300, w.TimeRemaining())
	assert.Equal(t, 10+1000+300*10, w.Score(), "score carries over")
}

func TestWorld_ReachEndOfLevel(t *testing.T) {
	w := newTestWorld(t, []*config.LevelConfig{testLevel("a"), testLevel("b")})
	w.Player().SetPos(1850, 504)

	w.Step(system.InputState{})

	assert.Equal(t, state.StateLevelComplete, w.State())
	done, ok := findEvent[event.LevelComplete](w.Events())
	require.True(t, ok)
	assert.False(t, done.AllCoins)
	assert.Equal(t, 3000, w.Score())
}

func TestWorld_NextLevelResetsPlayer(t *testing.T) {
	w := newTestWorld(t, []*config.LevelConfig{testLevel("a"), testLevel("b")})
	p := w.Player()
	p.Health = 1
	p.FacingRight = false
	p.SetPos(1850, 504)

	w.Step(system.InputState{})
	require.Equal(t, state.StateLevelComplete, w.State())
	step(w, LevelClearFrames, system.InputState{})
	require.Equal(t, 1, w.LevelIndex())

	assert.Same(t, p, w.Player(), "the player carries over between levels")
	assert.Equal(t, 100, p.Bounds.X)
	assert.Equal(t, p.MaxHealth, p.Health)
	assert.True(t, p.FacingRight)
	assert.Equal(t, 3, w.Lives())
}

func TestWorld_GameComplete(t *testing.T) {
	a := testLevel("a")
	a.Coins = []config.CoinSpawnConfig{{X: 120, Y: 540}}
	w := newTestWorld(t, []*config.LevelConfig{a})

	w.Step(system.InputState{})

	require.Equal(t, state.StateGameComplete, w.State())
	assert.Equal(t, 10+1000+5000, w.Score())
	assert.Equal(t, w.Score(), w.BestScore())
	_, ok := findEvent[event.GameComplete](w.Events())
	assert.True(t, ok)

	frame := w.Frame()
	step(w, 10, system.InputState{Right: true})
	assert.Equal(t, frame, w.Frame(), "terminal until reset")

	require.NoError(t, w.Reset())
	assert.Equal(t, state.StatePlaying, w.State())
	assert.Equal(t, 0, w.Score())
	assert.Equal(t, 3, w.Lives())
	assert.Equal(t, 10+1000+5000, w.BestScore(), "best score survives a reset")
}

func enemyLevel() *config.LevelConfig {
	lvl := testLevel("enemy")
	lvl.Enemies = []config.EnemySpawnConfig{{X: 140, Y: 510}}
	return lvl
}

func TestWorld_InvulnerablePlayerIgnoresEnemies(t *testing.T) {
	w := newTestWorld(t, []*config.LevelConfig{enemyLevel()})
	w.Player().InvulnerableTimer = 100

	w.Step(system.InputState{})

	assert.Equal(t, 3, w.Lives())
	assert.Equal(t, 3, w.Player().Health)
	_, hurt := findEvent[event.PlayerDamaged](w.Events())
	assert.False(t, hurt)
}

func TestWorld_EnemyContact(t *testing.T) {
	w := newTestWorld(t, []*config.LevelConfig{enemyLevel()})

	w.Step(system.InputState{})

	assert.Equal(t, 2, w.Lives())
	assert.Equal(t, 2, w.Player().Health)
	assert.Equal(t, 20, w.Shake())
	assert.True(t, w.Player().Invulnerable())

	dmg, ok := findEvent[event.PlayerDamaged](w.Events())
	require.True(t, ok)
	assert.Equal(t, event.PlayerDamaged{Cause: event.CauseEnemy, Health: 2, Lives: 2}, dmg)

	step(w, 5, system.InputState{})
	assert.Equal(t, 2, w.Lives(), "invulnerability protects the next frames")
}

func TestWorld_DeathIsGameOver(t *testing.T) {
	w := newTestWorld(t, []*config.LevelConfig{enemyLevel()})
	w.Player().Health = 1

	w.Step(system.InputState{})

	assert.Equal(t, state.StateGameOver, w.State())
	assert.Equal(t, 0, w.Player().Health)
	_, ok := findEvent[event.GameOver](w.Events())
	assert.True(t, ok)

	w.Player().TakeDamage(1)
	assert.Equal(t, 0, w.Player().Health, "health never goes negative")

	step(w, 10, system.InputState{})
	assert.Equal(t, state.StateGameOver, w.State())
}

func TestWorld_FallOffWorld(t *testing.T) {
	w := newTestWorld(t, []*config.LevelConfig{testLevel("a")})
	p := w.Player()
	p.Airborne()
	p.SetPos(400, 830)
	p.VX = 4

	w.Step(system.InputState{})

	assert.Equal(t, 2, w.Lives())
	assert.Equal(t, 2, p.Health)
	assert.Equal(t, 100, p.Bounds.X)
	assert.Equal(t, 504, p.Bounds.Y)
	assert.Equal(t, 0.0, p.VX)
	assert.Equal(t, 0.0, p.VY)
	assert.Equal(t, 15, w.Shake())

	dmg, ok := findEvent[event.PlayerDamaged](w.Events())
	require.True(t, ok)
	assert.Equal(t, event.CauseFall, dmg.Cause)
}

func TestWorld_AttackDefeatsEnemy(t *testing.T) {
	lvl := testLevel("attack")
	lvl.Enemies = []config.EnemySpawnConfig{{X: 180, Y: 510}}
	w := newTestWorld(t, []*config.LevelConfig{lvl})

	w.Step(system.InputState{Attack: true})
	hit, ok := findEvent[event.EnemyHit](w.Events())
	require.True(t, ok)
	assert.Equal(t, 1, hit.Health)

	for range 40 {
		w.Step(system.InputState{Attack: true})
		if w.EnemiesDefeated() > 0 {
			break
		}
	}

	assert.Equal(t, 1, w.EnemiesDefeated())
	assert.Equal(t, 50, w.Score())
	assert.Equal(t, 0, w.Level().Registry.CountEnemies())
	assert.Equal(t, 3, w.Lives())
}

func TestWorld_BouncePlatformLaunches(t *testing.T) {
	lvl := testLevel("bounce")
	lvl.Platforms = append(lvl.Platforms, config.PlatformConfig{
		Kind: "bounce", Type: "cloud", X: 50, Y: 600, W: 200, H: 20, Strength: 22,
	})
	lvl.Platforms[0].X = 300
	w := newTestWorld(t, []*config.LevelConfig{lvl})

	w.Step(system.InputState{})

	assert.Equal(t, -22.0, w.Player().VY)
	assert.False(t, w.Player().OnGround)
	bounced, ok := findEvent[event.PlayerBounced](w.Events())
	require.True(t, ok)
	assert.Equal(t, 22.0, bounced.Strength)
}

func TestWorld_LavaHurts(t *testing.T) {
	lvl := testLevel("lava")
	lvl.Platforms[0].Type = "lava"
	w := newTestWorld(t, []*config.LevelConfig{lvl})

	w.Step(system.InputState{})

	assert.Equal(t, 2, w.Lives())
	assert.Equal(t, 2, w.Player().Health)
	dmg, ok := findEvent[event.PlayerDamaged](w.Events())
	require.True(t, ok)
	assert.Equal(t, event.CauseHazard, dmg.Cause)
}

func TestWorld_DisappearingPlatformTriggers(t *testing.T) {
	lvl := testLevel("crumble")
	lvl.Platforms = []config.PlatformConfig{
		{Kind: "disappearing", Type: "wood", X: 0, Y: 600, W: 400, H: 20, Delay: 5, Respawn: 100},
	}
	w := newTestWorld(t, []*config.LevelConfig{lvl})

	w.Step(system.InputState{})
	d, ok := w.Level().Registry.Platforms.Values()[0].(*entity.DisappearingPlatform)
	require.True(t, ok)
	assert.Equal(t, entity.DisappearTriggered, d.State)

	step(w, 10, system.InputState{})
	assert.False(t, w.Player().OnGround, "the player drops once it vanishes")
}

func TestWorld_LevelClock(t *testing.T) {
	w := newTestWorld(t, []*config.LevelConfig{testLevel("a")})

	step(w, 59, system.InputState{})
	assert.Equal(t, 300, w.TimeRemaining())
	w.Step(system.InputState{})
	assert.Equal(t, 299, w.TimeRemaining())
}

func TestWorld_TimeUp(t *testing.T) {
	cfg := config.Default()
	cfg.Physics.Rules.LevelTime = 2
	cfg.Levels = []*config.LevelConfig{testLevel("a")}
	w, err := New(cfg, WithLogger(slog.New(slog.DiscardHandler)))
	require.NoError(t, err)
	w.Start()

	step(w, 119, system.InputState{})
	assert.Equal(t, state.StatePlaying, w.State())
	w.Step(system.InputState{})
	assert.Equal(t, state.StateGameOver, w.State())
	assert.Equal(t, 0, w.TimeRemaining())
}

func TestWorld_BonusCoinExpires(t *testing.T) {
	lvl := testLevel("bonus")
	lvl.Coins = append(lvl.Coins, config.CoinSpawnConfig{X: 1000, Y: 300, Type: "bonus"})
	w := newTestWorld(t, []*config.LevelConfig{lvl})

	step(w, 599, system.InputState{})
	assert.Equal(t, 2, w.Level().Registry.CountCoins())

	w.Step(system.InputState{})
	assert.Equal(t, 1, w.Level().Registry.CountCoins())
	_, ok := findEvent[event.CoinExpired](w.Events())
	assert.True(t, ok)
	assert.Equal(t, 0, w.Score(), "expired coins award nothing")
}

func TestWorld_EventSink(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := worldmock.NewMockEventSink(ctrl)

	a := testLevel("a")
	a.Coins = []config.CoinSpawnConfig{{X: 120, Y: 540}}

	gomock.InOrder(
		sink.EXPECT().Publish(gomock.AssignableToTypeOf(event.CoinCollected{})),
		sink.EXPECT().Publish(event.LevelComplete{Level: 0, AllCoins: true, Bonus: 1000, TimeBonus: 3000}),
	)

	w := newTestWorld(t, []*config.LevelConfig{a, testLevel("b")}, WithEventSink(sink))
	w.Step(system.InputState{})
}

func TestWorld_Snapshot(t *testing.T) {
	w := newTestWorld(t, []*config.LevelConfig{enemyLevel()})
	w.Player().InvulnerableTimer = 100
	w.Step(system.InputState{})

	snap := w.Snapshot()
	assert.Equal(t, state.StatePlaying, snap.State)
	assert.Equal(t, "enemy", snap.LevelName)
	assert.Equal(t, 1800, snap.EndX)
	assert.Len(t, snap.Platforms, 1)
	assert.Len(t, snap.Enemies, 1)
	assert.Len(t, snap.Coins, 1)
	assert.Equal(t, w.Player().Bounds, snap.Player.Bounds)
	assert.True(t, snap.Player.Invulnerable)
	assert.Equal(t, -1, snap.Coins[0].Remaining)
	assert.Equal(t, 1.0, snap.Platforms[0].Alpha)

	w.Player().SetPos(0, 0)
	assert.NotEqual(t, w.Player().Bounds, snap.Player.Bounds, "snapshots are copies")
}

func TestWorld_ReplaceLevel(t *testing.T) {
	w := newTestWorld(t, []*config.LevelConfig{testLevel("a")})

	assert.ErrorIs(t, w.ReplaceLevel(testLevel("missing")), ErrUnknownLevel)

	changed := testLevel("a")
	changed.Name = "changed"
	require.NoError(t, w.ReplaceLevel(changed))
	assert.Equal(t, "a", w.Level().Name, "the running level is untouched")

	require.NoError(t, w.Reset())
	assert.Equal(t, "changed", w.Level().Name)
}

func TestWorld_LoadLevelOutOfRange(t *testing.T) {
	w := newTestWorld(t, []*config.LevelConfig{testLevel("a")})
	assert.ErrorIs(t, w.LoadLevel(3), ErrUnknownLevel)
	assert.ErrorIs(t, w.LoadLevel(-1), ErrUnknownLevel)
}

func TestWorld_ShippedLevelsHoldInvariants(t *testing.T) {
	cfg, err := config.NewLoader("../../../cmd/game/configs").LoadAll()
	require.NoError(t, err)
	w, err := New(cfg, WithLogger(slog.New(slog.DiscardHandler)))
	require.NoError(t, err)
	w.Start()

	inputs := []system.InputState{
		{Right: true},
		{Right: true, Jump: true},
		{Right: true, Attack: true},
		{Left: true},
	}
	for i := range 3000 {
		w.Step(inputs[(i/45)%len(inputs)])

		p := w.Player()
		require.GreaterOrEqual(t, p.Health, 0)
		require.LessOrEqual(t, p.Health, p.MaxHealth)
		if p.OnGround {
			ground, ok := w.Level().Registry.Platform(p.Ground)
			require.True(t, ok)
			require.LessOrEqual(t, abs(p.Bounds.Bottom()-ground.Bounds().Top()), entity.GroundTolerance)
		}
		if w.State().Terminal() {
			break
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
