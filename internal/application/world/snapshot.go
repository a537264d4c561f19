package world

import (
	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/domain/geom"
)

// Snapshot is a read-only copy of everything the presentation layer draws.
// It shares no memory with the world.
type Snapshot struct {
	State     state.GameState
	Frame     int
	Level     int
	LevelName string
	EndX      int

	Score           int
	Lives           int
	CoinsCollected  int
	EnemiesDefeated int
	TimeRemaining   int
	BestScore       int
	Shake           int

	Player    PlayerView
	Platforms []PlatformView
	Enemies   []EnemyView
	Coins     []CoinView
}

type PlayerView struct {
	Bounds       geom.Rect
	VX, VY       float64
	OnGround     bool
	FacingRight  bool
	Health       int
	MaxHealth    int
	Invulnerable bool
	Anim         entity.AnimState
	Attacking    bool
	AttackRect   geom.Rect // valid while Attacking
}

type PlatformView struct {
	ID       entity.EntityID
	Kind     entity.PlatformKind
	Material entity.Material
	Bounds   geom.Rect
	Solid    bool
	Alpha    float64 // 1 unless a disappearing platform is fading
	Active   bool    // launcher recently fired
}

type EnemyView struct {
	ID          entity.EntityID
	Bounds      geom.Rect
	State       entity.EnemyState
	FacingRight bool
	Health      int
	MaxHealth   int
	Attacking   bool
	AttackRect  geom.Rect
}

type CoinView struct {
	ID        entity.EntityID
	Kind      entity.CoinKind
	Bounds    geom.Rect
	Value     int
	Visible   bool
	Urgent    bool
	Remaining int // frames before expiry, -1 for coins that never expire
}

// Snapshot copies the current world state.
func (w *World) Snapshot() Snapshot {
	reg := w.level.Registry
	p := w.player

	s := Snapshot{
		State:           w.state,
		Frame:           w.frame,
		Level:           w.levelIndex,
		LevelName:       w.level.Name,
		EndX:            w.level.EndX,
		Score:           w.score,
		Lives:           w.lives,
		CoinsCollected:  w.coinsCollected,
		EnemiesDefeated: w.enemiesDefeated,
		TimeRemaining:   w.timeRemaining,
		BestScore:       w.bestScore,
		Shake:           w.shake,
		Player: PlayerView{
			Bounds:       p.Bounds,
			VX:           p.VX,
			VY:           p.VY,
			OnGround:     p.OnGround,
			FacingRight:  p.FacingRight,
			Health:       p.Health,
			MaxHealth:    p.MaxHealth,
			Invulnerable: p.Invulnerable(),
			Anim:         p.Anim,
			Attacking:    p.AttackActive(),
			AttackRect:   p.AttackRect(),
		},
		Platforms: make([]PlatformView, 0, reg.Platforms.Len()),
		Enemies:   make([]EnemyView, 0, reg.Enemies.Len()),
		Coins:     make([]CoinView, 0, reg.Coins.Len()),
	}

	reg.EachPlatform(func(pl entity.Platform) bool {
		v := PlatformView{
			ID:       pl.ID(),
			Kind:     pl.Kind(),
			Material: pl.Material(),
			Bounds:   pl.Bounds(),
			Solid:    pl.Solid(),
			Alpha:    1,
		}
		if d, ok := pl.(*entity.DisappearingPlatform); ok {
			v.Alpha = d.Alpha()
		}
		if l, ok := pl.(entity.Launcher); ok {
			v.Active = l.Active()
		}
		s.Platforms = append(s.Platforms, v)
		return true
	})

	for _, e := range reg.Enemies.Values() {
		s.Enemies = append(s.Enemies, EnemyView{
			ID:          e.ID,
			Bounds:      e.Bounds,
			State:       e.State,
			FacingRight: e.FacingRight,
			Health:      e.Health,
			MaxHealth:   e.MaxHealth,
			Attacking:   e.AttackActive(),
			AttackRect:  e.AttackRect(),
		})
	}

	for _, c := range reg.Coins.Values() {
		s.Coins = append(s.Coins, CoinView{
			ID:        c.ID,
			Kind:      c.Kind,
			Bounds:    c.Bounds,
			Value:     c.Value,
			Visible:   c.Visible(),
			Urgent:    c.Urgent(),
			Remaining: c.Remaining(),
		})
	}

	return s
}
