package system

import (
	"errors"
	"fmt"

	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/domain/geom"
	"github.com/younwookim/platformer/internal/ecs"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// ErrMissingEndpoint is returned for a moving platform without a "to" point.
var ErrMissingEndpoint = errors.New("moving platform needs an endpoint")

// Level is a built level: its arenas plus the layout values the world needs.
type Level struct {
	ID     string
	Name   string
	EndX   int
	SpawnX int
	SpawnY int

	Registry *ecs.Registry
}

// PlayerStatsFrom converts the player section of entities.json
func PlayerStatsFrom(cfg config.PlayerConfig) entity.PlayerStats {
	return entity.PlayerStats{
		Width:                 cfg.Width,
		Height:                cfg.Height,
		Speed:                 cfg.Speed,
		JumpStrength:          cfg.JumpStrength,
		MaxHealth:             cfg.MaxHealth,
		AttackCooldown:        cfg.AttackCooldown,
		AttackWindow:          cfg.AttackWindow,
		AttackWidth:           cfg.AttackWidth,
		AttackHeight:          cfg.AttackHeight,
		AttackDamage:          cfg.AttackDamage,
		Knockback:             cfg.Knockback,
		InvulnerabilityFrames: cfg.InvulnerabilityFrames,
		AnimLockFrames:        cfg.AnimLockFrames,
	}
}

// EnemyStatsFrom converts the enemy section of entities.json
func EnemyStatsFrom(cfg config.EnemyConfig) entity.EnemyStats {
	return entity.EnemyStats{
		Width:          cfg.Width,
		Height:         cfg.Height,
		Speed:          cfg.Speed,
		MaxHealth:      cfg.MaxHealth,
		Damage:         cfg.Damage,
		AttackRange:    cfg.AttackRange,
		DetectionRange: cfg.DetectionRange,
		PatrolMargin:   cfg.PatrolMargin,
		TurnPause:      cfg.TurnPause,
		AlertFrames:    cfg.AlertFrames,
		AttackFrames:   cfg.AttackFrames,
		RetreatFrames:  cfg.RetreatFrames,
		DamagedFrames:  cfg.DamagedFrames,
		Knockback:      cfg.Knockback,
		StuckFrames:    cfg.StuckFrames,
		AttackWidth:    cfg.AttackWidth,
		AttackHeight:   cfg.AttackHeight,
	}
}

// CoinStatsFrom converts the coins section of entities.json
func CoinStatsFrom(cfg config.CoinsConfig) entity.CoinStats {
	return entity.CoinStats{
		Size:              cfg.Size,
		BaseValue:         cfg.BaseValue,
		PowerUpMultiplier: cfg.PowerUpMultiplier,
		BonusMultiplier:   cfg.BonusMultiplier,
		BonusLifetime:     cfg.BonusLifetime,
		UrgencyFrames:     cfg.UrgencyFrames,
	}
}

// MovingParamsFrom converts the moving platform section of physics.json
func MovingParamsFrom(cfg config.MovingConfig) entity.MovingParams {
	return entity.MovingParams{
		MaxSpeed:     cfg.MaxSpeed,
		Acceleration: cfg.Acceleration,
		SlowRadius:   cfg.SlowRadius,
		ArriveRadius: cfg.ArriveRadius,
		PauseFrames:  cfg.PauseFrames,
	}
}

// applyOverrides replaces the non-zero values of a level's enemy tuning.
func applyOverrides(stats entity.EnemyStats, health int, speed, detection float64) entity.EnemyStats {
	if health > 0 {
		stats.MaxHealth = health
	}
	if speed > 0 {
		stats.Speed = speed
	}
	if detection > 0 {
		stats.DetectionRange = detection
	}
	return stats
}

// LoadLevel converts a LevelConfig into a populated registry. Unknown kinds or
// materials and enemies with nothing to stand on are errors.
func LoadLevel(lvl *config.LevelConfig, physics *config.PhysicsConfig, entities *config.EntitiesConfig) (*Level, error) {
	reg := ecs.NewRegistry()

	for i, pc := range lvl.Platforms {
		if err := addPlatform(reg, pc, physics.Platforms); err != nil {
			return nil, fmt.Errorf("level %s platform %d: %w", lvl.ID, i, err)
		}
	}

	coinStats := CoinStatsFrom(entities.Coins)
	for i, cc := range lvl.Coins {
		kind, err := entity.ParseCoinKind(cc.Type)
		if err != nil {
			return nil, fmt.Errorf("level %s coin %d: %w", lvl.ID, i, err)
		}
		reg.AddCoin(cc.X, cc.Y, kind, coinStats)
	}

	base := EnemyStatsFrom(entities.Enemy)
	base = applyOverrides(base, lvl.Enemy.Health, lvl.Enemy.Speed, lvl.Enemy.DetectionRange)
	for i, ec := range lvl.Enemies {
		stats := applyOverrides(base, ec.Health, ec.Speed, ec.DetectionRange)
		e := reg.AddEnemy(ec.X, ec.Y, stats)
		home, ok := FindHome(e, reg)
		if !ok {
			return nil, fmt.Errorf("level %s enemy %d at (%d, %d): no platform below", lvl.ID, i, ec.X, ec.Y)
		}
		e.BindHome(home)
	}

	return &Level{
		ID:       lvl.ID,
		Name:     lvl.Name,
		EndX:     lvl.EndX,
		SpawnX:   lvl.Spawn.X,
		SpawnY:   lvl.Spawn.Y,
		Registry: reg,
	}, nil
}

func addPlatform(reg *ecs.Registry, pc config.PlatformConfig, defaults config.PlatformsConfig) error {
	material, err := entity.ParseMaterial(pc.Type)
	if err != nil {
		return err
	}
	kind, err := entity.ParsePlatformKind(pc.Kind)
	if err != nil {
		return err
	}
	bounds := geom.NewRect(pc.X, pc.Y, pc.W, pc.H)

	switch kind {
	case entity.PlatformMoving:
		if pc.To == nil {
			return ErrMissingEndpoint
		}
		params := MovingParamsFrom(defaults.Moving)
		if pc.Speed > 0 {
			params.MaxSpeed = pc.Speed
		}
		to := geom.Vec2{X: float64(pc.To.X), Y: float64(pc.To.Y)}
		reg.AddMoving(bounds, material, to, params)

	case entity.PlatformDisappearing:
		delay, respawn := defaults.Disappearing.Delay, defaults.Disappearing.Respawn
		if pc.Delay > 0 {
			delay = pc.Delay
		}
		if pc.Respawn > 0 {
			respawn = pc.Respawn
		}
		reg.AddDisappearing(bounds, material, delay, respawn)

	case entity.PlatformBounce:
		strength := defaults.Bounce.Strength
		if pc.Strength > 0 {
			strength = pc.Strength
		}
		reg.AddBounce(bounds, material, strength)

	default:
		reg.AddStatic(bounds, material)
	}
	return nil
}
