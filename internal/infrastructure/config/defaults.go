package config

// DefaultPhysics returns the values shipped in physics.json.
func DefaultPhysics() *PhysicsConfig {
	return &PhysicsConfig{
		Display: DisplayConfig{ScreenWidth: 1280, ScreenHeight: 720, Scale: 1, Framerate: 60},
		World:   WorldConfig{Width: 5120, Height: 720, FallMargin: 100},
		Physics: PhysicsSettings{
			Gravity:        0.8,
			MaxFallSpeed:   12,
			SnapDistance:   10,
			GroundFriction: 0.8,
			StopThreshold:  0.1,
			MinBounceSpeed: 4,
		},
		Platforms: PlatformsConfig{
			Moving: MovingConfig{
				MaxSpeed:     2,
				Acceleration: 0.1,
				SlowRadius:   50,
				ArriveRadius: 10,
				PauseFrames:  60,
			},
			Disappearing: DisappearingConfig{Delay: 60, Respawn: 300},
			Bounce:       BounceConfig{Strength: 25},
		},
		Rules: RulesConfig{
			InitialLives:       3,
			LevelTime:          300,
			FramesPerSecond:    60,
			EnemyDefeatScore:   50,
			AllCoinsBonus:      1000,
			TimeBonusPerSecond: 10,
			CompletionBonus:    5000,
		},
		Feedback: FeedbackConfig{HitShakeFrames: 20, FallShakeFrames: 15},
		Levels:   []string{"level1", "level2", "level3"},
	}
}

// DefaultEntities returns the values shipped in entities.json.
func DefaultEntities() *EntitiesConfig {
	return &EntitiesConfig{
		Player: PlayerConfig{
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
		},
		Enemy: EnemyConfig{
			Width:          60,
			Height:         90,
			Speed:          2,
			MaxHealth:      2,
			Damage:         1,
			AttackRange:    60,
			DetectionRange: 120,
			PatrolMargin:   20,
			TurnPause:      30,
			AlertFrames:    60,
			AttackFrames:   30,
			RetreatFrames:  30,
			DamagedFrames:  30,
			Knockback:      3,
			StuckFrames:    60,
			AttackWidth:    35,
			AttackHeight:   25,
		},
		Coins: CoinsConfig{
			Size:              32,
			BaseValue:         10,
			PowerUpMultiplier: 5,
			BonusMultiplier:   2,
			BonusLifetime:     600,
			UrgencyFrames:     180,
		},
	}
}

// Default returns the full default configuration without levels.
func Default() *GameConfig {
	return &GameConfig{
		Physics:  DefaultPhysics(),
		Entities: DefaultEntities(),
	}
}
