package config

// PhysicsConfig is the root config for physics.json
type PhysicsConfig struct {
	Display   DisplayConfig   `json:"display"`
	World     WorldConfig     `json:"world"`
	Physics   PhysicsSettings `json:"physics"`
	Platforms PlatformsConfig `json:"platforms"`
	Rules     RulesConfig     `json:"rules"`
	Feedback  FeedbackConfig  `json:"feedback"`
	// Levels lists level file names (without extension) in play order
	Levels []string `json:"levels"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

type WorldConfig struct {
	Width      int `json:"width"`
	Height     int `json:"height"`
	FallMargin int `json:"fallMargin"` // pixels below Height before a fall counts
}

type PhysicsSettings struct {
	Gravity        float64 `json:"gravity"`        // px/frame²
	MaxFallSpeed   float64 `json:"maxFallSpeed"`   // px/frame
	SnapDistance   int     `json:"snapDistance"`   // landing/ceiling tolerance
	GroundFriction float64 `json:"groundFriction"` // VX multiplier on full-friction ground
	StopThreshold  float64 `json:"stopThreshold"`
	MinBounceSpeed float64 `json:"minBounceSpeed"` // impact speed needed for restitution
}

type PlatformsConfig struct {
	Moving       MovingConfig       `json:"moving"`
	Disappearing DisappearingConfig `json:"disappearing"`
	Bounce       BounceConfig       `json:"bounce"`
}

type MovingConfig struct {
	MaxSpeed     float64 `json:"maxSpeed"`
	Acceleration float64 `json:"acceleration"`
	SlowRadius   float64 `json:"slowRadius"`
	ArriveRadius float64 `json:"arriveRadius"`
	PauseFrames  int     `json:"pauseFrames"`
}

type DisappearingConfig struct {
	Delay   int `json:"delay"`
	Respawn int `json:"respawn"`
}

type BounceConfig struct {
	Strength float64 `json:"strength"`
}

type RulesConfig struct {
	InitialLives       int `json:"initialLives"`
	LevelTime          int `json:"levelTime"`      // seconds
	FramesPerSecond    int `json:"framesPerSecond"` // frames per level-clock second
	EnemyDefeatScore   int `json:"enemyDefeatScore"`
	AllCoinsBonus      int `json:"allCoinsBonus"`
	TimeBonusPerSecond int `json:"timeBonusPerSecond"`
	CompletionBonus    int `json:"completionBonus"`
}

type FeedbackConfig struct {
	HitShakeFrames  int `json:"hitShakeFrames"`
	FallShakeFrames int `json:"fallShakeFrames"`
}
