package config

// EntitiesConfig is the root config for entities.json
type EntitiesConfig struct {
	Player PlayerConfig `json:"player"`
	Enemy  EnemyConfig  `json:"enemy"`
	Coins  CoinsConfig  `json:"coins"`
}

type PlayerConfig struct {
	Width                 int     `json:"width"`
	Height                int     `json:"height"`
	Speed                 float64 `json:"speed"`
	JumpStrength          float64 `json:"jumpStrength"`
	MaxHealth             int     `json:"maxHealth"`
	AttackCooldown        int     `json:"attackCooldown"`
	AttackWindow          int     `json:"attackWindow"`
	AttackWidth           int     `json:"attackWidth"`
	AttackHeight          int     `json:"attackHeight"`
	AttackDamage          int     `json:"attackDamage"`
	Knockback             float64 `json:"knockback"`
	InvulnerabilityFrames int     `json:"invulnerabilityFrames"`
	AnimLockFrames        int     `json:"animLockFrames"`
}

type EnemyConfig struct {
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	Speed          float64 `json:"speed"`
	MaxHealth      int     `json:"maxHealth"`
	Damage         int     `json:"damage"`
	AttackRange    float64 `json:"attackRange"`
	DetectionRange float64 `json:"detectionRange"`
	PatrolMargin   int     `json:"patrolMargin"`
	TurnPause      int     `json:"turnPause"`
	AlertFrames    int     `json:"alertFrames"`
	AttackFrames   int     `json:"attackFrames"`
	RetreatFrames  int     `json:"retreatFrames"`
	DamagedFrames  int     `json:"damagedFrames"`
	Knockback      float64 `json:"knockback"`
	StuckFrames    int     `json:"stuckFrames"`
	AttackWidth    int     `json:"attackWidth"`
	AttackHeight   int     `json:"attackHeight"`
}

type CoinsConfig struct {
	Size              int `json:"size"`
	BaseValue         int `json:"baseValue"`
	PowerUpMultiplier int `json:"powerUpMultiplier"`
	BonusMultiplier   int `json:"bonusMultiplier"`
	BonusLifetime     int `json:"bonusLifetime"`
	UrgencyFrames     int `json:"urgencyFrames"`
}
