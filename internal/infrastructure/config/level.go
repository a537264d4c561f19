package config

// LevelConfig is the root of a level YAML file
type LevelConfig struct {
	// ID is the file name without extension; filled in by the loader
	ID        string             `yaml:"-"`
	Name      string             `yaml:"name"`
	EndX      int                `yaml:"end_x"`
	Spawn     PointConfig        `yaml:"spawn"`
	Enemy     EnemyOverrides     `yaml:"enemy,omitempty"`
	Platforms []PlatformConfig   `yaml:"platforms"`
	Coins     []CoinSpawnConfig  `yaml:"coins"`
	Enemies   []EnemySpawnConfig `yaml:"enemies"`
}

type PointConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// PlatformConfig describes one platform. Kind-specific fields are ignored by
// the other kinds; zero values fall back to physics.json.
type PlatformConfig struct {
	Kind string `yaml:"kind,omitempty"` // static (default), moving, disappearing, bounce
	Type string `yaml:"type"`           // surface material
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	W    int    `yaml:"w"`
	H    int    `yaml:"h"`

	To       *PointConfig `yaml:"to,omitempty"`       // moving
	Speed    float64      `yaml:"speed,omitempty"`    // moving
	Delay    int          `yaml:"delay,omitempty"`    // disappearing
	Respawn  int          `yaml:"respawn,omitempty"`  // disappearing
	Strength float64      `yaml:"strength,omitempty"` // bounce
}

type CoinSpawnConfig struct {
	X    int    `yaml:"x"`
	Y    int    `yaml:"y"`
	Type string `yaml:"type,omitempty"` // normal (default), powerup, bonus
}

// EnemyOverrides replaces entities.json values for the enemies of a level.
type EnemyOverrides struct {
	Health         int     `yaml:"health,omitempty"`
	Speed          float64 `yaml:"speed,omitempty"`
	DetectionRange float64 `yaml:"detection_range,omitempty"`
}

type EnemySpawnConfig struct {
	X              int     `yaml:"x"`
	Y              int     `yaml:"y"`
	Health         int     `yaml:"health,omitempty"`
	Speed          float64 `yaml:"speed,omitempty"`
	DetectionRange float64 `yaml:"detection_range,omitempty"`
}
