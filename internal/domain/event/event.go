// Package event defines the notifications the world publishes each frame for
// presentation collaborators (sound, screen shake, HUD messages).
package event

import "github.com/younwookim/platformer/internal/domain/entity"

// Event is something that happened during a simulation frame.
type Event interface {
	isEvent()
}

// CoinCollected is published when the player picks up a coin.
type CoinCollected struct {
	CoinID entity.EntityID
	Kind   entity.CoinKind
	Value  int
	X, Y   int // coin center
}

func (CoinCollected) isEvent() {}

// CoinExpired is published when a bonus coin runs out of time.
type CoinExpired struct {
	CoinID entity.EntityID
}

func (CoinExpired) isEvent() {}

// EnemyDefeated is published when an enemy's health reaches zero.
type EnemyDefeated struct {
	EnemyID entity.EntityID
	Points  int
}

func (EnemyDefeated) isEvent() {}

// EnemyHit is published when a swing damages an enemy without killing it.
type EnemyHit struct {
	EnemyID entity.EntityID
	Health  int
}

func (EnemyHit) isEvent() {}

// DamageCause says what hurt the player.
type DamageCause int

const (
	CauseEnemy DamageCause = iota
	CauseHazard
	CauseFall
)

// PlayerDamaged is published whenever the player loses health.
type PlayerDamaged struct {
	Cause  DamageCause
	Health int
	Lives  int
}

func (PlayerDamaged) isEvent() {}

// PlayerJumped is published when a jump is honored.
type PlayerJumped struct{}

func (PlayerJumped) isEvent() {}

// PlayerAttacked is published when a swing starts.
type PlayerAttacked struct {
	Swing int
}

func (PlayerAttacked) isEvent() {}

// PlayerBounced is published when a bounce platform launches the player.
type PlayerBounced struct {
	PlatformID entity.EntityID
	Strength   float64
}

func (PlayerBounced) isEvent() {}

// LevelComplete is published when a level ends in success.
type LevelComplete struct {
	Level     int // zero-based index of the finished level
	AllCoins  bool
	Bonus     int
	TimeBonus int
}

func (LevelComplete) isEvent() {}

// GameOver is published on entering the game-over state.
type GameOver struct {
	Score int
}

func (GameOver) isEvent() {}

// GameComplete is published after the final level.
type GameComplete struct {
	Score int
}

func (GameComplete) isEvent() {}
