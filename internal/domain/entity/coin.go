package entity

import (
	"errors"
	"fmt"

	"github.com/younwookim/platformer/internal/domain/geom"
)

// ErrUnknownCoinKind is returned for a coin tag with no variant.
var ErrUnknownCoinKind = errors.New("unknown coin kind")

// CoinKind selects the coin variant.
type CoinKind int

const (
	CoinNormal CoinKind = iota
	CoinPowerUp
	CoinBonus
)

// String returns the level-file name of the kind.
func (k CoinKind) String() string {
	switch k {
	case CoinNormal:
		return "normal"
	case CoinPowerUp:
		return "powerup"
	case CoinBonus:
		return "bonus"
	default:
		return "unknown"
	}
}

// ParseCoinKind maps a level-file name to a kind. Empty means normal;
// "special" is accepted as an alias of powerup.
func ParseCoinKind(s string) (CoinKind, error) {
	switch s {
	case "", "normal":
		return CoinNormal, nil
	case "powerup", "special":
		return CoinPowerUp, nil
	case "bonus":
		return CoinBonus, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownCoinKind, s)
}

// CoinStats holds coin values and the bonus lifetime.
type CoinStats struct {
	Size              int
	BaseValue         int
	PowerUpMultiplier int
	BonusMultiplier   int
	BonusLifetime     int // frames
	UrgencyFrames     int // final part of the lifetime that flickers
}

// DefaultCoinStats returns the standard coin tuning.
func DefaultCoinStats() CoinStats {
	return CoinStats{
		Size:              32,
		BaseValue:         10,
		PowerUpMultiplier: 5,
		BonusMultiplier:   2,
		BonusLifetime:     600,
		UrgencyFrames:     180,
	}
}

// Coin is a collectible.
type Coin struct {
	ID        EntityID
	Kind      CoinKind
	Bounds    geom.Rect
	Value     int
	Collected bool

	Age      int
	Lifetime int // bonus only; zero means no expiry
	urgency  int
}

// NewCoin creates a coin at the given top-left position.
func NewCoin(id EntityID, x, y int, kind CoinKind, stats CoinStats) *Coin {
	c := &Coin{
		ID:     id,
		Kind:   kind,
		Bounds: geom.NewRect(x, y, stats.Size, stats.Size),
		Value:  stats.BaseValue,
	}
	switch kind {
	case CoinPowerUp:
		c.Value = stats.BaseValue * stats.PowerUpMultiplier
	case CoinBonus:
		c.Value = stats.BaseValue * stats.BonusMultiplier
		c.Lifetime = stats.BonusLifetime
		c.urgency = stats.UrgencyFrames
	}
	return c
}

// Collect marks the coin collected and returns its value. Later calls return 0.
func (c *Coin) Collect() int {
	if c.Collected {
		return 0
	}
	c.Collected = true
	return c.Value
}

// Update advances the coin one frame and reports whether a bonus coin just
// ran out of time.
func (c *Coin) Update() (expired bool) {
	if c.Collected {
		return false
	}
	c.Age++
	return c.Lifetime > 0 && c.Age >= c.Lifetime
}

// Remaining returns the frames left before expiry, or -1 for coins that never expire.
func (c *Coin) Remaining() int {
	if c.Lifetime == 0 {
		return -1
	}
	return max(0, c.Lifetime-c.Age)
}

// Urgent reports whether a bonus coin is in the last part of its lifetime.
func (c *Coin) Urgent() bool {
	r := c.Remaining()
	return r >= 0 && r <= c.urgency
}

// Visible drives the urgency flicker; renderers skip invisible frames.
func (c *Coin) Visible() bool {
	if !c.Urgent() {
		return true
	}
	return (c.Age/5)%2 == 0
}
