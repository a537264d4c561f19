package entity

import "github.com/younwookim/platformer/internal/domain/geom"

// EnemyState is the AI state of an enemy.
type EnemyState int

const (
	EnemyPatrol EnemyState = iota
	EnemyAlert
	EnemyAttack
	EnemyDamaged
)

// String returns the state name.
func (s EnemyState) String() string {
	switch s {
	case EnemyPatrol:
		return "patrol"
	case EnemyAlert:
		return "alert"
	case EnemyAttack:
		return "attack"
	case EnemyDamaged:
		return "damaged"
	default:
		return "unknown"
	}
}

// EnemyStats holds the tunable enemy values. Timers are in frames.
type EnemyStats struct {
	Width, Height  int
	Speed          float64
	MaxHealth      int
	Damage         int
	AttackRange    float64
	DetectionRange float64
	PatrolMargin   int
	TurnPause      int
	AlertFrames    int
	AttackFrames   int
	RetreatFrames  int // alert time after the player escapes an attack
	DamagedFrames  int
	Knockback      float64
	StuckFrames    int
	AttackWidth    int
	AttackHeight   int
}

// DefaultEnemyStats returns the standard enemy tuning.
func DefaultEnemyStats() EnemyStats {
	return EnemyStats{
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
	}
}

// Enemy is a patrolling foe bound to a home platform.
type Enemy struct {
	Body
	ID    EntityID
	Stats EnemyStats

	State     EnemyState
	Direction int // -1 or +1
	Home      EntityID

	PatrolLeft  int
	PatrolRight int

	PauseTimer  int
	StateTimer  int
	DamageTimer int
	StuckTimer  int
	LastX       int

	// LastSwing is the player swing that last hit this enemy.
	LastSwing int
}

// NewEnemy creates an enemy at the given top-left position, walking right.
func NewEnemy(id EntityID, x, y int, stats EnemyStats) *Enemy {
	return &Enemy{
		Body: Body{
			Bounds:      geom.NewRect(x, y, stats.Width, stats.Height),
			FacingRight: true,
			Health:      stats.MaxHealth,
			MaxHealth:   stats.MaxHealth,
		},
		ID:        id,
		Stats:     stats,
		State:     EnemyPatrol,
		Direction: 1,
		LastX:     x,
	}
}

// BindHome attaches the enemy to a platform: it is placed on top, its patrol
// bounds come from the platform, and it is pulled inside them.
func (e *Enemy) BindHome(p Platform) {
	e.Home = p.ID()
	e.Land(p)
	e.SetPatrolBounds(p.Bounds())
	e.Bounds.X = geom.Clamp(e.Bounds.X, e.PatrolLeft, max(e.PatrolLeft, e.PatrolRight-e.Bounds.W))
	e.LastX = e.Bounds.X
}

// SetPatrolBounds derives the patrol range from the home platform's extents.
func (e *Enemy) SetPatrolBounds(home geom.Rect) {
	e.PatrolLeft = home.Left() + e.Stats.PatrolMargin
	e.PatrolRight = home.Right() - e.Stats.PatrolMargin
}

// TurnAround reverses direction and pauses.
func (e *Enemy) TurnAround() {
	e.Direction = -e.Direction
	e.FacingRight = e.Direction > 0
	e.VX = 0
	e.PauseTimer = e.Stats.TurnPause
}

// Face turns the enemy toward x without pausing.
func (e *Enemy) Face(x float64) {
	if x > e.Center().X {
		e.Direction = 1
	} else if x < e.Center().X {
		e.Direction = -1
	}
	e.FacingRight = e.Direction > 0
}

// SetState switches AI state and loads its timer.
func (e *Enemy) SetState(s EnemyState, timer int) {
	e.State = s
	e.StateTimer = timer
}

// TakeDamage applies n damage and knocks the enemy back. It reports true only
// on the call that brings health to zero; hits on a dead enemy are ignored.
func (e *Enemy) TakeDamage(n int) bool {
	if !e.IsAlive() {
		return false
	}
	e.damage(n)
	e.State = EnemyDamaged
	e.DamageTimer = e.Stats.DamagedFrames
	e.VX = -float64(e.Facing()) * e.Stats.Knockback
	return e.Health <= 0
}

// AttackActive reports whether the enemy's hitbox is live.
func (e *Enemy) AttackActive() bool {
	return e.State == EnemyAttack
}

// AttackRect returns the hitbox at the facing edge.
func (e *Enemy) AttackRect() geom.Rect {
	return e.hitRect(e.Stats.AttackWidth, e.Stats.AttackHeight)
}
