// Package ecs owns the entity arenas of the active level. Entities refer to
// each other by EntityID handles, never by pointer, so removing an entity
// cannot leave a dangling reference.
package ecs

import (
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/domain/geom"
)

// Registry holds every arena and the next entity ID
type Registry struct {
	nextID entity.EntityID

	Platforms *Store[entity.Platform]
	Enemies   *Store[*entity.Enemy]
	Coins     *Store[*entity.Coin]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		nextID:    1, // 0 is "nil"
		Platforms: NewStore[entity.Platform](),
		Enemies:   NewStore[*entity.Enemy](),
		Coins:     NewStore[*entity.Coin](),
	}
}

// NewEntity returns a new unique entity ID
func (r *Registry) NewEntity() entity.EntityID {
	id := r.nextID
	r.nextID++
	return id
}

// DestroyEntity removes the entity from whichever arena holds it
func (r *Registry) DestroyEntity(id entity.EntityID) {
	r.Platforms.Remove(id)
	r.Enemies.Remove(id)
	r.Coins.Remove(id)
}

// AddStatic creates a static platform
func (r *Registry) AddStatic(bounds geom.Rect, material entity.Material) *entity.StaticPlatform {
	p := entity.NewStaticPlatform(r.NewEntity(), bounds, material)
	r.Platforms.Add(p.ID(), p)
	return p
}

// AddMoving creates a moving platform
func (r *Registry) AddMoving(bounds geom.Rect, material entity.Material, to geom.Vec2, params entity.MovingParams) *entity.MovingPlatform {
	p := entity.NewMovingPlatform(r.NewEntity(), bounds, material, to, params)
	r.Platforms.Add(p.ID(), p)
	return p
}

// AddDisappearing creates a disappearing platform
func (r *Registry) AddDisappearing(bounds geom.Rect, material entity.Material, delay, respawn int) *entity.DisappearingPlatform {
	p := entity.NewDisappearingPlatform(r.NewEntity(), bounds, material, delay, respawn)
	r.Platforms.Add(p.ID(), p)
	return p
}

// AddBounce creates a bounce platform
func (r *Registry) AddBounce(bounds geom.Rect, material entity.Material, strength float64) *entity.BouncePlatform {
	p := entity.NewBouncePlatform(r.NewEntity(), bounds, material, strength)
	r.Platforms.Add(p.ID(), p)
	return p
}

// AddEnemy creates an enemy. Binding it to a home platform is left to the caller.
func (r *Registry) AddEnemy(x, y int, stats entity.EnemyStats) *entity.Enemy {
	e := entity.NewEnemy(r.NewEntity(), x, y, stats)
	r.Enemies.Add(e.ID, e)
	return e
}

// AddCoin creates a coin
func (r *Registry) AddCoin(x, y int, kind entity.CoinKind, stats entity.CoinStats) *entity.Coin {
	c := entity.NewCoin(r.NewEntity(), x, y, kind, stats)
	r.Coins.Add(c.ID, c)
	return c
}

// Platform looks up a platform by handle
func (r *Registry) Platform(id entity.EntityID) (entity.Platform, bool) {
	return r.Platforms.Get(id)
}

// EachPlatform visits platforms in creation order
func (r *Registry) EachPlatform(fn func(p entity.Platform) bool) {
	r.Platforms.Each(func(_ entity.EntityID, p entity.Platform) bool {
		return fn(p)
	})
}

// CountEnemies returns the number of live enemies
func (r *Registry) CountEnemies() int {
	return r.Enemies.Len()
}

// CountCoins returns the number of coins still in play
func (r *Registry) CountCoins() int {
	return r.Coins.Len()
}
