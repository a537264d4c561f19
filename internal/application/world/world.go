// Package world owns the active level and advances the simulation one frame
// at a time: platforms, coins, player, enemies, collisions and then the
// win/lose rules, always in that order.
package world

//go:generate mockgen -destination=mock/mock_event_sink.go -package=worldmock github.com/younwookim/platformer/internal/application/world EventSink

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/domain/event"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// ErrNoLevels is returned when the configuration lists no levels.
var ErrNoLevels = errors.New("no levels configured")

// ErrUnknownLevel is returned for a level index or id the world does not have.
var ErrUnknownLevel = errors.New("unknown level")

// EventSink receives every event as it is published.
type EventSink interface {
	Publish(e event.Event)
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(w *World) { w.logger = l }
}

// WithEventSink forwards events to s in addition to Events().
func WithEventSink(s EventSink) Option {
	return func(w *World) { w.sink = s }
}

// World is the level orchestrator. It is not safe for concurrent use; the
// game loop is its only caller.
type World struct {
	physicsCfg *config.PhysicsConfig
	entityCfg  *config.EntitiesConfig
	levels     []*config.LevelConfig

	logger *slog.Logger
	sink   EventSink

	physics *system.PhysicsSystem
	control *system.PlayerController
	ai      *system.EnemyAI
	combat  *system.CombatSystem

	level      *system.Level
	levelIndex int
	player     *entity.Player

	state           state.GameState
	frame           int
	clock           int
	score           int
	lives           int
	coinsCollected  int
	enemiesDefeated int
	timeRemaining   int
	bestScore       int
	shake           int
	clearTimer      int

	events []event.Event
}

// New creates a world on the first level, waiting in the menu state.
func New(cfg *config.GameConfig, opts ...Option) (*World, error) {
	if len(cfg.Levels) == 0 {
		return nil, ErrNoLevels
	}

	physics := system.NewPhysicsSystem(cfg.Physics)
	w := &World{
		physicsCfg: cfg.Physics,
		entityCfg:  cfg.Entities,
		levels:     append([]*config.LevelConfig(nil), cfg.Levels...),
		logger:     slog.Default(),
		physics:    physics,
		control:    system.NewPlayerController(cfg.Physics, physics),
		ai:         system.NewEnemyAI(physics),
		combat:     system.NewCombatSystem(),
		state:      state.StateMenu,
	}
	for _, opt := range opts {
		opt(w)
	}

	if err := w.newGame(); err != nil {
		return nil, err
	}
	return w, nil
}

// newGame resets counters and builds the first level.
func (w *World) newGame() error {
	w.score = 0
	w.lives = w.physicsCfg.Rules.InitialLives
	w.coinsCollected = 0
	w.enemiesDefeated = 0
	w.frame = 0
	w.shake = 0
	w.clearTimer = 0
	w.events = w.events[:0]
	return w.LoadLevel(0)
}

// LoadLevel builds level i, places a fresh player at its spawn and restarts
// the level clock. Score, lives and the state are left alone.
func (w *World) LoadLevel(i int) error {
	if i < 0 || i >= len(w.levels) {
		return fmt.Errorf("%w: index %d", ErrUnknownLevel, i)
	}

	lvl, err := system.LoadLevel(w.levels[i], w.physicsCfg, w.entityCfg)
	if err != nil {
		return fmt.Errorf("failed to build level %d: %w", i, err)
	}

	w.level = lvl
	w.levelIndex = i
	if w.player == nil {
		w.player = entity.NewPlayer(lvl.SpawnX, lvl.SpawnY, system.PlayerStatsFrom(w.entityCfg.Player))
	} else {
		w.player.Reset(lvl.SpawnX, lvl.SpawnY)
	}
	w.timeRemaining = w.physicsCfg.Rules.LevelTime
	w.clock = 0

	w.logger.Debug("level loaded",
		"level", i,
		"name", lvl.Name,
		"platforms", lvl.Registry.Platforms.Len(),
		"coins", lvl.Registry.CountCoins(),
		"enemies", lvl.Registry.CountEnemies(),
	)
	return nil
}

// ReplaceLevel swaps in a new definition for the level with the same id. It
// is used by hot reload and takes effect the next time that level is built.
func (w *World) ReplaceLevel(lvl *config.LevelConfig) error {
	for i, old := range w.levels {
		if old.ID == lvl.ID {
			w.levels[i] = lvl
			w.logger.Info("level definition replaced", "level", lvl.ID)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrUnknownLevel, lvl.ID)
}

// Start leaves the menu and begins play.
func (w *World) Start() {
	if w.state == state.StateMenu {
		w.state = state.StatePlaying
	}
}

// Reset starts a new game from the first level and enters play. It is the
// only way out of the terminal states.
func (w *World) Reset() error {
	if err := w.newGame(); err != nil {
		return err
	}
	w.state = state.StatePlaying
	return nil
}

// Pause suspends a running game.
func (w *World) Pause() {
	if w.state == state.StatePlaying {
		w.state = state.StatePaused
	}
}

// Resume continues a paused game.
func (w *World) Resume() {
	if w.state == state.StatePaused {
		w.state = state.StatePlaying
	}
}

// TogglePause flips between playing and paused.
func (w *World) TogglePause() {
	switch w.state {
	case state.StatePlaying:
		w.Pause()
	case state.StatePaused:
		w.Resume()
	}
}

// Step advances the simulation by one frame. Outside the playing and level
// complete states it does nothing.
func (w *World) Step(input system.InputState) {
	w.events = w.events[:0]

	switch w.state {
	case state.StatePlaying:
	case state.StateLevelComplete:
		w.stepInterlude()
		return
	default:
		return
	}

	w.frame++
	if w.shake > 0 {
		w.shake--
	}

	if !w.tickClock() {
		return
	}
	w.updatePlatforms()
	w.updateCoins()

	res := w.control.Update(w.player, input, w.level.Registry, w.level.SpawnX, w.level.SpawnY)
	if res.Jumped {
		w.publish(event.PlayerJumped{})
	}
	if res.Attacked {
		w.publish(event.PlayerAttacked{Swing: w.player.Swing})
	}

	w.updateEnemies()
	w.resolveCollisions(res.Fell)
	if w.state != state.StatePlaying {
		return
	}
	w.checkConditions()
}

// tickClock counts frames toward the level clock and reports whether play
// continues.
func (w *World) tickClock() bool {
	w.clock++
	if w.clock < w.physicsCfg.Rules.FramesPerSecond {
		return true
	}
	w.clock = 0
	w.timeRemaining--
	if w.timeRemaining <= 0 {
		w.timeRemaining = 0
		w.gameOver("time")
		return false
	}
	return true
}

func (w *World) updatePlatforms() {
	w.level.Registry.EachPlatform(func(p entity.Platform) bool {
		p.Update()
		return true
	})
}

func (w *World) updateCoins() {
	reg := w.level.Registry
	for _, c := range reg.Coins.Values() {
		if c.Update() {
			reg.DestroyEntity(c.ID)
			w.publish(event.CoinExpired{CoinID: c.ID})
		}
	}
}

func (w *World) updateEnemies() {
	reg := w.level.Registry
	reg.Enemies.Each(func(_ entity.EntityID, e *entity.Enemy) bool {
		w.ai.Update(e, w.player, reg)
		return true
	})

	limit := w.physicsCfg.World.Height + w.physicsCfg.World.FallMargin
	if n := w.combat.RemoveFallenEnemies(reg.Enemies, limit); n > 0 {
		w.logger.Debug("enemies fell out of the world", "count", n)
	}
}

func (w *World) publish(e event.Event) {
	w.events = append(w.events, e)
	if w.sink != nil {
		w.sink.Publish(e)
	}
}

// Events returns the events of the last Step. The slice is reused by the
// next Step.
func (w *World) Events() []event.Event {
	return w.events
}

// State returns the current game state.
func (w *World) State() state.GameState { return w.state }

// Player returns the live player.
func (w *World) Player() *entity.Player { return w.player }

// Level returns the active built level.
func (w *World) Level() *system.Level { return w.level }

// LevelIndex returns the zero-based index of the active level.
func (w *World) LevelIndex() int { return w.levelIndex }

// LevelCount returns the number of levels in the game.
func (w *World) LevelCount() int { return len(w.levels) }

// Score returns the current score.
func (w *World) Score() int { return w.score }

// Lives returns the remaining lives.
func (w *World) Lives() int { return w.lives }

// CoinsCollected returns the coins collected this game.
func (w *World) CoinsCollected() int { return w.coinsCollected }

// EnemiesDefeated returns the enemies defeated this game.
func (w *World) EnemiesDefeated() int { return w.enemiesDefeated }

// TimeRemaining returns the level clock in seconds.
func (w *World) TimeRemaining() int { return w.timeRemaining }

// BestScore returns the best score of the session.
func (w *World) BestScore() int { return w.bestScore }

// Shake returns the remaining screen shake frames.
func (w *World) Shake() int { return w.shake }

// Frame returns the number of simulated frames this game.
func (w *World) Frame() int { return w.frame }
