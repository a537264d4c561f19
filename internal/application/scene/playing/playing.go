// Package playing provides the main gameplay scene.
package playing

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/platformer/internal/application/replay"
	"github.com/younwookim/platformer/internal/application/scene"
	"github.com/younwookim/platformer/internal/application/state"
	"github.com/younwookim/platformer/internal/application/system"
	"github.com/younwookim/platformer/internal/application/world"
	"github.com/younwookim/platformer/internal/domain/entity"
	"github.com/younwookim/platformer/internal/domain/geom"
	"github.com/younwookim/platformer/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorPlayer     = color.RGBA{100, 200, 100, 255}
	colorPlayerHit  = color.RGBA{255, 255, 255, 200}
	colorAttack     = color.RGBA{255, 240, 140, 160}
	colorEnemy      = color.RGBA{200, 100, 100, 255}
	colorEnemyAlert = color.RGBA{230, 150, 60, 255}
	colorEnemyHit   = color.RGBA{255, 255, 255, 255}
	colorCoin       = color.RGBA{255, 215, 0, 255}
	colorPowerUp    = color.RGBA{120, 200, 255, 255}
	colorBonus      = color.RGBA{255, 120, 220, 255}
	colorGoal       = color.RGBA{255, 255, 255, 90}
	colorHealthBG   = color.RGBA{60, 60, 60, 255}
	colorHealthFG   = color.RGBA{100, 200, 100, 255}
)

var materialColors = map[entity.Material]color.RGBA{
	entity.MaterialNormal: {120, 120, 140, 255},
	entity.MaterialGrass:  {70, 160, 70, 255},
	entity.MaterialStone:  {110, 110, 110, 255},
	entity.MaterialWood:   {150, 100, 60, 255},
	entity.MaterialIce:    {170, 220, 255, 255},
	entity.MaterialCloud:  {235, 235, 250, 255},
	entity.MaterialLava:   {230, 80, 30, 255},
}

// Option configures a Playing scene.
type Option func(*Playing)

// WithRecording records every simulated frame and saves the replay to path
// when a game ends or the scene exits. An empty path picks a timestamped name.
func WithRecording(path string) Option {
	return func(p *Playing) {
		p.recordFilename = path
		p.recordEnabled = true
	}
}

// WithReloads applies level definitions arriving on ch between frames.
func WithReloads(ch <-chan config.LevelReload) Option {
	return func(p *Playing) { p.reloads = ch }
}

// WithLogger sets the logger. The default is slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(p *Playing) { p.logger = l }
}

// Playing is the main gameplay scene. It feeds keyboard input to the world
// and draws the world's snapshots.
type Playing struct {
	world   *world.World
	input   *system.InputSystem
	screenW int
	screenH int
	worldW  int
	logger  *slog.Logger

	reloads <-chan config.LevelReload

	// Screen shake jitter; presentation only, never fed back into the world
	rng *rand.Rand

	// Input recording
	recorder       *Recorder
	recordEnabled  bool
	recordFilename string
}

// New creates a new Playing scene around w.
func New(w *world.World, cfg *config.GameConfig, opts ...Option) *Playing {
	p := &Playing{
		world:   w,
		input:   system.NewInputSystem(),
		screenW: cfg.Physics.Display.ScreenWidth,
		screenH: cfg.Physics.Display.ScreenHeight,
		worldW:  cfg.Physics.World.Width,
		logger:  slog.Default(),
		rng:     rand.New(rand.NewPCG(1, 2)),
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.recordEnabled {
		p.recorder = NewRecorder(w.Level().ID)
		p.logger.Info("recording enabled", "file", p.recordFilename)
	}
	return p
}

// Update proceeds the game state (implements scene.Scene)
func (p *Playing) Update(_ float64) (scene.Scene, error) {
	p.applyReloads()

	switch p.world.State() {
	case state.StateMenu:
		if p.input.ConfirmPressed() || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			p.world.Start()
		}
	case state.StatePlaying:
		if p.input.PausePressed() {
			p.world.Pause()
			return nil, nil
		}
		if p.input.RestartPressed() {
			return nil, p.restart()
		}
		// F5: Save recording manually
		if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
			p.saveRecording()
		}
		p.step(p.input.GetInput())
	case state.StatePaused:
		if p.input.PausePressed() {
			p.world.Resume()
		} else if p.input.RestartPressed() {
			return nil, p.restart()
		}
	case state.StateLevelComplete:
		p.step(system.InputState{})
	case state.StateGameOver, state.StateGameComplete:
		if p.input.RestartPressed() || p.input.ConfirmPressed() {
			return nil, p.restart()
		}
	}

	return nil, nil // nil = stay on this scene
}

// step advances the world one frame and records the input that drove it.
func (p *Playing) step(input system.InputState) {
	if p.recorder != nil {
		p.recorder.RecordFrame(input)
	}
	p.world.Step(input)

	// Auto-save recording when the game ends
	if p.world.State().Terminal() && p.recorder != nil && p.recorder.IsRecording() {
		p.saveRecording()
		p.recorder.Stop()
	}
}

func (p *Playing) applyReloads() {
	if p.reloads == nil {
		return
	}
	for {
		select {
		case r := <-p.reloads:
			if r.Err != nil {
				p.logger.Warn("ignoring level reload", "level", r.Name, "error", r.Err)
				continue
			}
			if err := p.world.ReplaceLevel(r.Level); err != nil {
				p.logger.Warn("ignoring level reload", "level", r.Name, "error", err)
			}
		default:
			return
		}
	}
}

func (p *Playing) restart() error {
	if p.recorder != nil && p.recorder.IsRecording() {
		p.saveRecording()
	}
	if err := p.world.Reset(); err != nil {
		return fmt.Errorf("failed to restart: %w", err)
	}
	if p.recordEnabled {
		p.recorder = NewRecorder(p.world.Level().ID)
		p.logger.Info("recording restarted")
	}
	return nil
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	err := p.recorder.Save(filename)
	switch {
	case errors.Is(err, replay.ErrEmpty):
	case err != nil:
		p.logger.Error("failed to save recording", "file", filename, "error", err)
	default:
		p.logger.Info("recording saved", "file", filename, "frames", p.recorder.FrameCount())
	}
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	if p.recorder != nil && p.recorder.IsRecording() {
		p.saveRecording()
		p.recorder.Stop()
	}
}

// camera returns the top-left of the view, following the player and
// jittered by the remaining screen shake.
func (p *Playing) camera(s world.Snapshot) (int, int) {
	camX := s.Player.Bounds.CenterX() - p.screenW/2
	camX = geom.Clamp(camX, 0, max(0, p.worldW-p.screenW))
	camY := 0

	if s.Shake > 0 {
		amp := float64(s.Shake) / 3
		camX += int(amp * (2*p.rng.Float64() - 1))
		camY += int(amp * (2*p.rng.Float64() - 1))
	}
	return camX, camY
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	s := p.world.Snapshot()
	camX, camY := p.camera(s)

	// Goal line
	ebitenutil.DrawRect(screen, float64(s.EndX-camX), 0, 4, float64(p.screenH), colorGoal)

	p.drawPlatforms(screen, s, camX, camY)
	p.drawCoins(screen, s, camX, camY)
	p.drawEnemies(screen, s, camX, camY)
	p.drawPlayer(screen, s, camX, camY)

	p.drawUI(screen, s)

	switch s.State {
	case state.StateMenu:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 160},
			fmt.Sprintf("PLATFORMER\n\n%s\n\nPress ENTER to start", s.LevelName))
	case state.StatePaused:
		p.drawOverlay(screen, color.RGBA{0, 0, 0, 128}, "PAUSED\n\nPress ESC to resume\nPress R to restart")
	case state.StateLevelComplete:
		p.drawOverlay(screen, color.RGBA{0, 60, 0, 140},
			fmt.Sprintf("LEVEL COMPLETE\n\nScore: %d", s.Score))
	case state.StateGameOver:
		p.drawOverlay(screen, color.RGBA{100, 0, 0, 180},
			fmt.Sprintf("GAME OVER\n\nScore: %d\nBest: %d\n\nPress R to restart", s.Score, s.BestScore))
	case state.StateGameComplete:
		p.drawOverlay(screen, color.RGBA{0, 0, 100, 180},
			fmt.Sprintf("YOU WIN!\n\nScore: %d\nBest: %d\n\nPress R to play again", s.Score, s.BestScore))
	}
}

func (p *Playing) drawRect(screen *ebiten.Image, r geom.Rect, camX, camY int, c color.Color) {
	x := r.X - camX
	if x+r.W < 0 || x > p.screenW {
		return
	}
	ebitenutil.DrawRect(screen, float64(x), float64(r.Y-camY), float64(r.W), float64(r.H), c)
}

func (p *Playing) drawPlatforms(screen *ebiten.Image, s world.Snapshot, camX, camY int) {
	for _, pl := range s.Platforms {
		if !pl.Solid {
			continue
		}
		c := materialColors[pl.Material]
		if pl.Alpha < 1 {
			c = fade(c, pl.Alpha)
		}
		if pl.Active {
			c = color.RGBA{255, 255, 255, 255}
		}
		p.drawRect(screen, pl.Bounds, camX, camY, c)
	}
}

func (p *Playing) drawCoins(screen *ebiten.Image, s world.Snapshot, camX, camY int) {
	for _, c := range s.Coins {
		if !c.Visible {
			continue
		}
		col := colorCoin
		switch c.Kind {
		case entity.CoinPowerUp:
			col = colorPowerUp
		case entity.CoinBonus:
			col = colorBonus
		}
		p.drawRect(screen, c.Bounds, camX, camY, col)
	}
}

func (p *Playing) drawEnemies(screen *ebiten.Image, s world.Snapshot, camX, camY int) {
	for _, e := range s.Enemies {
		c := colorEnemy
		switch e.State {
		case entity.EnemyAlert, entity.EnemyAttack:
			c = colorEnemyAlert
		case entity.EnemyDamaged:
			c = colorEnemyHit
		}
		p.drawRect(screen, e.Bounds, camX, camY, c)
		if e.Attacking {
			p.drawRect(screen, e.AttackRect, camX, camY, colorAttack)
		}

		// Health pips
		bar := geom.NewRect(e.Bounds.X, e.Bounds.Y-8, e.Bounds.W, 4)
		p.drawRect(screen, bar, camX, camY, colorHealthBG)
		bar.W = bar.W * e.Health / max(1, e.MaxHealth)
		p.drawRect(screen, bar, camX, camY, colorHealthFG)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, s world.Snapshot, camX, camY int) {
	// Flash when invulnerable
	c := colorPlayer
	if s.Player.Invulnerable && (s.Frame/4)%2 == 0 {
		c = colorPlayerHit
	}
	p.drawRect(screen, s.Player.Bounds, camX, camY, c)

	if s.Player.Attacking {
		p.drawRect(screen, s.Player.AttackRect, camX, camY, colorAttack)
	}
}

func (p *Playing) drawUI(screen *ebiten.Image, s world.Snapshot) {
	// Health bar
	barX := 10.0
	barY := float64(p.screenH - 20)
	barW := 100.0
	barH := 10.0

	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)
	healthRatio := float64(s.Player.Health) / float64(max(1, s.Player.MaxHealth))
	ebitenutil.DrawRect(screen, barX, barY, barW*healthRatio, barH, colorHealthFG)

	hud := fmt.Sprintf("%s  Score: %d  Lives: %d  Coins: %d  Time: %d",
		s.LevelName, s.Score, s.Lives, s.CoinsCollected, s.TimeRemaining)
	ebitenutil.DebugPrintAt(screen, hud, 10, p.screenH-40)

	// Controls
	ebitenutil.DebugPrint(screen, "A/D: Move | W/Space: Jump | X: Attack | ESC: Pause | R: Restart")
}

func (p *Playing) drawOverlay(screen *ebiten.Image, bg color.Color, text string) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), bg)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}

// fade scales a color by alpha (pre-multiplied).
func fade(c color.RGBA, alpha float64) color.RGBA {
	return color.RGBA{
		uint8(float64(c.R) * alpha),
		uint8(float64(c.G) * alpha),
		uint8(float64(c.B) * alpha),
		uint8(float64(c.A) * alpha),
	}
}
