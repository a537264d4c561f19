package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/platformer/internal/domain/entity"
)

func createTestController() (*PlayerController, *entity.Player, PlatformSource) {
	cfg := createTestPhysicsConfig()
	reg, floor := createTestRegistry()
	controller := NewPlayerController(cfg, NewPhysicsSystem(cfg))

	player := entity.NewPlayer(100, 0, entity.DefaultPlayerStats())
	player.Land(floor)
	return controller, player, reg
}

func TestPlayerController_JumpAndLand(t *testing.T) {
	controller, player, platforms := createTestController()
	floorTop := player.Bounds.Bottom()

	res := controller.Update(player, InputState{Jump: true}, platforms, 0, 0)

	assert.True(t, res.Jumped)
	assert.False(t, player.OnGround)
	assert.Equal(t, -player.Stats.JumpStrength, player.VY)

	landed := false
	for range 100 {
		controller.Update(player, InputState{}, platforms, 0, 0)
		if player.OnGround {
			landed = true
			break
		}
	}

	require.True(t, landed)
	assert.Equal(t, 0.0, player.VY)
	assert.Equal(t, floorTop, player.Bounds.Bottom())
}

func TestPlayerController_JumpOnlyWhenGrounded(t *testing.T) {
	controller, player, platforms := createTestController()

	controller.Update(player, InputState{Jump: true}, platforms, 0, 0)
	vy := player.VY

	res := controller.Update(player, InputState{Jump: true}, platforms, 0, 0)
	assert.False(t, res.Jumped)
	assert.Greater(t, player.VY, vy, "gravity acts, no second jump")
}

func TestPlayerController_Walk(t *testing.T) {
	tests := []struct {
		name        string
		input       InputState
		wantVX      float64
		facingRight bool
	}{
		{"left", InputState{Left: true}, -5, false},
		{"right", InputState{Right: true}, 5, true},
		{"both cancel", InputState{Left: true, Right: true}, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, player, platforms := createTestController()

			controller.Update(player, tt.input, platforms, 0, 0)

			assert.Equal(t, tt.wantVX, player.VX)
			assert.Equal(t, tt.facingRight, player.FacingRight)
		})
	}
}

func TestPlayerController_AttackWindow(t *testing.T) {
	controller, player, platforms := createTestController()

	res := controller.Update(player, InputState{Attack: true}, platforms, 0, 0)
	require.True(t, res.Attacked)
	assert.Equal(t, entity.AnimAttack, player.Anim)

	activeFrames := 1
	for range 40 {
		res := controller.Update(player, InputState{Attack: true}, platforms, 0, 0)
		if res.Attacked {
			break
		}
		if player.AttackActive() {
			activeFrames++
		}
	}

	assert.Equal(t, player.Stats.AttackWindow, activeFrames)
	assert.Equal(t, 2, player.Swing, "a held attack swings again once the cooldown ends")
}

func TestPlayerController_FallPenalty(t *testing.T) {
	controller, player, platforms := createTestController()
	player.Airborne()
	player.SetPos(100, 830)
	player.VX = 3
	player.InvulnerableTimer = 50

	res := controller.Update(player, InputState{}, platforms, 100, 520)

	assert.True(t, res.Fell)
	assert.Equal(t, 100, player.Bounds.X)
	assert.Equal(t, 520, player.Bounds.Y)
	assert.Equal(t, 0.0, player.VX)
	assert.Equal(t, 0.0, player.VY)
	assert.Equal(t, player.MaxHealth-1, player.Health, "fall ignores invulnerability")
}

func TestPlayerController_ClampsToWorld(t *testing.T) {
	tests := []struct {
		name  string
		x     int
		input InputState
		want  int
	}{
		{"left edge", 2, InputState{Left: true}, 0},
		{"right edge", 5120 - 64 - 2, InputState{Right: true}, 5120 - 64},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			controller, player, platforms := createTestController()
			player.Airborne()
			player.SetPos(tt.x, 100)
			player.VX = player.Stats.Speed * float64(tt.input.Direction())

			controller.Update(player, tt.input, platforms, 0, 0)

			assert.Equal(t, tt.want, player.Bounds.X)
		})
	}
}
