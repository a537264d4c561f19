package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// InputState holds the keys held during one frame. It is the only input the
// simulation reads.
type InputState struct {
	Left   bool
	Right  bool
	Jump   bool
	Attack bool
}

// Direction returns -1, 0 or +1 for the horizontal input. Holding both
// directions cancels out.
func (in InputState) Direction() int {
	dir := 0
	if in.Left {
		dir--
	}
	if in.Right {
		dir++
	}
	return dir
}

// InputSystem reads the keyboard through ebiten
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:   anyPressed(ebiten.KeyA, ebiten.KeyArrowLeft),
		Right:  anyPressed(ebiten.KeyD, ebiten.KeyArrowRight),
		Jump:   anyPressed(ebiten.KeyW, ebiten.KeySpace, ebiten.KeyArrowUp),
		Attack: anyPressed(ebiten.KeyX, ebiten.KeyJ),
	}
}

// PausePressed reports whether the pause key went down this frame.
func (s *InputSystem) PausePressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)
}

// RestartPressed reports whether the restart key went down this frame.
func (s *InputSystem) RestartPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}

// ConfirmPressed reports whether the confirm key went down this frame.
func (s *InputSystem) ConfirmPressed() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyEnter)
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
