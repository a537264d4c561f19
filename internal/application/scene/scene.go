// Package scene defines the Scene interface for game screens.
//
// The playing scene is the only screen the platformer ships; the menu,
// pause and end screens are overlays it draws from the world state.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is a game screen driven by the game loop.
//
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update advances the scene by one tick of dt seconds.
	// It returns the next scene, or nil to stay. An error ends the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called each time the scene becomes current.
	OnEnter()

	// OnExit is called when the scene is left or the game shuts down.
	// Recordings and other pending output are flushed here.
	OnExit()
}
