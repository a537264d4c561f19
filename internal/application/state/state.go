package state

// GameState represents the current state of the game
type GameState int

const (
	StateMenu GameState = iota
	StatePlaying
	StatePaused
	StateLevelComplete
	StateGameOver
	StateGameComplete
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMenu:
		return "Menu"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateLevelComplete:
		return "LevelComplete"
	case StateGameOver:
		return "GameOver"
	case StateGameComplete:
		return "GameComplete"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the state only ends with an explicit reset.
func (s GameState) Terminal() bool {
	return s == StateGameOver || s == StateGameComplete
}
