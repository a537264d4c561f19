package replay

import "github.com/younwookim/platformer/internal/application/system"

// Version is written into every recording.
const Version = "1.0"

// FrameInput records input state for a single simulated frame
type FrameInput struct {
	F int  `json:"f"`           // Frame number
	L bool `json:"l,omitempty"` // Left
	R bool `json:"r,omitempty"` // Right
	J bool `json:"j,omitempty"` // Jump
	A bool `json:"a,omitempty"` // Attack
}

// NewFrameInput packs one frame of input.
func NewFrameInput(frame int, in system.InputState) FrameInput {
	return FrameInput{F: frame, L: in.Left, R: in.Right, J: in.Jump, A: in.Attack}
}

// Input unpacks the frame into the simulation's input type.
func (fi FrameInput) Input() system.InputState {
	return system.InputState{Left: fi.L, Right: fi.R, Jump: fi.J, Attack: fi.A}
}

// ReplayData contains all data needed to replay a game session. The world
// is deterministic, so the inputs from the first Step on are enough.
type ReplayData struct {
	Version   string       `json:"version"`
	Level     string       `json:"level"` // id of the first level played
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
