package components

import (
	cfg "github.com/automoto/durhamtour/config"
	"github.com/yohamta/donburi"
)

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all actions.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current  [cfg.ActionCount]bool // Current frame's Pressed state
	Previous [cfg.ActionCount]bool // Previous frame's Pressed state

	// Tapped is set for the frame a touch begins; it counts as an interact press.
	Tapped bool
	// Consumed is set when a system used this frame's interact press.
	Consumed bool
}

var Input = donburi.NewComponentType[InputData]()
