package components

import (
	"github.com/automoto/durhamtour/assets"
	"github.com/automoto/durhamtour/assets/animations"
	"github.com/automoto/durhamtour/config"
	"github.com/yohamta/donburi"
)

type AnimationData struct {
	CurrentAnimation *animations.Animation
	// Sheets holds frame images per facing, indexed by frame number.
	// Entities without facings use DirectionDown.
	Sheets map[config.Direction][]*assets.Handle
}

// FrameImage returns the handle for the current frame in the given facing.
func (a *AnimationData) FrameImage(dir config.Direction) *assets.Handle {
	if a.CurrentAnimation == nil {
		return nil
	}
	frames := a.Sheets[dir]
	frame := a.CurrentAnimation.Frame()
	if frame < 0 || frame >= len(frames) {
		return nil
	}
	return frames[frame]
}

var Animation = donburi.NewComponentType[AnimationData]()
