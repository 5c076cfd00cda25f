package components

import (
	"github.com/automoto/durhamtour/assets"
	"github.com/automoto/durhamtour/scenedata"
	"github.com/yohamta/donburi"
)

type LocationData struct {
	Def  scenedata.LocationDef
	Seed int // Position in the scene table; drives the pin phase

	Normal *assets.Handle
	Hover  *assets.Handle

	// Set once both images are ready.
	Loaded        bool
	Width, Height float64

	// Set once, after the background size is known.
	Resolved *scenedata.ResolvedPosition

	HoverTransition float64 // 0 = normal image, 1 = hover image
}

// ActiveCenter returns the centre of the inner active area scaled by scale.
func (l *LocationData) ActiveCenter(scale float64) (float64, float64) {
	insetX := l.Width * (1 - scale) / 2
	insetY := l.Height * (1 - scale) / 2
	x := l.Resolved.X + insetX
	y := l.Resolved.Y + insetY
	return x + l.Width*scale/2, y + l.Height*scale/2
}

// Interactive reports whether proximity checks and drawing apply.
func (l *LocationData) Interactive() bool {
	return l.Loaded && l.Resolved != nil
}

var Location = donburi.NewComponentType[LocationData]()
