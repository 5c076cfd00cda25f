package components

import (
	"github.com/automoto/durhamtour/assets"
	"github.com/yohamta/donburi"
)

// SceneData is a singleton describing the drawing surface and shared animation clock.
type SceneData struct {
	Background *assets.Handle

	// Surface size. Starts at the configured canvas size and is redefined
	// exactly once, when the background finishes loading or gives up.
	Width, Height float64
	SurfaceSized  bool

	// Background size in map space, valid once SurfaceSized and the image loaded.
	MapWidth, MapHeight float64

	PinClock float64
}

var Scene = donburi.NewComponentType[SceneData]()
