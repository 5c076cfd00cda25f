package components

import (
	"github.com/automoto/durhamtour/assets"
	"github.com/automoto/durhamtour/scenedata"
	"github.com/yohamta/donburi"
)

type CollectibleData struct {
	Def  scenedata.ObjectDef
	Seed int

	Frames [2]*assets.Handle

	Loaded        bool
	Width, Height float64
	Resolved      *scenedata.ResolvedPosition

	// Collected only ever goes from false to true.
	Collected bool
}

func (c *CollectibleData) Center() (float64, float64) {
	return c.Resolved.X + c.Width/2, c.Resolved.Y + c.Height/2
}

// Available reports whether the object can be found, approached and drawn idle.
func (c *CollectibleData) Available() bool {
	return c.Loaded && c.Resolved != nil && !c.Collected
}

var Collectible = donburi.NewComponentType[CollectibleData]()
